package service

import (
	"time"

	"github.com/alexanderramin/aura/internal/wellness"
)

type options struct {
	observer UseCaseObserver
	now      func() time.Time
	random   wellness.RandomSource
}

// Option configures a service.
type Option func(*options)

func WithObserver(o UseCaseObserver) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

// WithClock overrides the time source. Requests that carry their own Now
// still win.
func WithClock(now func() time.Time) Option {
	return func(opts *options) { opts.now = now }
}

// WithRandom injects the source used for tips and canned replies.
func WithRandom(r wellness.RandomSource) Option {
	return func(opts *options) { opts.random = r }
}

func buildOptions(opts []Option) options {
	o := options{
		observer: NoopUseCaseObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.random == nil {
		o.random = wellness.NewRandomSource(0)
	}
	return o
}

func (o options) clock(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return o.now()
}
