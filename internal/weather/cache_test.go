package weather

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var errNoSnapshot = errors.New("no snapshot")

type memoryStore struct {
	mu   sync.Mutex
	snap *domain.WeatherSnapshot
}

func (m *memoryStore) LatestWeather(context.Context) (*domain.WeatherSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return nil, errNoSnapshot
	}
	cp := *m.snap
	return &cp, nil
}

func (m *memoryStore) SaveWeather(_ context.Context, snap *domain.WeatherSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *snap
	m.snap = &cp
	return nil
}

// gatedProvider blocks every fetch until release is closed.
type gatedProvider struct {
	calls   atomic.Int32
	release chan struct{}
	now     time.Time
}

func (g *gatedProvider) Fetch(ctx context.Context, pincode string) (*domain.WeatherSnapshot, error) {
	g.calls.Add(1)
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &domain.WeatherSnapshot{Pincode: pincode, Location: "Pune", TempC: 24, Condition: "Clouds", FetchedAt: g.now}, nil
}

var cacheNow = time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)

func TestCachedProvider_ServesFreshSnapshot(t *testing.T) {
	upstream := &gatedProvider{now: cacheNow}
	store := &memoryStore{}
	clock := cacheNow
	cache := NewCachedProvider(upstream, store, time.Hour, WithClock(func() time.Time { return clock }))

	first, err := cache.Fetch(context.Background(), "411001")
	require.NoError(t, err)
	assert.Equal(t, "Pune", first.Location)

	clock = cacheNow.Add(59 * time.Minute)
	_, err = cache.Fetch(context.Background(), "411001")
	require.NoError(t, err)
	assert.Equal(t, int32(1), upstream.calls.Load())

	clock = cacheNow.Add(61 * time.Minute)
	_, err = cache.Fetch(context.Background(), "411001")
	require.NoError(t, err)
	assert.Equal(t, int32(2), upstream.calls.Load())
}

func TestCachedProvider_OtherPincodeRefetches(t *testing.T) {
	upstream := &gatedProvider{now: cacheNow}
	cache := NewCachedProvider(upstream, &memoryStore{}, time.Hour, WithClock(func() time.Time { return cacheNow }))

	_, err := cache.Fetch(context.Background(), "411001")
	require.NoError(t, err)
	snap, err := cache.Fetch(context.Background(), "560001")
	require.NoError(t, err)
	assert.Equal(t, "560001", snap.Pincode)
	assert.Equal(t, int32(2), upstream.calls.Load())
}

func TestCachedProvider_InvalidPincode(t *testing.T) {
	upstream := &gatedProvider{now: cacheNow}
	cache := NewCachedProvider(upstream, &memoryStore{}, time.Hour)
	_, err := cache.Fetch(context.Background(), "000000")
	assert.ErrorIs(t, err, ErrInvalidPincode)
	assert.Zero(t, upstream.calls.Load())
}

func TestCachedProvider_ConcurrentFetchesShareOneCall(t *testing.T) {
	defer goleak.VerifyNone(t)

	upstream := &gatedProvider{now: cacheNow, release: make(chan struct{})}
	cache := NewCachedProvider(upstream, &memoryStore{}, time.Hour, WithClock(func() time.Time { return cacheNow }))

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*domain.WeatherSnapshot, callers)
	errs := make([]error, callers)
	var started atomic.Int32
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Add(1)
			results[i], errs[i] = cache.Fetch(context.Background(), "411001")
		}(i)
	}

	require.Eventually(t, func() bool {
		return started.Load() == callers && upstream.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond) // let the other callers join the flight
	close(upstream.release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "Pune", results[i].Location)
	}
	assert.Equal(t, int32(1), upstream.calls.Load())
}

func TestCachedProvider_Current(t *testing.T) {
	store := &memoryStore{}
	clock := cacheNow
	cache := NewCachedProvider(&gatedProvider{now: cacheNow}, store, time.Hour, WithClock(func() time.Time { return clock }))

	assert.Nil(t, cache.Current(context.Background()))

	_, err := cache.Fetch(context.Background(), "411001")
	require.NoError(t, err)
	assert.NotNil(t, cache.Current(context.Background()))

	clock = cacheNow.Add(2 * time.Hour)
	assert.Nil(t, cache.Current(context.Background()))
}
