package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
)

// Provider fetches a current snapshot for a pincode.
type Provider interface {
	Fetch(ctx context.Context, pincode string) (*domain.WeatherSnapshot, error)
}

// owmClient implements Provider against the OpenWeatherMap geo and weather APIs.
type owmClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
	now      func() time.Time
}

// NewClient creates a Provider that geocodes the pincode, then reads the
// current weather at that location.
func NewClient(cfg Config, observer Observer) Provider {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &owmClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
		now:      time.Now,
	}
}

// geoResponse is the body of GET geo/1.0/zip.
type geoResponse struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

// currentResponse is the subset of GET data/2.5/weather we read.
type currentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
}

// statusError carries a non-200 response.
type statusError struct {
	Status int
	Body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("weather api returned status %d: %s", e.Status, e.Body)
}

func (c *owmClient) Fetch(ctx context.Context, pincode string) (snap *domain.WeatherSnapshot, err error) {
	start := time.Now()
	event := CallEvent{Operation: OpFetch}
	defer func() {
		event.LatencyMs = time.Since(start).Milliseconds()
		event.Success = err == nil
		event.ErrorCode = errorCode(err)
		if snap != nil {
			event.Location = snap.Location
		}
		c.observer.OnCallComplete(event)
	}()

	pin, err := NormalizePincode(pincode)
	if err != nil {
		return nil, err
	}
	event.Pincode = pin
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	var geo geoResponse
	geoURL := c.cfg.GeoURL + "?" + url.Values{
		"zip":   {pin + "," + c.cfg.Country},
		"appid": {c.cfg.APIKey},
	}.Encode()
	if err := c.getJSON(ctx, geoURL, &geo); err != nil {
		var se *statusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, pin)
		}
		return nil, classify(ctx, err)
	}

	var cur currentResponse
	weatherURL := c.cfg.WeatherURL + "?" + url.Values{
		"lat":   {strconv.FormatFloat(geo.Lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(geo.Lon, 'f', -1, 64)},
		"units": {"metric"},
		"appid": {c.cfg.APIKey},
	}.Encode()
	if err := c.getJSON(ctx, weatherURL, &cur); err != nil {
		return nil, classify(ctx, err)
	}

	snap = &domain.WeatherSnapshot{
		Pincode:    pin,
		Location:   domain.CoalesceStr(geo.Name, cur.Name),
		TempC:      roundHalfUp(cur.Main.Temp),
		FeelsLikeC: roundHalfUp(cur.Main.FeelsLike),
		Humidity:   cur.Main.Humidity,
		FetchedAt:  c.now().UTC(),
	}
	if len(cur.Weather) > 0 {
		snap.Condition = cur.Weather[0].Main
		snap.Description = cur.Weather[0].Description
	}
	return snap, nil
}

// getJSON performs a GET with retries on transport and 5xx failures.
func (c *owmClient) getJSON(ctx context.Context, target string, out any) error {
	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		err := c.doGet(ctx, target, out)
		if err == nil {
			return nil
		}
		lastErr = err

		// Client errors are final; so is a cancelled context.
		var se *statusError
		if errors.As(err, &se) && se.Status < http.StatusInternalServerError {
			return err
		}
		if ctx.Err() != nil {
			break
		}
	}
	if attempts > 1 {
		return fmt.Errorf("%w: %w", ErrRetryExhausted, lastErr)
	}
	return lastErr
}

func (c *owmClient) doGet(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &statusError{Status: resp.StatusCode, Body: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// classify maps a failed call onto the package sentinels.
func classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	return fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
}

// roundHalfUp matches the display rounding users see elsewhere: 2.5 -> 3, -2.5 -> -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidPincode):
		return "INVALID_PINCODE"
	case errors.Is(err, ErrMissingAPIKey):
		return "MISSING_API_KEY"
	case errors.Is(err, ErrLocationNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	case errors.Is(err, ErrWeatherUnavailable):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
