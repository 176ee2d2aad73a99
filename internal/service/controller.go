package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skyglass/weather-widget/internal/domain"
)

// DefaultIconURL replaces a condition icon that fails to load
var DefaultIconURL = IconURL("01d")

const (
	loadingLabel   = "Loading..."
	notFoundLabel  = "City not found"
	retryHint      = "Please try another city"
	genericFailure = "Something went wrong. Please try again."
)

// Controller owns the widget's display state and its local-time clock.
// Each Trigger takes a sequence number; results from a lookup that has been
// superseded are dropped so the latest dispatched lookup always wins.
type Controller struct {
	provider    domain.WeatherProvider
	presenter   *Presenter
	assets      domain.AssetResolver
	ticker      *ClockTicker
	defaultIcon string
	now         func() time.Time

	// clockMu serializes the Loaded transition with clock start-up so a
	// superseded lookup never replaces the newer lookup's clock.
	clockMu sync.Mutex

	mu     sync.Mutex
	state  domain.DisplayState
	seq    uint64
	handle *TickerHandle
}

// NewController creates a controller in the idle state. assets may be nil
// to skip image verification.
func NewController(provider domain.WeatherProvider, presenter *Presenter, assets domain.AssetResolver, ticker *ClockTicker) *Controller {
	c := &Controller{
		provider:    provider,
		presenter:   presenter,
		assets:      assets,
		ticker:      ticker,
		defaultIcon: DefaultIconURL,
		now:         time.Now,
	}
	c.state = domain.DisplayState{
		Status:       domain.StatusIdle,
		Presentation: domain.Presentation{DateLabel: c.now().Format(DateLayout)},
		UpdatedAt:    c.now(),
	}
	return c
}

// State returns a copy of the current display state
func (c *Controller) State() domain.DisplayState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// snapshot must be called with mu held
func (c *Controller) snapshot() domain.DisplayState {
	st := c.state
	if st.Reading != nil {
		r := *st.Reading
		st.Reading = &r
	}
	return st
}

// Trigger looks up city and returns the resulting display state. Fetch
// failures are rendered into the state, not returned; the only error is
// domain.ErrEmptyCity, in which case nothing changes.
func (c *Controller) Trigger(ctx context.Context, city string) (domain.DisplayState, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return c.State(), domain.ErrEmptyCity
	}

	seq, prev := c.beginLoading(city)
	c.ticker.Stop(prev)

	reading, err := c.provider.Fetch(ctx, city)
	if err != nil {
		return c.fail(seq, city, err), nil
	}
	return c.load(ctx, seq, reading), nil
}

func (c *Controller) beginLoading(city string) (uint64, *TickerHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	prev := c.handle
	c.handle = nil
	c.state = domain.DisplayState{
		Status:       domain.StatusLoading,
		LookupID:     uuid.NewString(),
		City:         city,
		Presentation: domain.Presentation{LocationLabel: loadingLabel},
		UpdatedAt:    c.now(),
	}
	return c.seq, prev
}

func (c *Controller) fail(seq uint64, city string, err error) domain.DisplayState {
	msg := genericFailure
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		msg = fe.UserMessage()
	}
	log.Printf("Weather lookup for %q failed: %v", city, err)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return c.snapshot()
	}

	c.state.Status = domain.StatusFailed
	c.state.Reading = nil
	c.state.Error = msg
	c.state.LocalTime = ""
	c.state.Presentation = domain.Presentation{
		LocationLabel:    notFoundLabel,
		TemperatureLabel: domain.Placeholder,
		DescriptionLabel: retryHint,
		HumidityLabel:    domain.Placeholder,
		WindLabel:        domain.Placeholder,
		DateLabel:        c.now().Format(DateLayout),
	}
	c.state.UpdatedAt = c.now()
	return c.snapshot()
}

func (c *Controller) load(ctx context.Context, seq uint64, reading domain.WeatherReading) domain.DisplayState {
	p := c.presenter.Present(reading)
	if c.assets != nil {
		p.BackgroundURL, p.IconURL = c.verifyAssets(ctx, p.BackgroundURL, p.IconURL)
	}

	c.clockMu.Lock()
	defer c.clockMu.Unlock()

	c.mu.Lock()
	if seq != c.seq {
		st := c.snapshot()
		c.mu.Unlock()
		return st
	}
	c.state.Status = domain.StatusLoaded
	c.state.Reading = &reading
	c.state.Presentation = p
	c.state.Error = ""
	c.state.UpdatedAt = c.now()
	c.mu.Unlock()

	h, err := c.ticker.Start(reading.UTCOffset, func(label string) {
		c.setLocalTime(seq, label)
	})
	if err != nil {
		log.Printf("Failed to start local clock: %v", err)
		return c.State()
	}

	c.mu.Lock()
	if seq != c.seq {
		// superseded while the clock was starting
		st := c.snapshot()
		c.mu.Unlock()
		c.ticker.Stop(h)
		return st
	}
	c.handle = h
	st := c.snapshot()
	c.mu.Unlock()
	return st
}

// verifyAssets resolves background and icon concurrently
func (c *Controller) verifyAssets(ctx context.Context, background, icon string) (string, string) {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		background = c.assets.Resolve(ctx, background, c.presenter.Backgrounds().Default)
	}()

	if icon != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			icon = c.assets.Resolve(ctx, icon, c.defaultIcon)
		}()
	}

	wg.Wait()
	return background, icon
}

func (c *Controller) setLocalTime(seq uint64, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq || c.state.Status != domain.StatusLoaded {
		return
	}
	c.state.LocalTime = label
}

// Close stops the local clock; later clock renders are ignored
func (c *Controller) Close() {
	c.mu.Lock()
	c.seq++
	h := c.handle
	c.handle = nil
	c.mu.Unlock()

	c.ticker.Stop(h)
}
