// Package weather geocodes a destination and produces a per-day forecast for a
// trip, from OpenWeatherMap for near trips and Open-Meteo climate normals for
// trips further out.
package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/neexbeast/tripwise/internal/config"
	"github.com/neexbeast/tripwise/internal/metrics"
	"github.com/neexbeast/tripwise/internal/upstream"
)

// ErrNotFound is returned when the destination cannot be geocoded.
var ErrNotFound = errors.New("weather data not available")

const climateDailyFields = "temperature_2m_mean,temperature_2m_max,temperature_2m_min,precipitation_sum"

// Option customizes a Resolver.
type Option func(*Resolver)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// Resolver fetches weather for a destination and date range.
type Resolver struct {
	cfg      config.Weather
	geocode  *upstream.Client
	forecast *upstream.Client
	climate  *upstream.Client
	now      func() time.Time
	log      *slog.Logger
}

// NewResolver constructs a Resolver from cfg.
func NewResolver(cfg config.Weather, m *metrics.Metrics, log *slog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:      cfg,
		geocode:  upstream.New("owm_geocode", cfg.Timeout, m),
		forecast: upstream.New("owm_forecast", cfg.Timeout, m),
		climate:  upstream.New("openmeteo_climate", cfg.ClimateTimeout, m),
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve geocodes destination and returns the weather for [start, end].
// Geocoding failures yield ErrNotFound; forecast failures yield a Result with
// an empty forecast. Neither is fatal to a plan.
func (r *Resolver) Resolve(ctx context.Context, destination string, start, end time.Time) (*Result, error) {
	coords, err := r.coordinates(ctx, destination)
	if err != nil {
		r.log.Warn("geocoding failed", "destination", destination, "err", err)
		return nil, ErrNotFound
	}

	dataType := DataClimate
	if r.daysUntil(start) <= r.cfg.ForecastHorizonDays {
		dataType = DataForecast
	}

	var days []DailyForecast
	if dataType == DataForecast {
		days, err = r.shortRange(ctx, coords, start, end)
	} else {
		days, err = r.climateNormals(ctx, coords, start, end)
	}
	if err != nil {
		r.log.Warn("weather fetch failed", "destination", destination, "data_type", dataType, "err", err)
		days = []DailyForecast{}
	}

	return &Result{
		Destination: destination,
		Coordinates: *coords,
		Forecast:    days,
		Summary:     Summarize(days, dataType),
		DataType:    dataType,
	}, nil
}

// daysUntil counts calendar days from today to start; past dates are negative.
func (r *Resolver) daysUntil(start time.Time) int {
	now := r.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(today).Hours() / 24)
}

func (r *Resolver) coordinates(ctx context.Context, destination string) (*Coordinates, error) {
	q := url.Values{
		"q":     {destination},
		"limit": {"1"},
		"appid": {r.cfg.APIKey},
	}

	var matches []geocodeEntry
	if err := r.geocode.GetJSON(ctx, r.cfg.GeocodeURL, q, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no geocoding match for %q", destination)
	}

	m := matches[0]
	name := m.Name
	if name == "" {
		name = destination
	}
	return &Coordinates{Lat: m.Lat, Lon: m.Lon, Name: name, Country: m.Country, State: m.State}, nil
}

func (r *Resolver) shortRange(ctx context.Context, c *Coordinates, start, end time.Time) ([]DailyForecast, error) {
	q := url.Values{
		"lat":   {formatCoord(c.Lat)},
		"lon":   {formatCoord(c.Lon)},
		"appid": {r.cfg.APIKey},
		"units": {"metric"},
	}

	var resp forecastResponse
	if err := r.forecast.GetJSON(ctx, r.cfg.ForecastURL, q, &resp); err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	loc := time.FixedZone("", resp.City.Timezone)
	samples := make([]sample, 0, len(resp.List))
	for _, item := range resp.List {
		condition := ""
		if len(item.Weather) > 0 {
			condition = item.Weather[0].Description
		}
		samples = append(samples, sample{
			At:        time.Unix(item.Dt, 0).In(loc),
			Temp:      item.Main.Temp,
			Humidity:  item.Main.Humidity,
			WindSpeed: item.Wind.Speed,
			Pop:       item.Pop,
			Condition: condition,
		})
	}

	return aggregateForecast(samples, start, end), nil
}

func (r *Resolver) climateNormals(ctx context.Context, c *Coordinates, start, end time.Time) ([]DailyForecast, error) {
	q := url.Values{
		"latitude":         {formatCoord(c.Lat)},
		"longitude":        {formatCoord(c.Lon)},
		"start_date":       {start.Format(dateLayout)},
		"end_date":         {end.Format(dateLayout)},
		"daily":            {climateDailyFields},
		"temperature_unit": {"celsius"},
	}
	if r.cfg.ClimateModels != "" {
		q.Set("models", r.cfg.ClimateModels)
	}

	var resp climateResponse
	if err := r.climate.GetJSON(ctx, r.cfg.ClimateURL, q, &resp); err != nil {
		return nil, fmt.Errorf("fetching climate normals: %w", err)
	}

	return climateDays(&resp), nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
