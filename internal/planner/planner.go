// Package planner orchestrates one travel plan: weather, then country, then
// generated advice, merged into a single result.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neexbeast/tripwise/internal/advice"
	"github.com/neexbeast/tripwise/internal/apperr"
	"github.com/neexbeast/tripwise/internal/config"
	"github.com/neexbeast/tripwise/internal/country"
	"github.com/neexbeast/tripwise/internal/metrics"
	"github.com/neexbeast/tripwise/internal/weather"
)

const planFailedMsg = "Failed to generate travel plan"

type WeatherResolver interface {
	Resolve(ctx context.Context, destination string, start, end time.Time) (*weather.Result, error)
}

type CountryResolver interface {
	ByName(ctx context.Context, name string) (*country.Info, error)
	ByCode(ctx context.Context, code string) (*country.Info, error)
}

type AdviceGenerator interface {
	Generate(ctx context.Context, t advice.Trip, w *weather.Result, c *country.Info) (*advice.Result, error)
	Ask(ctx context.Context, question string, fc advice.FollowUpContext) (string, error)
}

// Planner builds travel plans. It holds no per-request state.
type Planner struct {
	weather WeatherResolver
	country CountryResolver
	advice  AdviceGenerator
	limits  config.Limits
	metrics *metrics.Metrics
	now     func() time.Time
	log     *slog.Logger
}

// Option customizes a Planner.
type Option func(*Planner)

// WithClock overrides the generated_at timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

func New(w WeatherResolver, c CountryResolver, a AdviceGenerator, limits config.Limits, m *metrics.Metrics, log *slog.Logger, opts ...Option) *Planner {
	p := &Planner{
		weather: w,
		country: c,
		advice:  a,
		limits:  limits,
		metrics: m,
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan validates req and assembles a full travel plan. Weather and country
// lookups degrade to nil; generation failures are returned as
// apperr.KindGeneration; anything else unexpected, panics included, becomes
// apperr.KindInternal.
func (p *Planner) Plan(ctx context.Context, req TripRequest) (res *PlanResult, err error) {
	ctx, span := otel.Tracer("Planner").Start(ctx, "Plan", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
	))
	defer span.End()

	defer func() {
		p.metrics.ObservePlan(err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, planFailedMsg)
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			p.log.ErrorContext(ctx, "plan generation panicked", "destination", req.Destination, "panic", r)
			res, err = nil, apperr.Wrap(apperr.KindInternal, planFailedMsg, fmt.Errorf("panic: %v", r))
		}
	}()

	start, end, err := p.validateRequest(&req)
	if err != nil {
		return nil, err
	}

	l := p.log.With("destination", req.Destination)
	l.InfoContext(ctx, "generating travel plan", "start", req.Dates.Start, "end", req.Dates.End, "duration_days", req.Dates.DurationDays)

	w, err := p.weather.Resolve(ctx, req.Destination, start, end)
	if err != nil {
		l.WarnContext(ctx, "weather unavailable", "err", err)
		w = nil
	}

	c := p.lookupCountry(ctx, req.Destination, w)

	adv, err := p.advice.Generate(ctx, req.adviceTrip(), w, c)
	if err != nil {
		if apperr.IsKind(err, apperr.KindGeneration) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindInternal, planFailedMsg, err)
	}
	if adv == nil {
		return nil, apperr.Wrap(apperr.KindInternal, planFailedMsg, errors.New("advice generator returned no result"))
	}

	span.SetAttributes(
		attribute.Bool("plan.has_weather", w != nil),
		attribute.Bool("plan.has_country", c != nil),
	)
	l.InfoContext(ctx, "travel plan generated")

	return &PlanResult{
		PlanID:      uuid.New(),
		Success:     true,
		Input:       req,
		Weather:     w,
		Country:     c,
		Advice:      adv,
		GeneratedAt: p.now(),
	}, nil
}

// lookupCountry prefers the geocoded ISO code and falls back to a name derived
// from the destination string. Failures yield nil.
func (p *Planner) lookupCountry(ctx context.Context, destination string, w *weather.Result) *country.Info {
	if w != nil && w.Coordinates.Country != "" {
		code := w.Coordinates.Country
		info, err := p.country.ByCode(ctx, code)
		if err == nil {
			return info
		}
		p.log.WarnContext(ctx, "country lookup by code failed", "code", code, "err", err)
	}

	name := countryName(destination)
	info, err := p.country.ByName(ctx, name)
	if err != nil {
		p.log.WarnContext(ctx, "country lookup by name failed", "name", name, "err", err)
		return nil
	}
	return info
}

// countryName guesses a country from a free-text destination: the part after
// the last comma, or the whole string. "New York, NY, USA" yields "USA", but
// "Springfield, IL" yields "IL".
func countryName(destination string) string {
	if i := strings.LastIndex(destination, ","); i >= 0 {
		return strings.TrimSpace(destination[i+1:])
	}
	return strings.TrimSpace(destination)
}

// AnswerFollowUp answers a single question about a trip.
func (p *Planner) AnswerFollowUp(ctx context.Context, question string, fc advice.FollowUpContext) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", apperr.Validation("Question is required", "question")
	}
	return p.advice.Ask(ctx, question, fc)
}

// ResolveWeather looks up weather for destination between the YYYY-MM-DD dates.
func (p *Planner) ResolveWeather(ctx context.Context, destination, startDate, endDate string) (*weather.Result, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, apperr.Validation("Missing required fields: destination", "destination")
	}
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	w, err := p.weather.Resolve(ctx, destination, start, end)
	if err != nil {
		if errors.Is(err, weather.ErrNotFound) {
			return nil, apperr.NotFound("Weather data not available")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to fetch weather", err)
	}
	return w, nil
}

// ResolveCountry looks up a country by name, or by ISO code when byCode is set.
func (p *Planner) ResolveCountry(ctx context.Context, nameOrCode string, byCode bool) (*country.Info, error) {
	var (
		info *country.Info
		err  error
	)
	if byCode {
		info, err = p.country.ByCode(ctx, nameOrCode)
	} else {
		info, err = p.country.ByName(ctx, nameOrCode)
	}
	if err != nil {
		if errors.Is(err, country.ErrNotFound) {
			return nil, apperr.NotFound("Country not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to fetch country", err)
	}
	return info, nil
}
