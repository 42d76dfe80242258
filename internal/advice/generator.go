// Package advice builds the travel-advice prompt, sends it to a text
// generator and splits the reply into named sections.
package advice

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neexbeast/tripwise/internal/apperr"
	"github.com/neexbeast/tripwise/internal/config"
	"github.com/neexbeast/tripwise/internal/country"
	"github.com/neexbeast/tripwise/internal/weather"
)

// Generator produces travel advice from a TextGenerator.
type Generator struct {
	llm TextGenerator
	cfg config.Advice
	log *slog.Logger
}

func NewGenerator(llm TextGenerator, cfg config.Advice, log *slog.Logger) *Generator {
	return &Generator{llm: llm, cfg: cfg, log: log}
}

// Generate prompts the model with the trip, weather and country data and
// parses its reply. w and c may be nil. A generation failure is returned as an
// apperr.KindGeneration error.
func (g *Generator) Generate(ctx context.Context, t Trip, w *weather.Result, c *country.Info) (*Result, error) {
	ctx, span := otel.Tracer("Advice").Start(ctx, "Generate", trace.WithAttributes(
		attribute.String("trip.destination", t.Destination),
		attribute.Int("trip.duration_days", t.DurationDays),
		attribute.Bool("trip.has_weather", w != nil),
		attribute.Bool("trip.has_country", c != nil),
	))
	defer span.End()

	g.log.InfoContext(ctx, "generating travel advice", "destination", t.Destination)

	text, err := g.llm.Generate(ctx, BuildPrompt(t, w, c))
	if err != nil {
		g.log.ErrorContext(ctx, "travel advice generation failed", "destination", t.Destination, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return nil, apperr.Wrap(apperr.KindGeneration, "Failed to generate travel advice", err)
	}

	countryName := ""
	if c != nil {
		countryName = c.Name
	}

	res := &Result{
		Sections: ParseSections(text),
		PowerAdapter: PowerAdapter{
			Description: ExtractPowerAdapter(text),
			InfoURL:     AdapterURL(g.cfg.AdapterBaseURL, g.cfg.AdapterFallbackURL, countryName),
		},
	}

	span.SetAttributes(attribute.Int("advice.length", len(text)))
	span.SetStatus(codes.Ok, "")
	g.log.InfoContext(ctx, "travel advice generated", "destination", t.Destination, "adapter_url", res.PowerAdapter.InfoURL)
	return res, nil
}

// Ask answers a single follow-up question and returns the raw reply.
func (g *Generator) Ask(ctx context.Context, question string, fc FollowUpContext) (string, error) {
	ctx, span := otel.Tracer("Advice").Start(ctx, "Ask", trace.WithAttributes(
		attribute.String("trip.destination", fc.Destination),
	))
	defer span.End()

	g.log.InfoContext(ctx, "answering follow-up question", "destination", fc.Destination)

	answer, err := g.llm.Generate(ctx, BuildFollowUpPrompt(question, fc))
	if err != nil {
		g.log.ErrorContext(ctx, "follow-up question failed", "destination", fc.Destination, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return "", apperr.Wrap(apperr.KindGeneration, "Failed to answer question", err)
	}

	span.SetStatus(codes.Ok, "")
	return answer, nil
}
