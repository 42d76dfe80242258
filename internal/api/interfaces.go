package api

import (
	"context"

	"github.com/neexbeast/tripwise/internal/advice"
	"github.com/neexbeast/tripwise/internal/country"
	"github.com/neexbeast/tripwise/internal/planner"
	"github.com/neexbeast/tripwise/internal/weather"
)

// TripPlanner defines the planning operations needed by handlers.
type TripPlanner interface {
	Plan(ctx context.Context, req planner.TripRequest) (*planner.PlanResult, error)
	AnswerFollowUp(ctx context.Context, question string, fc advice.FollowUpContext) (string, error)
	ResolveWeather(ctx context.Context, destination, startDate, endDate string) (*weather.Result, error)
	ResolveCountry(ctx context.Context, nameOrCode string, byCode bool) (*country.Info, error)
}

// ConfigChecker reports whether the required upstream credentials are set.
type ConfigChecker interface {
	Validate() error
	APIStatus() map[string]bool
}
