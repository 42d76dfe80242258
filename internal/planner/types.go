package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/neexbeast/tripwise/internal/advice"
	"github.com/neexbeast/tripwise/internal/country"
	"github.com/neexbeast/tripwise/internal/weather"
)

// DateRange is an inclusive pair of calendar dates (YYYY-MM-DD).
// DurationDays is derived by Plan.
type DateRange struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	DurationDays int    `json:"duration_days,omitempty"`
}

type Travelers struct {
	Type        string `json:"type,omitempty"`
	Count       int    `json:"count,omitempty" validate:"gte=0"`
	Composition string `json:"composition,omitempty"`
	AgeRange    string `json:"age_range,omitempty"`
}

type Accommodation struct {
	Type     string `json:"type,omitempty"`
	Location string `json:"location,omitempty"`
	Budget   string `json:"budget,omitempty"`
}

// TripRequest is the user's trip form.
type TripRequest struct {
	Destination       string        `json:"destination" validate:"required"`
	Dates             *DateRange    `json:"dates" validate:"required"`
	Purpose           string        `json:"purpose,omitempty"`
	Travelers         Travelers     `json:"travelers"`
	FoodPreferences   []string      `json:"food_preferences,omitempty"`
	Accommodation     Accommodation `json:"accommodation"`
	SpecificQuestions string        `json:"specific_questions,omitempty"`
}

// PlanResult is the complete travel plan. Weather and Country are nil when
// their lookups came back empty.
type PlanResult struct {
	PlanID      uuid.UUID       `json:"plan_id"`
	Success     bool            `json:"success"`
	Input       TripRequest     `json:"input"`
	Weather     *weather.Result `json:"weather"`
	Country     *country.Info   `json:"country"`
	Advice      *advice.Result  `json:"advice"`
	GeneratedAt time.Time       `json:"generated_at"`
}

func (r TripRequest) adviceTrip() advice.Trip {
	return advice.Trip{
		Destination:           r.Destination,
		StartDate:             r.Dates.Start,
		EndDate:               r.Dates.End,
		DurationDays:          r.Dates.DurationDays,
		Purpose:               r.Purpose,
		TravelerType:          r.Travelers.Type,
		TravelerCount:         r.Travelers.Count,
		Composition:           r.Travelers.Composition,
		AgeRange:              r.Travelers.AgeRange,
		FoodPreferences:       r.FoodPreferences,
		AccommodationType:     r.Accommodation.Type,
		AccommodationLocation: r.Accommodation.Location,
		Budget:                r.Accommodation.Budget,
		SpecificQuestions:     r.SpecificQuestions,
	}
}
