package advice

// Trip is the trip profile embedded into the advice prompt.
type Trip struct {
	Destination  string
	StartDate    string
	EndDate      string
	DurationDays int
	Purpose      string

	TravelerType  string
	TravelerCount int
	Composition   string
	AgeRange      string

	FoodPreferences []string

	AccommodationType     string
	AccommodationLocation string
	Budget                string

	SpecificQuestions string
}

// DateRange is an optional start/end pair in YYYY-MM-DD form.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FollowUpContext scopes a follow-up question to a trip.
type FollowUpContext struct {
	Destination string    `json:"destination"`
	Country     string    `json:"country"`
	Dates       DateRange `json:"dates"`
}

// Sections are the ten named parts of a generated reply plus the reply itself.
type Sections struct {
	Accommodation    string `json:"accommodation"`
	CurrencyPayments string `json:"currency_payments"`
	Transportation   string `json:"transportation"`
	CulturalGuide    string `json:"cultural_guide"`
	FoodDining       string `json:"food_dining"`
	Activities       string `json:"activities"`
	PracticalInfo    string `json:"practical_info"`
	Packing          string `json:"packing"`
	SafetyHealth     string `json:"safety_health"`
	SpecificAnswers  string `json:"specific_answers"`
	FullText         string `json:"full_text"`
}

// PowerAdapter describes plug requirements for the destination country.
type PowerAdapter struct {
	Description string `json:"description"`
	InfoURL     string `json:"info_url"`
}

// Result is the advice section of a travel plan.
type Result struct {
	Sections
	PowerAdapter PowerAdapter `json:"power_adapter"`
}
