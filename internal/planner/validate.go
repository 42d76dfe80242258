package planner

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/neexbeast/tripwise/internal/apperr"
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest normalizes req, checks required fields and limits, and
// returns the parsed trip dates. req.Dates.DurationDays is set on success.
func (p *Planner) validateRequest(req *TripRequest) (time.Time, time.Time, error) {
	req.Destination = strings.TrimSpace(req.Destination)

	if err := validate.Struct(req); err != nil {
		return time.Time{}, time.Time{}, structError(err)
	}

	start, end, err := parseRange(req.Dates.Start, req.Dates.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	days := durationDays(start, end)
	if p.limits.MaxTripDays > 0 && days > p.limits.MaxTripDays {
		return time.Time{}, time.Time{}, apperr.Validation(
			fmt.Sprintf("Trip duration of %d days exceeds the maximum of %d", days, p.limits.MaxTripDays), "dates")
	}
	if p.limits.MaxTravelers > 0 && req.Travelers.Count > p.limits.MaxTravelers {
		return time.Time{}, time.Time{}, apperr.Validation(
			fmt.Sprintf("Number of travelers exceeds the maximum of %d", p.limits.MaxTravelers), "travelers.count")
	}

	req.Dates.DurationDays = days
	return start, end, nil
}

// parseRange parses an inclusive YYYY-MM-DD range and rejects end < start.
func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	var missing []string
	if strings.TrimSpace(startStr) == "" {
		missing = append(missing, "dates.start")
	}
	if strings.TrimSpace(endStr) == "" {
		missing = append(missing, "dates.end")
	}
	if len(missing) > 0 {
		return time.Time{}, time.Time{}, apperr.Validation("Missing required fields: "+strings.Join(missing, ", "), missing...)
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(startStr))
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("Invalid start date, expected YYYY-MM-DD", "dates.start")
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(endStr))
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("Invalid end date, expected YYYY-MM-DD", "dates.end")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, apperr.Validation("End date must not be before start date", "dates.start", "dates.end")
	}
	return start, end, nil
}

func durationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// structError turns validator failures into a client error listing the json
// paths of the offending fields.
func structError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.KindValidation, "Invalid request", err)
	}

	var missing, invalid []string
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		if fe.Tag() == "required" {
			missing = append(missing, field)
		} else {
			invalid = append(invalid, field)
		}
	}

	if len(missing) > 0 {
		return apperr.Validation("Missing required fields: "+strings.Join(missing, ", "), append(missing, invalid...)...)
	}
	return apperr.Validation("Invalid fields: "+strings.Join(invalid, ", "), invalid...)
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
