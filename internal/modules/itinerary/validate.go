// README: Structural validation for terminal itineraries.
package itinerary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoItinerary is the terminal failure when a stream ends before a valid
// itinerary was ever assembled.
var ErrNoItinerary = errors.New("no valid itinerary data received")

// Validate checks the full structural invariants an itinerary must satisfy
// before it may be surfaced as a terminal result. Partial updates are exempt;
// they only need to parse. Any error here keeps the accumulator collecting.
func Validate(it *Itinerary) error {
	if it == nil {
		return errors.New("nil itinerary")
	}
	if err := validateTripDetails(it.TripDetails); err != nil {
		return err
	}
	if len(it.Days) == 0 {
		return errors.New("itinerary has no days")
	}
	for i, day := range it.Days {
		if err := validateDay(day, i); err != nil {
			return err
		}
	}
	return validateBudget(it.BudgetSummary)
}

func validateTripDetails(d TripDetails) error {
	fields := map[string]string{
		"destination": d.Destination,
		"startDate":   d.StartDate,
		"endDate":     d.EndDate,
		"travelGroup": d.TravelGroup,
	}
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("tripDetails missing %s", name)
		}
	}
	return nil
}

func validateDay(day Day, index int) error {
	if strings.TrimSpace(day.Date) == "" {
		return fmt.Errorf("day %d missing date", index+1)
	}
	// Day numbers are 1-based and contiguous in stream order.
	if day.DayNumber != index+1 {
		return fmt.Errorf("day %d has dayNumber %d", index+1, day.DayNumber)
	}
	if len(day.Activities) == 0 {
		return fmt.Errorf("day %d has no activities", index+1)
	}
	for _, act := range day.Activities {
		if err := validateActivity(act); err != nil {
			return fmt.Errorf("day %d: %w", index+1, err)
		}
	}
	return nil
}

func validateActivity(a Activity) error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return errors.New("activity missing name")
	case strings.TrimSpace(a.StartTime) == "":
		return fmt.Errorf("activity %q missing startTime", a.Name)
	case strings.TrimSpace(a.Duration) == "":
		return fmt.Errorf("activity %q missing duration", a.Name)
	case strings.TrimSpace(a.Cost) == "":
		return fmt.Errorf("activity %q missing cost", a.Name)
	case strings.TrimSpace(a.Location.Name) == "":
		return fmt.Errorf("activity %q missing location name", a.Name)
	case a.Location.Position == nil:
		return fmt.Errorf("activity %q missing position", a.Name)
	case !a.Location.Position.Valid():
		return fmt.Errorf("activity %q has out-of-range position", a.Name)
	}
	return nil
}

func validateBudget(b BudgetSummary) error {
	if strings.TrimSpace(b.TotalEstimatedBudget) == "" {
		return errors.New("budgetSummary missing totalEstimatedBudget")
	}
	for _, cat := range BudgetCategories {
		if v, ok := b.CategoryBreakdown[cat]; !ok || strings.TrimSpace(v) == "" {
			return fmt.Errorf("budgetSummary missing category %s", cat)
		}
	}
	return nil
}
