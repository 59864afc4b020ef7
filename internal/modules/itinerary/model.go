// README: Itinerary aggregate: trip details, days, activities, budget.
package itinerary

import "trippy/internal/types"

// Itinerary is the terminal structured result of one generation stream. Once
// emitted it is a value object: the accumulator keeps no reference to it.
type Itinerary struct {
	TripDetails   TripDetails   `json:"tripDetails"`
	Days          []Day         `json:"days"`
	BudgetSummary BudgetSummary `json:"budgetSummary"`
}

type TripDetails struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	TravelGroup string `json:"travelGroup"`
}

type Day struct {
	Date       string     `json:"date"`
	DayNumber  int        `json:"dayNumber"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Location    ActivityLocation `json:"location"`
	StartTime   string           `json:"startTime"`
	Duration    string           `json:"duration"`
	Cost        string           `json:"cost"`
	Description string           `json:"description"`
}

// ActivityLocation is the location-like shape inside an activity; only name
// and position are required. Position is a pointer so an omitted field is
// distinguishable from coordinates at the origin.
type ActivityLocation struct {
	Name     string       `json:"name"`
	Position *types.Point `json:"position"`
}

type BudgetSummary struct {
	TotalEstimatedBudget string            `json:"totalEstimatedBudget"`
	CategoryBreakdown    map[string]string `json:"categoryBreakdown"`
}

// BudgetCategories are the five fixed keys every complete itinerary must
// carry in its category breakdown.
var BudgetCategories = []string{
	"accommodation",
	"food",
	"transportation",
	"activities",
	"miscellaneous",
}

// BudgetPlaceholder is the value shown for categories still being generated.
const BudgetPlaceholder = "Calculating..."

// Clone returns a deep copy of the itinerary: days, activities, position
// pointers and the budget map share nothing with the receiver, so an emitted
// snapshot stays stable while its source keeps mutating.
func (it *Itinerary) Clone() *Itinerary {
	out := *it

	out.Days = make([]Day, len(it.Days))
	for i, d := range it.Days {
		day := d
		day.Activities = make([]Activity, len(d.Activities))
		for j, a := range d.Activities {
			if a.Location.Position != nil {
				p := *a.Location.Position
				a.Location.Position = &p
			}
			day.Activities[j] = a
		}
		out.Days[i] = day
	}

	out.BudgetSummary.CategoryBreakdown = make(map[string]string, len(it.BudgetSummary.CategoryBreakdown))
	for k, v := range it.BudgetSummary.CategoryBreakdown {
		out.BudgetSummary.CategoryBreakdown[k] = v
	}
	return &out
}

// NewDraft returns the in-progress itinerary shown while the stream is still
// arriving: empty days and placeholder budget values, which the terminal
// validation would reject but the partial contract allows.
func NewDraft(details TripDetails) *Itinerary {
	breakdown := make(map[string]string, len(BudgetCategories))
	for _, cat := range BudgetCategories {
		breakdown[cat] = BudgetPlaceholder
	}
	return &Itinerary{
		TripDetails: details,
		BudgetSummary: BudgetSummary{
			TotalEstimatedBudget: BudgetPlaceholder,
			CategoryBreakdown:    breakdown,
		},
	}
}
