package analytics

import (
	"fmt"
	"time"
)

// GridSize is the fixed cell count of a displayed month: six Sunday-first
// weeks of seven days.
const GridSize = 42

// DayCell is one cell of the month grid. Blank padding cells have Day 0 and
// no date key. Summary is nil for days without records; a day whose records
// total zero still carries a non-nil summary.
type DayCell struct {
	Day        int      `json:"day"`
	DateKey    string   `json:"date_key,omitempty"`
	IsToday    bool     `json:"is_today"`
	IsSelected bool     `json:"is_selected"`
	Summary    *Summary `json:"summary,omitempty"`
}

// MonthGrid builds the calendar grid for one month: leading blanks align
// the first day under its weekday column, then one populated cell per day,
// then trailing blanks up to GridSize. IsToday is a wall-clock read at
// build time. Selection is not owned here: selectedKey is round-tripped
// from the calling view.
func MonthGrid[R any](year int, month time.Month, grouped *Grouped[R], fields FieldSet[R], selectedKey string, loc *time.Location) []DayCell {
	return monthGridAt(year, month, grouped, fields, selectedKey, loc, time.Now())
}

func monthGridAt[R any](year int, month time.Month, grouped *Grouped[R], fields FieldSet[R], selectedKey string, loc *time.Location, now time.Time) []DayCell {
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday()) // Sunday-first week

	today := now.In(loc).Format("2006-01-02")

	cells := make([]DayCell, 0, GridSize)
	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{})
	}

	for day := 1; day <= daysInMonth; day++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		cell := DayCell{
			Day:        day,
			DateKey:    key,
			IsToday:    key == today,
			IsSelected: key == selectedKey,
		}
		if grouped != nil && grouped.Has(key) {
			summary := Summarize(grouped.Get(key), fields)
			cell.Summary = &summary
		}
		cells = append(cells, cell)
	}

	for len(cells) < GridSize {
		cells = append(cells, DayCell{})
	}

	return cells
}
