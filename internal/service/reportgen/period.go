package reportgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

const dateLayout = "2006-01-02"

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// PeriodLabel renders the human-readable label for a reporting period:
// "1st May 2024" for a day, "29th Apr – 5th May 2024" for the Monday-bounded
// week around the date, "May 2024" for a month. Month periods carry a
// case-insensitive three-letter month key and resolve against now's year;
// an unrecognized key is an error rather than a silent bad date.
func PeriodLabel(period models.Period, now time.Time) (string, error) {
	switch period.Kind {
	case models.PeriodDay:
		day, err := time.Parse(dateLayout, period.Date)
		if err != nil {
			return "", fmt.Errorf("parse report date %q: %w", period.Date, err)
		}
		return fmt.Sprintf("%s %s %d", ordinal(day.Day()), day.Month(), day.Year()), nil

	case models.PeriodWeek:
		ref, err := time.Parse(dateLayout, period.Date)
		if err != nil {
			return "", fmt.Errorf("parse report date %q: %w", period.Date, err)
		}
		start := startOfWeek(ref)
		end := start.AddDate(0, 0, 6)
		return fmt.Sprintf("%s %s – %s %s %d",
			ordinal(start.Day()), start.Month().String()[:3],
			ordinal(end.Day()), end.Month().String()[:3], end.Year()), nil

	case models.PeriodMonth:
		month, ok := monthIndex[strings.ToLower(strings.TrimSpace(period.Date))]
		if !ok {
			return "", fmt.Errorf("unknown month key %q", period.Date)
		}
		return fmt.Sprintf("%s %d", month, now.Year()), nil
	}

	return "", fmt.Errorf("unknown report period %q", period.Kind)
}

// startOfWeek returns the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func ordinal(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
		// teens keep "th"
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(day) + suffix
}
