package util

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Midnight truncates a timestamp to its UTC calendar day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

func IsBusinessDay(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// PeriodStart resolves a lookback token ("2y", "6mo", ...) to the window
// start relative to now. Unknown tokens are a client fault, not a default.
func PeriodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case "1mo":
		return now.AddDate(0, -1, 0), nil
	case "3mo":
		return now.AddDate(0, -3, 0), nil
	case "6mo":
		return now.AddDate(0, -6, 0), nil
	case "1y":
		return now.AddDate(-1, 0, 0), nil
	case "2y":
		return now.AddDate(-2, 0, 0), nil
	case "5y":
		return now.AddDate(-5, 0, 0), nil
	case "10y":
		return now.AddDate(-10, 0, 0), nil
	case "max":
		return now.AddDate(-30, 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("unknown period %q", period)
}
