package services

import (
	"fmt"
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
)

// monthWindow computes the inclusive calendar-month reporting window from
// calendar rules, so month length and leap years fall out of the date math
// rather than a fixed 30/31-day span.
func monthWindow(month, year int) (start, end time.Time, err error) {
	if month < 1 || month > 12 {
		return start, end, errs.NewInvalidTimeWindowError(fmt.Sprintf("month must be between 1 and 12, got %d", month))
	}
	if year < 1 {
		return start, end, errs.NewInvalidTimeWindowError(fmt.Sprintf("year must be positive, got %d", year))
	}
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end, nil
}
