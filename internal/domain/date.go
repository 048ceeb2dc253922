package domain

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/antocd/clubman-go/pkg/errors"
)

// DateLayout is the operator-facing join date format.
const DateLayout = "02/01/2006"

// DefaultMinJoinYear is the earliest join year accepted unless configured
// otherwise.
const DefaultMinJoinYear = 1950

// DateRule validates the join date components an operator types in.
//
// The default (legacy) day rule caps every month at 31 days, the four 30-day
// months at 30, and February at 28 — February 29 is rejected even in leap
// years. Strict mode validates against the real calendar instead.
type DateRule struct {
	MinYear int
	Strict  bool
}

func (r DateRule) minYear() int {
	if r.MinYear <= 0 {
		return DefaultMinJoinYear
	}
	return r.MinYear
}

// ValidateYear accepts years from the rule's minimum through the current
// calendar year.
func (r DateRule) ValidateYear(year int, now time.Time) error {
	if year < r.minYear() || year > now.Year() {
		return apperrors.NewValidationError("year out of the accepted range", "year", year)
	}
	return nil
}

func (r DateRule) ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return apperrors.NewValidationError("month must be between 1 and 12", "month", month)
	}
	return nil
}

// ValidateDay checks the day against the month (and, in strict mode, the
// year). Callers must have validated the month first.
func (r DateRule) ValidateDay(day, month, year int) error {
	if day < 1 {
		return apperrors.NewValidationError("day is not valid for that month", "day", day)
	}
	if r.Strict {
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
			return apperrors.NewValidationError("day is not valid for that month", "day", day)
		}
		return nil
	}
	if day > 31 || (day > 30 && thirtyDayMonth(month)) || (day > 28 && month == 2) {
		return apperrors.NewValidationError("day is not valid for that month", "day", day)
	}
	return nil
}

func thirtyDayMonth(month int) bool {
	switch month {
	case 4, 6, 9, 11:
		return true
	}
	return false
}

// Validate runs the year, month and day checks together and returns the
// resulting calendar date.
func (r DateRule) Validate(day, month, year int, now time.Time) (time.Time, error) {
	if err := r.ValidateYear(year, now); err != nil {
		return time.Time{}, err
	}
	if err := r.ValidateMonth(month); err != nil {
		return time.Time{}, err
	}
	if err := r.ValidateDay(day, month, year); err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// Parse reads a dd/mm/yyyy string and runs it through the same component
// checks as Validate, so typed and prompted dates obey one rule set.
func (r DateRule) Parse(s string, now time.Time) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, apperrors.NewValidationError("date must look like dd/mm/yyyy", "date", s)
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return time.Time{}, apperrors.NewValidationError("date must look like dd/mm/yyyy", "date", s)
		}
		nums[i] = n
	}
	return r.Validate(nums[0], nums[1], nums[2], now)
}
