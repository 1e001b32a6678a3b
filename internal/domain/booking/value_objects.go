package booking

import (
	"strings"
	"time"
)

// Period is the half-open interval a booking claims. Both bounds are fixed
// at creation and never mutated afterwards.
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod validates the proposed interval against now. Every violated
// rule is reported, not just the first one, so the caller sees all date
// problems in a single error.
func NewPeriod(start, end, now time.Time) (Period, error) {
	var problems []string
	if start.Before(now) {
		problems = append(problems, "start date must not be in the past")
	}
	if end.Before(now) {
		problems = append(problems, "end date must not be in the past")
	}
	if !end.After(start) {
		problems = append(problems, "end date must be after start date")
	}
	if len(problems) > 0 {
		return Period{}, &PeriodError{Problems: problems}
	}

	return Period{start: start, end: end}, nil
}

// ReconstructPeriod rehydrates a stored interval without re-validating it
// against the current instant.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// PeriodError carries every date rule the proposed interval violated.
type PeriodError struct {
	Problems []string
}

func (e *PeriodError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *PeriodError) Is(target error) bool {
	return target == ErrInvalidPeriod
}
