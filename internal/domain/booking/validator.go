package booking

import (
	"strings"
	"time"
)

// Candidate is a proposed reservation before it becomes a Booking. Zero time
// values represent missing dates so the validator can report their absence.
type Candidate struct {
	Start time.Time
	End   time.Time
}

// ActiveRange is the snapshot row the validator checks a candidate against:
// the date range of an existing booking whose status is pending or confirmed.
// The caller must filter out rejected bookings before building the snapshot.
type ActiveRange struct {
	Start time.Time
	End   time.Time
}

type Violation struct {
	Field   string
	Message string
}

type Violations []Violation

func (v Violations) Messages() []string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Message
	}
	return msgs
}

// ValidationError carries the full violation list so callers can surface
// every failure in one response.
type ValidationError struct {
	Violations Violations
}

// OverlapViolation is the violation recorded when a candidate range collides
// with an existing active booking. The storage layer reports the same
// violation when its exclusion constraint fires first.
func OverlapViolation() Violation {
	return Violation{Field: "base", Message: "booking dates overlap with existing booking"}
}

func (e *ValidationError) Error() string {
	return "booking validation failed: " + strings.Join(e.Violations.Messages(), "; ")
}

// Validate checks a candidate range against the committed snapshot of active
// bookings for the target listing. All applicable checks run; nothing
// short-circuits, so the result reports every violation at once. Validation is
// pure: the same candidate and snapshot always produce the same result.
func Validate(candidate Candidate, existing []ActiveRange, today time.Time) Violations {
	var violations Violations

	hasStart := !candidate.Start.IsZero()
	hasEnd := !candidate.End.IsZero()

	if !hasStart {
		violations = append(violations, Violation{Field: "start_date", Message: "start_date is required"})
	}
	if !hasEnd {
		violations = append(violations, Violation{Field: "end_date", Message: "end_date is required"})
	}

	start := TruncateToDate(candidate.Start)
	end := TruncateToDate(candidate.End)

	if hasStart && hasEnd && !end.After(start) {
		violations = append(violations, Violation{Field: "end_date", Message: "end_date must be after start date"})
	}

	if hasStart && start.Before(TruncateToDate(today)) {
		violations = append(violations, Violation{Field: "start_date", Message: "start_date cannot be in the past"})
	}

	if hasStart && hasEnd {
		candidateRange := NewDateRange(candidate.Start, candidate.End)
		for _, r := range existing {
			if candidateRange.Overlaps(NewDateRange(r.Start, r.End)) {
				violations = append(violations, OverlapViolation())
				break
			}
		}
	}

	return violations
}
