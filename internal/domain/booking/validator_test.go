//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rvmarket/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	base := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func candidate(startOffset, endOffset int) booking.Candidate {
	return booking.Candidate{Start: day(startOffset), End: day(endOffset)}
}

func activeRange(startOffset, endOffset int) booking.ActiveRange {
	return booking.ActiveRange{Start: day(startOffset), End: day(endOffset)}
}

func fields(violations booking.Violations) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.Field
	}
	return out
}

func TestValidate(t *testing.T) {
	today := day(0)

	t.Run("valid candidate with no existing bookings", func(t *testing.T) {
		violations := booking.Validate(candidate(5, 7), nil, today)
		assert.Empty(t, violations)
	})

	t.Run("missing dates", func(t *testing.T) {
		violations := booking.Validate(booking.Candidate{}, nil, today)
		assert.ElementsMatch(t, []string{"start_date", "end_date"}, fields(violations))
	})

	t.Run("end date not after start date", func(t *testing.T) {
		cases := []struct {
			name  string
			start int
			end   int
		}{
			{name: "end equals start", start: 5, end: 5},
			{name: "end before start", start: 7, end: 5},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				violations := booking.Validate(candidate(tc.start, tc.end), nil, today)
				require.Len(t, violations, 1)
				assert.Equal(t, "end_date", violations[0].Field)
				assert.Equal(t, "end_date must be after start date", violations[0].Message)
			})
		}
	})

	t.Run("start date in the past", func(t *testing.T) {
		violations := booking.Validate(candidate(-1, 2), nil, today)
		require.Len(t, violations, 1)
		assert.Equal(t, "start_date", violations[0].Field)
		assert.Equal(t, "start_date cannot be in the past", violations[0].Message)
	})

	t.Run("start date today is allowed", func(t *testing.T) {
		violations := booking.Validate(candidate(0, 2), nil, today)
		assert.Empty(t, violations)
	})

	t.Run("overlap detection", func(t *testing.T) {
		existing := []booking.ActiveRange{activeRange(5, 7)}

		cases := []struct {
			name    string
			start   int
			end     int
			overlap bool
		}{
			{name: "identical range", start: 5, end: 7, overlap: true},
			{name: "contained within", start: 5, end: 6, overlap: true},
			{name: "contains existing", start: 4, end: 8, overlap: true},
			{name: "partial overlap at start", start: 4, end: 5, overlap: true},
			{name: "partial overlap at end", start: 7, end: 9, overlap: true},
			{name: "touching end date collides", start: 6, end: 8, overlap: true},
			{name: "day after existing end", start: 8, end: 10, overlap: false},
			{name: "ends day before existing start", start: 2, end: 4, overlap: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				violations := booking.Validate(candidate(tc.start, tc.end), existing, today)
				if tc.overlap {
					require.Len(t, violations, 1)
					assert.Equal(t, "base", violations[0].Field)
					assert.Equal(t, "booking dates overlap with existing booking", violations[0].Message)
				} else {
					assert.Empty(t, violations)
				}
			})
		}
	})

	t.Run("overlap is symmetric", func(t *testing.T) {
		a := booking.NewDateRange(day(5), day(7))
		b := booking.NewDateRange(day(6), day(8))
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("multiple violations accumulate", func(t *testing.T) {
		// Past start AND end before start: both reported, no short-circuit.
		violations := booking.Validate(candidate(-2, -3), nil, today)
		assert.ElementsMatch(t, []string{"start_date", "end_date"}, fields(violations))
	})

	t.Run("only one overlap violation for multiple collisions", func(t *testing.T) {
		existing := []booking.ActiveRange{activeRange(5, 7), activeRange(8, 10)}
		violations := booking.Validate(candidate(5, 10), existing, today)
		require.Len(t, violations, 1)
		assert.Equal(t, "base", violations[0].Field)
	})

	t.Run("validation is deterministic", func(t *testing.T) {
		existing := []booking.ActiveRange{activeRange(5, 7)}
		first := booking.Validate(candidate(6, 8), existing, today)
		second := booking.Validate(candidate(6, 8), existing, today)
		assert.Equal(t, first, second)
	})

	t.Run("time components are ignored", func(t *testing.T) {
		c := booking.Candidate{
			Start: day(5).Add(23 * time.Hour),
			End:   day(7).Add(1 * time.Minute),
		}
		existing := []booking.ActiveRange{{Start: day(7).Add(10 * time.Hour), End: day(9)}}
		violations := booking.Validate(c, existing, today.Add(15*time.Hour))
		require.Len(t, violations, 1)
		assert.Equal(t, "base", violations[0].Field)
	})
}
