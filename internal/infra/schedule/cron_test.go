package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, expr string) *Expression {
	t.Helper()
	parsed, err := Parse(expr)
	require.NoError(t, err)

	return parsed
}

func TestParse_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"* * * *",
		"* * * * * *",
		"60 * * * *",
		"* 24 * * *",
		"* * 0 * *",
		"* * * 13 *",
		"* * * * 8",
		"5-1 * * * *",
		"*/0 * * * *",
		"a * * * *",
	}
	for _, expr := range invalid {
		_, err := Parse(expr)
		assert.Error(t, err, "expression %q should not parse", expr)
	}
}

func TestMatches(t *testing.T) {
	// 02:30 every day
	expr := mustParse(t, "30 2 * * *")
	assert.True(t, expr.Matches(time.Date(2026, 9, 1, 2, 30, 0, 0, time.UTC)))
	assert.False(t, expr.Matches(time.Date(2026, 9, 1, 2, 31, 0, 0, time.UTC)))
	assert.False(t, expr.Matches(time.Date(2026, 9, 1, 3, 30, 0, 0, time.UTC)))
}

func TestMatches_Steps(t *testing.T) {
	expr := mustParse(t, "*/15 * * * *")
	for _, minute := range []int{0, 15, 30, 45} {
		assert.True(t, expr.Matches(time.Date(2026, 9, 1, 10, minute, 0, 0, time.UTC)))
	}
	assert.False(t, expr.Matches(time.Date(2026, 9, 1, 10, 20, 0, 0, time.UTC)))
}

func TestMatches_SundayAsSeven(t *testing.T) {
	expr := mustParse(t, "0 9 * * 7")
	// 2026-09-06 is a Sunday
	assert.True(t, expr.Matches(time.Date(2026, 9, 6, 9, 0, 0, 0, time.UTC)))
	assert.False(t, expr.Matches(time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)))
}

func TestMatches_Names(t *testing.T) {
	// 09:00 on weekdays in the southern winter, names case-insensitive.
	expr := mustParse(t, "0 9 * jun-AUG Mon-fri")
	// 2026-07-06 is a Monday in July
	assert.True(t, expr.Matches(time.Date(2026, 7, 6, 9, 0, 0, 0, time.UTC)))
	// 2026-07-05 is a Sunday
	assert.False(t, expr.Matches(time.Date(2026, 7, 5, 9, 0, 0, 0, time.UTC)))
	// 2026-09-07 is a Monday but September is out of range
	assert.False(t, expr.Matches(time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)))

	// Names in lists too.
	expr = mustParse(t, "0 0 * * SAT,SUN")
	// 2026-09-05 is a Saturday
	assert.True(t, expr.Matches(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)))
	assert.False(t, expr.Matches(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))

	// Names belong to their own field.
	_, err := Parse("0 9 * MON *")
	assert.Error(t, err)
}

func TestMatches_DayFieldsAreORedWhenBothRestricted(t *testing.T) {
	// the 15th, or any Monday
	expr := mustParse(t, "0 0 15 * 1")
	// 2026-09-15 is a Tuesday: matches via day-of-month
	assert.True(t, expr.Matches(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)))
	// 2026-09-14 is a Monday: matches via day-of-week
	assert.True(t, expr.Matches(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)))
	// 2026-09-16 is a Wednesday
	assert.False(t, expr.Matches(time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)))
}

func TestNext(t *testing.T) {
	expr := mustParse(t, "30 2 * * *")
	from := time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 2, 2, 30, 0, 0, time.UTC), expr.Next(from))

	// Same minute is excluded: Next is strictly after from.
	from = time.Date(2026, 9, 1, 2, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 2, 2, 30, 0, 0, time.UTC), expr.Next(from))
}

func TestNext_MonthRollover(t *testing.T) {
	expr := mustParse(t, "0 0 1 * *")
	from := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), expr.Next(from))
}

func TestNext_ImpossibleDate(t *testing.T) {
	expr := mustParse(t, "0 0 30 2 *")
	next := expr.Next(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, next.IsZero())
}
