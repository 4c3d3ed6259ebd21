// Package schedule evaluates five-field cron expressions for the admin job
// runner. Supported syntax: "*", numbers, ranges (a-b), lists (a,b,c),
// steps (*/n, a-b/n) and three-letter month/weekday names (JAN, MON) per
// field, fields ordered minute hour day-of-month month day-of-week.
package schedule

import (
	"strconv"
	"strings"
	"time"

	"tapadmin/internal/errors"
)

// ErrInvalidExpression is returned when a cron expression cannot be parsed.
var ErrInvalidExpression = errors.New("invalid cron expression")

type fieldSpec struct {
	min, max int
	names    map[string]int
}

var monthNames = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

var dayNames = map[string]int{
	"SUN": 0, "MON": 1, "TUE": 2, "WED": 3, "THU": 4, "FRI": 5, "SAT": 6,
}

var fieldSpecs = [5]fieldSpec{
	{min: 0, max: 59},                    // minute
	{min: 0, max: 23},                    // hour
	{min: 1, max: 31},                    // day of month
	{min: 1, max: 12, names: monthNames}, // month
	{min: 0, max: 6, names: dayNames},    // day of week, 0 = Sunday
}

// Expression is a parsed cron schedule.
type Expression struct {
	fields [5]map[int]bool
	// dom/dow wildcards matter: cron ORs the day fields when both are
	// restricted and ANDs them otherwise.
	domStar bool
	dowStar bool
}

// Parse parses a five-field cron expression.
func Parse(expr string) (*Expression, error) {
	parts := strings.Fields(strings.TrimSpace(expr))
	if len(parts) != 5 {
		return nil, errors.Wrapf(ErrInvalidExpression, "want 5 fields, got %d", len(parts))
	}

	parsed := &Expression{
		domStar: parts[2] == "*",
		dowStar: parts[4] == "*",
	}
	for i, part := range parts {
		set, err := parseField(part, fieldSpecs[i])
		if err != nil {
			return nil, errors.Wrapf(err, "field %d (%s)", i+1, part)
		}
		parsed.fields[i] = set
	}

	return parsed, nil
}

// Matches reports whether the expression fires at the given time, evaluated
// in t's location. Seconds are ignored.
func (e *Expression) Matches(t time.Time) bool {
	if !e.fields[0][t.Minute()] || !e.fields[1][t.Hour()] || !e.fields[3][int(t.Month())] {
		return false
	}

	domMatch := e.fields[2][t.Day()]
	dowMatch := e.fields[4][int(t.Weekday())]
	switch {
	case e.domStar && e.dowStar:
		return true
	case e.domStar:
		return dowMatch
	case e.dowStar:
		return domMatch
	default:
		return domMatch || dowMatch
	}
}

// Next returns the first time strictly after from at which the expression
// fires, or the zero time if none exists within four years (an impossible
// date like Feb 30).
func (e *Expression) Next(from time.Time) time.Time {
	// Truncate to the next whole minute.
	t := from.Truncate(time.Minute).Add(time.Minute)
	limit := from.AddDate(4, 0, 0)

	for t.Before(limit) {
		if !e.fields[3][int(t.Month())] {
			t = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)

			continue
		}
		if !e.dayMatches(t) {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)

			continue
		}
		if !e.fields[1][t.Hour()] {
			t = t.Truncate(time.Hour).Add(time.Hour)

			continue
		}
		if !e.fields[0][t.Minute()] {
			t = t.Add(time.Minute)

			continue
		}

		return t
	}

	return time.Time{}
}

func (e *Expression) dayMatches(t time.Time) bool {
	domMatch := e.fields[2][t.Day()]
	dowMatch := e.fields[4][int(t.Weekday())]
	switch {
	case e.domStar && e.dowStar:
		return true
	case e.domStar:
		return dowMatch
	case e.dowStar:
		return domMatch
	default:
		return domMatch || dowMatch
	}
}

func parseField(field string, spec fieldSpec) (map[int]bool, error) {
	set := make(map[int]bool)
	for _, part := range strings.Split(field, ",") {
		if err := parseRange(part, spec, set); err != nil {
			return nil, err
		}
	}
	if len(set) == 0 {
		return nil, ErrInvalidExpression
	}

	return set, nil
}

func parseRange(part string, spec fieldSpec, set map[int]bool) error {
	step := 1
	if idx := strings.IndexByte(part, '/'); idx >= 0 {
		parsedStep, err := strconv.Atoi(part[idx+1:])
		if err != nil || parsedStep <= 0 {
			return errors.Wrap(ErrInvalidExpression, "bad step")
		}
		step = parsedStep
		part = part[:idx]
	}

	lo, hi := spec.min, spec.max
	switch {
	case part == "*":
		// full range
	case strings.Contains(part, "-"):
		bounds := strings.SplitN(part, "-", 2)
		var err error
		lo, err = parseBound(bounds[0], spec)
		if err != nil {
			return err
		}
		hi, err = parseBound(bounds[1], spec)
		if err != nil {
			return err
		}
		if lo > hi {
			return errors.Wrap(ErrInvalidExpression, "descending range")
		}
	default:
		val, err := parseBound(part, spec)
		if err != nil {
			return err
		}
		lo, hi = val, val
	}

	for v := lo; v <= hi; v += step {
		set[v] = true
	}

	return nil
}

func parseBound(s string, spec fieldSpec) (int, error) {
	if named, ok := spec.names[strings.ToUpper(s)]; ok {
		return named, nil
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidExpression, "not a number: %s", s)
	}
	// Cron allows Sunday as 7 in the day-of-week field.
	if spec.min == 0 && spec.max == 6 && val == 7 {
		val = 0
	}
	if val < spec.min || val > spec.max {
		return 0, errors.Wrapf(ErrInvalidExpression, "value %d out of range [%d,%d]", val, spec.min, spec.max)
	}

	return val, nil
}
