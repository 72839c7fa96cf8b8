// Package data contains the record model, accessors and dataset loaders
// used by the charts.
//
// A Record is one observation (a day of weather, a country, a painting).
// Fields are read through accessors which report whether a value is
// defined; undefined values never reach a scale.
package data

import (
	"math"
	"strconv"
	"time"

	"github.com/aclements/go-gg/generic/slice"
)

// Record maps field names to scalar values. Values are float64, string,
// time.Time or []string. A missing key, a nil value or a NaN is undefined.
// Records are not modified after they have been parsed.
type Record map[string]any

// Accessor extracts one numeric field from a record. The bool reports
// whether the value is defined.
type Accessor func(Record) (float64, bool)

// CategoryAccessor extracts one categorical field from a record.
type CategoryAccessor func(Record) (string, bool)

// Number returns an accessor for the numeric field. Integer values are
// converted, strings are not parsed.
func Number(field string) Accessor {
	return func(r Record) (float64, bool) {
		switch v := r[field].(type) {
		case float64:
			return v, !math.IsNaN(v) && !math.IsInf(v, 0)
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		}
		return math.NaN(), false
	}
}

// Date returns an accessor for a date field which yields unix seconds.
// String values are parsed with layout in UTC.
func Date(field, layout string) Accessor {
	return func(r Record) (float64, bool) {
		switch v := r[field].(type) {
		case time.Time:
			return float64(v.Unix()), !v.IsZero()
		case string:
			t, err := time.ParseInLocation(layout, v, time.UTC)
			if err != nil {
				return math.NaN(), false
			}
			return float64(t.Unix()), true
		}
		return math.NaN(), false
	}
}

// Scaled multiplies the values of acc by factor.
func Scaled(acc Accessor, factor float64) Accessor {
	return func(r Record) (float64, bool) {
		v, ok := acc(r)
		if !ok {
			return v, false
		}
		return v * factor, true
	}
}

// Category returns an accessor for a string field. Numbers are formatted.
func Category(field string) CategoryAccessor {
	return func(r Record) (string, bool) {
		switch v := r[field].(type) {
		case string:
			return v, v != ""
		case float64:
			if math.IsNaN(v) {
				return "", false
			}
			return strconv.FormatFloat(v, 'g', -1, 64), true
		}
		return "", false
	}
}

// Extent returns the minimum and maximum defined value of acc over records
// and the number of records which had a defined value. If n is 0 min and
// max are NaN.
func Extent(records []Record, acc Accessor) (min, max float64, n int) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, r := range records {
		v, ok := acc(r)
		if !ok {
			continue
		}
		min, max = math.Min(min, v), math.Max(max, v)
		n++
	}
	if n == 0 {
		return math.NaN(), math.NaN(), 0
	}
	return min, max, n
}

// Categories returns the distinct defined values of cat in first-seen order.
func Categories(records []Record, cat CategoryAccessor) []string {
	all := make([]string, 0, len(records))
	for _, r := range records {
		if c, ok := cat(r); ok {
			all = append(all, c)
		}
	}
	return slice.Nub(all).([]string)
}

// Filter returns the records for which acc is defined.
func Filter(records []Record, acc Accessor) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if _, ok := acc(r); ok {
			out = append(out, r)
		}
	}
	return out
}
