package chart

import (
	"math"
	"strconv"
	"time"

	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/plot"
)

const secondsPerDay = 24 * 60 * 60

// Ticks returns about n (at most n for continuous scales) labeled ticks
// inside the domain of s. Band scales yield one tick per category whose
// Value is the index of the category.
func (s *Scale) Ticks(n int) []plot.Tick {
	if n <= 0 {
		n = DefaultTickCount
	}
	if !s.HasData() {
		return nil
	}
	if s.Ticker != nil {
		return s.Ticker.Ticks(s.Min, s.Max)
	}

	switch s.ScaleType {
	case Band:
		ticks := make([]plot.Tick, len(s.Categories))
		for i, c := range s.Categories {
			ticks[i] = plot.Tick{Value: float64(i), Label: c}
		}
		return ticks
	case Time:
		if s.TimeFmt != "" {
			return plot.TimeTicks{
				Ticker: calendarTicks{Max: n},
				Format: s.TimeFmt,
				Time:   unixUTC,
			}.Ticks(s.Min, s.Max)
		}
		return calendarTicks{Max: n}.Ticks(s.Min, s.Max)
	}
	return linearTicks{Max: n}.Ticks(s.Min, s.Max)
}

// TickPosition is the pixel position of tick t of s. Band ticks sit in the
// middle of their band.
func (s *Scale) TickPosition(t plot.Tick) (float64, error) {
	if s.ScaleType == Band {
		i := int(t.Value)
		if i < 0 || i >= len(s.Categories) {
			return math.NaN(), &MissingValueError{Scale: s.Title, Record: -1}
		}
		start, err := s.MapCategory(s.Categories[i])
		return start + s.Bandwidth()/2, err
	}
	return s.Map(t.Value)
}

// ----------------------------------------------------------------------------
// Numeric ticks

// linearTicks is a plot.Ticker producing at most Max major ticks on
// multiples of 1, 2 or 5 times a power of ten.
type linearTicks struct {
	Max int
}

func (t linearTicks) Ticks(min, max float64) []plot.Tick {
	if min == max {
		return []plot.Tick{{Value: min, Label: formatTick(min, 0)}}
	}
	ls := scale.Linear{Min: min, Max: max}
	major, _ := ls.Ticks(scale.TickOptions{Max: t.Max})

	step := 0.0
	if len(major) > 1 {
		step = major[1] - major[0]
	}
	eps := (max - min) * 1e-9
	ticks := make([]plot.Tick, 0, len(major))
	for _, v := range major {
		if v < min-eps || v > max+eps {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v, step)})
	}
	return ticks
}

// formatTick formats v with as many decimals as step needs.
func formatTick(v, step float64) string {
	d := 0
	if step > 0 {
		for ; d < 10; d++ {
			x := step * math.Pow10(d)
			if math.Abs(x-math.Round(x)) < 1e-6 {
				break
			}
		}
	}
	s := strconv.FormatFloat(v, 'f', d, 64)
	if s == "-0" {
		s = "0"
	}
	return s
}

// ----------------------------------------------------------------------------
// Calendar ticks

type calendarStep struct {
	days, months, years int
	format              string
}

var calendarSteps = []calendarStep{
	{days: 1, format: "Jan 2"},
	{days: 2, format: "Jan 2"},
	{days: 7, format: "Jan 2"},
	{days: 14, format: "Jan 2"},
	{months: 1, format: "Jan 2006"},
	{months: 2, format: "Jan 2006"},
	{months: 3, format: "Jan 2006"},
	{months: 6, format: "Jan 2006"},
	{years: 1, format: "2006"},
	{years: 2, format: "2006"},
	{years: 5, format: "2006"},
	{years: 10, format: "2006"},
	{years: 50, format: "2006"},
	{years: 100, format: "2006"},
}

// calendarTicks is a plot.Ticker for unix seconds placing at most Max
// ticks on midnights (UTC) of days, month starts or year starts.
type calendarTicks struct {
	Max int
}

func (t calendarTicks) Ticks(min, max float64) []plot.Tick {
	lo, hi := unixUTC(min), unixUTC(max)
	for _, cs := range calendarSteps {
		if ticks := cs.ticks(lo, hi, t.Max); ticks != nil {
			return ticks
		}
	}
	return []plot.Tick{{Value: min, Label: lo.Format("2006")}}
}

// ticks returns nil if more than max ticks would be needed.
func (cs calendarStep) ticks(lo, hi time.Time, max int) []plot.Tick {
	var t time.Time
	switch {
	case cs.years > 0:
		y := lo.Year() / cs.years * cs.years
		t = time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
	case cs.months > 0:
		m := (int(lo.Month()) - 1) / cs.months * cs.months
		t = time.Date(lo.Year(), time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
	default:
		t = lo.Truncate(24 * time.Hour)
	}
	for t.Before(lo) {
		t = t.AddDate(cs.years, cs.months, cs.days)
	}

	ticks := []plot.Tick{}
	for !t.After(hi) {
		if len(ticks) == max {
			return nil
		}
		ticks = append(ticks, plot.Tick{Value: float64(t.Unix()), Label: t.Format(cs.format)})
		t = t.AddDate(cs.years, cs.months, cs.days)
	}
	return ticks
}

func unixUTC(sec float64) time.Time {
	return time.Unix(int64(math.Floor(sec)), 0).UTC()
}
