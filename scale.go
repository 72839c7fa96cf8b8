package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/vdobler/facet/chart/data"
	"gonum.org/v1/plot"
)

// DefaultTickCount is the number of ticks requested if a caller passes 0.
const DefaultTickCount = 10

// ----------------------------------------------------------------------------
// Scale

// Scale maps data values to pixel positions along one direction.
//
// Continuous scales (Linear and Time) map the interval [Min, Max] onto
// Range. Time values are unix seconds. Band scales allocate one equally
// wide slot per category in Range.
type Scale struct {
	// Title is the scale's title.
	Title string

	// Data is the range covered by the defined values of the data.
	Data Interval

	// Interval is the domain of the scale. It starts out as Data and may
	// be widened by Nice or Include.
	Interval

	// Range is the pixel interval the domain maps onto. Range.Min is the
	// pixel of the domain's Min and may be larger than Range.Max.
	Range Interval

	// ScaleType determines the fundamental nature of the scale.
	ScaleType ScaleType

	// Trans maps the domain to the range for continuous scales.
	Trans Transformation

	// Categories are the slots of a band scale in first-seen order.
	Categories []string

	// Padding is the fraction of a band step left empty between slots
	// and, with the same size, before the first and after the last slot.
	Padding float64

	// Rounded rounds mapped positions (and band steps) to whole pixels.
	Rounded bool

	// Ticker, if non-nil, replaces the default tick generation.
	Ticker plot.Ticker

	// TimeFmt formats the ticks of a time scale. If empty the format is
	// chosen from the tick spacing.
	TimeFmt string
}

// LinearScale builds a linear scale over the defined values of acc.
// Records where acc is undefined are ignored. If no value is defined the
// scale is returned unusable and reports this from Valid and Map.
func LinearScale(records []data.Record, acc data.Accessor, rng Interval) *Scale {
	s := newScale(Linear, rng)
	s.learn(records, acc)
	return s
}

// TimeScale is like LinearScale for accessors which yield unix seconds.
func TimeScale(records []data.Record, acc data.Accessor, rng Interval) *Scale {
	s := newScale(Time, rng)
	s.learn(records, acc)
	return s
}

// BandScale builds a band scale with one slot per distinct category of
// cat in first-seen order. Padding is clamped to [0, 1).
func BandScale(records []data.Record, cat data.CategoryAccessor, rng Interval, padding float64) *Scale {
	s := newScale(Band, rng)
	s.Categories = data.Categories(records, cat)
	s.Padding = math.Max(0, math.Min(padding, 0.99))
	if len(s.Categories) > 0 {
		s.Data = Interval{0, float64(len(s.Categories) - 1)}
		s.Interval = s.Data
	}
	return s
}

func newScale(st ScaleType, rng Interval) *Scale {
	return &Scale{
		Data:      unsetInterval(),
		Interval:  unsetInterval(),
		Range:     rng,
		ScaleType: st,
		Trans:     LinearTrans,
	}
}

func (s *Scale) learn(records []data.Record, acc data.Accessor) {
	min, max, n := data.Extent(records, acc)
	if n == 0 {
		return
	}
	s.Data = Interval{min, max}
	s.Interval = s.Data
}

// Round turns on rounding to whole pixels.
func (s *Scale) Round() *Scale {
	s.Rounded = true
	return s
}

// HasData reports whether the scale has something to map from.
func (s *Scale) HasData() bool {
	if s.ScaleType == Band {
		return len(s.Categories) > 0
	}
	return !math.IsNaN(s.Min) && !math.IsNaN(s.Max)
}

// Valid returns an error wrapping ErrMissingValue if s cannot map values.
func (s *Scale) Valid() error {
	if !s.HasData() {
		return &MissingValueError{Scale: s.Title, Record: -1}
	}
	return nil
}

// Nice extends the domain outward to round values so that ticks fall on
// clean numbers. Linear domains end on multiples of the tick step for
// about count ticks, time domains on whole days (UTC). The result always
// contains the previous domain. Band scales are not affected.
func (s *Scale) Nice(count int) *Scale {
	if count <= 0 {
		count = DefaultTickCount
	}
	if !s.HasData() || s.Min == s.Max {
		return s
	}
	lo, hi := s.Min, s.Max
	switch s.ScaleType {
	case Linear:
		ls := scale.Linear{Min: lo, Max: hi}
		ls.Nice(scale.TickOptions{Max: count})
		s.Min, s.Max = ls.Min, ls.Max
	case Time:
		s.Min = math.Floor(lo/secondsPerDay) * secondsPerDay
		s.Max = math.Ceil(hi/secondsPerDay) * secondsPerDay
	default:
		return s
	}
	s.Min, s.Max = math.Min(s.Min, lo), math.Max(s.Max, hi)
	return s
}

// Include extends the domain of a continuous scale to contain v,
// e.g. 0 for the baseline of bars.
func (s *Scale) Include(v float64) *Scale {
	if s.ScaleType != Band {
		s.Interval.Update(v)
	}
	return s
}

// Map maps the domain value x to a pixel position. It fails with a
// *MissingValueError if x is NaN or s has no data. A degenerate domain maps
// every value to the middle of the range.
func (s *Scale) Map(x float64) (float64, error) {
	if s.ScaleType == Band {
		return math.NaN(), fmt.Errorf("scale %q: band scale cannot map numbers", s.Title)
	}
	if !s.HasData() || math.IsNaN(x) {
		return math.NaN(), &MissingValueError{Scale: s.Title, Record: -1}
	}
	var y float64
	if s.Min == s.Max {
		y = (s.Range.Min + s.Range.Max) / 2
	} else {
		y = s.Trans.Trans(s.Interval, s.Range, x)
	}
	if s.Rounded {
		y = math.Round(y)
	}
	return y, nil
}

// Project maps the value of acc for record r, the i'th record of the data.
func (s *Scale) Project(r data.Record, acc data.Accessor, i int) (float64, error) {
	v, ok := acc(r)
	if !ok {
		return math.NaN(), &MissingValueError{Scale: s.Title, Record: i}
	}
	y, err := s.Map(v)
	if mv, ok := err.(*MissingValueError); ok {
		mv.Record = i
	}
	return y, err
}

// ProjectCategory maps the category of record r, the i'th record of the
// data, to the start of its band.
func (s *Scale) ProjectCategory(r data.Record, cat data.CategoryAccessor, i int) (float64, error) {
	c, ok := cat(r)
	if !ok {
		return math.NaN(), &MissingValueError{Scale: s.Title, Record: i}
	}
	y, err := s.MapCategory(c)
	if mv, ok := err.(*MissingValueError); ok {
		mv.Record = i
	}
	return y, err
}

// MapCategory returns the start of the band of category c.
func (s *Scale) MapCategory(c string) (float64, error) {
	if s.ScaleType != Band {
		return math.NaN(), fmt.Errorf("scale %q: %s scale cannot map categories", s.Title, s.ScaleType)
	}
	for i, cat := range s.Categories {
		if cat == c {
			start, step, _ := s.band()
			if s.Range.Min > s.Range.Max {
				i = len(s.Categories) - 1 - i
			}
			return start + step*float64(i), nil
		}
	}
	return math.NaN(), &MissingValueError{Scale: s.Title, Record: -1}
}

// Bandwidth is the width of one band. It is 0 for continuous scales.
func (s *Scale) Bandwidth() float64 {
	if s.ScaleType != Band {
		return 0
	}
	_, _, bw := s.band()
	return bw
}

// Step is the distance between the starts of two neighbouring bands.
func (s *Scale) Step() float64 {
	if s.ScaleType != Band {
		return 0
	}
	_, step, _ := s.band()
	return step
}

// band computes the layout of the slots like d3's band scale with equal
// inner and outer padding and centered alignment.
func (s *Scale) band() (start, step, bandwidth float64) {
	n := float64(len(s.Categories))
	lo, hi := s.Range.Min, s.Range.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	step = (hi - lo) / math.Max(1, n-s.Padding+2*s.Padding)
	if s.Rounded {
		step = math.Floor(step)
	}
	start = lo + (hi-lo-step*(n-s.Padding))*0.5
	bandwidth = step * (1 - s.Padding)
	if s.Rounded {
		start, bandwidth = math.Round(start), math.Round(bandwidth)
	}
	return start, step, bandwidth
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Domain=[%.2f:%.2f] Data=[%.2f:%.2f] Range=[%.2f:%.2f] %s %q",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.Range.Min, s.Range.Max, s.ScaleType, s.Title)
}

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether both edges of i and j are equal. Two unset (NaN)
// edges are equal.
func (i Interval) Equal(j Interval) bool {
	return sameEdge(i.Min, j.Min) && sameEdge(i.Max, j.Max)
}

func sameEdge(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful know scale types.
type ScaleType int

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "band", "time"}[int(st)]
}

const (
	Linear ScaleType = iota
	Band
	Time
)
