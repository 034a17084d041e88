// Package rank provides a weighted multi-criterion sort engine. Items are
// scored across independently weighted criteria: each criterion's raw
// values are normalized against a prepared range, optionally inverted and
// clamped, then weighted and summed into a total.
package rank

import (
	"fmt"
	"math"
	"sort"
)

// UsageError indicates the engine was driven out of order, e.g. scoring
// before Prepare.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error: %s", e.Reason)
}

// Criterion is one scored dimension of a multi-factor ranking. The
// observed and adjusted ranges are derived from a preparation pass over a
// specific item set; scoring against a different item set without
// re-preparing is undefined and the caller's responsibility.
type Criterion[T any] struct {
	weight        float64
	value         func(T) float64
	lowerIsBetter bool

	// Range clamps, NaN when unset.
	minHigh float64
	maxHigh float64
	minLow  float64
	maxLow  float64

	observedMin float64
	observedMax float64
	adjustedMin float64
	adjustedMax float64
}

// Weight returns the criterion's weight.
func (c *Criterion[T]) Weight() float64 {
	return c.weight
}

// ObservedRange returns the raw min/max seen during the last Prepare.
func (c *Criterion[T]) ObservedRange() (min, max float64) {
	return c.observedMin, c.observedMax
}

// AdjustedRange returns the effective normalization range derived during
// the last Prepare (possibly shared after EqualizeRanges).
func (c *Criterion[T]) AdjustedRange() (min, max float64) {
	return c.adjustedMin, c.adjustedMax
}

// CriterionOption configures a criterion's normalization behavior.
type CriterionOption func(*criterionOptions)

type criterionOptions struct {
	lowerIsBetter bool
	minHigh       float64
	maxHigh       float64
	minLow        float64
	maxLow        float64
}

// LowerIsBetter inverts the normalized fraction, so smaller raw values
// score higher.
func LowerIsBetter() CriterionOption {
	return func(o *criterionOptions) {
		o.lowerIsBetter = true
	}
}

// MinHigh sets the minimum high value: the adjusted max never falls
// below v, regardless of the observed data.
func MinHigh(v float64) CriterionOption {
	return func(o *criterionOptions) {
		o.minHigh = v
	}
}

// MaxHigh sets the maximum high value: the adjusted max never exceeds v,
// and raw values are clamped down to v at scoring time.
func MaxHigh(v float64) CriterionOption {
	return func(o *criterionOptions) {
		o.maxHigh = v
	}
}

// MinLow sets the minimum low value: the adjusted min never falls below
// v, and raw values are clamped up to v at scoring time.
func MinLow(v float64) CriterionOption {
	return func(o *criterionOptions) {
		o.minLow = v
	}
}

// MaxLow sets the maximum low value: the adjusted min never exceeds v,
// regardless of the observed data.
func MaxLow(v float64) CriterionOption {
	return func(o *criterionOptions) {
		o.maxLow = v
	}
}

// CriterionScore is one criterion's contribution to an item's total.
type CriterionScore struct {
	Weight   float64
	Raw      float64
	Clamped  float64
	Fraction float64
	Weighted float64
}

// Score is an item's total plus the per-criterion breakdown, in criterion
// registration order.
type Score struct {
	Total     float64
	Breakdown []CriterionScore
}

// Sorter scores and sorts arbitrary items across weighted criteria.
//
// Sorter is not safe for concurrent use.
type Sorter[T any] struct {
	criteria []*Criterion[T]
	prepared bool
}

// New creates an empty Sorter.
func New[T any]() *Sorter[T] {
	return &Sorter[T]{}
}

// AddCriterion registers a criterion with the given weight and raw-value
// extractor. Adding a criterion invalidates any previous preparation.
func (s *Sorter[T]) AddCriterion(weight float64, value func(T) float64, opts ...CriterionOption) *Criterion[T] {
	o := criterionOptions{
		minHigh: math.NaN(),
		maxHigh: math.NaN(),
		minLow:  math.NaN(),
		maxLow:  math.NaN(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	c := &Criterion[T]{
		weight:        weight,
		value:         value,
		lowerIsBetter: o.lowerIsBetter,
		minHigh:       o.minHigh,
		maxHigh:       o.maxHigh,
		minLow:        o.minLow,
		maxLow:        o.maxLow,
	}

	s.criteria = append(s.criteria, c)
	s.prepared = false

	return c
}

// Prepare makes a single pass over items, computing each criterion's raw
// observed min/max and an adjusted range: the observed bounds clamped into
// the configured [MinLow, MaxLow] and [MinHigh, MaxHigh] windows. Scoring
// is valid only against the prepared item set; changing weights or clamps
// requires re-preparing.
func (s *Sorter[T]) Prepare(items []T) {
	for _, c := range s.criteria {
		c.observedMin = math.Inf(1)
		c.observedMax = math.Inf(-1)

		for _, item := range items {
			v := c.value(item)
			c.observedMin = math.Min(c.observedMin, v)
			c.observedMax = math.Max(c.observedMax, v)
		}

		if len(items) == 0 {
			c.observedMin, c.observedMax = 0, 0
		}

		c.adjustedMax = c.observedMax
		if !math.IsNaN(c.minHigh) && c.adjustedMax < c.minHigh {
			c.adjustedMax = c.minHigh
		}
		if !math.IsNaN(c.maxHigh) && c.adjustedMax > c.maxHigh {
			c.adjustedMax = c.maxHigh
		}

		c.adjustedMin = c.observedMin
		if !math.IsNaN(c.minLow) && c.adjustedMin < c.minLow {
			c.adjustedMin = c.minLow
		}
		if !math.IsNaN(c.maxLow) && c.adjustedMin > c.maxLow {
			c.adjustedMin = c.maxLow
		}
	}

	s.prepared = true
}

// EqualizeRanges forces the listed criteria (default: all) to share one
// common adjusted range, for comparable-magnitude criteria that should
// normalize identically. Call after Prepare.
func (s *Sorter[T]) EqualizeRanges(criteria ...*Criterion[T]) {
	if len(criteria) == 0 {
		criteria = s.criteria
	}
	if len(criteria) == 0 {
		return
	}

	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, c := range criteria {
		lo = math.Min(lo, c.adjustedMin)
		hi = math.Max(hi, c.adjustedMax)
	}

	for _, c := range criteria {
		c.adjustedMin = lo
		c.adjustedMax = hi
	}
}

// Score computes item's total and per-criterion breakdown. It returns a
// *UsageError if the engine has not been prepared.
func (s *Sorter[T]) Score(item T) (Score, error) {
	if !s.prepared {
		return Score{}, &UsageError{Reason: "score called before prepare"}
	}

	sc := Score{Breakdown: make([]CriterionScore, 0, len(s.criteria))}

	for _, c := range s.criteria {
		raw := c.value(item)

		clamped := raw
		if !math.IsNaN(c.minLow) && clamped < c.minLow {
			clamped = c.minLow
		}
		if !math.IsNaN(c.maxHigh) && clamped > c.maxHigh {
			clamped = c.maxHigh
		}

		var fraction float64
		if denom := c.adjustedMax - c.adjustedMin; denom != 0 {
			fraction = (clamped - c.adjustedMin) / denom
		}

		if c.lowerIsBetter {
			fraction = 1 - fraction
		}

		weighted := fraction * c.weight

		sc.Breakdown = append(sc.Breakdown, CriterionScore{
			Weight:   c.weight,
			Raw:      raw,
			Clamped:  clamped,
			Fraction: fraction,
			Weighted: weighted,
		})
		sc.Total += weighted
	}

	return sc, nil
}

// Sort orders items in place, descending by total score. Items with equal
// totals keep their original input order.
func (s *Sorter[T]) Sort(items []T) error {
	totals := make([]float64, len(items))
	for i := range items {
		sc, err := s.Score(items[i])
		if err != nil {
			return err
		}
		totals[i] = sc.Total
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return totals[idx[a]] > totals[idx[b]]
	})

	out := make([]T, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	copy(items, out)

	return nil
}
