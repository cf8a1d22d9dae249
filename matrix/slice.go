// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ToEnd is the Slice end sentinel meaning "through the last element of the
// dimension the slice is applied to". It is resolved at selection time.
const ToEnd = -1

// Slice is an immutable (start, end, step) range used to address a view.
// Nothing is validated at construction; Select validates against the
// dimension it is applied to.
type Slice struct {
	start, end, step int
}

// NewSlice returns the range [start, end) walked with the given step.
func NewSlice(start, end, step int) Slice {
	return Slice{start: start, end: end, step: step}
}

// SliceRange returns [start, end) with step 1.
func SliceRange(start, end int) Slice { return NewSlice(start, end, 1) }

// SliceTo returns [0, end) with step 1.
func SliceTo(end int) Slice { return NewSlice(0, end, 1) }

// SliceAll returns the whole dimension.
func SliceAll() Slice { return NewSlice(0, ToEnd, 1) }

// Start returns the first position of the range.
func (s Slice) Start() int { return s.start }

// End returns the exclusive bound, or ToEnd.
func (s Slice) End() int { return s.end }

// Step returns the stride between selected positions.
func (s Slice) Step() int { return s.step }

// String renders the slice in start:end:step form ("start::step" for ToEnd).
func (s Slice) String() string {
	if s.end == ToEnd {
		return fmt.Sprintf("%d::%d", s.start, s.step)
	}

	return fmt.Sprintf("%d:%d:%d", s.start, s.end, s.step)
}

// resolve expands the slice into logical positions of a dimension of length n.
// Errors:
//   - ErrBadSelector when step<=0, start<0, start>n, or end>n.
//   - ErrBadShape when the resolved range is empty.
func (s Slice) resolve(n int) ([]int, error) {
	if s.step <= 0 {
		return nil, fmt.Errorf("slice %v: step must be positive: %w", s, ErrBadSelector)
	}
	if s.start < 0 || s.start > n {
		return nil, fmt.Errorf("slice %v: start outside [0,%d]: %w", s, n, ErrBadSelector)
	}
	end := s.end
	if end == ToEnd {
		end = n // sentinel tracks the current logical length
	}
	if end < 0 || end > n {
		return nil, fmt.Errorf("slice %v: end outside [0,%d]: %w", s, n, ErrBadSelector)
	}
	if end <= s.start {
		return nil, fmt.Errorf("slice %v: empty range: %w", s, ErrBadShape)
	}

	out := make([]int, 0, (end-s.start+s.step-1)/s.step)
	for p := s.start; p < end; p += s.step {
		out = append(out, p)
	}

	return out, nil
}
