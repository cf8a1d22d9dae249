// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// SelectorKind tags the variant carried by a Selector.
type SelectorKind uint8

const (
	// KindInvalid is the zero kind; Select rejects it with ErrBadSelector.
	KindInvalid SelectorKind = iota
	// KindIndex selects one logical position.
	KindIndex
	// KindList selects an ordered list of logical positions (duplicates allowed).
	KindList
	// KindSlice selects a strided range.
	KindSlice
)

// String returns a short name for the kind.
func (k SelectorKind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindList:
		return "list"
	case KindSlice:
		return "slice"
	default:
		return "invalid"
	}
}

// Selector addresses one dimension of a view: a single index, an index list,
// or a Slice. Build it with SelectIndex, SelectList, SelectSlice or All.
type Selector struct {
	kind  SelectorKind
	index int
	list  []int
	slice Slice
}

// SelectIndex selects logical position i. The dimension is kept (length 1).
func SelectIndex(i int) Selector { return Selector{kind: KindIndex, index: i} }

// SelectList selects the given logical positions in order.
func SelectList(idx ...int) Selector {
	cp := make([]int, len(idx))
	copy(cp, idx)

	return Selector{kind: KindList, list: cp}
}

// SelectSlice selects the positions covered by s.
func SelectSlice(s Slice) Selector { return Selector{kind: KindSlice, slice: s} }

// All selects the whole dimension.
func All() Selector { return SelectSlice(SliceAll()) }

// Kind reports which variant the selector holds.
func (s Selector) Kind() SelectorKind { return s.kind }

// String renders the selector for error messages.
func (s Selector) String() string {
	switch s.kind {
	case KindIndex:
		return fmt.Sprintf("%d", s.index)
	case KindList:
		return fmt.Sprintf("%v", s.list)
	case KindSlice:
		return s.slice.String()
	default:
		return s.kind.String()
	}
}

// compose maps the selector through the current physical index array and
// returns the physical indices of the narrowed dimension. Positions are
// validated against len(current), so a selection can never reach physical
// rows or columns that current already excludes.
func (s Selector) compose(current []int) ([]int, error) {
	n := len(current)
	switch s.kind {
	case KindIndex:
		if s.index < 0 || s.index >= n {
			return nil, fmt.Errorf("index %d outside [0,%d): %w", s.index, n, ErrBadSelector)
		}

		return []int{current[s.index]}, nil

	case KindList:
		if len(s.list) == 0 {
			return nil, fmt.Errorf("empty index list: %w", ErrBadShape)
		}
		out := make([]int, len(s.list))
		for k, p := range s.list {
			if p < 0 || p >= n {
				return nil, fmt.Errorf("list entry %d outside [0,%d): %w", p, n, ErrBadSelector)
			}
			out[k] = current[p]
		}

		return out, nil

	case KindSlice:
		pos, err := s.slice.resolve(n)
		if err != nil {
			return nil, err
		}
		for k, p := range pos {
			pos[k] = current[p] // reuse the resolved slice in place
		}

		return pos, nil

	default:
		return nil, fmt.Errorf("selector kind %v: %w", s.kind, ErrBadSelector)
	}
}
