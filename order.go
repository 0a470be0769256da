// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

// Ordering is the result of a partial comparison.
type Ordering int8

const (
	Less      Ordering = -1
	Equal     Ordering = 0
	Greater   Ordering = 1
	Unordered Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Unordered"
	}
}

// PartialCompare compares s and o with wraparound, based on RFC1982
// section 3.2. Returns Unordered if either operand is NaN.
//
// Within the half-window of 32767 the raw values compare as usual.
// Beyond it the comparison flips: the lower raw value is taken to have
// wrapped around and comes after. Hence 65000 < 5.
func (s Serial) PartialCompare(o Serial) Ordering {
	if s.IsNaN() || o.IsNaN() {
		return Unordered
	}
	if s.n == o.n {
		return Equal
	}
	a, b := int32(s.n), int32(o.n)
	if (b > a && b-a <= window) || (a > b && a-b > window) {
		return Less
	}
	return Greater
}

// Compare is the total order over all serials, for sorting and ordered
// containers. It returns -1, 0 or +1 like [cmp.Compare].
// NaN sorts below every ordinary value and equals itself; ordinary values
// compare as in [Serial.PartialCompare].
//
// Domain logic should prefer the partial predicates so that an absent
// serial is never mistaken for the earliest one.
func (s Serial) Compare(o Serial) int {
	switch {
	case s.IsNaN() && o.IsNaN():
		return 0
	case s.IsNaN():
		return -1
	case o.IsNaN():
		return 1
	}
	return int(s.PartialCompare(o))
}

// Precedes reports s < o. False if either is NaN.
func (s Serial) Precedes(o Serial) bool {
	return s.PartialCompare(o) == Less
}

// PrecedesOrEqual reports s <= o. False if either is NaN.
func (s Serial) PrecedesOrEqual(o Serial) bool {
	c := s.PartialCompare(o)
	return c == Less || c == Equal
}

// Succeeds reports s > o. False if either is NaN.
func (s Serial) Succeeds(o Serial) bool {
	return s.PartialCompare(o) == Greater
}

// SucceedsOrEqual reports s >= o. False if either is NaN.
func (s Serial) SucceedsOrEqual(o Serial) bool {
	c := s.PartialCompare(o)
	return c == Greater || c == Equal
}
