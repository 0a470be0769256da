// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

import "strconv"

// Serial is a two-byte serial number with wraparound.
//
// Serial is opaque: values are meaningful only relative to one another.
// The zero value is an arbitrary reference point, not a "first" id.
// Every serial has a successor; 65534 wraps to 0.
//
// The raw value 65535 is reserved for [NaN], which means "no serial
// number assigned" and removes the need for an optional wrapper.
type Serial struct {
	n uint16
}

const (
	nanU16 uint16 = 1<<16 - 1
	// maxU16 is the largest ordinary value.
	maxU16 uint16 = nanU16 - 1
	// cycle is the length of the wraparound cycle. NaN is not part of it.
	cycle uint32 = uint32(nanU16)
	// window is half the cycle, rounded down.
	window    int32  = 32767
	windowU16 uint16 = 32767
)

// NaN is the reserved value representing "no serial number".
// It cannot be increased or added to.
var NaN = Serial{n: nanU16}

// FromUint16 returns the serial with raw value v.
// Every bit pattern is valid; 0xFFFF yields [NaN].
// Intended for wire adapters.
func FromUint16(v uint16) Serial {
	return Serial{n: v}
}

// Uint16 returns the raw 16-bit pattern of s.
// Intended for wire adapters.
func (s Serial) Uint16() uint16 {
	return s.n
}

// IsNaN reports whether s is [NaN].
func (s Serial) IsNaN() bool {
	return s.n == nanU16
}

// Increase advances s by one with wraparound. NaN stays NaN.
func (s *Serial) Increase() {
	if s.IsNaN() {
		return
	}
	if s.n < maxU16 {
		s.n++
	} else {
		s.n = 0
	}
}

// IncreaseGet increases s and returns the new value.
func (s *Serial) IncreaseGet() Serial {
	s.Increase()
	return *s
}

// GetIncrease returns the current value and then increases s.
func (s *Serial) GetIncrease() Serial {
	old := *s
	s.Increase()
	return old
}

// Add returns s advanced by n with wraparound.
// The result equals calling Increase n times. Adding more than 32767
// yields a serial that precedes s; adding 65535 returns s unchanged.
// NaN plus anything is NaN.
func (s Serial) Add(n uint16) Serial {
	if s.IsNaN() {
		return s
	}
	return Serial{n: uint16((uint32(s.n) + uint32(n)) % cycle)}
}

// Dist returns the wraparound distance between s and o.
// The result is symmetric and never exceeds 32767.
//
// If exactly one operand is NaN, the maximum distance 32767 is returned.
// The distance between two NaN values is 0.
func (s Serial) Dist(o Serial) uint16 {
	switch {
	case s.IsNaN() && o.IsNaN():
		return 0
	case s.IsNaN() || o.IsNaN():
		return windowU16
	case s.n == o.n:
		return 0
	}
	lo, hi := s.Min(o), s.Max(o)
	if lo.n < hi.n {
		return hi.n - lo.n
	}
	// lo wrapped: lo..max, max->0, 0..hi
	return uint16(int32(maxU16) - int32(lo.n) + int32(hi.n) + 1)
}

// Diff returns the signed wraparound difference of s and o:
// negative if s comes before o, positive if after.
//
// NaN sorts below every ordinary value here, so Diff(NaN, x) is -32767
// and Diff(x, NaN) is 32767. Diff(NaN, NaN) is 0.
func (s Serial) Diff(o Serial) int16 {
	d := int32(s.Dist(o))
	if s.Compare(o) < 0 {
		d = -d
	}
	return int16(d)
}

// Min returns the predecessor of s and o.
// If one of them is NaN, the other is returned.
func (s Serial) Min(o Serial) Serial {
	switch s.PartialCompare(o) {
	case Less:
		return s
	case Unordered:
		if s.IsNaN() {
			return o
		}
		return s
	default:
		return o
	}
}

// Max returns the successor of s and o.
// If one of them is NaN, the other is returned.
func (s Serial) Max(o Serial) Serial {
	switch s.PartialCompare(o) {
	case Greater:
		return s
	case Unordered:
		if s.IsNaN() {
			return o
		}
		return s
	default:
		return o
	}
}

// Or returns s unless it is NaN, in which case fallback is returned.
func (s Serial) Or(fallback Serial) Serial {
	if s.IsNaN() {
		return fallback
	}
	return s
}

// OrDefault returns s unless it is NaN, in which case the zero Serial is returned.
func (s Serial) OrDefault() Serial {
	if s.IsNaN() {
		return Serial{}
	}
	return s
}

// Take returns the current value and leaves NaN in its place.
func (s *Serial) Take() Serial {
	old := *s
	*s = NaN
	return old
}

// String returns the decimal raw value, or "NaN".
func (s Serial) String() string {
	if s.IsNaN() {
		return "NaN"
	}
	return strconv.FormatUint(uint64(s.n), 10)
}
