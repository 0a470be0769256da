// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

// Arrival classifies an observed serial against the highest one seen.
type Arrival uint8

const (
	// First is the first serial observed since creation or Reset.
	First Arrival = iota
	// InOrder is the immediate successor of the highest serial.
	InOrder
	// Gap is a successor that skipped one or more serials.
	Gap
	// Duplicate equals the highest serial.
	Duplicate
	// Late precedes the highest serial.
	Late
	// Unassigned is NaN. It does not affect the tracker.
	Unassigned
)

var arrivalNames = [...]string{
	First:      "First",
	InOrder:    "InOrder",
	Gap:        "Gap",
	Duplicate:  "Duplicate",
	Late:       "Late",
	Unassigned: "Unassigned",
}

func (a Arrival) String() string {
	if int(a) < len(arrivalNames) {
		return arrivalNames[a]
	}
	return "Arrival(?)"
}

// Tracker follows the highest serial seen on a stream.
// A Tracker is owned by one consumer and is not safe for concurrent use.
type Tracker struct {
	highest Serial
}

// NewTracker returns a Tracker that has seen nothing.
func NewTracker() *Tracker {
	return &Tracker{highest: NaN}
}

// Highest returns the highest serial observed, or NaN if none.
func (t *Tracker) Highest() Serial {
	return t.highest
}

// Reset forgets every observation.
func (t *Tracker) Reset() {
	t.highest = NaN
}

// Observe classifies s and advances the highest serial when s succeeds it.
// For Gap, skipped is the number of serials between the previous highest
// and s; it is zero for every other classification.
func (t *Tracker) Observe(s Serial) (a Arrival, skipped uint16) {
	if s.IsNaN() {
		return Unassigned, 0
	}
	if t.highest.IsNaN() {
		t.highest = s
		return First, 0
	}
	switch s.PartialCompare(t.highest) {
	case Equal:
		return Duplicate, 0
	case Less:
		return Late, 0
	}
	d := t.highest.Dist(s)
	t.highest = s
	if d == 1 {
		return InOrder, 0
	}
	return Gap, d - 1
}
