// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial_test

import (
	"testing"

	"code.hybscloud.com/serial"
)

func TestTrackerSequence(t *testing.T) {
	tr := serial.NewTracker()
	if !tr.Highest().IsNaN() {
		t.Fatalf("fresh tracker highest got %v, want NaN", tr.Highest())
	}

	steps := []struct {
		in      serial.Serial
		want    serial.Arrival
		skipped uint16
		highest serial.Serial
	}{
		{serial.NaN, serial.Unassigned, 0, serial.NaN},
		{sn(maxOrdinary - 1), serial.First, 0, sn(maxOrdinary - 1)},
		{sn(maxOrdinary), serial.InOrder, 0, sn(maxOrdinary)},
		{sn(0), serial.InOrder, 0, sn(0)},
		{sn(0), serial.Duplicate, 0, sn(0)},
		{sn(4), serial.Gap, 3, sn(4)},
		{sn(2), serial.Late, 0, sn(4)},
		{sn(maxOrdinary), serial.Late, 0, sn(4)},
		{serial.NaN, serial.Unassigned, 0, sn(4)},
		{sn(5), serial.InOrder, 0, sn(5)},
	}
	for i, s := range steps {
		a, skipped := tr.Observe(s.in)
		if a != s.want || skipped != s.skipped {
			t.Fatalf("step %d (%v): got %v/%d, want %v/%d", i, s.in, a, skipped, s.want, s.skipped)
		}
		if tr.Highest() != s.highest {
			t.Fatalf("step %d: highest got %v, want %v", i, tr.Highest(), s.highest)
		}
	}

	tr.Reset()
	if a, _ := tr.Observe(sn(100)); a != serial.First {
		t.Fatalf("after reset got %v, want First", a)
	}
}

func TestTrackerWideGap(t *testing.T) {
	tr := serial.NewTracker()
	tr.Observe(sn(0))
	a, skipped := tr.Observe(sn(halfWindow))
	if a != serial.Gap || skipped != halfWindow-1 {
		t.Fatalf("got %v/%d, want Gap/%d", a, skipped, halfWindow-1)
	}
	// One past the half-window reads as an old serial.
	tr.Reset()
	tr.Observe(sn(0))
	if a, _ := tr.Observe(sn(halfWindow + 1)); a != serial.Late {
		t.Fatalf("got %v, want Late", a)
	}
}

func TestArrivalString(t *testing.T) {
	if got := serial.Gap.String(); got != "Gap" {
		t.Fatalf("got %q", got)
	}
	if got := serial.Arrival(200).String(); got != "Arrival(?)" {
		t.Fatalf("got %q", got)
	}
}
