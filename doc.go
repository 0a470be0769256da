// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package serial provides a two-byte serial number with wraparound and
// RFC1982 comparison.
//
// A [Serial] identifies items in a bounded id space, such as packets or
// messages, using the space of a uint16. Ordinary values are 0..65534;
// 65534 wraps to 0. The value 65535 is reserved for [NaN], "no serial
// number assigned", so an absent serial needs no optional wrapper.
//
// # Arithmetic
//
//   - Increment: [Serial.Increase], [Serial.IncreaseGet], [Serial.GetIncrease].
//   - Addition: [Serial.Add] over a 65535-value cycle. Adding 65535 is a no-op.
//   - Distance: [Serial.Dist] (symmetric, at most 32767) and [Serial.Diff] (signed).
//   - Combinators: [Serial.Or], [Serial.OrDefault], [Serial.Take].
//
// NaN absorbs every operation: it cannot be increased or added to.
//
// # Ordering
//
// Two serials within the half-window of 32767 compare as plain integers.
// Beyond it the comparison flips, so 65000 precedes 5.
//
//   - Partial order: [Serial.PartialCompare], [Serial.Precedes], [Serial.Succeeds] and
//     their -OrEqual forms. Any comparison involving NaN is [Unordered] and every
//     predicate is false.
//   - Total order: [Serial.Compare], for sorting and ordered containers. NaN sorts first.
//
// # Integration
//
//   - Wire: 2 bytes, the raw uint16 with NaN as 0xFFFF. Binary, text, JSON and
//     CBOR encodings are provided; [Decoder] and [Encoder] resume across
//     [code.hybscloud.com/iox.ErrWouldBlock].
//   - Concurrency: [Counter] allocates serials from many goroutines via
//     [code.hybscloud.com/atomix].
//   - Transport: [Link] stamps values on a bounded SPSC queue from
//     [code.hybscloud.com/lfq]; [Tracker] classifies arrivals.
//   - Effects: [Next], [Current] and [Take] operations on [code.hybscloud.com/kont],
//     evaluated with [Exec], [ExecExpr] or [Step] and [Advance].
//
// # Example
//
//	var s serial.Serial
//	a := s.GetIncrease()
//	b := s.GetIncrease()
//	_ = a.Precedes(b) // true
//	_ = a.Dist(b)     // 1
package serial
