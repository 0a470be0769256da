// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// defaultCapacity is the queue capacity used when NewLink is given
// a non-positive capacity.
const defaultCapacity = 4

// Stamped is a value carrying the serial it was sent with.
type Stamped[T any] struct {
	Serial Serial
	Value  T
}

// Link is a bounded single-producer single-consumer queue that stamps
// every sent value with the producer's next serial.
//
// Send and SendWait must be called from one goroutine, Recv and RecvWait
// from one (possibly different) goroutine.
type Link[T any] struct {
	q lfq.SPSC[Stamped[T]]

	// producer side
	next Serial
	slot Stamped[T]

	// consumer side
	rx Tracker
}

// NewLink creates a Link whose first serial is start.
// Sending from a NaN start stamps every value NaN.
func NewLink[T any](capacity int, start Serial) *Link[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	l := &Link[T]{next: start, rx: Tracker{highest: NaN}}
	l.q.Init(capacity)
	return l
}

// Next returns the serial the next successful Send will use.
// Producer side only.
func (l *Link[T]) Next() Serial {
	return l.next
}

// Send stamps v and enqueues it. Non-blocking: returns iox.ErrWouldBlock
// if the queue is full, in which case no serial is consumed.
func (l *Link[T]) Send(v T) (Serial, error) {
	l.slot = Stamped[T]{Serial: l.next, Value: v}
	if err := l.q.Enqueue(&l.slot); err != nil {
		return NaN, err
	}
	return l.next.GetIncrease(), nil
}

// Recv dequeues the next stamped value and classifies its serial
// against the highest one received so far. Non-blocking: returns
// iox.ErrWouldBlock if the queue is empty.
func (l *Link[T]) Recv() (Stamped[T], Arrival, error) {
	m, err := l.q.Dequeue()
	if err != nil {
		var zero Stamped[T]
		return zero, 0, err
	}
	a, _ := l.rx.Observe(m.Serial)
	return m, a, nil
}

// SendWait is Send, waiting past iox.ErrWouldBlock with adaptive backoff.
func (l *Link[T]) SendWait(v T) Serial {
	var bo iox.Backoff
	for {
		s, err := l.Send(v)
		if err == nil {
			return s
		}
		bo.Wait()
	}
}

// RecvWait is Recv, waiting past iox.ErrWouldBlock with adaptive backoff.
func (l *Link[T]) RecvWait() (Stamped[T], Arrival) {
	var bo iox.Backoff
	for {
		m, a, err := l.Recv()
		if err == nil {
			return m, a
		}
		bo.Wait()
	}
}
