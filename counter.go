// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

import "code.hybscloud.com/atomix"

// Counter is a Serial shared between goroutines.
// The zero value holds the zero Serial and is ready to use.
//
// Increments follow the same wraparound and NaN rules as [Serial.Increase]:
// a Counter holding NaN stays NaN until Store.
type Counter struct {
	v atomix.Uint32
}

// Load returns the current value.
func (c *Counter) Load() Serial {
	return Serial{n: uint16(c.v.Load())}
}

// Store replaces the current value.
func (c *Counter) Store(s Serial) {
	c.v.Store(uint32(s.n))
}

// Next returns the current value and increases the counter.
// Concurrent callers each observe a distinct value until the cycle wraps.
func (c *Counter) Next() Serial {
	prev, _ := c.update(increase)
	return prev
}

// IncreaseGet increases the counter and returns the new value.
func (c *Counter) IncreaseGet() Serial {
	_, next := c.update(increase)
	return next
}

// Add advances the counter by n and returns the new value.
func (c *Counter) Add(n uint16) Serial {
	_, next := c.update(func(s Serial) Serial { return s.Add(n) })
	return next
}

// Take returns the current value and leaves NaN in its place.
func (c *Counter) Take() Serial {
	return Serial{n: uint16(c.v.Swap(uint32(nanU16)))}
}

// update applies f with a compare-and-swap loop.
func (c *Counter) update(f func(Serial) Serial) (prev, next Serial) {
	for {
		cur := c.v.Load()
		prev = Serial{n: uint16(cur)}
		next = f(prev)
		if next == prev || c.v.CompareAndSwap(cur, uint32(next.n)) {
			return prev, next
		}
	}
}

func increase(s Serial) Serial {
	s.Increase()
	return s
}
