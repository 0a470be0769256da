// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

import (
	"encoding/binary"
	"io"

	"code.hybscloud.com/iox"
)

// Decoder reads binary serials from a possibly non-blocking reader.
// Partial reads are kept across calls, so a Decode interrupted by
// iox.ErrWouldBlock resumes where it stopped.
type Decoder struct {
	r   io.Reader
	buf [Size]byte
	off int
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the next serial.
//
// It returns iox.ErrWouldBlock when r has no data yet; call again later.
// It returns io.EOF if r ends cleanly between values and
// io.ErrUnexpectedEOF if r ends inside one.
func (d *Decoder) Decode() (Serial, error) {
	for d.off < Size {
		n, err := d.r.Read(d.buf[d.off:])
		d.off += n
		if d.off == Size {
			break
		}
		if err == io.EOF {
			if d.off == 0 {
				return NaN, io.EOF
			}
			d.off = 0
			return NaN, io.ErrUnexpectedEOF
		}
		if err != nil {
			return NaN, err
		}
		if n == 0 {
			return NaN, iox.ErrWouldBlock
		}
	}
	d.off = 0
	return Serial{n: binary.LittleEndian.Uint16(d.buf[:])}, nil
}

// Encoder writes binary serials to a possibly non-blocking writer.
// A value interrupted by iox.ErrWouldBlock is finished by the next
// call to Flush or Encode before anything else is written.
type Encoder struct {
	w   io.Writer
	buf [Size]byte
	off int
	end int
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes s. If a previous value is still pending, it is flushed
// first; s is not accepted unless that succeeds.
func (e *Encoder) Encode(s Serial) error {
	if err := e.Flush(); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(e.buf[:], s.n)
	e.off, e.end = 0, Size
	return e.Flush()
}

// Flush writes any pending bytes of the last encoded value.
// It returns iox.ErrWouldBlock if w cannot take them yet.
func (e *Encoder) Flush() error {
	for e.off < e.end {
		n, err := e.w.Write(e.buf[e.off:e.end])
		e.off += n
		if e.off == e.end {
			break
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return iox.ErrWouldBlock
		}
	}
	e.off, e.end = 0, 0
	return nil
}

// Pending reports whether part of a value is waiting for Flush.
func (e *Encoder) Pending() bool {
	return e.off < e.end
}

// ReadFrom decodes one serial, waiting past iox.ErrWouldBlock
// with adaptive backoff. Other errors are returned as is.
func ReadFrom(d *Decoder) (Serial, error) {
	var bo iox.Backoff
	for {
		s, err := d.Decode()
		if !iox.IsWouldBlock(err) {
			return s, err
		}
		bo.Wait()
	}
}

// WriteTo encodes s, waiting past iox.ErrWouldBlock with adaptive
// backoff. A value left pending by an earlier Encode is written first.
// Other errors are returned as is.
func WriteTo(e *Encoder, s Serial) error {
	var bo iox.Backoff
	err := e.Flush()
	for iox.IsWouldBlock(err) {
		bo.Wait()
		err = e.Flush()
	}
	if err != nil {
		return err
	}
	err = e.Encode(s)
	for iox.IsWouldBlock(err) {
		bo.Wait()
		err = e.Flush()
	}
	return err
}
