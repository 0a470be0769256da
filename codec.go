// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
)

// Size is the encoded width of a Serial in bytes.
const Size = 2

var (
	// ErrInvalidLength is returned when binary input is not exactly Size bytes.
	ErrInvalidLength = errors.New("serial: invalid encoded length")
	// ErrSyntax is returned when text input is not a serial number.
	ErrSyntax = errors.New("serial: invalid syntax")
)

const nanText = "NaN"

// AppendBinary appends the little-endian encoding of s to b.
func (s Serial) AppendBinary(b []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint16(b, s.n), nil
}

// MarshalBinary encodes s as 2 little-endian bytes. NaN is 0xFFFF.
func (s Serial) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, Size))
}

// UnmarshalBinary decodes exactly 2 little-endian bytes.
// Every bit pattern is a valid Serial.
func (s *Serial) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), Size)
	}
	s.n = binary.LittleEndian.Uint16(data)
	return nil
}

// PutBigEndian writes s into b[:2] in network byte order.
// It panics if len(b) < 2.
func PutBigEndian(b []byte, s Serial) {
	binary.BigEndian.PutUint16(b, s.n)
}

// BigEndian reads a Serial from b[:2] in network byte order.
// It panics if len(b) < 2.
func BigEndian(b []byte) Serial {
	return Serial{n: binary.BigEndian.Uint16(b)}
}

// AppendText appends the decimal raw value of s to b.
// NaN is written as 65535 so the text form stays a plain integer.
func (s Serial) AppendText(b []byte) ([]byte, error) {
	return strconv.AppendUint(b, uint64(s.n), 10), nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Serial) MarshalText() ([]byte, error) {
	return s.AppendText(nil)
}

// UnmarshalText accepts a decimal value in 0..65535 or the literal "NaN".
func (s *Serial) UnmarshalText(text []byte) error {
	if string(text) == nanText {
		*s = NaN
		return nil
	}
	v, err := strconv.ParseUint(string(text), 10, 16)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrSyntax, text)
	}
	s.n = uint16(v)
	return nil
}

// MarshalJSON encodes s as a JSON number.
func (s Serial) MarshalJSON() ([]byte, error) {
	return s.AppendText(nil)
}

// UnmarshalJSON accepts a JSON number, or a JSON string holding
// anything UnmarshalText accepts. A JSON null leaves s unchanged.
func (s *Serial) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if n := len(data); n >= 2 && data[0] == '"' && data[n-1] == '"' {
		data = data[1 : n-1]
	}
	return s.UnmarshalText(data)
}
