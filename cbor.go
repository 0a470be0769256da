// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshalCBOR encodes s as a CBOR unsigned integer holding the raw value.
func (s Serial) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.n)
}

// UnmarshalCBOR decodes a CBOR unsigned integer in 0..65535.
func (s *Serial) UnmarshalCBOR(data []byte) error {
	var v uint16
	if err := cbor.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("serial: cbor: %w", err)
	}
	s.n = v
	return nil
}
