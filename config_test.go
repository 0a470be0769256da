// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serial_test

import (
	"bytes"
	"strings"
	"testing"

	"code.hybscloud.com/serial"
	"github.com/BurntSushi/toml"
)

type streamConfig struct {
	Start  serial.Serial `toml:"start"`
	Resume serial.Serial `toml:"resume"`
}

func TestTOMLDecode(t *testing.T) {
	const doc = `
start = 65000
resume = "NaN"
`
	var cfg streamConfig
	if _, err := toml.Decode(doc, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Start != sn(65000) {
		t.Fatalf("start got %v, want 65000", cfg.Start)
	}
	if !cfg.Resume.IsNaN() {
		t.Fatalf("resume got %v, want NaN", cfg.Resume)
	}
}

func TestTOMLDecodeInvalid(t *testing.T) {
	var cfg streamConfig
	if _, err := toml.Decode(`start = "later"`, &cfg); err == nil {
		t.Fatal("expected error for non-numeric serial")
	}
}

func TestTOMLEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(streamConfig{Start: sn(7), Resume: serial.NaN}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `start = "7"`) || !strings.Contains(out, `resume = "65535"`) {
		t.Fatalf("got %q", out)
	}

	var back streamConfig
	if _, err := toml.Decode(out, &back); err != nil {
		t.Fatal(err)
	}
	if back.Start != sn(7) || !back.Resume.IsNaN() {
		t.Fatalf("got %+v", back)
	}
}
