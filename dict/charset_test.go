// seehuhn.de/go/mecab - a Japanese morphological analyzer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dict

import (
	"testing"

	"golang.org/x/text/encoding/japanese"
)

func TestEncodingFor(t *testing.T) {
	for _, name := range []string{"UTF-8", "utf8", "UTF_8", "ASCII", ""} {
		enc, err := encodingFor(name)
		if err != nil {
			t.Errorf("%q: %v", name, err)
		}
		if enc != nil {
			t.Errorf("%q: got non-nil encoding", name)
		}
	}

	for _, name := range []string{"EUC-JP", "euc-jp", "EUCJP"} {
		enc, err := encodingFor(name)
		if err != nil {
			t.Errorf("%q: %v", name, err)
		}
		if enc != japanese.EUCJP {
			t.Errorf("%q: got %v, want EUC-JP", name, enc)
		}
	}

	for _, name := range []string{"SHIFT-JIS", "Shift_JIS", "SJIS", "CP932"} {
		enc, err := encodingFor(name)
		if err != nil {
			t.Errorf("%q: %v", name, err)
		}
		if enc != japanese.ShiftJIS {
			t.Errorf("%q: got %v, want Shift JIS", name, enc)
		}
	}

	for _, name := range []string{"UTF-16", "UTF-16LE", "UTF-16BE"} {
		enc, err := encodingFor(name)
		if err != nil {
			t.Errorf("%q: %v", name, err)
		}
		if enc == nil {
			t.Errorf("%q: got nil encoding", name)
		}
	}

	for _, name := range []string{"KOI8-R", "latin1", "EBCDIC"} {
		if _, err := encodingFor(name); err == nil {
			t.Errorf("%q: got nil error", name)
		}
	}
}
