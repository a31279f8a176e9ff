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
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// encodingFor maps a character set name from a dictionary header to
// the encoding used to decode its feature strings.  A nil encoding
// means the strings can be used as UTF-8 directly.
//
// Name matching ignores case, hyphens and underscores, so that
// "EUC-JP", "euc-jp" and "EUCJP" all name the same encoding.
func encodingFor(name string) (encoding.Encoding, error) {
	key := strings.ToUpper(name)
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")

	switch key {
	case "UTF8", "ASCII", "":
		return nil, nil
	case "EUCJP":
		return japanese.EUCJP, nil
	case "SJIS", "SHIFTJIS", "CP932":
		return japanese.ShiftJIS, nil
	case "UTF16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "UTF16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "UTF16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	}
	return nil, fmt.Errorf("unsupported character set %q", name)
}
