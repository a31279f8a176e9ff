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

// Package dict reads the binary dictionary files of the MeCab
// morphological analyzer: compiled dictionaries ("sys.dic",
// "unk.dic", user dictionaries), the character property table
// ("char.bin"), and the connection cost matrix ("matrix.bin").
//
// All files are memory-mapped and decoded in place; no data is copied
// at load time.  The readers are compatible with dictionaries
// produced by the MeCab toolchain, for example IPADIC.
//
// https://taku910.github.io/mecab/
package dict
