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

package mecab

import "errors"

var (
	// ErrNoMecabrc is returned when no mecabrc resource file could be
	// located.
	ErrNoMecabrc = errors.New("mecab: no mecabrc file found")

	// ErrNoDicDir is returned when the resource file does not name a
	// dictionary directory.
	ErrNoDicDir = errors.New("mecab: mecabrc does not set dicdir")

	// ErrNoPath is returned when the lattice has no path from BOS to
	// EOS.  This cannot happen with a well-formed unknown-word
	// dictionary, which yields at least one candidate per position.
	ErrNoPath = errors.New("mecab: no path through the input lattice")
)
