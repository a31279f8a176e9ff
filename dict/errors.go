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

import "errors"

var (
	errTooShort   = errors.New("file too short")
	errBadMagic   = errors.New("magic number mismatch")
	errBadVersion = errors.New("incompatible dictionary version")
)

// FormatError indicates that a dictionary file could not be parsed.
type FormatError struct {
	Path string
	Err  error
}

func (err *FormatError) Error() string {
	msg := "not a valid dictionary file"
	if err.Path != "" {
		msg = err.Path + ": " + msg
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return "dict: " + msg
}

func (err *FormatError) Unwrap() error {
	return err.Err
}
