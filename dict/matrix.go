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
	"encoding/binary"
	"io"

	"seehuhn.de/go/mecab/internal/mmapfile"
)

// Matrix is the connection cost matrix of a dictionary directory (the
// file "matrix.bin").  It stores a signed 16-bit transition cost for
// every pair of context IDs.
type Matrix struct {
	data  []byte
	lsize int
	rsize int

	closer io.Closer
}

// OpenMatrix memory-maps the connection cost matrix at path.
func OpenMatrix(path string) (*Matrix, error) {
	f, err := mmapfile.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := NewMatrix(f.Data)
	if err != nil {
		f.Close()
		return nil, &FormatError{Path: path, Err: err}
	}
	m.closer = f
	return m, nil
}

// NewMatrix parses a connection cost matrix from data.  The returned
// Matrix keeps referring to data.
func NewMatrix(data []byte) (*Matrix, error) {
	if len(data) < 4 {
		return nil, errTooShort
	}
	lsize := int(binary.LittleEndian.Uint16(data))
	rsize := int(binary.LittleEndian.Uint16(data[2:]))
	if len(data) < 4+2*lsize*rsize {
		return nil, errTooShort
	}
	return &Matrix{data: data, lsize: lsize, rsize: rsize}, nil
}

// Close releases the underlying file mapping, if any.
func (m *Matrix) Close() error {
	if m.closer == nil {
		return nil
	}
	return m.closer.Close()
}

// LeftSize returns the number of left context IDs.
func (m *Matrix) LeftSize() int { return m.lsize }

// RightSize returns the number of right context IDs.
func (m *Matrix) RightSize() int { return m.rsize }

// TransCost returns the cost of the transition from a morpheme with
// right context ID id1 to a morpheme with left context ID id2.
// The IDs are not checked against the matrix sizes; IDs which address
// a cost beyond the end of the table cause a panic.
func (m *Matrix) TransCost(id1, id2 int) int16 {
	return int16(binary.LittleEndian.Uint16(m.data[4+2*(id2*m.lsize+id1):]))
}
