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
	"bytes"
	"encoding/binary"
	"io"

	"seehuhn.de/go/mecab/internal/mmapfile"
)

// maxGroupingSize limits the unknown-word candidates generated by the
// "group" rule: runs of up to maxGroupingSize+1 characters are
// grouped, longer runs produce no group candidate.
const maxGroupingSize = 24

// CharProperty is the character property table of a dictionary
// directory (the file "char.bin").  It classifies each 16-bit code
// unit into character categories and controls how unknown words are
// generated.
//
// The file starts with a 32-bit category count and the category names
// (32 bytes each, NUL-padded), followed by one 32-bit record for each
// of the 0x10000 possible code units.
type CharProperty struct {
	data   []byte
	names  [][]byte
	offset int

	closer io.Closer
}

// CharInfo is the unpacked property record of one code unit.
type CharInfo struct {
	// DefaultType is the primary category of the code unit, an index
	// into the category name table.
	DefaultType uint8

	// Type is a bitmask naming every category the code unit belongs
	// to; bit i corresponds to category i.
	Type uint32

	// Count, if non-zero, makes the unknown-word generator emit
	// candidates of exactly 1, 2, ..., Count category characters.
	Count uint8

	// Group makes the unknown-word generator emit one candidate
	// spanning the maximal run of category characters.
	Group bool

	// Invoke forces unknown-word candidates onto the lattice even
	// when the dictionary matched at the same position.
	Invoke bool
}

// OpenCharProperty memory-maps the character property table at path.
func OpenCharProperty(path string) (*CharProperty, error) {
	f, err := mmapfile.Open(path)
	if err != nil {
		return nil, err
	}
	cp, err := NewCharProperty(f.Data)
	if err != nil {
		f.Close()
		return nil, &FormatError{Path: path, Err: err}
	}
	cp.closer = f
	return cp, nil
}

// NewCharProperty parses a character property table from data.  The
// returned CharProperty keeps referring to data.
func NewCharProperty(data []byte) (*CharProperty, error) {
	if len(data) < 4 {
		return nil, errTooShort
	}
	numCategories := int(binary.LittleEndian.Uint32(data))
	offset := 4 + numCategories*32
	if numCategories == 0 || len(data) < offset+0x10000*4 {
		return nil, errTooShort
	}

	names := make([][]byte, numCategories)
	for i := range names {
		name := data[4+i*32 : 4+(i+1)*32]
		if j := bytes.IndexByte(name, 0); j >= 0 {
			name = name[:j]
		}
		names[i] = name
	}

	return &CharProperty{data: data, names: names, offset: offset}, nil
}

// Close releases the underlying file mapping, if any.
func (cp *CharProperty) Close() error {
	if cp.closer == nil {
		return nil
	}
	return cp.closer.Close()
}

// NumCategories returns the number of character categories.
func (cp *CharProperty) NumCategories() int {
	return len(cp.names)
}

// CategoryName returns the name of category i, for example "KANJI" or
// "SPACE".
func (cp *CharProperty) CategoryName(i int) []byte {
	return cp.names[i]
}

// CharInfo returns the unpacked property record for a code unit.
func (cp *CharProperty) CharInfo(code uint16) CharInfo {
	v := binary.LittleEndian.Uint32(cp.data[cp.offset+int(code)*4:])
	return CharInfo{
		DefaultType: uint8(v >> 18),
		Type:        v & 0x3FFFF,
		Count:       uint8(v >> 26 & 0xF),
		Group:       v>>30&1 != 0,
		Invoke:      v>>31&1 != 0,
	}
}

// charType returns only the category bitmask of a code unit.
func (cp *CharProperty) charType(code uint16) uint32 {
	return binary.LittleEndian.Uint32(cp.data[cp.offset+int(code)*4:]) & 0x3FFFF
}

// groupLength returns the byte length of the maximal run of
// characters at the start of s which belong to category t.  Runs
// longer than maxGroupingSize+1 characters yield -1: such a run is
// too long to become an unknown-word candidate.
func (cp *CharProperty) groupLength(s []byte, t uint8) int {
	i := 0
	count := 0
	for i < len(s) {
		code, n := decodeCodeUnit(s[i:])
		if cp.charType(code)&(1<<t) == 0 {
			break
		}
		i += n
		count++
		if count > maxGroupingSize+1 {
			return -1
		}
	}
	return i
}

// countLength returns the byte length of exactly count consecutive
// category-t characters at the start of s, or -1 if s does not start
// with that many.
func (cp *CharProperty) countLength(s []byte, t uint8, count int) int {
	i := 0
	for j := 0; j < count; j++ {
		if i >= len(s) {
			return -1
		}
		code, n := decodeCodeUnit(s[i:])
		if cp.charType(code)&(1<<t) == 0 {
			return -1
		}
		i += n
	}
	return i
}

// UnknownLengths enumerates the byte lengths of the unknown-word
// candidates starting at s, in generation order: the grouped run
// first (if the first character's category has the group flag), then
// the fixed-count prefixes 1..Count.  If neither rule produces a
// candidate, the length of the first character alone is returned, so
// the list is never empty.
//
// The category of the first character and its invoke flag are
// returned alongside.
func (cp *CharProperty) UnknownLengths(s []byte) (defaultType uint8, lengths []int, invoke bool) {
	code, firstLen := decodeCodeUnit(s)
	info := cp.CharInfo(code)

	if info.Group {
		if n := cp.groupLength(s, info.DefaultType); n > 0 {
			lengths = append(lengths, n)
		}
	}
	for count := 1; count <= int(info.Count); count++ {
		n := cp.countLength(s, info.DefaultType, count)
		if n < 0 {
			break
		}
		lengths = append(lengths, n)
	}

	if len(lengths) == 0 {
		lengths = append(lengths, firstLen)
	}
	return info.DefaultType, lengths, info.Invoke
}
