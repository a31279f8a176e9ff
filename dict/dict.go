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

	"golang.org/x/text/encoding"

	"seehuhn.de/go/mecab/internal/mmapfile"
)

// Dictionary types, stored in the file header.
const (
	TypeSystem  = 0
	TypeUser    = 1
	TypeUnknown = 2
)

const (
	headerSize  = 72
	magicXOR    = 0xef718f77
	dicVersion  = 102
	tokenSize   = 16
	cacheLimit = 1024

	// spaceCategory names the character category whose unknown-word
	// entries become skip nodes.
	spaceCategory = "SPACE"
)

// Dict is one MeCab dictionary file: a double-array trie over the
// surface forms, a token table with one 16-byte row per lexicon
// entry, and a pool of NUL-terminated feature strings.
//
// The same format is used for the system dictionary ("sys.dic"), user
// dictionaries, and the unknown-word dictionary ("unk.dic"); in the
// latter the trie keys are character category names instead of
// surface forms.
//
// All lookup methods are safe for concurrent use: a Dict is immutable
// after construction except for the internal token cache, which
// serializes itself.
type Dict struct {
	data   []byte
	closer io.Closer

	version uint32
	dicType uint32
	lexSize uint32
	lsize   uint32
	rsize   uint32
	charset string
	enc     encoding.Encoding

	da       []byte
	tokens   []byte
	features []byte

	cache *tokenCache
}

// Entry is one dictionary entry returned by a lookup: a row of the
// token table together with the input bytes it matched.
type Entry struct {
	// Original is the slice of the input which this entry covers.
	Original []byte

	// LeftID and RightID are the context IDs used to look up
	// connection costs in the Matrix.
	LeftID  uint16
	RightID uint16

	// PosID is the part-of-speech ID.
	PosID uint16

	// WordCost is the cost of the entry itself, independent of
	// context.
	WordCost int16

	// Feature is the comma-separated feature string, in the
	// dictionary's character set.  The slice points into the
	// dictionary file and must not be modified.
	Feature []byte

	// Skip marks entries derived from the SPACE character category.
	Skip bool
}

// PrefixMatch is one result of CommonPrefixSearch: Value is the packed
// token reference stored in the trie, Length the number of input
// bytes the key consumed.
type PrefixMatch struct {
	Value  int
	Length int
}

// Open memory-maps the dictionary file at path.
func Open(path string) (*Dict, error) {
	f, err := mmapfile.Open(path)
	if err != nil {
		return nil, err
	}
	d, err := New(f.Data)
	if err != nil {
		f.Close()
		if fe, ok := err.(*FormatError); ok {
			fe.Path = path
			return nil, fe
		}
		return nil, &FormatError{Path: path, Err: err}
	}
	d.closer = f
	return d, nil
}

// New parses a dictionary from data.  The returned Dict keeps
// referring to data.
func New(data []byte) (*Dict, error) {
	if len(data) < headerSize {
		return nil, &FormatError{Err: errTooShort}
	}

	u32 := func(i int) uint32 {
		return binary.LittleEndian.Uint32(data[i:])
	}

	// The first header word holds the file size, XOR-obfuscated with a
	// fixed magic constant.
	if u32(0)^magicXOR != uint32(len(data)) {
		return nil, &FormatError{Err: errBadMagic}
	}

	d := &Dict{
		data:    data,
		version: u32(4),
		dicType: u32(8),
		lexSize: u32(12),
		lsize:   u32(16),
		rsize:   u32(20),
		cache:   newTokenCache(cacheLimit),
	}
	if d.version != dicVersion {
		return nil, &FormatError{Err: errBadVersion}
	}

	dsize := int64(u32(24))
	tsize := int64(u32(28))
	fsize := int64(u32(32))
	if headerSize+dsize+tsize+fsize > int64(len(data)) {
		return nil, &FormatError{Err: errTooShort}
	}

	charset := data[40:72]
	if i := bytes.IndexByte(charset, 0); i >= 0 {
		charset = charset[:i]
	}
	d.charset = string(charset)
	enc, err := encodingFor(d.charset)
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	d.enc = enc

	d.da = data[headerSize : headerSize+dsize]
	d.tokens = data[headerSize+dsize : headerSize+dsize+tsize]
	d.features = data[headerSize+dsize+tsize : headerSize+dsize+tsize+fsize]

	return d, nil
}

// Close releases the underlying file mapping, if any.
func (d *Dict) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// Version returns the dictionary format version.
func (d *Dict) Version() uint32 { return d.version }

// Type returns the dictionary type, one of [TypeSystem], [TypeUser]
// or [TypeUnknown].
func (d *Dict) Type() uint32 { return d.dicType }

// LexSize returns the number of lexicon entries.
func (d *Dict) LexSize() uint32 { return d.lexSize }

// LeftSize returns the number of left context IDs.
func (d *Dict) LeftSize() uint32 { return d.lsize }

// RightSize returns the number of right context IDs.
func (d *Dict) RightSize() uint32 { return d.rsize }

// Charset returns the character set name from the file header, for
// example "UTF-8" or "EUC-JP".
func (d *Dict) Charset() string { return d.charset }

// baseCheck returns the (base, check) pair of double-array slot idx.
// Out-of-range slots return a check value which matches no node, so a
// corrupted trie terminates the search instead of faulting.
func (d *Dict) baseCheck(idx int) (int32, uint32) {
	if idx < 0 || idx*8+8 > len(d.da) {
		return 0, 0xFFFFFFFF
	}
	base := int32(binary.LittleEndian.Uint32(d.da[idx*8:]))
	check := binary.LittleEndian.Uint32(d.da[idx*8+4:])
	return base, check
}

// CommonPrefixSearch returns the trie values of every key which is a
// prefix of s (including s itself), together with the key lengths, in
// order of increasing length.
func (d *Dict) CommonPrefixSearch(s []byte) []PrefixMatch {
	var results []PrefixMatch

	b, _ := d.baseCheck(0)
	for i := 0; i < len(s); i++ {
		// leaf check at the current node before descending
		n, check := d.baseCheck(int(b))
		if uint32(b) == check && n < 0 {
			results = append(results, PrefixMatch{Value: int(-n - 1), Length: i})
		}

		p := int(b) + int(s[i]) + 1
		base, check := d.baseCheck(p)
		if uint32(b) != check {
			return results
		}
		b = base
	}

	n, check := d.baseCheck(int(b))
	if uint32(b) == check && n < 0 {
		results = append(results, PrefixMatch{Value: int(-n - 1), Length: len(s)})
	}
	return results
}

// ExactMatchSearch returns the trie value of the key s, or -1 if s is
// not a key of the dictionary.
func (d *Dict) ExactMatchSearch(s []byte) int {
	b, _ := d.baseCheck(0)
	for i := 0; i < len(s); i++ {
		p := int(b) + int(s[i]) + 1
		base, check := d.baseCheck(p)
		if uint32(b) != check {
			return -1
		}
		b = base
	}

	n, check := d.baseCheck(int(b))
	if uint32(b) == check && n < 0 {
		return int(-n - 1)
	}
	return -1
}

// tokenRow is one decoded 16-byte row of the token table.
type tokenRow struct {
	leftID  uint16
	rightID uint16
	posID   uint16
	cost    int16
	feature []byte
}

// tokensAt decodes count consecutive token rows starting at row index
// idx.  Decoded groups are kept in a bounded cache, since the same
// small set of rows is hit over and over within one analysis.
func (d *Dict) tokensAt(idx, count int) []tokenRow {
	if rows, ok := d.cache.get(idx, count); ok {
		return rows
	}

	rows := make([]tokenRow, count)
	for i := range rows {
		row := d.tokens[(idx+i)*tokenSize:]
		feat := d.features[binary.LittleEndian.Uint32(row[8:]):]
		if j := bytes.IndexByte(feat, 0); j >= 0 {
			feat = feat[:j]
		}
		// bytes 12-16 hold the reserved "compound" field
		rows[i] = tokenRow{
			leftID:  binary.LittleEndian.Uint16(row),
			rightID: binary.LittleEndian.Uint16(row[2:]),
			posID:   binary.LittleEndian.Uint16(row[4:]),
			cost:    int16(binary.LittleEndian.Uint16(row[6:])),
			feature: feat,
		}
	}

	d.cache.put(idx, count, rows)
	return rows
}

// entriesFor expands a packed trie value into dictionary entries.
// The high 24 bits of value index the token table, the low 8 bits
// give the number of consecutive rows.  All entries share the same
// original slice and skip flag.
func (d *Dict) entriesFor(value int, original []byte, skip bool) []Entry {
	rows := d.tokensAt(value>>8, value&0xFF)
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{
			Original: original,
			LeftID:   r.leftID,
			RightID:  r.rightID,
			PosID:    r.posID,
			WordCost: r.cost,
			Feature:  r.feature,
			Skip:     skip,
		}
	}
	return entries
}

// Lookup returns every dictionary entry whose surface form is a
// prefix of s, in order of increasing surface length.
func (d *Dict) Lookup(s []byte) []Entry {
	var entries []Entry
	for _, m := range d.CommonPrefixSearch(s) {
		entries = append(entries, d.entriesFor(m.Value, s[:m.Length], false)...)
	}
	return entries
}

// LookupUnknowns returns the unknown-word entries for the input s,
// using cp to classify the first character and to measure candidate
// lengths.  The trie of d must be keyed by category names (an
// unknown-word dictionary).  The second return value is the
// category's invoke flag: if set, the entries must be added to the
// lattice even when the regular dictionaries matched at the same
// position.
//
// Entries of the SPACE category are marked as skip entries.
func (d *Dict) LookupUnknowns(s []byte, cp *CharProperty) ([]Entry, bool) {
	defaultType, lengths, invoke := cp.UnknownLengths(s)
	name := cp.CategoryName(int(defaultType))
	value := d.ExactMatchSearch(name)
	if value < 0 {
		return nil, invoke
	}
	skip := string(name) == spaceCategory

	var entries []Entry
	for _, n := range lengths {
		entries = append(entries, d.entriesFor(value, s[:n], skip)...)
	}
	return entries, invoke
}

// DecodeFeature converts a feature string from the dictionary's
// character set to a Go (UTF-8) string.  Undecodable input is
// returned byte-for-byte.
func (d *Dict) DecodeFeature(feature []byte) string {
	if d.enc == nil {
		return string(feature)
	}
	out, err := d.enc.NewDecoder().Bytes(feature)
	if err != nil {
		return string(feature)
	}
	return string(out)
}
