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

// Package dicttest assembles miniature MeCab dictionary files in
// memory, so that tests can run without a system-wide dictionary
// installation.
//
// The generated files use the same wire format as the MeCab
// toolchain: a 72-byte header, a double-array trie, a token table
// with 16-byte rows, and a pool of NUL-terminated feature strings.
package dicttest

import (
	"encoding/binary"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Dictionary types, mirroring the constants of the dict package.
const (
	TypeSystem  = 0
	TypeUser    = 1
	TypeUnknown = 2
)

// Entry describes one lexicon row of a generated dictionary.  Several
// entries may share the same key; they become consecutive rows of the
// token table.
type Entry struct {
	Key     string
	LeftID  uint16
	RightID uint16
	PosID   uint16
	Cost    int16
	Feature string
}

// Dict assembles a complete dictionary file image from the given
// lexicon.
func Dict(dicType uint32, lsize, rsize uint32, charset string, entries []Entry) []byte {
	byKey := make(map[string][]Entry)
	for _, e := range entries {
		byKey[e.Key] = append(byKey[e.Key], e)
	}
	keys := maps.Keys(byKey)
	slices.Sort(keys)

	// token table and feature pool; the trie value packs the first
	// row index into the high 24 bits and the row count into the low
	// 8 bits
	var tokens []byte
	var features []byte
	featOff := make(map[string]uint32)
	values := make([]int, len(keys))
	row := 0
	for i, key := range keys {
		group := byKey[key]
		values[i] = row<<8 | len(group)
		for _, e := range group {
			off, ok := featOff[e.Feature]
			if !ok {
				off = uint32(len(features))
				features = append(features, e.Feature...)
				features = append(features, 0)
				featOff[e.Feature] = off
			}
			var buf [16]byte
			binary.LittleEndian.PutUint16(buf[0:], e.LeftID)
			binary.LittleEndian.PutUint16(buf[2:], e.RightID)
			binary.LittleEndian.PutUint16(buf[4:], e.PosID)
			binary.LittleEndian.PutUint16(buf[6:], uint16(e.Cost))
			binary.LittleEndian.PutUint32(buf[8:], off)
			// bytes 12-16: reserved compound field, zero
			tokens = append(tokens, buf[:]...)
			row++
		}
	}

	da := doubleArray(keys, values)

	total := 72 + len(da) + len(tokens) + len(features)
	data := make([]byte, 0, total)
	var header [72]byte
	binary.LittleEndian.PutUint32(header[0:], uint32(total)^0xef718f77)
	binary.LittleEndian.PutUint32(header[4:], 102) // dictionary version
	binary.LittleEndian.PutUint32(header[8:], dicType)
	binary.LittleEndian.PutUint32(header[12:], uint32(len(entries)))
	binary.LittleEndian.PutUint32(header[16:], lsize)
	binary.LittleEndian.PutUint32(header[20:], rsize)
	binary.LittleEndian.PutUint32(header[24:], uint32(len(da)))
	binary.LittleEndian.PutUint32(header[28:], uint32(len(tokens)))
	binary.LittleEndian.PutUint32(header[32:], uint32(len(features)))
	copy(header[40:], charset)
	data = append(data, header[:]...)
	data = append(data, da...)
	data = append(data, tokens...)
	data = append(data, features...)
	return data
}

// trieNode is a node of the intermediate trie built from the keys.
type trieNode struct {
	children map[byte]*trieNode
	value    int // trie value, or -1
	base     int
}

// doubleArray builds the double-array representation of the keys.
//
// The encoding matches what the MeCab search expects: slot 0 holds
// the root's base value; a node with base b stores the transition for
// byte c at slot b+c+1 with check b, and marks the end of a key by
// storing (-value-1, b) at slot b itself.  Base values are allocated
// greedily and must be unique between nodes.
func doubleArray(keys []string, values []int) []byte {
	root := &trieNode{value: -1}
	for i, key := range keys {
		nd := root
		for j := 0; j < len(key); j++ {
			c := key[j]
			if nd.children == nil {
				nd.children = make(map[byte]*trieNode)
			}
			child, ok := nd.children[c]
			if !ok {
				child = &trieNode{value: -1}
				nd.children[c] = child
			}
			nd = child
		}
		nd.value = values[i]
	}

	usedSlot := map[int]bool{0: true}
	usedBase := make(map[int]bool)
	maxSlot := 0

	var queue []*trieNode
	queue = append(queue, root)
	for len(queue) > 0 {
		nd := queue[0]
		queue = queue[1:]

		cs := maps.Keys(nd.children)
		slices.Sort(cs)

	search:
		for b := 1; ; b++ {
			if usedBase[b] {
				continue
			}
			if nd.value >= 0 && usedSlot[b] {
				continue
			}
			for _, c := range cs {
				if usedSlot[b+int(c)+1] {
					continue search
				}
			}

			nd.base = b
			usedBase[b] = true
			if nd.value >= 0 {
				usedSlot[b] = true
				maxSlot = max(maxSlot, b)
			}
			for _, c := range cs {
				slot := b + int(c) + 1
				usedSlot[slot] = true
				maxSlot = max(maxSlot, slot)
			}
			break
		}

		for _, c := range cs {
			queue = append(queue, nd.children[c])
		}
	}

	da := make([]byte, (maxSlot+1)*8)
	put := func(slot int, base int32, check uint32) {
		binary.LittleEndian.PutUint32(da[slot*8:], uint32(base))
		binary.LittleEndian.PutUint32(da[slot*8+4:], check)
	}

	put(0, int32(root.base), 0)
	queue = append(queue, root)
	for len(queue) > 0 {
		nd := queue[0]
		queue = queue[1:]

		if nd.value >= 0 {
			put(nd.base, int32(-nd.value-1), uint32(nd.base))
		}
		cs := maps.Keys(nd.children)
		slices.Sort(cs)
		for _, c := range cs {
			child := nd.children[c]
			put(nd.base+int(c)+1, int32(child.base), uint32(nd.base))
			queue = append(queue, child)
		}
	}

	return da
}

// CharClass assigns one character property record to a range of code
// units.
type CharClass struct {
	Lo, Hi  rune
	Default uint8
	Type    uint32
	Count   uint8
	Group   bool
	Invoke  bool
}

// CharBin assembles a character property table.  Code units not
// covered by any class get the DEFAULT record (category 0, group
// flag set).  Later classes override earlier ones.
func CharBin(names []string, classes []CharClass) []byte {
	n := len(names)
	data := make([]byte, 4+32*n+0x10000*4)
	binary.LittleEndian.PutUint32(data, uint32(n))
	for i, name := range names {
		copy(data[4+32*i:4+32*(i+1)], name)
	}

	records := data[4+32*n:]
	def := packCharInfo(0, 1, 0, true, false)
	for cp := 0; cp < 0x10000; cp++ {
		binary.LittleEndian.PutUint32(records[cp*4:], def)
	}
	for _, c := range classes {
		v := packCharInfo(c.Default, c.Type, c.Count, c.Group, c.Invoke)
		for cp := c.Lo; cp <= c.Hi; cp++ {
			binary.LittleEndian.PutUint32(records[cp*4:], v)
		}
	}
	return data
}

func packCharInfo(def uint8, typ uint32, count uint8, group, invoke bool) uint32 {
	v := typ&0x3FFFF | uint32(def)<<18 | uint32(count&0xF)<<26
	if group {
		v |= 1 << 30
	}
	if invoke {
		v |= 1 << 31
	}
	return v
}

// Matrix assembles a connection cost matrix.  The costs map is keyed
// by {id1, id2} pairs as passed to TransCost: id1 is the right
// context ID of the preceding morpheme, id2 the left context ID of
// the following one.  Unlisted pairs cost zero.
func Matrix(lsize, rsize int, costs map[[2]int]int16) []byte {
	data := make([]byte, 4+2*lsize*rsize)
	binary.LittleEndian.PutUint16(data[0:], uint16(lsize))
	binary.LittleEndian.PutUint16(data[2:], uint16(rsize))
	for key, cost := range costs {
		id1, id2 := key[0], key[1]
		binary.LittleEndian.PutUint16(data[4+2*(id2*lsize+id1):], uint16(cost))
	}
	return data
}
