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

import (
	"seehuhn.de/go/mecab/dict"
)

// infCost is the initial accumulated cost of a node before Viterbi
// relaxation.
const infCost = 0x7FFFFFFF

// node is one candidate morpheme on the lattice.
//
// Nodes never point at each other directly: the best predecessor is
// recorded as a (position, index) pair into the lattice's snodes
// arena, so the graph has no ownership cycles.
type node struct {
	// original is the input slice this node covers; nil for the BOS
	// and EOS sentinels.
	original []byte

	// feature is the raw feature string from the dictionary.
	feature []byte

	// length is the byte length of original; 1 for BOS and EOS.
	length int

	// pos and epos are the start and end positions on the lattice.
	// Positions are byte offsets shifted by one: position 0 is
	// reserved for BOS, position p corresponds to input byte p-1.
	pos, epos int

	// index is the node's slot in snodes[pos].
	index int

	leftID  uint16
	rightID uint16

	// cost is the word cost of the entry itself.
	cost int16

	// minCost is the accumulated cost of the best path from BOS to
	// this node, established during relaxation.
	minCost int

	// backPos and backIndex locate the best predecessor in snodes.
	backPos, backIndex int

	// skip marks whitespace nodes, which the relaxation treats as
	// transparent bridges.
	skip bool

	// src is the dictionary the node came from, needed to decode the
	// feature string; nil for BOS and EOS.
	src *dict.Dict
}

func newNode(e dict.Entry, src *dict.Dict) *node {
	return &node{
		original:  e.Original,
		feature:   e.Feature,
		length:    len(e.Original),
		leftID:    e.LeftID,
		rightID:   e.RightID,
		cost:      e.WordCost,
		minCost:   infCost,
		backPos:   -1,
		backIndex: -1,
		skip:      e.Skip,
		src:       src,
	}
}

func bosNode() *node {
	return &node{
		length:    1,
		pos:       0,
		epos:      1,
		backPos:   -1,
		backIndex: -1,
	}
}

func eosNode() *node {
	return &node{
		length:    1,
		minCost:   infCost,
		backPos:   -1,
		backIndex: -1,
	}
}

func (n *node) isBOS() bool { return n.original == nil && n.pos == 0 }
func (n *node) isEOS() bool { return n.original == nil && n.pos != 0 }

// lattice is the graph of candidate morphemes over one input.
//
// snodes[p] lists the nodes starting at position p, enodes[p] the
// nodes ending there; every real node appears in exactly one list of
// each.  The cursor p names the position candidates are currently
// being added at.
type lattice struct {
	snodes [][]*node
	enodes [][]*node
	p      int
}

// newLattice creates a lattice for an input of size bytes, holding
// only the BOS sentinel.
func newLattice(size int) *lattice {
	bos := bosNode()
	snodes := make([][]*node, size+2)
	enodes := make([][]*node, size+3)
	snodes[0] = []*node{bos}
	enodes[1] = []*node{bos}
	return &lattice{snodes: snodes, enodes: enodes, p: 1}
}

// add places n at the cursor position and relaxes it against every
// node ending there: the predecessor with the smallest accumulated
// cost plus transition cost wins, and ties keep the earlier node.
//
// A skip predecessor is transparent: instead of connecting to it, the
// relaxation connects to the nodes ending where the skip node begins,
// so that runs of whitespace carry no transition cost of their own.
func (l *lattice) add(n *node, m *dict.Matrix) {
	minCost := n.minCost
	best := l.enodes[l.p][0]

	for _, e := range l.enodes[l.p] {
		if e.skip {
			for _, e2 := range l.enodes[e.pos] {
				cost := e2.minCost + int(m.TransCost(int(e2.rightID), int(n.leftID)))
				if cost < minCost {
					minCost = cost
					best = e2
				}
			}
		} else {
			cost := e.minCost + int(m.TransCost(int(e.rightID), int(n.leftID)))
			if cost < minCost {
				minCost = cost
				best = e
			}
		}
	}

	n.minCost = minCost + int(n.cost)
	n.backPos = best.pos
	n.backIndex = best.index
	n.pos = l.p
	n.epos = l.p + n.length
	n.index = len(l.snodes[l.p])
	l.snodes[n.pos] = append(l.snodes[n.pos], n)
	l.enodes[n.epos] = append(l.enodes[n.epos], n)
}

// forward advances the cursor to the next position where a candidate
// ends, and returns the number of byte positions moved.  Positions
// where no node ends cannot start a new candidate; they are skipped.
//
// If no node ends anywhere after the old cursor the lattice has no
// path to EOS; forward reports this instead of running off the arena.
func (l *lattice) forward() (int, error) {
	oldP := l.p
	l.p++
	for l.p < len(l.enodes) && len(l.enodes[l.p]) == 0 {
		l.p++
	}
	if l.p >= len(l.enodes) {
		return 0, ErrNoPath
	}
	return l.p - oldP, nil
}

// end closes the lattice: the EOS sentinel is added at the cursor and
// the arenas are truncated to their used prefix.
func (l *lattice) end(m *dict.Matrix) {
	l.add(eosNode(), m)
	l.snodes = l.snodes[:l.p+1]
	l.enodes = l.enodes[:l.p+2]
}

// backward returns the best path from BOS to EOS by following the
// predecessor links established during relaxation.
func (l *lattice) backward() []*node {
	var path []*node
	pos := len(l.snodes) - 1
	index := 0
	for pos >= 0 {
		n := l.snodes[pos][index]
		pos, index = n.backPos, n.backIndex
		path = append(path, n)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
