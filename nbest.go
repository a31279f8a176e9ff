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
	"container/heap"

	"seehuhn.de/go/mecab/dict"
)

// backwardPath is a partial path of the N-best search, growing from
// EOS towards BOS.
//
// costFromEOS is the exact cost of the suffix chosen so far,
// costFromBOS the accumulated Viterbi cost of the current leftmost
// node.  The latter is an exact lower bound for the remaining
// distance to BOS, so ordering the queue by the sum makes the search
// an A* with an admissible, consistent heuristic: completed paths pop
// off the queue in order of their true total cost.
type backwardPath struct {
	costFromBOS int
	costFromEOS int

	// nodes holds the path in EOS-to-BOS order.
	nodes []*node
}

// newBackwardPath extends right leftwards by n.  With right == nil it
// starts a fresh path at the EOS node.
func newBackwardPath(m *dict.Matrix, n *node, right *backwardPath) *backwardPath {
	bp := &backwardPath{costFromBOS: n.minCost}

	if right != nil {
		neighbor := right.nodes[len(right.nodes)-1]
		bp.costFromEOS = right.costFromEOS +
			int(neighbor.cost) +
			int(m.TransCost(int(n.rightID), int(neighbor.leftID)))
		bp.nodes = make([]*node, len(right.nodes), len(right.nodes)+1)
		copy(bp.nodes, right.nodes)
	}

	bp.nodes = append(bp.nodes, n)
	return bp
}

func (bp *backwardPath) complete() bool {
	return bp.nodes[len(bp.nodes)-1].isBOS()
}

// nBest returns up to n complete BOS-to-EOS paths in order of
// increasing total cost.
//
// Unlike the forward relaxation, the backward search expands skip
// nodes like any other predecessor, so whitespace nodes appear as
// ordinary members of the returned paths.
func (l *lattice) nBest(n int, m *dict.Matrix) [][]*node {
	eos := l.enodes[len(l.enodes)-1][0]

	pq := pathQueue{newBackwardPath(m, eos, nil)}
	heap.Init(&pq)

	var paths [][]*node
	for pq.Len() > 0 && n > 0 {
		bp := heap.Pop(&pq).(*backwardPath)
		if bp.complete() {
			path := make([]*node, len(bp.nodes))
			for i, nd := range bp.nodes {
				path[len(path)-1-i] = nd
			}
			paths = append(paths, path)
			n--
			continue
		}

		last := bp.nodes[len(bp.nodes)-1]
		epos := last.epos - last.length
		for _, pred := range l.enodes[epos] {
			heap.Push(&pq, newBackwardPath(m, pred, bp))
		}
	}
	return paths
}

type pathQueue []*backwardPath

// Len implements heap.Interface.
func (pq pathQueue) Len() int {
	return len(pq)
}

// Less implements heap.Interface.
func (pq pathQueue) Less(i, j int) bool {
	return pq[i].costFromBOS+pq[i].costFromEOS < pq[j].costFromBOS+pq[j].costFromEOS
}

// Swap implements heap.Interface.
func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

// Push implements heap.Interface.
func (pq *pathQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*backwardPath))
}

// Pop implements heap.Interface.
func (pq *pathQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	bp := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return bp
}
