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
	"errors"

	"seehuhn.de/go/mecab/dict"
)

// Morpheme is one analyzed unit of the input.
type Morpheme struct {
	// Surface is the input substring the morpheme covers.
	Surface string

	// Feature is the comma-separated grammatical feature string from
	// the dictionary.
	Feature string
}

// Options control where a Tokenizer finds its dictionaries.  The zero
// value (and a nil pointer) select the system-wide mecabrc file.
type Options struct {
	// RCPath names the mecabrc resource file to read.  If empty, the
	// MECABRC environment variable and the standard locations are
	// tried in turn.
	RCPath string

	// DicDir names the dictionary directory directly, bypassing the
	// resource file.
	DicDir string

	// UserDic names an optional user dictionary, overriding the
	// "userdic" entry of the resource file.
	UserDic string
}

// Tokenizer analyzes Japanese text using a set of MeCab dictionaries.
//
// The dictionaries are memory-mapped at construction and released by
// Close.  A Tokenizer is safe for concurrent use; each analysis
// builds its own lattice.
type Tokenizer struct {
	sys    *dict.Dict
	user   *dict.Dict
	unk    *dict.Dict
	cp     *dict.CharProperty
	matrix *dict.Matrix
}

// NewTokenizer loads the system dictionary, the unknown-word
// dictionary, the character property table and the connection cost
// matrix named by opt.  Missing or malformed files make construction
// fail; a Tokenizer that was constructed successfully does not fail
// during analysis.
func NewTokenizer(opt *Options) (*Tokenizer, error) {
	if opt == nil {
		opt = &Options{}
	}

	dicDir := opt.DicDir
	userDic := opt.UserDic
	if dicDir == "" {
		rcPath := opt.RCPath
		if rcPath == "" {
			rcPath = findMecabrc()
		}
		if rcPath == "" {
			return nil, ErrNoMecabrc
		}
		rc, err := parseMecabrc(rcPath)
		if err != nil {
			return nil, err
		}
		dicDir = rc["dicdir"]
		if dicDir == "" {
			return nil, ErrNoDicDir
		}
		if userDic == "" {
			userDic = rc["userdic"]
		}
	}

	t := &Tokenizer{}
	var err error
	defer func() {
		if err != nil {
			t.Close()
		}
	}()

	t.sys, err = dict.Open(dicPath(dicDir, "sys.dic"))
	if err != nil {
		return nil, err
	}
	if userDic != "" {
		t.user, err = dict.Open(userDic)
		if err != nil {
			return nil, err
		}
	}
	t.cp, err = dict.OpenCharProperty(dicPath(dicDir, "char.bin"))
	if err != nil {
		return nil, err
	}
	t.unk, err = dict.Open(dicPath(dicDir, "unk.dic"))
	if err != nil {
		return nil, err
	}
	t.matrix, err = dict.OpenMatrix(dicPath(dicDir, "matrix.bin"))
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Close releases all dictionary mappings.
func (t *Tokenizer) Close() error {
	var errs []error
	if t.sys != nil {
		errs = append(errs, t.sys.Close())
	}
	if t.user != nil {
		errs = append(errs, t.user.Close())
	}
	if t.unk != nil {
		errs = append(errs, t.unk.Close())
	}
	if t.cp != nil {
		errs = append(errs, t.cp.Close())
	}
	if t.matrix != nil {
		errs = append(errs, t.matrix.Close())
	}
	return errors.Join(errs...)
}

// buildLattice enumerates every candidate morpheme of the input.  At
// each position the user dictionary, the system dictionary and the
// unknown-word heuristics are consulted in turn; unknown-word
// candidates are only added when the category demands it or nothing
// else matched.
func (t *Tokenizer) buildLattice(input []byte) (*lattice, error) {
	lat := newLattice(len(input))

	pos := 0
	for pos < len(input) {
		matched := false

		if t.user != nil {
			if entries := t.user.Lookup(input[pos:]); len(entries) > 0 {
				for _, e := range entries {
					lat.add(newNode(e, t.user), t.matrix)
				}
				matched = true
			}
		}

		if entries := t.sys.Lookup(input[pos:]); len(entries) > 0 {
			for _, e := range entries {
				lat.add(newNode(e, t.sys), t.matrix)
			}
			matched = true
		}

		entries, invoke := t.unk.LookupUnknowns(input[pos:], t.cp)
		if invoke || !matched {
			for _, e := range entries {
				lat.add(newNode(e, t.unk), t.matrix)
			}
		}

		adv, err := lat.forward()
		if err != nil {
			return nil, err
		}
		pos += adv
	}

	lat.end(t.matrix)
	return lat, nil
}

// morphemes converts the interior of a BOS...EOS path.
func (t *Tokenizer) morphemes(path []*node) []Morpheme {
	ms := make([]Morpheme, 0, len(path)-2)
	for _, n := range path[1 : len(path)-1] {
		ms = append(ms, Morpheme{
			Surface: string(n.original),
			Feature: n.src.DecodeFeature(n.feature),
		})
	}
	return ms
}

// Tokenize splits text into morphemes along the cheapest path through
// the lattice.
//
// Whitespace does not appear in the result: the Viterbi relaxation
// connects the neighbors of a whitespace run directly.  Empty input
// yields an empty, non-nil slice.
func (t *Tokenizer) Tokenize(text string) ([]Morpheme, error) {
	lat, err := t.buildLattice([]byte(text))
	if err != nil {
		return nil, err
	}
	return t.morphemes(lat.backward()), nil
}

// TokenizeNBest returns up to n alternative segmentations of text, in
// order of increasing cost.  For input without whitespace, the first
// one is the segmentation that Tokenize returns.  Fewer than n
// segmentations are returned when the
// lattice does not contain that many distinct paths.
//
// Unlike in Tokenize, whitespace runs appear as morphemes of their
// own in the returned segmentations.
func (t *Tokenizer) TokenizeNBest(text string, n int) ([][]Morpheme, error) {
	lat, err := t.buildLattice([]byte(text))
	if err != nil {
		return nil, err
	}

	paths := lat.nBest(n, t.matrix)
	results := make([][]Morpheme, len(paths))
	for i, path := range paths {
		results[i] = t.morphemes(path)
	}
	return results, nil
}
