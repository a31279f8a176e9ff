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

// Package mecab segments Japanese text into morphemes.
//
// The analyzer is a clone of the MeCab runtime: it consumes binary
// dictionaries produced by the MeCab toolchain unchanged, builds a
// lattice of candidate morphemes over the input, and extracts the
// cheapest segmentation by Viterbi search.  Alternative segmentations
// can be enumerated in order of increasing cost.
//
// A `Tokenizer` locates its dictionaries through a mecabrc resource
// file, or through explicit [Options]:
//
//	t, err := mecab.NewTokenizer(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer t.Close()
//
//	morphemes, err := t.Tokenize("すもももももももものうち")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range morphemes {
//	    fmt.Printf("%s\t%s\n", m.Surface, m.Feature)
//	}
//
// Dictionaries are memory-mapped and never modified, so a single
// Tokenizer can serve any number of goroutines concurrently.
//
// The binary file formats are read by the subpackage
// [seehuhn.de/go/mecab/dict].
package mecab
