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

package dicttest

import (
	"os"
	"path/filepath"
)

// The sample dictionary is a miniature stand-in for IPADIC: a handful
// of lexicon entries, the full IPA category table, and a connection
// matrix tuned so that the example sentence すもももももももものうち
// has the same best and near-best segmentations as under the real
// dictionary.
//
// Context IDs: 0 is reserved for BOS/EOS, 1 is used by nouns and all
// unknown words, 2 by the particle も, 3 by the noun もも, and 4 by
// the particle の.

// SampleCategories mirrors the category table of the IPA dictionary.
var SampleCategories = []string{
	"DEFAULT", "SPACE", "KANJI", "SYMBOL", "NUMERIC", "ALPHA",
	"HIRAGANA", "KATAKANA", "KANJINUMERIC", "GREEK", "CYRILLIC",
}

// SampleCharClasses assigns character properties the way the IPA
// dictionary's char.def does, for the ranges the tests exercise.
var SampleCharClasses = []CharClass{
	{Lo: 0x0009, Hi: 0x000A, Default: 1, Type: 1 << 1, Group: true},
	{Lo: 0x000D, Hi: 0x000D, Default: 1, Type: 1 << 1, Group: true},
	{Lo: 0x0020, Hi: 0x0020, Default: 1, Type: 1 << 1, Group: true},
	{Lo: '0', Hi: '9', Default: 4, Type: 1 << 4, Group: true, Invoke: true},
	{Lo: 'A', Hi: 'Z', Default: 5, Type: 1 << 5, Group: true, Invoke: true},
	{Lo: 'a', Hi: 'z', Default: 5, Type: 1 << 5, Group: true, Invoke: true},
	{Lo: 0x3041, Hi: 0x3093, Default: 6, Type: 1 << 6, Count: 2, Group: true},
	{Lo: 0x30A1, Hi: 0x30F6, Default: 7, Type: 1 << 7, Count: 2, Group: true, Invoke: true},
	{Lo: 0x4E00, Hi: 0x9FFF, Default: 2, Type: 1 << 2, Count: 2},
	// kanji numerals additionally stay members of KANJI
	{Lo: 0x4E00, Hi: 0x4E00, Default: 8, Type: 1<<8 | 1<<2, Group: true, Invoke: true}, // 一
	{Lo: 0x4E8C, Hi: 0x4E8C, Default: 8, Type: 1<<8 | 1<<2, Group: true, Invoke: true}, // 二
	{Lo: 0xFF10, Hi: 0xFF19, Default: 4, Type: 1 << 4, Group: true, Invoke: true},
}

// SampleLexicon is the system lexicon of the sample dictionary.
var SampleLexicon = []Entry{
	{Key: "すもも", LeftID: 1, RightID: 1, PosID: 38, Cost: 100,
		Feature: "名詞,一般,*,*,*,*,すもも,スモモ,スモモ"},
	{Key: "もも", LeftID: 3, RightID: 3, PosID: 38, Cost: 80,
		Feature: "名詞,一般,*,*,*,*,もも,モモ,モモ"},
	{Key: "も", LeftID: 2, RightID: 2, PosID: 16, Cost: 50,
		Feature: "助詞,係助詞,*,*,*,*,も,モ,モ"},
	{Key: "も", LeftID: 2, RightID: 2, PosID: 17, Cost: 900,
		Feature: "助詞,終助詞,*,*,*,*,も,モ,モ"},
	{Key: "の", LeftID: 4, RightID: 4, PosID: 24, Cost: 30,
		Feature: "助詞,連体化,*,*,*,*,の,ノ,ノ"},
	{Key: "うち", LeftID: 1, RightID: 1, PosID: 66, Cost: 90,
		Feature: "名詞,非自立,副詞可能,*,*,*,うち,ウチ,ウチ"},
}

// SampleUnknowns is the unknown-word lexicon, keyed by category name.
var SampleUnknowns = []Entry{
	{Key: "DEFAULT", LeftID: 1, RightID: 1, PosID: 36, Cost: 1000,
		Feature: "記号,一般,*,*,*,*,*"},
	{Key: "SPACE", LeftID: 1, RightID: 1, PosID: 36, Cost: 500,
		Feature: "記号,空白,*,*,*,*,*"},
	{Key: "KANJI", LeftID: 1, RightID: 1, PosID: 38, Cost: 800,
		Feature: "名詞,一般,*,*,*,*,*"},
	{Key: "SYMBOL", LeftID: 1, RightID: 1, PosID: 36, Cost: 900,
		Feature: "記号,一般,*,*,*,*,*"},
	{Key: "NUMERIC", LeftID: 1, RightID: 1, PosID: 48, Cost: 700,
		Feature: "名詞,数,*,*,*,*,*"},
	{Key: "ALPHA", LeftID: 1, RightID: 1, PosID: 38, Cost: 600,
		Feature: "名詞,固有名詞,組織,*,*,*,*"},
	{Key: "HIRAGANA", LeftID: 1, RightID: 1, PosID: 38, Cost: 750,
		Feature: "名詞,一般,*,*,*,*,*"},
	{Key: "KATAKANA", LeftID: 1, RightID: 1, PosID: 38, Cost: 650,
		Feature: "名詞,固有名詞,一般,*,*,*,*"},
	{Key: "KANJINUMERIC", LeftID: 1, RightID: 1, PosID: 48, Cost: 720,
		Feature: "名詞,数,*,*,*,*,*"},
	{Key: "GREEK", LeftID: 1, RightID: 1, PosID: 38, Cost: 850,
		Feature: "記号,アルファベット,*,*,*,*,*"},
	{Key: "CYRILLIC", LeftID: 1, RightID: 1, PosID: 38, Cost: 850,
		Feature: "記号,アルファベット,*,*,*,*,*"},
}

// SampleCosts is the connection matrix of the sample dictionary,
// keyed by (right context ID of the predecessor, left context ID of
// the successor).  The values favor alternating noun/particle
// sequences, like the real matrix does.
var SampleCosts = map[[2]int]int16{
	{1, 2}: -30, // noun → も
	{2, 3}: -40, // も → もも
	{3, 2}: -40, // もも → も
	{3, 4}: -40, // もも → の
	{2, 4}: -20, // も → の
	{1, 3}: 20,  // noun → もも
	{2, 2}: 300, // も → も
}

// SampleMatrixSize is the number of context IDs of the sample
// dictionary.
const SampleMatrixSize = 5

// WriteSampleDir writes the four files of the sample dictionary into
// the directory dir, which must exist.
func WriteSampleDir(dir string) error {
	files := map[string][]byte{
		"sys.dic":    Dict(TypeSystem, SampleMatrixSize, SampleMatrixSize, "UTF-8", SampleLexicon),
		"unk.dic":    Dict(TypeUnknown, SampleMatrixSize, SampleMatrixSize, "UTF-8", SampleUnknowns),
		"char.bin":   CharBin(SampleCategories, SampleCharClasses),
		"matrix.bin": Matrix(SampleMatrixSize, SampleMatrixSize, SampleCosts),
	}
	for name, data := range files {
		err := os.WriteFile(filepath.Join(dir, name), data, 0o644)
		if err != nil {
			return err
		}
	}
	return nil
}
