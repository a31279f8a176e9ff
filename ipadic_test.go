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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The tests in this file run against a system-wide MeCab installation
// with the UTF-8 IPA dictionary.  They are skipped when no mecabrc
// is found.

func openIPADic(t *testing.T) *Tokenizer {
	t.Helper()
	tk, err := NewTokenizer(nil)
	if err != nil {
		t.Skipf("no system dictionary: %v", err)
	}
	t.Cleanup(func() { tk.Close() })
	return tk
}

func TestIPADicMatrix(t *testing.T) {
	tk := openIPADic(t)

	if got := tk.matrix.TransCost(555, 1283); got != 340 {
		t.Errorf("TransCost(555, 1283) = %d, want 340", got)
	}
	if got := tk.matrix.TransCost(10, 1293); got != -1376 {
		t.Errorf("TransCost(10, 1293) = %d, want -1376", got)
	}
}

func TestIPADicCharProperty(t *testing.T) {
	tk := openIPADic(t)

	want := []string{
		"DEFAULT", "SPACE", "KANJI", "SYMBOL", "NUMERIC", "ALPHA",
		"HIRAGANA", "KATAKANA", "KANJINUMERIC", "GREEK", "CYRILLIC",
	}
	var got []string
	for i := 0; i < tk.cp.NumCategories(); i++ {
		got = append(got, string(tk.cp.CategoryName(i)))
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("category names mismatch (-want +got):\n%s", d)
	}

	cases := []struct {
		code        uint16
		defaultType uint8
		typ         uint32
		count       uint8
		group       bool
		invoke      bool
	}{
		{0x0000, 0, 1, 0, true, false},
		{0x0020, 1, 2, 0, true, false},
		{0x0009, 1, 2, 0, true, false},
		{0x6F22, 2, 4, 2, false, false},  // 漢
		{0x3007, 3, 264, 0, true, true},  // 〇
		{0x0031, 4, 16, 0, true, true},   // 1
		{0x3042, 6, 64, 2, true, false},  // あ
		{0x4E00, 8, 260, 0, true, true},  // 一
	}
	for _, c := range cases {
		got := tk.cp.CharInfo(c.code)
		if got.DefaultType != c.defaultType || got.Type != c.typ ||
			got.Count != c.count || got.Group != c.group ||
			got.Invoke != c.invoke {
			t.Errorf("CharInfo(%#x) = %+v", c.code, got)
		}
	}
}

func TestIPADicLookup(t *testing.T) {
	tk := openIPADic(t)

	s := []byte("すもももももももものうち")
	if got := len(tk.sys.CommonPrefixSearch(s)); got != 3 {
		t.Errorf("got %d prefix matches, want 3", got)
	}
	if got := len(tk.sys.Lookup(s)); got != 9 {
		t.Errorf("got %d entries, want 9", got)
	}

	s = []byte("もももももも")
	if got := len(tk.sys.CommonPrefixSearch(s)); got != 2 {
		t.Errorf("got %d prefix matches, want 2", got)
	}
	if got := len(tk.sys.Lookup(s)); got != 4 {
		t.Errorf("got %d entries, want 4", got)
	}
}

func TestIPADicUnknowns(t *testing.T) {
	tk := openIPADic(t)

	if got := tk.unk.ExactMatchSearch([]byte("SPACE")); got != 9729 {
		t.Errorf("ExactMatchSearch(SPACE) = %d, want 9729", got)
	}

	entries, _ := tk.unk.LookupUnknowns([]byte("１９６７年"), tk.cp)
	if len(entries) == 0 {
		t.Fatal("no unknown entries")
	}
	if got := string(entries[0].Original); got != "１９６７" {
		t.Errorf("first candidate = %q, want １９６７", got)
	}
}

func TestIPADicTokenize(t *testing.T) {
	tk := openIPADic(t)

	want := [][]Morpheme{
		{
			{"すもも", "名詞,一般,*,*,*,*,すもも,スモモ,スモモ"},
			{"も", "助詞,係助詞,*,*,*,*,も,モ,モ"},
			{"もも", "名詞,一般,*,*,*,*,もも,モモ,モモ"},
			{"も", "助詞,係助詞,*,*,*,*,も,モ,モ"},
			{"もも", "名詞,一般,*,*,*,*,もも,モモ,モモ"},
			{"の", "助詞,連体化,*,*,*,*,の,ノ,ノ"},
			{"うち", "名詞,非自立,副詞可能,*,*,*,うち,ウチ,ウチ"},
		},
		{
			{"すもも", "名詞,一般,*,*,*,*,すもも,スモモ,スモモ"},
			{"も", "助詞,係助詞,*,*,*,*,も,モ,モ"},
			{"もも", "名詞,一般,*,*,*,*,もも,モモ,モモ"},
			{"もも", "名詞,一般,*,*,*,*,もも,モモ,モモ"},
			{"も", "助詞,係助詞,*,*,*,*,も,モ,モ"},
			{"の", "助詞,連体化,*,*,*,*,の,ノ,ノ"},
			{"うち", "名詞,非自立,副詞可能,*,*,*,うち,ウチ,ウチ"},
		},
		{
			{"すもも", "名詞,一般,*,*,*,*,すもも,スモモ,スモモ"},
			{"もも", "名詞,一般,*,*,*,*,もも,モモ,モモ"},
			{"も", "助詞,係助詞,*,*,*,*,も,モ,モ"},
			{"もも", "名詞,一般,*,*,*,*,もも,モモ,モモ"},
			{"も", "助詞,係助詞,*,*,*,*,も,モ,モ"},
			{"の", "助詞,連体化,*,*,*,*,の,ノ,ノ"},
			{"うち", "名詞,非自立,副詞可能,*,*,*,うち,ウチ,ウチ"},
		},
	}

	got, err := tk.Tokenize("すもももももももものうち")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want[0], got); d != "" {
		t.Errorf("morphemes mismatch (-want +got):\n%s", d)
	}

	nbest, err := tk.TokenizeNBest("すもももももももものうち", 3)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, nbest); d != "" {
		t.Errorf("n-best mismatch (-want +got):\n%s", d)
	}
}
