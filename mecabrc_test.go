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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/mecab/internal/dicttest"
)

func TestParseMecabrc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mecabrc")
	content := `; this is a comment
# and so is this

dicdir = /var/lib/mecab/dic/ipadic
userdic=/home/voss/user.dic
output-format-type = wakati
broken line without equals sign
eval = a = b
`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	rc, err := parseMecabrc(path)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"dicdir":             "/var/lib/mecab/dic/ipadic",
		"userdic":            "/home/voss/user.dic",
		"output-format-type": "wakati",
		"eval":               "a = b",
	}
	if d := cmp.Diff(want, rc); d != "" {
		t.Errorf("mecabrc mismatch (-want +got):\n%s", d)
	}
}

func TestFindMecabrcEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my-mecabrc")
	err := os.WriteFile(path, []byte("dicdir = /nowhere\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("MECABRC", path)
	if got := findMecabrc(); got != path {
		t.Errorf("findMecabrc = %q, want %q", got, path)
	}
}

func TestDicPath(t *testing.T) {
	got := dicPath("/var/lib/mecab/dic/ipadic", "sys.dic")
	want := filepath.Join("/var/lib/mecab/dic/ipadic", "sys.dic")
	if got != want {
		t.Errorf("dicPath = %q, want %q", got, want)
	}
}

// TestTokenizerFromRC opens a Tokenizer through a resource file
// instead of an explicit dictionary directory.
func TestTokenizerFromRC(t *testing.T) {
	dir := t.TempDir()
	err := dicttest.WriteSampleDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	rcPath := filepath.Join(dir, "mecabrc")
	err = os.WriteFile(rcPath, []byte("dicdir = "+dir+"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	tk, err := NewTokenizer(&Options{RCPath: rcPath})
	if err != nil {
		t.Fatal(err)
	}
	defer tk.Close()

	got, err := tk.Tokenize("うち")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Surface != "うち" {
		t.Errorf("unexpected result %v", got)
	}
}

func TestNoDicDir(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), "mecabrc")
	err := os.WriteFile(rcPath, []byte("userdic = /tmp/user.dic\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = NewTokenizer(&Options{RCPath: rcPath})
	if !errors.Is(err, ErrNoDicDir) {
		t.Errorf("got %v, want ErrNoDicDir", err)
	}
}
