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

// Command mecab reads sentences from standard input, one per line,
// and prints one morpheme per line as "surface<TAB>feature", each
// sentence terminated by a line reading "EOS".
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"seehuhn.de/go/mecab"
)

var (
	nBest   = flag.Int("N", 0, "output the N best analyses of every sentence")
	rcFile  = flag.String("r", "", "resource file to use instead of the default mecabrc")
	dicDir  = flag.String("d", "", "system dictionary directory (bypasses the resource file)")
	userDic = flag.String("u", "", "user dictionary file")
)

func main() {
	flag.CommandLine.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [options] < input.txt\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Sentences are read from standard input, one per line.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	t, err := mecab.NewTokenizer(&mecab.Options{
		RCPath:  *rcFile,
		DicDir:  *dicDir,
		UserDic: *userDic,
	})
	if err != nil {
		return err
	}
	defer t.Close()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "reading sentences from the terminal, one per line (Ctrl-D to quit)")
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if *nBest > 0 {
			results, err := t.TokenizeNBest(line, *nBest)
			if err != nil {
				return err
			}
			for _, morphemes := range results {
				printMorphemes(out, morphemes)
			}
		} else {
			morphemes, err := t.Tokenize(line)
			if err != nil {
				return err
			}
			printMorphemes(out, morphemes)
		}
		err := out.Flush()
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

func printMorphemes(out *bufio.Writer, morphemes []mecab.Morpheme) {
	for _, m := range morphemes {
		fmt.Fprintf(out, "%s\t%s\n", m.Surface, m.Feature)
	}
	fmt.Fprintln(out, "EOS")
}
