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
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// mecabrcPaths lists the places searched for the resource file, in
// order.  The MECABRC environment variable takes precedence.
var mecabrcPaths = []string{
	"/usr/local/etc/mecabrc",
	"/etc/mecabrc",
}

// findMecabrc returns the path of the mecabrc resource file, or ""
// if none was found.
func findMecabrc() string {
	if p := os.Getenv("MECABRC"); p != "" {
		return p
	}
	for _, p := range mecabrcPaths {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// parseMecabrc reads a mecabrc resource file: one "key = value" per
// line, with ";" and "#" starting comment lines.
func parseMecabrc(path string) (map[string]string, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	rc := make(map[string]string)
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		rc[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return rc, scanner.Err()
}

// dicPath resolves the path of one dictionary file inside the
// configured dictionary directory.
func dicPath(dicDir, name string) string {
	return filepath.Join(dicDir, name)
}
