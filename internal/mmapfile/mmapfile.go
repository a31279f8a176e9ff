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

// Package mmapfile gives read-only, memory-mapped access to files.
//
// Dictionary files are large and accessed sparsely, so mapping them
// keeps startup cheap and lets concurrent analyses share one copy of
// the data.
package mmapfile

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is a file mapped into memory for reading.
// The Data slice stays valid until Close is called.
type File struct {
	Data mmap.MMap
}

// Open maps the file at path into memory.
func Open(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	data, err := mmap.Map(fd, mmap.RDONLY, 0)
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
	}
	return &File{Data: data}, nil
}

// Close unmaps the file.  The Data slice must not be used afterwards.
func (f *File) Close() error {
	return f.Data.Unmap()
}
