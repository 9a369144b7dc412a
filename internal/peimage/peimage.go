// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package peimage opens executable module images (PE files) for reading.
package peimage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotPE is returned by Open for files that are not PE images.
var ErrNotPE = errors.New("peimage: not a PE image")

const (
	dosHeaderSize = 64
	lfanewOffset  = 0x3C
)

// Reader reads a module image.
//
// Like any io.ReaderAt, clients can execute parallel ReadAt calls, but it is
// not safe to call Close and reading methods concurrently.
type Reader struct {
	f   *os.File
	len int64
}

// Close closes the reader.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Len returns the size of the image in bytes.
func (r *Reader) Len() int64 {
	return r.len
}

// ReadAt implements the io.ReaderAt interface.
func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	return r.f.ReadAt(p, off)
}

// Read implements the io.ReadSeeker interface.
func (r *Reader) Read(p []byte) (int, error) {
	return r.f.Read(p)
}

// Seek implements the io.ReadSeeker interface.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	return r.f.Seek(offset, whence)
}

// Open opens the named file and checks that it carries a DOS stub pointing
// at a PE signature. The reader is positioned at the start of the file.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	r := &Reader{f: f, len: fi.Size()}
	if err := r.check(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s", err, filename)
	}
	return r, nil
}

func (r *Reader) check() error {
	if r.len < dosHeaderSize {
		return ErrNotPE
	}
	var dos [dosHeaderSize]byte
	if _, err := r.ReadAt(dos[:], 0); err != nil {
		return err
	}
	if dos[0] != 'M' || dos[1] != 'Z' {
		return ErrNotPE
	}
	off := int64(binary.LittleEndian.Uint32(dos[lfanewOffset:]))
	if off < dosHeaderSize || off+4 > r.len {
		return ErrNotPE
	}
	var sig [4]byte
	if _, err := r.ReadAt(sig[:], off); err != nil && err != io.EOF {
		return err
	}
	if sig != [4]byte{'P', 'E', 0, 0} {
		return ErrNotPE
	}
	return nil
}
