// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gdiutil/gdiutil"
)

// Stream is a seekable, randomly readable stream over its own copy of some
// bytes.
type Stream struct {
	r    *bytes.Reader
	size int64
}

var (
	_ io.ReadSeeker = (*Stream)(nil)
	_ io.ReaderAt   = (*Stream)(nil)
	_ io.WriterTo   = (*Stream)(nil)
)

// NewStream returns a stream of size bytes. If data is nil the stream is
// zero-filled, otherwise it holds a copy of data[:size].
func NewStream(data []byte, size int) (*Stream, error) {
	if size < 0 || (data != nil && size > len(data)) {
		return nil, fmt.Errorf("res: stream of %d bytes over %d: %w", size, len(data), gdiutil.ErrInvalidParameter)
	}
	buf := make([]byte, size)
	copy(buf, data)
	return &Stream{r: bytes.NewReader(buf), size: int64(size)}, nil
}

// AsStream returns a stream reading a copy of the resource data. The stream
// does not refer to the module's memory and outlives the module.
func AsStream(d *Data) (*Stream, error) {
	if !d.Valid() {
		return nil, d.Err()
	}
	return NewStream(d.Bytes(), d.Size())
}

// Size returns the total size of the stream.
func (s *Stream) Size() int64 { return s.size }

// Read implements io.Reader.
func (s *Stream) Read(p []byte) (int, error) { return s.r.Read(p) }

// ReadAt implements io.ReaderAt.
func (s *Stream) ReadAt(p []byte, off int64) (int, error) { return s.r.ReadAt(p, off) }

// Seek implements io.Seeker.
func (s *Stream) Seek(offset int64, whence int) (int64, error) { return s.r.Seek(offset, whence) }

// WriteTo implements io.WriterTo.
func (s *Stream) WriteTo(w io.Writer) (int64, error) { return s.r.WriteTo(w) }
