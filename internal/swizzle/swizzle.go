// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swizzle converts pixel buffers between Go's RGBA byte order and
// the BGRA order used by device-independent bitmaps.
package swizzle

// BGRA swaps the red and blue bytes of every pixel in p, converting RGBA to
// BGRA or back.
//
// It panics if the input slice length is not a multiple of 4.
func BGRA(p []byte) {
	if len(p)%4 != 0 {
		panic("swizzle: input slice length is not a multiple of 4")
	}
	for i := 0; i < len(p); i += 4 {
		p[i+0], p[i+2] = p[i+2], p[i+0]
	}
}

// CopyBGRA copies src to dst swapping red and blue, and returns the number
// of bytes copied. Only whole pixels are copied.
func CopyBGRA(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	n &^= 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
	}
	return n
}
