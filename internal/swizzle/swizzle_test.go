// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzle

import (
	"bytes"
	"testing"
)

func TestBGRA(t *testing.T) {
	p := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	BGRA(p)
	if want := []byte{3, 2, 1, 4, 7, 6, 5, 8}; !bytes.Equal(p, want) {
		t.Fatalf("BGRA = %v, want %v", p, want)
	}
	BGRA(p)
	if want := []byte{1, 2, 3, 4, 5, 6, 7, 8}; !bytes.Equal(p, want) {
		t.Fatalf("BGRA twice = %v, want %v", p, want)
	}
}

func TestBGRAPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BGRA of 3 bytes did not panic")
		}
	}()
	BGRA(make([]byte, 3))
}

func TestCopyBGRA(t *testing.T) {
	src := []byte{10, 20, 30, 40, 50, 60, 70, 80, 90}
	dst := make([]byte, 6)
	if n := CopyBGRA(dst, src); n != 4 {
		t.Errorf("CopyBGRA = %d, want 4", n)
	}
	if want := []byte{30, 20, 10, 40, 0, 0}; !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
	if want := []byte{10, 20, 30, 40}; !bytes.Equal(src[:4], want) {
		t.Errorf("src modified: %v", src[:4])
	}
}
