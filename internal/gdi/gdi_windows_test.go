// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package gdi

import (
	"syscall"
	"testing"
	"unsafe"

	"github.com/gdiutil/gdiutil"
)

func TestErrnoOr(t *testing.T) {
	tests := []struct {
		err  error
		want gdiutil.Errno
	}{
		// errnoErr reports a call that failed without setting the last
		// error as EINVAL.
		{syscall.EINVAL, gdiutil.ERROR_NOT_ENOUGH_MEMORY},
		{syscall.Errno(0), gdiutil.ERROR_NOT_ENOUGH_MEMORY},
		{syscall.Errno(gdiutil.ERROR_INVALID_HANDLE), gdiutil.ERROR_INVALID_HANDLE},
	}
	for _, tt := range tests {
		if got := errnoOr(tt.err, gdiutil.ERROR_NOT_ENOUGH_MEMORY); got != tt.want {
			t.Errorf("errnoOr(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestGetObjectSizes(t *testing.T) {
	hdr := BitmapInfoHeader{Width: 1, Height: 1, Planes: 1, BitCount: 32, Compression: BI_RGB}
	h, _, err := CreateDIBSection(&hdr)
	if err != nil {
		t.Fatal(err)
	}
	defer DeleteObject(h)
	var ds DIBSection
	n, err := getObject(h, int32(unsafe.Sizeof(ds)), unsafe.Pointer(&ds))
	if err != nil {
		t.Fatal(err)
	}
	if uintptr(n) != unsafe.Sizeof(ds) {
		t.Errorf("GetObject wrote %d bytes, want sizeof(DIBSECTION) = %d", n, unsafe.Sizeof(ds))
	}
}
