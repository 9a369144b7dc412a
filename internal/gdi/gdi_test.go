// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gdi

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gdiutil/gdiutil"
)

func TestStride(t *testing.T) {
	tests := []struct {
		width int32
		bpp   uint16
		want  int
	}{
		{1, 32, 4},
		{3, 32, 12},
		{1, 24, 4},
		{3, 24, 12},
		{5, 24, 16},
		{1, 1, 4},
		{33, 1, 8},
		{7, 8, 8},
	}
	for _, tt := range tests {
		if got := Stride(tt.width, tt.bpp); got != tt.want {
			t.Errorf("Stride(%d, %d) = %d, want %d", tt.width, tt.bpp, got, tt.want)
		}
	}
}

func TestCreateDIBSection(t *testing.T) {
	for _, height := range []int32{5, -5} {
		hdr := BitmapInfoHeader{Width: 3, Height: height, Planes: 1, BitCount: 32, Compression: BI_RGB}
		h, pix, err := CreateDIBSection(&hdr)
		if err != nil {
			t.Fatalf("CreateDIBSection(height=%d): %v", height, err)
		}
		if len(pix) != 3*4*5 {
			t.Errorf("height=%d: len(pix) = %d, want %d", height, len(pix), 3*4*5)
		}

		bm, err := GetBitmap(h)
		if err != nil {
			t.Fatalf("GetBitmap: %v", err)
		}
		if bm.BitsPixel != 32 || bm.Width != 3 || bm.Height != 5 || bm.WidthBytes != 12 {
			t.Errorf("height=%d: GetBitmap = %+v", height, bm)
		}

		ds, dsPix, err := GetDIBSection(h)
		if err != nil {
			t.Fatalf("GetDIBSection: %v", err)
		}
		if ds.Bmih.Height != height {
			t.Errorf("Bmih.Height = %d, want %d", ds.Bmih.Height, height)
		}
		if &dsPix[0] != &pix[0] {
			t.Error("GetDIBSection returned different pixel memory")
		}
		if ds.Bm.Bits != unsafe.Pointer(&pix[0]) {
			t.Errorf("Bm.Bits = %p, want %p", ds.Bm.Bits, &pix[0])
		}
		if err := DeleteObject(h); err != nil {
			t.Errorf("DeleteObject: %v", err)
		}
	}
}

func TestCopyImage(t *testing.T) {
	hdr := BitmapInfoHeader{Width: 2, Height: -2, Planes: 1, BitCount: 32, Compression: BI_RGB}
	h, pix, err := CreateDIBSection(&hdr)
	if err != nil {
		t.Fatal(err)
	}
	defer DeleteObject(h)
	for i := range pix {
		pix[i] = byte(i)
	}

	c, err := CopyImage(h)
	if err != nil {
		t.Fatalf("CopyImage: %v", err)
	}
	defer DeleteObject(c)
	if c == h {
		t.Fatal("CopyImage returned the source handle")
	}
	ds, cpix, err := GetDIBSection(c)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Bmih.BitCount != 32 {
		t.Errorf("copy BitCount = %d, want 32", ds.Bmih.BitCount)
	}
	if &cpix[0] == &pix[0] {
		t.Fatal("copy shares pixel memory with the source")
	}
	cpix[0] = 0xEE
	if pix[0] == 0xEE {
		t.Error("writing the copy changed the source")
	}
}

func TestInvalidHandle(t *testing.T) {
	if _, err := GetBitmap(0); !errors.Is(err, gdiutil.ErrInvalidHandle) {
		t.Errorf("GetBitmap(0) = %v, want ErrInvalidHandle", err)
	}
	if _, _, err := GetDIBSection(0); !errors.Is(err, gdiutil.ErrInvalidHandle) {
		t.Errorf("GetDIBSection(0) = %v, want ErrInvalidHandle", err)
	}
}
