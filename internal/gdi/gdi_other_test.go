// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package gdi

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gdiutil/gdiutil"
)

func TestCreateDIBSectionInvalid(t *testing.T) {
	tests := []struct {
		name string
		hdr  BitmapInfoHeader
		want error
	}{
		{"zero width", BitmapInfoHeader{Width: 0, Height: 1, Planes: 1, BitCount: 32}, gdiutil.ErrInvalidParameter},
		{"zero height", BitmapInfoHeader{Width: 1, Height: 0, Planes: 1, BitCount: 32}, gdiutil.ErrInvalidParameter},
		{"planes", BitmapInfoHeader{Width: 1, Height: 1, Planes: 2, BitCount: 32}, gdiutil.ErrInvalidParameter},
		{"bit count", BitmapInfoHeader{Width: 1, Height: 1, Planes: 1, BitCount: 7}, gdiutil.ErrInvalidParameter},
		{"rle", BitmapInfoHeader{Width: 1, Height: 1, Planes: 1, BitCount: 8, Compression: BI_RLE8}, gdiutil.ErrInvalidParameter},
		{"bitfields 24", BitmapInfoHeader{Width: 1, Height: 1, Planes: 1, BitCount: 24, Compression: BI_BITFIELDS}, gdiutil.ErrInvalidParameter},
		{"too large", BitmapInfoHeader{Width: 1 << 16, Height: 1 << 16, Planes: 1, BitCount: 32}, gdiutil.ERROR_NOT_ENOUGH_MEMORY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ObjectCount()
			h, pix, err := CreateDIBSection(&tt.hdr)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if h != 0 || pix != nil {
				t.Errorf("got handle %#x and %d bytes on failure", h, len(pix))
			}
			if n := ObjectCount(); n != before {
				t.Errorf("object count %d -> %d", before, n)
			}
		})
	}
}

func TestPixelsAligned(t *testing.T) {
	hdr := BitmapInfoHeader{Width: 3, Height: 3, Planes: 1, BitCount: 24}
	h, pix, err := CreateDIBSection(&hdr)
	if err != nil {
		t.Fatal(err)
	}
	defer DeleteObject(h)
	if p := uintptr(unsafe.Pointer(&pix[0])); p&3 != 0 {
		t.Errorf("pixel memory at %#x is not DWORD-aligned", p)
	}
}

func TestDeleteObjectTwice(t *testing.T) {
	hdr := BitmapInfoHeader{Width: 1, Height: 1, Planes: 1, BitCount: 32}
	h, _, err := CreateDIBSection(&hdr)
	if err != nil {
		t.Fatal(err)
	}
	if err := DeleteObject(h); err != nil {
		t.Fatalf("first DeleteObject: %v", err)
	}
	if err := DeleteObject(h); !errors.Is(err, gdiutil.ErrInvalidHandle) {
		t.Errorf("second DeleteObject = %v, want ErrInvalidHandle", err)
	}
}

func TestBitfieldsMasks(t *testing.T) {
	hdr := BitmapInfoHeader{Width: 1, Height: 1, Planes: 1, BitCount: 32, Compression: BI_BITFIELDS}
	h, _, err := CreateDIBSection(&hdr)
	if err != nil {
		t.Fatal(err)
	}
	defer DeleteObject(h)
	ds, _, err := GetDIBSection(h)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Bitfields != defaultMasks32 {
		t.Errorf("Bitfields = %#x, want %#x", ds.Bitfields, defaultMasks32)
	}
}
