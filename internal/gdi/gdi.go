// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gdi is the small slice of the GDI bitmap API used by gdiutil:
// creating DIB sections, querying them, copying and deleting them.
//
// On Windows the calls go to gdi32 and user32. Elsewhere the object table is
// emulated in process with the same observable behavior for DIB sections.
package gdi

import "unsafe"

// Handle is a GDI object handle. Zero is the null handle.
type Handle uintptr

// Compression values of BitmapInfoHeader.Compression.
const (
	BI_RGB       = 0
	BI_RLE8      = 1
	BI_RLE4      = 2
	BI_BITFIELDS = 3
)

const (
	DIB_RGB_COLORS = 0

	IMAGE_BITMAP        = 0
	LR_CREATEDIBSECTION = 0x2000
)

// BitmapInfoHeader is BITMAPINFOHEADER.
type BitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// BitmapV5Header is BITMAPV5HEADER. The masks are only used with
// BI_BITFIELDS.
type BitmapV5Header struct {
	BitmapInfoHeader
	RedMask     uint32
	GreenMask   uint32
	BlueMask    uint32
	AlphaMask   uint32
	CSType      uint32
	Endpoints   [9]int32 // CIEXYZTRIPLE
	GammaRed    uint32
	GammaGreen  uint32
	GammaBlue   uint32
	Intent      uint32
	ProfileData uint32
	ProfileSize uint32
	Reserved    uint32
}

const (
	LCS_sRGB      = 0x73524742
	LCS_GM_IMAGES = 4
)

// Bitmap is BITMAP. For a DIB section Height is always positive.
type Bitmap struct {
	Type       int32
	Width      int32
	Height     int32
	WidthBytes int32
	Planes     uint16
	BitsPixel  uint16
	Bits       unsafe.Pointer
}

// DIBSection is DIBSECTION.
type DIBSection struct {
	Bm        Bitmap
	Bmih      BitmapInfoHeader
	Bitfields [3]uint32
	Section   Handle
	Offset    uint32
}

// Default channel masks for 32 bits/pixel BI_BITFIELDS bitmaps.
var defaultMasks32 = [3]uint32{0x00FF0000, 0x0000FF00, 0x000000FF}

// Stride returns the number of bytes per row of an uncompressed DIB with
// the given width and bit count. Rows are padded to a DWORD boundary.
func Stride(width int32, bitCount uint16) int {
	return ((int(width)*int(bitCount) + 31) / 32) * 4
}

// ImageSize returns the number of pixel bytes of an uncompressed DIB
// described by hdr.
func ImageSize(hdr *BitmapInfoHeader) int {
	h := int(hdr.Height)
	if h < 0 {
		h = -h
	}
	return Stride(hdr.Width, hdr.BitCount) * h
}
