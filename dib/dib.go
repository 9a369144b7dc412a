// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dib creates 32 bits/pixel device-independent bitmaps (DIB
// sections) and applies color-key transparency to them.
//
// A Bitmap owns a GDI object: call Release when done with it. Functions that
// take a Handle work on any DIB section, including ones created elsewhere.
package dib // import "github.com/gdiutil/gdiutil/dib"

import (
	"fmt"
	"image"
	"math"

	"github.com/gdiutil/gdiutil"
	"github.com/gdiutil/gdiutil/internal/gdi"
	"github.com/gdiutil/gdiutil/internal/swizzle"
)

// Handle is a GDI bitmap handle (HBITMAP). Zero is the null handle.
type Handle = gdi.Handle

// Header is the BITMAPINFOHEADER of a DIB section.
type Header = gdi.BitmapInfoHeader

// Bitmap is a DIB section together with its pixel memory.
type Bitmap struct {
	h   Handle
	hdr Header
	pix []byte
}

// NewBGRA creates a DIB section with 32 bits/pixel (blue, green, red and
// alpha bytes), no compression and no color table. All pixels start as
// zero.
//
// A negative height creates a top-down bitmap with the origin in the top
// left corner, a positive height a bottom-up bitmap with the origin in the
// bottom left corner.
func NewBGRA(width, height int) (*Bitmap, error) {
	if width <= 0 || height == 0 || width > math.MaxInt32 || height > math.MaxInt32 || height < -math.MaxInt32 {
		return nil, fmt.Errorf("dib: invalid size %dx%d: %w", width, height, gdiutil.ErrInvalidParameter)
	}
	hdr := Header{
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    32,
		Compression: gdi.BI_RGB,
	}
	h, pix, err := gdi.CreateDIBSection(&hdr)
	if err != nil {
		gdiutil.Logger().Error(err, "dib: cannot create bitmap", "width", width, "height", height)
		return nil, err
	}
	hdr.SizeImage = uint32(len(pix))
	return &Bitmap{h: h, hdr: hdr, pix: pix}, nil
}

// Open returns a Bitmap for an existing DIB section. The Bitmap takes
// ownership of h: Release deletes it.
func Open(h Handle) (*Bitmap, error) {
	ds, pix, err := gdi.GetDIBSection(h)
	if err != nil {
		return nil, err
	}
	if pix == nil {
		return nil, fmt.Errorf("dib: handle %#x is not a DIB section: %w", h, gdiutil.ErrInvalidData)
	}
	return &Bitmap{h: h, hdr: ds.Bmih, pix: pix}, nil
}

// Handle returns the bitmap's GDI handle, or zero after Release.
func (b *Bitmap) Handle() Handle { return b.h }

// Header returns the bitmap's BITMAPINFOHEADER.
func (b *Bitmap) Header() Header { return b.hdr }

// Width returns the width in pixels.
func (b *Bitmap) Width() int { return int(b.hdr.Width) }

// Height returns the signed height: negative for top-down bitmaps.
func (b *Bitmap) Height() int { return int(b.hdr.Height) }

// TopDown reports whether the first row in memory is the top row.
func (b *Bitmap) TopDown() bool { return b.hdr.Height < 0 }

// Stride returns the number of bytes per row.
func (b *Bitmap) Stride() int { return gdi.Stride(b.hdr.Width, b.hdr.BitCount) }

// Pix returns the pixel memory, one BGRA quad per pixel for 32 bits/pixel
// bitmaps. The slice is valid until Release. Rows are in memory order, see
// TopDown.
func (b *Bitmap) Pix() []byte { return b.pix }

// Release deletes the GDI object. It is safe to call more than once.
func (b *Bitmap) Release() error {
	if b.h == 0 {
		return nil
	}
	err := gdi.DeleteObject(b.h)
	b.h, b.pix = 0, nil
	return err
}

// Image returns a copy of the bitmap as a top-down image.RGBA. The pixels
// are taken to be premultiplied, which is what GDI's alpha blending
// expects. The bitmap must be 32 bits/pixel and uncompressed.
func (b *Bitmap) Image() (*image.RGBA, error) {
	if b.h == 0 {
		return nil, fmt.Errorf("dib: bitmap released: %w", gdiutil.ErrInvalidHandle)
	}
	if err := check32(&b.hdr); err != nil {
		return nil, err
	}
	w, h := b.Width(), b.Height()
	if h < 0 {
		h = -h
	}
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	stride := b.Stride()
	for y := 0; y < h; y++ {
		row := y
		if !b.TopDown() {
			row = h - 1 - y
		}
		swizzle.CopyBGRA(m.Pix[y*m.Stride:y*m.Stride+w*4], b.pix[row*stride:row*stride+w*4])
	}
	return m, nil
}

// Is32bpp reports whether h is a bitmap with 32 bits/pixel.
func Is32bpp(h Handle) bool {
	if h == 0 {
		return false
	}
	bm, err := gdi.GetBitmap(h)
	if err != nil {
		return false
	}
	return bm.BitsPixel == 32
}

func check32(hdr *Header) error {
	if hdr.BitCount != 32 || hdr.Compression != gdi.BI_RGB {
		return fmt.Errorf("dib: %d bits/pixel with compression %d, want 32 bits/pixel uncompressed: %w",
			hdr.BitCount, hdr.Compression, gdiutil.ErrInvalidData)
	}
	return nil
}
