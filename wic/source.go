// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wic

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gdiutil/gdiutil"
	"github.com/gdiutil/gdiutil/internal/swizzle"
)

// PixelFormat identifies the byte layout of a Source's pixels.
type PixelFormat int

const (
	// PixelFormat32bppBGRA is blue, green, red, alpha with straight alpha.
	PixelFormat32bppBGRA PixelFormat = iota + 1
	// PixelFormat32bppPBGRA is blue, green, red, alpha with the color
	// channels premultiplied by alpha.
	PixelFormat32bppPBGRA
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormat32bppBGRA:
		return "32bppBGRA"
	case PixelFormat32bppPBGRA:
		return "32bppPBGRA"
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// BitmapSource is a decoded image whose pixels can be copied out, row by
// row, into caller memory.
type BitmapSource interface {
	// Size returns the width and height in pixels.
	Size() (width, height int, err error)

	// CopyPixels copies the pixels of rect (all of the image if rect is
	// nil) into buf, stride bytes per row.
	CopyPixels(rect *image.Rectangle, stride int, buf []byte) error
}

// Source is an in-memory image in PixelFormat32bppPBGRA. It implements
// BitmapSource and image.Image.
type Source struct {
	// Pix holds the pixels in BGRA order, premultiplied. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*4].
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

var (
	_ BitmapSource = (*Source)(nil)
	_ image.Image  = (*Source)(nil)
)

// PixelFormat returns PixelFormat32bppPBGRA.
func (s *Source) PixelFormat() PixelFormat { return PixelFormat32bppPBGRA }

func (s *Source) Size() (width, height int, err error) {
	return s.Rect.Dx(), s.Rect.Dy(), nil
}

func (s *Source) CopyPixels(rect *image.Rectangle, stride int, buf []byte) error {
	r := s.Rect
	if rect != nil {
		r = rect.Add(s.Rect.Min)
		if !r.In(s.Rect) {
			return gdiutil.NewOpError("CopyPixels", gdiutil.HRESULTFromWin32(gdiutil.ERROR_INVALID_PARAMETER))
		}
	}
	if r.Empty() {
		return nil
	}
	rowBytes := r.Dx() * 4
	if stride < rowBytes || len(buf) < stride*(r.Dy()-1)+rowBytes {
		return gdiutil.NewOpError("CopyPixels", gdiutil.HRESULTFromWin32(gdiutil.ERROR_INVALID_PARAMETER))
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := s.PixOffset(r.Min.X, y)
		copy(buf[(y-r.Min.Y)*stride:], s.Pix[i:i+rowBytes])
	}
	return nil
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (s *Source) PixOffset(x, y int) int {
	return (y-s.Rect.Min.Y)*s.Stride + (x-s.Rect.Min.X)*4
}

func (s *Source) ColorModel() color.Model { return color.RGBAModel }

func (s *Source) Bounds() image.Rectangle { return s.Rect }

func (s *Source) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(s.Rect)) {
		return color.RGBA{}
	}
	i := s.PixOffset(x, y)
	p := s.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
}

// Convert returns img converted to PixelFormat32bppPBGRA, with bounds
// translated to the origin.
func Convert(img image.Image) *Source {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	swizzle.BGRA(dst.Pix)
	return &Source{Pix: dst.Pix, Stride: dst.Stride, Rect: dst.Rect}
}

// Scale returns img resampled to width x height with a bilinear filter,
// in PixelFormat32bppPBGRA.
func Scale(img image.Image, width, height int) (*Source, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("wic: scale to %dx%d: %w", width, height, gdiutil.ErrInvalidParameter)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	swizzle.BGRA(dst.Pix)
	return &Source{Pix: dst.Pix, Stride: dst.Stride, Rect: dst.Rect}, nil
}
