// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wic decodes images into 32 bits/pixel premultiplied BGRA and
// rasterizes them into DIB sections.
//
// A typical use loads a PNG embedded as a resource and turns it into a
// bitmap that can be drawn with per-pixel alpha:
//
//	s, err := res.AsStream(res.Open(m, res.Name("PNG"), res.Name("LOGO")))
//	...
//	src, err := wic.LoadBitmapFromStream(s)
//	...
//	b, err := wic.CreateBitmap(src)
//	...
//	defer b.Release()
package wic // import "github.com/gdiutil/gdiutil/wic"

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gdiutil/gdiutil"
	"github.com/gdiutil/gdiutil/dib"
)

// LoadBitmapFromStream decodes the PNG read from r. The container must
// hold exactly one frame; animated PNGs with more than one frame and PNGs
// without image data fail with ERROR_INVALID_DATA.
func LoadBitmapFromStream(r io.Reader) (*Source, error) {
	dec, err := NewDecoder(ContainerFormatPNG)
	if err != nil {
		return nil, err
	}
	return load(dec, r)
}

// LoadImage decodes an image of any supported container format, detected
// from its first bytes, under the same one-frame rule as
// LoadBitmapFromStream.
func LoadImage(r io.Reader) (*Source, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(12)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("wic: reading stream: %w", err)
	}
	dec, err := NewDecoder(DetectFormat(header))
	if err != nil {
		return nil, err
	}
	return load(dec, br)
}

func load(dec Decoder, r io.Reader) (*Source, error) {
	log := gdiutil.Logger()
	if err := dec.Initialize(r); err != nil {
		log.Error(err, "wic: cannot initialize decoder", "format", dec.ContainerFormat())
		return nil, err
	}
	n, err := dec.FrameCount()
	if err != nil {
		return nil, err
	}
	if n != 1 {
		err := fmt.Errorf("wic: %s has %d frames: %w", dec.ContainerFormat(), n, gdiutil.ErrInvalidData)
		log.Error(err, "wic: not a single-frame image")
		return nil, err
	}
	frame, err := dec.Frame(0)
	if err != nil {
		log.Error(err, "wic: cannot decode frame", "format", dec.ContainerFormat())
		return nil, err
	}
	src := Convert(frame)
	log.V(1).Info("wic: decoded image", "format", dec.ContainerFormat(), "width", src.Rect.Dx(), "height", src.Rect.Dy())
	return src, nil
}

// CreateBitmap creates a top-down 32 bits/pixel DIB section holding the
// pixels of src, which must already be in PixelFormat32bppPBGRA. Sources
// with a zero width or height fail with ERROR_INVALID_DATA.
func CreateBitmap(src BitmapSource) (*dib.Bitmap, error) {
	w, h, err := src.Size()
	if err == nil && (w <= 0 || h <= 0) {
		err = gdiutil.NewOpError("CreateBitmap", gdiutil.HRESULTFromWin32(gdiutil.ERROR_INVALID_DATA))
	}
	if err != nil {
		gdiutil.Logger().Error(err, "wic: cannot size bitmap", "width", w, "height", h)
		return nil, err
	}
	b, err := dib.NewBGRA(w, -h)
	if err != nil {
		return nil, err
	}
	stride := w * 4
	if err := src.CopyPixels(nil, stride, b.Pix()[:stride*h]); err != nil {
		gdiutil.Logger().Error(err, "wic: cannot copy pixels")
		b.Release()
		return nil, err
	}
	return b, nil
}
