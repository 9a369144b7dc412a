// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dib

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/gdiutil/gdiutil"
	"github.com/gdiutil/gdiutil/internal/gdi"
)

func TestWriteTo(t *testing.T) {
	for _, height := range []int{3, -3} {
		b := newBitmap(t, 2, height)
		copy(b.Pix(), []byte{
			0x00, 0x00, 0x00, 0x00, 0x10, 0x20, 0x30, 0xFF,
			0x40, 0x40, 0x40, 0x80, 0x01, 0x02, 0x03, 0xFF,
			0xFF, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00, 0x00,
		})
		var buf bytes.Buffer
		n, err := b.WriteTo(&buf)
		if err != nil {
			t.Fatalf("height=%d: WriteTo: %v", height, err)
		}
		if n != int64(buf.Len()) || n != 14+124+2*3*4 {
			t.Errorf("height=%d: WriteTo = %d, wrote %d bytes", height, n, buf.Len())
		}
		raw := buf.Bytes()
		if got := binary.LittleEndian.Uint32(raw[14:]); got != 124 {
			t.Errorf("height=%d: info header size %d, want 124", height, got)
		}
		if got := int32(binary.LittleEndian.Uint32(raw[22:])); got != int32(height) {
			t.Errorf("height=%d: stored height %d", height, got)
		}

		got, err := bmp.Decode(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("height=%d: bmp.Decode: %v", height, err)
		}
		want, err := b.Image()
		if err != nil {
			t.Fatal(err)
		}
		if got.Bounds() != want.Bounds() {
			t.Fatalf("height=%d: bounds %v, want %v", height, got.Bounds(), want.Bounds())
		}
		for y := 0; y < 3; y++ {
			for x := 0; x < 2; x++ {
				g := color.NRGBAModel.Convert(got.At(x, y))
				w := color.NRGBAModel.Convert(want.At(x, y))
				if g != w {
					t.Errorf("height=%d: pixel (%d, %d) = %v, want %v", height, x, y, g, w)
				}
			}
		}
	}
}

func TestWriteToRejects(t *testing.T) {
	h, _ := newDIB(t, 24, gdi.BI_RGB)
	// newDIB's cleanup owns h.
	b := &Bitmap{h: h, hdr: Header{Width: 4, Height: -3, Planes: 1, BitCount: 24}}
	if _, err := b.WriteTo(new(bytes.Buffer)); !errors.Is(err, gdiutil.ErrInvalidData) {
		t.Errorf("WriteTo(24 bpp) = %v, want ErrInvalidData", err)
	}

	r := newBitmap(t, 1, 1)
	r.Release()
	if _, err := r.WriteTo(new(bytes.Buffer)); !errors.Is(err, gdiutil.ErrInvalidHandle) {
		t.Errorf("WriteTo after Release = %v, want ErrInvalidHandle", err)
	}
}

func TestDelete(t *testing.T) {
	b := newBitmap(t, 1, 1)
	h, err := MakeTransparent(b.Handle(), RGB(0, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !Is32bpp(h) {
		t.Fatal("copy is not a 32 bits/pixel bitmap")
	}
	if err := Delete(h); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if Is32bpp(h) {
		t.Error("handle still valid after Delete")
	}
}
