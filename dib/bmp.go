// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dib

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/color"
	"io"
	"unsafe"

	"github.com/gdiutil/gdiutil"
	"github.com/gdiutil/gdiutil/internal/gdi"
)

// bmpFileHeader is BITMAPFILEHEADER.
type bmpFileHeader struct {
	Type      [2]byte
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

const (
	bmpFileHeaderSize = 14
	bmpV5HeaderSize   = uint32(unsafe.Sizeof(gdi.BitmapV5Header{}))
)

// WriteTo writes b to w as a BMP file. The info header is a BITMAPV5HEADER
// with an alpha mask, so readers keep the alpha channel. Rows are written
// in the bitmap's order. Pixels are converted from premultiplied to
// straight alpha, which is how BMP readers interpret them.
func (b *Bitmap) WriteTo(w io.Writer) (int64, error) {
	if b.h == 0 {
		return 0, fmt.Errorf("dib: bitmap released: %w", gdiutil.ErrInvalidHandle)
	}
	if err := check32(&b.hdr); err != nil {
		return 0, err
	}
	size := gdi.ImageSize(&b.hdr)
	off := bmpFileHeaderSize + bmpV5HeaderSize

	v5 := gdi.BitmapV5Header{
		BitmapInfoHeader: b.hdr,
		RedMask:          0x00FF0000,
		GreenMask:        0x0000FF00,
		BlueMask:         0x000000FF,
		AlphaMask:        0xFF000000,
		CSType:           gdi.LCS_sRGB,
		Intent:           gdi.LCS_GM_IMAGES,
	}
	v5.Size = bmpV5HeaderSize
	v5.Compression = gdi.BI_BITFIELDS
	v5.SizeImage = uint32(size)

	var hdr bytes.Buffer
	binary.Write(&hdr, binary.LittleEndian, bmpFileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    off + uint32(size),
		OffBits: off,
	})
	binary.Write(&hdr, binary.LittleEndian, &v5)

	n, err := w.Write(hdr.Bytes())
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(straightAlpha(b.pix[:size]))
	return int64(n + m), err
}

// straightAlpha returns a copy of the premultiplied BGRA pixels in pix with
// the color channels divided by alpha.
func straightAlpha(pix []byte) []byte {
	out := make([]byte, len(pix))
	for i := 0; i+4 <= len(pix); i += 4 {
		a := pix[i+3]
		if a == 0xFF || a == 0 {
			copy(out[i:i+4], pix[i:i+4])
			continue
		}
		c := color.NRGBAModel.Convert(color.RGBA{R: pix[i+2], G: pix[i+1], B: pix[i], A: a}).(color.NRGBA)
		out[i], out[i+1], out[i+2], out[i+3] = c.B, c.G, c.R, c.A
	}
	return out
}

// Delete deletes a bitmap handle that is not owned by a Bitmap.
func Delete(h Handle) error {
	return gdi.DeleteObject(h)
}
