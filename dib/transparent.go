// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dib

import (
	"github.com/gdiutil/gdiutil"
	"github.com/gdiutil/gdiutil/internal/gdi"
)

// ColorRef is a Win32 COLORREF, laid out as 0x00BBGGRR.
type ColorRef uint32

// RGB returns the ColorRef for the given channels.
func RGB(r, g, b uint8) ColorRef {
	return ColorRef(r) | ColorRef(g)<<8 | ColorRef(b)<<16
}

// RGB returns the red, green and blue channels of c.
func (c ColorRef) RGB() (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// MakeTransparentInPlace makes key the transparent color of h. Every pixel
// whose red, green and blue equal key's becomes zero (transparent, and
// valid premultiplied); every other pixel becomes fully opaque with its
// color unchanged. The pixels' current alpha is ignored.
//
// h must be an uncompressed 32 bits/pixel DIB section. Otherwise the
// bitmap is left untouched and the error matches gdiutil.ErrInvalidData.
// To get a transparent copy of other bitmaps, see MakeTransparent.
//
// The pixel memory of a DIB section is DWORD-aligned; the loop here reads
// bytes and does not rely on it.
func MakeTransparentInPlace(h Handle, key ColorRef) error {
	ds, pix, err := gdi.GetDIBSection(h)
	if err != nil {
		return err
	}
	if err := check32(&ds.Bmih); err != nil {
		return err
	}
	height := int(ds.Bmih.Height)
	if height < 0 {
		height = -height
	}
	n := height * int(ds.Bmih.Width) * 4
	if n > len(pix) {
		n = len(pix)
	}
	applyColorKey(pix[:n], key)
	gdiutil.Logger().V(1).Info("dib: applied color key", "handle", h, "key", key, "pixels", n/4)
	return nil
}

// MakeTransparent returns a transparent copy of h: a new 32 bits/pixel DIB
// section with MakeTransparentInPlace applied. h is not modified. The caller
// owns the returned handle.
func MakeTransparent(h Handle, key ColorRef) (Handle, error) {
	c, err := gdi.CopyImage(h)
	if err != nil {
		return 0, err
	}
	if err := MakeTransparentInPlace(c, key); err != nil {
		gdi.DeleteObject(c)
		return 0, err
	}
	return c, nil
}

func applyColorKey(pix []byte, key ColorRef) {
	r, g, b := key.RGB()
	for i := 0; i+4 <= len(pix); i += 4 {
		p := pix[i : i+4 : i+4]
		if p[0] == b && p[1] == g && p[2] == r {
			p[0], p[1], p[2], p[3] = 0, 0, 0, 0
		} else {
			p[3] = 0xFF
		}
	}
}
