// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package gdi

import (
	"syscall"
	"unsafe"

	"github.com/gdiutil/gdiutil"
)

// errnoOr returns the code in err, or def if the call did not set one.
func errnoOr(err error, def gdiutil.Errno) gdiutil.Errno {
	if e, ok := err.(syscall.Errno); ok && e != 0 && e != syscall.EINVAL {
		return gdiutil.Errno(e)
	}
	return def
}

// CreateDIBSection creates a DIB section on the screen DC and returns its
// handle and pixel memory.
func CreateDIBSection(hdr *BitmapInfoHeader) (Handle, []byte, error) {
	var bi bitmapInfo
	bi.Header = *hdr
	bi.Header.Size = uint32(unsafe.Sizeof(bi.Header))
	if bi.Header.Compression == BI_BITFIELDS {
		bi.Masks = defaultMasks32
	}

	hdc := getDC(0)
	var bits unsafe.Pointer
	h, err := createDIBSection(hdc, &bi, DIB_RGB_COLORS, &bits, 0, 0)
	releaseDC(0, hdc)
	if err != nil {
		return 0, nil, gdiutil.NewOpError("CreateDIBSection", errnoOr(err, gdiutil.ERROR_NOT_ENOUGH_MEMORY))
	}
	gdiutil.Logger().V(1).Info("CreateDIBSection", "handle", h, "width", hdr.Width, "height", hdr.Height, "bpp", hdr.BitCount)
	return h, unsafe.Slice((*byte)(bits), ImageSize(hdr)), nil
}

// GetBitmap returns the BITMAP description of h.
func GetBitmap(h Handle) (Bitmap, error) {
	var bm Bitmap
	if h == 0 {
		return bm, gdiutil.NewOpError("GetObject", gdiutil.ERROR_INVALID_HANDLE)
	}
	if _, err := getObject(h, int32(unsafe.Sizeof(bm)), unsafe.Pointer(&bm)); err != nil {
		return bm, gdiutil.NewOpError("GetObject", errnoOr(err, gdiutil.ERROR_INVALID_HANDLE))
	}
	return bm, nil
}

// GetDIBSection returns the DIBSECTION description of h and its pixel
// memory. For a device-dependent bitmap only ds.Bm is filled in and the
// returned slice is nil.
func GetDIBSection(h Handle) (DIBSection, []byte, error) {
	var ds DIBSection
	if h == 0 {
		return ds, nil, gdiutil.NewOpError("GetObject", gdiutil.ERROR_INVALID_HANDLE)
	}
	n, err := getObject(h, int32(unsafe.Sizeof(ds)), unsafe.Pointer(&ds))
	if err != nil {
		return ds, nil, gdiutil.NewOpError("GetObject", errnoOr(err, gdiutil.ERROR_INVALID_HANDLE))
	}
	if uintptr(n) != unsafe.Sizeof(ds) || ds.Bm.Bits == nil {
		return ds, nil, nil
	}
	size := int(ds.Bm.WidthBytes) * int(ds.Bm.Height)
	return ds, unsafe.Slice((*byte)(ds.Bm.Bits), size), nil
}

// CopyImage duplicates h as a new DIB section of the same size.
func CopyImage(h Handle) (Handle, error) {
	c, err := copyImage(h, IMAGE_BITMAP, 0, 0, LR_CREATEDIBSECTION)
	if err != nil {
		return 0, gdiutil.NewOpError("CopyImage", errnoOr(err, gdiutil.ERROR_INVALID_HANDLE))
	}
	gdiutil.Logger().V(1).Info("CopyImage", "src", h, "dst", c)
	return c, nil
}

// DeleteObject deletes h.
func DeleteObject(h Handle) error {
	if err := deleteObject(h); err != nil {
		return gdiutil.NewOpError("DeleteObject", errnoOr(err, gdiutil.ERROR_INVALID_HANDLE))
	}
	gdiutil.Logger().V(1).Info("DeleteObject", "handle", h)
	return nil
}
