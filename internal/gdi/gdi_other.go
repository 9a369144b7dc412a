// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package gdi

import (
	"sync"
	"unsafe"

	"github.com/gdiutil/gdiutil"
)

// maxImageSize bounds emulated allocations the way the system's section
// size limit bounds real ones.
const maxImageSize = 1 << 31

type object struct {
	ds  DIBSection
	mem []uint32 // keeps pixel memory DWORD-aligned
	pix []byte
}

var table = struct {
	sync.Mutex
	objects map[Handle]*object
	next    Handle
}{
	objects: make(map[Handle]*object),
	next:    0x0A050000,
}

func validBitCount(bpp uint16, compression uint32) bool {
	switch compression {
	case BI_RGB:
		switch bpp {
		case 1, 4, 8, 16, 24, 32:
			return true
		}
	case BI_BITFIELDS:
		return bpp == 16 || bpp == 32
	}
	return false
}

// CreateDIBSection creates an emulated DIB section and returns its handle
// and pixel memory. The memory is zeroed and DWORD-aligned.
func CreateDIBSection(hdr *BitmapInfoHeader) (Handle, []byte, error) {
	if hdr.Width <= 0 || hdr.Height == 0 || hdr.Planes != 1 || !validBitCount(hdr.BitCount, hdr.Compression) {
		return 0, nil, gdiutil.NewOpError("CreateDIBSection", gdiutil.ERROR_INVALID_PARAMETER)
	}
	size := int64(Stride(hdr.Width, hdr.BitCount))
	if hdr.Height < 0 {
		size *= -int64(hdr.Height)
	} else {
		size *= int64(hdr.Height)
	}
	if size > maxImageSize {
		return 0, nil, gdiutil.NewOpError("CreateDIBSection", gdiutil.ERROR_NOT_ENOUGH_MEMORY)
	}

	obj := &object{mem: make([]uint32, size/4)}
	obj.pix = unsafe.Slice((*byte)(unsafe.Pointer(&obj.mem[0])), size)
	obj.ds.Bmih = *hdr
	obj.ds.Bmih.Size = uint32(unsafe.Sizeof(*hdr))
	obj.ds.Bmih.SizeImage = uint32(size)
	if hdr.Compression == BI_BITFIELDS {
		obj.ds.Bitfields = defaultMasks32
	}
	height := hdr.Height
	if height < 0 {
		height = -height
	}
	obj.ds.Bm = Bitmap{
		Width:      hdr.Width,
		Height:     height,
		WidthBytes: int32(Stride(hdr.Width, hdr.BitCount)),
		Planes:     1,
		BitsPixel:  hdr.BitCount,
		Bits:       unsafe.Pointer(&obj.mem[0]),
	}

	table.Lock()
	h := table.next
	table.next += 4
	table.objects[h] = obj
	table.Unlock()

	gdiutil.Logger().V(1).Info("CreateDIBSection", "handle", h, "width", hdr.Width, "height", hdr.Height, "bpp", hdr.BitCount)
	return h, obj.pix, nil
}

func lookup(op string, h Handle) (*object, error) {
	table.Lock()
	obj, ok := table.objects[h]
	table.Unlock()
	if !ok {
		return nil, gdiutil.NewOpError(op, gdiutil.ERROR_INVALID_HANDLE)
	}
	return obj, nil
}

// GetBitmap returns the BITMAP description of h.
func GetBitmap(h Handle) (Bitmap, error) {
	obj, err := lookup("GetObject", h)
	if err != nil {
		return Bitmap{}, err
	}
	return obj.ds.Bm, nil
}

// GetDIBSection returns the DIBSECTION description of h and its pixel
// memory.
func GetDIBSection(h Handle) (DIBSection, []byte, error) {
	obj, err := lookup("GetObject", h)
	if err != nil {
		return DIBSection{}, nil, err
	}
	return obj.ds, obj.pix, nil
}

// CopyImage duplicates h as a new DIB section with the same header and
// pixels.
func CopyImage(h Handle) (Handle, error) {
	src, err := lookup("CopyImage", h)
	if err != nil {
		return 0, err
	}
	hdr := src.ds.Bmih
	dst, pix, err := CreateDIBSection(&hdr)
	if err != nil {
		return 0, gdiutil.NewOpError("CopyImage", gdiutil.Status(err))
	}
	copy(pix, src.pix)
	gdiutil.Logger().V(1).Info("CopyImage", "src", h, "dst", dst)
	return dst, nil
}

// DeleteObject deletes h.
func DeleteObject(h Handle) error {
	table.Lock()
	_, ok := table.objects[h]
	delete(table.objects, h)
	table.Unlock()
	if !ok {
		return gdiutil.NewOpError("DeleteObject", gdiutil.ERROR_INVALID_HANDLE)
	}
	gdiutil.Logger().V(1).Info("DeleteObject", "handle", h)
	return nil
}

// ObjectCount returns the number of live emulated objects.
func ObjectCount() int {
	table.Lock()
	defer table.Unlock()
	return len(table.objects)
}
