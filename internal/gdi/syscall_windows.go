// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

package gdi

// bitmapInfo is BITMAPINFO with room for the three BI_BITFIELDS masks.
type bitmapInfo struct {
	Header BitmapInfoHeader
	Masks  [3]uint32
}

//sys	createDIBSection(hdc windows.Handle, bmi *bitmapInfo, usage uint32, bits *unsafe.Pointer, section windows.Handle, offset uint32) (h Handle, err error) = gdi32.CreateDIBSection
//sys	deleteObject(h Handle) (err error) = gdi32.DeleteObject
//sys	getObject(h Handle, size int32, obj unsafe.Pointer) (n int32, err error) = gdi32.GetObjectW
//sys	copyImage(h Handle, typ uint32, cx int32, cy int32, flags uint32) (ret Handle, err error) = user32.CopyImage
//sys	getDC(hwnd windows.Handle) (hdc windows.Handle) = user32.GetDC
//sys	releaseDC(hwnd windows.Handle, hdc windows.Handle) (ret int32) = user32.ReleaseDC
