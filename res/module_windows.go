// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package res

import (
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/gdiutil/gdiutil"
)

// winModule is a module loaded by the system loader.
type winModule struct {
	h windows.Handle
}

// Self returns the module of the running executable.
func Self() (Module, error) {
	var h windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &h); err != nil {
		return nil, gdiutil.NewOpError("GetModuleHandleEx", errno(err))
	}
	return &winModule{h: h}, nil
}

// OpenFile loads the resources of the PE file at path as a data file,
// without executing it.
func OpenFile(path string) (Module, error) {
	h, err := windows.LoadLibraryEx(path, 0, windows.LOAD_LIBRARY_AS_DATAFILE|windows.LOAD_LIBRARY_AS_IMAGE_RESOURCE)
	if err != nil {
		err = gdiutil.NewOpError("LoadLibraryEx", errno(err))
		gdiutil.Logger().Error(err, "res: cannot open module", "path", path)
		return nil, err
	}
	return &winModule{h: h}, nil
}

func (m *winModule) Close() error {
	if m.h == 0 {
		return nil
	}
	err := windows.FreeLibrary(m.h)
	m.h = 0
	if err != nil {
		return gdiutil.NewOpError("FreeLibrary", errno(err))
	}
	return nil
}

func (m *winModule) Resource(typ, name Identifier, lang Lang) ([]byte, error) {
	info, err := m.find(typ, name, lang)
	if err != nil {
		return nil, gdiutil.NewOpError("FindResource "+typ.String()+"/"+name.String(), errno(err))
	}
	size, err := windows.SizeofResource(m.h, info)
	if err != nil {
		return nil, gdiutil.NewOpError("SizeofResource", errno(err))
	}
	hg, err := windows.LoadResource(m.h, info)
	if err != nil {
		return nil, gdiutil.NewOpError("LoadResource", errno(err))
	}
	p, err := windows.LockResource(hg)
	if err != nil {
		return nil, gdiutil.NewOpError("LockResource", errno(err))
	}
	gdiutil.Logger().V(1).Info("res: found resource", "type", typ, "name", name, "size", size)
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), size), nil
}

func (m *winModule) find(typ, name Identifier, lang Lang) (windows.Handle, error) {
	if lang == AnyLang {
		return windows.FindResource(m.h, sysIdentifier(name), sysIdentifier(typ))
	}
	tp, tkeep := intResource(typ)
	np, nkeep := intResource(name)
	h, err := findResourceEx(m.h, tp, np, uint16(lang))
	runtime.KeepAlive(tkeep)
	runtime.KeepAlive(nkeep)
	return h, err
}

func sysIdentifier(id Identifier) windows.ResourceIDOrString {
	switch id := id.(type) {
	case ID:
		return windows.ResourceID(id)
	case Name:
		return string(id)
	}
	return nil
}

// intResource returns id as a LPCWSTR argument. The second result must be
// kept alive until the call returns.
func intResource(id Identifier) (uintptr, *uint16) {
	switch id := id.(type) {
	case ID:
		return uintptr(id), nil
	case Name:
		p, err := windows.UTF16PtrFromString(string(id))
		if err != nil {
			return 0, nil
		}
		return uintptr(unsafe.Pointer(p)), p
	}
	return 0, nil
}

func errno(err error) gdiutil.Errno {
	if e, ok := err.(windows.Errno); ok && e != 0 && e != syscall.EINVAL {
		return gdiutil.Errno(e)
	}
	return gdiutil.E_FAIL
}
