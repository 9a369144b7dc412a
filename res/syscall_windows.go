// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

package res

// typ and name are LPCWSTR values: a pointer to a UTF-16 string or an
// integer resource ID below 0x10000.
//sys	findResourceEx(module windows.Handle, typ uintptr, name uintptr, lang uint16) (resInfo windows.Handle, err error) = kernel32.FindResourceExW
