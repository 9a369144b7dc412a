// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gdiutil

import (
	"errors"
	"fmt"
)

// Errno is a Win32 error code or an HRESULT, as reported by the failing
// operation. It plays the role of the thread's last-error value.
type Errno uint32

// Win32 error codes.
const (
	ERROR_SUCCESS                 Errno = 0
	ERROR_INVALID_HANDLE          Errno = 6
	ERROR_NOT_ENOUGH_MEMORY       Errno = 8
	ERROR_INVALID_DATA            Errno = 13
	ERROR_INVALID_PARAMETER       Errno = 87
	ERROR_RESOURCE_DATA_NOT_FOUND Errno = 1812
	ERROR_RESOURCE_TYPE_NOT_FOUND Errno = 1813
	ERROR_RESOURCE_NAME_NOT_FOUND Errno = 1814
	ERROR_RESOURCE_LANG_NOT_FOUND Errno = 1815
)

// HRESULT values.
const (
	E_FAIL                         Errno = 0x80004005
	E_OUTOFMEMORY                  Errno = 0x8007000E
	WINCODEC_ERR_BADHEADER         Errno = 0x88982F61
	WINCODEC_ERR_COMPONENTNOTFOUND Errno = 0x88982F50
	WINCODEC_ERR_FRAMEMISSING      Errno = 0x88982F62

	WINCODEC_ERR_NOTINITIALIZED       Errno = 0x88982F0C
	WINCODEC_ERR_UNSUPPORTEDOPERATION Errno = 0x88982F81
)

const (
	facilityWin32 = 7
	win32Prefix   = 0x80000000 | facilityWin32<<16
)

// Common errors, comparable with errors.Is.
var (
	ErrInvalidData      error = ERROR_INVALID_DATA
	ErrInvalidHandle    error = ERROR_INVALID_HANDLE
	ErrInvalidParameter error = ERROR_INVALID_PARAMETER
)

var errnoNames = map[Errno]string{
	ERROR_SUCCESS:                  "success",
	ERROR_INVALID_HANDLE:           "invalid handle",
	ERROR_NOT_ENOUGH_MEMORY:        "not enough memory",
	ERROR_INVALID_DATA:             "invalid data",
	ERROR_INVALID_PARAMETER:        "invalid parameter",
	ERROR_RESOURCE_DATA_NOT_FOUND:  "resource data not found",
	ERROR_RESOURCE_TYPE_NOT_FOUND:  "resource type not found",
	ERROR_RESOURCE_NAME_NOT_FOUND:  "resource name not found",
	ERROR_RESOURCE_LANG_NOT_FOUND:  "resource language not found",
	E_FAIL:                         "unspecified failure",
	E_OUTOFMEMORY:                  "out of memory",
	WINCODEC_ERR_BADHEADER:         "bad image header",
	WINCODEC_ERR_COMPONENTNOTFOUND: "imaging component not found",
	WINCODEC_ERR_FRAMEMISSING:      "image frame missing",

	WINCODEC_ERR_NOTINITIALIZED:       "imaging component not initialized",
	WINCODEC_ERR_UNSUPPORTEDOPERATION: "unsupported imaging operation",
}

// HRESULTFromWin32 maps a Win32 error code to its HRESULT form. Values that
// already are HRESULTs are returned unchanged.
func HRESULTFromWin32(e Errno) Errno {
	if int32(e) <= 0 {
		return e
	}
	return Errno(uint32(e)&0xFFFF | win32Prefix)
}

// Win32 returns the Win32 code carried by e, which is e itself unless e is
// an HRESULT of the Win32 facility.
func (e Errno) Win32() Errno {
	if uint32(e)&0xFFFF0000 == win32Prefix {
		return e & 0xFFFF
	}
	return e
}

// Failed reports whether e denotes a failure.
func (e Errno) Failed() bool {
	return e != ERROR_SUCCESS
}

func (e Errno) Error() string {
	if s, ok := errnoNames[e]; ok {
		return s
	}
	if s, ok := errnoNames[e.Win32()]; ok {
		return s
	}
	if int32(e) < 0 {
		return fmt.Sprintf("HRESULT 0x%08X", uint32(e))
	}
	return fmt.Sprintf("error %d", uint32(e))
}

// Is reports whether target is the same code as e. A Win32 code matches its
// HRESULT form and vice versa.
func (e Errno) Is(target error) bool {
	t, ok := target.(Errno)
	if !ok {
		return false
	}
	return e.Win32() == t.Win32()
}

// OpError records the OS call that failed and the code it reported.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

// NewOpError returns an *OpError for op, or nil if err is nil.
func NewOpError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

// Status returns the code carried by err: ERROR_SUCCESS for nil, the
// wrapped Errno if there is one, E_FAIL otherwise.
func Status(err error) Errno {
	if err == nil {
		return ERROR_SUCCESS
	}
	var e Errno
	if errors.As(err, &e) {
		return e
	}
	return E_FAIL
}
