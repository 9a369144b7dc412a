// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package res

import (
	"os"

	"github.com/gdiutil/gdiutil"
)

var executable = os.Executable

// Self returns the module of the running executable. Outside Windows the
// executable is read as a PE file, which fails for native binaries.
func Self() (Module, error) {
	exe, err := executable()
	if err != nil {
		return nil, err
	}
	return OpenFile(exe)
}

// OpenFile loads the resources of the PE file at path without executing it.
func OpenFile(path string) (Module, error) {
	rs, err := LoadSet(path)
	if err != nil {
		gdiutil.Logger().Error(err, "res: cannot open module", "path", path)
		return nil, err
	}
	return FromSet(rs), nil
}
