// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package res

import (
	"testing"

	"github.com/gdiutil/gdiutil"
)

func TestSelf(t *testing.T) {
	m, err := Self()
	if err != nil {
		t.Fatalf("Self: %v", err)
	}
	defer m.Close()
	// Test binaries carry no resources of their own.
	d := Open(m, RT_RCDATA, ID(0x7FFF))
	if d.Valid() {
		t.Fatal("found a resource in the test binary")
	}
	if got := gdiutil.Status(d.Err()); got == gdiutil.ERROR_SUCCESS {
		t.Errorf("status %v", got)
	}
}
