// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package res

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gdiutil/gdiutil/internal/peimage"
	"github.com/gdiutil/gdiutil/internal/petest"
)

func TestSelf(t *testing.T) {
	// The test binary itself is not a PE image.
	if _, err := Self(); !errors.Is(err, peimage.ErrNotPE) {
		t.Errorf("Self = %v, want ErrNotPE", err)
	}

	path := petest.WriteFile(t, testSet(t))
	executable = func() (string, error) { return path, nil }
	t.Cleanup(func() { executable = os.Executable })

	m, err := Self()
	if err != nil {
		t.Fatalf("Self: %v", err)
	}
	defer m.Close()
	d := OpenLang(m, LangEnUS, RT_RCDATA, ID(101))
	if !d.Valid() {
		t.Fatalf("Open: %v", d.Err())
	}
	if diff := cmp.Diff(rcdata101, d.Bytes()); diff != "" {
		t.Errorf("resource (-want +got):\n%s", diff)
	}
}
