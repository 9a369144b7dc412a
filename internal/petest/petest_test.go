// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package petest

import (
	"bytes"
	"debug/pe"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tc-hib/winres"
)

func TestImage(t *testing.T) {
	f, err := pe.NewFile(bytes.NewReader(Image()))
	if err != nil {
		t.Fatalf("pe.NewFile: %v", err)
	}
	defer f.Close()
	if f.Machine != pe.IMAGE_FILE_MACHINE_AMD64 {
		t.Errorf("Machine = %#x", f.Machine)
	}
	if len(f.Sections) != 1 || f.Sections[0].Name != ".text" {
		t.Fatalf("sections = %v", f.Sections)
	}
	if _, err := winres.LoadFromEXE(bytes.NewReader(Image())); !errors.Is(err, winres.ErrNoResources) {
		t.Errorf("LoadFromEXE = %v, want ErrNoResources", err)
	}
}

func TestWithResources(t *testing.T) {
	want := []byte("hello")
	rs := &winres.ResourceSet{}
	if err := rs.Set(winres.RT_RCDATA, winres.ID(7), 0x409, want); err != nil {
		t.Fatal(err)
	}
	data, err := WithResources(rs)
	if err != nil {
		t.Fatalf("WithResources: %v", err)
	}

	f, err := pe.NewFile(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("pe.NewFile: %v", err)
	}
	defer f.Close()
	if len(f.Sections) != 2 || f.Sections[1].Name != ".rsrc" {
		t.Errorf("sections = %v, want .text and .rsrc", f.Sections)
	}

	got, err := winres.LoadFromEXE(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadFromEXE: %v", err)
	}
	if diff := cmp.Diff(want, got.Get(winres.RT_RCDATA, winres.ID(7), 0x409)); diff != "" {
		t.Errorf("resource mismatch (-want +got):\n%s", diff)
	}
}
