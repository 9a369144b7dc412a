// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import (
	"errors"
	"io"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gdiutil/gdiutil"
	"github.com/gdiutil/gdiutil/internal/peimage"
	"github.com/gdiutil/gdiutil/internal/petest"
)

func TestLoadSet(t *testing.T) {
	want := testSet(t)
	got, err := LoadSet(petest.WriteFile(t, want))
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}
	if diff := cmp.Diff(List(want), List(got)); diff != "" {
		t.Errorf("List (-want +got):\n%s", diff)
	}
}

func TestLoadSetNoResources(t *testing.T) {
	rs, err := LoadSet(petest.WriteFile(t, nil))
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}
	if n := len(List(rs)); n != 0 {
		t.Errorf("List has %d entries, want 0", n)
	}
}

func TestOpenFile(t *testing.T) {
	m, err := OpenFile(petest.WriteFile(t, testSet(t)))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer m.Close()

	tests := []struct {
		typ, name Identifier
		lang      Lang
		want      []byte
	}{
		{Name("PNG"), Name("LOGO"), LangNeutral, logoPNG},
		{Name("png"), Name("logo"), 0x0407, logoDE},
		{RT_MANIFEST, ID(1), AnyLang, manifest},
		{RT_RCDATA, ID(101), AnyLang, rcdata101},
		{RT_RCDATA, ID(101), LangEnUS, rcdata101},
	}
	for _, tt := range tests {
		d := OpenLang(m, tt.lang, tt.typ, tt.name)
		if !d.Valid() {
			t.Errorf("OpenLang(%#x, %v, %v): %v", tt.lang, tt.typ, tt.name, d.Err())
			continue
		}
		s, err := AsStream(d)
		if err != nil {
			t.Fatalf("AsStream: %v", err)
		}
		got, err := io.ReadAll(s)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%v/%v: stream bytes (-want +got):\n%s", tt.typ, tt.name, diff)
		}
	}

	d := Open(m, RT_BITMAP, ID(1))
	if got := gdiutil.Status(d.Err()); got != gdiutil.ERROR_RESOURCE_TYPE_NOT_FOUND {
		t.Errorf("Open(RT_BITMAP): status %v, want ERROR_RESOURCE_TYPE_NOT_FOUND", got)
	}

	if err := m.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestOpenFileNotPE(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the system loader reports its own error code")
	}
	path := writeText(t)
	if _, err := OpenFile(path); !errors.Is(err, peimage.ErrNotPE) {
		t.Errorf("OpenFile = %v, want ErrNotPE", err)
	}
}
