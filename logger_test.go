// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gdiutil

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled() {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var got []string
	SetLogger(funcr.New(func(prefix, args string) {
		got = append(got, args)
	}, funcr.Options{}))

	Logger().Info("created", "handle", 7)
	if len(got) != 1 {
		t.Fatalf("got %d log lines, want 1", len(got))
	}
	for _, want := range []string{`"msg"="created"`, `"handle"=7`} {
		if !strings.Contains(got[0], want) {
			t.Errorf("log line %s does not contain %s", got[0], want)
		}
	}

	SetLogger(logr.Logger{})
	if Logger().Enabled() {
		t.Error("zero logger did not restore the silent default")
	}
}
