// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gdiutil

import (
	"sync/atomic"

	"github.com/go-logr/logr"
)

var loggerPtr atomic.Pointer[logr.Logger]

func init() {
	l := logr.Discard()
	loggerPtr.Store(&l)
}

// SetLogger sets the logger used by gdiutil and its sub-packages. By
// default nothing is logged. A logger with a nil sink restores the default.
//
// Failed OS calls are logged at error level; V(1) carries per-call details
// such as handle values and buffer sizes.
//
// SetLogger is safe for concurrent use.
func SetLogger(l logr.Logger) {
	if l.GetSink() == nil {
		l = logr.Discard()
	}
	loggerPtr.Store(&l)
}

// Logger returns the current logger.
func Logger() logr.Logger {
	return *loggerPtr.Load()
}
