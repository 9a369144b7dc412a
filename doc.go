// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gdiutil holds the pieces shared by its sub-packages: the status
// codes reported by failed operations and the logger they write to.
//
// The helpers themselves live in sub-packages:
//
//   - dib creates 32-bit BGRA device-independent bitmaps and applies
//     color-key transparency to them.
//   - res locates resources embedded in executable modules and wraps their
//     bytes in streams.
//   - wic decodes images into premultiplied BGRA and rasterizes them into
//     bitmaps.
//
// On Windows the bitmaps are real GDI objects and modules are loaded by the
// system loader. On other platforms the GDI object table is emulated in
// process and modules are read as PE files, so the same code runs and is
// tested everywhere.
package gdiutil // import "github.com/gdiutil/gdiutil"
