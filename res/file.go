// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import (
	"errors"
	"fmt"

	"github.com/tc-hib/winres"

	"github.com/gdiutil/gdiutil/internal/peimage"
)

// LoadSet reads the resource section of the PE file at path. It works on
// every platform and never maps or executes the file. A file without a
// resource section yields an empty set.
func LoadSet(path string) (*winres.ResourceSet, error) {
	r, err := peimage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("res: %w", err)
	}
	defer r.Close()
	rs, err := winres.LoadFromEXE(r)
	if errors.Is(err, winres.ErrNoResources) {
		return &winres.ResourceSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("res: loading resources of %s: %w", path, err)
	}
	return rs, nil
}
