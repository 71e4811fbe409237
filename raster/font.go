// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"github.com/amezin/scintilla/platform"
	"github.com/amezin/scintilla/textshape"
)

// Font is the reference backend's font handle. It records the request and
// resolves against the shaper's faces on each use; the Go runtime owns the
// face memory, so Release only invalidates the handle.
type Font struct {
	spec  platform.FontSpec
	req   textshape.Request
	valid bool
}

var _ platform.Font = (*Font)(nil)

// NewFont creates a font handle for spec. Handles created from equal specs
// are independent; sharing is the caller's responsibility.
func NewFont(spec platform.FontSpec) *Font {
	return &Font{
		spec: spec,
		req: textshape.Request{
			Family: spec.Family,
			Size:   spec.Size,
			Weight: int(spec.Weight),
			Italic: spec.Italic,
		},
		valid: spec.Size > 0,
	}
}

// Spec returns the request this font was created from.
func (f *Font) Spec() platform.FontSpec { return f.spec }

// Valid reports whether the handle is usable. Surfaces degrade to nominal
// 1-unit metrics when it is not.
func (f *Font) Valid() bool { return f != nil && f.valid }

// Release drops the handle.
func (f *Font) Release() {
	if f != nil {
		f.valid = false
	}
}
