// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster implements the platform surface contract with a software
// rasterizer: surfaces draw into image.RGBA pixels through fogleman/gg
// paths, and text is shaped and measured by the textshape collaborator.
// It is the reference backend; a toolkit binding replaces this package
// without touching the engine.
package raster

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/amezin/scintilla/geom"
	"github.com/amezin/scintilla/platform"
	"github.com/amezin/scintilla/textenc"
	"github.com/amezin/scintilla/textshape"
	"github.com/anthonynsimon/bild/clone"
	"github.com/fogleman/gg"
)

// maxSurfaceDim bounds offscreen allocations; a request past it is treated
// as an allocation failure and the surface stays unbound.
const maxSurfaceDim = 1 << 14

// Surface is a drawing target bound to a window framebuffer or to an owned
// offscreen pixel buffer. The zero value is unbound: every drawing call is
// a no-op and every measurement returns a nominal value until one of the
// Init methods succeeds.
type Surface struct {
	dc     *gg.Context
	target *image.RGBA // pixels being drawn; borrowed unless owned
	owned  bool        // target is an offscreen buffer owned by the surface

	width, height int // offscreen only

	unicode bool
	cp      textenc.CodePage

	pen geom.Point
	fg  color.RGBA

	shaper *textshape.Shaper
}

var _ platform.Surface = (*Surface)(nil)

// New returns an unbound surface in Unicode mode.
func New() *Surface {
	return &Surface{unicode: true}
}

// Init marks the surface usable for measurement-only work by binding it to
// a throwaway 1×1 buffer.
func (s *Surface) Init() {
	s.bind(image.NewRGBA(image.Rect(0, 0, 1, 1)), true, 1, 1)
}

// InitWindow binds the surface to w's framebuffer for the current paint
// cycle. A window that exposes no framebuffer leaves the surface unbound.
func (s *Surface) InitWindow(w platform.Window) {
	fb, ok := w.(platform.Framebuffer)
	if !ok || fb.RGBA() == nil {
		slog.Debug("raster: window has no framebuffer, surface stays unbound")
		return
	}
	s.bind(fb.RGBA(), false, 0, 0)
}

// InitOffscreen allocates a premultiplied-alpha RGBA buffer of the given
// size and binds the surface to it. Text modes are inherited from
// reference when it is a raster surface. On failure the surface stays
// unbound and all subsequent calls are no-ops.
func (s *Surface) InitOffscreen(width, height int, reference platform.Surface) {
	if width <= 0 || height <= 0 || width > maxSurfaceDim || height > maxSurfaceDim {
		slog.Debug("raster: offscreen allocation rejected", "width", width, "height", height)
		return
	}
	s.bind(image.NewRGBA(image.Rect(0, 0, width, height)), true, width, height)
	if ref, ok := reference.(*Surface); ok && ref != nil {
		s.unicode = ref.unicode
		s.cp = ref.cp
	} else {
		s.unicode = true
		s.cp = textenc.Default
	}
}

func (s *Surface) bind(img *image.RGBA, owned bool, width, height int) {
	s.target = img
	s.owned = owned
	s.width = width
	s.height = height
	s.dc = gg.NewContextForRGBA(img)
	s.dc.SetLineWidth(1)
	s.dc.SetFillRule(gg.FillRuleWinding)
}

// Initialized reports whether the surface is bound and drawable.
func (s *Surface) Initialized() bool {
	return s.dc != nil
}

// Release unbinds the surface and drops any owned pixel buffer and
// graphics context.
func (s *Surface) Release() {
	s.dc = nil
	s.target = nil
	s.owned = false
	s.width = 0
	s.height = 0
}

// SetUnicodeMode selects UTF-8 interpretation of text bytes.
func (s *Surface) SetUnicodeMode(unicode bool) {
	s.unicode = unicode
}

// SetDBCSMode sets the code page used when not in Unicode mode.
func (s *Surface) SetDBCSMode(cp textenc.CodePage) {
	s.cp = cp
}

// SetClip restricts subsequent drawing to rc.
func (s *Surface) SetClip(rc geom.Rect) {
	if s.dc == nil {
		return
	}
	s.dc.DrawRectangle(float64(rc.Left), float64(rc.Top), float64(rc.Width()), float64(rc.Height()))
	s.dc.Clip()
}

// FlushCachedState is a no-op: the software backend caches no device state.
func (s *Surface) FlushCachedState() {}

// GetImage returns a snapshot of the owned offscreen pixels, or nil when
// the surface has none (unbound or window-bound).
func (s *Surface) GetImage() *image.RGBA {
	if !s.owned || s.target == nil {
		return nil
	}
	return clone.AsRGBA(s.target)
}

// ensureShaper returns the layout collaborator, defaulting to the shared
// process shaper.
func (s *Surface) ensureShaper() *textshape.Shaper {
	if s.shaper == nil {
		s.shaper = textshape.Default()
	}
	return s.shaper
}

// snapshot returns the pixels backing another surface when it is an
// offscreen raster surface, else nil.
func snapshot(src platform.Surface) *image.RGBA {
	rs, ok := src.(*Surface)
	if !ok {
		return nil
	}
	return rs.GetImage()
}
