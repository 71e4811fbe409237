// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless is the reference windowing backend: a Screen models one
// display with bottom-left-origin native coordinates and a usable area,
// and its Windows hold an RGBA framebuffer plus a damage list instead of a
// native handle. Surfaces bind to the framebuffer through the
// platform.Framebuffer capability; a host paint cycle drains the damage
// list and repaints those regions.
package headless

import (
	"image"
	"log/slog"

	"github.com/amezin/scintilla/geom"
	"github.com/amezin/scintilla/platform"
)

// Config describes the display a Screen models. Zero insets mean the whole
// display is usable.
type Config struct {
	// Width and Height are the display size in pixels.
	Width, Height int

	// InsetTop, InsetBottom, InsetLeft and InsetRight shrink the usable
	// area, standing in for menu bar and dock chrome.
	InsetTop, InsetBottom, InsetLeft, InsetRight int

	// Scale is the device pixel ratio. Zero means 1.
	Scale float32
}

// Kind distinguishes a top-level window from a child view at construction
// time, so no per-call introspection is needed.
type Kind int

const (
	TopLevel Kind = iota
	View
)

// Screen is one display plus the windows created on it.
type Screen struct {
	cfg Config
}

// NewScreen returns a screen for cfg. Non-positive dimensions fall back to
// a conventional 1920x1080 display.
func NewScreen(cfg Config) *Screen {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		slog.Debug("headless: display size unset, using 1920x1080",
			"width", cfg.Width, "height", cfg.Height)
		cfg.Width, cfg.Height = 1920, 1080
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	return &Screen{cfg: cfg}
}

// Width returns the display width in pixels.
func (sc *Screen) Width() float32 { return float32(sc.cfg.Width) }

// Height returns the display height in pixels. Window geometry flips
// through this value when converting to and from native coordinates.
func (sc *Screen) Height() float32 { return float32(sc.cfg.Height) }

// Scale returns the device pixel ratio.
func (sc *Screen) Scale() float32 { return sc.cfg.Scale }

// UsableRect returns the work area of the display in editor coordinates:
// the full frame minus the configured chrome insets.
func (sc *Screen) UsableRect() geom.Rect {
	return geom.NewRect(
		float32(sc.cfg.InsetLeft),
		float32(sc.cfg.InsetTop),
		float32(sc.cfg.Width-sc.cfg.InsetRight),
		float32(sc.cfg.Height-sc.cfg.InsetBottom),
	)
}

// NewWindow creates a window of the given kind on the screen. A View is
// owned by parent and torn down with it; a TopLevel ignores parent.
func (sc *Screen) NewWindow(kind Kind, parent *Window) *Window {
	w := &Window{
		screen: sc,
		kind:   kind,
		cursor: platform.CursorNormal,
	}
	if kind == View && parent != nil {
		w.parent = parent
		parent.children = append(parent.children, w)
	}
	w.setFrame(geom.NewRect(0, 0, 1, 1))
	return w
}

// Window is a headless stand-in for a native window or view. It stores its
// frame in native bottom-left-origin coordinates, converting on every
// accessor, so the flip logic runs on the same path a native backend would
// use.
type Window struct {
	screen *Screen
	kind   Kind
	parent *Window

	frame geom.NativeRect // native, bottom-left origin

	fb       *image.RGBA
	damage   []geom.Rect
	children []*Window

	font      platform.Font
	cursor    platform.Cursor
	title     string
	visible   bool
	focused   bool
	destroyed bool
}

var (
	_ platform.Window      = (*Window)(nil)
	_ platform.Framebuffer = (*Window)(nil)
)

// setFrame stores rc (editor coordinates) as the native frame and resizes
// the framebuffer when the size changed.
func (w *Window) setFrame(rc geom.Rect) {
	w.frame = geom.ToScreen(rc, w.screen.Height())
	width, height := geom.Round(rc.Width()), geom.Round(rc.Height())
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if w.fb == nil || w.fb.Bounds().Dx() != width || w.fb.Bounds().Dy() != height {
		w.fb = image.NewRGBA(image.Rect(0, 0, width, height))
	}
}

// GetPosition returns the window frame in editor coordinates.
func (w *Window) GetPosition() geom.Rect {
	return geom.FromScreen(w.frame, w.screen.Height())
}

// SetPosition moves and resizes the window and damages the whole client
// area.
func (w *Window) SetPosition(rc geom.Rect) {
	w.setFrame(rc)
	w.InvalidateAll()
}

// SetPositionRelative positions the window at rc offset by relativeTo's
// origin, then clamps the result to stay inside the usable area of the
// display.
func (w *Window) SetPositionRelative(rc geom.Rect, relativeTo platform.Window) {
	if relativeTo != nil {
		origin := relativeTo.GetPosition()
		rc = rc.Move(origin.Left, origin.Top)
	}
	work := w.screen.UsableRect()
	if rc.Right > work.Right {
		rc = rc.Move(work.Right-rc.Right, 0)
	}
	if rc.Left < work.Left {
		rc = rc.Move(work.Left-rc.Left, 0)
	}
	if rc.Bottom > work.Bottom {
		rc = rc.Move(0, work.Bottom-rc.Bottom)
	}
	if rc.Top < work.Top {
		rc = rc.Move(0, work.Top-rc.Top)
	}
	w.SetPosition(rc)
}

// GetClientPosition returns the drawable client area with origin (0, 0).
func (w *Window) GetClientPosition() geom.Rect {
	pos := w.GetPosition()
	return geom.NewRect(0, 0, pos.Width(), pos.Height())
}

// Show sets the window's visibility.
func (w *Window) Show(show bool) {
	w.visible = show
}

// Visible reports whether the window is shown.
func (w *Window) Visible() bool { return w.visible }

// InvalidateAll marks the whole client area damaged for the next paint
// cycle.
func (w *Window) InvalidateAll() {
	w.damage = append(w.damage, w.GetClientPosition())
}

// InvalidateRectangle marks rc damaged for the next paint cycle.
func (w *Window) InvalidateRectangle(rc geom.Rect) {
	rc = rc.Intersect(w.GetClientPosition())
	if rc.Empty() {
		return
	}
	w.damage = append(w.damage, rc)
}

// TakeDamage returns the accumulated damage regions and clears the list.
// The host paint cycle calls this once per frame.
func (w *Window) TakeDamage() []geom.Rect {
	d := w.damage
	w.damage = nil
	return d
}

// SetFont sets the font used by the window's native content.
func (w *Window) SetFont(font platform.Font) {
	w.font = font
}

// SetCursor sets the cursor shape shown over the window. CursorInvalid is
// ignored.
func (w *Window) SetCursor(c platform.Cursor) {
	if c == platform.CursorInvalid {
		return
	}
	w.cursor = c
}

// Cursor returns the current cursor shape.
func (w *Window) Cursor() platform.Cursor { return w.cursor }

// SetTitle sets the window title. Views have no title bar; the value is
// still recorded for inspection.
func (w *Window) SetTitle(title string) {
	w.title = title
}

// Title returns the current window title.
func (w *Window) Title() string { return w.title }

// SetFocus gives or removes keyboard focus. This is the host's entry
// point; the contract only reads focus.
func (w *Window) SetFocus(focused bool) {
	w.focused = focused
}

// HasFocus reports whether the window has keyboard focus.
func (w *Window) HasFocus() bool { return w.focused }

// GetMonitorRect returns the usable area of the display, expressed
// relative to the window's own top-left origin.
func (w *Window) GetMonitorRect(pt geom.Point) geom.Rect {
	work := w.screen.UsableRect()
	origin := w.GetPosition()
	return work.Move(-origin.Left, -origin.Top)
}

// Destroy tears down owned child views, drops the framebuffer, and hides
// the window. Further use is harmless but inert.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	for _, c := range w.children {
		c.Destroy()
	}
	w.children = nil
	w.fb = nil
	w.damage = nil
	w.visible = false
	w.focused = false
}

// RGBA exposes the framebuffer for software surfaces. It returns nil after
// Destroy.
func (w *Window) RGBA() *image.RGBA { return w.fb }
