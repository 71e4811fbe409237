// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform defines the surface contract between a portable
// text-editing engine and a host windowing system: a drawing surface, a
// font handle, a window, a popup selection list, and a popup menu. The
// engine depends only on these interfaces; a backend supplies them bound
// to a real toolkit, a software rasterizer, or a headless test double.
//
// Every operation in this contract is synchronous, runs on the caller's
// goroutine, and absorbs its own failures: drawing on an unbound surface or
// measuring with an invalid font degrades to a no-op or a nominal 1-unit
// result rather than panicking, because a repaint must never abort
// mid-frame.
package platform

import (
	"image"
	"image/color"

	"github.com/amezin/scintilla/geom"
	"github.com/amezin/scintilla/textenc"
)

// Weight is a font weight on the conventional 100..900 scale.
type Weight int

const (
	WeightNormal   Weight = 400
	WeightSemiBold Weight = 600
	WeightBold     Weight = 700
)

// FontSpec describes a font request: a typeface selection by family, point
// size, weight, and slant, plus the character encoding of the text the
// font will be asked to render.
type FontSpec struct {
	Family   string
	Size     float32
	Weight   Weight
	Italic   bool
	CodePage textenc.CodePage
}

// Font is an opaque handle to a host typeface selection. Two fonts created
// from the same spec are independent handles; sharing is the caller's
// responsibility. Fonts are safely shared read-only across surfaces and
// list boxes, and are never mutated after creation except by Release.
type Font interface {
	// Spec returns the request this font was created from.
	Spec() FontSpec

	// Valid reports whether the handle is backed by a usable host face.
	// Measurements against an invalid font return nominal 1-unit values.
	Valid() bool

	// Release drops the handle. After Release, Valid reports false.
	Release()
}

// Surface is a bindable drawing target: either a window's drawable or an
// offscreen pixel buffer. It must be bound exactly once before drawing;
// all drawing and measurement calls on an unbound surface are no-ops or
// return safe defaults.
type Surface interface {
	// Init binds the surface to nothing in particular, marking it usable
	// for measurement-only work.
	Init()

	// InitWindow binds the surface to w's drawable. The drawable is
	// borrowed for the duration of the paint cycle; it is not owned.
	InitWindow(w Window)

	// InitOffscreen allocates a premultiplied-alpha RGBA pixel buffer of
	// the given size and binds the surface to it. The buffer and its
	// graphics context are owned by the surface and freed by Release.
	// Unicode/code-page modes are inherited from reference if non-nil.
	// On allocation failure the surface stays unbound.
	InitOffscreen(width, height int, reference Surface)

	// Initialized reports whether the surface is bound and drawable.
	Initialized() bool

	// Release unbinds the surface, freeing any owned pixel buffer and
	// graphics context.
	Release()

	// PenColour sets the colour used by subsequent MoveTo/LineTo strokes.
	PenColour(fore color.RGBA)

	// MoveTo sets the current pen position.
	MoveTo(x, y int)

	// LineTo strokes from the current pen position to (x, y) and moves
	// the pen there. Horizontal and vertical segments paint exact 1-unit
	// pixel runs; others stroke at half-integer pixel centers.
	LineTo(x, y int)

	// Polygon fills the closed polygon through pts with back and strokes
	// its outline with fore.
	Polygon(pts []geom.Point, fore, back color.RGBA)

	// RectangleDraw fills rc with back and strokes a pixel-aligned 1-unit
	// outline with fore.
	RectangleDraw(rc geom.Rect, fore, back color.RGBA)

	// FillRectangle fills rc with back, no outline.
	FillRectangle(rc geom.Rect, back color.RGBA)

	// FillRectanglePattern tiles rc with the pixels of pattern, which must
	// be an offscreen surface. A pattern without pixels fills black.
	FillRectanglePattern(rc geom.Rect, pattern Surface)

	// RoundedRectangle fills and strokes rc with chamfered corners.
	RoundedRectangle(rc geom.Rect, fore, back color.RGBA)

	// AlphaRectangle fills rc with fill at alphaFill coverage and strokes
	// the outline with outline at alphaOutline, chamfering corners by
	// cornerSize. When fill equals outline and alphaFill equals
	// alphaOutline the whole rectangle is painted in a single fill pass.
	AlphaRectangle(rc geom.Rect, cornerSize int, fill color.RGBA, alphaFill int, outline color.RGBA, alphaOutline int)

	// Ellipse fills and strokes the ellipse inscribed in rc.
	Ellipse(rc geom.Rect, fore, back color.RGBA)

	// DrawRGBAImage blits a width×height image of non-premultiplied RGBA
	// pixels, rows top-to-bottom, centered within rc when rc is larger.
	DrawRGBAImage(rc geom.Rect, width, height int, pixels []byte)

	// Copy copies pixels from source, which must be an offscreen surface,
	// into rc, reading from source starting at from. If source cannot
	// produce an image snapshot the destination is filled with black.
	Copy(rc geom.Rect, from geom.Point, source Surface)

	// CopyImageRectangle copies srcRect of source into dstRect, scaling
	// if the two rectangles differ in size.
	CopyImageRectangle(source Surface, srcRect, dstRect geom.Rect)

	// DrawTextNoClip fills rc with back and renders text in font with
	// fore, the baseline at ybase, without clipping to rc.
	DrawTextNoClip(rc geom.Rect, font Font, ybase float32, text []byte, fore, back color.RGBA)

	// DrawTextClipped is DrawTextNoClip with glyphs clipped to rc.
	DrawTextClipped(rc geom.Rect, font Font, ybase float32, text []byte, fore, back color.RGBA)

	// DrawTextTransparent renders glyphs only, with no background fill.
	DrawTextTransparent(rc geom.Rect, font Font, ybase float32, text []byte, fore color.RGBA)

	// MeasureWidths returns, for every byte of text, the cumulative
	// advance width at that byte's glyph boundary. All bytes of one
	// multi-byte sequence report the same advance.
	MeasureWidths(font Font, text []byte) []float32

	// WidthText returns the advance width of text in font.
	WidthText(font Font, text []byte) float32

	// WidthChar returns the advance width of a single ASCII character.
	WidthChar(font Font, ch byte) float32

	// Ascent returns the distance from the baseline to the top of a line.
	Ascent(font Font) float32

	// Descent returns the distance from the baseline to the bottom of a line.
	Descent(font Font) float32

	// InternalLeading returns the leading included within Height.
	InternalLeading(font Font) float32

	// ExternalLeading returns the recommended gap between lines.
	ExternalLeading(font Font) float32

	// Height returns the line height of font.
	Height(font Font) float32

	// AverageCharWidth returns the mean advance of the 94 printable ASCII
	// characters, the reference sample for proportional fonts.
	AverageCharWidth(font Font) float32

	// SetClip restricts subsequent drawing to rc.
	SetClip(rc geom.Rect)

	// FlushCachedState discards any device state cached by the surface.
	FlushCachedState()

	// SetUnicodeMode selects between UTF-8 and code-page interpretation
	// of text bytes.
	SetUnicodeMode(unicode bool)

	// SetDBCSMode sets the legacy code page used when not in Unicode mode.
	SetDBCSMode(cp textenc.CodePage)

	// GetImage returns a snapshot of an offscreen surface's pixels, or
	// nil if the surface has none.
	GetImage() *image.RGBA
}

// Cursor identifies a mouse cursor shape.
type Cursor int

const (
	CursorInvalid Cursor = iota
	CursorNormal
	CursorText
	CursorArrow
	CursorUp
	CursorWait
	CursorHorizontal
	CursorVertical
	CursorReverseArrow
	CursorHand
)

// Window is a non-owning reference to a native top-level window or child
// view; the host toolkit owns its lifetime. Geometry is expressed in the
// editor's top-left-origin coordinate space, converted from the host's
// bottom-left-origin screen space using the primary display's height.
type Window interface {
	// GetPosition returns the window's frame in screen coordinates.
	GetPosition() geom.Rect

	// SetPosition moves and resizes the window.
	SetPosition(rc geom.Rect)

	// SetPositionRelative positions the window at rc offset by relativeTo's
	// origin, clamped to the usable area of relativeTo's display.
	SetPositionRelative(rc geom.Rect, relativeTo Window)

	// GetClientPosition returns the drawable client area, origin (0, 0).
	GetClientPosition() geom.Rect

	// Show sets the window's visibility.
	Show(show bool)

	// InvalidateAll marks the whole client area damaged for the next
	// paint cycle. It must not draw synchronously.
	InvalidateAll()

	// InvalidateRectangle marks rc damaged for the next paint cycle.
	InvalidateRectangle(rc geom.Rect)

	// SetFont sets the font used by the window's native content.
	SetFont(font Font)

	// SetCursor sets the mouse cursor shape shown over the window.
	SetCursor(c Cursor)

	// SetTitle sets the native window title.
	SetTitle(title string)

	// HasFocus reports whether the window has keyboard focus.
	HasFocus() bool

	// GetMonitorRect returns the usable area (excluding menu bar and dock
	// chrome) of the display containing pt, expressed relative to the
	// window's own top-left origin.
	GetMonitorRect(pt geom.Point) geom.Rect

	// Destroy tears down any owned sub-widgets and releases the window
	// reference.
	Destroy()
}

// Framebuffer is the capability a Window exposes when a software surface
// can render directly into its pixels.
type Framebuffer interface {
	// RGBA returns the window's backing pixel buffer.
	RGBA() *image.RGBA
}

// NotFound is the sentinel returned by ListBox.Find when no row matches.
const NotFound = -1

// NoIcon is the row type tag meaning the row renders without an icon.
const NoIcon = -1

// ListBoxDelegate receives selection notifications from a ListBox. The
// notifications carry no payload; the delegate queries GetSelection.
type ListBoxDelegate interface {
	OnSelectionChange()
	OnDoubleClick()
}

// ListBox is a floating, scrollable, optionally-iconized selection list
// used for autocompletion. Rows carry UTF-8 text and an integer type tag
// selecting a registered icon.
type ListBox interface {
	// Create builds the list's floating window near location over parent.
	// lineHeight is the row text height; unicode selects the text mode.
	Create(parent Window, ctrlID int, location geom.Point, lineHeight int, unicode bool)

	// Window returns the list's own floating window, for placement and
	// visibility control.
	Window() Window

	// SetFont sets the font rows are measured and drawn with.
	SetFont(font Font)

	// SetAverageCharWidth supplies the engine's average character width,
	// used for width heuristics before rows are measured.
	SetAverageCharWidth(width int)

	// SetVisibleRows sets the desired number of rows shown at once.
	SetVisibleRows(rows int)

	// GetVisibleRows returns the desired visible row count.
	GetVisibleRows() int

	// GetDesiredRect computes the rectangle the list should occupy for
	// its current contents: row height times the visible row count plus
	// chrome, and the widest row plus icon column and padding.
	GetDesiredRect() geom.Rect

	// CaretFromEdge returns the distance from the list's left edge to
	// where the caret should align with row text.
	CaretFromEdge() int

	// Clear removes all rows.
	Clear()

	// Append adds one row with the given type tag.
	Append(text string, typ int)

	// SetList replaces all rows by splitting text at itemSeparator, with
	// an optional typeSeparator-prefixed integer type tag per row.
	SetList(text string, itemSeparator, typeSeparator byte)

	// Length returns the row count.
	Length() int

	// Select makes row n the selection, scrolling it toward the center.
	Select(n int)

	// GetSelection returns the selected row index, or NotFound.
	GetSelection() int

	// Find returns the index of the first row whose text starts with
	// prefix, or NotFound.
	Find(prefix string) int

	// GetValue returns the text of row n.
	GetValue(n int) string

	// RegisterImage maps a row type tag to an icon decoded from textual
	// pixmap data.
	RegisterImage(typ int, xpmData string)

	// RegisterRGBAImage maps a row type tag to a width×height icon of
	// non-premultiplied RGBA pixels, rows top-to-bottom.
	RegisterRGBAImage(typ, width, height int, pixels []byte)

	// ClearRegisteredImages empties the icon registry. Row type tags are
	// unaffected; rows lose their icons until types are re-registered.
	ClearRegisteredImages()

	// Destroy tears down the list and its floating window.
	Destroy()
}

// MenuPerformer receives the command tag chosen from a popup menu.
type MenuPerformer interface {
	Perform(tag int)
}

// Menu is a native context menu built on demand. Command selection is
// dispatched to its performer by integer tag; there is no other payload.
type Menu interface {
	// CreatePopUp builds a fresh native menu container, destroying any
	// prior instance first.
	CreatePopUp()

	// AppendItem adds a command with the given tag and label.
	AppendItem(tag int, label string)

	// AppendSeparator adds a separator row.
	AppendSeparator()

	// Show requests display at pt over w. Placement and modal event
	// handling belong to the host toolkit.
	Show(pt geom.Point, w Window)

	// Destroy releases the native menu.
	Destroy()
}
