// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the rectangle and point types used by the editor's
// platform layer, and conversions between the editor's coordinate model
// (origin top-left, exclusive right/bottom edges) and the host's native
// representations (origin plus size, and bottom-left-origin screen space).
package geom

import (
	"image"

	"github.com/chewxy/math32"
)

// Point is a location in the editor's top-left-origin coordinate space.
type Point struct {
	X, Y float32
}

// Pt returns a Point at the given coordinates.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Rect is an axis-aligned rectangle in the editor's coordinate space.
// The origin is top-left and the Right and Bottom edges are exclusive,
// so Width = Right - Left and Height = Bottom - Top.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// NewRect returns a Rect with the given edges.
func NewRect(left, top, right, bottom float32) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside the rectangle.
// Points on the Right or Bottom edge are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Move returns the rectangle translated by (dx, dy).
func (r Rect) Move(dx, dy float32) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Inset returns the rectangle with all four edges moved inward by n.
func (r Rect) Inset(n float32) Rect {
	return Rect{Left: r.Left + n, Top: r.Top + n, Right: r.Right - n, Bottom: r.Bottom - n}
}

// Intersect returns the largest rectangle contained in both r and o.
// The result may be Empty.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Left:   math32.Max(r.Left, o.Left),
		Top:    math32.Max(r.Top, o.Top),
		Right:  math32.Min(r.Right, o.Right),
		Bottom: math32.Min(r.Bottom, o.Bottom),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		Left:   math32.Min(r.Left, o.Left),
		Top:    math32.Min(r.Top, o.Top),
		Right:  math32.Max(r.Right, o.Right),
		Bottom: math32.Max(r.Bottom, o.Bottom),
	}
}

// ToImageRect returns the rectangle as an image.Rectangle, rounding each
// edge to the nearest integer.
func (r Rect) ToImageRect() image.Rectangle {
	return image.Rect(Round(r.Left), Round(r.Top), Round(r.Right), Round(r.Bottom))
}

// FromImageRect returns ir as an editor-space Rect.
func FromImageRect(ir image.Rectangle) Rect {
	return NewRect(float32(ir.Min.X), float32(ir.Min.Y), float32(ir.Max.X), float32(ir.Max.Y))
}

// Round rounds v to the nearest integer, halves away from zero.
func Round(v float32) int {
	return int(math32.Round(v))
}

// NativeRect is the host toolkit's rectangle representation: an origin
// plus a size. Within a drawable it shares the editor's orientation; in
// screen space the host's Y axis grows upward from the bottom of the
// display, and [ToScreen]/[FromScreen] perform that inversion.
type NativeRect struct {
	X, Y, W, H float32
}

// ToNative converts an editor-space rectangle to the host origin+size form.
func ToNative(rc Rect) NativeRect {
	return NativeRect{X: rc.Left, Y: rc.Top, W: rc.Width(), H: rc.Height()}
}

// FromNative converts a host origin+size rectangle back to editor space.
// For integer coordinates the conversion round-trips exactly.
func FromNative(nr NativeRect) Rect {
	return Rect{Left: nr.X, Top: nr.Y, Right: nr.X + nr.W, Bottom: nr.Y + nr.H}
}

// ToScreen converts an editor-space rectangle to bottom-left-origin screen
// space for a display of the given height.
func ToScreen(rc Rect, screenHeight float32) NativeRect {
	return NativeRect{X: rc.Left, Y: screenHeight - rc.Bottom, W: rc.Width(), H: rc.Height()}
}

// FromScreen converts a bottom-left-origin screen rectangle back to the
// editor's top-left-origin space for a display of the given height.
func FromScreen(nr NativeRect, screenHeight float32) Rect {
	top := screenHeight - (nr.Y + nr.H)
	return Rect{Left: nr.X, Top: top, Right: nr.X + nr.W, Bottom: top + nr.H}
}

// PixelAlign snaps the rectangle's edges to half-integer pixel centers so
// that a 1-unit stroke lands on a single pixel row instead of blurring
// across two.
func PixelAlign(rc Rect) Rect {
	return Rect{
		Left:   float32(Round(rc.Left)) + 0.5,
		Top:    float32(Round(rc.Top)) + 0.5,
		Right:  float32(Round(rc.Right)) - 0.5,
		Bottom: float32(Round(rc.Bottom)) - 0.5,
	}
}
