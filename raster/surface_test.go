// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"
	"testing"

	"github.com/amezin/scintilla/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	green = color.RGBA{G: 0xFF, A: 0xFF}
	blue  = color.RGBA{B: 0xFF, A: 0xFF}
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func TestOffscreenLifecycle(t *testing.T) {
	s := New()
	assert.False(t, s.Initialized())

	s.InitOffscreen(64, 32, nil)
	require.True(t, s.Initialized())

	img := s.GetImage()
	require.NotNil(t, img)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
	assert.Len(t, img.Pix, 64*32*4)

	s.Release()
	assert.False(t, s.Initialized())
	assert.Nil(t, s.GetImage())
}

func TestOffscreenSizeRejected(t *testing.T) {
	s := New()
	s.InitOffscreen(0, 10, nil)
	assert.False(t, s.Initialized())
	s.InitOffscreen(10, -1, nil)
	assert.False(t, s.Initialized())
	s.InitOffscreen(maxSurfaceDim+1, 10, nil)
	assert.False(t, s.Initialized())

	// No-ops must not panic while unbound.
	s.FillRectangle(geom.NewRect(0, 0, 10, 10), red)
	s.LineTo(5, 5)
	s.Release()
}

func TestFillRectangle(t *testing.T) {
	s := New()
	s.InitOffscreen(16, 16, nil)
	s.FillRectangle(geom.NewRect(2, 2, 10, 10), red)

	img := s.GetImage()
	assert.Equal(t, red, img.RGBAAt(2, 2))
	assert.Equal(t, red, img.RGBAAt(9, 9))
	assert.NotEqual(t, red, img.RGBAAt(10, 10))
	assert.NotEqual(t, red, img.RGBAAt(1, 2))
}

func TestFillRectangleRoundsHorizontalEdges(t *testing.T) {
	s := New()
	s.InitOffscreen(16, 4, nil)
	s.FillRectangle(geom.NewRect(2.6, 0, 10.4, 4), red)

	img := s.GetImage()
	// 2.6 rounds to 3, 10.4 rounds to 10.
	assert.NotEqual(t, red, img.RGBAAt(2, 1))
	assert.Equal(t, red, img.RGBAAt(3, 1))
	assert.Equal(t, red, img.RGBAAt(9, 1))
	assert.NotEqual(t, red, img.RGBAAt(10, 1))
}

func TestLineToHorizontal(t *testing.T) {
	s := New()
	s.InitOffscreen(16, 8, nil)
	s.PenColour(green)
	s.MoveTo(2, 3)
	s.LineTo(8, 3)

	img := s.GetImage()
	for x := 2; x < 8; x++ {
		assert.Equal(t, green, img.RGBAAt(x, 3), "x=%d", x)
	}
	// End point is excluded.
	assert.NotEqual(t, green, img.RGBAAt(8, 3))
	assert.NotEqual(t, green, img.RGBAAt(1, 3))
	// Exactly one pixel thick.
	assert.NotEqual(t, green, img.RGBAAt(4, 2))
	assert.NotEqual(t, green, img.RGBAAt(4, 4))
}

func TestLineToVertical(t *testing.T) {
	s := New()
	s.InitOffscreen(8, 16, nil)
	s.PenColour(green)
	s.MoveTo(3, 10)
	s.LineTo(3, 2)

	img := s.GetImage()
	for y := 3; y <= 10; y++ {
		assert.Equal(t, green, img.RGBAAt(3, y), "y=%d", y)
	}
	assert.NotEqual(t, green, img.RGBAAt(3, 2))
}

func TestLineToUpdatesPenWhileUnbound(t *testing.T) {
	s := New()
	s.MoveTo(1, 1)
	s.LineTo(5, 5)
	s.InitOffscreen(16, 16, nil)
	s.PenColour(green)
	s.LineTo(5, 9)

	// The vertical segment must start from (5, 5), proving the pen moved
	// while the surface was unbound.
	img := s.GetImage()
	assert.Equal(t, green, img.RGBAAt(5, 5))
	assert.Equal(t, green, img.RGBAAt(5, 8))
	assert.NotEqual(t, green, img.RGBAAt(5, 4))
}

func TestRectangleDraw(t *testing.T) {
	s := New()
	s.InitOffscreen(16, 16, nil)
	s.RectangleDraw(geom.NewRect(2, 2, 12, 12), blue, red)

	img := s.GetImage()
	// Interior is the back colour, border the fore colour.
	assert.Equal(t, red, img.RGBAAt(6, 6))
	assert.Equal(t, blue, img.RGBAAt(2, 6))
	assert.Equal(t, blue, img.RGBAAt(11, 6))
	assert.Equal(t, blue, img.RGBAAt(6, 2))
	assert.Equal(t, blue, img.RGBAAt(6, 11))
	assert.NotEqual(t, blue, img.RGBAAt(12, 6))
}

func TestAlphaRectangleSinglePassMatchesInterior(t *testing.T) {
	rc := geom.NewRect(2, 2, 14, 14)
	fill := color.RGBA{R: 0x80, G: 0x40, A: 0xFF}

	one := New()
	one.InitOffscreen(16, 16, nil)
	one.FillRectangle(geom.NewRect(0, 0, 16, 16), white)
	one.AlphaRectangle(rc, 0, fill, 128, fill, 128)

	two := New()
	two.InitOffscreen(16, 16, nil)
	two.FillRectangle(geom.NewRect(0, 0, 16, 16), white)
	two.AlphaRectangle(rc, 0, fill, 128, blue, 128)

	a, b := one.GetImage(), two.GetImage()
	// Past the 1-unit outline band the two render identically.
	inner := rc.Inset(2).ToImageRect()
	for y := inner.Min.Y; y < inner.Max.Y; y++ {
		for x := inner.Min.X; x < inner.Max.X; x++ {
			assert.Equal(t, a.RGBAAt(x, y), b.RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestEllipseTooNarrowIsNoOp(t *testing.T) {
	s := New()
	s.InitOffscreen(8, 8, nil)
	s.Ellipse(geom.NewRect(3, 1, 5, 7), blue, red)
	img := s.GetImage()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, color.RGBA{}, img.RGBAAt(x, y))
		}
	}
}

func TestCopyFromOffscreen(t *testing.T) {
	src := New()
	src.InitOffscreen(8, 8, nil)
	src.FillRectangle(geom.NewRect(0, 0, 8, 8), green)

	dst := New()
	dst.InitOffscreen(16, 16, nil)
	dst.Copy(geom.NewRect(4, 4, 12, 12), geom.Pt(0, 0), src)

	img := dst.GetImage()
	assert.Equal(t, green, img.RGBAAt(4, 4))
	assert.Equal(t, green, img.RGBAAt(11, 11))
	assert.NotEqual(t, green, img.RGBAAt(3, 4))
	assert.NotEqual(t, green, img.RGBAAt(12, 12))
}

func TestCopyFromUnboundSourceFillsBlack(t *testing.T) {
	src := New() // never bound, no snapshot

	dst := New()
	dst.InitOffscreen(8, 8, nil)
	dst.FillRectangle(geom.NewRect(0, 0, 8, 8), white)
	dst.Copy(geom.NewRect(2, 2, 6, 6), geom.Pt(0, 0), src)

	img := dst.GetImage()
	assert.Equal(t, color.RGBA{A: 0xFF}, img.RGBAAt(3, 3))
	assert.Equal(t, white, img.RGBAAt(1, 1))
}

func TestCopyImageRectangleScales(t *testing.T) {
	src := New()
	src.InitOffscreen(4, 4, nil)
	src.FillRectangle(geom.NewRect(0, 0, 4, 4), red)

	dst := New()
	dst.InitOffscreen(16, 16, nil)
	dst.CopyImageRectangle(src, geom.NewRect(0, 0, 4, 4), geom.NewRect(0, 0, 8, 8))

	img := dst.GetImage()
	assert.Equal(t, red, img.RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(12, 12))
}

func TestFillRectanglePatternTiles(t *testing.T) {
	pat := New()
	pat.InitOffscreen(2, 2, nil)
	pat.FillRectangle(geom.NewRect(0, 0, 1, 2), red)
	pat.FillRectangle(geom.NewRect(1, 0, 2, 2), blue)

	dst := New()
	dst.InitOffscreen(8, 8, nil)
	dst.FillRectanglePattern(geom.NewRect(0, 0, 8, 8), pat)

	img := dst.GetImage()
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, blue, img.RGBAAt(1, 0))
	assert.Equal(t, red, img.RGBAAt(2, 4))
	assert.Equal(t, blue, img.RGBAAt(5, 4))
}

func TestFillRectanglePatternNilSourceFillsBlack(t *testing.T) {
	dst := New()
	dst.InitOffscreen(8, 8, nil)
	dst.FillRectangle(geom.NewRect(0, 0, 8, 8), white)
	dst.FillRectanglePattern(geom.NewRect(0, 0, 8, 8), New())

	img := dst.GetImage()
	assert.Equal(t, color.RGBA{A: 0xFF}, img.RGBAAt(4, 4))
}

func TestSetClipRestrictsDrawing(t *testing.T) {
	s := New()
	s.InitOffscreen(16, 16, nil)
	s.SetClip(geom.NewRect(4, 4, 8, 8))
	s.FillRectangle(geom.NewRect(0, 0, 16, 16), red)

	img := s.GetImage()
	assert.Equal(t, red, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 10))
}

func TestDrawRGBAImageCentersAndPremultiplies(t *testing.T) {
	s := New()
	s.InitOffscreen(10, 10, nil)

	// A 2x2 fully opaque red image inside a 6x6 rect lands centered.
	pix := make([]byte, 2*2*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = 0xFF
		pix[i+3] = 0xFF
	}
	s.DrawRGBAImage(geom.NewRect(2, 2, 8, 8), 2, 2, pix)

	img := s.GetImage()
	assert.Equal(t, red, img.RGBAAt(4, 4))
	assert.Equal(t, red, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(2, 2))
}

func TestInitOffscreenInheritsTextModes(t *testing.T) {
	ref := New()
	ref.InitOffscreen(4, 4, nil)
	ref.SetUnicodeMode(false)
	ref.SetDBCSMode(932)

	s := New()
	s.InitOffscreen(4, 4, ref)
	assert.False(t, s.unicode)
	assert.Equal(t, ref.cp, s.cp)
}
