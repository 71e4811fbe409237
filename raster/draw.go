// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"github.com/amezin/scintilla/geom"
	"github.com/amezin/scintilla/platform"
	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

var black = color.RGBA{A: 0xFF}

// roundedCorner is the chamfer size used by RoundedRectangle.
const roundedCorner = 4

// PenColour sets the colour used by MoveTo/LineTo strokes.
func (s *Surface) PenColour(fore color.RGBA) {
	s.fg = fore
}

// MoveTo sets the current pen position. The pen tracks position even while
// the surface is unbound.
func (s *Surface) MoveTo(x, y int) {
	s.pen = geom.Pt(float32(x), float32(y))
}

// LineTo strokes from the pen position to (x, y) in the pen colour and
// moves the pen there. Horizontal and vertical segments paint as exact
// 1-unit filled pixel runs, including the start pixel and excluding the
// end pixel; 45° segments stop one pixel short of the end; other slopes
// stroke through the full span at half-integer pixel centers.
func (s *Surface) LineTo(x, y int) {
	if s.dc != nil {
		x0, y0 := int(s.pen.X), int(s.pen.Y)
		xDiff, yDiff := x-x0, y-y0
		xDelta, yDelta := delta(xDiff), delta(yDiff)
		switch {
		case xDiff == 0 || yDiff == 0:
			xEnd := x - xDelta
			left := min(x0, xEnd)
			width := abs(x0-xEnd) + 1
			yEnd := y - yDelta
			top := min(y0, yEnd)
			height := abs(y0-yEnd) + 1
			s.dc.SetColor(s.fg)
			s.dc.DrawRectangle(float64(left), float64(top), float64(width), float64(height))
			s.dc.Fill()
		case abs(xDiff) == abs(yDiff):
			s.strokeSegment(x0, y0, x-xDelta, y-yDelta)
		default:
			s.strokeSegment(x0, y0, x, y)
		}
	}
	s.pen = geom.Pt(float32(x), float32(y))
}

func (s *Surface) strokeSegment(x0, y0, x1, y1 int) {
	s.dc.SetColor(s.fg)
	s.dc.SetLineWidth(1)
	s.dc.DrawLine(float64(x0)+0.5, float64(y0)+0.5, float64(x1)+0.5, float64(y1)+0.5)
	s.dc.Stroke()
}

// Polygon fills the closed polygon through pts with back and strokes its
// outline with fore at half-integer pixel centers.
func (s *Surface) Polygon(pts []geom.Point, fore, back color.RGBA) {
	if s.dc == nil || len(pts) == 0 {
		return
	}
	s.dc.MoveTo(float64(pts[0].X)+0.5, float64(pts[0].Y)+0.5)
	for _, p := range pts[1:] {
		s.dc.LineTo(float64(p.X)+0.5, float64(p.Y)+0.5)
	}
	s.dc.ClosePath()
	s.dc.SetColor(back)
	s.dc.FillPreserve()
	s.dc.SetColor(fore)
	s.dc.SetLineWidth(1)
	s.dc.Stroke()
}

// RectangleDraw fills rc with back and strokes a crisp 1-unit outline with
// fore, both snapped to half-integer pixel centers.
func (s *Surface) RectangleDraw(rc geom.Rect, fore, back color.RGBA) {
	if s.dc == nil {
		return
	}
	left := float64(geom.Round(rc.Left)) + 0.5
	top := float64(rc.Top) + 0.5
	right := float64(geom.Round(rc.Right)) - 0.5
	bottom := float64(rc.Bottom) - 0.5
	s.dc.DrawRectangle(left, top, right-left, bottom-top)
	s.dc.SetColor(back)
	s.dc.FillPreserve()
	s.dc.SetColor(fore)
	s.dc.SetLineWidth(1)
	s.dc.Stroke()
}

// FillRectangle fills rc with back, rounding the horizontal edges to whole
// pixels as line-fill callers expect.
func (s *Surface) FillRectangle(rc geom.Rect, back color.RGBA) {
	if s.dc == nil {
		return
	}
	left := float64(geom.Round(rc.Left))
	right := float64(geom.Round(rc.Right))
	s.dc.SetColor(back)
	s.dc.DrawRectangle(left, float64(rc.Top), right-left, float64(rc.Height()))
	s.dc.Fill()
}

// FillRectanglePattern tiles rc with the pixels of pattern. A pattern that
// cannot produce a snapshot fills black instead.
func (s *Surface) FillRectanglePattern(rc geom.Rect, pattern platform.Surface) {
	if s.dc == nil {
		return
	}
	src := snapshot(pattern)
	if src == nil || src.Bounds().Dx() == 0 || src.Bounds().Dy() == 0 {
		s.FillRectangle(rc, black)
		return
	}
	s.dc.Push()
	s.dc.SetFillStyle(gg.NewSurfacePattern(src, gg.RepeatBoth))
	s.dc.DrawRectangle(float64(rc.Left), float64(rc.Top), float64(rc.Width()), float64(rc.Height()))
	s.dc.Fill()
	s.dc.Pop()
}

// chamferPath traces rc with 45°-cut corners of the given size onto the
// current path. corner is clamped to half the smaller dimension.
func (s *Surface) chamferPath(rc geom.Rect, corner float64) {
	l, t := float64(rc.Left), float64(rc.Top)
	r, b := float64(rc.Right), float64(rc.Bottom)
	c := corner
	if half := (r - l) / 2; c > half {
		c = half
	}
	if half := (b - t) / 2; c > half {
		c = half
	}
	if c < 0 {
		c = 0
	}
	s.dc.MoveTo(l+c, t)
	s.dc.LineTo(r-c, t)
	s.dc.LineTo(r, t+c)
	s.dc.LineTo(r, b-c)
	s.dc.LineTo(r-c, b)
	s.dc.LineTo(l+c, b)
	s.dc.LineTo(l, b-c)
	s.dc.LineTo(l, t+c)
	s.dc.ClosePath()
}

// RoundedRectangle fills rc inset by 1 and strokes the outline at
// half-integer pixel centers, with chamfered corners.
func (s *Surface) RoundedRectangle(rc geom.Rect, fore, back color.RGBA) {
	if s.dc == nil {
		return
	}
	s.dc.SetColor(back)
	s.chamferPath(rc.Inset(1), roundedCorner)
	s.dc.Fill()

	s.dc.SetColor(fore)
	s.chamferPath(rc.Inset(0.5), roundedCorner)
	s.dc.SetLineWidth(1)
	s.dc.Stroke()
}

// AlphaRectangle fills rc with fill at alphaFill and strokes the outline
// with outline at alphaOutline, chamfering corners by cornerSize. Equal
// fill and outline collapse to a single fill pass over the whole rect;
// otherwise the fill is inset by 1 with a cornerSize-1 chamfer and the
// stroke runs at half-integer pixel centers with a cornerSize chamfer.
func (s *Surface) AlphaRectangle(rc geom.Rect, cornerSize int, fill color.RGBA, alphaFill int, outline color.RGBA, alphaOutline int) {
	if s.dc == nil {
		return
	}
	if fill == outline && alphaFill == alphaOutline {
		s.setColourAlpha(fill, alphaFill)
		s.chamferPath(rc, float64(cornerSize))
		s.dc.Fill()
		return
	}
	s.setColourAlpha(fill, alphaFill)
	s.chamferPath(rc.Inset(1), float64(cornerSize-1))
	s.dc.Fill()

	s.setColourAlpha(outline, alphaOutline)
	s.chamferPath(rc.Inset(0.5), float64(cornerSize))
	s.dc.SetLineWidth(1)
	s.dc.Stroke()
}

func (s *Surface) setColourAlpha(c color.RGBA, alpha int) {
	s.dc.SetRGBA255(int(c.R), int(c.G), int(c.B), alpha)
}

// Ellipse fills and strokes the circle inscribed in rc, radius half the
// width less one unit.
func (s *Surface) Ellipse(rc geom.Rect, fore, back color.RGBA) {
	if s.dc == nil {
		return
	}
	cx := float64(rc.Left+rc.Right) / 2
	cy := float64(rc.Top+rc.Bottom) / 2
	radius := float64(rc.Width())/2 - 1
	if radius <= 0 {
		return
	}
	s.dc.DrawEllipse(cx, cy, radius, radius)
	s.dc.SetColor(back)
	s.dc.FillPreserve()
	s.dc.SetColor(fore)
	s.dc.SetLineWidth(1)
	s.dc.Stroke()
}

// DrawRGBAImage blits a width×height image of non-premultiplied RGBA
// pixels, rows top-to-bottom, centered within rc when rc is larger. The
// rows are premultiplied into a scratch buffer ordered for the device
// before the blit; the scratch is dropped afterwards.
func (s *Surface) DrawRGBAImage(rc geom.Rect, width, height int, pixels []byte) {
	if s.dc == nil || width <= 0 || height <= 0 || len(pixels) < width*height*4 {
		return
	}
	if rc.Width() > float32(width) {
		rc.Left += (rc.Width() - float32(width)) / 2
	}
	rc.Right = rc.Left + float32(width)
	if rc.Height() > float32(height) {
		rc.Top += (rc.Height() - float32(height)) / 2
	}
	rc.Bottom = rc.Top + float32(height)

	scratch := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := pixels[y*width*4 : (y+1)*width*4]
		out := scratch.Pix[y*scratch.Stride:]
		for x := 0; x < width; x++ {
			r, g, b, a := row[x*4], row[x*4+1], row[x*4+2], row[x*4+3]
			out[x*4] = uint8(uint16(r) * uint16(a) / 255)
			out[x*4+1] = uint8(uint16(g) * uint16(a) / 255)
			out[x*4+2] = uint8(uint16(b) * uint16(a) / 255)
			out[x*4+3] = a
		}
	}
	s.dc.DrawImage(scratch, geom.Round(rc.Left), geom.Round(rc.Top))
}

// Copy copies pixels from source into rc, reading at offset from within
// the source. A source without a pixel snapshot fills rc with black.
func (s *Surface) Copy(rc geom.Rect, from geom.Point, source platform.Surface) {
	if s.dc == nil {
		return
	}
	src := snapshot(source)
	if src == nil {
		s.FillRectangle(rc, black)
		return
	}
	dst := rc.ToImageRect().Intersect(s.target.Bounds())
	if dst.Empty() {
		return
	}
	sp := image.Pt(
		geom.Round(from.X)+dst.Min.X-geom.Round(rc.Left),
		geom.Round(from.Y)+dst.Min.Y-geom.Round(rc.Top),
	)
	stddraw.Draw(s.target, dst, src, sp, stddraw.Src)
}

// CopyImageRectangle copies srcRect of source into dstRect, scaling with a
// bilinear kernel when the sizes differ. A source without a snapshot
// fills dstRect with black.
func (s *Surface) CopyImageRectangle(source platform.Surface, srcRect, dstRect geom.Rect) {
	if s.dc == nil {
		return
	}
	src := snapshot(source)
	if src == nil {
		s.FillRectangle(dstRect, black)
		return
	}
	sr := srcRect.ToImageRect()
	dr := dstRect.ToImageRect()
	if sr.Size() == dr.Size() {
		dst := dr.Intersect(s.target.Bounds())
		if dst.Empty() {
			return
		}
		sp := sr.Min.Add(dst.Min.Sub(dr.Min))
		stddraw.Draw(s.target, dst, src, sp, stddraw.Src)
		return
	}
	xdraw.BiLinear.Scale(s.target, dr, src, sr, xdraw.Src, nil)
}

func delta(diff int) int {
	switch {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
