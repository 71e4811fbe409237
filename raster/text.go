// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"

	"github.com/amezin/scintilla/geom"
	"github.com/amezin/scintilla/platform"
	"github.com/amezin/scintilla/textenc"
	"github.com/amezin/scintilla/textshape"
	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// averageSample is every printable ASCII character; AverageCharWidth is
// the mean advance over these 94 characters.
const averageSample = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// request extracts the shaping request from a platform font handle,
// reporting ok=false for nil, foreign, or released handles.
func request(f platform.Font) (textshape.Request, bool) {
	rf, ok := f.(*Font)
	if !ok || !rf.Valid() {
		return textshape.Request{}, false
	}
	return rf.req, true
}

// decode converts text bytes to runes under the surface's current text
// mode, returning the byte size of each rune.
func (s *Surface) decode(text []byte) ([]rune, []int) {
	return textenc.Decode(text, s.unicode, s.cp)
}

// layout shapes text in font under the current text mode. The rune sizes
// are returned so measurement can expand positions back to bytes.
func (s *Surface) layout(f platform.Font, text []byte) (*textshape.Layout, []int, bool) {
	req, ok := request(f)
	if !ok || s.dc == nil {
		return nil, nil, false
	}
	runes, sizes := s.decode(text)
	return s.ensureShaper().Layout(runes, req), sizes, true
}

// drawLayout renders the shaped glyphs with the baseline origin at
// (x, ybase) in colour fore.
func (s *Surface) drawLayout(ly *textshape.Layout, x, ybase float32, fore color.RGBA) {
	s.dc.SetColor(fore)
	penX := x
	for i := range ly.Glyphs {
		g := &ly.Glyphs[i]
		s.drawGlyph(g, penX+g.XOffset, ybase-g.YOffset)
		penX += g.XAdvance
	}
}

// drawGlyph traces one glyph's outline onto the context and fills it. The
// outline is in font units with y growing upward; it is scaled to pixels
// and flipped for the top-down device.
func (s *Surface) drawGlyph(g *textshape.Glyph, x, y float32) {
	if g.Face == nil {
		return
	}
	outline, ok := g.Face.GlyphData(g.ID).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return
	}
	scale := g.Size / float32(g.Face.Upem())
	sx := func(v float32) float64 { return float64(v*scale + x) }
	sy := func(v float32) float64 { return float64(-v*scale + y) }
	for _, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			s.dc.NewSubPath()
			s.dc.MoveTo(sx(a[0].X), sy(a[0].Y))
		case opentype.SegmentOpLineTo:
			s.dc.LineTo(sx(a[0].X), sy(a[0].Y))
		case opentype.SegmentOpQuadTo:
			s.dc.QuadraticTo(sx(a[0].X), sy(a[0].Y), sx(a[1].X), sy(a[1].Y))
		case opentype.SegmentOpCubeTo:
			s.dc.CubicTo(sx(a[0].X), sy(a[0].Y), sx(a[1].X), sy(a[1].Y), sx(a[2].X), sy(a[2].Y))
		}
	}
	s.dc.ClosePath()
	s.dc.Fill()
}

// DrawTextNoClip fills rc with back and renders text with the baseline at
// ybase, without clipping glyphs to rc.
func (s *Surface) DrawTextNoClip(rc geom.Rect, f platform.Font, ybase float32, text []byte, fore, back color.RGBA) {
	if s.dc == nil {
		return
	}
	s.FillRectangle(rc, back)
	ly, _, ok := s.layout(f, text)
	if !ok {
		return
	}
	s.drawLayout(ly, rc.Left, ybase, fore)
}

// DrawTextClipped is DrawTextNoClip with glyphs clipped to rc.
func (s *Surface) DrawTextClipped(rc geom.Rect, f platform.Font, ybase float32, text []byte, fore, back color.RGBA) {
	if s.dc == nil {
		return
	}
	s.FillRectangle(rc, back)
	ly, _, ok := s.layout(f, text)
	if !ok {
		return
	}
	s.dc.Push()
	s.dc.DrawRectangle(float64(rc.Left), float64(rc.Top), float64(rc.Width()), float64(rc.Height()))
	s.dc.Clip()
	s.drawLayout(ly, rc.Left, ybase, fore)
	s.dc.Pop()
}

// DrawTextTransparent renders glyphs only, leaving the background intact.
// Runs that are entirely spaces draw nothing.
func (s *Surface) DrawTextTransparent(rc geom.Rect, f platform.Font, ybase float32, text []byte, fore color.RGBA) {
	if s.dc == nil {
		return
	}
	allSpace := true
	for _, b := range text {
		if b != ' ' {
			allSpace = false
			break
		}
	}
	if allSpace {
		return
	}
	ly, _, ok := s.layout(f, text)
	if !ok {
		return
	}
	s.drawLayout(ly, rc.Left, ybase, fore)
}

// MeasureWidths returns, for every byte of text, the cumulative advance at
// the end of the character containing that byte. All bytes of a multi-byte
// character report the same position. An invalid font yields the nominal
// ladder 1, 2, 3, ...
func (s *Surface) MeasureWidths(f platform.Font, text []byte) []float32 {
	positions := make([]float32, len(text))
	ly, sizes, ok := s.layout(f, text)
	if !ok {
		for i := range positions {
			positions[i] = float32(i + 1)
		}
		return positions
	}
	runePos := ly.ClusterPositions(len(sizes))
	i := 0
	for r, size := range sizes {
		for b := 0; b < size && i < len(positions); b++ {
			positions[i] = runePos[r]
			i++
		}
	}
	// Stray trailing bytes repeat the final position.
	for ; i > 0 && i < len(positions); i++ {
		positions[i] = positions[i-1]
	}
	return positions
}

// WidthText returns the advance width of text, rounded to whole units.
func (s *Surface) WidthText(f platform.Font, text []byte) float32 {
	ly, _, ok := s.layout(f, text)
	if !ok {
		return float32(len(text))
	}
	return math32.Round(ly.Advance)
}

// WidthChar returns the advance width of one ASCII character.
func (s *Surface) WidthChar(f platform.Font, ch byte) float32 {
	return s.WidthText(f, []byte{ch})
}

// metrics returns the line metrics of f, degrading to 1-unit nominal
// values for invalid handles.
func (s *Surface) metrics(f platform.Font) (ascent, descent, gap float32, ok bool) {
	req, reqOK := request(f)
	if !reqOK || s.dc == nil {
		return 1, 1, 1, false
	}
	return s.ensureShaper().Metrics(req)
}

// Ascent returns the rounded distance from the baseline to the line top.
func (s *Surface) Ascent(f platform.Font) float32 {
	asc, _, _, ok := s.metrics(f)
	if !ok {
		return 1
	}
	return math32.Round(asc)
}

// Descent returns the rounded distance from the baseline to the line
// bottom.
func (s *Surface) Descent(f platform.Font) float32 {
	_, desc, _, ok := s.metrics(f)
	if !ok {
		return 1
	}
	return math32.Round(desc)
}

// InternalLeading is always zero: ascent already includes the face's
// internal leading.
func (s *Surface) InternalLeading(f platform.Font) float32 {
	return 0
}

// ExternalLeading returns the rounded recommended gap between lines.
func (s *Surface) ExternalLeading(f platform.Font) float32 {
	_, _, gap, ok := s.metrics(f)
	if !ok {
		return 1
	}
	return math32.Round(gap)
}

// Height returns the line height, truncating the ascent-plus-descent sum
// so stacked lines never overlap by a fractional pixel.
func (s *Surface) Height(f platform.Font) float32 {
	asc, desc, _, ok := s.metrics(f)
	if !ok {
		return 2
	}
	return float32(int(math32.Round(asc) + math32.Round(desc)))
}

// AverageCharWidth returns the mean advance of the printable ASCII
// characters.
func (s *Surface) AverageCharWidth(f platform.Font) float32 {
	ly, _, ok := s.layout(f, []byte(averageSample))
	if !ok {
		return 1
	}
	return ly.Advance / float32(len(averageSample))
}
