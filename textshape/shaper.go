// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textshape is the text-layout collaborator of the platform layer:
// given runes, a font request, and a size, it produces a shaped line whose
// total advance and per-cluster positions drawing surfaces query for
// rendering and measurement. Shaping and font resolution are provided by
// github.com/go-text/typesetting (fontscan + harfbuzz).
package textshape

import (
	"bytes"
	"log/slog"
	"os"
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Request selects a face: family name, point size, weight on the 100..900
// scale, and slant. An empty family resolves to the embedded fallback.
type Request struct {
	Family string
	Size   float32
	Weight int
	Italic bool
}

// Shaper resolves font requests against the available faces and shapes
// text runs. It is not safe for concurrent use; the platform layer is
// single-threaded by contract.
type Shaper struct {
	fontMap  *fontscan.FontMap
	shaper   shaping.HarfbuzzShaper
	splitter shaping.Segmenter
}

// embeddedFaces are always-available fallback faces, so a headless host
// with no system fonts still resolves every request to something usable.
var embeddedFaces = [][]byte{
	lmroman10regular.TTF,
	lmroman10bold.TTF,
	lmroman10italic.TTF,
	lmmono10regular.TTF,
}

// NewShaper returns a shaper loaded with the system fonts (when available)
// and the embedded fallback faces.
func NewShaper() *Shaper {
	sh := &Shaper{}
	sh.fontMap = fontscan.NewFontMap(nil)
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		slog.Debug("textshape: no user cache dir for font index", "err", err)
	}
	if err := sh.fontMap.UseSystemFonts(cacheDir); err != nil {
		slog.Debug("textshape: system fonts unavailable", "err", err)
	}
	for _, ttf := range embeddedFaces {
		if err := sh.fontMap.AddFont(bytes.NewReader(ttf), "embedded", ""); err != nil {
			slog.Error("textshape: embedded face rejected", "err", err)
		}
	}
	sh.shaper.SetFontCacheSize(32)
	return sh
}

var (
	defaultShaper *Shaper
	defaultOnce   sync.Once
)

// Default returns the process-wide shaper, created on first use.
func Default() *Shaper {
	defaultOnce.Do(func() {
		defaultShaper = NewShaper()
	})
	return defaultShaper
}

// query translates a Request to fontscan terms.
func (sh *Shaper) query(req Request) fontscan.Query {
	q := fontscan.Query{}
	if req.Family != "" {
		q.Families = []string{req.Family}
	}
	q.Aspect = font.Aspect{
		Style:  font.StyleNormal,
		Weight: font.Weight(req.Weight),
	}
	if req.Italic {
		q.Aspect.Style = font.StyleItalic
	}
	if req.Weight == 0 {
		q.Aspect.Weight = font.WeightNormal
	}
	return q
}

// Glyph is one shaped glyph positioned within a Layout.
type Glyph struct {
	// Face is the resolved face the glyph renders from.
	Face *font.Face

	// ID is the glyph index within Face.
	ID font.GID

	// Size is the point size the glyph was shaped at, for scaling the
	// outline from font units.
	Size float32

	// Cluster is the index of the first rune this glyph maps to.
	Cluster int

	// XAdvance is the horizontal advance contributed by this glyph.
	XAdvance float32

	// XOffset and YOffset displace the glyph from the pen position
	// without affecting the advance. YOffset is positive upward.
	XOffset, YOffset float32
}

// Layout is a shaped single-direction line of text.
type Layout struct {
	// Glyphs are the shaped glyphs in visual order.
	Glyphs []Glyph

	// Advance is the total advance width of the line, including
	// trailing whitespace.
	Advance float32

	runeCount int
}

// Layout shapes text as one left-to-right line in the requested face.
func (sh *Shaper) Layout(text []rune, req Request) *Layout {
	ly := &Layout{runeCount: len(text)}
	if len(text) == 0 {
		return ly
	}
	sh.fontMap.SetQuery(sh.query(req))

	in := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Size:      toFixed(req.Size),
		Script:    language.LookupScript(text[0]),
		Language:  language.DefaultLanguage(),
	}
	for _, run := range sh.splitter.Split(in, sh.fontMap) {
		if run.Face == nil {
			slog.Debug("textshape: no face for run", "start", run.RunStart)
			continue
		}
		out := sh.shaper.Shape(run)
		for _, g := range out.Glyphs {
			ly.Glyphs = append(ly.Glyphs, Glyph{
				Face:     out.Face,
				ID:       g.GlyphID,
				Size:     req.Size,
				Cluster:  g.ClusterIndex,
				XAdvance: fromFixed(g.XAdvance),
				XOffset:  fromFixed(g.XOffset),
				YOffset:  fromFixed(g.YOffset),
			})
		}
		ly.Advance += fromFixed(out.Advance)
	}
	return ly
}

// ClusterPositions returns, for each of the n runes the layout was shaped
// from, the cumulative advance at the end of that rune's glyph cluster.
// Runes merged into one cluster (ligatures) report the same position; runes
// past the shaped output repeat the final position.
func (ly *Layout) ClusterPositions(n int) []float32 {
	pos := make([]float32, n)
	var x float32
	filled := 0
	for i := 0; i < len(ly.Glyphs); {
		c := ly.Glyphs[i].Cluster
		j := i
		for j < len(ly.Glyphs) && ly.Glyphs[j].Cluster == c {
			x += ly.Glyphs[j].XAdvance
			j++
		}
		next := n
		if j < len(ly.Glyphs) && ly.Glyphs[j].Cluster < n {
			next = ly.Glyphs[j].Cluster
		}
		for filled < next {
			pos[filled] = x
			filled++
		}
		i = j
	}
	for ; filled < n; filled++ {
		pos[filled] = x
	}
	return pos
}

// Metrics reports the line metrics of the face req resolves to: ascent and
// descent as positive distances from the baseline, and the recommended
// extra gap between lines. ok is false when no face resolves.
func (sh *Shaper) Metrics(req Request) (ascent, descent, gap float32, ok bool) {
	sh.fontMap.SetQuery(sh.query(req))
	in := shaping.Input{
		Text:      []rune{'X'},
		RunStart:  0,
		RunEnd:    1,
		Direction: di.DirectionLTR,
		Size:      toFixed(req.Size),
		Script:    language.LookupScript('X'),
		Language:  language.DefaultLanguage(),
	}
	runs := sh.splitter.Split(in, sh.fontMap)
	if len(runs) == 0 || runs[0].Face == nil {
		return 0, 0, 0, false
	}
	out := sh.shaper.Shape(runs[0])
	// go-text descent is negative below the baseline.
	return fromFixed(out.LineBounds.Ascent), -fromFixed(out.LineBounds.Descent), fromFixed(out.LineBounds.Gap), true
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
