// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"testing"

	"github.com/amezin/scintilla/geom"
	"github.com/amezin/scintilla/headless"
	"github.com/amezin/scintilla/platform"
	"github.com/amezin/scintilla/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDelegate struct {
	selectionChanges int
	doubleClicks     int
}

func (d *recordingDelegate) OnSelectionChange() { d.selectionChanges++ }
func (d *recordingDelegate) OnDoubleClick()     { d.doubleClicks++ }

func newTestList(t *testing.T, delegate platform.ListBoxDelegate) *ListBox {
	t.Helper()
	sc := headless.NewScreen(headless.Config{Width: 800, Height: 600})
	lb := NewListBox(sc, delegate)
	lb.Create(nil, 0, geom.Pt(100, 100), 14, true)
	lb.SetFont(raster.NewFont(platform.FontSpec{Size: 12}))
	return lb
}

func TestFind(t *testing.T) {
	lb := newTestList(t, nil)
	lb.Append("apple", platform.NoIcon)
	lb.Append("apricot", platform.NoIcon)
	lb.Append("banana", platform.NoIcon)

	assert.Equal(t, 0, lb.Find("ap"))
	assert.Equal(t, 1, lb.Find("apr"))
	assert.Equal(t, 2, lb.Find("b"))
	assert.Equal(t, platform.NotFound, lb.Find("z"))
	assert.Equal(t, 0, lb.Find(""))
}

func TestFindEmptyList(t *testing.T) {
	lb := newTestList(t, nil)
	assert.Equal(t, platform.NotFound, lb.Find(""))
}

func TestSetListParsing(t *testing.T) {
	lb := newTestList(t, nil)
	lb.SetList("foo?1 bar?2 baz", ' ', '?')

	require.Equal(t, 3, lb.Length())
	assert.Equal(t, "foo", lb.GetValue(0))
	assert.Equal(t, "bar", lb.GetValue(1))
	assert.Equal(t, "baz", lb.GetValue(2))
	assert.Equal(t, 1, lb.rows[0].typ)
	assert.Equal(t, 2, lb.rows[1].typ)
	assert.Equal(t, platform.NoIcon, lb.rows[2].typ)
}

func TestSetListEmpty(t *testing.T) {
	lb := newTestList(t, nil)
	lb.SetList("", ' ', '?')
	assert.Equal(t, 0, lb.Length())
}

func TestSetListReplacesRows(t *testing.T) {
	lb := newTestList(t, nil)
	lb.Append("old", platform.NoIcon)
	lb.SetList("a b", ' ', '?')
	assert.Equal(t, 2, lb.Length())
	assert.Equal(t, "a", lb.GetValue(0))
}

func TestGetValueOutOfRange(t *testing.T) {
	lb := newTestList(t, nil)
	lb.Append("only", platform.NoIcon)
	assert.Equal(t, "", lb.GetValue(-1))
	assert.Equal(t, "", lb.GetValue(1))
}

func TestSelection(t *testing.T) {
	lb := newTestList(t, nil)
	lb.SetList("a b c d e f g h", ' ', '?')

	assert.Equal(t, platform.NotFound, lb.GetSelection())
	lb.Select(3)
	assert.Equal(t, 3, lb.GetSelection())
	lb.Select(100)
	assert.Equal(t, platform.NotFound, lb.GetSelection())
}

func TestClearResetsWidthBookkeeping(t *testing.T) {
	lb := newTestList(t, nil)
	lb.Append("a very long completion item", platform.NoIcon)
	wide := lb.GetDesiredRect()

	lb.Clear()
	assert.Equal(t, 0, lb.Length())
	lb.Append("x", platform.NoIcon)
	narrow := lb.GetDesiredRect()
	assert.Less(t, narrow.Width(), wide.Width())
}

func TestGetDesiredRectGrowsWithContent(t *testing.T) {
	lb := newTestList(t, nil)
	lb.SetVisibleRows(4)

	lb.Append("a", platform.NoIcon)
	one := lb.GetDesiredRect()
	// One row without a scrollbar.
	assert.Equal(t, float32(lb.itemHeight()+2*frameWidth), one.Height())

	lb.SetList("a b c d e f", ' ', '?')
	many := lb.GetDesiredRect()
	// Capped at the visible row count, widened for the scrollbar.
	assert.Equal(t, float32(lb.itemHeight()*4+2*frameWidth), many.Height())
	assert.GreaterOrEqual(t, many.Width(), one.Width()+scrollBarWidth)
}

func TestGetDesiredRectEmptyUsesVisibleRows(t *testing.T) {
	lb := newTestList(t, nil)
	lb.SetVisibleRows(3)
	rc := lb.GetDesiredRect()
	assert.Equal(t, float32(lb.itemHeight()*3+2*frameWidth), rc.Height())
}

func TestCaretFromEdge(t *testing.T) {
	lb := newTestList(t, nil)
	noIcon := lb.CaretFromEdge()
	assert.Equal(t, int(textInset.X)+frameWidth-1, noIcon)

	pix := make([]byte, 8*8*4)
	lb.RegisterRGBAImage(1, 8, 8, pix)
	withIcon := lb.CaretFromEdge()
	assert.Equal(t, noIcon+8+2*int(imageInset.X), withIcon)
}

func TestRegisterImageGrowsIconColumn(t *testing.T) {
	lb := newTestList(t, nil)
	assert.Equal(t, 0, lb.iconWidth())

	const pixmap = `/* XPM */
static char *smile[] = {
"3 2 2 1",
". c #FF0000",
"  c None",
". .",
" . ",
};`
	lb.RegisterImage(7, pixmap)
	assert.Equal(t, 3, lb.iconWidth())
	assert.Equal(t, 2, lb.iconHeight())

	lb.ClearRegisteredImages()
	assert.Equal(t, 0, lb.iconWidth())
}

func TestRegisterImageRejectsGarbage(t *testing.T) {
	lb := newTestList(t, nil)
	lb.RegisterImage(1, "not a pixmap")
	assert.Equal(t, 0, lb.iconWidth())
	lb.RegisterRGBAImage(1, 4, 4, []byte{0})
	assert.Equal(t, 0, lb.iconWidth())
}

func TestClickNotifiesDelegate(t *testing.T) {
	d := &recordingDelegate{}
	lb := newTestList(t, d)
	lb.SetList("a b c", ' ', '?')
	lb.Window().SetPosition(geom.NewRect(0, 0, 100, float32(lb.itemHeight()*3)))

	lb.Click(geom.Pt(10, float32(lb.itemHeight())+1))
	assert.Equal(t, 1, lb.GetSelection())
	assert.Equal(t, 1, d.selectionChanges)

	lb.DoubleClick(geom.Pt(10, 1))
	assert.Equal(t, 0, lb.GetSelection())
	assert.Equal(t, 1, d.doubleClicks)

	// Clicks below the last row are ignored.
	lb.DoubleClick(geom.Pt(10, float32(lb.itemHeight()*5)))
	assert.Equal(t, 1, d.doubleClicks)
}

func TestSelectScrollsTowardCentre(t *testing.T) {
	lb := newTestList(t, nil)
	for i := 0; i < 20; i++ {
		lb.Append(string(rune('a'+i)), platform.NoIcon)
	}
	// Size the window to show five rows.
	lb.Window().SetPosition(geom.NewRect(0, 0, 100, float32(lb.itemHeight()*5)))

	lb.Select(10)
	assert.Equal(t, 10, lb.GetSelection())
	// Two rows above the selection remain visible.
	assert.Equal(t, 8, lb.top)

	lb.Select(0)
	assert.Equal(t, 0, lb.top)
}

func TestPaintHighlightsSelection(t *testing.T) {
	lb := newTestList(t, nil)
	lb.SetList("alpha beta gamma", ' ', '?')
	lb.Window().SetPosition(geom.NewRect(0, 0, 120, float32(lb.itemHeight()*3)))
	lb.Select(1)

	lb.Paint()
	fb := lb.win.RGBA()
	require.NotNil(t, fb)
	assert.Equal(t, rowBackground, fb.RGBAAt(60, lb.itemHeight()/2))
	assert.Equal(t, selectedBackground, fb.RGBAAt(110, lb.itemHeight()+lb.itemHeight()/2))
	assert.Empty(t, lb.win.TakeDamage())
}

func TestDestroyReleasesWindow(t *testing.T) {
	lb := newTestList(t, nil)
	lb.Append("a", platform.NoIcon)
	lb.Destroy()
	assert.Nil(t, lb.Window())
	assert.Equal(t, 0, lb.Length())
}
