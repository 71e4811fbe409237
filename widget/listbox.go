// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widget implements the popup widgets of the platform contract on
// the reference backend: a floating autocompletion list and a popup menu,
// both composed from headless windows and raster surfaces. Input arrives
// through explicit host entry points; event routing belongs to the host.
package widget

import (
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amezin/scintilla/geom"
	"github.com/amezin/scintilla/headless"
	"github.com/amezin/scintilla/platform"
	"github.com/amezin/scintilla/raster"
	"github.com/amezin/scintilla/xpm"
)

// Paddings around row content, in pixels.
var (
	textInset  = geom.Pt(2, 0)
	imageInset = geom.Pt(1, 0)
	itemInset  = geom.Pt(0, 0)
)

const (
	scrollBarWidth = 16
	frameWidth     = 1

	defaultVisibleRows = 5
	defaultAveWidth    = 8
)

var (
	rowBackground      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	rowText            = color.RGBA{A: 0xFF}
	selectedBackground = color.RGBA{R: 0xC0, G: 0xD4, B: 0xF0, A: 0xFF}
)

type row struct {
	text string
	typ  int
}

type icon struct {
	width, height int
	pixels        []byte // non-premultiplied RGBA, rows top-to-bottom
}

// ListBox is the floating autocompletion list. Rows carry UTF-8 text and a
// type tag selecting a registered icon; selection notifications go to the
// delegate injected at construction.
type ListBox struct {
	screen   *headless.Screen
	delegate platform.ListBoxDelegate

	win     *headless.Window
	measure *raster.Surface

	font         platform.Font
	lineHeight   int
	unicode      bool
	aveCharWidth int
	visibleRows  int
	ctrlID       int

	rows      []row
	widest    int // index of the row with the most characters
	maxChars  int
	selection int
	top       int // first visible row

	icons map[int]icon
}

var _ platform.ListBox = (*ListBox)(nil)

// NewListBox returns a list on screen notifying delegate. A nil delegate
// drops notifications.
func NewListBox(screen *headless.Screen, delegate platform.ListBoxDelegate) *ListBox {
	return &ListBox{
		screen:       screen,
		delegate:     delegate,
		visibleRows:  defaultVisibleRows,
		aveCharWidth: defaultAveWidth,
		selection:    platform.NotFound,
		icons:        make(map[int]icon),
	}
}

// Create builds the list's floating window near location. lineHeight is
// the row text height; unicode selects the text mode.
func (lb *ListBox) Create(parent platform.Window, ctrlID int, location geom.Point, lineHeight int, unicode bool) {
	lb.ctrlID = ctrlID
	lb.lineHeight = lineHeight
	lb.unicode = unicode

	lb.win = lb.screen.NewWindow(headless.TopLevel, nil)
	lb.win.SetPosition(geom.NewRect(location.X, location.Y,
		location.X+float32(lb.minClientWidth()), location.Y+float32(lb.itemHeight())))

	lb.measure = raster.New()
	lb.measure.Init()
	lb.measure.SetUnicodeMode(unicode)
}

// Window returns the list's floating window.
func (lb *ListBox) Window() platform.Window {
	if lb.win == nil {
		return nil
	}
	return lb.win
}

// SetFont sets the font rows are measured and drawn with.
func (lb *ListBox) SetFont(font platform.Font) {
	lb.font = font
}

// SetAverageCharWidth supplies the engine's average character width for
// width heuristics.
func (lb *ListBox) SetAverageCharWidth(width int) {
	if width > 0 {
		lb.aveCharWidth = width
	}
}

// SetVisibleRows sets the desired number of rows shown at once.
func (lb *ListBox) SetVisibleRows(rows int) {
	if rows > 0 {
		lb.visibleRows = rows
	}
}

// GetVisibleRows returns the desired visible row count.
func (lb *ListBox) GetVisibleRows() int {
	return lb.visibleRows
}

// itemHeight is the row pitch: the text height plus vertical insets, grown
// to fit the tallest registered icon.
func (lb *ListBox) itemHeight() int {
	h := lb.lineHeight + 2*int(textInset.Y)
	if ih := lb.iconHeight() + 2*int(imageInset.Y); h < ih {
		h = ih
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (lb *ListBox) iconWidth() int {
	w := 0
	for _, ic := range lb.icons {
		if ic.width > w {
			w = ic.width
		}
	}
	return w
}

func (lb *ListBox) iconHeight() int {
	h := 0
	for _, ic := range lb.icons {
		if ic.height > h {
			h = ic.height
		}
	}
	return h
}

// textOffset is the distance from the row's left edge to where text
// starts: the icon column when any icon is registered.
func (lb *ListBox) textOffset() int {
	w := lb.iconWidth()
	if w == 0 {
		return int(itemInset.X)
	}
	return int(itemInset.X) + w + 2*int(imageInset.X)
}

func (lb *ListBox) minClientWidth() int {
	return 12 * (lb.aveCharWidth + lb.aveCharWidth/3)
}

// GetDesiredRect computes the rectangle the list should occupy for its
// current contents.
func (lb *ListBox) GetDesiredRect() geom.Rect {
	rc := lb.win.GetPosition()

	rows := lb.Length()
	if rows == 0 || rows > lb.visibleRows {
		rows = lb.visibleRows
	}
	rc.Bottom = rc.Top + float32(lb.itemHeight()*rows)

	width := lb.minClientWidth()
	if lb.maxChars > 0 {
		text := []byte(lb.rows[lb.widest].text)
		measured := int(lb.measure.WidthText(lb.font, text))
		if byChars := (lb.maxChars + 1) * lb.aveCharWidth; measured < byChars {
			measured = byChars
		}
		if width < measured {
			width = measured
		}
	}
	rc.Right = rc.Left + float32(lb.textOffset()+width+2*int(textInset.X))
	if lb.Length() > rows {
		rc.Right += scrollBarWidth
	}
	return rc.Inset(-frameWidth)
}

// CaretFromEdge returns the distance from the list's left edge to where
// the caret aligns with row text.
func (lb *ListBox) CaretFromEdge() int {
	return lb.textOffset() + int(textInset.X) + frameWidth - 1
}

// Clear removes all rows.
func (lb *ListBox) Clear() {
	lb.rows = nil
	lb.widest = 0
	lb.maxChars = 0
	lb.selection = platform.NotFound
	lb.top = 0
}

// Append adds one row, updating the widest-row bookkeeping.
func (lb *ListBox) Append(text string, typ int) {
	lb.rows = append(lb.rows, row{text: text, typ: typ})
	if n := len(text); n > lb.maxChars {
		lb.maxChars = n
		lb.widest = len(lb.rows) - 1
	}
}

// SetList replaces all rows by splitting text at itemSeparator. A row may
// carry a trailing typeSeparator-prefixed integer type tag; rows without
// one default to NoIcon.
func (lb *ListBox) SetList(text string, itemSeparator, typeSeparator byte) {
	lb.Clear()
	if text == "" {
		return
	}
	for _, word := range strings.Split(text, string(itemSeparator)) {
		typ := platform.NoIcon
		if i := strings.IndexByte(word, typeSeparator); i >= 0 {
			if v, err := strconv.Atoi(word[i+1:]); err == nil {
				typ = v
			}
			word = word[:i]
		}
		lb.Append(word, typ)
	}
	lb.win.InvalidateAll()
}

// Length returns the row count.
func (lb *ListBox) Length() int {
	return len(lb.rows)
}

// Select makes row n the selection and scrolls it toward the center, with
// more rows below when the visible count is even. Out-of-range n clears
// the selection.
func (lb *ListBox) Select(n int) {
	if n < 0 || n >= len(lb.rows) {
		lb.selection = platform.NotFound
		return
	}
	lb.selection = n
	lb.centreItem(n)
	lb.win.InvalidateAll()
}

func (lb *ListBox) centreItem(n int) {
	visible := int(lb.win.GetClientPosition().Height()) / lb.itemHeight()
	if visible <= 0 || visible >= len(lb.rows) {
		lb.top = 0
		return
	}
	half := (visible - 1) / 2
	if n > lb.top+half {
		lb.top = n - half
	}
	if limit := len(lb.rows) - visible; lb.top > limit {
		lb.top = limit
	}
	if lb.top < 0 || n < lb.top {
		lb.top = n
	}
}

// GetSelection returns the selected row index, or NotFound.
func (lb *ListBox) GetSelection() int {
	return lb.selection
}

// Find returns the index of the first row whose text starts with prefix,
// matching bytes case-sensitively, or NotFound.
func (lb *ListBox) Find(prefix string) int {
	for i, r := range lb.rows {
		if strings.HasPrefix(r.text, prefix) {
			return i
		}
	}
	return platform.NotFound
}

// GetValue returns the text of row n, or the empty string out of range.
func (lb *ListBox) GetValue(n int) string {
	if n < 0 || n >= len(lb.rows) {
		return ""
	}
	return lb.rows[n].text
}

// RegisterImage maps a row type tag to an icon decoded from textual
// pixmap data. Undecodable data leaves the registry unchanged.
func (lb *ListBox) RegisterImage(typ int, xpmData string) {
	img, err := xpm.Decode(xpmData)
	if err != nil {
		slog.Debug("widget: pixmap rejected", "type", typ, "err", err)
		return
	}
	b := img.Bounds()
	lb.icons[typ] = icon{width: b.Dx(), height: b.Dy(), pixels: img.Pix}
}

// RegisterRGBAImage maps a row type tag to a width×height icon of
// non-premultiplied RGBA pixels, rows top-to-bottom.
func (lb *ListBox) RegisterRGBAImage(typ, width, height int, pixels []byte) {
	if width <= 0 || height <= 0 || len(pixels) < width*height*4 {
		slog.Debug("widget: malformed icon", "type", typ, "width", width, "height", height)
		return
	}
	pix := make([]byte, width*height*4)
	copy(pix, pixels)
	lb.icons[typ] = icon{width: width, height: height, pixels: pix}
}

// ClearRegisteredImages empties the icon registry. Row type tags are kept;
// rows lose their icons until types are re-registered.
func (lb *ListBox) ClearRegisteredImages() {
	lb.icons = make(map[int]icon)
}

// rowAt maps a client-space point to a row index, or NotFound.
func (lb *ListBox) rowAt(pt geom.Point) int {
	if pt.Y < 0 {
		return platform.NotFound
	}
	n := lb.top + int(pt.Y)/lb.itemHeight()
	if n >= len(lb.rows) {
		return platform.NotFound
	}
	return n
}

// Click is the host entry point for a single click at a client-space
// point. It moves the selection and notifies the delegate.
func (lb *ListBox) Click(pt geom.Point) {
	n := lb.rowAt(pt)
	if n == platform.NotFound {
		return
	}
	lb.selection = n
	lb.win.InvalidateAll()
	if lb.delegate != nil {
		lb.delegate.OnSelectionChange()
	}
}

// DoubleClick is the host entry point for a double click. The row under
// the point becomes the selection before the notification.
func (lb *ListBox) DoubleClick(pt geom.Point) {
	n := lb.rowAt(pt)
	if n == platform.NotFound {
		return
	}
	lb.selection = n
	if lb.delegate != nil {
		lb.delegate.OnDoubleClick()
	}
}

// Paint renders the visible rows into the list window's framebuffer and
// clears its damage list. The host calls this once per frame.
func (lb *ListBox) Paint() {
	if lb.win == nil {
		return
	}
	lb.win.TakeDamage()

	s := raster.New()
	s.InitWindow(lb.win)
	if !s.Initialized() {
		return
	}
	defer s.Release()
	s.SetUnicodeMode(lb.unicode)

	client := lb.win.GetClientPosition()
	s.FillRectangle(client, rowBackground)

	pitch := lb.itemHeight()
	visible := int(client.Height())/pitch + 1
	for i := 0; i < visible; i++ {
		n := lb.top + i
		if n >= len(lb.rows) {
			break
		}
		rc := geom.NewRect(0, float32(i*pitch), client.Width(), float32((i+1)*pitch))
		lb.paintRow(s, rc, n)
	}
}

func (lb *ListBox) paintRow(s *raster.Surface, rc geom.Rect, n int) {
	back := rowBackground
	if n == lb.selection {
		back = selectedBackground
	}
	s.FillRectangle(rc, back)

	if ic, ok := lb.icons[lb.rows[n].typ]; ok {
		rcIcon := geom.NewRect(
			rc.Left+itemInset.X+imageInset.X,
			rc.Top,
			rc.Left+itemInset.X+imageInset.X+float32(ic.width),
			rc.Bottom,
		)
		s.DrawRGBAImage(rcIcon, ic.width, ic.height, ic.pixels)
	}

	rcText := geom.NewRect(
		rc.Left+float32(lb.textOffset())+textInset.X,
		rc.Top+textInset.Y,
		rc.Right-textInset.X,
		rc.Bottom-textInset.Y,
	)
	ybase := rcText.Top + s.Ascent(lb.font)
	s.DrawTextClipped(rcText, lb.font, ybase, []byte(lb.rows[n].text), rowText, back)
}

// Destroy tears down the list and its floating window.
func (lb *ListBox) Destroy() {
	if lb.measure != nil {
		lb.measure.Release()
		lb.measure = nil
	}
	if lb.win != nil {
		lb.win.Destroy()
		lb.win = nil
	}
	lb.Clear()
}
