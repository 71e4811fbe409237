// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"log/slog"

	"github.com/amezin/scintilla/geom"
	"github.com/amezin/scintilla/headless"
	"github.com/amezin/scintilla/platform"
)

type menuItem struct {
	tag       int
	label     string
	separator bool
}

// Menu is a popup context menu. Items are recorded in order; the chosen
// command's tag is dispatched to the performer injected at construction.
type Menu struct {
	screen    *headless.Screen
	performer platform.MenuPerformer

	items   []menuItem
	created bool
	win     *headless.Window
}

var _ platform.Menu = (*Menu)(nil)

// NewMenu returns a menu on screen dispatching to performer. A nil
// performer drops chosen commands.
func NewMenu(screen *headless.Screen, performer platform.MenuPerformer) *Menu {
	return &Menu{screen: screen, performer: performer}
}

// CreatePopUp builds a fresh menu container, destroying any prior
// instance first.
func (m *Menu) CreatePopUp() {
	m.Destroy()
	m.created = true
}

// AppendItem adds a command with the given tag and label. Items appended
// before CreatePopUp are dropped.
func (m *Menu) AppendItem(tag int, label string) {
	if !m.created {
		slog.Debug("widget: menu item before CreatePopUp", "tag", tag)
		return
	}
	m.items = append(m.items, menuItem{tag: tag, label: label})
}

// AppendSeparator adds a separator row.
func (m *Menu) AppendSeparator() {
	if !m.created {
		return
	}
	m.items = append(m.items, menuItem{separator: true})
}

// Show requests display at pt. Any prior showing is dismissed first; the
// menu window is placed with its top-left at pt, clamped to the usable
// area of the display.
func (m *Menu) Show(pt geom.Point, w platform.Window) {
	if !m.created {
		return
	}
	if m.win != nil {
		m.win.Destroy()
	}
	m.win = m.screen.NewWindow(headless.TopLevel, nil)
	rc := geom.NewRect(0, 0, float32(m.width()), float32(m.height()))
	rc = rc.Move(pt.X, pt.Y)
	m.win.SetPositionRelative(rc, nil)
	m.win.Show(true)
}

// Visible reports whether the menu is currently shown.
func (m *Menu) Visible() bool {
	return m.win != nil && m.win.Visible()
}

// Items returns the number of rows including separators.
func (m *Menu) Items() int {
	return len(m.items)
}

// Choose is the host entry point for picking row n. Separators and
// out-of-range rows are ignored; otherwise the menu is dismissed and the
// item's tag dispatched to the performer.
func (m *Menu) Choose(n int) {
	if n < 0 || n >= len(m.items) || m.items[n].separator {
		return
	}
	tag := m.items[n].tag
	m.dismiss()
	if m.performer != nil {
		m.performer.Perform(tag)
	}
}

// Dismiss hides the menu without choosing anything.
func (m *Menu) Dismiss() {
	m.dismiss()
}

func (m *Menu) dismiss() {
	if m.win != nil {
		m.win.Destroy()
		m.win = nil
	}
}

// Destroy releases the menu and its items.
func (m *Menu) Destroy() {
	m.dismiss()
	m.items = nil
	m.created = false
}

const (
	menuRowHeight = 19
	menuSeparator = 9
	menuCharWidth = 7
	menuMinWidth  = 60
	menuSidePad   = 20
)

func (m *Menu) height() int {
	h := 0
	for _, it := range m.items {
		if it.separator {
			h += menuSeparator
		} else {
			h += menuRowHeight
		}
	}
	if h < menuRowHeight {
		h = menuRowHeight
	}
	return h
}

func (m *Menu) width() int {
	w := menuMinWidth
	for _, it := range m.items {
		if lw := len(it.label)*menuCharWidth + menuSidePad; lw > w {
			w = lw
		}
	}
	return w
}
