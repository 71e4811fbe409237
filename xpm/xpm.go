// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xpm decodes the textual run-length pixmap format used to register
// icons with popup lists. It handles the single-character-per-pixel subset
// of XPM: a header line, a colour table mapping one character to either a
// "#RRGGBB" colour or "None" for transparency, and one row of characters
// per pixel row. Input may be either the raw lines or a C source fragment
// with quoted strings.
package xpm

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// ErrFormat is returned when the input is not a decodable pixmap.
var ErrFormat = errors.New("xpm: invalid format")

// Decode parses pixmap source text into an RGBA image.
func Decode(data string) (*image.RGBA, error) {
	lines := splitLines(data)
	if len(lines) == 0 {
		return nil, ErrFormat
	}

	var width, height, nColours, charsPerPixel int
	n, err := fmt.Sscanf(lines[0], "%d %d %d %d", &width, &height, &nColours, &charsPerPixel)
	if err != nil || n != 4 {
		return nil, fmt.Errorf("%w: bad header %q", ErrFormat, lines[0])
	}
	if charsPerPixel != 1 {
		return nil, fmt.Errorf("%w: %d chars per pixel not supported", ErrFormat, charsPerPixel)
	}
	if width <= 0 || height <= 0 || nColours <= 0 || len(lines) < 1+nColours+height {
		return nil, fmt.Errorf("%w: truncated pixmap", ErrFormat)
	}

	colours := make(map[byte]color.RGBA, nColours)
	for _, ln := range lines[1 : 1+nColours] {
		if len(ln) < 1 {
			return nil, fmt.Errorf("%w: empty colour entry", ErrFormat)
		}
		code := ln[0]
		c, err := parseColour(ln[1:])
		if err != nil {
			return nil, err
		}
		colours[code] = c
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, ln := range lines[1+nColours : 1+nColours+height] {
		if len(ln) < width {
			return nil, fmt.Errorf("%w: pixel row %d too short", ErrFormat, y)
		}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, colours[ln[x]])
		}
	}
	return img, nil
}

// splitLines returns the logical pixmap lines. A C source fragment is
// reduced to its quoted strings; otherwise input splits on newlines.
func splitLines(data string) []string {
	if strings.ContainsRune(data, '"') {
		var lines []string
		for {
			start := strings.IndexByte(data, '"')
			if start < 0 {
				break
			}
			data = data[start+1:]
			end := strings.IndexByte(data, '"')
			if end < 0 {
				break
			}
			lines = append(lines, data[:end])
			data = data[end+1:]
		}
		return lines
	}
	var lines []string
	for _, ln := range strings.Split(data, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// parseColour extracts the value of the "c" key from a colour entry body.
func parseColour(body string) (color.RGBA, error) {
	fields := strings.Fields(body)
	for i := 0; i+1 < len(fields); i++ {
		if fields[i] != "c" {
			continue
		}
		val := fields[i+1]
		if strings.EqualFold(val, "None") {
			return color.RGBA{}, nil
		}
		if len(val) == 7 && val[0] == '#' {
			rgb, err := strconv.ParseUint(val[1:], 16, 32)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%w: colour %q", ErrFormat, val)
			}
			return color.RGBA{
				R: uint8(rgb >> 16),
				G: uint8(rgb >> 8),
				B: uint8(rgb),
				A: 0xFF,
			}, nil
		}
		return color.RGBA{}, fmt.Errorf("%w: colour %q", ErrFormat, val)
	}
	return color.RGBA{}, fmt.Errorf("%w: colour entry %q has no c key", ErrFormat, body)
}
