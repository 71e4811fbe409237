// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textenc is the text-encoding collaborator of the platform layer.
// Text reaches a drawing surface as raw bytes in either UTF-8 (Unicode mode)
// or a legacy single- or double-byte code page, and callers index results by
// byte. This package splits such byte strings into per-glyph clusters and
// transcodes them to runes using golang.org/x/text decoders.
package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// CodePage identifies a legacy character encoding, using the conventional
// Windows code page numbers that the editing engine passes through.
// The zero value is the default single-byte code page.
type CodePage int

const (
	// Default is the single-byte fallback code page (Latin-1 equivalent).
	Default CodePage = 0

	ShiftJIS   CodePage = 932
	GBK        CodePage = 936
	Hangul     CodePage = 949
	Big5       CodePage = 950
	Latin2     CodePage = 1250
	Cyrillic   CodePage = 1251
	Latin1     CodePage = 1252
	Greek      CodePage = 1253
	Turkish    CodePage = 1254
	Hebrew     CodePage = 1255
	Arabic     CodePage = 1256
	Baltic     CodePage = 1257
	Vietnamese CodePage = 1258
)

// DBCS reports whether the code page is a double-byte encoding.
func (cp CodePage) DBCS() bool {
	switch cp {
	case ShiftJIS, GBK, Hangul, Big5:
		return true
	}
	return false
}

// IsLeadByte reports whether b starts a two-byte sequence in cp.
// It is false for every byte of a non-DBCS code page.
func (cp CodePage) IsLeadByte(b byte) bool {
	switch cp {
	case ShiftJIS:
		return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
	case GBK, Hangul, Big5:
		return b >= 0x81 && b <= 0xFE
	}
	return false
}

// dbcsEncoding returns the x/text encoding for a double-byte code page.
func (cp CodePage) dbcsEncoding() encoding.Encoding {
	switch cp {
	case ShiftJIS:
		return japanese.ShiftJIS
	case GBK:
		return simplifiedchinese.GBK
	case Hangul:
		return korean.EUCKR
	case Big5:
		return traditionalchinese.Big5
	}
	return nil
}

// charmapFor returns the single-byte table for cp. Unsupported code pages
// fall back to Windows-1252, the Latin-1-equivalent safe default.
func charmapFor(cp CodePage) *charmap.Charmap {
	switch cp {
	case Latin2:
		return charmap.Windows1250
	case Cyrillic:
		return charmap.Windows1251
	case Greek:
		return charmap.Windows1253
	case Turkish:
		return charmap.Windows1254
	case Hebrew:
		return charmap.Windows1255
	case Arabic:
		return charmap.Windows1256
	case Baltic:
		return charmap.Windows1257
	case Vietnamese:
		return charmap.Windows1258
	}
	return charmap.Windows1252
}

// Decode splits text into glyph clusters, returning one rune per cluster
// and, in parallel, the number of bytes each cluster consumed. In Unicode
// mode text is treated as UTF-8, with invalid bytes forming one-byte
// clusters; otherwise cp selects the legacy decoding, with DBCS lead/trail
// pairs forming two-byte clusters. The sums of the returned sizes always
// equal len(text).
func Decode(text []byte, unicode bool, cp CodePage) (runes []rune, sizes []int) {
	if len(text) == 0 {
		return nil, nil
	}
	runes = make([]rune, 0, len(text))
	sizes = make([]int, 0, len(text))

	if unicode {
		for i := 0; i < len(text); {
			r, n := utf8.DecodeRune(text[i:])
			runes = append(runes, r)
			sizes = append(sizes, n)
			i += n
		}
		return runes, sizes
	}

	if cp.DBCS() {
		dec := cp.dbcsEncoding().NewDecoder()
		for i := 0; i < len(text); {
			n := 1
			if cp.IsLeadByte(text[i]) && i+1 < len(text) {
				n = 2
			}
			r := utf8.RuneError
			if out, err := dec.Bytes(text[i : i+n]); err == nil && len(out) > 0 {
				r, _ = utf8.DecodeRune(out)
			}
			runes = append(runes, r)
			sizes = append(sizes, n)
			i += n
		}
		return runes, sizes
	}

	cm := charmapFor(cp)
	for _, b := range text {
		runes = append(runes, cm.DecodeByte(b))
		sizes = append(sizes, 1)
	}
	return runes, sizes
}

// String transcodes text to a Go string under the same rules as [Decode].
func String(text []byte, unicode bool, cp CodePage) string {
	if unicode {
		return string(text)
	}
	runes, _ := Decode(text, unicode, cp)
	return string(runes)
}
