// Copyright (c) 2026, The scintilla-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textenc

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDecodeUTF8(t *testing.T) {
	runes, sizes := Decode([]byte("a世b"), true, 0)
	assert.Equal(t, []rune{'a', '世', 'b'}, runes)
	assert.Equal(t, []int{1, 3, 1}, sizes)
}

func TestDecodeUTF8Invalid(t *testing.T) {
	// A bare continuation byte forms its own one-byte cluster.
	runes, sizes := Decode([]byte{'a', 0x80, 'b'}, true, 0)
	assert.Equal(t, []rune{'a', utf8.RuneError, 'b'}, runes)
	assert.Equal(t, []int{1, 1, 1}, sizes)
}

func TestDecodeShiftJIS(t *testing.T) {
	// 0x82 0xA0 is HIRAGANA LETTER A in Shift JIS.
	runes, sizes := Decode([]byte{'x', 0x82, 0xA0, 'y'}, false, ShiftJIS)
	assert.Equal(t, []rune{'x', 'あ', 'y'}, runes)
	assert.Equal(t, []int{1, 2, 1}, sizes)
}

func TestDecodeTrailingLeadByte(t *testing.T) {
	// A lead byte with no trail byte degrades to a one-byte cluster.
	_, sizes := Decode([]byte{0x82}, false, ShiftJIS)
	assert.Equal(t, []int{1}, sizes)
}

func TestDecodeSingleByte(t *testing.T) {
	// 0xE9 is é in Windows-1252.
	runes, sizes := Decode([]byte{0xE9}, false, Default)
	assert.Equal(t, []rune{'é'}, runes)
	assert.Equal(t, []int{1}, sizes)
}

func TestDecodeCyrillic(t *testing.T) {
	// 0xC0 is А (CYRILLIC CAPITAL A) in Windows-1251.
	runes, _ := Decode([]byte{0xC0}, false, Cyrillic)
	assert.Equal(t, []rune{'А'}, runes)
}

func TestUnsupportedFallsBackToLatin(t *testing.T) {
	runes, _ := Decode([]byte{0xE9}, false, CodePage(42))
	assert.Equal(t, []rune{'é'}, runes)
}

func TestIsLeadByte(t *testing.T) {
	assert.True(t, ShiftJIS.IsLeadByte(0x81))
	assert.True(t, ShiftJIS.IsLeadByte(0xE0))
	assert.False(t, ShiftJIS.IsLeadByte(0xA0))
	assert.True(t, GBK.IsLeadByte(0xFE))
	assert.False(t, Latin1.IsLeadByte(0x81))
}

func TestSizesSumToLength(t *testing.T) {
	inputs := [][]byte{
		[]byte("plain ascii"),
		[]byte("mixé世\U0001F600"),
		{0x82, 0xA0, 0x82},
	}
	for _, in := range inputs {
		_, sizes := Decode(in, true, 0)
		total := 0
		for _, n := range sizes {
			total += n
		}
		assert.Equal(t, len(in), total)
	}
}
