package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	lo, hi := byteRange(text, start, end)
	return text[lo:hi]
}

// Insert returns text with s inserted before the grapheme at col.
// col is clamped into [0, Count(text)].
func Insert(text string, col int, s string) string {
	at, _ := byteRange(text, col, col)
	return text[:at] + s + text[at:]
}

// Delete returns text with graphemes [start, end) removed.
func Delete(text string, start, end int) string {
	if end <= start {
		return text
	}
	lo, hi := byteRange(text, start, end)
	return text[:lo] + text[hi:]
}

// byteRange maps grapheme columns [start, end) to byte offsets, clamping to
// the end of text.
func byteRange(text string, start, end int) (lo, hi int) {
	if start < 0 {
		start = 0
	}
	lo, hi = len(text), len(text)
	idx, off := 0, 0
	g := uniseg.NewGraphemes(text)
	for {
		if idx == start {
			lo = off
		}
		if idx == end {
			hi = off
			return lo, hi
		}
		if !g.Next() {
			return lo, hi
		}
		off += len(g.Str())
		idx++
	}
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
