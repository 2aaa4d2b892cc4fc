package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// polishASCII maps Polish diacritics onto their plain Latin letters.
var polishASCII = map[rune]rune{
	'ą': 'a', 'ć': 'c', 'ę': 'e', 'ł': 'l', 'ń': 'n', 'ó': 'o', 'ś': 's', 'ź': 'z', 'ż': 'z',
	'Ą': 'A', 'Ć': 'C', 'Ę': 'E', 'Ł': 'L', 'Ń': 'N', 'Ó': 'O', 'Ś': 'S', 'Ź': 'Z', 'Ż': 'Z',
}

// NormalizeText converts text to NFC. With asciiFallback set, Polish
// diacritics are additionally replaced by ASCII letters; other characters
// are left alone.
func NormalizeText(text string, asciiFallback bool) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)
	if !asciiFallback {
		return text
	}

	return strings.Map(func(r rune) rune {
		if mapped, ok := polishASCII[r]; ok {
			return mapped
		}
		return r
	}, text)
}

// TruncateString truncates a string to maxRunes characters (rune-based, not byte-based)
// If truncated, appends "..." to the result
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// Prefix returns at most maxRunes leading runes of s without any marker.
func Prefix(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}

// ContainsAny reports whether s contains any of the given substrings.
func ContainsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
