package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		ascii bool
		want  string
	}{
		{"empty", "", true, ""},
		{"keeps diacritics", "Łódź", false, "Łódź"},
		{"ascii fallback", "Łódź Żółć", true, "Lodz Zolc"},
		{"composes decomposed", "Z\u0301", false, "Ź"},
		{"composes then maps", "z\u0307ona", true, "zona"},
		{"other runes untouched", "Müller – Straße", true, "Müller – Straße"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in, tt.ascii))
		})
	}
}

func TestNormalizeTextASCIIOutputIsPlain(t *testing.T) {
	out := NormalizeText("ąćęłńóśźż ĄĆĘŁŃÓŚŹŻ", true)
	assert.Equal(t, "acelnoszz ACELNOSZZ", out)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", TruncateString("abc", 5))
	assert.Equal(t, "ąb...", TruncateString("ąbcd", 2))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "", Prefix("abc", 0))
	assert.Equal(t, "Łó", Prefix("Łódź", 2))
	assert.Equal(t, "ab", Prefix("ab", 10))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("pokaż wideo", []string{"youtube", "wideo"}))
	assert.False(t, ContainsAny("jury", []string{"", "wideo"}))
}
