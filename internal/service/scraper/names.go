package scraper

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// namePattern matches one capitalised word (Polish capitals allowed) followed
// by up to three more capitalised words. Words are separated by horizontal
// whitespace only, so names never span lines. regexp2 gives \b Unicode word
// semantics, so "Łukasz" starts a match and "Kowalska2" does not end one.
var namePattern = regexp2.MustCompile(
	`\b[A-ZŁŚĆŹŻ][a-ząćęłńóśźż]+(?:[ \t\u00a0][A-Z][a-ząćęłńóśźż]+){0,3}\b`,
	regexp2.None,
)

// nameDenylist holds capitalised terms that match the name pattern but are
// never person names. Compared against the whole match.
var nameDenylist = map[string]struct{}{
	"Schedule":       {},
	"Jury":           {},
	"Prizes":         {},
	"Repertoire":     {},
	"International":  {},
	"Ignacy":         {},
	"Paderewski":     {},
	"Konkurs":        {},
	"Międzynarodowy": {},
}

// ExtractNames returns full-name candidates found in text, in first-seen
// order and without duplicates. Matches with fewer than two words or equal
// to a denylisted term are dropped.
func ExtractNames(text string) []string {
	names := make([]string, 0)
	seen := make(map[string]struct{})

	m, err := namePattern.FindStringMatch(text)
	for err == nil && m != nil {
		candidate := m.String()
		if keepName(candidate) {
			if _, dup := seen[candidate]; !dup {
				seen[candidate] = struct{}{}
				names = append(names, candidate)
			}
		}
		m, err = namePattern.FindNextMatch(m)
	}

	return names
}

func keepName(candidate string) bool {
	if _, denied := nameDenylist[candidate]; denied {
		return false
	}
	return len(strings.Fields(candidate)) >= 2
}
