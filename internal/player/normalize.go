package player

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and drops the combining marks,
// so "España" and "Espana" compare equal after folding.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ParseAge extracts the age from a raw age string. It tries, in order:
// a number inside parentheses ("06/02/1995 (30)" → 30), the whole trimmed
// string as an integer, and finally the first run of digits anywhere in the
// string. Returns false if no digits exist.
func ParseAge(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if open := strings.IndexByte(s, '('); open >= 0 {
		if close := strings.IndexByte(s[open:], ')'); close > 0 {
			if n, err := strconv.Atoi(strings.TrimSpace(s[open+1 : open+close])); err == nil {
				return n, true
			}
		}
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	// Fall back to the first digit run.
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	if start >= 0 {
		if n, err := strconv.Atoi(s[start:]); err == nil {
			return n, true
		}
	}
	return 0, false
}

// NormalizeNationality lowercases, strips diacritics, and trims a raw
// nationality string. Empty input normalizes to the empty string.
func NormalizeNationality(raw string) string {
	folded, _, err := transform.String(stripMarks, strings.ToLower(raw))
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the
		// lowercased input so matching degrades instead of breaking.
		folded = strings.ToLower(raw)
	}
	return strings.TrimSpace(folded)
}

// NationalityMatches reports whether the player's normalized nationality
// contains any of the given variants as a substring. Containment rather than
// equality is deliberate: compound nationality strings ("french-algerian")
// still match their base variant.
func NationalityMatches(p Player, variants []string) bool {
	n := NormalizeNationality(p.Nationality)
	if n == "" {
		return false
	}
	for _, v := range variants {
		if strings.Contains(n, v) {
			return true
		}
	}
	return false
}

// NormalizeFreeText canonicalizes a free-text guess for answer matching:
// lowercase, diacritics stripped, and everything outside [a-z0-9 whitespace]
// removed, then trimmed. Punctuation and accents never cause a false
// negative.
func NormalizeFreeText(raw string) string {
	folded, _, err := transform.String(stripMarks, strings.ToLower(raw))
	if err != nil {
		folded = strings.ToLower(raw)
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
