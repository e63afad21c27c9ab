// Package player defines the player record shared by all quiz modes and the
// normalization helpers that turn its noisy string fields into comparable
// values.
package player

import "strings"

// Player is a single player record as supplied by the data source.
// Fields arrive as free text in several formats; use the normalization
// helpers in this package rather than comparing them directly.
type Player struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Team        string `json:"team"`

	// Age is the raw age field. Known formats: "DD/MM/YYYY (N)", a plain
	// integer string, or empty.
	Age string `json:"age"`

	PhotoURL    string `json:"photo_url,omitempty"`
	Number      string `json:"number,omitempty"`
	MarketValue string `json:"market_value,omitempty"`
}

// Valid reports whether p has enough data to be classified: non-empty name,
// nationality and team after trimming, and a parseable age.
func (p Player) Valid() bool {
	if strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Nationality) == "" ||
		strings.TrimSpace(p.Team) == "" {
		return false
	}
	_, ok := ParseAge(p.Age)
	return ok
}

// Key returns the dedup key for p. Two records with the same name and team
// are treated as the same player regardless of other fields.
func (p Player) Key() string {
	return p.Name + "\x00" + p.Team
}
