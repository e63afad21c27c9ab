// Package category defines the fixed bingo categories and classifies players
// against them.
package category

import (
	"strings"

	"github.com/futbolquiz/futbolquiz/internal/player"
)

// Kind groups categories by the player field they inspect.
type Kind string

const (
	KindNationality Kind = "nationality"
	KindTeam        Kind = "team"
	KindAge         Kind = "age"
)

// Category is a named predicate over a player. Predicates are pure: the same
// player always classifies the same way.
type Category struct {
	ID    string
	Title string
	Kind  Kind
	Match func(player.Player) bool
}

// All returns the fixed ordered category list used by the bingo board:
// six nationalities, three teams, three mutually exclusive age brackets.
// The returned slice is freshly allocated; callers may reorder it.
func All() []Category {
	return []Category{
		nationality("england", "Inglaterra", "england", "english", "inglaterra"),
		nationality("spain", "España", "spain", "espana", "espanol", "espanola"),
		nationality("france", "Francia", "france", "frances", "francais", "francia", "french"),
		nationality("germany", "Alemania", "germany", "deutschland", "alemania", "german"),
		nationality("brazil", "Brasil", "brazil", "brasil", "brazilian", "brasileiro"),
		nationality("portugal", "Portugal", "portugal", "portugues", "portuguese"),

		team("manchester-city", "Manchester City", "manchester-city", "manchester city"),
		team("real-madrid", "Real Madrid", "real-madrid", "real madrid"),
		team("barcelona", "FC Barcelona", "barcelona"),

		ageBracket("young", "Menor de 25", func(age int) bool { return age < 25 }),
		ageBracket("prime", "25-30 años", func(age int) bool { return age >= 25 && age <= 30 }),
		ageBracket("veteran", "Mayor de 30", func(age int) bool { return age > 30 }),
	}
}

// Classify returns every category in cats whose predicate matches p, in the
// order given. A player may match zero, one, or several categories at once.
func Classify(p player.Player, cats []Category) []Category {
	var matched []Category
	for _, c := range cats {
		if c.Match(p) {
			matched = append(matched, c)
		}
	}
	return matched
}

func nationality(id, title string, variants ...string) Category {
	return Category{
		ID:    id,
		Title: title,
		Kind:  KindNationality,
		Match: func(p player.Player) bool {
			return player.NationalityMatches(p, variants)
		},
	}
}

func team(id, title string, needles ...string) Category {
	return Category{
		ID:    id,
		Title: title,
		Kind:  KindTeam,
		Match: func(p player.Player) bool {
			t := strings.ToLower(p.Team)
			for _, n := range needles {
				if strings.Contains(t, n) {
					return true
				}
			}
			return false
		},
	}
}

func ageBracket(id, title string, in func(int) bool) Category {
	return Category{
		ID:    id,
		Title: title,
		Kind:  KindAge,
		Match: func(p player.Player) bool {
			age, ok := player.ParseAge(p.Age)
			return ok && in(age)
		},
	}
}
