// Package sampler draws balanced random player pools for quiz sessions.
//
// Uniform sampling from the raw pool would starve small categories (a pool
// dominated by Premier League squads rarely yields a Portuguese player), so
// the draw is stratified: each category bucket contributes up to an equal
// share before the remainder is filled at random.
package sampler

import (
	"errors"
	"math/rand"

	"github.com/futbolquiz/futbolquiz/internal/category"
	"github.com/futbolquiz/futbolquiz/internal/player"
)

// ErrEmptyPool means the raw pool contained no valid players. Fatal for the
// current load; callers should request a fresh pool from the data source.
var ErrEmptyPool = errors.New("sampler: no valid players in pool")

// Sample draws up to targetSize valid players from pool, balanced across
// cats. Players are deduplicated by name+team. The rng is injected so
// shuffle order is reproducible in tests.
//
// A category whose bucket is empty simply goes unrepresented; that is a
// property of the pool, not an error.
func Sample(pool []player.Player, targetSize int, cats []category.Category, rng *rand.Rand) ([]player.Player, error) {
	valid := make([]player.Player, 0, len(pool))
	for _, p := range pool {
		if p.Valid() {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return nil, ErrEmptyPool
	}
	if targetSize <= 0 {
		return []player.Player{}, nil
	}

	// Bucket each player under the first category it matches.
	buckets := make([][]player.Player, len(cats))
	for _, p := range valid {
		for i, c := range cats {
			if c.Match(p) {
				buckets[i] = append(buckets[i], p)
				break
			}
		}
	}

	selected := make([]player.Player, 0, targetSize)
	seen := make(map[string]bool, targetSize)
	take := func(p player.Player) bool {
		if seen[p.Key()] {
			return false
		}
		seen[p.Key()] = true
		selected = append(selected, p)
		return true
	}

	perCategory := 0
	if len(cats) > 0 {
		perCategory = targetSize / len(cats)
	}

	for _, bucket := range buckets {
		if len(bucket) == 0 || len(selected) >= targetSize {
			continue
		}
		shuffle(bucket, rng)
		taken := 0
		for _, p := range bucket {
			if taken >= perCategory || len(selected) >= targetSize {
				break
			}
			if take(p) {
				taken++
			}
		}
	}

	// Top up from the unselected remainder.
	if len(selected) < targetSize {
		remainder := make([]player.Player, 0, len(valid))
		for _, p := range valid {
			if !seen[p.Key()] {
				remainder = append(remainder, p)
			}
		}
		shuffle(remainder, rng)
		for _, p := range remainder {
			if len(selected) >= targetSize {
				break
			}
			take(p)
		}
	}

	shuffle(selected, rng)
	return selected, nil
}

func shuffle(ps []player.Player, rng *rand.Rand) {
	rng.Shuffle(len(ps), func(i, j int) {
		ps[i], ps[j] = ps[j], ps[i]
	})
}
