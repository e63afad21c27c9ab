// Package source fetches squad data from the public team JSON API and keeps
// a short-lived in-memory cache of the responses.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/futbolquiz/futbolquiz/internal/config"
	"github.com/futbolquiz/futbolquiz/internal/player"
)

// ErrNoPlayers is returned when every team fetch failed or yielded nothing.
var ErrNoPlayers = errors.New("source: no players could be loaded")

// FetchError describes a failed team fetch.
type FetchError struct {
	League string
	Team   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s/%s: http %d", e.League, e.Team, e.Status)
	}
	return fmt.Sprintf("fetch %s/%s: %v", e.League, e.Team, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// quickSet is the reduced team selection used to seed a session pool without
// crawling every league.
var quickSet = []struct {
	league string
	teams  []string
}{
	{"premier", []string{"manchester-city", "fc-arsenal", "fc-liverpool", "fc-chelsea"}},
	{"laligaes", []string{"real-madrid", "fc-barcelona", "atletico-madrid"}},
	{"bundesliga", []string{"bayern-munich", "borussia-dortmund", "bayer-leverkusen"}},
	{"seriea", []string{"juventus-turin", "ac-mailand", "inter-mailand"}},
	{"ligue1", []string{"pars-saint-germain-fc", "olympique-de-marsella"}},
}

type cacheEntry struct {
	players []player.Player
	at      time.Time
}

// Client fetches and caches team squads.
type Client struct {
	httpc   *http.Client
	baseURL string
	ttl     time.Duration
	leagues map[string][]string

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// New builds a Client from cfg.
func New(cfg *config.Config) *Client {
	return &Client{
		httpc:   &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second},
		baseURL: strings.TrimRight(cfg.DataBaseURL, "/"),
		ttl:     time.Duration(cfg.CacheTTLMinutes) * time.Minute,
		leagues: cfg.Leagues,
		cache:   make(map[string]cacheEntry),
	}
}

// wire format of a team file: {"team": "...", "players": [...]}.
type teamResponse struct {
	Team    string       `json:"team"`
	Players []wirePlayer `json:"players"`
}

type wirePlayer struct {
	Name          string   `json:"name"`
	Number        string   `json:"number"`
	Age           string   `json:"age"`
	Nationalities []string `json:"nationalities"`
	MarketValue   string   `json:"market_value"`
	PhotoURL      string   `json:"photo_url"`
}

// TeamPlayers returns the squad of one team, served from cache when fresh.
func (c *Client) TeamPlayers(ctx context.Context, league, team string) ([]player.Player, error) {
	key := league + "/" + team

	c.mu.Lock()
	if e, ok := c.cache[key]; ok && time.Since(e.at) < c.ttl {
		c.mu.Unlock()
		return e.players, nil
	}
	c.mu.Unlock()

	url := fmt.Sprintf("%s/api/get/%s/%s.json", c.baseURL, league, team)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{League: league, Team: team, Err: err}
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &FetchError{League: league, Team: team, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{League: league, Team: team, Status: resp.StatusCode}
	}

	var tr teamResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, &FetchError{League: league, Team: team, Err: err}
	}

	players := make([]player.Player, 0, len(tr.Players))
	for _, wp := range tr.Players {
		nat := ""
		if len(wp.Nationalities) > 0 {
			nat = wp.Nationalities[0]
		}
		players = append(players, player.Player{
			Name:        wp.Name,
			Nationality: nat,
			Team:        tr.Team,
			Age:         wp.Age,
			PhotoURL:    wp.PhotoURL,
			Number:      wp.Number,
			MarketValue: wp.MarketValue,
		})
	}

	c.mu.Lock()
	c.cache[key] = cacheEntry{players: players, at: time.Now()}
	c.mu.Unlock()
	return players, nil
}

// LeaguePlayers returns all players of one league. Failing teams are skipped
// so a single bad file does not sink the whole league.
func (c *Client) LeaguePlayers(ctx context.Context, league string) ([]player.Player, error) {
	teams, ok := c.leagues[league]
	if !ok {
		return nil, fmt.Errorf("source: unknown league %q", league)
	}
	var all []player.Player
	for _, team := range teams {
		ps, err := c.TeamPlayers(ctx, league, team)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		all = append(all, ps...)
	}
	if len(all) == 0 {
		return nil, ErrNoPlayers
	}
	return all, nil
}

// AllPlayers returns players from every configured league.
func (c *Client) AllPlayers(ctx context.Context) ([]player.Player, error) {
	var all []player.Player
	for league := range c.leagues {
		ps, err := c.LeaguePlayers(ctx, league)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		all = append(all, ps...)
	}
	if len(all) == 0 {
		return nil, ErrNoPlayers
	}
	return all, nil
}

// QuickPool fetches the reduced team set, enough to seed a session without
// crawling every configured squad.
func (c *Client) QuickPool(ctx context.Context) ([]player.Player, error) {
	var all []player.Player
	for _, sel := range quickSet {
		for _, team := range sel.teams {
			ps, err := c.TeamPlayers(ctx, sel.league, team)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				continue
			}
			all = append(all, ps...)
		}
	}
	if len(all) == 0 {
		return nil, ErrNoPlayers
	}
	return all, nil
}
