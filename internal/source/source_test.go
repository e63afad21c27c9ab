package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/config"
)

const cityJSON = `{
  "team": "Manchester City",
  "players": [
    {"name": "Rodri", "age": "27/06/1996 (29)", "nationalities": ["Spain"], "number": "16", "photo_url": "https://img.example/rodri.jpg"},
    {"name": "Erling Haaland", "age": "25", "nationalities": ["Norway"], "photo_url": "https://img.example/haaland.jpg"}
  ]
}`

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.New()
	cfg.DataBaseURL = srv.URL
	cfg.Leagues = map[string][]string{
		"premier": {"manchester-city", "fc-arsenal"},
	}
	return New(cfg), srv
}

func TestTeamPlayersDecodesWireFormat(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/get/premier/manchester-city.json" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, cityJSON)
	}))

	ps, err := c.TeamPlayers(context.Background(), "premier", "manchester-city")
	if err != nil {
		t.Fatalf("TeamPlayers: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("got %d players, want 2", len(ps))
	}
	p := ps[0]
	if p.Name != "Rodri" || p.Team != "Manchester City" || p.Nationality != "Spain" {
		t.Fatalf("unexpected player: %+v", p)
	}
	if p.Age != "27/06/1996 (29)" {
		t.Fatalf("age kept raw, got %q", p.Age)
	}
}

func TestTeamPlayersCachesWithinTTL(t *testing.T) {
	var hits atomic.Int32
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, cityJSON)
	}))

	ctx := context.Background()
	if _, err := c.TeamPlayers(ctx, "premier", "manchester-city"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := c.TeamPlayers(ctx, "premier", "manchester-city"); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("server hit %d times, want 1 (cache miss)", got)
	}
}

func TestTeamPlayersHTTPError(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))

	_, err := c.TeamPlayers(context.Background(), "premier", "manchester-city")
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
	if fe.Status != http.StatusInternalServerError {
		t.Fatalf("Status = %d, want 500", fe.Status)
	}
}

func TestLeaguePlayersSkipsFailingTeams(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/get/premier/fc-arsenal.json" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, cityJSON)
	}))

	ps, err := c.LeaguePlayers(context.Background(), "premier")
	if err != nil {
		t.Fatalf("LeaguePlayers: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("got %d players, want 2 from the healthy team", len(ps))
	}
}

func TestLeaguePlayersAllDown(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	if _, err := c.LeaguePlayers(context.Background(), "premier"); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("err = %v, want ErrNoPlayers", err)
	}
}

func TestLeaguePlayersUnknownLeague(t *testing.T) {
	c, _ := testClient(t, http.NotFoundHandler())
	if _, err := c.LeaguePlayers(context.Background(), "eredivisie"); err == nil {
		t.Fatal("expected error for unknown league")
	}
}

func TestContextCancellationStopsCrawl(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, cityJSON)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.LeaguePlayers(ctx, "premier"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
