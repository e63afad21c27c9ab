// Package config defines process configuration and its layered loading.
package config

// Config holds the tunables shared across quiz modes and the data source.
type Config struct {
	// DataBaseURL is the host root of the data API, without trailing slash.
	// Team files live under /api/get and quiz questions under /api/quiz.
	DataBaseURL string `koanf:"data_base_url"`

	// HTTPTimeoutSeconds bounds each squad fetch request.
	HTTPTimeoutSeconds int `koanf:"http_timeout_seconds"`

	// CacheTTLMinutes controls how long fetched squads stay fresh.
	CacheTTLMinutes int `koanf:"cache_ttl_minutes"`

	// PoolSize is the target number of players sampled per session.
	PoolSize int `koanf:"pool_size"`

	// BingoCountdown is the bingo timer in ticks (one tick per second).
	BingoCountdown int `koanf:"bingo_countdown"`

	// TriviaCountdown is the per-question trivia timer in ticks.
	TriviaCountdown int `koanf:"trivia_countdown"`

	// QuestionCount is the number of questions per quiz session.
	QuestionCount int `koanf:"question_count"`

	// Leagues maps a league slug to the team slugs fetched from it.
	Leagues map[string][]string `koanf:"leagues"`
}

// New returns the built-in defaults. The team lists mirror the squad files
// the data API actually serves per league.
func New() *Config {
	return &Config{
		DataBaseURL:        "http://localhost:8080",
		HTTPTimeoutSeconds: 10,
		CacheTTLMinutes:    5,
		PoolSize:           120,
		BingoCountdown:     60,
		TriviaCountdown:    120,
		QuestionCount:      10,
		Leagues: map[string][]string{
			"premier": {
				"afc-bournemouth", "afc-sunderland", "aston-villa",
				"brighton-amp-hove-albion", "crystal-palace", "fc-arsenal",
				"fc-brentford", "fc-burnley", "fc-chelsea", "fc-fulham",
				"fc-liverpool", "leeds-united", "leicester-city",
				"manchester-city", "manchester-united", "newcastle-united",
				"nottingham-forest", "tottenham-hotspur", "west-ham-united",
				"wolverhampton-wanderers",
			},
			"laligaes": {
				"athletic-bilbao", "atletico-madrid", "celta-vigo",
				"deportivo-alaves", "espanyol-barcelona", "fc-barcelona",
				"fc-elche", "fc-getafe", "fc-girona", "fc-sevilla",
				"levante", "osasuna", "rayo-vallecano", "rcd-mallorca",
				"real-betis", "real-madrid", "real-oviedo", "real-sociedad",
				"valencia", "villarreal",
			},
			"bundesliga": {
				"augsburgo", "bayer-leverkusen", "bayern-munich",
				"borussia-dortmund", "borussia-monchengladbach", "colonia",
				"eintracht-francfort", "friburgo", "hamburgo", "heidenheim",
				"hoffenheim", "leipzig", "mainz-05", "st-pauli",
				"stuttgart", "union-berlin", "werder-bremen", "wolfsburgo",
			},
			"seriea": {
				"ac-florenz", "ac-mailand", "ac-pisa-1909", "as-rom",
				"atalanta-bergamo", "cagliari-calcio", "como-1907", "fc-bologna",
				"fc-turin", "genua-cfc", "hellas-verona", "inter-mailand",
				"juventus-turin", "lazio-rom", "parma-calcio-1913", "ssc-napoles",
				"udinese-calcio", "us-cremonese", "us-lecce", "us-sassuolo",
			},
			"ligue1": {
				"aj-auxerre", "angers-sco", "as-mnaco", "fc-lorient",
				"fc-metz", "fc-nantes", "le-havre-ac", "losc-lille",
				"ogc-niza", "olympique-de-lyon", "olympique-de-marsella",
				"paris-fc", "pars-saint-germain-fc", "racing-club-de-estrasburgo",
				"rc-lens", "stade-brestois-29", "stade-rennais-fc", "toulouse-fc",
			},
		},
	}
}
