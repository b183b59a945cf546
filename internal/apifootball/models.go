package apifootball

// Minimal API-Football v3 models, limited to the fields the pipeline reads.
// Every endpoint wraps its payload in a "response" array.

type TeamEntry struct {
	Team Team `json:"team"`
}

type Team struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Fixture struct {
	Fixture FixtureInfo  `json:"fixture"`
	League  League       `json:"league"`
	Teams   FixtureTeams `json:"teams"`
}

type FixtureInfo struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`      // RFC3339
	Timestamp int64  `json:"timestamp"` // unix seconds, UTC
}

type League struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
}

type FixtureTeams struct {
	Home FixtureTeam `json:"home"`
	Away FixtureTeam `json:"away"`
}

type FixtureTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type OddsEntry struct {
	Fixture    FixtureInfo `json:"fixture"`
	Bookmakers []Bookmaker `json:"bookmakers"`
}

type Bookmaker struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Bets []Bet  `json:"bets"`
}

type Bet struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"` // "Match Winner", "Goals Over/Under", ...
	Values []BetValue `json:"values"`
}

type BetValue struct {
	Value string `json:"value"` // "Home", "Under 2.5", "Yes", ...
	Odd   string `json:"odd"`   // decimal odd as a string
}

type teamsResponse struct {
	Response []TeamEntry `json:"response"`
}

type fixturesResponse struct {
	Response []Fixture `json:"response"`
}

type oddsResponse struct {
	Response []OddsEntry `json:"response"`
}
