package models

import (
	"time"
)

// TeamQuery holds a team name as the user typed it plus the search term
// used against the odds provider. Immutable after creation.
type TeamQuery struct {
	RawName        string `json:"raw_name"`
	NormalizedName string `json:"normalized_name"`
}

// TeamForm holds per-team scoring averages. The current system has no
// historical model behind these values; they are filled with fixed placeholder
// constants at resolution time.
type TeamForm struct {
	AvgGoalsFor     float64 `json:"avg_goals_for"`
	AvgGoalsAgainst float64 `json:"avg_goals_against"`
}

// ResolvedFixture is the single upcoming match chosen for a pair of teams.
// KickoffUTC is always strictly in the future relative to resolution time.
type ResolvedFixture struct {
	FixtureID  int       `json:"fixture_id"`
	LeagueName string    `json:"league_name"`
	KickoffUTC time.Time `json:"kickoff_utc"`
	HomeTeamID int       `json:"home_team_id"`
	AwayTeamID int       `json:"away_team_id"`

	// Kickoff rendered in the fixed UTC-3 display zone.
	LocalDate string `json:"local_date"` // "02/01/2006"
	LocalTime string `json:"local_time"` // "15:04"

	HomeForm TeamForm `json:"home_form"`
	AwayForm TeamForm `json:"away_form"`
}
