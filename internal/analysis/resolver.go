package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/apifootball"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/models"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/storage"
)

// displayZone is the fixed zone the card renders kickoff times in.
var displayZone = time.FixedZone("BRT", -3*60*60)

// Placeholder form averages; there is no historical model behind them yet.
var (
	placeholderHomeForm = models.TeamForm{AvgGoalsFor: 1.5, AvgGoalsAgainst: 1.0}
	placeholderAwayForm = models.TeamForm{AvgGoalsFor: 1.2, AvgGoalsAgainst: 1.3}
)

// Resolver turns a pair of raw team names into a single upcoming fixture.
type Resolver struct {
	client *apifootball.Client
	cache  storage.TeamCache // optional, may be nil
	season int               // 0 = current calendar year at resolution time
	log    *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

func NewResolver(client *apifootball.Client, cache storage.TeamCache, season int, log *slog.Logger) *Resolver {
	return &Resolver{
		client: client,
		cache:  cache,
		season: season,
		log:    log,
		now:    time.Now,
	}
}

// Resolve finds the first future fixture between the two teams.
//
// Only the home side's season schedule is scanned, so a fixture the provider
// lists only under the away side's schedule is missed. Kept as-is.
func (r *Resolver) Resolve(ctx context.Context, homeRaw, awayRaw string) (*models.ResolvedFixture, error) {
	home := models.TeamQuery{RawName: homeRaw, NormalizedName: normalizeTeamName(homeRaw)}
	away := models.TeamQuery{RawName: awayRaw, NormalizedName: normalizeTeamName(awayRaw)}

	r.log.Info("Nomes traduzidos para busca",
		"home", home.NormalizedName, "away", away.NormalizedName)

	homeID, err := r.resolveTeamID(ctx, home)
	if err != nil {
		return nil, err
	}
	awayID, err := r.resolveTeamID(ctx, away)
	if err != nil {
		return nil, err
	}

	season := r.season
	if season == 0 {
		season = r.now().Year()
	}

	r.log.Info("Buscando jogos futuros do time", "team_id", homeID, "season", season)

	fixtures, err := r.client.FixturesByTeam(ctx, homeID, season)
	if err != nil {
		return nil, providerError(err)
	}

	now := r.now()
	for _, fx := range fixtures {
		// The schedule belongs to the home side; the away side may appear on
		// either end of an entry.
		if fx.Teams.Away.ID != awayID && fx.Teams.Home.ID != awayID {
			continue
		}
		kickoff := time.Unix(fx.Fixture.Timestamp, 0).UTC()
		if !kickoff.After(now) {
			continue
		}

		r.log.Info("Jogo encontrado", "fixture_id", fx.Fixture.ID, "league", fx.League.Name)

		local := kickoff.In(displayZone)
		return &models.ResolvedFixture{
			FixtureID:  fx.Fixture.ID,
			LeagueName: fx.League.Name,
			KickoffUTC: kickoff,
			HomeTeamID: homeID,
			AwayTeamID: awayID,
			LocalDate:  local.Format("02/01/2006"),
			LocalTime:  local.Format("15:04"),
			HomeForm:   placeholderHomeForm,
			AwayForm:   placeholderAwayForm,
		}, nil
	}

	return nil, &Error{
		Kind:    KindFixtureNotFound,
		Message: fmt.Sprintf("Nenhum jogo futuro encontrado entre %s e %s.", homeRaw, awayRaw),
	}
}

// resolveTeamID maps a team query to the provider's team id, consulting the
// cache first. The first search candidate wins; there is no disambiguation
// among same-name teams. Cache failures only log, they never fail a request.
func (r *Resolver) resolveTeamID(ctx context.Context, team models.TeamQuery) (int, error) {
	if r.cache != nil {
		if id, found, err := r.cache.GetTeamID(ctx, team.NormalizedName); err != nil {
			r.log.Warn("team cache lookup failed", "search", team.NormalizedName, "error", err)
		} else if found {
			return id, nil
		}
	}

	candidates, err := r.client.SearchTeams(ctx, team.NormalizedName)
	if err != nil {
		return 0, providerError(err)
	}
	if len(candidates) == 0 {
		return 0, &Error{
			Kind: KindTeamNotFound,
			Message: fmt.Sprintf("Time '%s' não encontrado na API (buscou por '%s').",
				team.RawName, team.NormalizedName),
		}
	}

	id := candidates[0].Team.ID
	if r.cache != nil {
		if err := r.cache.StoreTeamID(ctx, team.NormalizedName, id); err != nil {
			r.log.Warn("team cache store failed", "search", team.NormalizedName, "error", err)
		}
	}
	return id, nil
}
