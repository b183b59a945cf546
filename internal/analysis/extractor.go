package analysis

import (
	"context"
	"strconv"

	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/apifootball"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/models"
)

// Bet group names as the provider labels them.
const (
	betMatchWinner = "Match Winner"
	betOverUnder   = "Goals Over/Under"
	betBTTS        = "Both Teams To Score"
)

// Extractor pulls the fixed set of markets out of the provider's odds
// payload for one bookmaker.
type Extractor struct {
	client      *apifootball.Client
	bookmakerID int
}

func NewExtractor(client *apifootball.Client, bookmakerID int) *Extractor {
	return &Extractor{client: client, bookmakerID: bookmakerID}
}

// Extract fetches odds for a fixture and flattens the recognized bet groups
// into an OddsSet. Unrecognized or missing groups leave their keys absent;
// outcomes are matched by value label, never by position.
func (e *Extractor) Extract(ctx context.Context, fixtureID int) (models.OddsSet, error) {
	entries, err := e.client.OddsByFixture(ctx, fixtureID, e.bookmakerID)
	if err != nil {
		return nil, providerError(err)
	}
	if len(entries) == 0 || len(entries[0].Bookmakers) == 0 {
		return nil, &Error{
			Kind:    KindOddsUnavailable,
			Message: "Odds não disponíveis para este jogo.",
		}
	}

	odds := models.OddsSet{}
	for _, bet := range entries[0].Bookmakers[0].Bets {
		switch bet.Name {
		case betMatchWinner:
			setFromLabel(odds, bet, "Home", models.OutcomeHome)
			setFromLabel(odds, bet, "Draw", models.OutcomeDraw)
			setFromLabel(odds, bet, "Away", models.OutcomeAway)
		case betOverUnder:
			setFromLabel(odds, bet, "Under 2.5", models.OutcomeUnder)
			setFromLabel(odds, bet, "Over 2.5", models.OutcomeOver)
		case betBTTS:
			setFromLabel(odds, bet, "Yes", models.OutcomeBTTSYes)
			setFromLabel(odds, bet, "No", models.OutcomeBTTSNo)
		}
	}
	return odds, nil
}

// setFromLabel stores the odd whose value label matches, skipping absent
// labels and unparsable odd strings so the key stays absent.
func setFromLabel(odds models.OddsSet, bet apifootball.Bet, label string, key models.OutcomeKey) {
	for _, v := range bet.Values {
		if v.Value != label {
			continue
		}
		if odd, err := strconv.ParseFloat(v.Odd, 64); err == nil {
			odds[key] = odd
		}
		return
	}
}
