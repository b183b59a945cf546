package analysis

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/apifootball"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/models"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/stats"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/storage"
)

// PromptMarker must appear in the request text, followed by "<A> vs <B>".
// The transport uses it to decide whether a message is addressed to the
// pipeline at all.
const PromptMarker = "analise o jogo"

// Pipeline runs one analysis request end to end: prompt parsing, fixture
// resolution, odds extraction, EV evaluation. Each invocation allocates its
// own intermediate state, so a single Pipeline is safe for concurrent use.
type Pipeline struct {
	resolver  *Resolver
	extractor *Extractor
	log       *slog.Logger
}

func NewPipeline(client *apifootball.Client, cache storage.TeamCache, season, bookmakerID int, log *slog.Logger) *Pipeline {
	return &Pipeline{
		resolver:  NewResolver(client, cache, season, log),
		extractor: NewExtractor(client, bookmakerID),
		log:       log,
	}
}

// Analyze processes a free-text request and returns the structured analysis
// or a *Error whose message is ready to show the user. The first failing
// stage short-circuits the rest; there are no retries here.
func (p *Pipeline) Analyze(ctx context.Context, prompt string) (*models.GameAnalysis, error) {
	tracker := stats.GetTracker()
	tracker.RecordRequest()

	homeRaw, awayRaw, err := parsePrompt(prompt)
	if err != nil {
		tracker.RecordFailure(KindInputFormat.String())
		return nil, err
	}

	fixture, err := p.resolver.Resolve(ctx, homeRaw, awayRaw)
	if err != nil {
		tracker.RecordFailure(failureStage(err))
		return nil, err
	}

	odds, err := p.extractor.Extract(ctx, fixture.FixtureID)
	if err != nil {
		tracker.RecordFailure(failureStage(err))
		return nil, err
	}

	market := evaluateUnderMarket(odds)

	tracker.RecordSuccess()
	return &models.GameAnalysis{
		GameTitle:     titleCase(homeRaw) + " vs. " + titleCase(awayRaw),
		LeagueName:    fixture.LeagueName,
		GameDateLocal: fixture.LocalDate,
		GameTimeLocal: fixture.LocalTime,
		Markets:       []models.MarketAnalysis{market},
	}, nil
}

// parsePrompt extracts the two team names. The whole prompt is lower-cased
// first, so team names reach the resolver lower-cased.
func parsePrompt(prompt string) (home, away string, err error) {
	invalid := &Error{
		Kind:    KindInputFormat,
		Message: "Formato de times inválido. Use: 'Time A vs Time B'",
	}

	lower := strings.ToLower(prompt)
	idx := strings.Index(lower, PromptMarker)
	if idx < 0 {
		return "", "", invalid
	}

	teamsPart := strings.TrimSpace(lower[idx+len(PromptMarker):])
	parts := strings.Split(teamsPart, " vs ")
	if len(parts) < 2 {
		return "", "", invalid
	}

	home = strings.TrimSpace(parts[0])
	away = strings.TrimSpace(parts[1])
	if home == "" || away == "" {
		return "", "", invalid
	}
	return home, away, nil
}

// failureStage maps a pipeline error onto a metrics stage label.
func failureStage(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Kind.String()
	}
	return "unknown"
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
