package analysis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/apifootball"
)

// fakeProvider serves the three API-Football endpoints the pipeline touches.
type fakeProvider struct {
	requests   atomic.Int64
	futureUnix int64
	noOdds     bool
	noFixtures bool
}

func (f *fakeProvider) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		switch r.URL.Path {
		case "/teams":
			switch r.URL.Query().Get("search") {
			case "flamengo":
				fmt.Fprint(w, `{"response":[{"team":{"id":127,"name":"Flamengo"}}]}`)
			case "palmeiras":
				fmt.Fprint(w, `{"response":[{"team":{"id":119,"name":"Palmeiras"}}]}`)
			default:
				fmt.Fprint(w, `{"response":[]}`)
			}
		case "/fixtures":
			if f.noFixtures {
				fmt.Fprint(w, `{"response":[]}`)
				return
			}
			past := time.Now().Add(-24 * time.Hour).Unix()
			fmt.Fprintf(w, `{"response":[
				{"fixture":{"id":1,"timestamp":%d},
				 "league":{"id":71,"name":"Serie A","season":2026},
				 "teams":{"home":{"id":127,"name":"Flamengo"},"away":{"id":119,"name":"Palmeiras"}}},
				{"fixture":{"id":2,"timestamp":%d},
				 "league":{"id":71,"name":"Serie A","season":2026},
				 "teams":{"home":{"id":127,"name":"Flamengo"},"away":{"id":500,"name":"Outro"}}},
				{"fixture":{"id":3,"timestamp":%d},
				 "league":{"id":71,"name":"Serie A","season":2026},
				 "teams":{"home":{"id":119,"name":"Palmeiras"},"away":{"id":127,"name":"Flamengo"}}}
			]}`, past, f.futureUnix, f.futureUnix)
		case "/odds":
			if f.noOdds {
				fmt.Fprint(w, `{"response":[]}`)
				return
			}
			fmt.Fprint(w, `{"response":[
				{"fixture":{"id":3},
				 "bookmakers":[{"id":8,"name":"Bet365","bets":[
					{"id":1,"name":"Match Winner","values":[
						{"value":"Draw","odd":"3.30"},
						{"value":"Home","odd":"2.10"},
						{"value":"Away","odd":"3.50"}]},
					{"id":5,"name":"Goals Over/Under","values":[
						{"value":"Over 1.5","odd":"1.30"},
						{"value":"Under 2.5","odd":"2.00"},
						{"value":"Over 2.5","odd":"1.80"}]},
					{"id":8,"name":"Both Teams To Score","values":[
						{"value":"Yes","odd":"1.72"},
						{"value":"No","odd":"2.05"}]}
				 ]}]}
			]}`)
		default:
			http.NotFound(w, r)
		}
	})
}

func newTestPipeline(t *testing.T, provider *fakeProvider) *Pipeline {
	t.Helper()
	srv := httptest.NewServer(provider.handler())
	t.Cleanup(srv.Close)

	client := apifootball.NewClient(srv.URL, "test-key", 5*time.Second)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPipeline(client, nil, 0, 8, log)
}

func TestAnalyze_HappyPath(t *testing.T) {
	kickoff := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	provider := &fakeProvider{futureUnix: kickoff.Unix()}
	pipeline := newTestPipeline(t, provider)

	game, err := pipeline.Analyze(context.Background(), "@bot analise o jogo Flamengo vs Palmeiras")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if game.GameTitle != "Flamengo vs. Palmeiras" {
		t.Errorf("title = %q", game.GameTitle)
	}
	if game.LeagueName != "Serie A" {
		t.Errorf("league = %q", game.LeagueName)
	}

	local := kickoff.UTC().In(time.FixedZone("BRT", -3*60*60))
	if game.GameDateLocal != local.Format("02/01/2006") {
		t.Errorf("date = %q, want %q", game.GameDateLocal, local.Format("02/01/2006"))
	}
	if game.GameTimeLocal != local.Format("15:04") {
		t.Errorf("time = %q, want %q", game.GameTimeLocal, local.Format("15:04"))
	}

	if len(game.Markets) != 1 {
		t.Fatalf("markets = %d, want 1", len(game.Markets))
	}
	m := game.Markets[0]
	if m.Odd != 2.00 || m.EVPercent != "+20.0%" {
		t.Errorf("market = %+v", m)
	}

	// Two team searches, one fixture lookup, one odds lookup.
	if got := provider.requests.Load(); got != 4 {
		t.Errorf("provider requests = %d, want 4", got)
	}
}

func TestAnalyze_PicksFirstFutureFixtureAgainstAwayTeam(t *testing.T) {
	// Fixture 1 is in the past, fixture 2 is against another team; fixture 3
	// lists the away side as home and must still match.
	kickoff := time.Now().Add(24 * time.Hour)
	provider := &fakeProvider{futureUnix: kickoff.Unix()}
	pipeline := newTestPipeline(t, provider)

	game, err := pipeline.Analyze(context.Background(), "analise o jogo flamengo vs palmeiras")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if game == nil || len(game.Markets) != 1 {
		t.Fatalf("unexpected result: %+v", game)
	}
}

func TestAnalyze_TeamNotFound(t *testing.T) {
	provider := &fakeProvider{futureUnix: time.Now().Add(time.Hour).Unix()}
	pipeline := newTestPipeline(t, provider)

	_, err := pipeline.Analyze(context.Background(), "analise o jogo Ponte Preta vs Palmeiras")
	if err == nil {
		t.Fatal("expected error")
	}
	want := "Time 'ponte preta' não encontrado na API (buscou por 'ponte preta')."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
	if e, ok := err.(*Error); !ok || e.Kind != KindTeamNotFound {
		t.Errorf("kind = %v", err)
	}
}

func TestAnalyze_NoFutureFixture(t *testing.T) {
	provider := &fakeProvider{noFixtures: true}
	pipeline := newTestPipeline(t, provider)

	_, err := pipeline.Analyze(context.Background(), "analise o jogo Flamengo vs Palmeiras")
	if err == nil {
		t.Fatal("expected error")
	}
	want := "Nenhum jogo futuro encontrado entre flamengo e palmeiras."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestAnalyze_OddsUnavailable(t *testing.T) {
	provider := &fakeProvider{futureUnix: time.Now().Add(time.Hour).Unix(), noOdds: true}
	pipeline := newTestPipeline(t, provider)

	_, err := pipeline.Analyze(context.Background(), "analise o jogo Flamengo vs Palmeiras")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Odds não disponíveis para este jogo." {
		t.Errorf("error = %q", err.Error())
	}
}

func TestAnalyze_InvalidPromptMakesNoNetworkCalls(t *testing.T) {
	provider := &fakeProvider{}
	pipeline := newTestPipeline(t, provider)

	tests := []string{
		"bom dia",
		"analise o jogo Flamengo x Palmeiras",
		"analise o jogo  vs Palmeiras",
		"analise o jogo Flamengo vs ",
	}
	for _, prompt := range tests {
		_, err := pipeline.Analyze(context.Background(), prompt)
		if err == nil {
			t.Errorf("prompt %q: expected error", prompt)
			continue
		}
		if !strings.HasPrefix(err.Error(), "Formato de times inválido") {
			t.Errorf("prompt %q: error = %q", prompt, err.Error())
		}
	}

	if got := provider.requests.Load(); got != 0 {
		t.Errorf("provider requests = %d, want 0 for invalid prompts", got)
	}
}

func TestAnalyze_MarkerIsCaseInsensitiveAndMidMessage(t *testing.T) {
	provider := &fakeProvider{futureUnix: time.Now().Add(time.Hour).Unix()}
	pipeline := newTestPipeline(t, provider)

	_, err := pipeline.Analyze(context.Background(), "Por favor, ANALISE O JOGO Flamengo vs Palmeiras")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
}
