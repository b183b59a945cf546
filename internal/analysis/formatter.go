package analysis

import (
	"fmt"
	"strings"

	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/models"
)

// marketSeparator joins market cards in the rendered report.
const marketSeparator = "\n\n---\n\n"

// FormatResult renders the analysis card, or the bare error message on
// failure. The template is byte-stable: downstream consumers parse it.
func FormatResult(game *models.GameAnalysis, err error) string {
	if err != nil {
		return err.Error()
	}

	header := fmt.Sprintf("%s – %s", game.GameTimeLocal, game.LeagueName)

	cards := make([]string, 0, len(game.Markets))
	for _, market := range game.Markets {
		card := fmt.Sprintf(
			"⚽ Jogo: %s\n"+
				"📅 Data: %s – %s (Horário de Brasília)\n"+
				"🏷️ Mercado: %s\n"+
				"💎 Seleção: %s\n"+
				"💰 Odd: %.2f | 📈 Probabilidade Real: %s | 💹 Valor Esperado (EV): %s\n"+
				"🔰 Classificação Arsenal: %s\n"+
				"📋 Análise: %s",
			game.GameTitle,
			game.GameDateLocal, game.GameTimeLocal,
			market.MarketName,
			market.SelectionName,
			market.Odd, market.ProbabilityPercent, market.EVPercent,
			market.Classification,
			market.AnalysisText,
		)
		cards = append(cards, card)
	}

	return header + "\n\n" + strings.Join(cards, marketSeparator)
}
