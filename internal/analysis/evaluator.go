package analysis

import (
	"fmt"
	"strconv"

	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/models"
)

const (
	underMarketName    = "Total de Gols (Over/Under 2.5)"
	underSelectionName = "Abaixo de 2.5 Gols"

	// Fixed markup added to the naive implied probability. A heuristic edge
	// adjustment, not a calibrated probability.
	probabilityMarkup = 0.10

	// Odd substituted into the probability math when the under odd is absent,
	// yielding a near-zero implied probability. The displayed odd stays 0.
	missingOddSentinel = 99.0

	greenThreshold = 0.10
)

// classifyEV buckets an expected value into a tier; first match wins.
func classifyEV(ev float64) models.Tier {
	switch {
	case ev >= greenThreshold:
		return models.TierGreen
	case ev >= 0:
		return models.TierYellow
	default:
		return models.TierRed
	}
}

// evaluateUnderMarket converts the under-2.5 odd into a probability/EV
// classification. When the odd is missing, the probability is computed from
// the sentinel while the displayed odd and the EV use 0 — both sides of that
// asymmetry are load-bearing for output parity.
func evaluateUnderMarket(odds models.OddsSet) models.MarketAnalysis {
	mathOdd := missingOddSentinel
	displayOdd := 0.0
	oddText := "N/A"
	if odd, ok := odds.Get(models.OutcomeUnder); ok {
		mathOdd = odd
		displayOdd = odd
		oddText = strconv.FormatFloat(odd, 'f', -1, 64)
	}

	probability := 1/mathOdd + probabilityMarkup
	ev := displayOdd*probability - 1

	return models.MarketAnalysis{
		MarketName:         underMarketName,
		SelectionName:      underSelectionName,
		Odd:                displayOdd,
		ProbabilityPercent: fmt.Sprintf("%.1f%%", probability*100),
		EVPercent:          fmt.Sprintf("%+.1f%%", ev*100),
		Classification:     classifyEV(ev),
		AnalysisText: fmt.Sprintf(
			"Análise baseada em odds reais da API. A odd de %s para 'Abaixo de 2.5' resulta em um EV de %+.1f%%.",
			oddText, ev*100),
	}
}
