package analysis

import (
	"strings"
	"testing"

	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/models"
)

func TestClassifyEV_Boundaries(t *testing.T) {
	tests := []struct {
		ev   float64
		want models.Tier
	}{
		{0.20, models.TierGreen},
		{0.10, models.TierGreen},
		{0.0999, models.TierYellow},
		{0.05, models.TierYellow},
		{0, models.TierYellow},
		{-0.01, models.TierRed},
		{-1, models.TierRed},
	}
	for _, tt := range tests {
		if got := classifyEV(tt.ev); got != tt.want {
			t.Errorf("classifyEV(%v) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestEvaluateUnderMarket_EvenOdd(t *testing.T) {
	odds := models.OddsSet{models.OutcomeUnder: 2.00}

	m := evaluateUnderMarket(odds)

	// 1/2.00 + 0.10 = 0.60; 2.00*0.60 - 1 = 0.20
	if m.Odd != 2.00 {
		t.Errorf("odd = %v, want 2.00", m.Odd)
	}
	if m.ProbabilityPercent != "60.0%" {
		t.Errorf("probability = %q, want 60.0%%", m.ProbabilityPercent)
	}
	if m.EVPercent != "+20.0%" {
		t.Errorf("ev = %q, want +20.0%%", m.EVPercent)
	}
	if m.Classification != models.TierGreen {
		t.Errorf("classification = %v, want green", m.Classification)
	}
	if !strings.Contains(m.AnalysisText, "A odd de 2 para 'Abaixo de 2.5'") {
		t.Errorf("analysis text = %q", m.AnalysisText)
	}
	if !strings.Contains(m.AnalysisText, "EV de +20.0%") {
		t.Errorf("analysis text = %q", m.AnalysisText)
	}
}

func TestEvaluateUnderMarket_MissingUnderOdd(t *testing.T) {
	odds := models.OddsSet{models.OutcomeHome: 1.80}

	m := evaluateUnderMarket(odds)

	// Probability comes from the sentinel odd 99, EV from the displayed 0.
	if m.Odd != 0 {
		t.Errorf("displayed odd = %v, want 0", m.Odd)
	}
	if m.ProbabilityPercent != "11.0%" {
		t.Errorf("probability = %q, want 11.0%%", m.ProbabilityPercent)
	}
	if m.EVPercent != "-100.0%" {
		t.Errorf("ev = %q, want -100.0%%", m.EVPercent)
	}
	if m.Classification != models.TierRed {
		t.Errorf("classification = %v, want red", m.Classification)
	}
	if !strings.Contains(m.AnalysisText, "A odd de N/A") {
		t.Errorf("analysis text = %q", m.AnalysisText)
	}
}

func TestEvaluateUnderMarket_ShortOdd(t *testing.T) {
	// With the fixed markup the formula reduces to EV = 0.1 * odd, so any
	// present odd above 1.0 classifies green.
	odds := models.OddsSet{models.OutcomeUnder: 1.50}
	m := evaluateUnderMarket(odds)
	if m.EVPercent != "+15.0%" {
		t.Errorf("ev = %q, want +15.0%%", m.EVPercent)
	}
	if m.Classification != models.TierGreen {
		t.Errorf("classification = %v, want green", m.Classification)
	}
}
