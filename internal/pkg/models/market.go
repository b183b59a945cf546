package models

// Tier classifies how attractive a market is based on its expected value.
type Tier int

const (
	TierGreen Tier = iota
	TierYellow
	TierRed
)

// String returns the user-facing label rendered on the analysis card.
func (t Tier) String() string {
	switch t {
	case TierGreen:
		return "🟢 Verde"
	case TierYellow:
		return "🟡 Amarelo"
	default:
		return "🔴 Vermelho"
	}
}

// MarketAnalysis is the evaluated result for one wagering market.
// ProbabilityPercent and EVPercent are pre-formatted one-decimal percent
// strings; the formatter renders them as-is.
type MarketAnalysis struct {
	MarketName         string  `json:"market"`
	SelectionName      string  `json:"selection"`
	Odd                float64 `json:"odd"`
	ProbabilityPercent string  `json:"real_probability_percent"`
	EVPercent          string  `json:"expected_value_percent"`
	Classification     Tier    `json:"classification"`
	AnalysisText       string  `json:"analysis_text"`
}

// GameAnalysis is the terminal success object of the pipeline.
type GameAnalysis struct {
	GameTitle     string           `json:"game_title"`
	LeagueName    string           `json:"league"`
	GameDateLocal string           `json:"game_date"`
	GameTimeLocal string           `json:"game_time"`
	Markets       []MarketAnalysis `json:"markets"`
}
