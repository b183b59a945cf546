package models

// OutcomeKey identifies one selection inside the flat odds set.
type OutcomeKey string

const (
	OutcomeHome    OutcomeKey = "home"
	OutcomeDraw    OutcomeKey = "draw"
	OutcomeAway    OutcomeKey = "away"
	OutcomeUnder   OutcomeKey = "under" // Under 2.5 goals
	OutcomeOver    OutcomeKey = "over"  // Over 2.5 goals
	OutcomeBTTSYes OutcomeKey = "btts_yes"
	OutcomeBTTSNo  OutcomeKey = "btts_no"
)

// OddsSet maps outcome keys to decimal odds for one fixture at one bookmaker.
// The map is partial: a key is simply absent when the bookmaker does not offer
// that market. Callers must check presence explicitly via Get.
type OddsSet map[OutcomeKey]float64

// Get returns the odd for key and whether the bookmaker offers it.
func (s OddsSet) Get(key OutcomeKey) (float64, bool) {
	odd, ok := s[key]
	return odd, ok
}
