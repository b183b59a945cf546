package analysis

import (
	"strings"
)

// teamNameTranslator maps colloquial PT-BR team names to the search terms
// the provider understands. Unmapped names fall through to a raw search.
var teamNameTranslator = map[string]string{
	"alemanha":   "germany",
	"inglaterra": "england",
	"frança":     "france",
	"espanha":    "spain",
	"itália":     "italy",
	"portugal":   "portugal",
	"holanda":    "netherlands",
	"brasil":     "brazil",
	"argentina":  "argentina",
	"bélgica":    "belgium",
	"croácia":    "croatia",
	"uruguai":    "uruguay",
	"hungria":    "hungary",
	"irlanda":    "ireland",

	"atlético mineiro":    "atletico-mg",
	"atletico mineiro":    "atletico-mg",
	"red bull bragantino": "bragantino",
	"bragantino":          "bragantino",
	"botafogo":            "botafogo-rj",
	"sport recife":        "sport-recife",
}

// normalizeTeamName lower-cases a free-text team name and maps it to the
// provider's canonical search term; unmapped names are returned lower-cased.
func normalizeTeamName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := teamNameTranslator[lower]; ok {
		return mapped
	}
	return lower
}
