package bot

import (
	"fmt"
	"math/rand"
)

// The closed set of bot variants used by the match harnesses, in
// descending strength order.
const (
	NameBaseline  = "baseline"
	NameDepth4    = "depth4"
	NameDepth3    = "depth3"
	NameBlunder10 = "blunder10"
	NameBlunder25 = "blunder25"
)

var variantConfigs = map[string]Config{
	NameBaseline:  {Depth: 5, CandidateWindow: 0, BlunderRate: 0},
	NameDepth4:    {Depth: 4, CandidateWindow: 0, BlunderRate: 0},
	NameDepth3:    {Depth: 3, CandidateWindow: 0, BlunderRate: 0},
	NameBlunder10: {Depth: 3, CandidateWindow: 50, BlunderRate: 0.10},
	NameBlunder25: {Depth: 2, CandidateWindow: 100, BlunderRate: 0.25},
}

// Baseline is the reference opponent: full-strength policy at depth 5.
func Baseline(rng *rand.Rand) *SearchBot {
	return NewSearchBot(NameBaseline, variantConfigs[NameBaseline], rng)
}

// ByName builds one of the named variants.
func ByName(name string, rng *rand.Rand) (*SearchBot, error) {
	cfg, ok := variantConfigs[name]
	if !ok {
		return nil, fmt.Errorf("unknown bot %q", name)
	}
	return NewSearchBot(name, cfg, rng), nil
}

// VariantNames lists the recognized variant names.
func VariantNames() []string {
	return []string{NameBaseline, NameDepth4, NameDepth3, NameBlunder10, NameBlunder25}
}
