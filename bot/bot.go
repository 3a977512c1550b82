// Package bot turns raw search scores into actual move choices. One search
// core serves a family of bots of graded strength by varying depth, the
// candidate score window, and the blunder probability.
package bot

import (
	"math/rand"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/benedictbrady/chess-challenge/engine"
	"github.com/benedictbrady/chess-challenge/game"
)

// Bot is the move-selection contract: a legal move for the position, or
// false when no legal move exists.
type Bot interface {
	Name() string
	ChooseMove(g *game.GameState) (dragontoothmg.Move, bool)
}

// Config is the move-policy tuning for a search bot.
type Config struct {
	// Depth is the search depth in plies.
	Depth int8
	// CandidateWindow is a centipawn margin: any root move scoring within
	// it of the best move is a candidate. Zero means always play best.
	CandidateWindow int32
	// BlunderRate is the probability of ignoring the search entirely and
	// playing a uniformly random legal move.
	BlunderRate float64
}

// SearchBot picks moves with the alpha-beta search plus the configured
// policy randomness. The random source is injected so tests can fix seeds.
type SearchBot struct {
	name string
	cfg  Config
	ctx  *engine.SearchContext
	rng  *rand.Rand
}

// NewSearchBot builds a bot around a fresh search context. A nil rng gets
// a time-seeded source.
func NewSearchBot(name string, cfg Config, rng *rand.Rand) *SearchBot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SearchBot{
		name: name,
		cfg:  cfg,
		ctx:  engine.NewSearchContext(),
		rng:  rng,
	}
}

func (b *SearchBot) Name() string { return b.name }

// Context exposes the bot's search context, mainly so harnesses can reset
// it between games.
func (b *SearchBot) Context() *engine.SearchContext { return b.ctx }

// ChooseMove applies the policy: maybe blunder, otherwise search every
// root move and pick among those within the candidate window of the best.
func (b *SearchBot) ChooseMove(g *game.GameState) (dragontoothmg.Move, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return 0, false
	}

	if b.cfg.BlunderRate > 0 && b.rng.Float64() < b.cfg.BlunderRate {
		return moves[b.rng.Intn(len(moves))], true
	}

	board := g.Board()
	scored := b.ctx.RootSearch(&board, b.cfg.Depth)

	best := scored[0].Score
	for _, sm := range scored[1:] {
		if sm.Score > best {
			best = sm.Score
		}
	}

	// A zero window degenerates to the single best move, ties broken by
	// list position, with no randomness consulted.
	if b.cfg.CandidateWindow == 0 {
		for _, sm := range scored {
			if sm.Score == best {
				return sm.Move, true
			}
		}
	}

	candidates := make([]dragontoothmg.Move, 0, len(scored))
	for _, sm := range scored {
		if sm.Score >= best-b.cfg.CandidateWindow {
			candidates = append(candidates, sm.Move)
		}
	}
	return candidates[b.rng.Intn(len(candidates))], true
}
