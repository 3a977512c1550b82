package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

const (
	// MaxScore bounds the search window; mates are scored relative to it.
	MaxScore int32 = 32500
	// Checkmate is the threshold above which a score means forced mate.
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

// ScoredMove pairs a root move with its full-window search score.
type ScoredMove struct {
	Move  dragontoothmg.Move
	Score int32
}

// SearchContext owns all state shared across recursive calls: the
// transposition table, killer table, and history table. It lives for one
// logical game; reuse across unrelated games requires ResetForNewGame so
// stale entries cannot leak between positions that collide in the table.
type SearchContext struct {
	TT      *TransTable
	Killers KillerTable
	Weights *EvalWeights

	history [2][64][64]int

	// DisableTT and DisableNull switch heuristics off without changing
	// scores; they exist so the advisory-only contract stays checkable.
	DisableTT   bool
	DisableNull bool

	Nodes       uint64
	NullCutoffs uint64
}

// NewSearchContext builds a context with the default table size and stock
// evaluation weights.
func NewSearchContext() *SearchContext {
	return &SearchContext{
		TT:      NewTransTable(DefaultTTSize),
		Weights: DefaultWeights(),
	}
}

// ResetForNewGame wipes every table so a previous game cannot bias this
// one.
func (ctx *SearchContext) ResetForNewGame() {
	ctx.TT.Clear()
	ctx.Killers.Clear()
	ctx.clearHistoryTable()
	ctx.Nodes = 0
	ctx.NullCutoffs = 0
}

// RootSearch scores every legal move individually with a full window at
// depth-1 and returns the complete list, in generation order. Callers that
// need a selection policy other than "best" depend on having true scores
// for all moves, so no root-level pruning is done.
func (ctx *SearchContext) RootSearch(b *dragontoothmg.Board, depth int8) []ScoredMove {
	// History from the previous search still helps ordering, but at half
	// weight so stale preferences fade.
	ctx.ageHistoryTable(0)
	ctx.ageHistoryTable(1)

	moves := b.GenerateLegalMoves()
	scored := make([]ScoredMove, 0, len(moves))
	for _, move := range moves {
		unapply := b.Apply(move)
		score := -ctx.negamax(b, depth-1, 1, -MaxScore, MaxScore, true)
		unapply()
		scored = append(scored, ScoredMove{Move: move, Score: score})
	}
	return scored
}

// BestMove returns the highest-scoring root move, ties broken by
// generation order. The second return is false when no legal move exists.
func (ctx *SearchContext) BestMove(b *dragontoothmg.Board, depth int8) (ScoredMove, bool) {
	scored := ctx.RootSearch(b, depth)
	if len(scored) == 0 {
		return ScoredMove{}, false
	}
	best := scored[0]
	for _, sm := range scored[1:] {
		if sm.Score > best.Score {
			best = sm
		}
	}
	return best, true
}

// negamax is a fail-hard alpha-beta search: the return value is always
// clamped into [alpha, beta], which is what makes transposition hits
// score-transparent.
func (ctx *SearchContext) negamax(b *dragontoothmg.Board, depth int8, ply int8, alpha, beta int32, allowNull bool) int32 {
	ctx.Nodes++

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return -MaxScore + int32(ply)
		}
		return DrawScore
	}
	if ply >= MaxPly {
		return Evaluation(b, ctx.Weights)
	}

	alphaOrig := alpha
	hash := b.Hash()

	var ttMove dragontoothmg.Move
	if !ctx.DisableTT {
		if entry, hit := ctx.TT.probe(hash); hit {
			ttMove = entry.Move
			if usable, score := ctx.TT.useEntry(entry, depth, alpha, beta, ply); usable {
				return score
			}
		}
	}

	if depth <= 0 {
		return ctx.quiescence(b, alpha, beta, ply)
	}

	inCheck := b.OurKingInCheck()

	// Null move: give the opponent a free shot at reduced depth. Skipped
	// when the side to move has nothing but pawns and a king, where
	// zugzwang makes the reduction unsound.
	if allowNull && !ctx.DisableNull && depth >= 3 && !inCheck && sideHasPieces(b) {
		nullBoard := passTurn(b)
		score := -ctx.negamax(&nullBoard, depth-3, ply+1, -beta, -beta+1, false)
		if score >= beta {
			ctx.NullCutoffs++
			return beta
		}
	}

	list := ctx.scoreMovesList(b, moves, ply, ttMove)
	bestScore := -MaxScore
	var bestMove dragontoothmg.Move

	for index := uint8(0); index < uint8(len(list.moves)); index++ {
		orderNextMove(index, &list)
		move := list.moves[index].move
		isCapture := dragontoothmg.IsCapture(move, b)

		unapply := b.Apply(move)
		var score int32
		if index == 0 {
			score = -ctx.negamax(b, depth-1, ply+1, -beta, -alpha, true)
		} else {
			// PVS: probe later moves with a zero-width window and only
			// pay for a re-search when the probe lands inside the window.
			score = -ctx.negamax(b, depth-1, ply+1, -(alpha + 1), -alpha, true)
			if score > alpha && score < beta {
				score = -ctx.negamax(b, depth-1, ply+1, -beta, -alpha, true)
			}
		}
		unapply()

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !isCapture {
				ctx.Killers.Insert(move, ply)
				ctx.incrementHistoryScore(b.Wtomove, move, depth)
			}
			break
		}
	}

	var flag int8
	switch {
	case bestScore >= beta:
		flag = BetaFlag
		bestScore = beta
	case bestScore <= alphaOrig:
		flag = AlphaFlag
		bestScore = alphaOrig
	default:
		flag = ExactFlag
	}

	if !ctx.DisableTT {
		ctx.TT.storeEntry(hash, depth, ply, bestMove, bestScore, flag)
	}
	return bestScore
}
