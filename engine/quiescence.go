package engine

import "github.com/dylhunn/dragontoothmg"

// deltaMargin is the safety cushion for delta pruning: a capture is only
// skipped when even its full material gain plus this margin cannot lift
// the score above alpha.
const deltaMargin int32 = 200

// quiescence resolves tactical instability at the horizon by searching
// captures (and queen promotions) until the position is quiet. Fail-hard:
// the result is always within [alpha, beta]. Termination needs no depth
// cap because every capture strictly reduces material.
func (ctx *SearchContext) quiescence(b *dragontoothmg.Board, alpha, beta int32, ply int8) int32 {
	ctx.Nodes++

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return -MaxScore + int32(ply)
		}
		return DrawScore
	}

	// Stand pat: the side to move may decline every capture.
	standPat := Evaluation(b, ctx.Weights)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= MaxPly {
		return alpha
	}

	list := ctx.scoreMovesListCaptures(b, moves)
	for index := uint8(0); index < uint8(len(list.moves)); index++ {
		orderNextMove(index, &list)
		entry := list.moves[index]

		// Delta pruning: node-count optimization, not required for
		// correctness.
		gain := int32(ctx.Weights.PieceValue[entry.capturedPiece])
		if entry.move.Promote() == dragontoothmg.Queen {
			gain += int32(ctx.Weights.PieceValue[dragontoothmg.Queen] - ctx.Weights.PieceValue[dragontoothmg.Pawn])
		}
		if standPat+gain+deltaMargin <= alpha {
			continue
		}

		unapply := b.Apply(entry.move)
		score := -ctx.quiescence(b, -beta, -alpha, ply+1)
		unapply()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
