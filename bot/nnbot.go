package bot

import (
	"github.com/dylhunn/dragontoothmg"

	"github.com/benedictbrady/chess-challenge/engine"
	"github.com/benedictbrady/chess-challenge/game"
	"github.com/benedictbrady/chess-challenge/nn"
)

// NNBot plays one ply ahead of the network: for every legal move it
// resolves captures from the resulting position and takes the move the
// network likes best. Ties go to the earlier move in generation order.
type NNBot struct {
	name string
	net  *nn.Network
}

// NewNNBot wraps a network in a bot. The caller owns loading or
// initializing the weights.
func NewNNBot(name string, net *nn.Network) *NNBot {
	return &NNBot{name: name, net: net}
}

func (b *NNBot) Name() string { return b.name }

// ChooseMove scores each legal move by the negated capture-resolved
// network evaluation of the position after it.
func (b *NNBot) ChooseMove(g *game.GameState) (dragontoothmg.Move, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return 0, false
	}

	board := g.Board()
	bestMove := moves[0]
	bestScore := int32(-engine.MaxScore - 1)
	for _, m := range moves {
		unapply := board.Apply(m)
		score := -b.quiesce(&board, -engine.MaxScore, engine.MaxScore)
		unapply()
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}
	return bestMove, true
}

// quiesce resolves captures so the network is never asked to judge a
// position in the middle of an exchange. Same shape as the classical
// quiescence search, with the network as the stand-pat evaluation.
func (b *NNBot) quiesce(board *dragontoothmg.Board, alpha, beta int32) int32 {
	moves := board.GenerateLegalMoves()
	if len(moves) == 0 {
		if board.OurKingInCheck() {
			return -engine.MaxScore
		}
		return engine.DrawScore
	}

	standPat := b.net.Evaluate(board)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	for _, m := range moves {
		if !dragontoothmg.IsCapture(m, board) {
			continue
		}
		unapply := board.Apply(m)
		score := -b.quiesce(board, -beta, -alpha)
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
