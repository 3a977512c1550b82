package bot

import (
	"fmt"

	"github.com/benedictbrady/chess-challenge/game"
)

// MaxGamePlies caps harness games; anything that drags this long is
// scored as a draw.
const MaxGamePlies = 500

// GameResult records one finished harness game.
type GameResult struct {
	Outcome game.Outcome
	Plies   int
	// Moves holds the UCI move list in play order.
	Moves []string
}

// PlayGame runs white against black from the given FEN (empty means the
// standard start) until mate, stalemate, threefold repetition, or the
// ply cap. Search bots get a fresh search state first.
func PlayGame(white, black Bot, fen string, maxPlies int) (GameResult, error) {
	if maxPlies <= 0 {
		maxPlies = MaxGamePlies
	}
	resetSearchState(white)
	resetSearchState(black)

	var g *game.GameState
	var err error
	if fen == "" {
		g = game.New()
	} else {
		g, err = game.FromFEN(fen)
		if err != nil {
			return GameResult{}, err
		}
	}

	result := GameResult{Moves: make([]string, 0, 64)}
	for {
		if outcome, over := g.Result(); over {
			result.Outcome = outcome
			return result, nil
		}
		if result.Plies >= maxPlies {
			result.Outcome = game.OutcomeDraw
			return result, nil
		}

		mover := white
		if !g.Board().Wtomove {
			mover = black
		}
		move, ok := mover.ChooseMove(g)
		if !ok {
			return result, fmt.Errorf("%s returned no move in a live position", mover.Name())
		}
		if err := g.MakeMove(move); err != nil {
			return result, fmt.Errorf("%s chose an illegal move: %w", mover.Name(), err)
		}
		result.Moves = append(result.Moves, move.String())
		result.Plies++
	}
}

func resetSearchState(b Bot) {
	if sb, ok := b.(*SearchBot); ok {
		sb.ctx.ResetForNewGame()
	}
}
