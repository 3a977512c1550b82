package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// Quiet-ish positions used across the search tests.
var searchSuite = []string{
	dragontoothmg.Startpos,
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	"r2q1rk1/ppp2ppp/2np1n2/2b1p1B1/2B1P1b1/2NP1N2/PPP2PPP/R2Q1RK1 w - - 6 8",
}

var pawnEndingSuite = []string{
	"8/2k5/8/2K5/4P3/8/8/8 w - - 0 1",
	"8/5pk1/8/8/8/8/1KP5/8 w - - 0 1",
}

// minimaxRef is a plain negamax with no pruning, using the same terminal
// rules and the same horizon resolution as the real search.
func minimaxRef(ctx *SearchContext, b *dragontoothmg.Board, depth int8, ply int8) int32 {
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
	if depth <= 0 {
		return ctx.quiescence(b, -MaxScore, MaxScore, ply)
	}

	best := -MaxScore
	for _, move := range moves {
		unapply := b.Apply(move)
		score := -minimaxRef(ctx, b, depth-1, ply+1)
		unapply()
		if score > best {
			best = score
		}
	}
	return best
}

func TestSearchMatchesMinimax(t *testing.T) {
	// Null move only fires at depth >= 3, and in the pawn endings the
	// piece guard suppresses it, so every heuristic that does fire here
	// must be score-neutral.
	cases := []struct {
		fen      string
		maxDepth int8
	}{
		{searchSuite[0], 2},
		{searchSuite[1], 2},
		{searchSuite[2], 2},
		{pawnEndingSuite[0], 3},
		{pawnEndingSuite[1], 3},
	}
	for _, tc := range cases {
		for depth := int8(1); depth <= tc.maxDepth; depth++ {
			board := dragontoothmg.ParseFen(tc.fen)
			ctx := NewSearchContext()
			got := ctx.RootSearch(&board, depth)

			refCtx := NewSearchContext()
			moves := board.GenerateLegalMoves()
			for i, move := range moves {
				unapply := board.Apply(move)
				want := -minimaxRef(refCtx, &board, depth-1, 1)
				unapply()
				if got[i].Score != want {
					t.Errorf("fen %q depth %d move %s: search %d, minimax %d",
						tc.fen, depth, move.String(), got[i].Score, want)
				}
			}
		}
	}
}

func TestTranspositionTableIsScoreTransparent(t *testing.T) {
	for _, fen := range append(append([]string{}, searchSuite...), pawnEndingSuite...) {
		board := dragontoothmg.ParseFen(fen)

		withTT := NewSearchContext()
		scoredTT := withTT.RootSearch(&board, 3)

		without := NewSearchContext()
		without.DisableTT = true
		scoredPlain := without.RootSearch(&board, 3)

		for i := range scoredTT {
			if scoredTT[i].Score != scoredPlain[i].Score {
				t.Errorf("fen %q move %s: with TT %d, without %d",
					fen, scoredTT[i].Move.String(), scoredTT[i].Score, scoredPlain[i].Score)
			}
		}
	}
}

func TestFindsMateInOne(t *testing.T) {
	board := dragontoothmg.ParseFen("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	ctx := NewSearchContext()

	best, ok := ctx.BestMove(&board, 1)
	if !ok {
		t.Fatal("no move returned in a live position")
	}
	if best.Move.String() != "a1a8" {
		t.Fatalf("expected a1a8, got %s", best.Move.String())
	}
	if best.Score != MaxScore-1 {
		t.Fatalf("expected mate score %d, got %d", MaxScore-1, best.Score)
	}
	if s := FormatScore(best.Score); s != "mate 1" {
		t.Fatalf("expected \"mate 1\", got %q", s)
	}
}

func TestNullMoveNeverFiresInPawnEndings(t *testing.T) {
	for _, fen := range pawnEndingSuite {
		board := dragontoothmg.ParseFen(fen)
		ctx := NewSearchContext()
		ctx.RootSearch(&board, 5)
		if ctx.NullCutoffs != 0 {
			t.Errorf("fen %q: %d null-move cutoffs in a pawn-king position", fen, ctx.NullCutoffs)
		}
	}
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	// Stalemate: black to move, no moves, not in check.
	board := dragontoothmg.ParseFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	ctx := NewSearchContext()
	if _, ok := ctx.BestMove(&board, 3); ok {
		t.Fatal("expected no move in a stalemated position")
	}
}

func TestPassTurnFlipsSideAndClearsEnPassant(t *testing.T) {
	board := dragontoothmg.ParseFen("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	nullBoard := passTurn(&board)
	if nullBoard.Wtomove {
		t.Fatal("side to move did not flip")
	}
	if fen := nullBoard.ToFen(); fen == board.ToFen() {
		t.Fatalf("null move produced the same position: %s", fen)
	}
}

func TestSideHasPieces(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if !sideHasPieces(&board) {
		t.Error("startpos reported as pieceless")
	}
	pawnsOnly := dragontoothmg.ParseFen(pawnEndingSuite[0])
	if sideHasPieces(&pawnsOnly) {
		t.Error("pawn-king position reported as having pieces")
	}
}
