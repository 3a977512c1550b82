package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestQuiescenceNeverBelowStandPat(t *testing.T) {
	for _, fen := range append(append([]string{}, searchSuite...), pawnEndingSuite...) {
		board := dragontoothmg.ParseFen(fen)
		ctx := NewSearchContext()

		standPat := Evaluation(&board, ctx.Weights)
		score := ctx.quiescence(&board, -MaxScore, MaxScore, 0)
		if score < standPat {
			t.Errorf("fen %q: quiescence %d below stand pat %d", fen, score, standPat)
		}
	}
}

func TestQuiescenceQuietPositionEqualsEval(t *testing.T) {
	// No captures and no promotions available: quiescence must return the
	// static evaluation untouched.
	quiet := []string{
		dragontoothmg.Startpos,
		"8/2k5/8/2K5/4P3/8/8/8 w - - 0 1",
	}
	for _, fen := range quiet {
		board := dragontoothmg.ParseFen(fen)
		ctx := NewSearchContext()

		want := Evaluation(&board, ctx.Weights)
		got := ctx.quiescence(&board, -MaxScore, MaxScore, 0)
		if got != want {
			t.Errorf("fen %q: quiescence %d, static eval %d", fen, got, want)
		}
	}
}

func TestQuiescenceResolvesHangingPiece(t *testing.T) {
	// White queen can take a loose rook on d5. The quiescence score must
	// reflect at least the material swing over standing pat.
	board := dragontoothmg.ParseFen("6k1/8/8/3r4/8/3Q4/8/6K1 w - - 0 1")
	ctx := NewSearchContext()

	standPat := Evaluation(&board, ctx.Weights)
	score := ctx.quiescence(&board, -MaxScore, MaxScore, 0)
	if score < standPat+300 {
		t.Errorf("quiescence %d did not cash in the hanging rook (stand pat %d)", score, standPat)
	}
}
