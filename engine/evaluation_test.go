package engine

import (
	"math/bits"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestStartposIsBalanced(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if score := Evaluation(&board, DefaultWeights()); score != 0 {
		t.Errorf("startpos evaluates to %d, want 0", score)
	}
}

func TestEvaluationIsSideToMoveRelative(t *testing.T) {
	// Startpos minus the b8 knight: a knight up for white.
	whiteUp := "r1bqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	board := dragontoothmg.ParseFen(whiteUp)
	w := DefaultWeights()
	if score := Evaluation(&board, w); score <= 0 {
		t.Errorf("white up a knight, white to move: %d, want > 0", score)
	}

	blackToMove := dragontoothmg.ParseFen("r1bqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	if score := Evaluation(&blackToMove, w); score >= 0 {
		t.Errorf("white up a knight, black to move: %d, want < 0", score)
	}
}

func TestEvaluationMirrorSymmetry(t *testing.T) {
	// Vertically mirroring the board and swapping colors must not change
	// the side-to-move-relative score.
	pairs := [][2]string{
		{
			"6k1/5ppp/8/8/8/8/PPP5/6K1 w - - 0 1",
			"6k1/ppp5/8/8/8/8/5PPP/6K1 b - - 0 1",
		},
		{
			"8/2k5/8/2K5/4P3/8/8/8 w - - 0 1",
			"8/8/8/4p3/2k5/8/2K5/8 b - - 0 1",
		},
	}
	w := DefaultWeights()
	for _, pair := range pairs {
		a := dragontoothmg.ParseFen(pair[0])
		b := dragontoothmg.ParseFen(pair[1])
		sa, sb := Evaluation(&a, w), Evaluation(&b, w)
		if sa != sb {
			t.Errorf("mirror pair %q / %q: %d vs %d", pair[0], pair[1], sa, sb)
		}
	}
}

func TestPassedPawnDetection(t *testing.T) {
	cases := []struct {
		fen          string
		wantWhite    int
		wantBlack    int
		whitePassers uint64
	}{
		// e5 pawn is passed: nothing black ahead on d, e, or f.
		{"6k1/8/8/4P3/8/8/8/6K1 w - - 0 1", 1, 0, PositionBB[36]},
		// The pawns block each other across adjacent files: neither passes.
		{"6k1/3p4/8/4P3/8/8/8/6K1 w - - 0 1", 0, 0, 0},
		// Both sides have one passer on opposite wings.
		{"6k1/p7/8/8/8/8/7P/6K1 w - - 0 1", 1, 1, PositionBB[15]},
	}
	for _, tc := range cases {
		board := dragontoothmg.ParseFen(tc.fen)
		wPassed, bPassed := getPassedPawnsBitboards(&board)
		if got := bits.OnesCount64(wPassed); got != tc.wantWhite {
			t.Errorf("fen %q: %d white passers, want %d", tc.fen, got, tc.wantWhite)
		}
		if got := bits.OnesCount64(bPassed); got != tc.wantBlack {
			t.Errorf("fen %q: %d black passers, want %d", tc.fen, got, tc.wantBlack)
		}
		if tc.whitePassers != 0 && wPassed != tc.whitePassers {
			t.Errorf("fen %q: white passers %064b, want %064b", tc.fen, wPassed, tc.whitePassers)
		}
	}
}

func TestPassedPawnOutscoresBlockedStructure(t *testing.T) {
	// Equal material: two pawns each. In the first position every pawn is
	// held back by an opponent; in the second white's e-pawn runs free.
	blocked := dragontoothmg.ParseFen("7k/pp6/8/8/8/8/PP6/7K w - - 0 1")
	passed := dragontoothmg.ParseFen("7k/pp6/8/4P3/8/8/P7/7K w - - 0 1")

	w := DefaultWeights()
	if wp, bp := getPassedPawnsBitboards(&blocked); wp != 0 || bp != 0 {
		t.Fatalf("blocked position has passers: %064b / %064b", wp, bp)
	}
	if wp, _ := getPassedPawnsBitboards(&passed); wp == 0 {
		t.Fatal("e5 not detected as passed")
	}

	if sb, sp := Evaluation(&blocked, w), Evaluation(&passed, w); sp <= sb {
		t.Errorf("passed-pawn position scores %d, blocked counterpart %d", sp, sb)
	}
}

func TestIsolatedPawnDetection(t *testing.T) {
	// White: a2 isolated, e4/f2 support each other. Black: all connected.
	board := dragontoothmg.ParseFen("6k1/ppp5/8/8/4P3/8/P4P2/6K1 w - - 0 1")
	wIsolated, bIsolated := getIsolatedPawnsBitboards(&board)
	if wIsolated != PositionBB[8] {
		t.Errorf("white isolated %064b, want only a2", wIsolated)
	}
	if bIsolated != 0 {
		t.Errorf("black isolated %064b, want none", bIsolated)
	}
}

func TestGamePhaseBounds(t *testing.T) {
	full := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if phase := gamePhase(&full); phase != 256 {
		t.Errorf("startpos phase %d, want 256", phase)
	}
	bare := dragontoothmg.ParseFen("8/2k5/8/2K5/4P3/8/8/8 w - - 0 1")
	if phase := gamePhase(&bare); phase != 0 {
		t.Errorf("pawn ending phase %d, want 0", phase)
	}
}
