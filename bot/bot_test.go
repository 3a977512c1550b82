package bot

import (
	"math/rand"
	"testing"

	"github.com/benedictbrady/chess-challenge/game"
	"github.com/benedictbrady/chess-challenge/nn"
)

func TestZeroWindowPlaysBestMove(t *testing.T) {
	g, err := game.FromFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	// Different seeds must not matter: a zero window never consults the
	// random source.
	for _, seed := range []int64{1, 2, 99} {
		b := NewSearchBot("test", Config{Depth: 1}, rand.New(rand.NewSource(seed)))
		move, ok := b.ChooseMove(g)
		if !ok {
			t.Fatal("no move in a live position")
		}
		if move.String() != "a1a8" {
			t.Errorf("seed %d: got %s, want a1a8", seed, move.String())
		}
	}
}

func TestWindowedChoiceIsSeedDeterministic(t *testing.T) {
	g := game.New()
	cfg := Config{Depth: 1, CandidateWindow: 10000}

	first := NewSearchBot("a", cfg, rand.New(rand.NewSource(7)))
	second := NewSearchBot("b", cfg, rand.New(rand.NewSource(7)))

	for i := 0; i < 5; i++ {
		m1, ok1 := first.ChooseMove(g)
		m2, ok2 := second.ChooseMove(g)
		if !ok1 || !ok2 {
			t.Fatal("no move in a live position")
		}
		if m1 != m2 {
			t.Fatalf("step %d: same seed diverged, %s vs %s", i, m1.String(), m2.String())
		}
		if err := g.MakeMove(m1); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
}

func TestBlunderRateOneAlwaysRandomButLegal(t *testing.T) {
	g := game.New()
	b := NewSearchBot("blunder", Config{Depth: 3, BlunderRate: 1.0}, rand.New(rand.NewSource(3)))

	move, ok := b.ChooseMove(g)
	if !ok {
		t.Fatal("no move in a live position")
	}
	if err := g.MakeMove(move); err != nil {
		t.Fatalf("blunder move was illegal: %v", err)
	}
}

func TestChooseMoveOnFinishedPosition(t *testing.T) {
	g, err := game.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1") // stalemate
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b := NewSearchBot("test", Config{Depth: 2}, rand.New(rand.NewSource(1)))
	if _, ok := b.ChooseMove(g); ok {
		t.Fatal("move produced in a stalemated position")
	}
}

func TestByName(t *testing.T) {
	for _, name := range VariantNames() {
		b, err := ByName(name, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Errorf("variant %s: %v", name, err)
			continue
		}
		if b.Name() != name {
			t.Errorf("variant %s reports name %s", name, b.Name())
		}
	}
	if _, err := ByName("no-such-bot", nil); err == nil {
		t.Error("unknown variant accepted")
	}
	if b := Baseline(nil); b.Name() != NameBaseline {
		t.Errorf("baseline constructor reports name %s", b.Name())
	}
}

func TestNNBotPlaysLegalMoves(t *testing.T) {
	net := nn.NewNetwork()
	net.InitRandom(11)
	b := NewNNBot("nn", net)

	g := game.New()
	for i := 0; i < 6; i++ {
		move, ok := b.ChooseMove(g)
		if !ok {
			t.Fatalf("no move at ply %d", i)
		}
		if err := g.MakeMove(move); err != nil {
			t.Fatalf("ply %d: %v", i, err)
		}
	}
}

func TestPlayGameTerminates(t *testing.T) {
	white := NewSearchBot("w", Config{Depth: 1}, rand.New(rand.NewSource(1)))
	black := NewSearchBot("b", Config{Depth: 1}, rand.New(rand.NewSource(2)))

	result, err := PlayGame(white, black, "", 60)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if result.Outcome == game.OutcomeNone {
		t.Fatal("finished game has no outcome")
	}
	if result.Plies != len(result.Moves) {
		t.Fatalf("plies %d but %d moves recorded", result.Plies, len(result.Moves))
	}
	if result.Plies > 60 {
		t.Fatalf("ply cap exceeded: %d", result.Plies)
	}
}

func TestPlayGameRejectsBadFEN(t *testing.T) {
	white := NewSearchBot("w", Config{Depth: 1}, rand.New(rand.NewSource(1)))
	black := NewSearchBot("b", Config{Depth: 1}, rand.New(rand.NewSource(2)))
	if _, err := PlayGame(white, black, "not a fen", 10); err == nil {
		t.Fatal("malformed FEN accepted")
	}
}
