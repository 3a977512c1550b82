package nn

import (
	"path/filepath"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestActiveFeaturesStartpos(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	features := ActiveFeatures(&board)
	if len(features) != 32 {
		t.Fatalf("startpos has %d active features, want 32", len(features))
	}

	want := map[uint16]string{
		12:         "own pawn on e2 (plane 0)",
		1*64 + 1:   "own knight on b1 (plane 1)",
		5*64 + 4:   "own king on e1 (plane 5)",
		6*64 + 52:  "opponent pawn on e7 (plane 6)",
		11*64 + 60: "opponent king on e8 (plane 11)",
	}
	set := make(map[uint16]bool, len(features))
	for _, f := range features {
		set[f] = true
	}
	for f, desc := range want {
		if !set[f] {
			t.Errorf("missing feature %d: %s", f, desc)
		}
	}
}

func TestEncodingIsPerspectiveSymmetric(t *testing.T) {
	// The startpos is vertically symmetric, so flipping the side to move
	// must produce the identical feature set.
	white := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	black := dragontoothmg.ParseFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")

	wf := ActiveFeatures(&white)
	bf := ActiveFeatures(&black)
	if len(wf) != len(bf) {
		t.Fatalf("feature counts differ: %d vs %d", len(wf), len(bf))
	}
	for i := range wf {
		if wf[i] != bf[i] {
			t.Fatalf("feature %d differs: %d vs %d", i, wf[i], bf[i])
		}
	}
}

func TestEncodeMatchesActiveFeatures(t *testing.T) {
	board := dragontoothmg.ParseFen("6k1/5ppp/8/8/8/8/PPP5/6K1 w - - 0 1")
	vec := Encode(&board)

	ones := 0
	for _, v := range vec {
		switch v {
		case 0:
		case 1:
			ones++
		default:
			t.Fatalf("non-binary value %f in encoding", v)
		}
	}
	if want := len(ActiveFeatures(&board)); ones != want {
		t.Fatalf("%d ones in dense encoding, %d active features", ones, want)
	}
}

func TestInitRandomIsDeterministic(t *testing.T) {
	a, b := NewNetwork(), NewNetwork()
	a.InitRandom(42)
	b.InitRandom(42)

	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if sa, sb := a.Evaluate(&board), b.Evaluate(&board); sa != sb {
		t.Fatalf("same seed, different evaluations: %d vs %d", sa, sb)
	}

	c := NewNetwork()
	c.InitRandom(43)
	// Different seeds should almost surely differ somewhere in the weights.
	if a.HiddenWeights == c.HiddenWeights {
		t.Fatal("different seeds produced identical hidden weights")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.bin")

	orig := NewNetwork()
	orig.InitRandom(7)
	if err := orig.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := NewNetwork()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	positions := []string{
		dragontoothmg.Startpos,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/2k5/8/2K5/4P3/8/8/8 w - - 0 1",
	}
	for _, fen := range positions {
		board := dragontoothmg.ParseFen(fen)
		if got, want := loaded.Evaluate(&board), orig.Evaluate(&board); got != want {
			t.Errorf("fen %q: loaded net scores %d, original %d", fen, got, want)
		}
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.bin")

	n := NewNetwork()
	if err := n.Load(path); err == nil {
		t.Fatal("loading a missing file succeeded")
	}
}
