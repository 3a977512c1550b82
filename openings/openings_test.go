package openings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benedictbrady/chess-challenge/game"
)

func TestDefaultBookIsValid(t *testing.T) {
	book := Default()
	if len(book) != 25 {
		t.Fatalf("default book has %d openings, want 25", len(book))
	}
	seen := make(map[string]bool)
	for _, o := range book {
		if o.Name == "" {
			t.Errorf("opening %q has no name", o.FEN)
		}
		if seen[o.FEN] {
			t.Errorf("duplicate opening FEN %q", o.FEN)
		}
		seen[o.FEN] = true
		if _, err := game.FromFEN(o.FEN); err != nil {
			t.Errorf("opening %s: %v", o.Name, err)
		}
	}
}

func TestLoadParsesBookFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	content := "# test book\n" +
		"\n" +
		"Open Game; rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2\n" +
		"Sicilian; rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write book: %v", err)
	}

	book, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(book) != 2 {
		t.Fatalf("loaded %d openings, want 2", len(book))
	}
	if book[0].Name != "Open Game" {
		t.Errorf("first opening named %q", book[0].Name)
	}
}

func TestLoadRejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"bad fen":      "Broken; not a fen\n",
		"no separator": "just one field\n",
		"empty book":   "# only a comment\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "book.txt")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write book: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}
