// Package game tracks a playable chess game on top of the board library:
// move legality, repetition counting, and terminal classification.
package game

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Outcome classifies a finished game.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWhiteWins
	OutcomeBlackWins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWhiteWins:
		return "checkmate-white"
	case OutcomeBlackWins:
		return "checkmate-black"
	case OutcomeDraw:
		return "draw"
	}
	return "none"
}

// GameState is the canonical game history: the current board plus an exact
// occurrence count per position hash for repetition claims. The counts are
// mutated only by successful MakeMove calls and never rolled back; search
// code clones boards and never touches a GameState.
type GameState struct {
	board          dragontoothmg.Board
	positionCounts map[uint64]int
	plies          int
}

// New starts a game from the standard starting position.
func New() *GameState {
	g := &GameState{
		board:          dragontoothmg.ParseFen(dragontoothmg.Startpos),
		positionCounts: make(map[uint64]int),
	}
	g.positionCounts[g.board.Hash()]++
	return g
}

// FromFEN starts a game from an arbitrary position. The FEN is validated
// structurally before the board library parses it.
func FromFEN(fen string) (*GameState, error) {
	if err := validateFEN(fen); err != nil {
		return nil, fmt.Errorf("invalid fen %q: %w", fen, err)
	}
	g := &GameState{
		board:          dragontoothmg.ParseFen(fen),
		positionCounts: make(map[uint64]int),
	}
	g.positionCounts[g.board.Hash()]++
	return g, nil
}

func validateFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("expected at least 4 fields, got %d", len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}
	kings := map[rune]int{'K': 0, 'k': 0}
	for _, rank := range ranks {
		squares := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				squares += int(c - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", c):
				squares++
				if c == 'K' || c == 'k' {
					kings[c]++
				}
			default:
				return fmt.Errorf("bad piece char %q", c)
			}
		}
		if squares != 8 {
			return fmt.Errorf("rank %q covers %d squares", rank, squares)
		}
	}
	if kings['K'] != 1 || kings['k'] != 1 {
		return fmt.Errorf("each side needs exactly one king")
	}

	if fields[1] != "w" && fields[1] != "b" {
		return fmt.Errorf("bad side to move %q", fields[1])
	}
	return nil
}

// Board returns a copy of the current position for searching; the game's
// own board is only advanced through MakeMove.
func (g *GameState) Board() dragontoothmg.Board {
	return g.board
}

// LegalMoves enumerates the legal moves in the current position.
func (g *GameState) LegalMoves() []dragontoothmg.Move {
	return g.board.GenerateLegalMoves()
}

// MakeMove applies a move after confirming it is legal. On success the new
// position's repetition count is incremented; on failure the state is
// untouched.
func (g *GameState) MakeMove(move dragontoothmg.Move) error {
	legal := false
	for _, m := range g.board.GenerateLegalMoves() {
		if m == move {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("illegal move %s", move.String())
	}

	g.board.Apply(move)
	g.positionCounts[g.board.Hash()]++
	g.plies++
	return nil
}

// IsThreefold reports whether the current position has now occurred three
// or more times.
func (g *GameState) IsThreefold() bool {
	return g.positionCounts[g.board.Hash()] >= 3
}

// IsGameOver reports whether the game has ended by mate, stalemate, or
// repetition.
func (g *GameState) IsGameOver() bool {
	return g.IsThreefold() || len(g.board.GenerateLegalMoves()) == 0
}

// Result returns the outcome of a finished game. The second return is
// false while the game continues. The checkmate winner is the side not to
// move in the mated position.
func (g *GameState) Result() (Outcome, bool) {
	if g.IsThreefold() {
		return OutcomeDraw, true
	}
	if len(g.board.GenerateLegalMoves()) > 0 {
		return OutcomeNone, false
	}
	if !g.board.OurKingInCheck() {
		return OutcomeDraw, true // stalemate
	}
	if g.board.Wtomove {
		return OutcomeBlackWins, true
	}
	return OutcomeWhiteWins, true
}

// Clone deep-copies the game, repetition counts included.
func (g *GameState) Clone() *GameState {
	counts := make(map[uint64]int, len(g.positionCounts))
	for k, v := range g.positionCounts {
		counts[k] = v
	}
	return &GameState{board: g.board, positionCounts: counts, plies: g.plies}
}

// FEN renders the current position.
func (g *GameState) FEN() string {
	return g.board.ToFen()
}

// Hash returns the current position's Zobrist hash.
func (g *GameState) Hash() uint64 {
	return g.board.Hash()
}

// Plies returns how many moves have been applied since construction.
func (g *GameState) Plies() int {
	return g.plies
}
