package engine

import (
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// sideHasPieces reports whether the side to move has at least one piece
// besides pawns and the king. Null-move pruning is only sound when it
// does; pawn-and-king endings are where zugzwang lives.
func sideHasPieces(b *dragontoothmg.Board) bool {
	var bb *dragontoothmg.Bitboards
	if b.Wtomove {
		bb = &b.White
	} else {
		bb = &b.Black
	}
	return bits.OnesCount64(bb.Knights|bb.Bishops|bb.Rooks|bb.Queens) > 0
}

// passTurn returns a copy of the position with the side to move flipped
// and any en-passant right cleared, i.e. the position after a null move.
// The board library has no native null move, so this goes through FEN;
// the search clones on descend anyway, so the copy is the natural shape.
func passTurn(b *dragontoothmg.Board) dragontoothmg.Board {
	fields := strings.Fields(b.ToFen())
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"
	return dragontoothmg.ParseFen(strings.Join(fields, " "))
}
