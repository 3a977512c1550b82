package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// PawnCaptureBitboards returns the east and west attack sets of a pawn
// bitboard. White pawns attack up the board, black pawns down.
func PawnCaptureBitboards(pawns uint64, white bool) (east uint64, west uint64) {
	if white {
		east = (pawns << 9) &^ bitboardFileA
		west = (pawns << 7) &^ bitboardFileH
	} else {
		east = (pawns >> 7) &^ bitboardFileA
		west = (pawns >> 9) &^ bitboardFileH
	}
	return east, west
}

func calculatePawnNorthFill(pawns uint64) uint64 {
	pawns = pawns << 8
	pawns |= pawns << 16
	pawns |= pawns << 32
	return pawns
}

func calculatePawnSouthFill(pawns uint64) uint64 {
	pawns = pawns >> 8
	pawns |= pawns >> 16
	pawns |= pawns >> 32
	return pawns
}

// getIsolatedPawnsBitboards returns the isolated pawns of each side: pawns
// with no friendly pawn on an adjacent file.
func getIsolatedPawnsBitboards(b *dragontoothmg.Board) (wIsolated, bIsolated uint64) {
	for x := b.White.Pawns; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		file := sq % 8
		adjacent := isolatedPawnTable[file] &^ onlyFile[file]
		if b.White.Pawns&adjacent == 0 {
			wIsolated |= PositionBB[sq]
		}
	}
	for x := b.Black.Pawns; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		file := sq % 8
		adjacent := isolatedPawnTable[file] &^ onlyFile[file]
		if b.Black.Pawns&adjacent == 0 {
			bIsolated |= PositionBB[sq]
		}
	}
	return wIsolated, bIsolated
}

// getPassedPawnsBitboards returns the passed pawns of each side: pawns with
// no enemy pawn on their own or an adjacent file anywhere ahead of them.
func getPassedPawnsBitboards(b *dragontoothmg.Board) (wPassed, bPassed uint64) {
	for x := b.White.Pawns; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		rank := sq / 8
		if rank == 7 {
			continue
		}
		span := isolatedPawnTable[sq%8] & ranksAbove[rank+1]
		if b.Black.Pawns&span == 0 {
			wPassed |= PositionBB[sq]
		}
	}
	for x := b.Black.Pawns; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		rank := sq / 8
		if rank == 0 {
			continue
		}
		span := isolatedPawnTable[sq%8] & ranksBelow[rank-1]
		if b.White.Pawns&span == 0 {
			bPassed |= PositionBB[sq]
		}
	}
	return wPassed, bPassed
}

// pawnFileMasks returns the union of files occupied by each side's pawns.
func pawnFileMasks(b *dragontoothmg.Board) (wFiles, bFiles uint64) {
	for x := b.White.Pawns; x != 0; x &= x - 1 {
		wFiles |= onlyFile[bits.TrailingZeros64(x)%8]
	}
	for x := b.Black.Pawns; x != 0; x &= x - 1 {
		bFiles |= onlyFile[bits.TrailingZeros64(x)%8]
	}
	return wFiles, bFiles
}

func chebyshevDistance(sq1, sq2 int) int {
	fileDiff := Abs(sq1%8 - sq2%8)
	rankDiff := Abs(sq1/8 - sq2/8)
	return Max(fileDiff, rankDiff)
}
