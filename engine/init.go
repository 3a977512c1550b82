package engine

// Precomputed board geometry. Everything here is filled in by init() and
// read-only afterwards.

var (
	// PositionBB[sq] is the single-bit board for a square, 0..63. Index 64
	// holds an empty board so off-the-end lookups stay in bounds.
	PositionBB [65]uint64

	// KingMasks and KnightMasks are the attack sets from each square.
	KingMasks   [64]uint64
	KnightMasks [64]uint64

	// FlipView mirrors a square vertically (a1 <-> a8), used to reuse the
	// white piece-square tables for black.
	FlipView [64]int

	onlyFile [8]uint64
	onlyRank [8]uint64

	// isolatedPawnTable[f] covers file f and its neighbors, for
	// isolated-pawn detection.
	isolatedPawnTable [8]uint64
)

const (
	bitboardFileA uint64 = 0x0101010101010101
	bitboardFileH uint64 = 0x8080808080808080
)

// ranksAbove[r] is every square on rank r and above; ranksBelow the mirror.
var ranksAbove = [8]uint64{
	0xffffffffffffffff, 0xffffffffffffff00, 0xffffffffffff0000, 0xffffffffff000000,
	0xffffffff00000000, 0xffffff0000000000, 0xffff000000000000, 0xff00000000000000,
}
var ranksBelow = [8]uint64{
	0x00000000000000ff, 0x000000000000ffff, 0x0000000000ffffff, 0x00000000ffffffff,
	0x000000ffffffffff, 0x0000ffffffffffff, 0x00ffffffffffffff, 0xffffffffffffffff,
}

func init() {
	for f := 0; f < 8; f++ {
		onlyFile[f] = bitboardFileA << uint(f)
		onlyRank[f] = uint64(0xff) << uint(f*8)
	}

	for f := 0; f < 8; f++ {
		isolatedPawnTable[f] = onlyFile[f]
		if f > 0 {
			isolatedPawnTable[f] |= onlyFile[f-1]
		}
		if f < 7 {
			isolatedPawnTable[f] |= onlyFile[f+1]
		}
	}

	for sq := 0; sq < 64; sq++ {
		sqBB := uint64(1) << uint(sq)
		PositionBB[sq] = sqBB
		FlipView[sq] = sq ^ 56

		top := sqBB << 8
		bottom := sqBB >> 8
		left := (sqBB >> 1) &^ bitboardFileH
		right := (sqBB << 1) &^ bitboardFileA
		topLeft := (sqBB << 7) &^ bitboardFileH
		topRight := (sqBB << 9) &^ bitboardFileA
		bottomLeft := (sqBB >> 9) &^ bitboardFileH
		bottomRight := (sqBB >> 7) &^ bitboardFileA
		KingMasks[sq] = top | bottom | left | right | topLeft | topRight | bottomLeft | bottomRight

		fileAB := bitboardFileA | bitboardFileA<<1
		fileGH := bitboardFileH | bitboardFileH>>1
		nnw := (sqBB << 15) &^ bitboardFileH
		nne := (sqBB << 17) &^ bitboardFileA
		nww := (sqBB << 6) &^ fileGH
		nee := (sqBB << 10) &^ fileAB
		ssw := (sqBB >> 17) &^ bitboardFileH
		sse := (sqBB >> 15) &^ bitboardFileA
		sww := (sqBB >> 10) &^ fileGH
		see := (sqBB >> 6) &^ fileAB
		KnightMasks[sq] = nnw | nne | nww | nee | ssw | sse | sww | see
	}
	PositionBB[64] = 0
}
