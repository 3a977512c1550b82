package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Game phase weights: knights/bishops 1, rooks 2, queens 4. A full board
// sums to 24, which maps to phase 256 (pure middlegame); no pieces maps to
// phase 0 (pure endgame).
const totalPhase = 24

func gamePhase(b *dragontoothmg.Board) int {
	phase := bits.OnesCount64(b.White.Knights|b.Black.Knights) +
		bits.OnesCount64(b.White.Bishops|b.Black.Bishops) +
		2*bits.OnesCount64(b.White.Rooks|b.Black.Rooks) +
		4*bits.OnesCount64(b.White.Queens|b.Black.Queens)
	scaled := (phase*256 + totalPhase/2) / totalPhase
	return Min(scaled, 256)
}

// Evaluation returns a centipawn score for the position from the
// perspective of the side to move. Middlegame and endgame totals are
// computed white-minus-black, blended by phase, then sign-adjusted.
func Evaluation(b *dragontoothmg.Board, w *EvalWeights) int32 {
	phase := gamePhase(b)

	var mg, eg int

	matMG, matEG := materialAndPlacement(b, w)
	mg += matMG
	eg += matEG

	// King safety carries middlegame weight only.
	mg += kingSafety(b, w, true) - kingSafety(b, w, false)

	passedMG, passedEG := passedPawnBonus(b, w)
	mg += passedMG
	eg += passedEG

	mobMG, mobEG := mobility(b, w)
	mg += mobMG
	eg += mobEG

	structMG, structEG := pawnStructure(b, w)
	mg += structMG
	eg += structEG

	pairMG, pairEG := bishopPair(b, w)
	mg += pairMG
	eg += pairEG

	rookMG, rookEG := rookPlacement(b, w)
	mg += rookMG
	eg += rookEG

	score := (mg*phase + eg*(256-phase)) / 256
	if !b.Wtomove {
		score = -score
	}
	return int32(score)
}

func materialAndPlacement(b *dragontoothmg.Board, w *EvalWeights) (mg, eg int) {
	sets := [6]struct {
		white, black uint64
		pt           dragontoothmg.Piece
	}{
		{b.White.Pawns, b.Black.Pawns, dragontoothmg.Pawn},
		{b.White.Knights, b.Black.Knights, dragontoothmg.Knight},
		{b.White.Bishops, b.Black.Bishops, dragontoothmg.Bishop},
		{b.White.Rooks, b.Black.Rooks, dragontoothmg.Rook},
		{b.White.Queens, b.Black.Queens, dragontoothmg.Queen},
		{b.White.Kings, b.Black.Kings, dragontoothmg.King},
	}
	for _, s := range sets {
		val := w.PieceValue[s.pt]
		for x := s.white; x != 0; x &= x - 1 {
			sq := bits.TrailingZeros64(x)
			mg += val + PSQT_MG[s.pt][sq]
			eg += val + PSQT_EG[s.pt][sq]
		}
		for x := s.black; x != 0; x &= x - 1 {
			sq := FlipView[bits.TrailingZeros64(x)]
			mg -= val + PSQT_MG[s.pt][sq]
			eg -= val + PSQT_EG[s.pt][sq]
		}
	}
	return mg, eg
}

// kingSafety scores one side's king shelter: pawn shield, open and
// semi-open files around the king, and a saturating penalty keyed by how
// many enemy pieces attack the king's neighborhood.
func kingSafety(b *dragontoothmg.Board, w *EvalWeights, white bool) int {
	var own, enemy *dragontoothmg.Bitboards
	if white {
		own, enemy = &b.White, &b.Black
	} else {
		own, enemy = &b.Black, &b.White
	}

	kingSq := bits.TrailingZeros64(own.Kings)
	kingFile := kingSq % 8
	kingRank := kingSq / 8
	score := 0

	// Pawn shield: the two ranks in front of the king, counted only when
	// the king sits on its home two ranks.
	onHomeRanks := (white && kingRank <= 1) || (!white && kingRank >= 6)
	if onHomeRanks {
		var shieldMask uint64
		if white {
			shieldMask = isolatedPawnTable[kingFile] & (onlyRank[kingRank+1] | onlyRank[kingRank+2])
		} else {
			shieldMask = isolatedPawnTable[kingFile] & (onlyRank[kingRank-1] | onlyRank[kingRank-2])
		}
		score += bits.OnesCount64(own.Pawns&shieldMask) * w.PawnShield
	}

	// Open and semi-open files on and next to the king's file.
	for f := Max(kingFile-1, 0); f <= Min(kingFile+1, 7); f++ {
		fileMask := onlyFile[f]
		hasOwn := own.Pawns&fileMask != 0
		hasEnemy := enemy.Pawns&fileMask != 0
		if !hasOwn && !hasEnemy {
			score += w.KingOpenFile
		} else if !hasOwn {
			score += w.KingSemiOpenFile
		}
	}

	// Attacker count against the king's 3x3 zone, capped by the table.
	zone := KingMasks[kingSq] | PositionBB[kingSq]
	occupied := b.White.All | b.Black.All
	attackers := 0

	for x := enemy.Knights; x != 0; x &= x - 1 {
		if KnightMasks[bits.TrailingZeros64(x)]&zone != 0 {
			attackers++
		}
	}
	for x := enemy.Bishops; x != 0; x &= x - 1 {
		sq := uint8(bits.TrailingZeros64(x))
		if dragontoothmg.CalculateBishopMoveBitboard(sq, occupied)&zone != 0 {
			attackers++
		}
	}
	for x := enemy.Rooks; x != 0; x &= x - 1 {
		sq := uint8(bits.TrailingZeros64(x))
		if dragontoothmg.CalculateRookMoveBitboard(sq, occupied)&zone != 0 {
			attackers++
		}
	}
	for x := enemy.Queens; x != 0; x &= x - 1 {
		sq := uint8(bits.TrailingZeros64(x))
		attacks := dragontoothmg.CalculateRookMoveBitboard(sq, occupied) |
			dragontoothmg.CalculateBishopMoveBitboard(sq, occupied)
		if attacks&zone != 0 {
			attackers++
		}
	}
	for x := enemy.Pawns; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		pawnEast, pawnWest := PawnCaptureBitboards(PositionBB[sq], !white)
		if (pawnEast|pawnWest)&zone != 0 {
			attackers++
		}
	}

	score += w.KingAttackPenalty[Min(attackers, len(w.KingAttackPenalty)-1)]
	return score
}

// passedPawnBonus is quadratic in how far the pawn has advanced; the
// endgame term additionally rewards the enemy king being far from the
// promotion square and the friendly king escorting the pawn.
func passedPawnBonus(b *dragontoothmg.Board, w *EvalWeights) (mg, eg int) {
	wPassed, bPassed := getPassedPawnsBitboards(b)
	wKing := bits.TrailingZeros64(b.White.Kings)
	bKing := bits.TrailingZeros64(b.Black.Kings)

	for x := wPassed; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		adv := sq/8 - 1
		promoSq := sq%8 + 56
		mg += w.PassedPawnMG * adv * adv
		eg += w.PassedPawnEG*adv*adv +
			w.PassedEnemyKingDistEG*chebyshevDistance(bKing, promoSq) +
			w.PassedOwnKingProxEG*(7-chebyshevDistance(wKing, sq))
	}
	for x := bPassed; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		adv := 6 - sq/8
		promoSq := sq % 8
		mg -= w.PassedPawnMG * adv * adv
		eg -= w.PassedPawnEG*adv*adv +
			w.PassedEnemyKingDistEG*chebyshevDistance(wKing, promoSq) +
			w.PassedOwnKingProxEG*(7-chebyshevDistance(bKing, sq))
	}
	return mg, eg
}

// mobility counts reachable squares per piece, centered on a per-type
// baseline so typical mobility contributes roughly nothing. Minor-piece
// mobility ignores squares covered by enemy pawns.
func mobility(b *dragontoothmg.Board, w *EvalWeights) (mg, eg int) {
	occupied := b.White.All | b.Black.All
	wPawnEast, wPawnWest := PawnCaptureBitboards(b.White.Pawns, true)
	bPawnEast, bPawnWest := PawnCaptureBitboards(b.Black.Pawns, false)
	wPawnAttacks := wPawnEast | wPawnWest
	bPawnAttacks := bPawnEast | bPawnWest

	count := func(moves uint64, pt dragontoothmg.Piece) (int, int) {
		n := bits.OnesCount64(moves) - w.MobilityBaseline[pt]
		return n * w.MobilityMG[pt], n * w.MobilityEG[pt]
	}

	for x := b.White.Knights; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		m, e := count(KnightMasks[sq]&^b.White.All&^bPawnAttacks, dragontoothmg.Knight)
		mg += m
		eg += e
	}
	for x := b.Black.Knights; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		m, e := count(KnightMasks[sq]&^b.Black.All&^wPawnAttacks, dragontoothmg.Knight)
		mg -= m
		eg -= e
	}

	for x := b.White.Bishops; x != 0; x &= x - 1 {
		sq := uint8(bits.TrailingZeros64(x))
		moves := dragontoothmg.CalculateBishopMoveBitboard(sq, occupied) &^ b.White.All &^ bPawnAttacks
		m, e := count(moves, dragontoothmg.Bishop)
		mg += m
		eg += e
	}
	for x := b.Black.Bishops; x != 0; x &= x - 1 {
		sq := uint8(bits.TrailingZeros64(x))
		moves := dragontoothmg.CalculateBishopMoveBitboard(sq, occupied) &^ b.Black.All &^ wPawnAttacks
		m, e := count(moves, dragontoothmg.Bishop)
		mg -= m
		eg -= e
	}

	for x := b.White.Rooks; x != 0; x &= x - 1 {
		sq := uint8(bits.TrailingZeros64(x))
		moves := dragontoothmg.CalculateRookMoveBitboard(sq, occupied) &^ b.White.All
		m, e := count(moves, dragontoothmg.Rook)
		mg += m
		eg += e
	}
	for x := b.Black.Rooks; x != 0; x &= x - 1 {
		sq := uint8(bits.TrailingZeros64(x))
		moves := dragontoothmg.CalculateRookMoveBitboard(sq, occupied) &^ b.Black.All
		m, e := count(moves, dragontoothmg.Rook)
		mg -= m
		eg -= e
	}

	for x := b.White.Queens; x != 0; x &= x - 1 {
		sq := uint8(bits.TrailingZeros64(x))
		moves := (dragontoothmg.CalculateRookMoveBitboard(sq, occupied) |
			dragontoothmg.CalculateBishopMoveBitboard(sq, occupied)) &^ b.White.All
		m, e := count(moves, dragontoothmg.Queen)
		mg += m
		eg += e
	}
	for x := b.Black.Queens; x != 0; x &= x - 1 {
		sq := uint8(bits.TrailingZeros64(x))
		moves := (dragontoothmg.CalculateRookMoveBitboard(sq, occupied) |
			dragontoothmg.CalculateBishopMoveBitboard(sq, occupied)) &^ b.Black.All
		m, e := count(moves, dragontoothmg.Queen)
		mg -= m
		eg -= e
	}

	return mg, eg
}

func pawnStructure(b *dragontoothmg.Board, w *EvalWeights) (mg, eg int) {
	var wDoubled, bDoubled int
	for f := 0; f < 8; f++ {
		wDoubled += Max(bits.OnesCount64(b.White.Pawns&onlyFile[f])-1, 0)
		bDoubled += Max(bits.OnesCount64(b.Black.Pawns&onlyFile[f])-1, 0)
	}
	mg += (wDoubled - bDoubled) * w.DoubledPawnMG
	eg += (wDoubled - bDoubled) * w.DoubledPawnEG

	wIsolated, bIsolated := getIsolatedPawnsBitboards(b)
	isoDiff := bits.OnesCount64(wIsolated) - bits.OnesCount64(bIsolated)
	mg += isoDiff * w.IsolatedPawnMG
	eg += isoDiff * w.IsolatedPawnEG

	return mg, eg
}

func bishopPair(b *dragontoothmg.Board, w *EvalWeights) (mg, eg int) {
	if bits.OnesCount64(b.White.Bishops) >= 2 {
		mg += w.BishopPairMG
		eg += w.BishopPairEG
	}
	if bits.OnesCount64(b.Black.Bishops) >= 2 {
		mg -= w.BishopPairMG
		eg -= w.BishopPairEG
	}
	return mg, eg
}

func rookPlacement(b *dragontoothmg.Board, w *EvalWeights) (mg, eg int) {
	wFiles, bFiles := pawnFileMasks(b)

	for x := b.White.Rooks; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		fileMask := onlyFile[sq%8]
		if (wFiles|bFiles)&fileMask == 0 {
			mg += w.RookOpenFileMG
		} else if wFiles&fileMask == 0 {
			mg += w.RookSemiOpenFileMG
		}
		if sq/8 == 6 {
			eg += w.RookSeventhRankEG
		}
	}
	for x := b.Black.Rooks; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		fileMask := onlyFile[sq%8]
		if (wFiles|bFiles)&fileMask == 0 {
			mg -= w.RookOpenFileMG
		} else if bFiles&fileMask == 0 {
			mg -= w.RookSemiOpenFileMG
		}
		if sq/8 == 1 {
			eg -= w.RookSeventhRankEG
		}
	}
	return mg, eg
}
