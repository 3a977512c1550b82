package engine

// EvalWeights collects every tuned constant the evaluator uses. The values
// are empirical; treat them as one swappable table rather than individually
// meaningful numbers.
type EvalWeights struct {
	// Material, both phases, indexed by piece type.
	PieceValue [7]int

	// King safety (middlegame only).
	PawnShield        int
	KingOpenFile      int
	KingSemiOpenFile  int
	KingAttackPenalty [7]int

	// Passed pawns: quadratic-in-advancement coefficients plus the
	// endgame king-distance terms.
	PassedPawnMG          int
	PassedPawnEG          int
	PassedEnemyKingDistEG int
	PassedOwnKingProxEG   int

	// Mobility, centered on a per-piece baseline.
	MobilityBaseline [7]int
	MobilityMG       [7]int
	MobilityEG       [7]int

	// Pawn structure.
	DoubledPawnMG  int
	DoubledPawnEG  int
	IsolatedPawnMG int
	IsolatedPawnEG int

	// Minor and rook placement.
	BishopPairMG       int
	BishopPairEG       int
	RookOpenFileMG     int
	RookSemiOpenFileMG int
	RookSeventhRankEG  int
}

// DefaultWeights returns the stock evaluation tuning.
func DefaultWeights() *EvalWeights {
	return &EvalWeights{
		PieceValue: [7]int{0, 100, 320, 330, 500, 900, 0},

		PawnShield:        15,
		KingOpenFile:      -20,
		KingSemiOpenFile:  -10,
		KingAttackPenalty: [7]int{0, -5, -20, -45, -80, -120, -160},

		PassedPawnMG:          4,
		PassedPawnEG:          8,
		PassedEnemyKingDistEG: 4,
		PassedOwnKingProxEG:   2,

		MobilityBaseline: [7]int{0, 0, 4, 6, 7, 13, 0},
		MobilityMG:       [7]int{0, 0, 4, 3, 2, 1, 0},
		MobilityEG:       [7]int{0, 0, 4, 3, 6, 2, 0},

		DoubledPawnMG:  -10,
		DoubledPawnEG:  -20,
		IsolatedPawnMG: -12,
		IsolatedPawnEG: -18,

		BishopPairMG:       10,
		BishopPairEG:       50,
		RookOpenFileMG:     30,
		RookSemiOpenFileMG: 13,
		RookSeventhRankEG:  10,
	}
}
