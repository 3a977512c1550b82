package engine

import "github.com/dylhunn/dragontoothmg"

type scoredMove struct {
	move          dragontoothmg.Move
	score         uint16
	capturedPiece dragontoothmg.Piece
}

type moveList struct {
	moves []scoredMove
}

// Most Valuable Victim - Least Valuable Aggressor. Row is the victim,
// column the attacker; higher is searched earlier.
var mvvLva = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

// Ordering tiers. The TT move outranks everything, then promotions, then
// captures, then the quiet-move heuristics.
const (
	ttMoveOffset    uint16 = 25000
	promotionOffset uint16 = 20000
	captureOffset   uint16 = 15000
	killerOffset    uint16 = 2000
)

// historyMaxVal keeps quiet history scores below the killer tier.
const historyMaxVal = 2000

// MaxPly bounds the killer table and search recursion depth.
const MaxPly = 64

type KillerTable struct {
	moves [MaxPly + 1][2]dragontoothmg.Move
}

// Insert records a quiet cutoff move for a ply, most recent first.
func (k *KillerTable) Insert(move dragontoothmg.Move, ply int8) {
	if move != k.moves[ply][0] {
		k.moves[ply][1] = k.moves[ply][0]
		k.moves[ply][0] = move
	}
}

func (k *KillerTable) Clear() {
	for ply := 0; ply <= MaxPly; ply++ {
		k.moves[ply][0] = 0
		k.moves[ply][1] = 0
	}
}

// GetPieceTypeAtPosition reports which piece of a side, if any, occupies a
// square.
func GetPieceTypeAtPosition(position uint8, bitboards *dragontoothmg.Bitboards) (dragontoothmg.Piece, bool) {
	switch {
	case bitboards.Pawns&(1<<position) != 0:
		return dragontoothmg.Pawn, true
	case bitboards.Knights&(1<<position) != 0:
		return dragontoothmg.Knight, true
	case bitboards.Bishops&(1<<position) != 0:
		return dragontoothmg.Bishop, true
	case bitboards.Rooks&(1<<position) != 0:
		return dragontoothmg.Rook, true
	case bitboards.Queens&(1<<position) != 0:
		return dragontoothmg.Queen, true
	case bitboards.Kings&(1<<position) != 0:
		return dragontoothmg.King, true
	}
	return 0, false
}

// orderNextMove selection-sorts the best remaining move into place at
// currIndex, so the move loop only pays full sorting cost when it runs the
// whole list.
func orderNextMove(currIndex uint8, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < uint8(len(moves.moves)); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}

// scoreMovesList ranks all moves: TT move, promotions, captures by
// MVV-LVA, killers, then history.
func (ctx *SearchContext) scoreMovesList(board *dragontoothmg.Board, moves []dragontoothmg.Move, ply int8, ttMove dragontoothmg.Move) moveList {
	var own, opponent *dragontoothmg.Bitboards
	side := 0
	if board.Wtomove {
		own, opponent = &board.White, &board.Black
	} else {
		own, opponent = &board.Black, &board.White
		side = 1
	}

	list := moveList{moves: make([]scoredMove, len(moves))}
	for i, move := range moves {
		var moveEval uint16
		capturedPiece, isCapture := GetPieceTypeAtPosition(move.To(), opponent)

		switch {
		case move == ttMove:
			moveEval = ttMoveOffset + 1500
		case move.Promote() > 0:
			moveEval = promotionOffset + uint16(ctx.Weights.PieceValue[move.Promote()])
		case isCapture:
			attacker, _ := GetPieceTypeAtPosition(move.From(), own)
			moveEval = captureOffset + mvvLva[capturedPiece][attacker]
		case ctx.Killers.moves[ply][0] == move:
			moveEval = killerOffset + 200
		case ctx.Killers.moves[ply][1] == move:
			moveEval = killerOffset
		default:
			moveEval = uint16(ctx.history[side][move.From()][move.To()])
		}

		list.moves[i] = scoredMove{move: move, score: moveEval, capturedPiece: capturedPiece}
	}
	return list
}

// scoreMovesListCaptures keeps only captures and queen promotions, scored
// by MVV-LVA, for quiescence.
func (ctx *SearchContext) scoreMovesListCaptures(board *dragontoothmg.Board, moves []dragontoothmg.Move) moveList {
	var own, opponent *dragontoothmg.Bitboards
	if board.Wtomove {
		own, opponent = &board.White, &board.Black
	} else {
		own, opponent = &board.Black, &board.White
	}

	list := moveList{moves: make([]scoredMove, 0, len(moves))}
	for _, move := range moves {
		victim, isCapture := GetPieceTypeAtPosition(move.To(), opponent)
		isQueenPromotion := move.Promote() == dragontoothmg.Queen
		if !isCapture && !isQueenPromotion {
			continue
		}

		var moveEval uint16
		if isQueenPromotion {
			moveEval = captureOffset + 75
		} else {
			attacker, _ := GetPieceTypeAtPosition(move.From(), own)
			moveEval = mvvLva[victim][attacker]
		}
		list.moves = append(list.moves, scoredMove{move: move, score: moveEval, capturedPiece: victim})
	}
	return list
}

// incrementHistoryScore rewards a quiet move that caused a beta cutoff
// with depth^2 weight, aging the table when scores climb too high.
func (ctx *SearchContext) incrementHistoryScore(wtomove bool, move dragontoothmg.Move, depth int8) {
	side := 0
	if !wtomove {
		side = 1
	}
	ctx.history[side][move.From()][move.To()] += int(depth) * int(depth)
	if ctx.history[side][move.From()][move.To()] >= historyMaxVal {
		ctx.ageHistoryTable(side)
	}
}

// ageHistoryTable halves one side's history scores.
func (ctx *SearchContext) ageHistoryTable(side int) {
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			ctx.history[side][from][to] /= 2
		}
	}
}

func (ctx *SearchContext) clearHistoryTable() {
	for side := 0; side < 2; side++ {
		for from := 0; from < 64; from++ {
			for to := 0; to < 64; to++ {
				ctx.history[side][from][to] = 0
			}
		}
	}
}
