package engine

import gm "chesscore/board"

type move struct {
	move          gm.Move
	score         uint16
	capturedPiece gm.PieceType
}

type moveList struct {
	moves []move
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures.
var mvvLva = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

/*
Move ordering offsets.
  - PV/TT moves go first, since they already guided a prior iteration or IID probe.
  - Promotions are scored just under the PV move; the few times they occur they are critical.
  - Captures come next, ordered by MVV-LVA.
  - Killers and counters are preferred among the remaining quiet moves, then history.
*/
var pvOffset uint16 = 25000
var promotionOffset uint16 = 20000
var captureOffset uint16 = 15000
var killerOffset uint16 = 2000
var counterOffset uint16 = 1000

// orderNextMove selects the highest-scoring remaining move and swaps it into place,
// implementing a selection sort driven one step at a time by the search loop.
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

func scoreMovesList(board *gm.Board, moves []gm.Move, ply int8, pvMove gm.Move, prevMove gm.Move) moveList {
	sideIdx := 0
	if board.SideToMove() != gm.White {
		sideIdx = 1
	}

	var list moveList
	list.moves = make([]move, len(moves))
	for i, mv := range moves {
		var scoreVal uint16
		capturedType := mv.CapturedPiece().Type()
		promoType := mv.PromotionPieceType()

		switch {
		case mv == pvMove:
			scoreVal = pvOffset + 1500
		case promoType != gm.PieceTypeNone:
			scoreVal = promotionOffset + uint16(pieceValueEG[promoType])
		case capturedType != gm.PieceTypeNone:
			scoreVal = captureOffset + mvvLva[capturedType][mv.MovedPiece().Type()]
		case KillerMoveTable.KillerMoves[ply][0] == mv:
			scoreVal = killerOffset + 200
		case KillerMoveTable.KillerMoves[ply][1] == mv:
			scoreVal = killerOffset
		default:
			if h := historyMove[sideIdx][mv.From()][mv.To()]; h > 0 {
				scoreVal = uint16(h)
			}
			if counterMove[sideIdx][prevMove.From()][prevMove.To()] == mv {
				scoreVal += counterOffset
			}
		}

		list.moves[i] = move{move: mv, score: scoreVal, capturedPiece: capturedType}
	}
	return list
}

func scoreMovesListCaptures(board *gm.Board, moves []gm.Move, pvMove gm.Move) (moveList, bool) {
	var list moveList
	list.moves = make([]move, 0, len(moves))

	for _, mv := range moves {
		capturedType := mv.CapturedPiece().Type()
		isPromotion := mv.PromotionPieceType() != gm.PieceTypeNone
		if capturedType == gm.PieceTypeNone && !isPromotion {
			continue
		}

		var scoreVal uint16
		switch {
		case mv == pvMove:
			scoreVal = captureOffset + 256
		case isPromotion:
			scoreVal = captureOffset + 75
		default:
			scoreVal = mvvLva[capturedType][mv.MovedPiece().Type()]
		}

		list.moves = append(list.moves, move{move: mv, score: scoreVal, capturedPiece: capturedType})
	}

	return list, len(list.moves) > 0
}
