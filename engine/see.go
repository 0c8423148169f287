package engine

import (
	"math/bits"

	gm "chesscore/board"
)

// SeePieceValue gives the material value used by the static exchange
// evaluator, indexed by colorless piece type.
var SeePieceValue = [7]int{
	gm.PieceTypeKing:   5000,
	gm.PieceTypePawn:   100,
	gm.PieceTypeKnight: 300,
	gm.PieceTypeBishop: 300,
	gm.PieceTypeRook:   500,
	gm.PieceTypeQueen:  900,
}

// see runs the classic swap-off algorithm on the target square of a capture
// move and returns the net material gain for the side to move if the
// exchange sequence is played out to the end.
func see(b *gm.Board, move gm.Move, debug bool) int {
	var gain [32]int
	var depth uint8

	sideToMove := b.SideToMove() == gm.White

	initSquare := uint8(move.From())
	targetSquare := uint8(move.To())

	white := b.WhiteBitboards()
	black := b.BlackBitboards()

	whiteAttackers := getPiecesAttackingSquare(targetSquare, white, black, true)
	blackAttackers := getPiecesAttackingSquare(targetSquare, black, white, false)
	attadef := whiteAttackers | blackAttackers

	var targetPiece, attacker gm.PieceType
	if sideToMove {
		targetPiece = b.PieceAt(gm.Square(targetSquare)).Type()
		attacker = b.PieceAt(gm.Square(initSquare)).Type()
	} else {
		targetPiece = b.PieceAt(gm.Square(targetSquare)).Type()
		attacker = b.PieceAt(gm.Square(initSquare)).Type()
	}
	if targetPiece == gm.PieceTypeNone {
		targetPiece = gm.PieceTypePawn // en passant: captured pawn isn't on the target square
	}

	attackerBB := PositionBB[initSquare]
	gain[depth] = SeePieceValue[targetPiece]

	sideToMove = !sideToMove

	for done := true; done; done = attackerBB != 0 {
		depth++
		gain[depth] = SeePieceValue[attacker] - gain[depth-1]

		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		attadef ^= attackerBB
		attackerBB, attacker = getClosestAttacker(b, attadef, sideToMove, targetSquare)
		sideToMove = !sideToMove
	}

	for x := depth - 1; x > 0; x-- {
		gain[x-1] = -max(-gain[x-1], gain[x])
	}

	return gain[0]
}

func getPiecesAttackingSquare(targetSquare uint8, usBB, enemyBB gm.Bitboards, white bool) uint64 {
	orthogonalXray := gm.CalculateRookMoveBitboard(targetSquare, (usBB.All&^(usBB.Rooks|usBB.Queens))|(enemyBB.All&^(enemyBB.Rooks|enemyBB.Queens))) &^ (usBB.All &^ (usBB.Rooks | usBB.Queens | enemyBB.Rooks | enemyBB.Queens))

	var attackBB, pawnBB uint64
	targetBB := PositionBB[targetSquare]

	for x := usBB.Pawns; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		pBB := PositionBB[sq]
		east, west := PawnCaptureBitboards(pBB, white)
		if (east|west)&targetBB != 0 {
			attackBB |= pBB
			pawnBB |= pBB
		}
	}

	diagonalXray := gm.CalculateBishopMoveBitboard(targetSquare, (usBB.All&^(usBB.Bishops|usBB.Queens|pawnBB))|enemyBB.All) &^ (usBB.All &^ (usBB.Bishops | usBB.Queens))

	hitPieces := attackBB | orthogonalXray&(usBB.Rooks|usBB.Queens)
	hitPieces |= diagonalXray & (usBB.Bishops | usBB.Queens)
	hitPieces |= KnightMasks[targetSquare] & usBB.Knights
	hitPieces |= KingMoves[targetSquare] & usBB.Kings

	return hitPieces
}

func getClosestAttacker(b *gm.Board, attadef uint64, white bool, targetSquare uint8) (uint64, gm.PieceType) {
	var usBB gm.Bitboards
	if white {
		usBB = b.WhiteBitboards()
	} else {
		usBB = b.BlackBitboards()
	}

	diagonalAttack := gm.CalculateBishopMoveBitboard(targetSquare, attadef) &^ (usBB.All &^ (usBB.Bishops | usBB.Queens))
	diagonalAttack &= attadef

	orthogonalAttack := gm.CalculateRookMoveBitboard(targetSquare, attadef) &^ (usBB.All &^ (usBB.Rooks | usBB.Queens))
	orthogonalAttack &= attadef

	east, west := PawnCaptureBitboards(PositionBB[targetSquare], !white)
	hitPieces := ((east | west) | diagonalAttack | orthogonalAttack | (KnightMasks[targetSquare] & usBB.Knights)) & attadef
	return minAttacker(hitPieces, usBB)
}

func minAttacker(attadef uint64, bb gm.Bitboards) (uint64, gm.PieceType) {
	var subset uint64
	var piece gm.PieceType

	switch {
	case attadef&bb.Pawns > 0:
		subset, piece = attadef&bb.Pawns, gm.PieceTypePawn
	case attadef&bb.Knights > 0:
		subset, piece = attadef&bb.Knights, gm.PieceTypeKnight
	case attadef&bb.Bishops > 0:
		subset, piece = attadef&bb.Bishops, gm.PieceTypeBishop
	case attadef&bb.Rooks > 0:
		subset, piece = attadef&bb.Rooks, gm.PieceTypeRook
	case attadef&bb.Queens > 0:
		subset, piece = attadef&bb.Queens, gm.PieceTypeQueen
	case attadef&bb.Kings > 0:
		subset, piece = attadef&bb.Kings, gm.PieceTypeKing
	}

	if subset != 0 {
		return PositionBB[bits.TrailingZeros64(subset)], piece
	}
	return 0, piece
}
