package engine

import gm "chesscore/board"

// EmptyMove is the zero-value sentinel move used for "no move" comparisons.
const EmptyMove gm.Move = 0

// KillerStruct holds, per ply, the two most recent quiet moves that caused a
// beta cutoff. Killer moves are searched early since they are likely to be
// good again in sibling nodes at the same ply.
type KillerStruct struct {
	KillerMoves [MaxDepth + 1][2]gm.Move
}

// InsertKiller records move as the newest killer at ply, demoting the
// previous primary killer to secondary.
func InsertKiller(move gm.Move, ply int8, k *KillerStruct) {
	if ply < 0 || int(ply) >= len(k.KillerMoves) {
		return
	}
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// IsKiller reports whether move is one of the two killers recorded at ply.
func IsKiller(move gm.Move, ply int8, k *KillerStruct) bool {
	if ply < 0 || int(ply) >= len(k.KillerMoves) {
		return false
	}
	return move == k.KillerMoves[ply][0] || move == k.KillerMoves[ply][1]
}

// ClearKillers resets the killer-move table for a new search.
func (k *KillerStruct) ClearKillers() {
	for ply := range k.KillerMoves {
		k.KillerMoves[ply][0] = EmptyMove
		k.KillerMoves[ply][1] = EmptyMove
	}
}
