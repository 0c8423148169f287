package engine

import gm "chesscore/board"

// PVLine accumulates the principal variation as alpha-beta unwinds.
type PVLine struct {
	Moves []gm.Move
}

// Clear empties the line for reuse without reallocating its backing array.
func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

// Update sets move as the new best line's head, followed by the child's line.
func (pv *PVLine) Update(move gm.Move, child PVLine) {
	pv.Moves = append(pv.Moves[:0], move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

// Clone returns an independent copy, safe to retain across further search.
func (pv PVLine) Clone() PVLine {
	cp := make([]gm.Move, len(pv.Moves))
	copy(cp, pv.Moves)
	return PVLine{Moves: cp}
}

// GetPVMove returns the line's first move, or the zero move if empty.
func (pv PVLine) GetPVMove() gm.Move {
	if len(pv.Moves) == 0 {
		return gm.Move(0)
	}
	return pv.Moves[0]
}
