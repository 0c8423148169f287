package engine

import (
	"fmt"
	"math/bits"

	gm "chesscore/board"
)

// Additional LMR tuning knobs, layered on top of the base reduction table.
var LMRHistoryReductionScale = 4000
var LMRHistoryLowThreshold = -2000
var LMRLegalMovesLimit = 6

// cutStats counts how often each pruning/cutoff heuristic fired during the
// last search, dumped to stderr when PrintCutStats is set.
type cutStatsStruct struct {
	TTCutoffs         int
	StaticNullCutoffs int
	NullMoveCutoffs   int
	BetaCutoffs       int
	LateMovePrunes    int
	FutilityPrunes    int
	QStandPatCutoffs  int
	QBetaCutoffs      int
}

var cutStats cutStatsStruct
var PrintCutStats bool

func dumpCutStats() {
	fmt.Println("info string cutstats tt", cutStats.TTCutoffs,
		"staticnull", cutStats.StaticNullCutoffs,
		"nullmove", cutStats.NullMoveCutoffs,
		"beta", cutStats.BetaCutoffs,
		"lmp", cutStats.LateMovePrunes,
		"futility", cutStats.FutilityPrunes,
		"qstandpat", cutStats.QStandPatCutoffs,
		"qbeta", cutStats.QBetaCutoffs)
	cutStats = cutStatsStruct{}
}

// initVariables resets the per-search bookkeeping that must start clean
// before a new StartSearch call: node counter, stop flags and cut stats.
func initVariables(board *gm.Board) {
	nodesChecked = 0
	searchShouldStop = false
	GlobalStop = false
	cutStats = cutStatsStruct{}
	ttMoveAvailable = 0
	ttMoveNotAvailable = 0
	KillerMoveTable.ClearKillers()
}

// isTheoreticalDraw reports whether the position has insufficient material
// for either side to force checkmate, ignoring the fifty-move and
// repetition rules handled separately by the state stack.
func isTheoreticalDraw(board *gm.Board, debug bool) bool {
	white := board.WhiteBitboards()
	black := board.BlackBitboards()

	if white.Pawns != 0 || black.Pawns != 0 {
		return false
	}
	if white.Queens != 0 || black.Queens != 0 {
		return false
	}
	if white.Rooks != 0 || black.Rooks != 0 {
		return false
	}

	wMinors := bits.OnesCount64(white.Bishops) + bits.OnesCount64(white.Knights)
	bMinors := bits.OnesCount64(black.Bishops) + bits.OnesCount64(black.Knights)

	if wMinors == 0 && bMinors == 0 {
		if debug {
			fmt.Println("info string theoretical draw: bare kings")
		}
		return true
	}

	// A lone minor piece against a lone king cannot force mate.
	if wMinors+bMinors == 1 {
		if debug {
			fmt.Println("info string theoretical draw: lone minor vs king")
		}
		return true
	}

	// Two knights against a lone king cannot force mate either.
	if bits.OnesCount64(white.Bishops) == 0 && bits.OnesCount64(white.Knights) == 2 && bMinors == 0 {
		return true
	}
	if bits.OnesCount64(black.Bishops) == 0 && bits.OnesCount64(black.Knights) == 2 && wMinors == 0 {
		return true
	}

	return false
}
