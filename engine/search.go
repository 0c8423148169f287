package engine

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	gm "chesscore/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

var KillerMoveTable KillerStruct

var ttMoveAvailable uint64
var ttMoveNotAvailable uint64

var SearchTime time.Duration
var searchShouldStop bool

// =============================================================================
// MARGINS
// =============================================================================
var FutilityMargins = [8]int32{0, 120, 220, 320, 420, 520, 620, 720}
var RFPMargins = [8]int32{0, 100, 200, 300, 400, 500, 600, 700}
var RazoringMargins = [4]int32{0, 125, 225, 325}

var LateMovePruningMargins = [9]int{0, 3, 5, 9, 14, 20, 27, 35, 44}

// =============================================================================
// LMR/PRUNING PARAMETERS - int8 is fine for depth-related values
// =============================================================================
var LMRDepthLimit int8 = 2
var LMRMoveLimit = 2
var LMRHistoryBonus = 500
var LMRHistoryMalus = -100
var NullMoveMinDepth int8 = 2
var SEEPruneDepth int8 = 8
var SEEPruneMargin = -20
var QuiescenceSeeMargin int = 100

// Score-related - use int32
var DeltaMargin int32 = 200
var aspirationWindowSize int32 = 35
var prevSearchScore int32 = 0

var TT TransTable
var timeHandler TimeHandler
var GlobalStop = false

// StartSearch runs iterative deepening from the given position and returns the
// best root move found along with its score (positive favors the side to move).
// If there is no legal move at the root, it returns the zero Move and a score
// of 0 rather than panicking or guessing.
func StartSearch(board *gm.Board, depth uint8, gameTime int, increment int, useCustomDepth bool, evalOnly bool, moveOrderingOnly bool) (gm.Move, int32) {
	initVariables(board)

	//Stat reset
	ensureStateStackSynced(board)

	if !TT.isInitialized {
		TT.init()
	}

	GlobalStop = false
	timeHandler.initTimemanagement(gameTime, increment, board.FullmoveNumber(), useCustomDepth)
	timeHandler.StartTime(board.FullmoveNumber())

	if evalOnly {
		Evaluation(board, true)
		println("Is this a theoretical draw: ", isTheoreticalDraw(board, true))
		return gm.Move(0), 0
	}

	if moveOrderingOnly {
		dumpRootMoveOrdering(board)
		return gm.Move(0), 0
	}

	if len(board.GenerateLegalMoves()) == 0 {
		return gm.Move(0), 0
	}

	bestScore, bestMove := rootsearch(board, depth, useCustomDepth)

	if PrintCutStats {
		dumpCutStats()
		PrintCutStats = false
	}

	return bestMove, bestScore
}

func rootsearch(b *gm.Board, depth uint8, useCustomDepth bool) (int32, gm.Move) {
	var timeSpent int64
	var alpha int32 = -MaxScore
	var beta int32 = MaxScore
	var bestScore int32 = -MaxScore
	rootIndex := len(rootTracker.states) - 1

	// Use previous search score as center of aspiration window if available
	if prevSearchScore != 0 {
		alpha = prevSearchScore - aspirationWindowSize
		beta = prevSearchScore + aspirationWindowSize
	}

	var bestMove gm.Move
	var pvLine PVLine
	var prevPVLine PVLine
	var mateFound bool

	currentWindow := aspirationWindowSize

	for i := uint8(1); i <= depth; i++ {
		if !useCustomDepth && i > 1 {
			if timeHandler.SoftTimeExceeded() && !timeHandler.ShouldExtendTime() {
				break
			}
			if timeHandler.ShouldStopEarly() {
				break
			}
		}

		pvLine.Clear()
		mateFound = false

		startTime := time.Now()
		score := searchRoot(b, alpha, beta, int8(i), &pvLine, rootIndex)
		timeSpent += time.Since(startTime).Milliseconds()

		if searchShouldStop || timeHandler.TimeStatus() || timeHandler.stopSearch || GlobalStop {
			if len(prevPVLine.Moves) == 0 && len(pvLine.Moves) > 0 {
				bestScore = score
				prevSearchScore = bestScore
				prevPVLine = pvLine.Clone()
			}
			break
		}

		if timeSpent == 0 {
			timeSpent = 1
		}
		nps := uint64(float64(nodesChecked*1000) / float64(timeSpent))

		theMoves := getPVLineString(pvLine)

		// Aspiration window re-search
		if score <= alpha || score >= beta {
			if alpha <= -MaxScore && beta >= MaxScore {
				currentWindow *= 2
			} else {
				if currentWindow >= int32(MaxScore) {
					currentWindow = int32(MaxScore)
				} else {
					currentWindow *= 2
				}
			}

			alpha = score - currentWindow
			beta = score + currentWindow

			if alpha < -MaxScore {
				alpha = -MaxScore
			}
			if beta > MaxScore {
				beta = MaxScore
			}
			i--
			continue
		}

		if (score > Checkmate || score < -Checkmate) && len(pvLine.Moves) > 0 { // If we found checkmate...
			mateFound = true
		}

		alpha = score - aspirationWindowSize
		beta = score + aspirationWindowSize
		bestScore = score

		// Update score tracker
		if len(pvLine.Moves) > 0 {
			timeHandler.UpdateStability(int16(score), uint32(pvLine.Moves[0]))
		}

		// UNstable score requires more time usage
		if timeHandler.ShouldExtendTime() {
			timeHandler.ExtendTime()
		}

		currentWindow = int32(aspirationWindowSize)

		prevSearchScore = bestScore
		prevPVLine = pvLine.Clone()

		fmt.Println(
			"info depth", i,
			"score", getMateOrCPScore(int(score)),
			"nodes", nodesChecked,
			"time", timeSpent,
			"nps", nps,
			"pv", theMoves,
		)

		if mateFound {
			break
		}
	}

	// Reset per-search globals
	nodesChecked = 0
	searchShouldStop = false
	timeHandler.stopSearch = false

	// Get the best move from the last stable PV
	bestMove = prevPVLine.GetPVMove()

	// Emergency fallback: never return an empty move
	//if bestMove == 0 {
	//	moves := b.GenerateLegalMoves()
	//	if len(moves) > 0 {
	//		println("OH MY GOD, EMERGENCY FALLBACK")
	//		bestMove = moves[0]
	//	}
	//}

	return bestScore, bestMove
}

// rootParallelMinMoves is the fewest root moves worth fanning out across a
// worker pool; below this (or with no spare hardware parallelism, or at a
// depth too shallow for the dispatch cost to pay off) searchRoot falls back
// to a single sequential call into alphabeta exactly as before this existed.
const rootParallelMinMoves = 3

// searchRoot searches the root position to the given depth and returns its
// score, filling pvLine with the best line found. Once there are enough
// legal root moves to be worth it, the first (best-ordered) move is searched
// sequentially to seed alpha, and the remaining moves are dispatched across
// a pool of goroutines bounded by GOMAXPROCS, each operating on its own
// Board.Clone() and its own repetition history seeded from the root's.
func searchRoot(b *gm.Board, alpha int32, beta int32, depth int8, pvLine *PVLine, rootIndex int) int32 {
	workers := runtime.GOMAXPROCS(0)
	moves := b.GenerateLegalMoves()

	if len(moves) < rootParallelMinMoves || workers <= 1 || depth < 2 {
		var nullMove gm.Move
		return alphabeta(b, alpha, beta, depth, 0, pvLine, nullMove, false, false, 0, rootIndex, rootTracker)
	}

	posHash := b.Hash()
	var ttMove gm.Move
	if ttEntry, ttHit := TT.ProbeEntry(posHash); ttHit {
		ttMove = ttEntry.Move
	}

	ordered := orderedMoveSlice(scoreMovesList(b, moves, 0, ttMove, gm.Move(0)))

	// Search the best-ordered move on the main board/tracker first, the way
	// the sequential path always has, so the rest of the fan-out starts from
	// a non-trivial alpha instead of a fully open window.
	firstMove := ordered[0]
	var firstPV PVLine
	undoFirst := applyMoveWithState(b, firstMove, rootTracker)
	bestScore := -alphabeta(b, -beta, -alpha, depth-1, 1, &firstPV, firstMove, false, false, 0, rootIndex, rootTracker)
	undoFirst()

	bestMove := firstMove
	bestPV := firstPV.Clone()
	if bestScore > alpha {
		alpha = bestScore
	}

	rest := ordered[1:]
	if workers > len(rest) {
		workers = len(rest)
	}

	type rootResult struct {
		move  gm.Move
		score int32
		pv    PVLine
	}

	results := make(chan rootResult, len(rest))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	searchAlpha := alpha

	for _, m := range rest {
		wg.Add(1)
		sem <- struct{}{}
		go func(m gm.Move) {
			defer wg.Done()
			defer func() { <-sem }()

			clone := b.Clone()
			tracker := newStateTracker(rootTracker.snapshot())
			undo := applyMoveWithState(clone, m, tracker)

			var childPV PVLine
			score := -alphabeta(clone, -searchAlpha-1, -searchAlpha, depth-1, 1, &childPV, m, false, false, 0, rootIndex, tracker)
			if score > searchAlpha && score < beta {
				childPV.Clear()
				score = -alphabeta(clone, -beta, -searchAlpha, depth-1, 1, &childPV, m, false, false, 0, rootIndex, tracker)
			}
			undo()

			results <- rootResult{move: m, score: score, pv: childPV.Clone()}
		}(m)
	}

	wg.Wait()
	close(results)

	for r := range results {
		if r.score > bestScore {
			bestScore = r.score
			bestMove = r.move
			bestPV = r.pv
		}
	}

	pvLine.Update(bestMove, bestPV)
	return bestScore
}

// orderedMoveSlice drains a scored moveList into a plain slice via the same
// incremental selection used inside alphabeta's own move loop.
func orderedMoveSlice(moveList moveList) []gm.Move {
	ordered := make([]gm.Move, len(moveList.moves))
	for i := uint8(0); i < uint8(len(moveList.moves)); i++ {
		orderNextMove(i, &moveList)
		ordered[i] = moveList.moves[i].move
	}
	return ordered
}

func alphabeta(b *gm.Board, alpha int32, beta int32, depth int8, ply int8, pvLine *PVLine, prevMove gm.Move, didNull bool, isExtended bool, excludedMove gm.Move, rootIndex int, tracker *stateTracker) int32 {
	nodesChecked++

	if nodesChecked&4095 == 0 {
		if timeHandler.TimeStatus() {
			searchShouldStop = true
		}
	}

	if ply >= MaxDepth {
		return Evaluation(b, false)
	}

	if GlobalStop || searchShouldStop {
		return 0
	}

	/* INIT KEY VARIABLES */
	var bestMove gm.Move
	var childPVLine = PVLine{}
	var isPVNode = (beta - alpha) > 1
	var isRoot = ply == 0

	// Draw detection
	if !isRoot {
		if tracker.isDraw(rootIndex) {
			return DrawScore
		}
		if alpha < DrawScore && tracker.upcomingRepetition(rootIndex) {
			alpha = DrawScore
		}
	}

	inCheck := b.OurKingInCheck()

	// Check extension
	if inCheck {
		depth++
	}

	if !inCheck && !b.HasLegalMoves() {
		return DrawScore
	}

	// Quiescence at leaf nodes
	if depth <= 0 {
		return quiescence(b, alpha, beta, &childPVLine, 30, ply, rootIndex, tracker)
	}

	posHash := b.Hash()

	/*
		TRANSPOSITION TABLE LOOKUP
	*/
	ttEntry, ttHit := TT.ProbeEntry(posHash)
	if ttEntry.Move != 0 {
		ttMoveAvailable++
	} else {
		ttMoveNotAvailable++
	}
	usable, ttScore := TT.useEntry(ttEntry, posHash, depth, int16(Clamp16(alpha)), int16(Clamp16(beta)), ply, excludedMove)

	if usable && !isRoot && !isPVNode {
		cutStats.TTCutoffs++
		return int32(ttScore)
	}

	var staticScore int32
	// Only use TT move if we actually found a matching entry
	var ttMove gm.Move
	if ttHit {
		ttMove = ttEntry.Move
	}

	if usable {
		staticScore = int32(ttScore)
		bestMove = ttMove
	} else {
		staticScore = Evaluation(b, false)
	}

	improving := false
	if ply >= 2 && !inCheck {
		improving = staticScore > alpha
	}

	var wCount, bCount = hasMinorOrMajorPiece(b)
	var sideHasPieces = ((b.SideToMove() == gm.White) && wCount > 0) || (!(b.SideToMove() == gm.White) && bCount > 0)

	/*
		If our position is so good that even after giving a margin to the opponent,
		we still beat beta, we can safely prune.
		Applied at depths 1-7, NOT in PV nodes or when in check.
	*/
	if !inCheck && !isPVNode && depth <= 7 && depth >= 1 && abs32(beta) < Checkmate && !isRoot {
		rfpMargin := RFPMargins[depth]
		if !improving {
			rfpMargin -= 50 // More aggressive when not improving
		}
		if staticScore-rfpMargin >= beta {
			cutStats.StaticNullCutoffs++
			TT.storeEntry(posHash, depth, ply, ttMove, Clamp16(staticScore-rfpMargin), BetaFlag)
			return staticScore - rfpMargin
		}
	}

	/*
		NULL MOVE PRUNING
	*/
	if !inCheck && !isPVNode && !didNull && sideHasPieces && depth >= NullMoveMinDepth && !isRoot {
		unApplyfunc := applyNullMoveWithState(b, tracker)

		// More aggressive reduction: R = 3 + depth/3, with bonus for high depth
		var R int8 = 3 + depth/3
		if depth > 6 {
			R++
		}
		// Ensure we don't reduce below depth 1
		if R > depth-1 {
			R = depth - 1
		}

		score := -alphabeta(b, -beta, -beta+1, depth-1-R, ply+1, &childPVLine, bestMove, true, isExtended, 0, rootIndex, tracker)
		unApplyfunc()

		if score >= beta && score < Checkmate {
			cutStats.NullMoveCutoffs++
			// Verification search at high depths (optional, adds safety)
			TT.storeEntry(posHash, depth, ply, ttMove, Clamp16(score), BetaFlag)
			if depth > 10 {
				verifyScore := alphabeta(b, beta-1, beta, depth-1-R, ply, &childPVLine, prevMove, true, isExtended, 0, rootIndex, tracker)
				if verifyScore >= beta {
					return verifyScore
				}
			} else {
				return score
			}
		}
	}

	/*
		SINGULAR EXTENSION
		If we have a TT move that appears singular (no other move comes close),
		extend its search depth.
	*/
	var singularExtension bool
	if !isPVNode && !isRoot && !inCheck && !didNull && !isExtended && depth >= 8 && ttMove != 0 && ttEntry.Flag == ExactFlag && ttEntry.Depth >= depth-3 {
		ttValue := int32(ttEntry.Score)
		if ttValue < Checkmate && ttValue > -Checkmate {
			margin := int32(50 + 10*depth)
			scoreToBeat := ttValue - margin
			R := int8(3) + depth/4
			if R > depth-1 {
				R = depth - 1
			}
			var verificationPV PVLine
			scoreSingular := alphabeta(b, scoreToBeat-1, scoreToBeat, depth-1-R, ply, &verificationPV, prevMove, didNull, true, ttMove, rootIndex, tracker)
			if scoreSingular < scoreToBeat {
				singularExtension = true
			}
		}
	}

	/*
		INTERNAL ITERATIVE REDUCTIONS
		Reduce depth when we have no TT move
	*/
	//if ttMove == 0 && depth >= 4 {
	//	depth--
	//	if !isPVNode {
	//		depth--
	//	}
	//}

	/*
	   INTERNAL ITERATIVE DEEPENING
	   When we have no TT move at sufficient depth, do a reduced search to find one.
	   This is much better than searching blind.
	*/
	if ttMove == 0 && depth >= 5 && !didNull && !isExtended {
		// Do a reduced-depth search
		reducedDepth := depth - 2
		if depth >= 8 {
			reducedDepth = depth - depth/4
		}

		var iidPV PVLine
		alphabeta(b, alpha, beta, reducedDepth, ply, &iidPV, prevMove, false, true, 0, rootIndex, tracker)

		// The IID search should have stored a TT entry - retrieve it
		iidEntry, _ := TT.ProbeEntry(posHash)
		if iidEntry.Move != 0 {
			ttMove = iidEntry.Move
			bestMove = ttMove
		}
	}

	// Generate and score moves
	allMoves := b.GenerateLegalMoves()

	// Checkmate/stalemate check
	if len(allMoves) == 0 {
		if inCheck {
			return -MaxScore + int32(ply) // Checkmate
		}
		return DrawScore // Stalemate
	}

	var score int32 = -MaxScore
	var bestScore int32 = -MaxScore
	var moveList = scoreMovesList(b, allMoves, ply, bestMove, prevMove)
	var ttFlag int8 = AlphaFlag
	legalMoves := 0
	//bestMove = 0

	// Track quiet moves tried for history malus
	quietMovesTried := make([]gm.Move, 0, 16)

	for index := uint8(0); index < uint8(len(moveList.moves)); index++ {
		orderNextMove(index, &moveList)
		move := moveList.moves[index].move

		if move == excludedMove {
			continue
		}

		sideIdx := 0
		if !(b.SideToMove() == gm.White) {
			sideIdx = 1
		}

		isCapture := gm.IsCapture(move, b)
		moveGivesCheck := b.GivesCheck(move)
		isPromotion := move.PromotionPieceType() != gm.PieceTypeNone

		// Tactical = capture, check, or promotion
		tactical := isCapture || moveGivesCheck || isPromotion
		legalMoves++

		/*
			########################################################
			LATE MOVE PRUNING:
			Skip quiet moves late in the move list at low depths.
			########################################################
		*/
		if depth <= 8 && !isPVNode && !tactical && !isRoot && legalMoves > 1 {
			lmpMargin := LateMovePruningMargins[Min(int(depth), len(LateMovePruningMargins)-1)]
			// Be more aggressive when not improving
			if !improving {
				lmpMargin = lmpMargin * 2 / 3
			}
			if lmpMargin > 0 && legalMoves > lmpMargin {
				cutStats.LateMovePrunes++
				continue
			}
		}

		// Check whether the move would give a check

		// Update tactical flag with actual check detection
		if moveGivesCheck {
			tactical = true
		}

		/*
			At depths 1-7, if static eval + margin can't beat alpha, prune quiet moves.
		*/
		if depth <= 7 && depth >= 1 && !moveGivesCheck && !isPVNode && !isRoot && !tactical && abs32(alpha) < Checkmate {
			futilityMargin := FutilityMargins[depth]
			if !improving {
				futilityMargin -= 50 // More aggressive when not improving
			}
			if staticScore+futilityMargin <= alpha {
				cutStats.FutilityPrunes++
				continue
			}
		}

		// Track quiet moves for history malus
		if !isCapture {
			quietMovesTried = append(quietMovesTried, move)
		}

		// Apply the move
		var unapplyFunc = applyMoveWithState(b, move, tracker)

		/*
			LATE MOVE REDUCTIONS
		*/
		extendMove := !isExtended && move == ttMove && singularExtension
		nextExtended := isExtended || extendMove

		if legalMoves == 1 {
			// First move: full-depth, full-window search
			nextDepth := calculateSearchDepth(depth-1, 0, extendMove)
			score = -alphabeta(b, -beta, -alpha, nextDepth, ply+1, &childPVLine, move, false, nextExtended, 0, rootIndex, tracker)
		} else {
			// Get move history for reduction calculation
			moveHistoryScore := historyMove[sideIdx][move.From()][move.To()]

			// Calculate reduction using all heuristics
			var reduct int8 = 0
			if depth >= LMRDepthLimit && legalMoves >= LMRMoveLimit && !moveGivesCheck && !tactical {
				reduct = computeLMRReduction(
					depth, legalMoves, int(index), isPVNode, tactical,
					moveHistoryScore, improving,
					IsKiller(move, ply, &KillerMoveTable), extendMove,
				)
			}

			// Perform Principal Variation Search with the calculated reduction
			score = searchMoveWithPVS(b, move, depth-1, reduct, alpha, beta, ply, extendMove, nextExtended, rootIndex, &childPVLine, tracker)
		}

		unapplyFunc()

		// Update best score and move
		if score > bestScore {
			bestScore = score
			bestMove = move
		}

		// Beta cutoff
		if score >= beta {
			cutStats.BetaCutoffs++
			ttFlag = BetaFlag
			//moveString := move.String()
			//if moveString != "g5h5" && moveString != "f4g5" && moveString != "g5f6" {
			//println("BETA CUTOFF -- move:", move.String(), " -- Score: ", score, " -- Alpha:Beta:", alpha, ":", beta, "-- depth:", depth)
			//}
			if !isCapture {
				// Store killer and counter moves
				InsertKiller(move, ply, &KillerMoveTable)
				storeCounter((b.SideToMove() == gm.White), prevMove, move)

				// History bonus for the good move
				incrementHistoryScore((b.SideToMove() == gm.White), move, depth)

				// History malus for all quiet moves that didn't work
				for _, failedMove := range quietMovesTried {
					if failedMove != move {
						decrementHistoryScoreBy((b.SideToMove() == gm.White), failedMove, depth)
					}
				}
			}
			break
		}

		// Alpha improvement
		if score > alpha {
			//if move.String() != "g5h5" || move.String() != "f4g5" {
			//println("ALPHA INCREASE -- move:", move.String(), " -- Score: ", score, " -- Alpha:Beta:", alpha, ":", beta, "-- depth:", depth)
			//}
			alpha = score
			ttFlag = ExactFlag
			pvLine.Update(move, childPVLine)

			if !isCapture {
				incrementHistoryScore((b.SideToMove() == gm.White), move, depth)
			}
		}
	}

	childPVLine.Clear()

	// Store in transposition table
	if !timeHandler.stopSearch && !GlobalStop && !searchShouldStop { //&& bestMove != 0 {
		TT.storeEntry(posHash, depth, ply, bestMove, Clamp16(bestScore), ttFlag)
	}

	return bestScore
}

func quiescence(b *gm.Board, alpha int32, beta int32, pvLine *PVLine, depth int8, ply int8, rootIndex int, tracker *stateTracker) int32 {
	nodesChecked++

	if nodesChecked&2047 == 0 {
		if timeHandler.TimeStatus() {
			searchShouldStop = true
		}
	}

	if GlobalStop || searchShouldStop {
		return 0
	}

	inCheck := b.OurKingInCheck()
	var childPVLine = PVLine{}

	var standpat int32 = Evaluation(b, false)

	// Check extension in qsearch
	//if inCheck {
	//	depth++
	//}

	// Stand-pat pruning (not when in check)
	if !inCheck {
		if standpat >= beta {
			cutStats.QStandPatCutoffs++
			return standpat
		}
		if standpat > alpha {
			alpha = standpat
		}
	}

	var bestScore int32
	if inCheck {
		bestScore = -MaxScore // Must escape check
	} else {
		bestScore = standpat
	}

	// Generate moves: all moves when in check, only captures otherwise
	var moveList moveList
	if inCheck {
		moveList = scoreMovesList(b, b.GenerateLegalMoves(), ply, gm.Move(0), gm.Move(0))
	} else {
		moveList, _ = scoreMovesListCaptures(b, b.GenerateCaptures(), gm.Move(0))
	}

	movesSearched := 0

	for index := uint8(0); index < uint8(len(moveList.moves)); index++ {
		orderNextMove(index, &moveList)
		move := moveList.moves[index].move

		/*
			OPTIMIZATION 4: DELTA PRUNING
			If the capture + a margin still can't beat alpha, skip it.
			Only apply when not in check.
		*/
		if !inCheck {
			// SEE pruning first
			seeScore := see(b, move, false)
			if seeScore < -QuiescenceSeeMargin {
				continue
			}

			// Delta pruning: estimate maximum gain from this capture
			capturedPiece := move.CapturedPiece()
			moveGain := int32(0)
			if capturedPiece != gm.NoPiece {
				moveGain = int32(pieceValueMG[capturedPiece.Type()])
			}

			// Add promotion value if applicable
			if move.PromotionPieceType() != gm.PieceTypeNone {
				moveGain += int32(pieceValueMG[move.PromotionPieceType()] - pieceValueMG[gm.PieceTypePawn])
			}

			// If even with the capture we can't beat alpha, skip
			if standpat+moveGain+DeltaMargin < alpha {
				continue
			}
		}

		unapplyFunc := applyMoveWithState(b, move, tracker)
		movesSearched++

		score := -quiescence(b, -beta, -alpha, &childPVLine, depth-1, ply+1, rootIndex, tracker)
		unapplyFunc()

		if score > bestScore {
			bestScore = score
		}

		if score >= beta {
			cutStats.QBetaCutoffs++
			return score // Return score, not beta (more accurate)
		}

		if score > alpha {
			alpha = score
			pvLine.Update(move, childPVLine)
		}
		childPVLine.Clear()
	}

	// If in check and no moves, it's checkmate
	//if inCheck && movesSearched == 0 {
	//	return -MaxScore + int16(ply)
	//}

	return bestScore
}

// calculateSearchDepth computes the search depth for a move, accounting for reductions and extensions
func calculateSearchDepth(baseDepth int8, reduction int8, extendMove bool) int8 {
	depth := baseDepth - reduction
	if extendMove && reduction == 0 {
		depth++
	}
	return depth
}

// searchMoveWithPVS performs a Principal Variation Search for a move
// This implements the standard PVS 3-stage pattern:
// 1. Search with reduced depth using null window
// 2. If reduction was applied and score > alpha, re-search at full depth with null window
// 3. If score is between alpha and beta, do a full window search
func searchMoveWithPVS(b *gm.Board, move gm.Move, baseDepth int8, reduction int8,
	alpha int32, beta int32, ply int8, extendMove bool, nextExtended bool,
	rootIndex int, childPVLine *PVLine, tracker *stateTracker) int32 {

	// Stage 1: Reduced depth null-window search
	nextDepth := calculateSearchDepth(baseDepth, reduction, extendMove)
	score := -alphabeta(b, -(alpha + 1), -alpha, nextDepth, ply+1, childPVLine, move, false, nextExtended, 0, rootIndex, tracker)

	// Stage 2: Re-search at full depth if we had a reduction and score > alpha
	if score > alpha && reduction > 0 {
		nextDepth = calculateSearchDepth(baseDepth, 0, extendMove)
		score = -alphabeta(b, -(alpha + 1), -alpha, nextDepth, ply+1, childPVLine, move, false, nextExtended, 0, rootIndex, tracker)
	}

	// Stage 3: Full window search if score is in (alpha, beta) window
	if score > alpha && score < beta {
		nextDepth = calculateSearchDepth(baseDepth, 0, extendMove)
		score = -alphabeta(b, -beta, -alpha, nextDepth, ply+1, childPVLine, move, false, nextExtended, 0, rootIndex, tracker)
	}

	return score
}

func applyMoveWithState(b *gm.Board, move gm.Move, tracker *stateTracker) func() {
	unapply := b.Apply(move)
	tracker.push(b)
	return func() {
		unapply()
		tracker.pop()
	}
}

func applyNullMoveWithState(b *gm.Board, tracker *stateTracker) func() {
	unapply := b.ApplyNullMove()
	tracker.push(b)
	return func() {
		unapply()
		tracker.pop()
	}
}
