package engine

import "time"

// TimeHandler allocates a soft and hard time budget for the current move
// from the clock reported by the caller, and tracks whether the position is
// stable enough that the search can stop before the soft budget runs out.
type TimeHandler struct {
	remainingTime    int
	increment        int
	madeMoveCount    int
	usingCustomDepth bool
	isInitialized    bool

	startedAt    time.Time
	softDeadline time.Time
	hardDeadline time.Time

	stopSearch bool

	stableScore int16
	stableMove  uint32
	stableCount int
}

func (th *TimeHandler) initTimemanagement(remainingTime int, increment int, madeMoveCount int, useCustomDepth bool) {
	th.remainingTime = remainingTime
	th.increment = increment
	th.madeMoveCount = madeMoveCount
	th.usingCustomDepth = useCustomDepth
	th.isInitialized = true
	th.stopSearch = false
	th.stableScore = 0
	th.stableMove = 0
	th.stableCount = 0
}

// StartTime computes the soft/hard deadlines for this move given the game
// phase implied by how many moves have been made so far.
func (th *TimeHandler) StartTime(fullmoveNumber int) {
	th.madeMoveCount = fullmoveNumber
	th.stopSearch = false
	th.startedAt = time.Now()

	movesLeft := estimateMovesRemaining(fullmoveNumber)

	const overheadMs = 30
	const minMoveMs = 5
	const maxFrac = 0.7
	const panicThreshMs = 1000
	const panicFrac = 0.90

	rem := th.remainingTime
	inc := th.increment

	var moveTime int
	if inc > 0 {
		if rem < panicThreshMs {
			moveTime = int(float64(inc) * panicFrac)
		} else {
			moveTime = rem/movesLeft + inc
		}
	} else if movesLeft > 0 {
		moveTime = rem / movesLeft
	} else {
		moveTime = rem / 40
	}

	if moveTime < minMoveMs {
		moveTime = minMoveMs
	}
	if ceiling := int(float64(rem) * maxFrac); moveTime > ceiling {
		moveTime = ceiling
	}
	if moveTime > rem-overheadMs {
		moveTime = rem - overheadMs
	}
	if moveTime < minMoveMs {
		moveTime = minMoveMs
	}

	th.softDeadline = th.startedAt.Add(time.Duration(moveTime) * time.Millisecond)
	th.hardDeadline = th.startedAt.Add(time.Duration(moveTime*3/2) * time.Millisecond)
}

// estimateMovesRemaining guesses how many more moves are left in the game
// from the move number alone; it leans on more time early, less late.
func estimateMovesRemaining(fullmoveNumber int) int {
	movesLeft := 45 - fullmoveNumber/2
	if movesLeft < 20 {
		movesLeft = 20
	}
	if movesLeft > 45 {
		movesLeft = 45
	}
	return movesLeft
}

// TimeStatus reports whether the hard deadline has passed. Custom-depth
// searches (fixed depth, no clock) never time out.
func (th *TimeHandler) TimeStatus() bool {
	if th.usingCustomDepth {
		return false
	}
	return !th.hardDeadline.IsZero() && time.Now().After(th.hardDeadline)
}

// SoftTimeExceeded reports whether the soft budget for this move has run out.
func (th *TimeHandler) SoftTimeExceeded() bool {
	if th.usingCustomDepth {
		return false
	}
	return !th.softDeadline.IsZero() && time.Now().After(th.softDeadline)
}

// UpdateStability tracks whether the iterative-deepening best move and score
// have stopped changing between iterations.
func (th *TimeHandler) UpdateStability(score int16, move uint32) {
	if move == th.stableMove && abs16(score-th.stableScore) < 15 {
		th.stableCount++
	} else {
		th.stableCount = 0
	}
	th.stableScore = score
	th.stableMove = move
}

// ShouldExtendTime reports whether the position looks unstable enough
// (best move still moving between iterations) to warrant more time.
func (th *TimeHandler) ShouldExtendTime() bool {
	return !th.usingCustomDepth && th.stableCount == 0
}

// ExtendTime pushes the soft and hard deadlines back to give the current
// iteration more room to settle on a stable best move.
func (th *TimeHandler) ExtendTime() {
	extra := time.Until(th.softDeadline) / 2
	if extra < 0 {
		extra = time.Duration(th.increment) * time.Millisecond / 2
	}
	th.softDeadline = th.softDeadline.Add(extra)
	th.hardDeadline = th.hardDeadline.Add(extra)
}

// ShouldStopEarly reports whether the best move has been stable long enough
// that continuing to search it further is unlikely to be worthwhile.
func (th *TimeHandler) ShouldStopEarly() bool {
	return !th.usingCustomDepth && th.stableCount >= 6
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
