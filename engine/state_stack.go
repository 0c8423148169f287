package engine

import (
	gm "chesscore/board"
)

const fiftyMoveLimit = 100

// State captures the information we need to reason about repetitions and draws.
type State struct {
	Hash   uint64
	Rule50 int
}

// stateTracker holds the repetition/fifty-move history for one in-flight search.
// It is deliberately not package-global: a parallel root search gives each
// worker goroutine its own tracker (seeded with a copy of the position history
// up to the root) so concurrent make/unmake in different goroutines never
// touch the same backing slice.
type stateTracker struct {
	states []State
}

func newStateTracker(seed []State) *stateTracker {
	states := make([]State, len(seed))
	copy(states, seed)
	return &stateTracker{states: states}
}

func (t *stateTracker) snapshot() []State {
	cp := make([]State, len(t.states))
	copy(cp, t.states)
	return cp
}

func (t *stateTracker) reset(board *gm.Board) {
	t.states = t.states[:0]
	t.push(board)
}

// ensureSynced guarantees that the top of the stack reflects the board position.
func (t *stateTracker) ensureSynced(board *gm.Board) {
	if len(t.states) == 0 {
		t.push(board)
		return
	}
	last := &t.states[len(t.states)-1]
	if last.Hash != board.Hash() {
		t.reset(board)
		return
	}
	last.Rule50 = board.HalfmoveClock()
}

func (t *stateTracker) push(board *gm.Board) {
	t.states = append(t.states, State{
		Hash:   board.Hash(),
		Rule50: board.HalfmoveClock(),
	})
}

func (t *stateTracker) pop() {
	if len(t.states) == 0 {
		return
	}
	t.states = t.states[:len(t.states)-1]
}

func (t *stateTracker) isDraw(rootIndex int) bool {
	if len(t.states) == 0 {
		return false
	}
	curr := t.states[len(t.states)-1]
	if curr.Rule50 >= fiftyMoveLimit {
		return true
	}

	matchCount, firstIdx := t.repetitionInfo(curr.Hash, curr.Rule50)
	if matchCount >= 2 {
		return true
	}
	return matchCount >= 1 && firstIdx >= rootIndex && firstIdx != -1
}

func (t *stateTracker) upcomingRepetition(rootIndex int) bool {
	if len(t.states) <= 1 {
		return false
	}
	curr := t.states[len(t.states)-1]
	start := len(t.states) - 1 - curr.Rule50
	if start < 0 {
		start = 0
	}
	for i := len(t.states) - 2; i >= start; i-- {
		if t.states[i].Hash == curr.Hash && i >= rootIndex {
			return true
		}
	}
	return false
}

func (t *stateTracker) repetitionInfo(hash uint64, rule50 int) (count int, firstIdx int) {
	firstIdx = -1
	if len(t.states) <= 1 {
		return 0, firstIdx
	}
	start := len(t.states) - 1 - rule50
	if start < 0 {
		start = 0
	}
	end := len(t.states) - 2
	for i := start; i <= end; i++ {
		if t.states[i].Hash == hash {
			count++
			if firstIdx == -1 {
				firstIdx = i
			}
		}
	}
	return count, firstIdx
}

// rootTracker is the history used by the single-threaded path (and by the
// first root move of a parallel search, which runs inline to establish
// alpha before the rest of the root moves fan out).
var rootTracker = newStateTracker(nil)

// ResetStateTracking rebuilds the state stack so that it only contains the current board.
func ResetStateTracking(board *gm.Board) {
	rootTracker.reset(board)
}

// RecordState appends the board's current state to the history stack.
func RecordState(board *gm.Board) {
	rootTracker.push(board)
}

// ensureStateStackSynced guarantees that the top of the stack reflects the board position.
func ensureStateStackSynced(board *gm.Board) {
	rootTracker.ensureSynced(board)
}
