package board_test

import (
	"testing"

	myengine "chesscore/board"
	"github.com/google/go-cmp/cmp"
)

func findMove(t *testing.T, b *myengine.Board, from, to myengine.Square) (myengine.Move, bool) {
	t.Helper()
	for _, m := range b.GenerateMoves() {
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return 0, false
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b, err := myengine.ParseFEN(myengine.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	startFEN := b.ToFEN()
	startHash := b.Hash()
	startWhite := b.WhiteBitboards()
	startBlack := b.BlackBitboards()

	e2, e4 := myengine.Square(1*8+4), myengine.Square(3*8+4)
	m, ok := findMove(t, b, e2, e4)
	if !ok {
		t.Fatalf("e2e4 not found")
	}
	applied, st := b.MakeMove(m)
	if !applied {
		t.Fatalf("MakeMove e2e4 rejected as illegal")
	}
	if b.Hash() == startHash {
		t.Fatalf("hash unchanged after a move")
	}
	b.UnmakeMove(m, st)

	if b.ToFEN() != startFEN {
		t.Fatalf("FEN mismatch after unmake: got %q want %q", b.ToFEN(), startFEN)
	}
	if b.Hash() != startHash {
		t.Fatalf("hash mismatch after unmake: got %d want %d", b.Hash(), startHash)
	}
	if diff := cmp.Diff(startWhite, b.WhiteBitboards()); diff != "" {
		t.Fatalf("white bitboards mismatch after unmake (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(startBlack, b.BlackBitboards()); diff != "" {
		t.Fatalf("black bitboards mismatch after unmake (-want +got):\n%s", diff)
	}
}

func TestZobristMatchesComputeZobrist(t *testing.T) {
	positions := []string{
		myengine.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}
	for _, fen := range positions {
		b, err := myengine.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got, want := b.Hash(), b.ComputeZobrist(); got != want {
			t.Fatalf("fen %q: incremental hash %d != recomputed hash %d", fen, got, want)
		}
	}
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		myengine.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := myengine.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.ToFEN(); got != fen {
			t.Fatalf("FEN round trip: got %q want %q", got, fen)
		}
	}
}

func TestThreefoldRepetitionKnightShuffle(t *testing.T) {
	b, err := myengine.ParseFEN(myengine.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}

	var hist []uint64
	hist = append(hist, b.ComputeZobrist())

	play := func(from, to myengine.Square) {
		m, ok := findMove(t, b, from, to)
		if !ok {
			t.Fatalf("move %v->%v not found", from, to)
		}
		ok2, _ := b.MakeMove(m)
		if !ok2 {
			t.Fatalf("move %v->%v illegal unexpectedly", from, to)
		}
		hist = append(hist, b.ComputeZobrist())
	}

	g1, f3 := myengine.Square(6), myengine.Square(2*8+5)
	g8, f6 := myengine.Square(7*8+6), myengine.Square(5*8+5)

	play(g1, f3)
	play(g8, f6)
	play(f3, g1)
	play(f6, g8)
	if b.IsDrawByRepetition(hist) {
		t.Fatalf("should not be threefold yet after one cycle")
	}

	play(g1, f3)
	play(g8, f6)
	play(f3, g1)
	play(f6, g8)
	if !b.IsDrawByRepetition(hist) {
		t.Fatalf("expected threefold repetition after two cycles")
	}
}

func TestFiftyMoveRuleWithPushes(t *testing.T) {
	b, err := myengine.ParseFEN(myengine.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}

	var stack []myengine.MoveState
	var hist []uint64

	g1, f3 := myengine.Square(6), myengine.Square(2*8+5)
	g8, f6 := myengine.Square(7*8+6), myengine.Square(5*8+5)

	for i := 0; i < 25; i++ {
		for _, pair := range [][2]myengine.Square{{g1, f3}, {g8, f6}, {f3, g1}, {f6, g8}} {
			m, ok := findMove(t, b, pair[0], pair[1])
			if !ok {
				t.Fatalf("move %v->%v not found at i=%d", pair[0], pair[1], i)
			}
			if !b.PushMove(m, &stack, &hist) {
				t.Fatalf("push %v->%v failed at i=%d", pair[0], pair[1], i)
			}
		}
	}

	if !b.IsDrawBy50() {
		t.Fatalf("expected 50-move rule draw after 100 halfmoves, got halfmoveClock=%d", b.HalfmoveClock())
	}
}

func TestCheckmateAndStalemateDetection(t *testing.T) {
	mate, err := myengine.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}
	if !mate.InCheckmate() {
		t.Fatalf("expected fool's-mate position to be checkmate")
	}

	stale, err := myengine.ParseFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !stale.InStalemate() {
		t.Fatalf("expected stalemate position to be detected")
	}
}
