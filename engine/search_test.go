package engine

import (
	"testing"

	gm "chesscore/board"
)

func TestSearchFindsBackRankMateInOne(t *testing.T) {
	board, err := gm.ParseFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}

	move, score := StartSearch(board, 4, 0, 0, true, false, false)
	if move.From() != seeSquare("e1") || move.To() != seeSquare("e8") {
		t.Fatalf("expected Re1-e8 mate, got %s", move.String())
	}
	if score < 9000 {
		t.Fatalf("expected a mate-range score, got %d", score)
	}
}

func TestSearchPrefersFreeQueenCapture(t *testing.T) {
	board, err := gm.ParseFEN("4k3/8/8/3q4/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}

	move, _ := StartSearch(board, 3, 0, 0, true, false, false)
	if move.From() != seeSquare("d1") || move.To() != seeSquare("d5") {
		t.Fatalf("expected Qd1xd5, got %s", move.String())
	}
}

func TestSearchReturnsSentinelWhenNoLegalRootMove(t *testing.T) {
	// Stalemate: black to move, no legal moves, not in check.
	board, err := gm.ParseFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}

	move, score := StartSearch(board, 4, 0, 0, true, false, false)
	if move != 0 {
		t.Fatalf("expected sentinel zero move with no legal root move, got %s", move.String())
	}
	if score != 0 {
		t.Fatalf("expected score 0 with no legal root move, got %d", score)
	}
}

func TestEvaluationFavorsMaterialAdvantage(t *testing.T) {
	even, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	upAQueen, err := gm.ParseFEN("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	evenScore := Evaluation(even, false)
	aheadScore := Evaluation(upAQueen, false)

	if aheadScore <= evenScore {
		t.Fatalf("expected a material lead to score higher: even=%d ahead=%d", evenScore, aheadScore)
	}
}
