package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	gm "chesscore/board"
	"chesscore/engine"
)

var pieceGlyphs = map[gm.Piece]rune{
	gm.WhitePawn: 'P', gm.WhiteKnight: 'N', gm.WhiteBishop: 'B',
	gm.WhiteRook: 'R', gm.WhiteQueen: 'Q', gm.WhiteKing: 'K',
	gm.BlackPawn: 'p', gm.BlackKnight: 'n', gm.BlackBishop: 'b',
	gm.BlackRook: 'r', gm.BlackQueen: 'q', gm.BlackKing: 'k',
}

func printBoard(b *gm.Board) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := gm.Square(rank*8 + file)
			p := b.PieceAt(sq)
			if p == gm.NoPiece {
				fmt.Print(". ")
				continue
			}
			fmt.Printf("%c ", pieceGlyphs[p])
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")
}

// resolveMove matches a UCI-style from/to/promotion string against the
// current legal move list, since ParseMove alone can't know flags like
// en passant or castling that the packed Move encodes.
func resolveMove(b *gm.Board, text string) (gm.Move, bool) {
	parsed, err := gm.ParseMove(text)
	if err != nil {
		return 0, false
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.From() == parsed.From() && m.To() == parsed.To() &&
			m.PromotionPieceType() == parsed.PromotionPieceType() {
			return m, true
		}
	}
	return 0, false
}

func main() {
	fen := flag.String("fen", gm.FENStartPos, "starting FEN")
	depth := flag.Uint("depth", 6, "computer search depth")
	moveTime := flag.Int("movetime", 2000, "clock time in milliseconds reported to the engine each move; it spends a fraction of it")
	computer := flag.String("computer", "", "which side the engine plays: white, black, or empty for neither")
	flag.Parse()

	b, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad fen: %v\n", err)
		os.Exit(2)
	}

	engineSide := gm.Color(255)
	switch strings.ToLower(*computer) {
	case "white":
		engineSide = gm.White
	case "black":
		engineSide = gm.Black
	case "":
	default:
		fmt.Fprintf(os.Stderr, "unknown -computer value %q\n", *computer)
		os.Exit(2)
	}

	reader := bufio.NewReader(os.Stdin)
	printBoard(b)

	for {
		if len(b.GenerateLegalMoves()) == 0 {
			if b.InCheckmate() {
				fmt.Println("checkmate")
			} else if b.InStalemate() {
				fmt.Println("stalemate")
			} else {
				fmt.Println("no legal moves")
			}
			return
		}
		if b.IsDrawBy50() {
			fmt.Println("draw by fifty-move rule")
			return
		}

		if b.SideToMove() == engineSide {
			m, score := engine.StartSearch(b, uint8(*depth), *moveTime, 0, false, false, false)
			if m == 0 {
				fmt.Fprintln(os.Stderr, "engine found no legal root move")
				return
			}
			fmt.Printf("engine plays %s (score %d)\n", m.String(), score)
			b.Apply(m)
			printBoard(b)
			continue
		}

		fmt.Print("move> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if line == "fen" {
			fmt.Println(b.ToFEN())
			continue
		}

		m, ok := resolveMove(b, line)
		if !ok {
			fmt.Println("illegal or unparseable move, try again (e.g. e2e4, e7e8q)")
			continue
		}
		b.Apply(m)
		printBoard(b)
	}
}
