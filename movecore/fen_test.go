package movecore

import "testing"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}
	for _, fen := range fens {
		pos, err := ParsePosition(fen)
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", fen, err)
		}
		got := pos.FEN()
		if got != fen {
			t.Errorf("round-trip mismatch:\n  in:  %s\n  out: %s", fen, got)
		}
	}
}

func TestFENRoundTripIsStableUnderReparse(t *testing.T) {
	// A FEN's halfmove/fullmove counters round-trip even when parsed a
	// second time from the first render.
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 3 17"
	pos, err := ParsePosition(fen)
	if err != nil {
		t.Fatal(err)
	}
	once := pos.FEN()
	pos2, err := ParsePosition(once)
	if err != nil {
		t.Fatal(err)
	}
	twice := pos2.FEN()
	if once != twice {
		t.Errorf("FEN not stable under reparse: %q != %q", once, twice)
	}
}

func TestParsePositionRejectsMissingKing(t *testing.T) {
	if _, err := ParsePosition("8/8/8/8/8/8/8/7K w - - 0 1"); err == nil {
		t.Error("expected an error for a FEN missing the black king")
	}
}

func TestParsePositionRejectsMalformedField(t *testing.T) {
	if _, err := ParsePosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"); err == nil {
		t.Error("expected an error for an invalid side-to-move field")
	}
}

func TestParseCastlingShredderFENFindsRookHomeSquares(t *testing.T) {
	pos, err := ParsePosition("4k3/8/8/8/8/8/8/rR2K2R w HB - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !pos.CanCastleKingside(White) || !pos.CanCastleQueenside(White) {
		t.Fatal("expected both white castling rights")
	}
	if got, want := pos.InitialKRSquare(White), MakeSquare(FileH, Rank1); got != want {
		t.Errorf("kingside rook home square = %v, want %v", got, want)
	}
	if got, want := pos.InitialQRSquare(White), MakeSquare(FileB, Rank1); got != want {
		t.Errorf("queenside rook home square = %v, want %v", got, want)
	}
}
