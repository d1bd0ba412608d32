package movecore

import "testing"

func sqStr(sq Square) string {
	if sq == NoSquare {
		return "-"
	}
	return sq.String()
}

func TestCheckersDetection(t *testing.T) {
	cases := []struct {
		fen  string
		want []string
	}{
		{FENStartPos, nil},
		{"rnb1kbnr/pppp1ppp/8/8/8/8/4Q3/RNB1KBNR b KQkq - 0 1", []string{"e2"}},
		{"4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", []string{"f3"}},
	}
	for _, c := range cases {
		pos, err := ParsePosition(c.fen)
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		bb := pos.Checkers()
		for bb != 0 {
			got = append(got, sqStr(bb.PopLSB()))
		}
		if len(got) != len(c.want) {
			t.Errorf("fen %q: checkers = %v, want %v", c.fen, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("fen %q: checkers = %v, want %v", c.fen, got, c.want)
				break
			}
		}
	}
}

func TestPinnedPieces(t *testing.T) {
	// White king e1, white bishop d2 pinned by black bishop on a5 along the
	// a5-e1 diagonal.
	pos, err := ParsePosition("4k3/8/8/b7/8/8/3B4/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	pinned := pos.PinnedPieces(White)
	d2 := MakeSquare(FileD, Rank2)
	if pinned&d2.Bit() == 0 {
		t.Errorf("expected d2 bishop to be pinned, pinned = %v", pinned)
	}
	if pinned.Popcount() != 1 {
		t.Errorf("expected exactly one pinned piece, got popcount %d", pinned.Popcount())
	}
}

func TestPinnedPieceNotPinnedWhenNotAligned(t *testing.T) {
	pos, err := ParsePosition(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if pos.PinnedPieces(White) != 0 {
		t.Errorf("expected no pins in the starting position, got %v", pos.PinnedPieces(White))
	}
	if pos.PinnedPieces(Black) != 0 {
		t.Errorf("expected no pins in the starting position, got %v", pos.PinnedPieces(Black))
	}
}

func TestDiscoveredCheckCandidates(t *testing.T) {
	// White queen a4, white knight d4 blocking the 4th rank, black king h4:
	// moving the knight off the rank discovers a rank check from the queen.
	pos, err := ParsePosition("8/8/8/8/Q2N3k/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	dc := pos.DiscoveredCheckCandidates(White)
	d4 := MakeSquare(FileD, Rank4)
	if dc&d4.Bit() == 0 {
		t.Errorf("expected d4 knight to be a discovered-check candidate, dc = %v", dc)
	}
}

func TestSquareIsAttacked(t *testing.T) {
	pos, err := ParsePosition(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	e4 := MakeSquare(FileE, Rank4)
	if pos.SquareIsAttacked(e4, White) {
		t.Errorf("e4 should not be attacked by white from the starting position")
	}
	e3 := MakeSquare(FileE, Rank3)
	if !pos.SquareIsAttacked(e3, White) {
		t.Errorf("e3 should be attacked by white pawns from the starting position")
	}
	e6 := MakeSquare(FileE, Rank6)
	if !pos.SquareIsAttacked(e6, Black) {
		t.Errorf("e6 should be attacked by black pawns from the starting position")
	}
}

func TestPieceAttacksSquare(t *testing.T) {
	pos, err := ParsePosition("4k3/8/8/8/P7/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	a1 := MakeSquare(FileA, Rank1)
	d1 := MakeSquare(FileD, Rank1)
	a8 := MakeSquare(FileA, Rank8)
	if !pos.PieceAttacksSquare(a1, d1) {
		t.Errorf("rook on a1 should attack d1")
	}
	if pos.PieceAttacksSquare(a1, a8) {
		t.Errorf("rook on a1 should not attack a8: own pawn on a4 blocks the file")
	}
}
