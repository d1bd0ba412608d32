package movecore

import "testing"

func countKind(list *MoveList, kind MoveKind) int {
	n := 0
	for _, m := range list.Moves() {
		if m.Kind() == kind {
			n++
		}
	}
	return n
}

func TestGenerateCapturesOnlyQueenPromotions(t *testing.T) {
	pos, err := ParsePosition("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var caps MoveList
	pos.GenerateCaptures(&caps)

	want := map[string]bool{"a7b8q": true}
	got := map[string]bool{}
	for _, m := range caps.Moves() {
		got[m.String()] = true
		if m.IsPromotion() && m.PromotionPiece() != Queen {
			t.Errorf("GenerateCaptures produced a non-queen promotion %s", m.String())
		}
	}
	for s := range want {
		if !got[s] {
			t.Errorf("GenerateCaptures missing %s; got %v", s, got)
		}
	}
}

func TestGenerateNoncapturesUnderpromotions(t *testing.T) {
	pos, err := ParsePosition("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var nc MoveList
	pos.GenerateNoncaptures(&nc)

	wantCap := map[string]bool{"a7b8r": true, "a7b8b": true, "a7b8n": true}
	wantPush := map[string]bool{"a7a8r": true, "a7a8b": true, "a7a8n": true}
	got := map[string]bool{}
	for _, m := range nc.Moves() {
		got[m.String()] = true
		if m.IsPromotion() && m.PromotionPiece() == Queen {
			t.Errorf("GenerateNoncaptures produced a queen promotion %s", m.String())
		}
	}
	for s := range wantCap {
		if !got[s] {
			t.Errorf("GenerateNoncaptures missing capture-underpromotion %s; got %v", s, got)
		}
	}
	for s := range wantPush {
		if !got[s] {
			t.Errorf("GenerateNoncaptures missing push-underpromotion %s; got %v", s, got)
		}
	}
}

func TestGenerateCapturesEnPassant(t *testing.T) {
	pos, err := ParsePosition("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		t.Fatal(err)
	}
	var caps MoveList
	pos.GenerateCaptures(&caps)
	if n := countKind(&caps, EnPassantKind); n != 1 {
		t.Fatalf("en passant captures = %d, want 1", n)
	}
}

func TestCapturesAndNoncapturesPartitionIsDisjoint(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}
	for _, fen := range fens {
		pos, err := ParsePosition(fen)
		if err != nil {
			t.Fatal(err)
		}
		var caps, nc MoveList
		pos.GenerateCaptures(&caps)
		pos.GenerateNoncaptures(&nc)
		seen := map[Move]bool{}
		for _, m := range caps.Moves() {
			seen[m] = true
		}
		for _, m := range nc.Moves() {
			if seen[m] {
				t.Errorf("fen %q: move %s appears in both captures and noncaptures", fen, m.String())
			}
		}
	}
}

func TestGenerateChecksSubsetOfNoncapturesAndActuallyCheck(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	}
	for _, fen := range fens {
		pos, err := ParsePosition(fen)
		if err != nil {
			t.Fatal(err)
		}
		if pos.IsCheck() {
			continue
		}
		var checks, nc MoveList
		pos.GenerateChecks(&checks)
		pos.GenerateNoncaptures(&nc)
		ncSet := map[Move]bool{}
		for _, m := range nc.Moves() {
			ncSet[m] = true
		}
		for _, m := range checks.Moves() {
			if m.IsPromotion() {
				t.Errorf("fen %q: GenerateChecks produced a promotion %s", fen, m.String())
			}
			if m.IsCastle() {
				t.Errorf("fen %q: GenerateChecks produced a castle %s", fen, m.String())
			}
			if !ncSet[m] {
				t.Errorf("fen %q: GenerateChecks move %s not present in GenerateNoncaptures", fen, m.String())
			}
			undo, ok := pos.MakeMove(m)
			if !ok {
				t.Errorf("fen %q: GenerateChecks produced illegal move %s", fen, m.String())
				continue
			}
			if !pos.IsCheck() {
				t.Errorf("fen %q: move %s from GenerateChecks did not give check", fen, m.String())
			}
			pos.UnmakeMove(undo)
		}
	}
}

func TestGenerateEvasionsAreAllLegalAndInCheck(t *testing.T) {
	// Black king on e8 in check from the white queen on e2 along the e-file.
	fen := "rnb1kbnr/pppp1ppp/8/8/8/8/4Q3/RNB1KBNR b KQkq - 0 1"
	pos, err := ParsePosition(fen)
	if err != nil {
		t.Fatal(err)
	}
	if !pos.IsCheck() {
		t.Fatal("expected position to be in check")
	}
	var evasions MoveList
	pos.GenerateEvasions(&evasions)
	if evasions.Len() == 0 {
		t.Fatal("expected at least one evasion")
	}
	for _, m := range evasions.Moves() {
		undo, ok := pos.MakeMove(m)
		if !ok {
			t.Errorf("evasion %s rejected by MakeMove", m.String())
			continue
		}
		pos.UnmakeMove(undo)
	}
}

func TestGenerateMoveIfLegal(t *testing.T) {
	pos, err := ParsePosition(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	legal := MakeMove(MakeSquare(FileE, Rank2), MakeSquare(FileE, Rank4))
	if got := pos.GenerateMoveIfLegal(legal); got != legal {
		t.Errorf("GenerateMoveIfLegal(e2e4) = %v, want the move itself", got)
	}

	illegal := MakeMove(MakeSquare(FileE, Rank2), MakeSquare(FileE, Rank5))
	if got := pos.GenerateMoveIfLegal(illegal); got != NoMove {
		t.Errorf("GenerateMoveIfLegal(e2e5) = %v, want NoMove", got)
	}

	ownPiece := MakeMove(MakeSquare(FileE, Rank2), MakeSquare(FileD, Rank1))
	if got := pos.GenerateMoveIfLegal(ownPiece); got != NoMove {
		t.Errorf("GenerateMoveIfLegal(e2d1) = %v, want NoMove", got)
	}
}

func TestGenerateLegalMovesNoDuplicates(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, err := ParsePosition(fen)
	if err != nil {
		t.Fatal(err)
	}
	var list MoveList
	pos.GenerateLegalMoves(&list)
	seen := map[Move]bool{}
	for _, m := range list.Moves() {
		if seen[m] {
			t.Errorf("duplicate legal move %s", m.String())
		}
		seen[m] = true
	}
}

func TestCastlingFileBRookBlocksQueensideCastle(t *testing.T) {
	// Queenside rook's home file is B; the candidate move's `to` square is
	// the rook's own square (b1), so the extra Chess960 check looks one
	// further west, at a1. A black rook there should block the castle.
	blocked, err := ParsePosition("4k3/8/8/8/8/8/8/rR2K3 w B - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !blocked.CanCastleQueenside(White) {
		t.Fatal("expected white to hold the queenside castling right")
	}
	if blocked.castleSideIsClear(White, false) {
		t.Fatal("castleSideIsClear should be false: black rook on a1 blocks the file-B queenside castle")
	}

	clear, err := ParsePosition("4k3/8/8/8/8/8/8/1R2K3 w B - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !clear.castleSideIsClear(White, false) {
		t.Fatal("castleSideIsClear should be true: a1 is empty")
	}
}
