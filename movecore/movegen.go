package movecore

// This file implements the six generator entry points. Pawn generation
// keeps separate white/black code paths (rather than a single
// color-parameterized routine) because unsigned bitboard shifts cannot
// move a set "backward" with a signed distance, matching the teacher's own
// split pawn-generation code paths.

func pawnPushDelta(us Color) Square {
	if us == White {
		return DeltaN
	}
	return DeltaS
}

func pawnPromoRank(us Color) Rank {
	if us == White {
		return Rank8
	}
	return Rank1
}

func pawnStartRank(us Color) Rank {
	if us == White {
		return Rank2
	}
	return Rank7
}

// ---- pawn captures ----

func (p *Position) generatePawnCaptures(list *MoveList) {
	if p.sideToMove == White {
		p.generateWhitePawnCaptures(list)
	} else {
		p.generateBlackPawnCaptures(list)
	}
}

func emitPawnCapture(list *MoveList, from, to Square, promoRank Rank) {
	if to.Rank() == promoRank {
		list.Add(MakePromotionMove(from, to, Queen))
	} else {
		list.Add(MakeMove(from, to))
	}
}

func (p *Position) generateWhitePawnCaptures(list *MoveList) {
	pawns := p.Pawns(White)
	enemy := p.PiecesOfColor(Black)

	ne := (pawns &^ FileHBB) << 9 & enemy
	nw := (pawns &^ FileABB) << 7 & enemy
	for ne != 0 {
		to := ne.PopLSB()
		emitPawnCapture(list, to-DeltaNE, to, Rank8)
	}
	for nw != 0 {
		to := nw.PopLSB()
		emitPawnCapture(list, to-DeltaNW, to, Rank8)
	}

	promoPush := (pawns & Rank7BB) << 8 &^ p.OccupiedSquares() & Rank8BB
	for promoPush != 0 {
		to := promoPush.PopLSB()
		list.Add(MakePromotionMove(to-DeltaN, to, Queen))
	}

	if ep := p.epSquare; ep != NoSquare {
		attackers := PawnAttacks(Black, ep) & pawns
		for attackers != 0 {
			list.Add(MakeEPMove(attackers.PopLSB(), ep))
		}
	}
}

func (p *Position) generateBlackPawnCaptures(list *MoveList) {
	pawns := p.Pawns(Black)
	enemy := p.PiecesOfColor(White)

	se := (pawns &^ FileHBB) >> 7 & enemy
	sw := (pawns &^ FileABB) >> 9 & enemy
	for se != 0 {
		to := se.PopLSB()
		emitPawnCapture(list, to-DeltaSE, to, Rank1)
	}
	for sw != 0 {
		to := sw.PopLSB()
		emitPawnCapture(list, to-DeltaSW, to, Rank1)
	}

	promoPush := (pawns & Rank2BB) >> 8 &^ p.OccupiedSquares() & Rank1BB
	for promoPush != 0 {
		to := promoPush.PopLSB()
		list.Add(MakePromotionMove(to-DeltaS, to, Queen))
	}

	if ep := p.epSquare; ep != NoSquare {
		attackers := PawnAttacks(White, ep) & pawns
		for attackers != 0 {
			list.Add(MakeEPMove(attackers.PopLSB(), ep))
		}
	}
}

// ---- pawn noncaptures ----

func (p *Position) generatePawnNoncaptures(list *MoveList) {
	if p.sideToMove == White {
		p.generateWhitePawnNoncaptures(list)
	} else {
		p.generateBlackPawnNoncaptures(list)
	}
}

func emitUnderpromotions(list *MoveList, from, to Square) {
	list.Add(MakePromotionMove(from, to, Rook))
	list.Add(MakePromotionMove(from, to, Bishop))
	list.Add(MakePromotionMove(from, to, Knight))
}

func (p *Position) generateWhitePawnNoncaptures(list *MoveList) {
	pawns := p.Pawns(White)
	enemy := p.PiecesOfColor(Black)
	empty := p.EmptySquares()

	neCap := (pawns &^ FileHBB) << 9 & enemy & Rank8BB
	nwCap := (pawns &^ FileABB) << 7 & enemy & Rank8BB
	for neCap != 0 {
		to := neCap.PopLSB()
		emitUnderpromotions(list, to-DeltaNE, to)
	}
	for nwCap != 0 {
		to := nwCap.PopLSB()
		emitUnderpromotions(list, to-DeltaNW, to)
	}

	singlePush := pawns << 8 & empty
	for bb := singlePush &^ Rank8BB; bb != 0; {
		to := bb.PopLSB()
		list.Add(MakeMove(to-DeltaN, to))
	}
	for bb := singlePush & Rank8BB; bb != 0; {
		to := bb.PopLSB()
		emitUnderpromotions(list, to-DeltaN, to)
	}

	doublePush := (singlePush & Rank3BB) << 8 & empty
	for doublePush != 0 {
		to := doublePush.PopLSB()
		list.Add(MakeMove(to-DeltaNN, to))
	}
}

func (p *Position) generateBlackPawnNoncaptures(list *MoveList) {
	pawns := p.Pawns(Black)
	enemy := p.PiecesOfColor(White)
	empty := p.EmptySquares()

	seCap := (pawns &^ FileHBB) >> 7 & enemy & Rank1BB
	swCap := (pawns &^ FileABB) >> 9 & enemy & Rank1BB
	for seCap != 0 {
		to := seCap.PopLSB()
		emitUnderpromotions(list, to-DeltaSE, to)
	}
	for swCap != 0 {
		to := swCap.PopLSB()
		emitUnderpromotions(list, to-DeltaSW, to)
	}

	singlePush := pawns >> 8 & empty
	for bb := singlePush &^ Rank1BB; bb != 0; {
		to := bb.PopLSB()
		list.Add(MakeMove(to-DeltaS, to))
	}
	for bb := singlePush & Rank1BB; bb != 0; {
		to := bb.PopLSB()
		emitUnderpromotions(list, to-DeltaS, to)
	}

	doublePush := (singlePush & Rank6BB) >> 8 & empty
	for doublePush != 0 {
		to := doublePush.PopLSB()
		list.Add(MakeMove(to-DeltaSS, to))
	}
}

// ---- non-pawn piece generation ----

func (p *Position) generatePieceMoves(list *MoveList, us Color, pt PieceType, target Bitboard) {
	occ := p.OccupiedSquares()
	pieces := p.bitboardFor(us, pt)
	for pieces != 0 {
		from := pieces.PopLSB()
		dests := AttacksBB(pt, us, from, occ) & target
		for dests != 0 {
			list.Add(MakeMove(from, dests.PopLSB()))
		}
	}
}

// ---- entry points ----

// GenerateCaptures appends pseudo-legal captures and queen promotions.
// Precondition: side to move is not in check.
func (p *Position) GenerateCaptures(list *MoveList) {
	assert(!p.IsCheck(), "GenerateCaptures called while in check")
	us := p.sideToMove
	enemy := p.PiecesOfColor(us.Opposite())
	p.generatePawnCaptures(list)
	p.generatePieceMoves(list, us, Knight, enemy)
	p.generatePieceMoves(list, us, Bishop, enemy)
	p.generatePieceMoves(list, us, Rook, enemy)
	p.generatePieceMoves(list, us, Queen, enemy)
	p.generatePieceMoves(list, us, King, enemy)
}

// GenerateNoncaptures appends pseudo-legal non-captures, underpromotions,
// and castling. Precondition: side to move is not in check.
func (p *Position) GenerateNoncaptures(list *MoveList) {
	assert(!p.IsCheck(), "GenerateNoncaptures called while in check")
	us := p.sideToMove
	empty := p.EmptySquares()
	p.generatePawnNoncaptures(list)
	p.generatePieceMoves(list, us, Knight, empty)
	p.generatePieceMoves(list, us, Bishop, empty)
	p.generatePieceMoves(list, us, Rook, empty)
	p.generatePieceMoves(list, us, Queen, empty)
	p.generatePieceMoves(list, us, King, empty)
	p.generateCastleMoves(list)
}

// GenerateChecks appends pseudo-legal, non-capturing, non-promoting moves
// that give check. Precondition: side to move is not in check.
func (p *Position) GenerateChecks(list *MoveList) {
	assert(!p.IsCheck(), "GenerateChecks called while in check")
	us := p.sideToMove
	them := us.Opposite()
	ksq := p.kingSq[them]
	dc := p.DiscoveredCheckCandidates(us)
	occ := p.OccupiedSquares()
	empty := p.EmptySquares()

	p.generatePawnChecks(list, us, ksq, dc)

	knights := p.Knights(us)
	for knights != 0 {
		from := knights.PopLSB()
		if dc&from.Bit() != 0 {
			for dests := KnightAttacks(from) & empty; dests != 0; {
				list.Add(MakeMove(from, dests.PopLSB()))
			}
		} else {
			for dests := KnightAttacks(from) & KnightAttacks(ksq) & empty; dests != 0; {
				list.Add(MakeMove(from, dests.PopLSB()))
			}
		}
	}

	bishops := p.Bishops(us)
	for bishops != 0 {
		from := bishops.PopLSB()
		atk := BishopAttacksBB(from, occ)
		if dc&from.Bit() != 0 {
			for dests := atk & empty; dests != 0; {
				list.Add(MakeMove(from, dests.PopLSB()))
			}
		} else {
			for dests := atk & BishopAttacksBB(ksq, occ) & empty; dests != 0; {
				list.Add(MakeMove(from, dests.PopLSB()))
			}
		}
	}

	rooks := p.Rooks(us)
	for rooks != 0 {
		from := rooks.PopLSB()
		atk := RookAttacksBB(from, occ)
		if dc&from.Bit() != 0 {
			for dests := atk & empty; dests != 0; {
				list.Add(MakeMove(from, dests.PopLSB()))
			}
		} else {
			for dests := atk & RookAttacksBB(ksq, occ) & empty; dests != 0; {
				list.Add(MakeMove(from, dests.PopLSB()))
			}
		}
	}

	queens := p.Queens(us)
	qAtkKsq := QueenAttacksBB(ksq, occ)
	for queens != 0 {
		from := queens.PopLSB()
		for dests := QueenAttacksBB(from, occ) & qAtkKsq & empty; dests != 0; {
			list.Add(MakeMove(from, dests.PopLSB()))
		}
	}

	ourKing := p.kingSq[us]
	if dc&ourKing.Bit() != 0 {
		for dests := KingAttacks(ourKing) & empty &^ QueenPseudoAttacks[ksq]; dests != 0; {
			list.Add(MakeMove(ourKing, dests.PopLSB()))
		}
	}
}

func (p *Position) generatePawnChecks(list *MoveList, us Color, ksq Square, dc Bitboard) {
	them := us.Opposite()
	pawns := p.Pawns(us)
	empty := p.EmptySquares()
	promoRank := pawnPromoRank(us)
	pushDelta := pawnPushDelta(us)
	startRank := pawnStartRank(us)

	dcPawns := pawns & dc &^ filesByIndex[ksq.File()]
	for dcPawns != 0 {
		from := dcPawns.PopLSB()
		one := from + pushDelta
		if one.Bit()&empty != 0 && one.Rank() != promoRank {
			list.Add(MakeMove(from, one))
			if from.Rank() == startRank {
				two := one + pushDelta
				if two.Bit()&empty != 0 && two.Rank() != promoRank {
					list.Add(MakeMove(from, two))
				}
			}
		}
	}

	attackSquares := PawnAttacks(them, ksq)
	direct := pawns &^ dc & neighboringFilesBB(ksq)
	for direct != 0 {
		from := direct.PopLSB()
		one := from + pushDelta
		if one.Bit()&empty == 0 {
			continue
		}
		if one.Bit()&attackSquares != 0 && one.Rank() != promoRank {
			list.Add(MakeMove(from, one))
		}
		if from.Rank() == startRank {
			two := one + pushDelta
			if two.Bit()&empty != 0 && two.Bit()&attackSquares != 0 && two.Rank() != promoRank {
				list.Add(MakeMove(from, two))
			}
		}
	}
}

// GenerateEvasions appends the fully legal moves that resolve a check.
// Precondition: side to move is in check.
func (p *Position) GenerateEvasions(list *MoveList) {
	assert(p.IsCheck(), "GenerateEvasions called while not in check")
	us := p.sideToMove
	them := us.Opposite()
	ksq := p.kingSq[us]
	checkers := p.checkers

	ownPieces := p.PiecesOfColor(us)
	for dests := KingAttacks(ksq) &^ ownPieces; dests != 0; {
		to := dests.PopLSB()
		if !p.squareAttackedAfterMove(to, them, ksq, to) {
			list.Add(MakeMove(ksq, to))
		}
	}

	if checkers.More() {
		return
	}

	checksq := checkers.LSB()
	pinned := p.PinnedPieces(us)
	checkerType := p.pieceOn[checksq].Type()

	p.generateCheckerCaptures(list, us, checksq, pinned)

	if checkerType == Bishop || checkerType == Rook || checkerType == Queen {
		p.generateInterpositions(list, us, squaresBetween(checksq, ksq), pinned)
	}

	if p.epSquare != NoSquare {
		enemyPawnSq := p.epSquare - pawnPushDelta(us)
		if enemyPawnSq == checksq {
			p.generateEPEvasions(list, us, pinned)
		}
	}
}

func (p *Position) generateCheckerCaptures(list *MoveList, us Color, checksq Square, pinned Bitboard) {
	occ := p.OccupiedSquares()
	promoRank := pawnPromoRank(us)

	attackers := PawnAttacks(us.Opposite(), checksq) & p.Pawns(us) &^ pinned
	for attackers != 0 {
		from := attackers.PopLSB()
		if checksq.Rank() == promoRank {
			list.Add(MakePromotionMove(from, checksq, Queen))
			list.Add(MakePromotionMove(from, checksq, Rook))
			list.Add(MakePromotionMove(from, checksq, Bishop))
			list.Add(MakePromotionMove(from, checksq, Knight))
		} else {
			list.Add(MakeMove(from, checksq))
		}
	}

	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		pieces := p.bitboardFor(us, pt) &^ pinned
		for pieces != 0 {
			from := pieces.PopLSB()
			if AttacksBB(pt, us, from, occ)&checksq.Bit() != 0 {
				list.Add(MakeMove(from, checksq))
			}
		}
	}
}

func (p *Position) generateInterpositions(list *MoveList, us Color, blockSquares, pinned Bitboard) {
	if blockSquares == 0 {
		return
	}
	occ := p.OccupiedSquares()
	empty := p.EmptySquares()
	pushDelta := pawnPushDelta(us)
	promoRank := pawnPromoRank(us)
	startRank := pawnStartRank(us)

	pawns := p.Pawns(us) &^ pinned
	for pawns != 0 {
		from := pawns.PopLSB()
		one := from + pushDelta
		if one.Bit()&empty == 0 {
			continue
		}
		if one.Bit()&blockSquares != 0 {
			if one.Rank() == promoRank {
				list.Add(MakePromotionMove(from, one, Queen))
				list.Add(MakePromotionMove(from, one, Rook))
				list.Add(MakePromotionMove(from, one, Bishop))
				list.Add(MakePromotionMove(from, one, Knight))
			} else {
				list.Add(MakeMove(from, one))
			}
		}
		if from.Rank() == startRank {
			two := one + pushDelta
			if two.Bit()&empty != 0 && two.Bit()&blockSquares != 0 {
				list.Add(MakeMove(from, two))
			}
		}
	}

	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		pieces := p.bitboardFor(us, pt) &^ pinned
		for pieces != 0 {
			from := pieces.PopLSB()
			for dests := AttacksBB(pt, us, from, occ) & blockSquares; dests != 0; {
				list.Add(MakeMove(from, dests.PopLSB()))
			}
		}
	}
}

func (p *Position) generateEPEvasions(list *MoveList, us Color, pinned Bitboard) {
	ep := p.epSquare
	attackers := PawnAttacks(us.Opposite(), ep) & p.Pawns(us) &^ pinned
	for attackers != 0 {
		from := attackers.PopLSB()
		if p.epCaptureIsLegal(from, ep) {
			list.Add(MakeEPMove(from, ep))
		}
	}
}

// GenerateLegalMoves appends the fully legal move set, valid in any position.
func (p *Position) GenerateLegalMoves(list *MoveList) {
	if p.IsCheck() {
		p.GenerateEvasions(list)
		return
	}
	var pseudo MoveList
	p.GenerateCaptures(&pseudo)
	p.GenerateNoncaptures(&pseudo)
	pinned := p.PinnedPieces(p.sideToMove)
	for _, m := range pseudo.Moves() {
		if p.moveIsLegalPinned(m, pinned) {
			list.Add(m)
		}
	}
}

// GenerateMoveIfLegal returns m if it is legal in the current (not-in-check)
// position, else NoMove. Precondition: side to move is not in check.
func (p *Position) GenerateMoveIfLegal(m Move) Move {
	assert(!p.IsCheck(), "GenerateMoveIfLegal called while in check")
	if p.moveIsLegalCandidate(m) {
		return m
	}
	return NoMove
}

// ---- castling generation ----

func (p *Position) generateCastleMoves(list *MoveList) {
	us := p.sideToMove
	if p.CanCastleKingside(us) && p.castleSideIsClear(us, true) {
		list.Add(MakeCastleMove(p.kingSq[us], p.krSquare[us]))
	}
	if p.CanCastleQueenside(us) && p.castleSideIsClear(us, false) {
		list.Add(MakeCastleMove(p.kingSq[us], p.qrSquare[us]))
	}
}

// castleSideIsClear implements the path-emptiness and attacked-square
// checks shared by castle generation (§4.7) and legality verification of a
// candidate castle move (§4.6).
func (p *Position) castleSideIsClear(us Color, kingside bool) bool {
	from := p.kingSq[us]
	var rookSq Square
	if kingside {
		rookSq = p.krSquare[us]
	} else {
		rookSq = p.qrSquare[us]
	}
	if rookSq == NoSquare {
		return false
	}
	them := us.Opposite()
	kingDest := CastleKingDest(us, kingside)

	lo, hi := from, kingDest
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := lo; sq <= hi; sq++ {
		if sq != from && sq != rookSq && p.pieceOn[sq] != NoPiece {
			return false
		}
	}
	for sq := lo; sq <= hi; sq++ {
		if p.SquareIsAttacked(sq, them) {
			return false
		}
	}

	rookDest := CastleRookDest(us, kingside)
	rlo, rhi := rookSq, rookDest
	if rlo > rhi {
		rlo, rhi = rhi, rlo
	}
	for sq := rlo; sq <= rhi; sq++ {
		if sq != from && sq != rookSq && p.pieceOn[sq] != NoPiece {
			return false
		}
	}

	if !kingside && rookSq.File() == FileB {
		westOfRook := rookSq - 1
		wpc := p.pieceOn[westOfRook]
		if wpc != NoPiece && wpc.Color() == them && (wpc.Type() == Rook || wpc.Type() == Queen) {
			return false
		}
	}

	return true
}

// ---- legality ----

// squareAttackedAfterMove reports whether ksq would be attacked by `by`
// after hypothetically moving a piece from `from` to `to`, without
// mutating the position. Used both for king-move legality (ksq == to) and
// pinned-piece legality (ksq == own king's square).
func (p *Position) squareAttackedAfterMove(ksq Square, by Color, from, to Square) bool {
	occAfter := (p.OccupiedSquares() &^ from.Bit()) | to.Bit()
	clearTo := ^to.Bit()
	if PawnAttacks(by.Opposite(), ksq)&p.Pawns(by)&clearTo != 0 {
		return true
	}
	if KnightAttacks(ksq)&p.Knights(by)&clearTo != 0 {
		return true
	}
	if KingAttacks(ksq)&p.Kings(by)&clearTo != 0 {
		return true
	}
	if RookAttacksBB(ksq, occAfter)&p.RooksAndQueens(by)&clearTo != 0 {
		return true
	}
	if BishopAttacksBB(ksq, occAfter)&p.BishopsAndQueens(by)&clearTo != 0 {
		return true
	}
	return false
}

// epCaptureIsLegal tests the double-removal exposure rule specific to
// en-passant: after removing both the capturing pawn and the captured
// pawn, the king must not be newly attacked by a slider along the
// uncovered line.
func (p *Position) epCaptureIsLegal(from, to Square) bool {
	us := p.sideToMove
	them := us.Opposite()
	capSq := to - pawnPushDelta(us)
	ksq := p.kingSq[us]
	occAfter := (p.OccupiedSquares() &^ from.Bit() &^ capSq.Bit()) | to.Bit()

	if RookAttacksBB(ksq, occAfter)&p.RooksAndQueens(them) != 0 {
		return false
	}
	if BishopAttacksBB(ksq, occAfter)&p.BishopsAndQueens(them) != 0 {
		return false
	}
	return true
}

// moveIsLegalPinned is the core move_is_legal(m, pinned) check: m is
// assumed pseudo-legal already (obeys movement rules, doesn't capture own
// piece); this only verifies it doesn't leave the mover's king in check.
func (p *Position) moveIsLegalPinned(m Move, pinned Bitboard) bool {
	us := p.sideToMove
	from, to := m.From(), m.To()

	if m.IsEnPassant() {
		return p.epCaptureIsLegal(from, to)
	}
	if m.IsCastle() {
		return true
	}
	if p.pieceOn[from].Type() == King {
		return !p.squareAttackedAfterMove(to, us.Opposite(), from, to)
	}
	if pinned&from.Bit() == 0 {
		return true
	}
	ksq := p.kingSq[us]
	return !p.squareAttackedAfterMove(ksq, us.Opposite(), from, to)
}

// MoveIsLegal is move_is_legal(Move) from the external interface: it
// recomputes the pinned set for the current side to move.
func (p *Position) MoveIsLegal(m Move) bool {
	return p.moveIsLegalPinned(m, p.PinnedPieces(p.sideToMove))
}

// MoveIsLegalPinned is move_is_legal(Move, Bitboard pinned) from the
// external interface, for callers that already have the pinned set cached.
func (p *Position) MoveIsLegalPinned(m Move, pinned Bitboard) bool {
	return p.moveIsLegalPinned(m, pinned)
}

// moveIsLegalCandidate implements generate_move_if_legal's full validation
// of an arbitrary candidate move (not assumed pseudo-legal), per §4.6.
func (p *Position) moveIsLegalCandidate(m Move) bool {
	us := p.sideToMove
	from, to := m.From(), m.To()
	pc := p.pieceOn[from]
	if pc == NoPiece || pc.Color() != us {
		return false
	}
	pinned := p.PinnedPieces(us)

	switch m.Kind() {
	case EnPassantKind:
		if pc.Type() != Pawn || to != p.epSquare {
			return false
		}
		return p.moveIsLegalPinned(m, pinned)

	case CastleKind:
		if pc.Type() != King {
			return false
		}
		kingside := to.File() > from.File()
		if kingside {
			if !p.CanCastleKingside(us) || to != p.krSquare[us] {
				return false
			}
		} else {
			if !p.CanCastleQueenside(us) || to != p.qrSquare[us] {
				return false
			}
		}
		return p.castleSideIsClear(us, kingside)

	default:
		if target := p.pieceOn[to]; target != NoPiece && target.Color() == us {
			return false
		}
		if pc.Type() == Pawn {
			return p.pawnCandidateIsLegal(m, us, from, to, pinned)
		}
		if m.IsPromotion() {
			return false
		}
		if !p.PieceAttacksSquare(from, to) {
			return false
		}
		return p.moveIsLegalPinned(m, pinned)
	}
}

func (p *Position) pawnCandidateIsLegal(m Move, us Color, from, to Square, pinned Bitboard) bool {
	promoRank := pawnPromoRank(us)
	if (to.Rank() == promoRank) != m.IsPromotion() {
		return false
	}
	delta := int(to) - int(from)

	if us == White {
		switch delta {
		case DeltaNE, DeltaNW:
			target := p.pieceOn[to]
			if target == NoPiece || target.Color() == us {
				return false
			}
		case DeltaN:
			if p.pieceOn[to] != NoPiece {
				return false
			}
		case DeltaNN:
			mid := Square((int(from) + int(to)) / 2)
			if to.Rank() != Rank4 || p.pieceOn[mid] != NoPiece || p.pieceOn[to] != NoPiece {
				return false
			}
		default:
			return false
		}
	} else {
		switch delta {
		case DeltaSE, DeltaSW:
			target := p.pieceOn[to]
			if target == NoPiece || target.Color() == us {
				return false
			}
		case DeltaS:
			if p.pieceOn[to] != NoPiece {
				return false
			}
		case DeltaSS:
			mid := Square((int(from) + int(to)) / 2)
			if to.Rank() != Rank5 || p.pieceOn[mid] != NoPiece || p.pieceOn[to] != NoPiece {
				return false
			}
		default:
			return false
		}
	}

	return p.moveIsLegalPinned(m, pinned)
}
