package movecore

// Undo captures everything MakeMove needs to restore a Position to its
// exact pre-move state, grounded on the teacher's MoveState record.
type Undo struct {
	move           Move
	movedPiece     Piece
	capturedPiece  Piece
	capturedSquare Square

	castleRights CastleRights
	epSquare     Square
	halfmove     int
	krSquare     [2]Square
	qrSquare     [2]Square
}

// MakeMove applies m (which need only be pseudo-legal) to the position. It
// reports ok=false, leaving the position unchanged, if m leaves the
// mover's own king in check; otherwise it returns ok=true and an Undo that
// UnmakeMove can later use to reverse it exactly.
func (p *Position) MakeMove(m Move) (Undo, bool) {
	us := p.sideToMove
	them := us.Opposite()
	from := m.From()

	moved := p.pieceOn[from]
	assert(moved != NoPiece && moved.Color() == us, "MakeMove: from-square does not hold side-to-move's piece")

	pre := Undo{
		move:         m,
		movedPiece:   moved,
		castleRights: p.castleRights,
		epSquare:     p.epSquare,
		halfmove:     p.halfmove,
		krSquare:     p.krSquare,
		qrSquare:     p.qrSquare,
	}

	captured, capturedSq := p.placeMove(m, us, moved)
	pre.capturedPiece = captured
	pre.capturedSquare = capturedSq

	if p.squareIsAttackedOcc(p.kingSq[us], them, p.OccupiedSquares()) {
		p.unplaceMove(m, us, moved, captured, capturedSq)
		p.castleRights = pre.castleRights
		p.epSquare = pre.epSquare
		p.krSquare = pre.krSquare
		p.qrSquare = pre.qrSquare
		return Undo{}, false
	}

	if moved.Type() == Pawn || captured != NoPiece {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	if us == Black {
		p.fullmove++
	}
	p.sideToMove = them
	p.refresh()
	return pre, true
}

// UnmakeMove reverses a move previously applied by a MakeMove call that
// returned ok=true.
func (p *Position) UnmakeMove(u Undo) {
	us := p.sideToMove.Opposite()
	p.unplaceMove(u.move, us, u.movedPiece, u.capturedPiece, u.capturedSquare)

	p.castleRights = u.castleRights
	p.epSquare = u.epSquare
	p.halfmove = u.halfmove
	p.krSquare = u.krSquare
	p.qrSquare = u.qrSquare
	if us == Black {
		p.fullmove--
	}
	p.sideToMove = us
	p.refresh()
}

// placeMove performs the piece-placement half of applying m: it does not
// touch side to move or move clocks, but does update castling rights, rook
// home squares, and the en-passant square as a side effect of the move
// itself. Returns the captured piece (if any) and the square it occupied
// (which differs from m.To() for en passant).
func (p *Position) placeMove(m Move, us Color, moved Piece) (captured Piece, capturedSq Square) {
	them := us.Opposite()
	from, to := m.From(), m.To()
	p.epSquare = NoSquare

	switch m.Kind() {
	case CastleKind:
		kingside := to.File() > from.File()
		rook := p.pieceOn[to]
		kingDest := CastleKingDest(us, kingside)
		rookDest := CastleRookDest(us, kingside)
		p.removePiece(moved, from)
		p.removePiece(rook, to)
		p.addPiece(moved, kingDest)
		p.addPiece(rook, rookDest)
		captured, capturedSq = NoPiece, NoSquare

	case EnPassantKind:
		capSq := to - DeltaN
		if us == Black {
			capSq = to - DeltaS
		}
		captured = p.pieceOn[capSq]
		p.removePiece(captured, capSq)
		p.movePiece(moved, from, to)
		capturedSq = capSq

	case PromotionKind:
		captured = p.pieceOn[to]
		if captured != NoPiece {
			p.removePiece(captured, to)
		}
		p.removePiece(moved, from)
		p.addPiece(MakePiece(us, m.PromotionPiece()), to)
		capturedSq = to

	default: // Normal
		captured = p.pieceOn[to]
		if captured != NoPiece {
			p.removePiece(captured, to)
		}
		p.movePiece(moved, from, to)
		capturedSq = to

		if moved.Type() == Pawn {
			delta := int(to) - int(from)
			if delta == DeltaNN || delta == DeltaSS {
				p.epSquare = Square((int(from) + int(to)) / 2)
			}
		}
	}

	if moved.Type() == King {
		if us == White {
			p.castleRights &^= WhiteOO | WhiteOOO
		} else {
			p.castleRights &^= BlackOO | BlackOOO
		}
	}
	if from == p.krSquare[us] {
		p.clearCastleRight(us, true)
	}
	if from == p.qrSquare[us] {
		p.clearCastleRight(us, false)
	}
	if capturedSq == p.krSquare[them] {
		p.clearCastleRight(them, true)
	}
	if capturedSq == p.qrSquare[them] {
		p.clearCastleRight(them, false)
	}
	for _, c := range [2]Color{White, Black} {
		if !p.CanCastleKingside(c) {
			p.krSquare[c] = NoSquare
		}
		if !p.CanCastleQueenside(c) {
			p.qrSquare[c] = NoSquare
		}
	}

	return captured, capturedSq
}

func (p *Position) clearCastleRight(c Color, kingside bool) {
	if c == White {
		if kingside {
			p.castleRights &^= WhiteOO
		} else {
			p.castleRights &^= WhiteOOO
		}
	} else {
		if kingside {
			p.castleRights &^= BlackOO
		} else {
			p.castleRights &^= BlackOOO
		}
	}
}

// unplaceMove reverses exactly the piece-placement changes placeMove made,
// given the same inputs and the captured piece/square it reported.
func (p *Position) unplaceMove(m Move, us Color, moved, captured Piece, capturedSq Square) {
	from, to := m.From(), m.To()

	switch m.Kind() {
	case CastleKind:
		kingside := to.File() > from.File()
		kingDest := CastleKingDest(us, kingside)
		rookDest := CastleRookDest(us, kingside)
		king := p.pieceOn[kingDest]
		rook := p.pieceOn[rookDest]
		p.removePiece(king, kingDest)
		p.removePiece(rook, rookDest)
		p.addPiece(king, from)
		p.addPiece(rook, to)

	case EnPassantKind:
		pawn := p.pieceOn[to]
		p.removePiece(pawn, to)
		p.addPiece(pawn, from)
		p.addPiece(captured, capturedSq)

	case PromotionKind:
		promoted := p.pieceOn[to]
		p.removePiece(promoted, to)
		p.addPiece(moved, from)
		if captured != NoPiece {
			p.addPiece(captured, capturedSq)
		}

	default:
		mover := p.pieceOn[to]
		p.removePiece(mover, to)
		p.addPiece(mover, from)
		if captured != NoPiece {
			p.addPiece(captured, capturedSq)
		}
	}
}
