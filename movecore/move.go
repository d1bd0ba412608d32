package movecore

// MoveKind tags the special-case handling a Move requires.
type MoveKind uint8

const (
	Normal MoveKind = iota
	PromotionKind
	EnPassantKind
	CastleKind
)

// Move packs from (6 bits), to (6 bits), kind (2 bits) and promotion piece
// type (3 bits) into the low 17 bits of a 32-bit word.
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 6
	moveKindShift  = 12
	movePromoShift = 14
)

// NoMove is the NONE sentinel.
const NoMove Move = 0

func pack(from, to Square, kind MoveKind, promo PieceType) Move {
	return Move(uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(kind&0x3) << moveKindShift) |
		(uint32(promo&0x7) << movePromoShift))
}

// MakeMove constructs a plain (non-special) move.
func MakeMove(from, to Square) Move { return pack(from, to, Normal, NoPieceType) }

// MakePromotionMove constructs a promotion move; piece must be Knight,
// Bishop, Rook, or Queen.
func MakePromotionMove(from, to Square, piece PieceType) Move {
	return pack(from, to, PromotionKind, piece)
}

// MakeEPMove constructs an en-passant capture.
func MakeEPMove(from, to Square) Move { return pack(from, to, EnPassantKind, NoPieceType) }

// MakeCastleMove constructs a castle move. Per convention, the destination
// is the rook's initial square, not the king's landing square.
func MakeCastleMove(kingSq, rookSq Square) Move { return pack(kingSq, rookSq, CastleKind, NoPieceType) }

// From returns the move's source square. A NoMove reads as square 0; callers
// must check against NoMove before trusting From/To.
func (m Move) From() Square { return Square((m >> moveFromShift) & 0x3F) }

// To returns the move's destination square. For a Castle move this is the
// rook's initial square, not the king's landing square.
func (m Move) To() Square { return Square((m >> moveToShift) & 0x3F) }

// Kind returns the move's special-case tag.
func (m Move) Kind() MoveKind { return MoveKind((m >> moveKindShift) & 0x3) }

// PromotionPiece returns the promoted-to piece type, or NoPieceType if m is
// not a promotion.
func (m Move) PromotionPiece() PieceType {
	if m.Kind() != PromotionKind {
		return NoPieceType
	}
	return PieceType((m >> movePromoShift) & 0x7)
}

// IsPromotion reports whether m is a promotion move.
func (m Move) IsPromotion() bool { return m.Kind() == PromotionKind }

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Kind() == EnPassantKind }

// IsCastle reports whether m is a castle move.
func (m Move) IsCastle() bool { return m.Kind() == CastleKind }

// CastleKingDest returns the king's landing square for a castle move, given
// which side is castling (kingside vs queenside) and the mover's color.
func CastleKingDest(us Color, kingside bool) Square {
	if us == White {
		if kingside {
			return MakeSquare(FileG, Rank1)
		}
		return MakeSquare(FileC, Rank1)
	}
	if kingside {
		return MakeSquare(FileG, Rank8)
	}
	return MakeSquare(FileC, Rank8)
}

// CastleRookDest returns the rook's landing square for a castle move.
func CastleRookDest(us Color, kingside bool) Square {
	if us == White {
		if kingside {
			return MakeSquare(FileF, Rank1)
		}
		return MakeSquare(FileD, Rank1)
	}
	if kingside {
		return MakeSquare(FileF, Rank8)
	}
	return MakeSquare(FileD, Rank8)
}

// String renders the move in long algebraic form, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "(none)"
	}
	from, to := m.From(), m.To()
	if m.IsCastle() {
		// Render using the conventional king landing square rather than
		// the internal rook-square encoding, for human readability.
		us := White
		if from.Rank() == Rank8 {
			us = Black
		}
		to = CastleKingDest(us, to.File() > from.File())
	}
	s := from.String() + to.String()
	if promo := m.PromotionPiece(); promo != NoPieceType {
		s += string(pieceTypeLetter(promo))
	}
	return s
}

func pieceTypeLetter(pt PieceType) byte {
	switch pt {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	default:
		return '?'
	}
}
