package movecore

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN of the standard starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch byte) (Piece, error) {
	var c Color
	if ch >= 'a' && ch <= 'z' {
		c = Black
	} else {
		c = White
	}
	switch ch {
	case 'P', 'p':
		return MakePiece(c, Pawn), nil
	case 'N', 'n':
		return MakePiece(c, Knight), nil
	case 'B', 'b':
		return MakePiece(c, Bishop), nil
	case 'R', 'r':
		return MakePiece(c, Rook), nil
	case 'Q', 'q':
		return MakePiece(c, Queen), nil
	case 'K', 'k':
		return MakePiece(c, King), nil
	default:
		return NoPiece, fmt.Errorf("movecore: invalid piece char %q", ch)
	}
}

func charFromPiece(pc Piece) byte {
	var letters = map[PieceType]byte{Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K'}
	ch := letters[pc.Type()]
	if pc.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// ParsePosition parses a FEN string into a fully refreshed Position.
func ParsePosition(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("movecore: FEN %q has too few fields", fen)
	}

	p := NewEmptyPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("movecore: FEN %q does not have 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			if f > FileH {
				return nil, fmt.Errorf("movecore: FEN %q overflows rank %d", fen, i)
			}
			pc, err := pieceFromChar(ch)
			if err != nil {
				return nil, err
			}
			p.addPiece(pc, MakeSquare(f, r))
			f++
		}
	}
	if p.kingSq[White] == NoSquare || p.kingSq[Black] == NoSquare {
		return nil, fmt.Errorf("movecore: FEN %q is missing a king", fen)
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fmt.Errorf("movecore: FEN %q has invalid side to move %q", fen, fields[1])
	}

	if err := p.parseCastling(fields[2]); err != nil {
		return nil, err
	}

	if fields[3] == "-" {
		p.epSquare = NoSquare
	} else {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("movecore: FEN %q has invalid en passant square: %w", fen, err)
		}
		p.epSquare = sq
	}

	p.halfmove = 0
	p.fullmove = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmove = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullmove = n
		}
	}

	p.refresh()
	return p, nil
}

func (p *Position) parseCastling(field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		ch := field[i]
		switch {
		case ch == 'K':
			p.castleRights |= WhiteOO
			p.krSquare[White] = p.findRookSquare(White, true)
		case ch == 'Q':
			p.castleRights |= WhiteOOO
			p.qrSquare[White] = p.findRookSquare(White, false)
		case ch == 'k':
			p.castleRights |= BlackOO
			p.krSquare[Black] = p.findRookSquare(Black, true)
		case ch == 'q':
			p.castleRights |= BlackOOO
			p.qrSquare[Black] = p.findRookSquare(Black, false)
		case ch >= 'A' && ch <= 'H':
			f := File(ch - 'A')
			sq := MakeSquare(f, Rank1)
			if f > p.kingSq[White].File() {
				p.castleRights |= WhiteOO
				p.krSquare[White] = sq
			} else {
				p.castleRights |= WhiteOOO
				p.qrSquare[White] = sq
			}
		case ch >= 'a' && ch <= 'h':
			f := File(ch - 'a')
			sq := MakeSquare(f, Rank8)
			if f > p.kingSq[Black].File() {
				p.castleRights |= BlackOO
				p.krSquare[Black] = sq
			} else {
				p.castleRights |= BlackOOO
				p.qrSquare[Black] = sq
			}
		default:
			return fmt.Errorf("movecore: invalid castling field char %q", ch)
		}
	}
	return nil
}

// findRookSquare locates the rook that a standard KQkq FEN letter refers
// to: the outermost rook on c's back rank relative to the king, on the
// kingside or queenside of it.
func (p *Position) findRookSquare(c Color, kingside bool) Square {
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	kingFile := p.kingSq[c].File()
	rooks := p.Rooks(c) & ranksByIndex[rank]
	best := NoSquare
	for rooks != 0 {
		sq := rooks.PopLSB()
		if kingside {
			if sq.File() > kingFile && (best == NoSquare || sq.File() > best.File()) {
				best = sq
			}
		} else {
			if sq.File() < kingFile && (best == NoSquare || sq.File() < best.File()) {
				best = sq
			}
		}
	}
	return best
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	f := s[0] - 'a'
	r := s[1] - '1'
	if f > 7 || r > 7 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return MakeSquare(File(f), Rank(r)), nil
}

// FEN renders the position back to FEN text.
func (p *Position) FEN() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		r := Rank(7 - i)
		empty := 0
		for f := FileA; f <= FileH; f++ {
			sq := MakeSquare(f, r)
			pc := p.pieceOn[sq]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(pc))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if i != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := ""
	if p.castleRights&WhiteOO != 0 {
		castling += "K"
	}
	if p.castleRights&WhiteOOO != 0 {
		castling += "Q"
	}
	if p.castleRights&BlackOO != 0 {
		castling += "k"
	}
	if p.castleRights&BlackOOO != 0 {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	if p.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.epSquare.String())
	}

	fmt.Fprintf(&sb, " %d %d", p.halfmove, p.fullmove)
	return sb.String()
}
