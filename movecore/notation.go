package movecore

import (
	"fmt"
	"strings"
)

// ParseUCIMove parses a long-algebraic move token as used by the UCI
// protocol ("e2e4", "e7e8q", "e1g1" for a king-side castle rendered at the
// king's landing square). It returns only the raw (from, to, promotion)
// triple; callers must match it against a generated legal move (by
// String() or by from/to/promotion) since this alone cannot distinguish a
// king move from a castle. Grounded on the teacher's ParseMove/
// algebraicToIndex in goosemg/compat.go.
func ParseUCIMove(s string) (from, to Square, promo PieceType, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 4 || len(s) > 5 {
		return NoSquare, NoSquare, NoPieceType, fmt.Errorf("movecore: invalid move token %q", s)
	}
	from, err = parseSquare(s[0:2])
	if err != nil {
		return NoSquare, NoSquare, NoPieceType, fmt.Errorf("movecore: invalid move token %q: %w", s, err)
	}
	to, err = parseSquare(s[2:4])
	if err != nil {
		return NoSquare, NoSquare, NoPieceType, fmt.Errorf("movecore: invalid move token %q: %w", s, err)
	}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return NoSquare, NoSquare, NoPieceType, fmt.Errorf("movecore: invalid promotion letter in %q", s)
		}
	}
	return from, to, promo, nil
}

// FindLegalMove looks up the legal move in list matching a UCI long-
// algebraic token, trying an exact String() match first (which renders
// castle moves at the king's landing square, e.g. "e1g1") and falling back
// to a from/to/promotion comparison for tokens a generator might render
// differently.
func FindLegalMove(list *MoveList, token string) (Move, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	for _, m := range list.Moves() {
		if m.String() == token {
			return m, true
		}
	}
	from, to, promo, err := ParseUCIMove(token)
	if err != nil {
		return NoMove, false
	}
	for _, m := range list.Moves() {
		if m.From() != from {
			continue
		}
		if m.IsCastle() {
			us := White
			if from.Rank() == Rank8 {
				us = Black
			}
			if CastleKingDest(us, m.To().File() > from.File()) == to {
				return m, true
			}
			continue
		}
		if m.To() == to && m.PromotionPiece() == promo {
			return m, true
		}
	}
	return NoMove, false
}
