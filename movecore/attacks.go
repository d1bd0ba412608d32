package movecore

import "github.com/dylhunn/dragontoothmg"

// Precomputed non-slider attack tables, built once at package init the way
// the teacher engine precomputes knightMoves/kingMoves/pawnAttacks.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttackTbl [2][64]Bitboard

	// QueenPseudoAttacks is the queen's attack set on an empty board from
	// each square, required by the check generator's king-discovery guard.
	QueenPseudoAttacks [64]Bitboard
	bishopPseudoAttacks [64]Bitboard
	rookPseudoAttacks   [64]Bitboard
)

var knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

func initLeaperAttacks() {
	for sq := Square(0); sq < 64; sq++ {
		f, r := int(sq.File()), int(sq.Rank())

		var kn, ki Bitboard
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kn |= MakeSquare(File(nf), Rank(nr)).Bit()
			}
		}
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				ki |= MakeSquare(File(nf), Rank(nr)).Bit()
			}
		}
		knightAttacks[sq] = kn
		kingAttacks[sq] = ki

		var wp, bp Bitboard
		if f > 0 && r < 7 {
			wp |= MakeSquare(File(f-1), Rank(r+1)).Bit()
		}
		if f < 7 && r < 7 {
			wp |= MakeSquare(File(f+1), Rank(r+1)).Bit()
		}
		if f > 0 && r > 0 {
			bp |= MakeSquare(File(f-1), Rank(r-1)).Bit()
		}
		if f < 7 && r > 0 {
			bp |= MakeSquare(File(f+1), Rank(r-1)).Bit()
		}
		pawnAttackTbl[White][sq] = wp
		pawnAttackTbl[Black][sq] = bp
	}
}

func initSliderPseudoAttacks() {
	for sq := Square(0); sq < 64; sq++ {
		rookPseudoAttacks[sq] = RookAttacksBB(sq, Empty)
		bishopPseudoAttacks[sq] = BishopAttacksBB(sq, Empty)
		QueenPseudoAttacks[sq] = rookPseudoAttacks[sq] | bishopPseudoAttacks[sq]
	}
}

func init() {
	initLeaperAttacks()
	initSliderPseudoAttacks()
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the attack set of a pawn of color c standing on sq.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttackTbl[c][sq] }

// WhitePawnAttacks and BlackPawnAttacks are the color-specific convenience
// forms named explicitly in the external interface.
func WhitePawnAttacks(sq Square) Bitboard { return pawnAttackTbl[White][sq] }
func BlackPawnAttacks(sq Square) Bitboard { return pawnAttackTbl[Black][sq] }

// RookAttacksBB returns the rook attack set from sq given occupancy occ,
// delegating to dragontoothmg's magic-bitboard tables rather than
// reimplementing slider attack generation.
func RookAttacksBB(sq Square, occ Bitboard) Bitboard {
	return Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ)))
}

// BishopAttacksBB returns the bishop attack set from sq given occupancy occ.
func BishopAttacksBB(sq Square, occ Bitboard) Bitboard {
	return Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ)))
}

// QueenAttacksBB returns the queen attack set from sq given occupancy occ.
func QueenAttacksBB(sq Square, occ Bitboard) Bitboard {
	return RookAttacksBB(sq, occ) | BishopAttacksBB(sq, occ)
}

// AttacksBB dispatches to the correct attack function for pt, matching the
// spec's "tagged dispatch, not pointer-to-member" design note.
func AttacksBB(pt PieceType, c Color, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return PawnAttacks(c, sq)
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacksBB(sq, occ)
	case Rook:
		return RookAttacksBB(sq, occ)
	case Queen:
		return QueenAttacksBB(sq, occ)
	case King:
		return KingAttacks(sq)
	default:
		return Empty
	}
}
