package movecore

import "math/bits"

// Bitboard is a 64-bit set of squares, one bit per square.
type Bitboard uint64

const (
	Empty Bitboard = 0
	Full  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// Rank1BB..Rank8BB are the eight rank masks.
var (
	Rank1BB = rankBB(Rank1)
	Rank2BB = rankBB(Rank2)
	Rank3BB = rankBB(Rank3)
	Rank4BB = rankBB(Rank4)
	Rank5BB = rankBB(Rank5)
	Rank6BB = rankBB(Rank6)
	Rank7BB = rankBB(Rank7)
	Rank8BB = rankBB(Rank8)
)

// FileABB..FileHBB are the eight file masks.
var (
	FileABB = fileBB(FileA)
	FileBBB = fileBB(FileB)
	FileCBB = fileBB(FileC)
	FileDBB = fileBB(FileD)
	FileEBB = fileBB(FileE)
	FileFBB = fileBB(FileF)
	FileGBB = fileBB(FileG)
	FileHBB = fileBB(FileH)
)

func rankBB(r Rank) Bitboard { return Bitboard(0xFF) << uint(8*int(r)) }

func fileBB(f File) Bitboard {
	var bb Bitboard
	for r := Rank1; r <= Rank8; r++ {
		bb |= MakeSquare(f, r).Bit()
	}
	return bb
}

var ranksByIndex = [8]Bitboard{Rank1BB, Rank2BB, Rank3BB, Rank4BB, Rank5BB, Rank6BB, Rank7BB, Rank8BB}
var filesByIndex = [8]Bitboard{FileABB, FileBBB, FileCBB, FileDBB, FileEBB, FileFBB, FileGBB, FileHBB}

// Popcount returns the number of set bits.
func (b Bitboard) Popcount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest-indexed set square, or NoSquare if empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest-indexed set square, or NoSquare if empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB clears and returns the lowest-indexed set square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &^= sq.Bit()
	return sq
}

// Any reports whether the set is non-empty.
func (b Bitboard) Any() bool { return b != 0 }

// More reports whether the set has more than one member (used for
// double-check detection).
func (b Bitboard) More() bool { return b != 0 && b&(b-1) != 0 }

// shiftNorth/shiftSouth shift a bitboard by whole ranks without file wrap
// concerns (rank shifts never wrap).
func shiftNorth(b Bitboard, ranks int) Bitboard { return b << uint(8*ranks) }
func shiftSouth(b Bitboard, ranks int) Bitboard { return b >> uint(8*ranks) }

// neighboringFilesBB returns the squares on the file(s) immediately
// adjacent to sq's file.
func neighboringFilesBB(sq Square) Bitboard {
	f := sq.File()
	var bb Bitboard
	if f > FileA {
		bb |= filesByIndex[f-1]
	}
	if f < FileH {
		bb |= filesByIndex[f+1]
	}
	return bb
}

// squaresBetween returns the exclusive set of squares strictly between a
// and b when they are collinear on a rank, file, or diagonal; otherwise
// Empty. Computed once into a table at init for O(1) lookup.
var betweenBB [64][64]Bitboard

func squaresBetween(a, b Square) Bitboard { return betweenBB[a][b] }

func initBetween() {
	dirs := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for a := Square(0); a < 64; a++ {
		af, ar := int(a.File()), int(a.Rank())
		for _, d := range dirs {
			var line Bitboard
			f, r := af+d[0], ar+d[1]
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				sq := MakeSquare(File(f), Rank(r))
				betweenBB[a][sq] = line
				line |= sq.Bit()
				f += d[0]
				r += d[1]
			}
		}
	}
}

func init() {
	initBetween()
}
