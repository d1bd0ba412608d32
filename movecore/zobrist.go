package movecore

import "math/rand"

// Zobrist hashing tables for pieces, castling rights, en-passant file, and
// side to move, seeded once at package load with a fixed seed for
// reproducible hashes across runs and tests.
var (
	zobristPiece    [16][64]uint64
	zobristCastle   [16]uint64
	zobristEP       [8]uint64
	zobristSideMove uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEP[f] = rnd.Uint64()
	}
	zobristSideMove = rnd.Uint64()
}

// computeZobrist recomputes the full hash from scratch. refresh calls it on
// position construction and after every MakeMove/UnmakeMove; the hash is
// never updated incrementally.
func (p *Position) computeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		pc := p.pieceOn[sq]
		if pc != NoPiece {
			key ^= zobristPiece[pc][sq]
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSideMove
	}
	key ^= zobristCastle[p.castleRights]
	if p.epSquare != NoSquare {
		key ^= zobristEP[p.epSquare.File()]
	}
	return key
}
