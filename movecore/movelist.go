package movecore

// maxMoves is a fixed-capacity bound sufficient for any legal chess
// position; the generator never needs to grow past it.
const maxMoves = 256

// MoveList is a bounded, append-only buffer of moves. The generator owns
// the append window into a caller-supplied MoveList; no heap allocation is
// required to fill one.
type MoveList struct {
	moves [maxMoves]Move
	n     int
}

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.n = 0 }

// Len returns the number of moves currently held.
func (l *MoveList) Len() int { return l.n }

// Add appends a move. It panics if the fixed capacity is exceeded, which
// would indicate a generator bug rather than a legal chess position.
func (l *MoveList) Add(m Move) {
	if l.n >= maxMoves {
		panic("movecore: move list capacity exceeded")
	}
	l.moves[l.n] = m
	l.n++
}

// At returns the i'th move.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Moves returns the accumulated moves as a slice backed by the list's
// internal array; valid until the next Reset.
func (l *MoveList) Moves() []Move { return l.moves[:l.n] }

// Contains reports whether m was already added to the list.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.n; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}
