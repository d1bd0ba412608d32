package movecore

// Perft counts the leaf nodes of the legal move tree rooted at p, depth
// plies deep, mutating and restoring p in place via MakeMove/UnmakeMove.
// Grounded on the teacher's Perft/PerftDivide, generalized to call the new
// GenerateLegalMoves entry point instead of a single fused GenerateMoves.
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	bufs := make([]MoveList, depth)
	return perftRec(p, depth, bufs)
}

func perftRec(p *Position, depth int, bufs []MoveList) uint64 {
	list := &bufs[depth-1]
	list.Reset()
	p.GenerateLegalMoves(list)

	if depth == 1 {
		return uint64(list.Len())
	}

	var nodes uint64
	for _, m := range list.Moves() {
		undo, ok := p.MakeMove(m)
		assert(ok, "Perft: GenerateLegalMoves produced an illegal move")
		nodes += perftRec(p, depth-1, bufs)
		p.UnmakeMove(undo)
	}
	return nodes
}

// PerftDivide counts, for each legal root move, the perft(depth-1) subtree
// count reached after playing it. Returns an empty map for depth <= 0.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	var list MoveList
	p.GenerateLegalMoves(&list)
	for _, m := range list.Moves() {
		undo, ok := p.MakeMove(m)
		assert(ok, "PerftDivide: GenerateLegalMoves produced an illegal move")
		result[m] = Perft(p, depth-1)
		p.UnmakeMove(undo)
	}
	return result
}
