// Command perft runs movecore's Perft/PerftDivide from the command line,
// grounded on the teacher's own cmd/perft/main.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chessgen/movecore"
)

func main() {
	fen := flag.String("fen", movecore.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := movecore.ParsePosition(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParsePosition error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := movecore.PerftDivide(pos, *depth)
		moves := maps.Keys(div)
		slices.SortFunc(moves, func(a, b movecore.Move) bool { return a.String() < b.String() })
		var sum uint64
		for _, m := range moves {
			n := div[m]
			fmt.Printf("%s: %d\n", m.String(), n)
			sum += n
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += movecore.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}
