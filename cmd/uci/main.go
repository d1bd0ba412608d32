// Command uci is a minimal UCI driver exercising movecore directly: it
// understands just enough of the protocol to set up a position and run
// perft from it, since this repository is a move generator core rather
// than a full engine. Token-scanning style grounded on the teacher's root
// uci.go.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chessgen/movecore"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	pos, err := movecore.ParsePosition(movecore.FENStartPos)
	if err != nil {
		panic(err)
	}

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name chessgen movecore")
			fmt.Println("id author chessgen")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			if p, err := movecore.ParsePosition(movecore.FENStartPos); err == nil {
				pos = p
			} else {
				fmt.Fprintln(os.Stderr, "ucinewgame:", err)
			}
		case "quit":
			return
		case "position":
			if p := handlePosition(tokens[1:]); p != nil {
				pos = p
			}
		case "go":
			handleGo(pos, tokens[1:])
		default:
			fmt.Println("info string unknown command", tokens[0])
		}
	}
}

func handlePosition(tokens []string) *movecore.Position {
	if len(tokens) == 0 {
		fmt.Println("info string malformed position command")
		return nil
	}

	var pos *movecore.Position
	var rest []string
	switch strings.ToLower(tokens[0]) {
	case "startpos":
		p, err := movecore.ParsePosition(movecore.FENStartPos)
		if err != nil {
			fmt.Fprintln(os.Stderr, "position startpos:", err)
			return nil
		}
		pos = p
		rest = tokens[1:]
	case "fen":
		i := 1
		for i < len(tokens) && strings.ToLower(tokens[i]) != "moves" {
			i++
		}
		fen := strings.Join(tokens[1:i], " ")
		p, err := movecore.ParsePosition(fen)
		if err != nil {
			fmt.Println("info string invalid fen position:", err)
			return nil
		}
		pos = p
		rest = tokens[i:]
	default:
		fmt.Println("info string invalid position subcommand")
		return nil
	}

	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return pos
	}
	for _, moveStr := range rest[1:] {
		var list movecore.MoveList
		pos.GenerateLegalMoves(&list)
		m, found := movecore.FindLegalMove(&list, moveStr)
		if !found {
			fmt.Println("info string move", moveStr, "not found for position", pos.FEN())
			continue
		}
		if _, ok := pos.MakeMove(m); !ok {
			fmt.Println("info string move", moveStr, "rejected as illegal")
		}
	}
	return pos
}

// handleGo supports only "go perft N": this repository is a move
// generator core, not a search engine, so wtime/depth-search/infinite are
// out of scope per SPEC_FULL.md's Non-goals.
func handleGo(pos *movecore.Position, tokens []string) {
	if pos == nil {
		fmt.Println("info string no position set")
		return
	}
	if len(tokens) < 2 || strings.ToLower(tokens[0]) != "perft" {
		fmt.Println("info string only 'go perft N' is supported")
		return
	}
	depth, err := strconv.Atoi(tokens[1])
	if err != nil || depth <= 0 {
		fmt.Println("info string invalid perft depth")
		return
	}
	nodes := movecore.Perft(pos, depth)
	fmt.Printf("info string perft %d nodes %d\n", depth, nodes)
}
