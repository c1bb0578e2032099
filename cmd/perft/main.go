// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/dylanagreen/chrysaora/pkg/board"
	"github.com/dylanagreen/chrysaora/pkg/board/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	pos, turn, _, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(pos, turn, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

func search(pos *board.Position, turn board.Color, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range pos.LegalMoves(turn) {
		next := pos.ApplyMove(m)
		count := search(next, turn.Opponent(), depth-1, false)
		if d {
			println(fmt.Sprintf("%v: %v", m.Long, count))
		}
		nodes += count
	}
	return nodes
}
