// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dylanagreen/chrysaora/pkg/board/fen"
	"github.com/dylanagreen/chrysaora/pkg/engine"
	"github.com/seekerror/logw"
)

const ProtocolName = "uci"

// Driver implements a UCI driver for an Engine. Per the Non-goals this
// implementation is single-threaded and synchronous: "go" blocks until the
// fixed-depth search completes, there is no pondering and no pondering
// info stream; "stop" has no effect, since it is only read after the
// blocking "go" has already replied and the driver never cancels the
// search's context.
type Driver struct {
	e   *engine.Engine
	out chan<- string
	done chan struct{}

	lastPosition string // last "position ..." line seen, for incremental moves
}

// NewDriver starts processing in from the UCI engine, writing responses to
// the returned channel until in is closed or "quit" is received.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{e: e, out: out, done: make(chan struct{})}
	go d.process(ctx, in)
	return d, out
}

// Closed returns a channel that is closed once the driver has stopped
// processing commands, whether due to "quit" or the input stream closing.
func (d *Driver) Closed() <-chan struct{} {
	return d.done
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer close(d.out)
	defer close(d.done)

	logw.Infof(ctx, "UCI protocol initialized")

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- fmt.Sprintf("option name max_depth type spin default %v min %v max %v",
		engine.DefaultMaxDepth, engine.MinMaxDepth, engine.MaxMaxDepth)
	d.out <- "uciok"

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "isready":
			d.out <- "readyok"

		case "debug":
			// Accepted, has no effect.

		case "ucinewgame":
			d.lastPosition = ""

		case "setoption":
			d.setOption(args)

		case "position":
			d.position(ctx, line, args)

		case "go":
			d.goCmd(ctx, args)

		case "stop":
			// No active async search to halt; nothing to do beyond
			// acknowledging that any prior "go" has already replied.

		case "quit":
			return

		default:
			logw.Warningf(ctx, "Unknown command %q: %v", cmd, args)
		}
	}
	logw.Infof(ctx, "Input stream closed")
}

// setOption handles "setoption name <id> [value <x>]". Only max_depth is
// recognized; anything else is silently ignored per protocol convention.
func (d *Driver) setOption(args []string) {
	var name, value string
	if len(args) > 1 {
		name = args[1]
	}
	if len(args) > 3 {
		value = args[3]
	}

	if name == "max_depth" {
		if n, err := strconv.Atoi(value); err == nil {
			d.e.SetMaxDepth(n)
		}
	}
}

// position handles "position [startpos | fen <fenstring>] [moves <move>...]".
func (d *Driver) position(ctx context.Context, line string, args []string) {
	if d.lastPosition != "" && strings.HasPrefix(line, d.lastPosition) {
		// Continuation of the same game: replay only the new moves.
		rest := strings.TrimSpace(strings.TrimPrefix(line, d.lastPosition))
		for _, mv := range strings.Fields(rest) {
			if mv == "moves" {
				continue
			}
			if err := d.e.Move(ctx, mv); err != nil {
				logw.Errorf(ctx, "Invalid move %q in %q: %v", mv, line, err)
				return
			}
		}
		d.lastPosition = line
		return
	}

	position := fen.Initial
	rest := args
	if len(args) > 0 && args[0] == "fen" {
		if len(args) < 7 {
			logw.Errorf(ctx, "Malformed fen in position command: %v", line)
			return
		}
		position = strings.Join(args[1:7], " ")
		rest = args[7:]
	} else if len(args) > 0 && args[0] == "startpos" {
		rest = args[1:]
	}

	if err := d.e.Reset(ctx, position); err != nil {
		logw.Errorf(ctx, "Invalid position %q: %v", line, err)
		return
	}

	playing := false
	for _, arg := range rest {
		if arg == "moves" {
			playing = true
			continue
		}
		if !playing {
			continue
		}
		if err := d.e.Move(ctx, arg); err != nil {
			logw.Errorf(ctx, "Invalid move %q in %q: %v", arg, line, err)
			return
		}
	}
	d.lastPosition = line
}

// goCmd handles "go [wtime <x>] [btime <x>] [winc <x>] [binc <x>] ...". Time
// control parameters are accepted (so GUIs do not choke) but otherwise
// unused: search always runs to the configured max_depth, per the
// Non-goals' exclusion of time management.
func (d *Driver) goCmd(ctx context.Context, args []string) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime", "btime", "winc", "binc", "movetime", "depth", "movestogo", "nodes", "mate":
			i++ // skip the numeric argument; unused.
		}
	}

	result, err := d.e.BestMove(ctx)
	if err != nil {
		// No legal move: checkmate or stalemate. UCI has no clean way to
		// say so; report the null move.
		logw.Infof(ctx, "No legal move available: %v", err)
		d.out <- "bestmove 0000"
		return
	}

	d.out <- fmt.Sprintf("info depth %v score cp %v nodes %v pv %v",
		d.e.Options().MaxDepth, int(result.Score*100), result.Nodes, result.Move.UCI())
	d.out <- fmt.Sprintf("bestmove %v", result.Move.UCI())
}
