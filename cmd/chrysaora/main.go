// Command chrysaora is a UCI chess engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dylanagreen/chrysaora/pkg/engine"
	"github.com/dylanagreen/chrysaora/pkg/engine/uci"
	"github.com/dylanagreen/chrysaora/pkg/eval"
	"github.com/dylanagreen/chrysaora/pkg/live"
	"github.com/seekerror/logw"
)

var (
	maxDepth = flag.Int("max_depth", engine.DefaultMaxDepth, "Search depth in plies")
	noise    = flag.Int("noise", 0, "Evaluation noise, out of 1000 (zero if deterministic)")
	listen   = flag.String("listen", "", "Address to serve a spectator websocket on, e.g. :8080 (disabled if empty)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: chrysaora [options]

chrysaora is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	ev := eval.Evaluator(eval.Material{})
	if *noise > 0 {
		ev = eval.Sum{A: eval.Material{}, B: eval.NewRandom(float64(*noise)/1000, 0)}
	}

	e := engine.New(ctx, "chrysaora", "dylanagreen",
		engine.WithEvaluator(ev),
		engine.WithOptions(engine.Options{MaxDepth: *maxDepth}))

	if *listen != "" {
		b := live.NewBroadcaster()
		mux := http.NewServeMux()
		mux.Handle("/spectate", b)
		go func() {
			if err := http.ListenAndServe(*listen, mux); err != nil {
				logw.Errorf(ctx, "Spectator server stopped: %v", err)
			}
		}()
		go watchPosition(ctx, e, b)
		logw.Infof(ctx, "Serving spectators on %v/spectate", *listen)
	}

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}

// watchPosition polls the engine's position and publishes it to spectators
// whenever it changes, e.g. after a UCI "position" command plays new moves.
func watchPosition(ctx context.Context, e *engine.Engine, b *live.Broadcaster) {
	const pollInterval = 200 * time.Millisecond

	var last string
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(pollInterval):
		}

		cur := e.Position()
		if cur == last {
			continue
		}
		last = cur

		var move string
		if moves := e.Game().MoveList(); len(moves) > 0 {
			move = moves[len(moves)-1].UCI()
		}
		b.Publish(live.Update{FEN: cur, Move: move})
	}
}
