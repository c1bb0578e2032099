package engine

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/seekerror/logw"
)

// maxLineSize raises bufio.Scanner's default 64KiB token limit. A UCI
// "position startpos moves ..." line carries the entire move history since
// the last "ucinewgame", so a long game can grow the line well past the
// default before ReadStdinLines would otherwise start returning
// bufio.ErrTooLong.
const maxLineSize = 1 << 20

// ReadStdinLines reads stdin lines into a chan. Async.
func ReadStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteStdoutLines writes lines from the given chan to stdout.
func WriteStdoutLines(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}
