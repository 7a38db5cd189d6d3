// Command colstats reads a JSON object of numeric columns and prints the
// mean, median or standard deviation of each column.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/shashank-93rao/colstats/internal/log"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// runMain executes the command line and returns the process exit status.
// Failures are always reported on stderr, whatever the log level.
func runMain(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(log.WithContext(ctx)); err != nil {
		fmt.Fprintf(stderr, "colstats: %v\n", err)
		return 1
	}
	return 0
}
