// Command fone is the fone interpreter CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"
	"nickandperla.net/fone/pkg/fone"
)

func main() {
	var (
		evalStr   = flag.String("e", "", "Evaluate fone string")
		file      = flag.String("f", "", "Execute fone file")
		dbPath    = flag.String("db", "fone.db", "SQLite session database path")
		noSession = flag.Bool("no-session", false, "Disable session persistence")
		noPrelude = flag.Bool("no-prelude", false, "Disable the embedded prelude")
	)

	flag.Parse()

	// Build options
	opts := []fone.Option{}
	if !*noSession {
		opts = append(opts, fone.WithSQLiteStore(*dbPath))
	}
	if *noPrelude {
		opts = append(opts, fone.WithNoPrelude())
	}

	runtime, err := fone.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer runtime.Close()

	switch {
	case *evalStr != "":
		printResult(runtime.Eval(*evalStr))

	case *file != "":
		printResult(runtime.EvalFile(*file))

	case !term.IsTerminal(int(os.Stdin.Fd())):
		// Piped input: evaluate all of stdin like a file
		printResult(runtime.EvalReader(os.Stdin))

	default:
		runREPL(runtime)
	}
}

// printResult prints the final value to stdout, or the error to stderr
// with a failing exit code.
func printResult(v fone.Value, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(v.String())
}
