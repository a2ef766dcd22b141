package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"nickandperla.net/fone/pkg/fone"
)

const (
	promptMain  = "\U0001F3CE  > "
	promptCont  = "... > "
	historyFile = ".fone_history"
)

// runREPL drives the interactive session: read one input unit (possibly
// across several lines), evaluate it, print the result, repeat. Errors
// keep the session and its environment alive.
func runREPL(runtime *fone.Runtime) {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		src, ok := readForm(ln)
		if !ok {
			fmt.Println()
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		result, err := runtime.Eval(src)
		if err != nil {
			fmt.Printf(" !! %v\n", err)
			continue
		}
		fmt.Printf(" ~> %s\n", result)
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readForm reads one complete input unit, continuing onto further lines
// while the source still has an open form. Returns false when the
// session ends (Ctrl+D at an empty prompt).
func readForm(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C aborts the current input, not the session
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if err := fone.Check(src); errors.Is(err, fone.ErrIncomplete) {
			continue
		}
		return src, true
	}
}
