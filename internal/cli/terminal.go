package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// interactive reports whether the menu can take over the terminal. Tests
// replace it to force the line-based shell.
var interactive = func() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}
