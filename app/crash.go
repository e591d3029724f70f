package app

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// HandleCrash restores the terminal through restore, prints the panic
// value and stack to stderr and exits. A nil r is a no-op.
func HandleCrash(r any, restore func()) {
	if r == nil {
		return
	}
	reportCrash(os.Stderr, r, restore)
	os.Exit(1)
}

func reportCrash(w io.Writer, r any, restore func()) {
	if restore != nil {
		restore()
	}
	fmt.Fprintf(w, "\n\x1b[31mVI-FRAME CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", debug.Stack())
}
