// Package termio contains small terminal input helpers used around
// interactive prompts.
package termio

import (
	"os"
	"time"

	"golang.org/x/term"
)

// FlushInput discards anything already buffered on stdin. Keys pressed
// while git or a spinner was busy would otherwise feed the next prompt.
func FlushInput() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	flushPlatform()

	// give the tty a moment before draining stragglers
	time.Sleep(10 * time.Millisecond)

	drainPending()
}
