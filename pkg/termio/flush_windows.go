//go:build windows

package termio

import (
	"os"
	"syscall"
	"time"
	"unsafe"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	procFlushConsoleInput = kernel32.NewProc("FlushConsoleInputBuffer")
	procPeekConsoleInput  = kernel32.NewProc("PeekConsoleInputW")
	procReadConsoleInput  = kernel32.NewProc("ReadConsoleInputW")
)

func flushPlatform() {
	handle := syscall.Handle(os.Stdin.Fd())

	// fails safely on non-console handles
	procFlushConsoleInput.Call(uintptr(handle)) //nolint:errcheck
}

// drainPending consumes console events that arrived after the flush,
// one record at a time, bounded.
func drainPending() {
	handle := syscall.Handle(os.Stdin.Fd())

	// INPUT_RECORD is 20 bytes; leave headroom
	record := make([]byte, 32)

	for attempt := 0; attempt < 10; attempt++ {
		var events uint32

		ret, _, _ := procPeekConsoleInput.Call(
			uintptr(handle),
			uintptr(unsafe.Pointer(&record[0])),
			1,
			uintptr(unsafe.Pointer(&events)),
		)
		if ret == 0 || events == 0 {
			return
		}

		procReadConsoleInput.Call(
			uintptr(handle),
			uintptr(unsafe.Pointer(&record[0])),
			1,
			uintptr(unsafe.Pointer(&events)),
		) //nolint:errcheck

		time.Sleep(5 * time.Millisecond)
	}
}
