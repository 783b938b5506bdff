//go:build !windows

package termio

import (
	"os"
	"syscall"
	"time"
)

// TCFLSH with queue selector TCIFLUSH drops unread input from the
// terminal driver.
const (
	ioctlTCFLSH = 0x540B
	tcIFlush    = 0
)

func flushPlatform() {
	fd := os.Stdin.Fd()

	syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(ioctlTCFLSH), uintptr(tcIFlush)) //nolint:errcheck
}

// drainPending reads and discards whatever arrived after the flush,
// without blocking. Bounded so a key held down cannot spin forever.
func drainPending() {
	fd := int(os.Stdin.Fd())

	if err := syscall.SetNonblock(fd, true); err != nil {
		return
	}
	defer func() {
		syscall.SetNonblock(fd, false) //nolint:errcheck
	}()

	buf := make([]byte, 1024)

	for attempt := 0; attempt < 10; attempt++ {
		n, err := syscall.Read(fd, buf)
		if err != nil || n == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}
