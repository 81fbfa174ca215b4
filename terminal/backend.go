package terminal

import (
	"os"
	"time"
)

// Backend is the platform tty: mode switching, byte I/O and size reporting
type Backend interface {
	// Open puts the tty into raw mode
	Open() error

	// Close restores the mode saved by Open
	Close()

	Size() (width, height int)

	Write(p []byte) error

	// Read fills p with pending input, waiting at most timeout
	// Returns 0, nil on timeout or after Wake, io.EOF once input is closed
	Read(p []byte, timeout time.Duration) (int, error)

	// Wake unblocks a Read in progress
	Wake()

	// Resized receives a value after window size changes; nil if unsupported
	Resized() <-chan os.Signal
}
