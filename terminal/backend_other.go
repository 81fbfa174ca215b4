//go:build !unix

package terminal

import (
	"os"
	"time"
)

// otherBackend refuses to open; callers fall back to a tcell session
type otherBackend struct{}

func newBackend() Backend {
	return otherBackend{}
}

func (otherBackend) Open() error { return ErrUnsupported }
func (otherBackend) Close() {}
func (otherBackend) Size() (int, int) { return 80, 24 }
func (otherBackend) Write([]byte) error { return ErrUnsupported }
func (otherBackend) Read([]byte, time.Duration) (int, error) { return 0, ErrUnsupported }
func (otherBackend) Wake() {}
func (otherBackend) Resized() <-chan os.Signal { return nil }
