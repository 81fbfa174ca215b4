//go:build unix

package session

import (
	"github.com/lixenwraith/termgrid/terminal"
)

// Open acquires the controlling terminal with the native backend
func Open() (Session, error) {
	return NewNative(terminal.New())
}
