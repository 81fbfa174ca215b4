//go:build !unix

package session

import (
	"github.com/gdamore/tcell/v2"
)

// Open acquires the console through tcell
func Open() (Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcell(screen)
}
