// Package pty spawns commands on a pseudo-terminal for embedding in panes.
package pty

import (
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner is the interface for spawning and controlling a PTY.
// Implementations can be swapped (e.g. creack/pty, or a mock for tests).
type Runner interface {
	Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

// Ensure CreackPTY implements Runner.
var _ Runner = (*CreackPTY)(nil)

// Start implements Runner. Spawns cmd in a PTY with the given size.
// Closing the returned ReadWriteCloser terminates the session.
func (c *CreackPTY) Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	ws := &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
	return pty.StartWithSize(cmd, ws)
}

// Resize implements Runner. The rwc must be the *os.File returned by Start;
// other types are a no-op.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}
