// Package pty starts a child process attached to a pseudo-terminal and
// exposes it as a single-reader/single-writer pair, grounded on the
// start/resize/read-loop shape real Go terminal hosts use atop
// github.com/creack/pty.
package pty

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// PTY owns a child process and its pseudo-terminal master.
type PTY struct {
	master *os.File
	cmd    *exec.Cmd
}

// Start launches command under a PTY of the given size.
func Start(command string, args []string, rows, cols int) (*PTY, error) {
	cmd := exec.Command(command, args...)
	master, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("start command: %w", err)
	}
	return &PTY{master: master, cmd: cmd}, nil
}

// Resize updates the pseudo-terminal's reported window size. The child
// receives SIGWINCH if it has a handler installed.
func (p *PTY) Resize(rows, cols int) error {
	return pty.Setsize(p.master, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// Wait blocks until the child process exits and returns its error, if any.
func (p *PTY) Wait() error {
	return p.cmd.Wait()
}

// Close closes the PTY master, which signals EOF to the child's reads.
func (p *PTY) Close() error {
	return p.master.Close()
}

// Split returns a single-reader, single-writer pair over the shared PTY
// master file descriptor. Go's runtime permits one goroutine reading and a
// different goroutine writing to the same *os.File concurrently; Reader and
// Writer each expose only the one side, so a caller cannot accidentally
// issue concurrent reads (or concurrent writes) from two goroutines — the
// same single-reader/single-writer discipline the split enforces.
func (p *PTY) Split() (*Reader, *Writer) {
	return &Reader{file: p.master}, &Writer{file: p.master}
}
