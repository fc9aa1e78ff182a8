package vtcore

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/danielgatis/go-ansicode"
	"github.com/google/uuid"

	vtpty "github.com/peterctl/vtcore/pty"
)

// Terminal owns a child process attached to a PTY, the Screen it drives,
// and the read loop feeding PTY bytes through the VT decoder. Sessions are
// tagged with a UUID so a host managing many terminals can correlate logs.
type Terminal struct {
	ID uuid.UUID

	screenMu sync.Mutex
	screen   *Screen

	ptyWriterMu sync.Mutex
	ptyWriter   *vtpty.Writer

	ptyReader *vtpty.Reader
	pty       *vtpty.PTY
	decoder   *ansicode.Decoder

	running  atomic.Bool
	dirty    atomic.Bool
	renderCh chan struct{}

	done     chan struct{}
	waitDone chan struct{}
	waitErr  error
}

// NewTerminal starts command under a PTY sized rows x cols and wires a
// fresh Screen to receive its output.
func NewTerminal(command string, args []string, rows, cols int, opts ...Option) (*Terminal, error) {
	p, err := vtpty.Start(command, args, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("start terminal: %w", err)
	}

	reader, writer := p.Split()

	t := &Terminal{
		ID:        uuid.New(),
		pty:       p,
		ptyReader: reader,
		ptyWriter: writer,
		renderCh:  make(chan struct{}, 1),
		done:      make(chan struct{}),
		waitDone:  make(chan struct{}),
	}
	t.screen = NewScreen(Point{X: cols, Y: rows}, append([]Option{WithResponse(t)}, opts...)...)
	t.decoder = ansicode.NewDecoder(NewDispatch(t.screen))
	t.running.Store(true)

	go t.waitLoop()
	go t.readLoop()

	return t, nil
}

// Write implements io.Writer as the response sink handed to the Screen via
// WithResponse: DSR/DA replies and OSC query responses are written back to
// the PTY master under the pty-writer lock, matching the fixed
// screen-then-pty-writer lock order used by readLoop so a response
// generated mid-advance never deadlocks against a concurrent Send.
func (t *Terminal) Write(p []byte) (int, error) {
	t.ptyWriterMu.Lock()
	defer t.ptyWriterMu.Unlock()
	return t.ptyWriter.Write(p)
}

// Send writes raw bytes to the child's stdin, e.g. forwarded keystrokes.
func (t *Terminal) Send(p []byte) (int, error) {
	return t.Write(p)
}

// Resize updates the PTY's reported window size so the child process
// learns of the new dimensions. The grid itself is fixed-size.
func (t *Terminal) Resize(rows, cols int) error {
	return t.pty.Resize(rows, cols)
}

// WithScreen runs fn with exclusive access to the live Screen, for a
// consistent read or mutation outside the decoder's own advance calls.
func (t *Terminal) WithScreen(fn func(*Screen)) {
	t.screenMu.Lock()
	defer t.screenMu.Unlock()
	fn(t.screen)
}

// Running reports whether the child process is still alive.
func (t *Terminal) Running() bool { return t.running.Load() }

// Done is closed once the read loop exits: on a PTY read error (including
// EOF) or once it sees that the child process has exited.
func (t *Terminal) Done() <-chan struct{} { return t.done }

// RenderCh delivers a notification after every PTY read batch that left the
// screen dirty, coalesced to at most one pending notification: a render
// task should receive from it in a loop and, on each receive, read the
// screen under WithScreen and re-emit it. readLoop closes the channel when
// it exits, after flushing one last pending notification and just before
// Done closes.
func (t *Terminal) RenderCh() <-chan struct{} { return t.renderCh }

// Wait blocks until the terminal's child process has exited, returning its
// exit error if any.
func (t *Terminal) Wait() error {
	<-t.done
	<-t.waitDone
	return t.waitErr
}

func (t *Terminal) waitLoop() {
	t.waitErr = t.pty.Wait()
	t.running.Store(false)
	close(t.waitDone)
}

// readLoop repeatedly polls, in order: (1) if the must-notify flag is set,
// send on the 1-slot-buffered render channel and clear the flag, so the
// render task sees a screen consistent with the just-completed batch
// before any further read is issued; (2) check whether the child process
// has already exited, without blocking, so exit is observed promptly
// rather than only after the next PTY read returns; (3) read up to 512
// bytes from the PTY and, if any arrived, drive the decoder across them
// under the screen lock (responses take the pty-writer lock inside it, the
// fixed screen-then-pty-writer lock order) and set the
// must-notify flag for the next iteration. Each read batch triggers at
// most one render notification.
func (t *Terminal) readLoop() {
	defer close(t.done)
	defer close(t.renderCh)
	defer func() {
		// Flush a final pending notification so the render task sees the
		// last batch before the channel closes under it.
		if t.dirty.Load() {
			select {
			case t.renderCh <- struct{}{}:
			default:
			}
		}
	}()
	buf := make([]byte, 512)
	for {
		if t.dirty.Load() {
			select {
			case t.renderCh <- struct{}{}:
			default:
			}
			t.dirty.Store(false)
		}

		select {
		case <-t.waitDone:
			return
		default:
		}

		n, err := t.ptyReader.Read(buf)
		if n > 0 {
			t.screenMu.Lock()
			_, _ = t.decoder.Write(buf[:n])
			t.screenMu.Unlock()
			t.dirty.Store(true)
		}
		if err != nil {
			return
		}
	}
}

// Kill terminates the child process by closing the PTY master.
func (t *Terminal) Kill() error {
	return t.pty.Close()
}
