package vtcore

import (
	"strings"
	"testing"
	"time"
)

// waitForRender blocks until a render notification arrives or the timeout
// elapses, failing the test on timeout.
func waitForRender(t *testing.T, vt *Terminal, timeout time.Duration) {
	t.Helper()
	select {
	case <-vt.RenderCh():
	case <-time.After(timeout):
		t.Fatal("timed out waiting for a render notification")
	}
}

func TestTerminalEchoesChildOutput(t *testing.T) {
	vt, err := NewTerminal("/bin/sh", []string{"-c", "printf hi"}, 24, 80)
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	defer vt.Kill()

	waitForRender(t, vt, 2*time.Second)

	var line string
	vt.WithScreen(func(s *Screen) {
		line = lineString(s, 0)
	})
	if !strings.Contains(line, "hi") {
		t.Errorf("line 0 = %q, want it to contain %q", line, "hi")
	}
}

func TestTerminalDoneClosesOnChildExit(t *testing.T) {
	vt, err := NewTerminal("/bin/sh", []string{"-c", "exit 0"}, 24, 80)
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	defer vt.Kill()

	select {
	case <-vt.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Done() did not close after the child exited")
	}

	if vt.Running() {
		t.Error("Running() is true after the child exited")
	}
}

// RenderCh must eventually close once the terminal task's read loop exits,
// so a render task ranging over it terminates instead of blocking forever
// (spec §5: "running=false is a sufficient signal for the render task to
// exit its receive loop once the channel closes").
func TestTerminalRenderChClosesAfterDone(t *testing.T) {
	vt, err := NewTerminal("/bin/sh", []string{"-c", "echo done"}, 24, 80)
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	defer vt.Kill()

	<-vt.Done()

	drained := make(chan struct{})
	go func() {
		for range vt.RenderCh() {
		}
		close(drained)
	}()

	select {
	case <-drained:
	case <-time.After(2 * time.Second):
		t.Fatal("RenderCh() never closed after Done()")
	}
}

func TestTerminalSendWritesToChild(t *testing.T) {
	vt, err := NewTerminal("/bin/cat", nil, 24, 80)
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	defer vt.Kill()

	if _, err := vt.Send([]byte("ping\r")); err != nil {
		t.Fatalf("Send: %v", err)
	}

	waitForRender(t, vt, 2*time.Second)

	var line string
	vt.WithScreen(func(s *Screen) {
		line = lineString(s, 0)
	})
	if !strings.Contains(line, "ping") {
		t.Errorf("line 0 = %q, want it to contain echoed input %q", line, "ping")
	}
}
