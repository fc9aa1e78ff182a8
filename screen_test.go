package vtcore

import (
	"bytes"
	"testing"

	"github.com/danielgatis/go-ansicode"
)

// captureResponse is a ResponseWriter that records every byte slice
// written to it, for asserting on DSR/DA replies.
type captureResponse struct {
	buf bytes.Buffer
}

func (c *captureResponse) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func newTestPipelineWithResponse(rows, cols int, resp ResponseWriter) (*Screen, *ansicode.Decoder) {
	s := NewScreen(Point{X: cols, Y: rows}, WithResponse(resp))
	d := ansicode.NewDecoder(NewDispatch(s))
	return s, d
}

// Scenario 3 (spec §8): charset line-drawing via G0 designation.
func TestScreenCharsetLineDrawing(t *testing.T) {
	s, d := newTestPipeline(24, 80)

	if _, err := d.Write([]byte("\x1b(0lqk")); err != nil {
		t.Fatalf("write: %v", err)
	}

	want := "┌─┐"
	if got := lineString(s, 0); got != want {
		t.Errorf("line 0 = %q, want %q", got, want)
	}
}

func TestCharsetAsciiIsIdentity(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '0', 'l', 'q', 'k', '~'} {
		if got := CharsetAscii.Map(r); got != r {
			t.Errorf("CharsetAscii.Map(%q) = %q, want identity", r, got)
		}
	}
}

func TestCharsetSpecialIsTotal(t *testing.T) {
	// Defined entries map through the table; everything else is identity.
	if got := CharsetSpecial.Map('q'); got != '─' {
		t.Errorf("CharsetSpecial.Map('q') = %q, want '─'", got)
	}
	if got := CharsetSpecial.Map('Z'); got != 'Z' {
		t.Errorf("CharsetSpecial.Map('Z') = %q, want identity", got)
	}
}

// Scenario 4 (spec §8): DSR cursor-position report.
func TestScreenDeviceStatusCursorPositionReport(t *testing.T) {
	resp := &captureResponse{}
	s, d := newTestPipelineWithResponse(24, 80, resp)

	// Move to row index 2, col index 4 (0-based), then query CPR.
	if _, err := d.Write([]byte("\x1b[3;5H\x1b[6n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if s.Cursor().Pos != (Point{X: 4, Y: 2}) {
		t.Fatalf("cursor = %+v, want (4,2)", s.Cursor().Pos)
	}

	want := "\x1b[3;5R"
	if got := resp.buf.String(); got != want {
		t.Errorf("DSR reply = %q, want %q", got, want)
	}
}

func TestScreenDeviceStatusReady(t *testing.T) {
	resp := &captureResponse{}
	s, d := newTestPipelineWithResponse(24, 80, resp)
	_ = s

	if _, err := d.Write([]byte("\x1b[5n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := resp.buf.String(); got != "\x1b[0n" {
		t.Errorf("DSR ready reply = %q, want \\x1b[0n", got)
	}
}

// Scenario 6 (spec §8): OSC 0 title, no cells touched, no response bytes.
func TestScreenOSCTitle(t *testing.T) {
	resp := &captureResponse{}
	s, d := newTestPipelineWithResponse(24, 3, resp)

	if _, err := d.Write([]byte("\x1b]0;hello\x07")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if s.Title() != "hello" {
		t.Errorf("Title() = %q, want %q", s.Title(), "hello")
	}
	for x := 0; x < s.Size().X; x++ {
		cell, ok := s.Cell(Point{X: x, Y: 0})
		if ok && cell.HasChar {
			t.Errorf("cell (%d,0) = %+v, want untouched by an OSC title sequence", x, cell)
		}
	}
	if resp.buf.Len() != 0 {
		t.Errorf("OSC title wrote %d response bytes, want 0", resp.buf.Len())
	}
}

func TestIdentifyTerminalPrimaryAndSecondaryDA(t *testing.T) {
	resp := &captureResponse{}
	s := NewScreen(Point{X: 80, Y: 24}, WithResponse(resp))

	s.IdentifyTerminal(0)
	if got := resp.buf.String(); got != "\x1b[?1;2c" {
		t.Errorf("primary DA reply = %q, want \\x1b[?1;2c", got)
	}

	resp.buf.Reset()
	s.IdentifyTerminal('>')
	if got := resp.buf.String(); got != "\x1b[>84;0;0c" {
		t.Errorf("secondary DA reply = %q, want \\x1b[>84;0;0c", got)
	}
}

// Regression: restore-without-save moves the cursor home instead of
// leaving it where it was.
func TestRestoreCursorPositionWithoutSaveGoesHome(t *testing.T) {
	s := NewScreen(Point{X: 80, Y: 24})
	s.Goto(Point{X: 10, Y: 5})

	s.RestoreCursorPosition()

	if s.Cursor().Pos != (Point{X: 0, Y: 0}) {
		t.Errorf("cursor after unsaved restore = %+v, want (0,0)", s.Cursor().Pos)
	}
}

func TestSaveRestoreCursorPositionRoundTrips(t *testing.T) {
	s := NewScreen(Point{X: 80, Y: 24})
	s.Goto(Point{X: 10, Y: 5})
	s.SaveCursorPosition()
	s.Goto(Point{X: 40, Y: 20})

	s.RestoreCursorPosition()

	if s.Cursor().Pos != (Point{X: 10, Y: 5}) {
		t.Errorf("cursor after restore = %+v, want (10,5)", s.Cursor().Pos)
	}
}

// Invariant (spec §8): any number of save/restore pairs is a no-op on the
// cursor once a position has been saved.
func TestSaveRestoreCursorPositionPairsAreNoop(t *testing.T) {
	s := NewScreen(Point{X: 80, Y: 24})
	s.Goto(Point{X: 3, Y: 3})
	s.SaveCursorPosition()

	for i := 0; i < 5; i++ {
		s.SaveCursorPosition()
		s.RestoreCursorPosition()
	}

	if s.Cursor().Pos != (Point{X: 3, Y: 3}) {
		t.Errorf("cursor after repeated save/restore = %+v, want (3,3)", s.Cursor().Pos)
	}
}

// Regression: SetScrollingRegion's exclusive bottom bound must cover the
// full 1-based inclusive range requested, not fall one row short.
func TestSetScrollingRegionCoversFullRange(t *testing.T) {
	s := NewScreen(Point{X: 10, Y: 10})
	s.SetScrollingRegion(2, 6) // rows 2..6 inclusive, 1-based -> 0-based [1,6)

	for y := 0; y < 10; y++ {
		s.Goto(Point{X: 0, Y: y})
		s.grid.SetCell(Point{X: 0, Y: y}, Cell{Char: rune('0' + y), HasChar: true})
	}

	// Scroll the whole region up by one: row 5 (0-based, last row of the
	// region) must be cleared, not left stale, which is what the off-by-one
	// bug produced (it cleared row 4 and left row 5's old content behind).
	s.ScrollUp(1)

	cell, _ := s.Cell(Point{X: 0, Y: 5})
	if cell.HasChar {
		t.Errorf("row 5 after scrolling the full region = %+v, want cleared", cell)
	}
}

func TestCursorStaysInBoundsAfterManyOperations(t *testing.T) {
	s, d := newTestPipeline(5, 10)

	ops := "Hello, World!\r\n\x1b[A\x1b[10C\x1b[20B\x1b[5D\x1b[2J\x1b[H"
	if _, err := d.Write([]byte(ops)); err != nil {
		t.Fatalf("write: %v", err)
	}

	pos := s.Cursor().Pos
	size := s.Size()
	if pos.X < 0 || pos.X >= size.X || pos.Y < 0 || pos.Y >= size.Y {
		t.Errorf("cursor %+v out of bounds for size %+v", pos, size)
	}
}
