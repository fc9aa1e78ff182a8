package vtcore

import "testing"

func TestNewGrid(t *testing.T) {
	g := NewGrid(Point{X: 80, Y: 24}, DefaultAttributes())

	if g.Size() != (Point{X: 80, Y: 24}) {
		t.Errorf("size = %+v, want (80,24)", g.Size())
	}
}

func TestGridCellOutOfBounds(t *testing.T) {
	g := NewGrid(Point{X: 80, Y: 24}, DefaultAttributes())

	if _, ok := g.Cell(Point{X: -1, Y: 0}); ok {
		t.Error("expected false for negative x")
	}
	if _, ok := g.Cell(Point{X: 0, Y: 24}); ok {
		t.Error("expected false for y >= rows")
	}
}

func TestGridSetAndGetCell(t *testing.T) {
	g := NewGrid(Point{X: 80, Y: 24}, DefaultAttributes())

	cell := NewCell(DefaultAttributes())
	cell.Char = 'A'
	cell.HasChar = true
	g.SetCell(Point{X: 5, Y: 3}, cell)

	got, ok := g.Cell(Point{X: 5, Y: 3})
	if !ok || got.Char != 'A' {
		t.Errorf("got %+v ok=%v, want 'A'", got, ok)
	}
}

func TestGridClearRow(t *testing.T) {
	g := NewGrid(Point{X: 10, Y: 5}, DefaultAttributes())

	cell := NewCell(DefaultAttributes())
	cell.Char = 'X'
	cell.HasChar = true
	g.SetCell(Point{X: 0, Y: 0}, cell)

	g.ClearRow(0, DefaultAttributes())

	got, _ := g.Cell(Point{X: 0, Y: 0})
	if got.HasChar {
		t.Error("expected row cleared")
	}
}

func TestGridScrollUp(t *testing.T) {
	g := NewGrid(Point{X: 10, Y: 5}, DefaultAttributes())

	for y := 0; y < 5; y++ {
		cell := NewCell(DefaultAttributes())
		cell.Char = rune('0' + y)
		cell.HasChar = true
		g.SetCell(Point{X: 0, Y: y}, cell)
	}

	g.ScrollUp(0, 5, 1, DefaultAttributes())

	got, _ := g.Cell(Point{X: 0, Y: 0})
	if got.Char != '1' {
		t.Errorf("row 0 = %q after scroll up, want '1'", got.Char)
	}
	last, ok := g.Cell(Point{X: 0, Y: 4})
	if !ok || last.HasChar {
		t.Errorf("row 4 should be a fresh blank row after scroll up, got %+v", last)
	}
}

func TestGridInsertBlanks(t *testing.T) {
	g := NewGrid(Point{X: 5, Y: 1}, DefaultAttributes())

	for x := 0; x < 5; x++ {
		cell := NewCell(DefaultAttributes())
		cell.Char = rune('a' + x)
		cell.HasChar = true
		g.SetCell(Point{X: x, Y: 0}, cell)
	}

	g.InsertBlanks(0, 1, 2, DefaultAttributes())

	got, _ := g.Cell(Point{X: 1, Y: 0})
	if got.HasChar {
		t.Errorf("expected blank at col 1 after insert, got %+v", got)
	}
	shifted, _ := g.Cell(Point{X: 3, Y: 0})
	if shifted.Char != 'b' {
		t.Errorf("expected 'b' shifted to col 3, got %q", shifted.Char)
	}
}

func TestGridDeleteChars(t *testing.T) {
	g := NewGrid(Point{X: 5, Y: 1}, DefaultAttributes())

	for x := 0; x < 5; x++ {
		cell := NewCell(DefaultAttributes())
		cell.Char = rune('a' + x)
		cell.HasChar = true
		g.SetCell(Point{X: x, Y: 0}, cell)
	}

	g.DeleteChars(0, 1, 2, DefaultAttributes())

	got, _ := g.Cell(Point{X: 1, Y: 0})
	if got.Char != 'd' {
		t.Errorf("expected 'd' shifted left to col 1, got %q", got.Char)
	}
	tail, _ := g.Cell(Point{X: 4, Y: 0})
	if tail.HasChar {
		t.Errorf("expected blank at tail after delete, got %+v", tail)
	}
}

func TestGridTabStops(t *testing.T) {
	g := NewGrid(Point{X: 80, Y: 24}, DefaultAttributes())
	g.ClearAllTabStops()

	g.SetTabStop(10)
	g.SetTabStop(20)

	if got := g.NextTabStop(5); got != 10 {
		t.Errorf("NextTabStop(5) = %d, want 10", got)
	}
	if got := g.NextTabStop(10); got != 20 {
		t.Errorf("NextTabStop(10) = %d, want 20", got)
	}

	g.ClearTabStop(10)
	if got := g.NextTabStop(5); got != 20 {
		t.Errorf("NextTabStop(5) after clearing 10 = %d, want 20", got)
	}
}
