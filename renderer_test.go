package vtcore

import "testing"

func TestResolveRGBPassesThrough(t *testing.T) {
	s := NewScreen(Point{X: 10, Y: 10})
	c := RGBColor(10, 20, 30)
	if got := s.Resolve(c, true); got != (RGB{10, 20, 30}) {
		t.Errorf("Resolve(rgb) = %+v, want {10,20,30}", got)
	}
}

func TestResolveIndexedUsesDefaultPalette(t *testing.T) {
	s := NewScreen(Point{X: 10, Y: 10})
	if got := s.Resolve(IndexedColor(1), true); got != DefaultPalette[1] {
		t.Errorf("Resolve(indexed 1) = %+v, want DefaultPalette[1] %+v", got, DefaultPalette[1])
	}
}

func TestResolveIndexedHonorsOverride(t *testing.T) {
	s := NewScreen(Point{X: 10, Y: 10})
	s.SetColor(1, RGB{9, 9, 9})
	if got := s.Resolve(IndexedColor(1), true); got != (RGB{9, 9, 9}) {
		t.Errorf("Resolve(indexed 1) after override = %+v, want {9,9,9}", got)
	}
}

func TestResolveSpecialFallsBackToDefaults(t *testing.T) {
	s := NewScreen(Point{X: 10, Y: 10})
	if got := s.Resolve(ColorForeground, true); got != DefaultForeground {
		t.Errorf("Resolve(special foreground) = %+v, want %+v", got, DefaultForeground)
	}
	if got := s.Resolve(ColorBackground, false); got != DefaultBackground {
		t.Errorf("Resolve(special background) = %+v, want %+v", got, DefaultBackground)
	}
}

func TestResolveSpecialHonorsOverride(t *testing.T) {
	s := NewScreen(Point{X: 10, Y: 10})
	s.SetSpecialColor(SpecialCursor, RGB{1, 2, 3})
	if got := s.Resolve(SpecialColorValue(SpecialCursor), true); got != (RGB{1, 2, 3}) {
		t.Errorf("Resolve(special cursor) after override = %+v, want {1,2,3}", got)
	}
}

func TestAttributesSGRFlagOrderAscending(t *testing.T) {
	a := Attributes{Fg: ColorForeground, Bg: ColorBackground}
	a.SetFlag(FlagStrike)
	a.SetFlag(FlagBold)
	a.SetFlag(FlagUnderline)

	got := a.SGR()
	want := "\x1b[0;1;4;9;39;49m"
	if got != want {
		t.Errorf("SGR() = %q, want %q", got, want)
	}
}

func TestAttributesSGRTruecolor(t *testing.T) {
	a := Attributes{Fg: RGBColor(1, 2, 3), Bg: ColorBackground}
	got := a.SGR()
	want := "\x1b[0;38;2;1;2;3;49m"
	if got != want {
		t.Errorf("SGR() = %q, want %q", got, want)
	}
}

func TestAttributesSGRIndexedLowAndHigh(t *testing.T) {
	low := Attributes{Fg: IndexedColor(3), Bg: ColorBackground}
	if got, want := low.SGR(), "\x1b[0;33;49m"; got != want {
		t.Errorf("SGR() low index = %q, want %q", got, want)
	}

	bright := Attributes{Fg: IndexedColor(12), Bg: ColorBackground}
	if got, want := bright.SGR(), "\x1b[0;94;49m"; got != want {
		t.Errorf("SGR() bright index = %q, want %q", got, want)
	}

	ext := Attributes{Fg: IndexedColor(200), Bg: ColorBackground}
	if got, want := ext.SGR(), "\x1b[0;38;5;200;49m"; got != want {
		t.Errorf("SGR() extended index = %q, want %q", got, want)
	}
}

func TestScreenRenderPaintsCellsAndCursor(t *testing.T) {
	s, d := newTestPipeline(3, 10)
	if _, err := d.Write([]byte("Hi")); err != nil {
		t.Fatalf("write: %v", err)
	}

	frame := s.Render()
	if len(frame) == 0 {
		t.Fatal("Render() produced no output")
	}
	const prefix = "\x1b[H\x1b[2J"
	if len(frame) < len(prefix) || frame[:len(prefix)] != prefix {
		t.Errorf("Render() should open with a home+clear sequence, got %q", frame)
	}
	want := "\x1b[1;3H" // cursor is at (2,0) zero-based -> 1-based row 1, col 3
	if got := frame[len(frame)-len(want):]; got != want {
		t.Errorf("Render() tail = %q, want %q", got, want)
	}
}
