package vtcore

import (
	"fmt"
	"strings"
)

// DefaultPalette is the standard 256-color table: 16 named ANSI colors
// (0-15), a 6x6x6 color cube (16-231), and a 24-step grayscale ramp
// (232-255).
var DefaultPalette [256]RGB

func init() {
	named := [16]RGB{
		{0, 0, 0}, {205, 49, 49}, {13, 188, 121}, {229, 229, 16},
		{36, 114, 200}, {188, 63, 188}, {17, 168, 205}, {229, 229, 229},
		{102, 102, 102}, {241, 76, 76}, {35, 209, 139}, {245, 245, 67},
		{59, 142, 234}, {214, 112, 214}, {41, 184, 219}, {255, 255, 255},
	}
	copy(DefaultPalette[:16], named[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = RGB{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51)}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = RGB{gray, gray, gray}
	}
}

var (
	DefaultForeground = RGB{229, 229, 229}
	DefaultBackground = RGB{0, 0, 0}
	DefaultCursorColor = RGB{229, 229, 229}
)

// Resolve converts a Color into a concrete RGB triple, consulting the
// screen's palette/special-color overrides first and falling back to
// DefaultPalette / the fixed defaults. A Color of any other kind (not
// reachable through Color's constructors) falls back to the fg/bg default.
// Resolve never logs, it only decides a value.
func (s *Screen) Resolve(c Color, fg bool) RGB {
	switch c.Kind() {
	case ColorRGB:
		rgb, _ := c.RGB()
		return rgb
	case ColorIndexed:
		idx, _ := c.Indexed()
		if override, ok := s.ColorAt(idx); ok {
			return override
		}
		return DefaultPalette[idx]
	case ColorSpecial:
		which, _ := c.Special()
		if override, ok := s.SpecialColorAt(which); ok {
			return override
		}
		switch which {
		case SpecialBackground:
			return DefaultBackground
		case SpecialCursor:
			return DefaultCursorColor
		default:
			return DefaultForeground
		}
	}
	if fg {
		return DefaultForeground
	}
	return DefaultBackground
}

// SGR renders the cell's attributes as a single CSI-m escape sequence,
// emitting flag codes in ascending numeric order followed by foreground
// then background, mirroring the order real terminfo-driven applications
// expect to parse back out.
func (a Attributes) SGR() string {
	params := []string{"0"}

	flagCode := []struct {
		flag CellFlags
		code string
	}{
		{FlagBold, "1"},
		{FlagDim, "2"},
		{FlagItalic, "3"},
		{FlagUnderline, "4"},
		{FlagBlinkSlow, "5"},
		{FlagBlinkFast, "6"},
		{FlagReverse, "7"},
		{FlagHidden, "8"},
		{FlagStrike, "9"},
	}
	for _, fc := range flagCode {
		if a.HasFlag(fc.flag) {
			params = append(params, fc.code)
		}
	}

	params = append(params, colorSGR(a.Fg, true))
	params = append(params, colorSGR(a.Bg, false))

	out := "\x1b["
	for i, p := range params {
		if i > 0 {
			out += ";"
		}
		out += p
	}
	return out + "m"
}

// Render emits a full repaint of the screen as a self-contained escape
// sequence: clear the outer terminal, re-emit every cell's SGR/rune run,
// then position the outer cursor to match the screen's cursor. Called by
// the render task in response to a render-channel notification (§4.7); it
// never mutates Screen state, only reads it under the caller's lock.
func (s *Screen) Render() string {
	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")

	grid := s.Grid()
	size := s.Size()
	var last Attributes
	haveLast := false
	for y := 0; y < size.Y; y++ {
		if y > 0 {
			b.WriteString("\r\n")
		}
		for x := 0; x < size.X; x++ {
			cell, _ := grid.Cell(Point{X: x, Y: y})
			if cell.IsWideSpacer() {
				continue
			}
			if !haveLast || cell.Attributes != last {
				b.WriteString(cell.Attributes.SGR())
				last = cell.Attributes
				haveLast = true
			}
			if cell.HasChar {
				b.WriteRune(cell.Char)
			} else {
				b.WriteByte(' ')
			}
		}
	}

	cur := s.Cursor()
	fmt.Fprintf(&b, "\x1b[%d;%dH", cur.Pos.Y+1, cur.Pos.X+1)
	return b.String()
}

func colorSGR(c Color, fg bool) string {
	base := 30
	if !fg {
		base = 40
	}
	switch c.Kind() {
	case ColorRGB:
		rgb, _ := c.RGB()
		return fmt.Sprintf("%d;2;%d;%d;%d", base+8, rgb.R, rgb.G, rgb.B)
	case ColorIndexed:
		idx, _ := c.Indexed()
		if idx < 8 {
			return fmt.Sprintf("%d", base+int(idx))
		}
		if idx < 16 {
			return fmt.Sprintf("%d", base+60+int(idx)-8)
		}
		return fmt.Sprintf("%d;5;%d", base+8, idx)
	default:
		return fmt.Sprintf("%d", base+9)
	}
}
