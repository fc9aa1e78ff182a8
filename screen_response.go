package vtcore

import "fmt"

// DeviceStatus implements DSR: n=5 reports ready, n=6 reports cursor
// position (1-based).
func (s *Screen) DeviceStatus(n int) {
	switch n {
	case 5:
		s.writeResponse("\x1b[0n")
	case 6:
		s.writeResponse(fmt.Sprintf("\x1b[%d;%dR", s.cursor.Pos.Y+1, s.cursor.Pos.X+1))
	}
}

// IdentifyTerminal implements DA1/DA2: b is the CSI intermediate byte, '>'
// for secondary DA, 0 for primary DA.
func (s *Screen) IdentifyTerminal(b byte) {
	if b == '>' {
		s.writeResponse("\x1b[>84;0;0c")
		return
	}
	s.writeResponse("\x1b[?1;2c")
}

// TextAreaSizeChars reports the grid dimensions in character cells.
func (s *Screen) TextAreaSizeChars() {
	s.writeResponse(fmt.Sprintf("\x1b[8;%d;%dt", s.size.Y, s.size.X))
}

// TextAreaSizePixels reports the grid dimensions in pixels, assuming a
// fixed 10x20 cell size since the core has no concept of font metrics.
func (s *Screen) TextAreaSizePixels() {
	s.writeResponse(fmt.Sprintf("\x1b[4;%d;%dt", s.size.Y*20, s.size.X*10))
}
