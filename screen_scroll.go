package vtcore

// ScrollUp implements SU: scroll the whole scrolling region up n lines.
func (s *Screen) ScrollUp(n int) {
	s.grid.ScrollUp(s.scrollTop, s.scrollBottom, n, s.template)
}

// ScrollDown implements SD: scroll the whole scrolling region down n lines.
func (s *Screen) ScrollDown(n int) {
	s.grid.ScrollDown(s.scrollTop, s.scrollBottom, n, s.template)
}

// SetScrollingRegion implements DECSTBM. top/bottom are 1-based inclusive;
// an invalid or degenerate region is ignored. Moves the cursor home,
// honoring origin mode.
func (s *Screen) SetScrollingRegion(top, bottom int) {
	top--

	if top < 0 {
		top = 0
	}
	if bottom <= 0 || bottom > s.size.Y {
		bottom = s.size.Y
	}
	if top >= bottom {
		return
	}

	s.scrollTop = top
	s.scrollBottom = bottom

	if s.modes&ModeOrigin != 0 {
		s.cursor.Pos.Y = s.scrollTop
	} else {
		s.cursor.Pos.Y = 0
	}
	s.cursor.Pos.X = 0
}
