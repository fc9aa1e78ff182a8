package vtcore

// ClearScreen implements ED (erase in display).
func (s *Screen) ClearScreen(mode ClearScreenMode) {
	switch mode {
	case ClearBelow:
		s.grid.ClearRange(s.cursor.Pos.Y, s.cursor.Pos.X, s.size.X, s.template)
		for y := s.cursor.Pos.Y + 1; y < s.size.Y; y++ {
			s.grid.ClearRow(y, s.template)
		}
	case ClearAbove:
		s.grid.ClearRange(s.cursor.Pos.Y, 0, s.cursor.Pos.X+1, s.template)
		for y := 0; y < s.cursor.Pos.Y; y++ {
			s.grid.ClearRow(y, s.template)
		}
	case ClearAll, ClearSaved:
		s.grid.ClearAll(s.template)
	}
}

// ClearLine implements EL (erase in line).
func (s *Screen) ClearLine(mode ClearLineMode) {
	switch mode {
	case ClearLineRight:
		s.grid.ClearRange(s.cursor.Pos.Y, s.cursor.Pos.X, s.size.X, s.template)
	case ClearLineLeft:
		s.grid.ClearRange(s.cursor.Pos.Y, 0, s.cursor.Pos.X+1, s.template)
	case ClearLineAll:
		s.grid.ClearRow(s.cursor.Pos.Y, s.template)
	}
}

// InsertBlank implements ICH: insert n blank cells at the cursor.
func (s *Screen) InsertBlank(n int) {
	s.grid.InsertBlanks(s.cursor.Pos.Y, s.cursor.Pos.X, n, s.template)
}

// DeleteChars implements DCH: delete n cells at the cursor.
func (s *Screen) DeleteChars(n int) {
	s.grid.DeleteChars(s.cursor.Pos.Y, s.cursor.Pos.X, n, s.template)
}

// EraseChars implements ECH: blank n cells at the cursor without shifting.
func (s *Screen) EraseChars(n int) {
	s.grid.EraseChars(s.cursor.Pos.Y, s.cursor.Pos.X, n, s.template)
}

// InsertBlankLines implements IL: insert n blank lines at the cursor row,
// only when the cursor is within the scrolling region.
func (s *Screen) InsertBlankLines(n int) {
	if s.cursor.Pos.Y < s.scrollTop || s.cursor.Pos.Y >= s.scrollBottom {
		return
	}
	s.grid.ScrollDown(s.cursor.Pos.Y, s.scrollBottom, n, s.template)
}

// DeleteLines implements DL: delete n lines at the cursor row, only when the
// cursor is within the scrolling region.
func (s *Screen) DeleteLines(n int) {
	if s.cursor.Pos.Y < s.scrollTop || s.cursor.Pos.Y >= s.scrollBottom {
		return
	}
	s.grid.ScrollUp(s.cursor.Pos.Y, s.scrollBottom, n, s.template)
}
