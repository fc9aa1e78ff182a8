package vtcore

// SetMode enables the named mode, applying the side effects §6 lists for
// Origin, ShowCursor, and SwapScreenAndSetRestoreCursor.
func (s *Screen) SetMode(mode TerminalMode) { s.setMode(mode, true) }

// UnsetMode disables the named mode, with the mirrored side effects for
// ShowCursor and SwapScreenAndSetRestoreCursor; unsetting Origin leaves the
// cursor where it is.
func (s *Screen) UnsetMode(mode TerminalMode) { s.setMode(mode, false) }

func (s *Screen) setMode(mode TerminalMode, set bool) {
	switch mode {
	case ModeOrigin:
		if set {
			s.cursor.Pos.Y = s.scrollTop
			s.cursor.Pos.X = 0
		}
	case ModeShowCursor:
		s.cursor.Visible = set
	case ModeSwapScreenAndSetRestoreCursor:
		// The alternate-screen buffer swap itself is a host-level concern
		// (§5): the core only tracks the mode bit and the save/restore
		// pairing xterm specifies alongside it.
		if set {
			s.SaveCursorPosition()
		} else {
			s.RestoreCursorPosition()
		}
	}

	if set {
		s.modes |= mode
	} else {
		s.modes &^= mode
	}
}

// HasMode reports whether the given mode bit is currently set.
func (s *Screen) HasMode(mode TerminalMode) bool { return s.modes&mode != 0 }

// SetCursorStyle implements DECSCUSR.
func (s *Screen) SetCursorStyle(style CursorStyle) { s.cursor.Style = style }
