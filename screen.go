package vtcore

// ClearScreenMode selects which portion of the screen an erase-in-display
// operation clears.
type ClearScreenMode int

const (
	ClearBelow ClearScreenMode = iota
	ClearAbove
	ClearAll
	ClearSaved
)

// ClearLineMode selects which portion of the current line an erase-in-line
// operation clears.
type ClearLineMode int

const (
	ClearLineRight ClearLineMode = iota
	ClearLineLeft
	ClearLineAll
)

// TabClearMode selects how ClearTabs behaves.
type TabClearMode int

const (
	TabClearCurrent TabClearMode = iota
	TabClearAll
)

// ClipboardKind names one of the clipboard/selection/cut-buffer slots
// addressable by OSC 52.
type ClipboardKind byte

const (
	ClipboardClipboard ClipboardKind = 'c'
	ClipboardPrimary   ClipboardKind = 'p'
	ClipboardSelection ClipboardKind = 's'
)

func IsCutBuffer(k ClipboardKind) bool { return k >= '0' && k <= '7' }

// TerminalMode is a bitset of the modes named in §6: a mix of DEC private
// modes (set with CSI ?h/?l) and ANSI modes (CSI h/l without '?').
type TerminalMode uint32

const (
	ModeCursorKeys TerminalMode = 1 << iota
	ModeColumnMode
	ModeOrigin
	ModeLineWrap
	ModeBlinkingCursor
	ModeShowCursor
	ModeReportMouseClicks
	ModeReportCellMouseMotion
	ModeReportAllMouseMotion
	ModeReportFocusInOut
	ModeUTF8Mouse
	ModeSGRMouse
	ModeAlternateScroll
	ModeSwapScreenAndSetRestoreCursor
	ModeBracketedPaste
	ModeInsert
	ModeLineFeedNewLine
)

// Screen owns the grid, cursor, cell template, and charset state, and
// implements every operation the dispatch adapter calls. It holds no
// internal lock: the terminal task serializes access to it under its own
// screen mutex (§5), matching the "critical sections must not suspend"
// requirement — every Screen method is synchronous and non-blocking.
type Screen struct {
	grid     *Grid
	size     Point
	cursor   Cursor
	saved    *SavedCursor
	template Attributes

	charsets      CharsetList
	activeCharset CharsetIndex

	scrollTop    int
	scrollBottom int

	modes TerminalMode

	title      string
	titleStack []string
	path       string

	colors        map[uint8]RGB
	specialColors map[SpecialColor]RGB

	precedingChar rune

	response  ResponseWriter
	bell      BellProvider
	title2    TitleProvider
	clipboard ClipboardProvider
}

// Option configures a Screen at construction time.
type Option func(*Screen)

func WithResponse(w ResponseWriter) Option { return func(s *Screen) { s.response = w } }
func WithBell(b BellProvider) Option       { return func(s *Screen) { s.bell = b } }
func WithTitle(t TitleProvider) Option     { return func(s *Screen) { s.title2 = t } }
func WithClipboard(c ClipboardProvider) Option {
	return func(s *Screen) { s.clipboard = c }
}

// NewScreen creates a screen of the given fixed size with default state:
// ASCII charsets, full-height scrolling region, cursor visible at origin.
func NewScreen(size Point, opts ...Option) *Screen {
	s := &Screen{
		size:          size,
		template:      DefaultAttributes(),
		cursor:        NewCursor(),
		scrollBottom:  size.Y,
		modes:         ModeShowCursor | ModeLineWrap,
		colors:        make(map[uint8]RGB),
		specialColors: make(map[SpecialColor]RGB),
		response:      NoopResponse{},
		bell:          NoopBell{},
		title2:        NoopTitle{},
		clipboard:     NoopClipboard{},
	}
	s.grid = NewGrid(size, s.template)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Screen) Size() Point     { return s.size }
func (s *Screen) Cursor() Cursor  { return s.cursor }
func (s *Screen) Title() string   { return s.title }
func (s *Screen) Path() string    { return s.path }
func (s *Screen) Grid() *Grid     { return s.grid }

// Cell returns the cell at p, or a blank cell and false if out of bounds.
func (s *Screen) Cell(p Point) (Cell, bool) { return s.grid.Cell(p) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// effectiveRow applies the origin-mode offset: in origin mode, line 0
// means the top of the scrolling region rather than the top of the grid.
func (s *Screen) effectiveRow(row int) int {
	if s.modes&ModeOrigin != 0 {
		return row + s.scrollTop
	}
	return row
}

func (s *Screen) writeResponse(text string) {
	_, _ = s.response.Write([]byte(text))
}

// Input prints a rune at the cursor, applying charset translation, wide-char
// spacer insertion, insert mode, and autowrap. precedingChar is updated so a
// following CSI b can repeat it.
func (s *Screen) Input(r rune) {
	r = s.charsets.Get(s.activeCharset).Map(r)

	width := runeWidth(r)
	if width == 0 {
		return
	}

	if s.cursor.Pos.X+width > s.size.X {
		if s.modes&ModeLineWrap != 0 {
			s.grid.SetWrapped(s.cursor.Pos.Y, true)
			s.cursor.Pos.X = 0
			s.cursor.Pos.Y++
			s.scrollIfNeeded()
		} else if width == 2 {
			return
		} else {
			s.cursor.Pos.X = s.size.X - 1
		}
	}

	if s.modes&ModeInsert != 0 {
		s.grid.InsertBlanks(s.cursor.Pos.Y, s.cursor.Pos.X, width, s.template)
	}

	if s.cursor.Pos.X < s.size.X {
		cell := Cell{Char: r, HasChar: true, Attributes: s.template}
		if width == 2 {
			cell.Attributes.SetFlag(FlagWideChar)
		}
		s.grid.SetCell(s.cursor.Pos, cell)
	}
	s.cursor.Pos.X++

	if width == 2 && s.cursor.Pos.X < s.size.X {
		spacer := NewCell(s.template)
		spacer.Attributes.SetFlag(FlagWideCharSpacer)
		s.grid.SetCell(s.cursor.Pos, spacer)
		s.cursor.Pos.X++
	}

	if s.cursor.Pos.X >= s.size.X && s.modes&ModeLineWrap == 0 {
		s.cursor.Pos.X = s.size.X - 1
	}

	s.precedingChar = r
}

// Repeat reproduces the last printed character n times (CSI b, REP).
func (s *Screen) Repeat(n int) {
	if s.precedingChar == 0 {
		return
	}
	r := s.precedingChar
	for i := 0; i < n; i++ {
		s.Input(r)
	}
}

func (s *Screen) Backspace() {
	if s.cursor.Pos.X > 0 {
		s.cursor.Pos.X--
	}
}

func (s *Screen) CarriageReturn() {
	s.cursor.Pos.X = 0
}

func (s *Screen) LineFeed() {
	s.grid.SetWrapped(s.cursor.Pos.Y, false)
	if s.modes&ModeLineFeedNewLine != 0 {
		s.cursor.Pos.X = 0
	}
	s.cursor.Pos.Y++
	s.scrollIfNeeded()
}

func (s *Screen) ReverseIndex() {
	if s.cursor.Pos.Y == s.scrollTop {
		s.grid.ScrollDown(s.scrollTop, s.scrollBottom, 1, s.template)
	} else if s.cursor.Pos.Y > 0 {
		s.cursor.Pos.Y--
	}
}

// scrollIfNeeded keeps the cursor within the scrolling region by scrolling
// the grid, matching the teacher's post-LF/post-wrap bookkeeping.
func (s *Screen) scrollIfNeeded() {
	if s.cursor.Pos.Y >= s.scrollBottom {
		n := s.cursor.Pos.Y - s.scrollBottom + 1
		s.grid.ScrollUp(s.scrollTop, s.scrollBottom, n, s.template)
		s.cursor.Pos.Y = s.scrollBottom - 1
	} else if s.cursor.Pos.Y < s.scrollTop {
		n := s.scrollTop - s.cursor.Pos.Y
		s.grid.ScrollDown(s.scrollTop, s.scrollBottom, n, s.template)
		s.cursor.Pos.Y = s.scrollTop
	}
}

func (s *Screen) Bell() { s.bell.Ring() }

func (s *Screen) Substitute() {
	if cell, ok := s.grid.Cell(s.cursor.Pos); ok {
		cell.Char = '?'
		cell.HasChar = true
		s.grid.SetCell(s.cursor.Pos, cell)
	}
}

// Decaln fills the screen with 'E' (DEC screen alignment test).
func (s *Screen) Decaln() { s.grid.FillWithE() }

// ConfigureCharset assigns a charset to one of the four G0-G3 slots.
func (s *Screen) ConfigureCharset(index CharsetIndex, cs Charset) {
	s.charsets.Set(index, cs)
}

// SetActiveCharset selects which of the four slots GL maps through.
func (s *Screen) SetActiveCharset(index CharsetIndex) {
	s.activeCharset = index
}

func (s *Screen) Goto(p Point) {
	s.cursor.Pos.Y = clamp(p.Y, 0, s.size.Y-1)
	s.cursor.Pos.X = clamp(p.X, 0, s.size.X-1)
}

func (s *Screen) GotoCol(x int) { s.cursor.Pos.X = clamp(x, 0, s.size.X-1) }
func (s *Screen) GotoLine(y int) { s.cursor.Pos.Y = clamp(y, 0, s.size.Y-1) }

func (s *Screen) MoveForward(n int)  { s.cursor.Pos.X = clamp(s.cursor.Pos.X+n, 0, s.size.X-1) }
func (s *Screen) MoveBackward(n int) { s.cursor.Pos.X = clamp(s.cursor.Pos.X-n, 0, s.size.X-1) }

func (s *Screen) MoveDown(n int) { s.cursor.Pos.Y = clamp(s.cursor.Pos.Y+n, 0, s.size.Y-1) }
func (s *Screen) MoveUp(n int)   { s.cursor.Pos.Y = clamp(s.cursor.Pos.Y-n, 0, s.size.Y-1) }

func (s *Screen) MoveDownCr(n int) { s.MoveDown(n); s.CarriageReturn() }
func (s *Screen) MoveUpCr(n int)   { s.MoveUp(n); s.CarriageReturn() }

func (s *Screen) HorizontalTabSet() { s.grid.SetTabStop(s.cursor.Pos.X) }

func (s *Screen) Tab(n int) {
	for i := 0; i < n; i++ {
		s.cursor.Pos.X = s.grid.NextTabStop(s.cursor.Pos.X)
	}
}

func (s *Screen) MoveForwardTabs(n int) { s.Tab(n) }

func (s *Screen) MoveBackwardTabs(n int) {
	for i := 0; i < n; i++ {
		s.cursor.Pos.X = s.grid.PrevTabStop(s.cursor.Pos.X)
	}
}

func (s *Screen) ClearTabs(mode TabClearMode) {
	switch mode {
	case TabClearCurrent:
		s.grid.ClearTabStop(s.cursor.Pos.X)
	case TabClearAll:
		s.grid.ClearAllTabStops()
	}
}

// SaveCursorPosition implements DECSC: position, template, origin mode, and
// charset state.
func (s *Screen) SaveCursorPosition() {
	s.saved = &SavedCursor{
		Pos:           s.cursor.Pos,
		Template:      s.template,
		OriginMode:    s.modes&ModeOrigin != 0,
		ActiveCharset: s.activeCharset,
		Charsets:      s.charsets,
	}
}

// RestoreCursorPosition implements DECRC: restores from the last save, or
// moves the cursor to (0,0) if nothing was ever saved.
func (s *Screen) RestoreCursorPosition() {
	if s.saved == nil {
		s.cursor.Pos = Point{X: 0, Y: 0}
		return
	}
	s.cursor.Pos = s.saved.Pos
	s.template = s.saved.Template
	if s.saved.OriginMode {
		s.modes |= ModeOrigin
	} else {
		s.modes &^= ModeOrigin
	}
	s.activeCharset = s.saved.ActiveCharset
	s.charsets = s.saved.Charsets
}

// ResetState restores a freshly-constructed screen's defaults without
// reallocating the grid: cleared cells, home cursor, default modes/template,
// ASCII charsets, and cleared color overrides.
func (s *Screen) ResetState() {
	s.grid.ClearAll(DefaultAttributes())
	s.cursor = NewCursor()
	s.template = DefaultAttributes()
	s.scrollTop = 0
	s.scrollBottom = s.size.Y
	s.modes = ModeShowCursor | ModeLineWrap
	s.charsets = CharsetList{}
	s.activeCharset = CharsetG0
	s.colors = make(map[uint8]RGB)
	s.specialColors = make(map[SpecialColor]RGB)
	s.precedingChar = 0
}
