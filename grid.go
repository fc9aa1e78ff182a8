package vtcore

// Grid is a dense, fixed-size row-major cell store plus the per-column
// tabstop vector. It is created with a fixed size and never resized by the
// core (resize is an out-of-scope concern per the host runtime).
type Grid struct {
	size    Point
	cells   [][]Cell
	tabStop []bool
	wrapped []bool
}

// NewGrid creates a size.Y x size.X grid, every cell blank under the given
// template, with tab stops every 8 columns.
func NewGrid(size Point, template Attributes) *Grid {
	g := &Grid{
		size:    size,
		cells:   make([][]Cell, size.Y),
		tabStop: make([]bool, size.X),
		wrapped: make([]bool, size.Y),
	}
	for y := range g.cells {
		g.cells[y] = make([]Cell, size.X)
		for x := range g.cells[y] {
			g.cells[y][x] = NewCell(template)
		}
	}
	for x := 0; x < size.X; x += 8 {
		g.tabStop[x] = true
	}
	return g
}

func (g *Grid) Size() Point { return g.size }

// Cell returns the cell at p and true, or the zero Cell and false if p is
// out of bounds. Out-of-bounds lookups never fault.
func (g *Grid) Cell(p Point) (Cell, bool) {
	if !g.inBounds(p) {
		return Cell{}, false
	}
	return g.cells[p.Y][p.X], true
}

// SetCell writes a cell at p. Out-of-bounds writes are silently dropped.
func (g *Grid) SetCell(p Point, c Cell) {
	if !g.inBounds(p) {
		return
	}
	g.cells[p.Y][p.X] = c
}

func (g *Grid) inBounds(p Point) bool {
	return p.X >= 0 && p.X < g.size.X && p.Y >= 0 && p.Y < g.size.Y
}

// ClearRange resets every cell on row y with x in [startX, endX) to blank
// under template. Out-of-range bounds are clamped.
func (g *Grid) ClearRange(y, startX, endX int, template Attributes) {
	if y < 0 || y >= g.size.Y {
		return
	}
	if startX < 0 {
		startX = 0
	}
	if endX > g.size.X {
		endX = g.size.X
	}
	for x := startX; x < endX; x++ {
		g.cells[y][x].Reset(template)
	}
}

func (g *Grid) ClearRow(y int, template Attributes) {
	g.ClearRange(y, 0, g.size.X, template)
}

func (g *Grid) ClearAll(template Attributes) {
	for y := 0; y < g.size.Y; y++ {
		g.ClearRow(y, template)
	}
}

// ScrollUp shifts rows [top,bottom) up by n, discarding the rows scrolled
// off the top and filling the bottom n rows with blanks under template. No
// scrollback retention (explicit Non-goal).
func (g *Grid) ScrollUp(top, bottom, n int, template Attributes) {
	top, bottom, n = g.clampRegion(top, bottom, n)
	if n <= 0 {
		return
	}
	for y := top; y < bottom-n; y++ {
		g.cells[y], g.wrapped[y] = g.cells[y+n], g.wrapped[y+n]
	}
	for y := bottom - n; y < bottom; y++ {
		g.cells[y] = freshRow(g.size.X, template)
		g.wrapped[y] = false
	}
}

// ScrollDown shifts rows [top,bottom) down by n, filling the top n rows
// with blanks under template.
func (g *Grid) ScrollDown(top, bottom, n int, template Attributes) {
	top, bottom, n = g.clampRegion(top, bottom, n)
	if n <= 0 {
		return
	}
	for y := bottom - 1; y >= top+n; y-- {
		g.cells[y], g.wrapped[y] = g.cells[y-n], g.wrapped[y-n]
	}
	for y := top; y < top+n; y++ {
		g.cells[y] = freshRow(g.size.X, template)
		g.wrapped[y] = false
	}
}

func (g *Grid) clampRegion(top, bottom, n int) (int, int, int) {
	if top < 0 {
		top = 0
	}
	if bottom > g.size.Y {
		bottom = g.size.Y
	}
	if n <= 0 || top >= bottom {
		return top, bottom, 0
	}
	if n > bottom-top {
		n = bottom - top
	}
	return top, bottom, n
}

func freshRow(cols int, template Attributes) []Cell {
	row := make([]Cell, cols)
	for x := range row {
		row[x] = NewCell(template)
	}
	return row
}

// InsertBlanks shifts cells on row y from col rightward by n, discarding
// cells pushed past the right edge and filling the opened columns blank.
func (g *Grid) InsertBlanks(y, col, n int, template Attributes) {
	if y < 0 || y >= g.size.Y || col < 0 || col >= g.size.X || n <= 0 {
		return
	}
	for x := g.size.X - 1; x >= col+n; x-- {
		g.cells[y][x] = g.cells[y][x-n]
	}
	end := col + n
	if end > g.size.X {
		end = g.size.X
	}
	for x := col; x < end; x++ {
		g.cells[y][x].Reset(template)
	}
}

// DeleteChars shifts cells on row y from col+n leftward to col, filling the
// vacated right edge blank.
func (g *Grid) DeleteChars(y, col, n int, template Attributes) {
	if y < 0 || y >= g.size.Y || col < 0 || col >= g.size.X || n <= 0 {
		return
	}
	for x := col; x < g.size.X-n; x++ {
		g.cells[y][x] = g.cells[y][x+n]
	}
	start := g.size.X - n
	if start < col {
		start = col
	}
	for x := start; x < g.size.X; x++ {
		g.cells[y][x].Reset(template)
	}
}

// EraseChars overwrites n cells starting at (col,y) with blanks, preserving
// template attributes, without shifting the rest of the line.
func (g *Grid) EraseChars(y, col, n int, template Attributes) {
	if y < 0 || y >= g.size.Y || n <= 0 {
		return
	}
	end := col + n
	if end > g.size.X {
		end = g.size.X
	}
	for x := col; x < end; x++ {
		if x < 0 {
			continue
		}
		g.cells[y][x].Reset(template)
	}
}

func (g *Grid) SetTabStop(col int) {
	if col >= 0 && col < g.size.X {
		g.tabStop[col] = true
	}
}

func (g *Grid) ClearTabStop(col int) {
	if col >= 0 && col < g.size.X {
		g.tabStop[col] = false
	}
}

func (g *Grid) ClearAllTabStops() {
	for i := range g.tabStop {
		g.tabStop[i] = false
	}
}

// NextTabStop returns the column of the next set tabstop strictly after
// col, or the last column if none remains.
func (g *Grid) NextTabStop(col int) int {
	for x := col + 1; x < g.size.X; x++ {
		if g.tabStop[x] {
			return x
		}
	}
	return g.size.X - 1
}

// PrevTabStop returns the column of the previous set tabstop strictly
// before col, or 0 if none remains.
func (g *Grid) PrevTabStop(col int) int {
	for x := col - 1; x >= 0; x-- {
		if g.tabStop[x] {
			return x
		}
	}
	return 0
}

// FillWithE overwrites every cell with 'E' under default attributes, for
// the DECALN alignment test pattern.
func (g *Grid) FillWithE() {
	for y := 0; y < g.size.Y; y++ {
		for x := 0; x < g.size.X; x++ {
			g.cells[y][x] = Cell{Char: 'E', HasChar: true, Attributes: DefaultAttributes()}
		}
	}
}

func (g *Grid) IsWrapped(y int) bool {
	if y < 0 || y >= g.size.Y {
		return false
	}
	return g.wrapped[y]
}

func (g *Grid) SetWrapped(y int, wrapped bool) {
	if y < 0 || y >= g.size.Y {
		return
	}
	g.wrapped[y] = wrapped
}
