package vtcore

// CellFlags is a bitmask of cell rendering attributes. Each bit is
// independent; BlinkSlow and BlinkFast are mutually exclusive under
// handler policy (sgr_attribute clears one when setting the other).
type CellFlags uint16

const (
	FlagBold CellFlags = 1 << iota
	FlagDim
	FlagItalic
	FlagUnderline
	FlagBlinkSlow
	FlagBlinkFast
	FlagReverse
	FlagHidden
	FlagStrike
	FlagWrapline
	FlagWideChar
	FlagWideCharSpacer
)

// Attributes is the current SGR state: foreground/background color plus the
// independent flag bits. The zero value is not the default — use
// DefaultAttributes.
type Attributes struct {
	Fg    Color
	Bg    Color
	Flags CellFlags
}

// DefaultAttributes is the template every Screen resets to: foreground and
// background both tracking the outer terminal's special colors, no flags.
func DefaultAttributes() Attributes {
	return Attributes{Fg: ColorForeground, Bg: ColorBackground}
}

func (a Attributes) HasFlag(f CellFlags) bool {
	return a.Flags&f != 0
}

func (a *Attributes) SetFlag(f CellFlags) {
	a.Flags |= f
}

func (a *Attributes) ClearFlag(f CellFlags) {
	a.Flags &^= f
}

// Equal reports whether a and other describe the same attribute state.
func (a Attributes) Equal(other Attributes) bool {
	return a.Flags == other.Flags && a.Fg.Equal(other.Fg) && a.Bg.Equal(other.Bg)
}
