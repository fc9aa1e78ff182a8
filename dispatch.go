package vtcore

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// Dispatch adapts a *Screen to ansicode.Handler, the callback interface the
// VT state machine drives. It is the "Performer" of the parser/handler
// split: every method here does the minimal translation from an ansicode
// enum/struct into the Screen's own vocabulary and forwards the call.
//
// Operations outside §6's table — hyperlinks, the keyboard-mode stack,
// modifyOtherKeys reporting, sixel/kitty graphics, and privacy-message/
// start-of-string/application-command side channels — are accepted (to
// satisfy the interface) and intentionally discarded.
type Dispatch struct {
	Screen *Screen
}

func NewDispatch(s *Screen) *Dispatch { return &Dispatch{Screen: s} }

var _ ansicode.Handler = (*Dispatch)(nil)

func (d *Dispatch) Input(r rune)      { d.Screen.Input(r) }
func (d *Dispatch) Backspace()        { d.Screen.Backspace() }
func (d *Dispatch) Bell()             { d.Screen.Bell() }
func (d *Dispatch) CarriageReturn()   { d.Screen.CarriageReturn() }
func (d *Dispatch) LineFeed()         { d.Screen.LineFeed() }
func (d *Dispatch) Substitute()       { d.Screen.Substitute() }
func (d *Dispatch) Decaln()           { d.Screen.Decaln() }
func (d *Dispatch) ReverseIndex()     { d.Screen.ReverseIndex() }
func (d *Dispatch) HorizontalTabSet() { d.Screen.HorizontalTabSet() }

func (d *Dispatch) Goto(row, col int)   { d.Screen.Goto(Point{X: col, Y: row}) }
func (d *Dispatch) GotoCol(col int)     { d.Screen.GotoCol(col) }
func (d *Dispatch) GotoLine(row int)    { d.Screen.GotoLine(row) }
func (d *Dispatch) MoveForward(n int)   { d.Screen.MoveForward(n) }
func (d *Dispatch) MoveBackward(n int)  { d.Screen.MoveBackward(n) }
func (d *Dispatch) MoveDown(n int)      { d.Screen.MoveDown(n) }
func (d *Dispatch) MoveUp(n int)        { d.Screen.MoveUp(n) }
func (d *Dispatch) MoveDownCr(n int)    { d.Screen.MoveDownCr(n) }
func (d *Dispatch) MoveUpCr(n int)      { d.Screen.MoveUpCr(n) }
func (d *Dispatch) MoveForwardTabs(n int)  { d.Screen.MoveForwardTabs(n) }
func (d *Dispatch) MoveBackwardTabs(n int) { d.Screen.MoveBackwardTabs(n) }
func (d *Dispatch) Tab(n int)               { d.Screen.Tab(n) }

func (d *Dispatch) Repeat(n int) { d.Screen.Repeat(n) }

func (d *Dispatch) InsertBlank(n int)      { d.Screen.InsertBlank(n) }
func (d *Dispatch) InsertBlankLines(n int) { d.Screen.InsertBlankLines(n) }
func (d *Dispatch) DeleteChars(n int)      { d.Screen.DeleteChars(n) }
func (d *Dispatch) DeleteLines(n int)      { d.Screen.DeleteLines(n) }
func (d *Dispatch) EraseChars(n int)       { d.Screen.EraseChars(n) }

func (d *Dispatch) ScrollUp(n int)   { d.Screen.ScrollUp(n) }
func (d *Dispatch) ScrollDown(n int) { d.Screen.ScrollDown(n) }

func (d *Dispatch) ClearScreen(mode ansicode.ClearMode) {
	switch mode {
	case ansicode.ClearModeBelow:
		d.Screen.ClearScreen(ClearBelow)
	case ansicode.ClearModeAbove:
		d.Screen.ClearScreen(ClearAbove)
	case ansicode.ClearModeAll:
		d.Screen.ClearScreen(ClearAll)
	case ansicode.ClearModeSaved:
		d.Screen.ClearScreen(ClearSaved)
	}
}

func (d *Dispatch) ClearLine(mode ansicode.LineClearMode) {
	switch mode {
	case ansicode.LineClearModeRight:
		d.Screen.ClearLine(ClearLineRight)
	case ansicode.LineClearModeLeft:
		d.Screen.ClearLine(ClearLineLeft)
	case ansicode.LineClearModeAll:
		d.Screen.ClearLine(ClearLineAll)
	}
}

func (d *Dispatch) ClearTabs(mode ansicode.TabulationClearMode) {
	switch mode {
	case ansicode.TabulationClearModeCurrent:
		d.Screen.ClearTabs(TabClearCurrent)
	case ansicode.TabulationClearModeAll:
		d.Screen.ClearTabs(TabClearAll)
	}
}

func (d *Dispatch) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {
	d.Screen.ConfigureCharset(CharsetIndex(index), Charset(charset))
}

func (d *Dispatch) SetActiveCharset(n int) { d.Screen.SetActiveCharset(CharsetIndex(n)) }

func (d *Dispatch) SaveCursorPosition()    { d.Screen.SaveCursorPosition() }
func (d *Dispatch) RestoreCursorPosition() { d.Screen.RestoreCursorPosition() }
func (d *Dispatch) ResetState()            { d.Screen.ResetState() }

func (d *Dispatch) SetScrollingRegion(top, bottom int) { d.Screen.SetScrollingRegion(top, bottom) }

func (d *Dispatch) SetCursorStyle(style ansicode.CursorStyle) {
	d.Screen.SetCursorStyle(CursorStyle(style))
}

func (d *Dispatch) SetMode(mode ansicode.TerminalMode) {
	if m, ok := translateMode(mode); ok {
		d.Screen.SetMode(m)
	}
}

func (d *Dispatch) UnsetMode(mode ansicode.TerminalMode) {
	if m, ok := translateMode(mode); ok {
		d.Screen.UnsetMode(m)
	}
}

func translateMode(mode ansicode.TerminalMode) (TerminalMode, bool) {
	switch mode {
	case ansicode.TerminalModeCursorKeys:
		return ModeCursorKeys, true
	case ansicode.TerminalModeColumnMode:
		return ModeColumnMode, true
	case ansicode.TerminalModeInsert:
		return ModeInsert, true
	case ansicode.TerminalModeOrigin:
		return ModeOrigin, true
	case ansicode.TerminalModeLineWrap:
		return ModeLineWrap, true
	case ansicode.TerminalModeBlinkingCursor:
		return ModeBlinkingCursor, true
	case ansicode.TerminalModeLineFeedNewLine:
		return ModeLineFeedNewLine, true
	case ansicode.TerminalModeShowCursor:
		return ModeShowCursor, true
	case ansicode.TerminalModeReportMouseClicks:
		return ModeReportMouseClicks, true
	case ansicode.TerminalModeReportCellMouseMotion:
		return ModeReportCellMouseMotion, true
	case ansicode.TerminalModeReportAllMouseMotion:
		return ModeReportAllMouseMotion, true
	case ansicode.TerminalModeReportFocusInOut:
		return ModeReportFocusInOut, true
	case ansicode.TerminalModeUTF8Mouse:
		return ModeUTF8Mouse, true
	case ansicode.TerminalModeSGRMouse:
		return ModeSGRMouse, true
	case ansicode.TerminalModeAlternateScroll:
		return ModeAlternateScroll, true
	case ansicode.TerminalModeSwapScreenAndSetRestoreCursor:
		return ModeSwapScreenAndSetRestoreCursor, true
	case ansicode.TerminalModeBracketedPaste:
		return ModeBracketedPaste, true
	default:
		return 0, false
	}
}

func (d *Dispatch) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	sgr, ok := translateCharAttribute(attr)
	if !ok {
		return
	}
	d.Screen.SetTerminalCharAttribute(sgr)
}

func translateCharAttribute(attr ansicode.TerminalCharAttribute) (SGRAttribute, bool) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		return SGRAttribute{Kind: SGRReset}, true
	case ansicode.CharAttributeBold:
		return sgrFlag(FlagBold), true
	case ansicode.CharAttributeDim:
		return sgrFlag(FlagDim), true
	case ansicode.CharAttributeItalic:
		return sgrFlag(FlagItalic), true
	case ansicode.CharAttributeUnderline:
		return sgrFlag(FlagUnderline), true
	case ansicode.CharAttributeBlinkSlow:
		return sgrFlag(FlagBlinkSlow), true
	case ansicode.CharAttributeBlinkFast:
		return sgrFlag(FlagBlinkFast), true
	case ansicode.CharAttributeReverse:
		return sgrFlag(FlagReverse), true
	case ansicode.CharAttributeHidden:
		return sgrFlag(FlagHidden), true
	case ansicode.CharAttributeStrike:
		return sgrFlag(FlagStrike), true
	case ansicode.CharAttributeCancelBold:
		return sgrClearFlag(FlagBold), true
	case ansicode.CharAttributeCancelBoldDim:
		return sgrClearFlag(FlagBold | FlagDim), true
	case ansicode.CharAttributeCancelItalic:
		return sgrClearFlag(FlagItalic), true
	case ansicode.CharAttributeCancelUnderline:
		return sgrClearFlag(FlagUnderline), true
	case ansicode.CharAttributeCancelBlink:
		return sgrClearFlag(FlagBlinkSlow | FlagBlinkFast), true
	case ansicode.CharAttributeCancelReverse:
		return sgrClearFlag(FlagReverse), true
	case ansicode.CharAttributeCancelHidden:
		return sgrClearFlag(FlagHidden), true
	case ansicode.CharAttributeCancelStrike:
		return sgrClearFlag(FlagStrike), true
	case ansicode.CharAttributeForeground:
		return sgrFg(resolveAnsicodeColor(attr, ColorForeground)), true
	case ansicode.CharAttributeBackground:
		return sgrBg(resolveAnsicodeColor(attr, ColorBackground)), true
	default:
		return SGRAttribute{}, false
	}
}

// resolveAnsicodeColor converts whichever color form go-ansicode decoded
// (truecolor, indexed, or named) into our Color sum type, falling back to
// the given default when none was provided.
func resolveAnsicodeColor(attr ansicode.TerminalCharAttribute, def Color) Color {
	if attr.RGBColor != nil {
		return RGBColor(attr.RGBColor.R, attr.RGBColor.G, attr.RGBColor.B)
	}
	if attr.IndexedColor != nil {
		return IndexedColor(attr.IndexedColor.Index)
	}
	return def
}

func (d *Dispatch) SetTitle(title string) { d.Screen.SetTitle(title) }
func (d *Dispatch) PushTitle()             { d.Screen.PushTitle() }
func (d *Dispatch) PopTitle()              { d.Screen.PopTitle() }

func (d *Dispatch) SetWorkingDirectory(uri string) { d.Screen.SetWorkingDirectory(uri) }
func (d *Dispatch) WorkingDirectory() string       { return d.Screen.Path() }

func (d *Dispatch) ClipboardLoad(clipboard byte, terminator string) {
	d.Screen.ClipboardLoad(ClipboardKind(clipboard), terminator)
}

func (d *Dispatch) ClipboardStore(clipboard byte, data []byte) {
	d.Screen.ClipboardStore(ClipboardKind(clipboard), data)
}

func (d *Dispatch) SetColor(index int, c color.Color) {
	d.Screen.SetColor(index, toRGB(c))
}

func (d *Dispatch) ResetColor(index int) { d.Screen.ResetColor(index) }

func (d *Dispatch) SetDynamicColor(prefix string, index int, terminator string) {
	var rgb RGB
	var ok bool
	switch index {
	case dynamicColorForeground:
		rgb, ok = d.Screen.SpecialColorAt(SpecialForeground)
	case dynamicColorBackground:
		rgb, ok = d.Screen.SpecialColorAt(SpecialBackground)
	case dynamicColorCursor:
		rgb, ok = d.Screen.SpecialColorAt(SpecialCursor)
	default:
		rgb, ok = d.Screen.ColorAt(uint8(index))
	}
	if !ok {
		return
	}
	d.Screen.writeResponse("\x1b]" + prefix + ";rgb:" + hex2(rgb.R) + "/" + hex2(rgb.G) + "/" + hex2(rgb.B) + terminator)
}

// dynamicColorForeground/Background/Cursor mirror the sentinel indices the
// teacher's color map used for the three special OSC 10/11/12 slots,
// distinct from the 0-255 indexed palette OSC 4 addresses.
const (
	dynamicColorForeground = -1
	dynamicColorBackground = -2
	dynamicColorCursor     = -3
)

func hex2(v uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0xf]})
}

func toRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func (d *Dispatch) DeviceStatus(n int)        { d.Screen.DeviceStatus(n) }
func (d *Dispatch) IdentifyTerminal(b byte)   { d.Screen.IdentifyTerminal(b) }
func (d *Dispatch) TextAreaSizeChars()        { d.Screen.TextAreaSizeChars() }
func (d *Dispatch) TextAreaSizePixels()       { d.Screen.TextAreaSizePixels() }

func (d *Dispatch) SetKeypadApplicationMode()   {}
func (d *Dispatch) UnsetKeypadApplicationMode() {}

func (d *Dispatch) SetHyperlink(hyperlink *ansicode.Hyperlink) {}

func (d *Dispatch) PushKeyboardMode(mode ansicode.KeyboardMode)  {}
func (d *Dispatch) PopKeyboardMode(n int)                        {}
func (d *Dispatch) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
}
func (d *Dispatch) ReportKeyboardMode()                          {}
func (d *Dispatch) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}
func (d *Dispatch) ReportModifyOtherKeys()                       {}

func (d *Dispatch) ApplicationCommandReceived(data []byte) {}
func (d *Dispatch) PrivacyMessageReceived(data []byte)      {}
func (d *Dispatch) StartOfStringReceived(data []byte)       {}
func (d *Dispatch) SixelReceived(params [][]uint16, data []byte) {}
func (d *Dispatch) CellSizePixels()                              {}
