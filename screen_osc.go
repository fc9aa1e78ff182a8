package vtcore

import "encoding/base64"

// SetTitle implements OSC 0/2 (icon name + window title, and window title).
func (s *Screen) SetTitle(title string) {
	s.title = title
	s.title2.SetTitle(title)
}

// PushTitle implements XTWINOPS 22: push the title onto a stack.
func (s *Screen) PushTitle() {
	s.titleStack = append(s.titleStack, s.title)
	s.title2.PushTitle()
}

// PopTitle implements XTWINOPS 23: pop the title stack, a no-op if empty.
func (s *Screen) PopTitle() {
	if len(s.titleStack) == 0 {
		return
	}
	last := len(s.titleStack) - 1
	s.title = s.titleStack[last]
	s.titleStack = s.titleStack[:last]
	s.title2.PopTitle()
}

// SetWorkingDirectory implements OSC 7.
func (s *Screen) SetWorkingDirectory(uri string) { s.path = uri }

// ClipboardLoad implements the read half of OSC 52: the clipboard contents
// are base64-encoded and echoed back as OSC 52;kind;data, terminated the
// same way the request was (BEL or ST).
func (s *Screen) ClipboardLoad(kind ClipboardKind, terminator string) {
	content := s.clipboard.Read(kind)
	if content == "" {
		return
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	s.writeResponse("\x1b]52;" + string(kind) + ";" + encoded + terminator)
}

// ClipboardStore implements the write half of OSC 52.
func (s *Screen) ClipboardStore(kind ClipboardKind, data []byte) {
	s.clipboard.Write(kind, data)
}

// SetColor implements OSC 4: assign palette index 0-255 an explicit RGB
// value. Indices outside that range are ignored; the special color slots
// are set through SetSpecialColor.
func (s *Screen) SetColor(index int, rgb RGB) {
	if index >= 0 && index < 256 {
		s.colors[uint8(index)] = rgb
	}
}

func (s *Screen) SetSpecialColor(which SpecialColor, rgb RGB) {
	s.specialColors[which] = rgb
}

// ResetColor implements OSC 104: drop a palette index's override,
// reverting it to the renderer's default, one call per listed index. A
// negative index resets every index currently overridden; an index above
// 255 is ignored. The special color slots are reset through
// ResetSpecialColor.
func (s *Screen) ResetColor(index int) {
	if index < 0 {
		for k := range s.colors {
			delete(s.colors, k)
		}
		return
	}
	if index > 255 {
		return
	}
	delete(s.colors, uint8(index))
}

func (s *Screen) ResetSpecialColor(which SpecialColor) {
	delete(s.specialColors, which)
}

// ColorAt returns the override for a palette index and whether one exists.
func (s *Screen) ColorAt(index uint8) (RGB, bool) {
	rgb, ok := s.colors[index]
	return rgb, ok
}

// SpecialColorAt returns the override for a special color slot.
func (s *Screen) SpecialColorAt(which SpecialColor) (RGB, bool) {
	rgb, ok := s.specialColors[which]
	return rgb, ok
}
