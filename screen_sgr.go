package vtcore

// SetTerminalCharAttribute applies one decoded SGR operation to the running
// template, used for every subsequently printed cell. The dispatch adapter
// calls it once per attribute that go-ansicode decodes from a CSI-m
// sequence, in order, matching the run-length semantics SGR specifies (e.g.
// "1;31" sets bold then red, independently).
func (s *Screen) SetTerminalCharAttribute(attr SGRAttribute) {
	attr.Apply(&s.template)
}

// CurrentAttributes returns the template in effect for the next printed
// cell, for response/snapshot callers that need it without touching state.
func (s *Screen) CurrentAttributes() Attributes { return s.template }
