package vtcore

// SGRAttributeKind discriminates the typed attribute operations the SGR
// decoder yields.
type SGRAttributeKind int

const (
	SGRReset SGRAttributeKind = iota
	SGRSetFlag
	SGRClearFlag
	SGRForeground
	SGRBackground
)

// SGRAttribute is one decoded CSI-m operation: either Reset, a flag
// set/clear, or a foreground/background color assignment.
type SGRAttribute struct {
	Kind  SGRAttributeKind
	Flag  CellFlags
	Color Color
}

func sgrFlag(flag CellFlags) SGRAttribute {
	return SGRAttribute{Kind: SGRSetFlag, Flag: flag}
}

func sgrClearFlag(flag CellFlags) SGRAttribute {
	return SGRAttribute{Kind: SGRClearFlag, Flag: flag}
}

func sgrFg(c Color) SGRAttribute {
	return SGRAttribute{Kind: SGRForeground, Color: c}
}

func sgrBg(c Color) SGRAttribute {
	return SGRAttribute{Kind: SGRBackground, Color: c}
}

// paramIter is a pull iterator over CSI numeric parameters, letting
// parseExtendedColor consume a variable-length sub-sequence (38;5;n or
// 38;2;r;g;b) from the same stream the outer loop is walking.
type paramIter struct {
	params []int64
	pos    int
}

func (p *paramIter) next() (int64, bool) {
	if p.pos >= len(p.params) {
		return 0, false
	}
	v := p.params[p.pos]
	p.pos++
	return v, true
}

// parseExtendedColor decodes the 38/48 sub-sequence: ";5;n" for indexed
// (n in 0..=255) or ";2;r;g;b" for truecolor (each in 0..=255). An
// out-of-range component aborts just this one attribute, not the stream.
func parseExtendedColor(p *paramIter) (Color, bool) {
	mode, ok := p.next()
	if !ok {
		return Color{}, false
	}
	switch mode {
	case 2:
		r, ok1 := p.next()
		g, ok2 := p.next()
		b, ok3 := p.next()
		if !ok1 || !ok2 || !ok3 || !inByteRange(r) || !inByteRange(g) || !inByteRange(b) {
			return Color{}, false
		}
		return RGBColor(uint8(r), uint8(g), uint8(b)), true
	case 5:
		idx, ok := p.next()
		if !ok || !inByteRange(idx) {
			return Color{}, false
		}
		return IndexedColor(uint8(idx)), true
	default:
		return Color{}, false
	}
}

func inByteRange(v int64) bool {
	return v >= 0 && v < 256
}

// ParseSGRAttributes decodes a full CSI-m parameter list into a sequence of
// typed attribute operations, exactly one per recognized parameter run, in
// input order. Unrecognized parameters are skipped silently.
func ParseSGRAttributes(params []int64) []SGRAttribute {
	it := paramIter{params: params}
	var out []SGRAttribute
	for {
		param, ok := it.next()
		if !ok {
			break
		}
		switch param {
		case 0:
			out = append(out, SGRAttribute{Kind: SGRReset})
		case 1:
			out = append(out, sgrFlag(FlagBold))
		case 2:
			out = append(out, sgrFlag(FlagDim))
		case 3:
			out = append(out, sgrFlag(FlagItalic))
		case 4:
			out = append(out, sgrFlag(FlagUnderline))
		case 5:
			out = append(out, sgrFlag(FlagBlinkSlow))
		case 6:
			out = append(out, sgrFlag(FlagBlinkFast))
		case 7:
			out = append(out, sgrFlag(FlagReverse))
		case 8:
			out = append(out, sgrFlag(FlagHidden))
		case 9:
			out = append(out, sgrFlag(FlagStrike))
		case 21:
			out = append(out, sgrClearFlag(FlagBold))
		case 22:
			out = append(out, sgrClearFlag(FlagBold|FlagDim))
		case 23:
			out = append(out, sgrClearFlag(FlagItalic))
		case 24:
			out = append(out, sgrClearFlag(FlagUnderline))
		case 25:
			out = append(out, sgrClearFlag(FlagBlinkSlow|FlagBlinkFast))
		case 27:
			out = append(out, sgrClearFlag(FlagReverse))
		case 28:
			out = append(out, sgrClearFlag(FlagHidden))
		case 29:
			out = append(out, sgrClearFlag(FlagStrike))
		case 30, 31, 32, 33, 34, 35, 36, 37:
			out = append(out, sgrFg(IndexedColor(uint8(param-30))))
		case 38:
			if c, ok := parseExtendedColor(&it); ok {
				out = append(out, sgrFg(c))
			}
		case 39:
			out = append(out, sgrFg(ColorForeground))
		case 40, 41, 42, 43, 44, 45, 46, 47:
			out = append(out, sgrBg(IndexedColor(uint8(param-40))))
		case 48:
			if c, ok := parseExtendedColor(&it); ok {
				out = append(out, sgrBg(c))
			}
		case 49:
			out = append(out, sgrBg(ColorBackground))
		case 90, 91, 92, 93, 94, 95, 96, 97:
			out = append(out, sgrFg(IndexedColor(uint8(param-90+8))))
		case 100, 101, 102, 103, 104, 105, 106, 107:
			out = append(out, sgrBg(IndexedColor(uint8(param-100+8))))
		}
	}
	return out
}

// Apply mutates template according to the decoded operation.
func (a SGRAttribute) Apply(template *Attributes) {
	switch a.Kind {
	case SGRReset:
		*template = DefaultAttributes()
	case SGRSetFlag:
		template.SetFlag(a.Flag)
		if a.Flag == FlagBlinkSlow {
			template.ClearFlag(FlagBlinkFast)
		} else if a.Flag == FlagBlinkFast {
			template.ClearFlag(FlagBlinkSlow)
		}
	case SGRClearFlag:
		template.ClearFlag(a.Flag)
	case SGRForeground:
		template.Fg = a.Color
	case SGRBackground:
		template.Bg = a.Color
	}
}
