package vtcore

// CharsetIndex identifies one of the four designatable character-set slots.
type CharsetIndex int

const (
	CharsetG0 CharsetIndex = iota
	CharsetG1
	CharsetG2
	CharsetG3
)

// Charset is a standard or common character set designatable as G0-G3.
type Charset int

const (
	CharsetAscii Charset = iota
	CharsetSpecial
)

// specialCharsetMap is the full DEC line-drawing/symbol table for the
// Special charset, authoritative per the external interfaces table.
var specialCharsetMap = map[rune]rune{
	'`':  '◆',
	'a':  '▒',
	'b':  '\t',
	'c':  '\u000c',
	'd':  '\r',
	'e':  '\n',
	'f':  '°',
	'g':  '±',
	'h':  '\u2424',
	'i':  '\u000b',
	'j':  '┘',
	'k':  '┐',
	'l':  '┌',
	'm':  '└',
	'n':  '┼',
	'o':  '⎺',
	'p':  '⎻',
	'q':  '─',
	'r':  '⎼',
	's':  '⎽',
	't':  '├',
	'u':  '┤',
	'v':  '┴',
	'w':  '┬',
	'x':  '│',
	'y':  '≤',
	'z':  '≥',
	'{':  'π',
	'|':  '≠',
	'}':  '£',
	'~':  '·',
}

// Map translates a rune through the charset. Ascii is identity; Special is
// total (defined for every rune, identity outside the table).
func (c Charset) Map(r rune) rune {
	if c != CharsetSpecial {
		return r
	}
	if mapped, ok := specialCharsetMap[r]; ok {
		return mapped
	}
	return r
}

// CharsetList holds the four designatable slots, G0 defaulting active.
type CharsetList [4]Charset

func (l CharsetList) Get(idx CharsetIndex) Charset {
	return l[idx]
}

func (l *CharsetList) Set(idx CharsetIndex, c Charset) {
	l[idx] = c
}
