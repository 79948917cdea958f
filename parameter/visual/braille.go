package visual

// BrailleBase is the codepoint of the empty braille pattern
const BrailleBase = '\u2800'

// Braille cell geometry in dots
const (
	BrailleCellWidth  = 2
	BrailleCellHeight = 4
)

// BrailleDotBits maps a dot at [row][col] inside a 2x4 cell to its pattern bit
// The bottom row uses the high bits (dots 7 and 8 of the Unicode layout)
var BrailleDotBits = [BrailleCellHeight][BrailleCellWidth]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}
