package ui

import "strings"

// digitHeight is the number of rows in the big readout glyphs.
const digitHeight = 5

// digitGlyphs maps the characters FormatHMS can emit to block glyphs.
var digitGlyphs = map[rune][digitHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"  █", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {"   ", " ▀ ", "   ", " ▀ ", "   "},
}

// renderBigDigits renders a clock string (digits and colons) as block
// glyphs. Unknown characters render as blanks so a surprise never panics
// the draw path.
func renderBigDigits(text string) string {
	rows := make([]string, digitHeight)
	for i, r := range text {
		glyph, ok := digitGlyphs[r]
		if !ok {
			glyph = [digitHeight]string{"   ", "   ", "   ", "   ", "   "}
		}
		for row := 0; row < digitHeight; row++ {
			if i > 0 {
				rows[row] += " "
			}
			rows[row] += glyph[row]
		}
	}
	return strings.Join(rows, "\n")
}
