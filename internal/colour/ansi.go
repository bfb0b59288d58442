package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput suppresses ANSI sequences globally. The CLI sets it
// when stdout is not a terminal.
var DisableColourOutput = false

// Preview returns an ANSI-coloured swatch for a colour.
// Width specifies how many characters wide the block should be.
// Uses background colour with spaces for a solid block.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if DisableColourOutput {
		return strings.Repeat(" ", width)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a swatch with a text overlay. The text colour is
// chosen for contrast against the swatch background.
func PreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if DisableColourOutput {
		return padCenter(text, width)
	}

	// Light backgrounds get dark text and vice versa.
	var fgR, fgG, fgB uint8
	if HexToHSL(c.Hex()).L > 50 {
		fgR, fgG, fgB = 0, 0, 0
	} else {
		fgR, fgG, fgB = 255, 255, 255
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgR, fgG, fgB, ansiSuffix)
	return bg + fg + padCenter(text, width) + ansiReset
}

// FormatWithLabel formats a colour as a swatch with its hex code overlaid,
// followed by the label.
func FormatWithLabel(rgb RGB, label string, width int) string {
	return fmt.Sprintf("%s  %s", PreviewWithText(rgb, rgb.Hex(), width), label)
}

// padCenter pads or truncates text to exactly width characters.
func padCenter(text string, width int) string {
	if len(text) > width {
		return text[:width]
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}
