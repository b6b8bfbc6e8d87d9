// Package renderer turns dashboard snapshots and reports into markdown
// documents for the terminal.
package renderer

import "strings"

// progressBar renders an unclamped percentage as a fixed-width text gauge.
// Overshoot past 100% fills the bar completely, the numeric label tells the
// rest.
func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
