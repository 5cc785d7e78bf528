package utils

import "github.com/mattn/go-runewidth"

// TruncateString truncates a string to the specified display width,
// appending an ellipsis when anything was cut.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads a string with spaces to the specified display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}
