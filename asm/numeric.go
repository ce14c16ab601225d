package asm

import "fmt"

// hexWidth returns the number of hex digits needed to represent n bytes,
// two digits per byte. Every object-code string the encoder emits is
// padded to this width.
func hexWidth(bytes int) int {
	return bytes * 2
}

// formatHex zero-pads v to width hex digits, upper-case. This is the
// only place besides Constant.hexCode where a numeric value turns into
// its textual form; everything upstream of it carries plain integers.
func formatHex(v uint32, width int) string {
	return fmt.Sprintf("%0*X", width, v)
}
