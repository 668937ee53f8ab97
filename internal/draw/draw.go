// Package draw renders to ANSI terminals: a scaled color canvas drawn with
// half-block characters and helpers for chunked output and cursor control.
package draw

import (
	"image/color"
	"strconv"
	"strings"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

const (
	fgCode     = 38
	bgCode     = 48
	resetStyle = "\033[0m"
)

// writeColor appends a 24-bit SGR color sequence for the foreground (38) or background (48).
func writeColor(b *strings.Builder, code int, c color.RGBA) {
	var num [4]byte
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(num[:0], int64(code), 10))
	b.WriteString(";2;")
	b.Write(strconv.AppendInt(num[:0], int64(c.R), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(num[:0], int64(c.G), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(num[:0], int64(c.B), 10))
	b.WriteByte('m')
}

// ColorSeq returns the SGR sequence selecting fg on bg.
func ColorSeq(fg, bg color.RGBA) string {
	var b strings.Builder
	writeColor(&b, fgCode, fg)
	writeColor(&b, bgCode, bg)
	return b.String()
}

// ResetSeq returns the SGR sequence restoring the default colors.
func ResetSeq() string {
	return resetStyle
}
