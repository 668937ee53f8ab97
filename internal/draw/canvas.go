package draw

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/physics"
)

// Canvas is a color drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]
	bg             color.RGBA   // Pixels of this color are not rendered

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than the canvas.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Buffer for batching render output
}

// NewCanvas creates a canvas for the given terminal dimensions.
// The canvas has 2x vertical resolution (height*2 sub-pixels).
// No scaling is applied (1:1 mapping).
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the game.
// termWidth/Height are the terminal dimensions given to the canvas.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]color.RGBA, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.Fill(c.bg)
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Fill sets every pixel to bg and makes it the background color.
func (c *Canvas) Fill(bg color.RGBA) {
	c.bg = bg
	for i := range c.pixels {
		c.pixels[i] = bg
	}
}

// Background returns the color set by the last Fill.
func (c *Canvas) Background() color.RGBA {
	return c.bg
}

// At returns the sub-pixel at actual terminal coordinates.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return c.bg
	}
	return c.pixels[y*c.termWidth+x]
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// pixelSpan scales a logical span to pixels. A non-empty span always covers
// at least one pixel so small sprites stay visible.
func pixelSpan(start, size int, scale float64) (int, int) {
	p0 := int(math.Floor(float64(start) * scale))
	p1 := int(math.Floor(float64(start+size) * scale))
	if size > 0 && p1 <= p0 {
		p1 = p0 + 1
	}
	return p0, p1
}

// FillRect fills a logical rectangle with a solid color.
func (c *Canvas) FillRect(r physics.Rect, col color.RGBA) {
	if r.Empty() {
		return
	}
	x0, x1 := pixelSpan(r.X, r.W, c.scaleX)
	y0, y1 := pixelSpan(r.Y, r.H, c.scaleY)
	for y := max(y0, 0); y < min(y1, c.subPixelHeight); y++ {
		for x := max(x0, 0); x < min(x1, c.termWidth); x++ {
			c.pixels[y*c.termWidth+x] = col
		}
	}
}

// Blit draws img scaled into the logical rectangle r using nearest-neighbour
// sampling. Fully transparent pixels are skipped.
func (c *Canvas) Blit(img *asset.Bitmap, r physics.Rect) {
	if img == nil || img.W == 0 || img.H == 0 || r.Empty() {
		return
	}
	x0, x1 := pixelSpan(r.X, r.W, c.scaleX)
	y0, y1 := pixelSpan(r.Y, r.H, c.scaleY)
	dw, dh := x1-x0, y1-y0

	for y := max(y0, 0); y < min(y1, c.subPixelHeight); y++ {
		sy := (y - y0) * img.H / dh
		for x := max(x0, 0); x < min(x1, c.termWidth); x++ {
			sx := (x - x0) * img.W / dw
			p := img.At(sx, sy)
			if p.A == 0 {
				continue
			}
			c.pixels[y*c.termWidth+x] = p
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using 24-bit colored half-block
// characters. Cells whose two pixels are both background are skipped, so
// the screen should be cleared to the background color first.
func (c *Canvas) Render(w io.Writer) error {
	// Reset and pre-grow buffer for better performance
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	var fg, bg color.RGBA
	styled := false
	lastRow, lastCol := -1, -1

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if top == c.bg && bottom == c.bg {
				continue // Skip empty cells
			}

			if row != lastRow || col != lastCol+1 {
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			}
			if !styled || top != fg {
				writeColor(&c.renderBuf, fgCode, top)
				fg = top
			}
			if !styled || bottom != bg {
				writeColor(&c.renderBuf, bgCode, bottom)
				bg = bottom
			}
			styled = true
			c.renderBuf.WriteRune(BlockUpperHalf)
			lastRow, lastCol = row, col
		}
	}
	if styled {
		c.renderBuf.WriteString(resetStyle)
	}

	return writeChunked(w, c.renderBuf.String())
}

// writeChunked writes data in chunks for optimal network flow.
func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the canvas on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer, col color.RGBA) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*6 + c.termHeight*2*12)
	writeColor(&buf, fgCode, col)

	if hasV {
		line := strings.Repeat("─", c.termWidth)
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			// No horizontal borders, side bars span full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	buf.WriteString(resetStyle)
	_, err := io.WriteString(w, buf.String())
	return err
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row).
// Offsets are not included; ChunkWriter applies them.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based terminal position, offsets included,
// to the logical coordinates at the center of that cell. ok is false when
// the position is outside the canvas.
func (c *Canvas) TerminalToLogical(col, row int) (x, y int, ok bool) {
	px := col - 1 - c.offsetCol
	py := row - 1 - c.offsetRow
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.termHeight {
		return 0, 0, false
	}
	x = int((float64(px) + 0.5) / c.scaleX)
	y = int((float64(py)*2 + 1) / c.scaleY)
	return x, y, true
}
