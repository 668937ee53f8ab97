package loop

import (
	"fmt"
	"image/color"
	"io"
	"unicode/utf8"

	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/game"
	"github.com/tomz197/alien-invasion/internal/physics"
	"github.com/tomz197/alien-invasion/internal/stats"
)

// borderColor frames the canvas on terminals larger than it.
var borderColor = color.RGBA{90, 90, 90, 255}

// overlayLineHeight is the logical distance between leaderboard lines.
const overlayLineHeight = 30

type textItem struct {
	x, y   int
	text   string
	anchor stats.Anchor
	color  color.RGBA
}

// termSurface draws a frame onto the canvas and writes it to the terminal.
// Text is placed on terminal cells after the canvas is rendered.
type termSurface struct {
	canvas *draw.Canvas
	out    *draw.ChunkWriter
	texts  []textItem

	overlay     []string // Extra centered lines, e.g. the leaderboard
	overlayY    int      // Logical vertical middle of the first overlay line
	showOverlay bool

	pointer      bool // Requested pointer visibility
	mouseOn      bool // Mouse reporting currently enabled on the terminal
	mouseApplied bool // mouseOn reflects the terminal state
}

var _ game.Surface = (*termSurface)(nil)

func newTermSurface(canvas *draw.Canvas, w io.Writer) *termSurface {
	return &termSurface{
		canvas: canvas,
		out:    draw.NewChunkWriter(w, canvas.OffsetCol(), canvas.OffsetRow()),
	}
}

// setOverlay sets lines drawn centered under y on the next frames.
func (s *termSurface) setOverlay(y int, lines []string) {
	s.overlayY = y
	s.overlay = lines
}

func (s *termSurface) Fill(c color.RGBA) {
	s.canvas.Fill(c)
	s.texts = s.texts[:0]
}

func (s *termSurface) Blit(img *asset.Bitmap, r physics.Rect) {
	s.canvas.Blit(img, r)
}

func (s *termSurface) FillRect(r physics.Rect, c color.RGBA) {
	s.canvas.FillRect(r, c)
}

func (s *termSurface) DrawText(x, y int, text string, anchor stats.Anchor, c color.RGBA) {
	s.texts = append(s.texts, textItem{x: x, y: y, text: text, anchor: anchor, color: c})
}

func (s *termSurface) SetPointerVisible(visible bool) {
	s.pointer = visible
}

// Present writes the frame: background clear, canvas, border, text, then
// any change of mouse reporting.
func (s *termSurface) Present() error {
	s.out.SetOffset(s.canvas.OffsetCol(), s.canvas.OffsetRow())

	draw.ClearScreenColor(s.out, s.canvas.Background())
	if err := s.canvas.Render(s.out); err != nil {
		return fmt.Errorf("render canvas: %w", err)
	}
	if err := s.canvas.RenderBorder(s.out, borderColor); err != nil {
		return fmt.Errorf("render border: %w", err)
	}

	for _, t := range s.texts {
		s.writeText(t)
	}
	centerX := int(s.canvas.LogicalWidth() / 2)
	for i, line := range s.overlay {
		if !s.showOverlay {
			break
		}
		s.writeText(textItem{
			x:      centerX,
			y:      s.overlayY + i*overlayLineHeight,
			text:   line,
			anchor: stats.AnchorCenter,
			color:  stats.TextColor,
		})
	}

	if !s.mouseApplied || s.pointer != s.mouseOn {
		if s.pointer {
			draw.EnableMouse(s.out)
		} else {
			draw.DisableMouse(s.out)
		}
		s.mouseOn = s.pointer
		s.mouseApplied = true
	}

	return s.out.Flush()
}

// writeText places a label on the terminal cells under its logical position,
// over the canvas color found at its first cell.
func (s *termSurface) writeText(t textItem) {
	col, row := s.canvas.LogicalToTerminal(float64(t.x), float64(t.y))
	if row < 1 || row > s.canvas.TerminalHeight() {
		return
	}

	text := t.text
	width := utf8.RuneCountInString(text)
	switch t.anchor {
	case stats.AnchorCenter:
		col -= width / 2
	case stats.AnchorRight:
		col -= width
	}
	if col < 1 {
		text = string([]rune(text)[min(1-col, width):])
		width = utf8.RuneCountInString(text)
		col = 1
	}
	if room := s.canvas.TerminalWidth() - col + 1; width > room {
		if room <= 0 {
			return
		}
		text = string([]rune(text)[:room])
	}
	if text == "" {
		return
	}

	bg := s.canvas.At(col-1, (row-1)*2)
	s.out.WriteAt(col, row, draw.ColorSeq(t.color, bg)+text+draw.ResetSeq())
}

// restore leaves the terminal with reporting off and default colors.
func (s *termSurface) restore() error {
	draw.DisableMouse(s.out)
	s.mouseOn = false
	draw.ClearScreen(s.out)
	draw.ShowCursor(s.out)
	return s.out.Flush()
}
