package cli

import (
	"math"
	"strings"

	"github.com/alexanderramin/journeyviz/internal/cli/formatter"
	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/alexanderramin/journeyviz/internal/scene"
	"github.com/charmbracelet/lipgloss"
)

// cell is one terminal character of the canvas.
type cell struct {
	ch   rune
	fg   lipgloss.Color
	bg   lipgloss.Color
	bold bool
}

// cellBuffer rasterizes scene objects into terminal cells. Writes outside
// the buffer are dropped.
type cellBuffer struct {
	w, h  int
	cells []cell
}

func newCellBuffer(w, h int) *cellBuffer {
	w, h = max(w, 0), max(h, 0)
	b := &cellBuffer{w: w, h: h, cells: make([]cell, w*h)}
	for i := range b.cells {
		b.cells[i].ch = ' '
	}
	return b
}

func (b *cellBuffer) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return nil
	}
	return &b.cells[y*b.w+x]
}

func (b *cellBuffer) set(x, y int, ch rune, fg lipgloss.Color) {
	if c := b.at(x, y); c != nil {
		c.ch, c.fg, c.bold = ch, fg, false
	}
}

func (b *cellBuffer) fill(x, y int, bg lipgloss.Color) {
	if c := b.at(x, y); c != nil {
		c.bg = bg
	}
}

func (b *cellBuffer) text(x, y int, s string, fg lipgloss.Color, bold bool) {
	for _, r := range s {
		if c := b.at(x, y); c != nil {
			c.ch, c.fg, c.bold = r, fg, bold
		}
		x++
	}
}

// charAt returns the character at (x, y), or 0 off the buffer.
func (b *cellBuffer) charAt(x, y int) rune {
	if c := b.at(x, y); c != nil {
		return c.ch
	}
	return 0
}

// String renders rows, styling each run of equally styled cells once.
func (b *cellBuffer) String() string {
	var out strings.Builder
	for y := 0; y < b.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := b.cells[y*b.w : (y+1)*b.w]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && sameStyle(row[start], row[end]) {
				end++
			}
			var run strings.Builder
			for _, c := range row[start:end] {
				run.WriteRune(c.ch)
			}
			out.WriteString(styleOf(row[start]).Render(run.String()))
			start = end
		}
	}
	return out.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

func styleOf(c cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.fg != "" {
		st = st.Foreground(c.fg)
	}
	if c.bg != "" {
		st = st.Background(c.bg)
	}
	if c.bold {
		st = st.Bold(true)
	}
	return st
}

// ghost is a palette item following the pointer over the canvas.
type ghost struct {
	label string
	x, y  int
}

// cellOf maps a canvas coordinate to the first cell whose center lies at or
// after it. A span [a, b) covers cells cellOf(a) up to cellOf(b), matching
// pointer hit-testing at cell centers.
func cellOf(v float64) int { return int(math.Ceil(v - 0.5)) }

// renderScene draws every scene object in order onto a w×h canvas.
func renderScene(sc *scene.Scene, w, h int, g *ghost) string {
	buf := newCellBuffer(w, h)

	widths := make(map[int]float64)
	for _, hl := range sc.Highlights() {
		widths[hl.Column] = hl.Rect.W
	}

	for _, obj := range sc.Objects() {
		switch o := obj.(type) {
		case *scene.ColumnHighlight:
			if o.Visible() {
				drawHighlight(buf, o)
			}
		case *scene.GridLine:
			drawLine(buf, o)
		case *scene.HeaderLabel:
			drawLabel(buf, o, widths[o.Column])
		case *scene.CardNode:
			drawCard(buf, o)
		}
	}

	if g != nil {
		text := "[" + domain.IconFor(g.label) + " " + g.label + "]"
		buf.text(g.x-len([]rune(text))/2, g.y, text, formatter.ColorYellow, true)
	}
	return buf.String()
}

func drawHighlight(buf *cellBuffer, hl *scene.ColumnHighlight) {
	r := hl.Rect
	for y := cellOf(r.Y); y < cellOf(r.Bottom()); y++ {
		for x := cellOf(r.X); x < cellOf(r.Right()); x++ {
			buf.fill(x, y, formatter.ColorHighlight)
		}
	}
}

func drawLine(buf *cellBuffer, l *scene.GridLine) {
	if l.Vertical() {
		x := cellOf(l.X1)
		for y := cellOf(min(l.Y1, l.Y2)); y < cellOf(max(l.Y1, l.Y2)); y++ {
			ch := '│'
			if buf.charAt(x, y) == '─' {
				ch = '┼'
			}
			buf.set(x, y, ch, formatter.ColorDim)
		}
		return
	}
	y := cellOf(l.Y1)
	for x := cellOf(min(l.X1, l.X2)); x < cellOf(max(l.X1, l.X2)); x++ {
		ch := '─'
		if buf.charAt(x, y) == '│' {
			ch = '┼'
		}
		buf.set(x, y, ch, formatter.ColorDim)
	}
}

func drawLabel(buf *cellBuffer, l *scene.HeaderLabel, columnWidth float64) {
	text := formatter.Truncate(l.Text, int(columnWidth)-2)
	n := len([]rune(text))
	buf.text(cellOf(l.X-float64(n)/2), int(l.Y), text, formatter.StageColor(l.Column), true)
}

// drawCard draws a card panel with its icon, label, delete glyph and drop
// shadow. While the card is too small to hold a border (mid transition) it
// is drawn as a single dot.
func drawCard(buf *cellBuffer, n *scene.CardNode) {
	r := n.ScaledBounds()
	x0, y0 := cellOf(r.X), cellOf(r.Y)
	x1, y1 := cellOf(r.Right()), cellOf(r.Bottom())
	faded := n.Opacity < 0.5

	if x1-x0 < 4 || y1-y0 < 3 {
		buf.set(cellOf(r.X+r.W/2), cellOf(r.Y+r.H/2), '·', formatter.ColorDim)
		return
	}

	shade := '░'
	if n.Shadow == scene.HoverShadow {
		shade = '▒'
	}
	for y := y0 + 1; y <= y1; y++ {
		buf.set(x1, y, shade, formatter.ColorShadow)
	}
	for x := x0 + 1; x < x1; x++ {
		buf.set(x, y1, shade, formatter.ColorShadow)
	}

	border := formatter.ColorFg
	switch {
	case faded:
		border = formatter.ColorDim
	case n.Card.Dragging:
		border = formatter.ColorYellow
	case n.Card.Hovered:
		border = formatter.ColorHeader
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			var ch rune
			switch {
			case y == y0 && x == x0:
				ch = '╭'
			case y == y0 && x == x1-1:
				ch = '╮'
			case y == y1-1 && x == x0:
				ch = '╰'
			case y == y1-1 && x == x1-1:
				ch = '╯'
			case y == y0 || y == y1-1:
				ch = '─'
			case x == x0 || x == x1-1:
				ch = '│'
			default:
				ch = ' '
			}
			buf.set(x, y, ch, border)
			buf.fill(x, y, formatter.ColorPanel)
		}
	}

	label := domain.IconFor(n.Card.Type) + " " + n.Card.Type
	text := formatter.Truncate(label, x1-x0-3)
	fg := formatter.ColorFg
	if faded {
		fg = formatter.ColorDim
	}
	buf.text(x0+2, y0+(y1-y0)/2, text, fg, n.Card.Hovered)

	if !n.Exiting() {
		buf.set(x1-2, y0, '×', lipgloss.Color(n.DeleteTint))
	}
}
