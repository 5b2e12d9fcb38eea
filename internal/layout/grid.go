// Package layout computes the timeline geometry of the journey canvas:
// equal-width stage columns below a fixed header band, plus the snapping
// and clamping rules cards obey.
package layout

import "math"

const snapEpsilon = 1e-9

// Metrics holds the fixed sizes the grid is laid out with.
type Metrics struct {
	HeaderHeight float64
	Padding      float64
	CardWidth    float64
	CardHeight   float64
}

// Column is one stage's half-open horizontal interval [Start, End).
type Column struct {
	Index  int
	Start  float64
	End    float64
	Center float64
}

// Width returns End - Start.
func (c Column) Width() float64 { return c.End - c.Start }

// Contains reports whether x falls in [Start, End).
func (c Column) Contains(x float64) bool { return x >= c.Start && x < c.End }

// Grid is the derived column geometry for one canvas size. It is never
// patched in place: a resize builds a new Grid.
type Grid struct {
	width   float64
	height  float64
	metrics Metrics
	columns []Column
}

// NewGrid lays out stageCount equal columns across width. Negative sizes are
// treated as zero.
func NewGrid(width, height float64, stageCount int, m Metrics) *Grid {
	width = math.Max(width, 0)
	height = math.Max(height, 0)
	if stageCount < 0 {
		stageCount = 0
	}

	g := &Grid{width: width, height: height, metrics: m}
	edges := make([]float64, stageCount+1)
	if stageCount > 0 {
		for i := range stageCount {
			edges[i] = width * float64(i) / float64(stageCount)
		}
		edges[stageCount] = width
	}

	// Neighbours share an edge value so the columns tile [0, W) exactly.
	g.columns = make([]Column, stageCount)
	for i := range g.columns {
		g.columns[i] = Column{
			Index:  i,
			Start:  edges[i],
			End:    edges[i+1],
			Center: (edges[i] + edges[i+1]) / 2,
		}
	}
	return g
}

func (g *Grid) Width() float64 { return g.width }

func (g *Grid) Height() float64 { return g.height }

func (g *Grid) Metrics() Metrics { return g.metrics }

func (g *Grid) ColumnCount() int { return len(g.columns) }

// ColumnWidth returns W/S, or 0 when there are no columns.
func (g *Grid) ColumnWidth() float64 {
	if len(g.columns) == 0 {
		return 0
	}
	return g.width / float64(len(g.columns))
}

// Columns returns a copy of the column list.
func (g *Grid) Columns() []Column {
	out := make([]Column, len(g.columns))
	copy(out, g.columns)
	return out
}

// Column returns column i.
func (g *Grid) Column(i int) (Column, bool) {
	if i < 0 || i >= len(g.columns) {
		return Column{}, false
	}
	return g.columns[i], true
}

// ColumnAt returns the index of the column containing x, or (-1, false)
// when x is outside [0, W).
func (g *Grid) ColumnAt(x float64) (int, bool) {
	if len(g.columns) == 0 || math.IsNaN(x) || x < 0 || x >= g.width {
		return -1, false
	}
	// Division gives the right answer except at float edges; adjust by one.
	i := int(x / g.ColumnWidth())
	if i >= len(g.columns) {
		i = len(g.columns) - 1
	}
	for i > 0 && x < g.columns[i].Start {
		i--
	}
	for i < len(g.columns)-1 && x >= g.columns[i].End {
		i++
	}
	return i, true
}

// Nearest returns the column whose center is closest to x. Values outside
// the canvas resolve to the first or last column. It fails only when the
// grid has no columns.
func (g *Grid) Nearest(x float64) (int, bool) {
	if len(g.columns) == 0 || math.IsNaN(x) {
		return -1, false
	}
	if i, ok := g.ColumnAt(x); ok {
		return i, true
	}
	if x < 0 {
		return 0, true
	}
	return len(g.columns) - 1, true
}

// SnapLeft returns the left edge that centers a card in column i.
func (g *Grid) SnapLeft(i int) float64 {
	c, ok := g.Column(i)
	if !ok {
		return 0
	}
	return c.Center - g.metrics.CardWidth/2
}

// Band returns the vertical range [min, max] a card's top edge may take.
// When the canvas is too short for a card the range collapses to min.
func (g *Grid) Band() (float64, float64) {
	lo := g.metrics.HeaderHeight + g.metrics.Padding
	hi := g.height - g.metrics.CardHeight - g.metrics.Padding
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// ClampTop forces a card's top edge into the drawable band.
func (g *Grid) ClampTop(y float64) float64 {
	lo, hi := g.Band()
	if math.IsNaN(y) || y < lo {
		return lo
	}
	if y > hi {
		return hi
	}
	return y
}

// CardRect returns the card rectangle with top-left at (x, y).
func (g *Grid) CardRect(x, y float64) Rect {
	return Rect{X: x, Y: y, W: g.metrics.CardWidth, H: g.metrics.CardHeight}
}

// IsSnapped reports whether a card whose left edge is x rests exactly on a
// column center.
func (g *Grid) IsSnapped(x float64) bool {
	center := x + g.metrics.CardWidth/2
	i, ok := g.ColumnAt(center)
	if !ok {
		return false
	}
	return math.Abs(center-g.columns[i].Center) < snapEpsilon
}
