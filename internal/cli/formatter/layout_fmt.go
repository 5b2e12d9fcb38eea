package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/alexanderramin/journeyviz/internal/layout"
)

// FormatLayout renders the stage columns of a grid with their boundaries
// and centers, followed by the drawable band.
func FormatLayout(g *layout.Grid, stages []domain.Stage) string {
	headers := []string{"#", "STAGE", "START", "END", "CENTER"}
	rows := make([][]string, 0, g.ColumnCount())
	for _, c := range g.Columns() {
		label := ""
		if c.Index < len(stages) {
			label = stages[c.Index].Label
		}
		rows = append(rows, []string{
			strconv.Itoa(c.Index + 1),
			label,
			Units(c.Start),
			Units(c.End),
			Units(c.Center),
		})
	}

	var b strings.Builder
	b.WriteString(RenderNumericTable(headers, rows, 0, 2, 3, 4))
	lo, hi := g.Band()
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s × %s   %s [%s, %s]\n",
		Dim("canvas"), Units(g.Width()), Units(g.Height()),
		Dim("card top band"), Units(lo), Units(hi)))
	return b.String()
}

// FormatSnap describes where a card dropped at x would come to rest.
func FormatSnap(g *layout.Grid, stages []domain.Stage, x float64) string {
	col, inside := g.ColumnAt(x)
	if !inside {
		col, inside = g.Nearest(x)
		if !inside {
			return Dim("no stage columns")
		}
	}
	label := ""
	if col < len(stages) {
		label = stages[col].Label
	}
	c, _ := g.Column(col)
	return fmt.Sprintf("x=%s → %s %s, card center %s, left %s",
		Units(x), Bold(label), Dim(fmt.Sprintf("(column %d)", col+1)),
		Units(c.Center), Units(g.SnapLeft(col)))
}

// FormatTouchpoints renders the palette catalog.
func FormatTouchpoints(types []domain.TouchpointType) string {
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{t.Icon, t.Label})
	}
	return RenderTable([]string{"ICON", "TOUCHPOINT"}, rows)
}
