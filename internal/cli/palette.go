package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/journeyviz/internal/cli/formatter"
	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// The sidebar lists the stages, a blank row, then the touchpoint palette
// under its own heading.

// paletteTop returns the sidebar row of the first touchpoint entry.
func paletteTop(stageCount int) int {
	return 1 + stageCount + 1 + 1
}

// paletteItemAt returns the palette entry drawn at screen cell (x, y).
func (s *SharedState) paletteItemAt(x, y int) (domain.TouchpointType, int, bool) {
	if x < 0 || x >= s.SidebarWidth() {
		return domain.TouchpointType{}, -1, false
	}
	row := y - headerRows - paletteTop(len(s.Session.Stages()))
	items := domain.Touchpoints()
	if row < 0 || row >= len(items) {
		return domain.TouchpointType{}, -1, false
	}
	return items[row], row, true
}

// selectedTouchpoint returns the highlighted palette entry.
func (s *SharedState) selectedTouchpoint() domain.TouchpointType {
	items := domain.Touchpoints()
	return items[min(max(s.Selected, 0), len(items)-1)]
}

func renderSidebar(s *SharedState, dragging string) string {
	width := s.SidebarWidth()
	height := s.ContentHeight()
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := width - 1

	var lines []string
	lines = append(lines, formatter.StyleHeader.Render("STAGES"))
	for _, st := range s.Session.Stages() {
		label := formatter.Truncate(st.Label, inner-3)
		style := lipgloss.NewStyle().Foreground(formatter.StageColor(st.Position))
		lines = append(lines, formatter.Dim(fmt.Sprintf(" %d ", st.Position+1))+style.Render(label))
	}
	lines = append(lines, "")
	lines = append(lines, formatter.StyleHeader.Render("TOUCHPOINTS"))
	for i, tp := range domain.Touchpoints() {
		text := formatter.Truncate(tp.Icon+" "+tp.Label, inner-2)
		switch {
		case tp.Label == dragging:
			lines = append(lines, formatter.StyleYellowBold.Render("» "+text))
		case i == s.Selected:
			lines = append(lines, formatter.StyleHeader.Render("▸ ")+formatter.StyleBold.Render(text))
		default:
			lines = append(lines, "  "+formatter.StyleFg.Render(text))
		}
	}
	lines = append(lines, "")
	lines = append(lines, formatter.Dim(formatter.Truncate("drag onto a stage", inner)))
	lines = append(lines, formatter.Dim(formatter.Truncate("or press 1-9", inner)))

	if len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}
