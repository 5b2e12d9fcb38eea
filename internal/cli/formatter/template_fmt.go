package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/alexanderramin/journeyviz/internal/template"
)

// FormatTemplateList renders the template catalog inside a bordered box.
func FormatTemplateList(templates []*template.Template) string {
	headers := []string{"#", "ID", "NAME", "CARDS", "SOURCE"}
	rows := make([][]string, 0, len(templates))
	for i, t := range templates {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			t.ID,
			Bold(t.Name),
			strconv.Itoa(len(t.Cards)),
			Dim(t.Source),
		})
	}
	return RenderBox("Templates", RenderNumericTable(headers, rows, 0, 3))
}

// FormatTemplateShow renders a template's cards grouped by stage. Stages
// come from the session configuration; cards naming any other stage are
// listed under "Unplaced".
func FormatTemplateShow(t *template.Template, stages []domain.Stage) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(t.Name) + "  " + Dim(t.ID) + "\n")
	if t.Description != "" {
		b.WriteString(Dim(t.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(Header("Cards"))
	b.WriteString("\n")

	byStage := make([][]template.CardSpec, len(stages))
	var unplaced []template.CardSpec
	for _, c := range t.Cards {
		if i := domain.StageIndex(stages, c.Stage); i >= 0 {
			byStage[i] = append(byStage[i], c)
			continue
		}
		unplaced = append(unplaced, c)
	}

	var items []TreeItem
	for i, s := range stages {
		items = append(items, TreeItem{Title: s.Label, Detail: fmt.Sprintf("%d", len(byStage[i]))})
		items = append(items, cardItems(byStage[i])...)
	}
	if len(unplaced) > 0 {
		items = append(items, TreeItem{Title: StyleRed.Render("Unplaced"), Detail: fmt.Sprintf("%d", len(unplaced))})
		items = append(items, cardItems(unplaced)...)
	}
	b.WriteString(RenderTree(items))

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

func cardItems(cards []template.CardSpec) []TreeItem {
	items := make([]TreeItem, 0, len(cards))
	for i, c := range cards {
		title := domain.IconFor(c.Touchpoint) + " " + c.Touchpoint
		if c.Row > 0 {
			title += Dim(fmt.Sprintf("  row %d", c.Row))
		}
		items = append(items, TreeItem{Title: title, Level: 1, IsLast: i == len(cards)-1})
	}
	return items
}
