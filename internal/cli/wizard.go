package cli

import (
	"fmt"

	"github.com/alexanderramin/journeyviz/internal/cli/formatter"
	"github.com/alexanderramin/journeyviz/internal/template"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// journeyHuhTheme returns a huh theme using the Gruvbox palette.
func journeyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectTemplate creates a huh form to pick a journey template.
// It returns nil when the registry is empty.
func wizardSelectTemplate(reg *template.Registry, result *string) *huh.Form {
	if reg == nil {
		return nil
	}
	templates := reg.List()
	if len(templates) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(templates))
	for _, t := range templates {
		label := fmt.Sprintf("%s (%d cards)", t.Name, len(t.Cards))
		options = append(options, huh.NewOption(label, t.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start from which template?").
				Description("Replaces every card on the canvas.").
				Options(options...).
				Value(result),
		),
	).WithTheme(journeyHuhTheme()).WithShowHelp(false)
}

// wizardConfirmNewJourney asks before discarding placed cards.
func wizardConfirmNewJourney(result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Discard the current journey?").
				Affirmative("Discard").
				Negative("Keep").
				Value(result),
		),
	).WithTheme(journeyHuhTheme()).WithShowHelp(false)
}
