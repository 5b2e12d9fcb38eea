package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journeyviz/internal/cli/formatter"
	"github.com/alexanderramin/journeyviz/internal/editor"
	"github.com/alexanderramin/journeyviz/internal/template"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// navItem is an entry of the navigation bar. Clicking it is the same as
// pressing its key.
type navItem struct {
	key   string
	label string
}

var navItems = []navItem{
	{key: "n", label: "New Journey"},
	{key: "t", label: "Templates"},
	{key: "?", label: "Help"},
}

const appTitle = "journeyviz"

// navSpan is the screen column range [start, end) of a nav item.
type navSpan struct {
	start, end int
	key        string
}

// navLayout returns where each nav item is drawn on the first row.
func navLayout() []navSpan {
	spans := make([]navSpan, 0, len(navItems))
	x := lipgloss.Width(" "+appTitle) + 3
	for _, it := range navItems {
		w := lipgloss.Width(navItemText(it))
		spans = append(spans, navSpan{start: x, end: x + w, key: it.key})
		x += w + 2
	}
	return spans
}

func navItemText(it navItem) string {
	return "[" + it.key + "] " + it.label
}

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack with the canvas at the bottom.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App, initial *template.Template) appModel {
	state := &SharedState{
		App:     app,
		Bus:     editor.NewResizeBus(),
		Pending: initial,
	}
	state.Session = editor.NewSession(
		editor.WithConfig(app.Config.Editor()),
		editor.WithObserver(app.observer()),
		editor.WithClock(app.now),
	)

	m := appModel{state: state}
	m.viewStack = []View{newCanvasView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// canvas returns the canvas view at the bottom of the stack.
func (m *appModel) canvas() *canvasView {
	if len(m.viewStack) == 0 {
		return nil
	}
	cv, _ := m.viewStack[0].(*canvasView)
	return cv
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	return model, m.keepTicking(cmd)
}

// keepTicking schedules a frame tick while the scene animates and none is
// pending. Ticks stop by themselves once the scene is still.
func (m appModel) keepTicking(cmd tea.Cmd) tea.Cmd {
	st := m.state
	if m.quitting || st.Ticking || !st.Session.Animating() {
		return cmd
	}
	st.Ticking = true
	return tea.Batch(cmd, frameTick(st.App.Config.FrameInterval))
}

func (m appModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Every view tracks the size, not only the visible one.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Y == 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			for _, s := range navLayout() {
				if msg.X >= s.start && msg.X < s.end {
					return m.navigate(s.key)
				}
			}
		}

	case frameMsg:
		m.state.Ticking = false
		m.state.Session.Advance(time.Time(msg))
		return m, nil

	// Navigation messages from views
	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case statusMsg:
		m.state.Status = msg.text
		return m, nil

	case newJourneyMsg:
		m.state.Session.NewJourney()
		m.state.Status = "Started a new journey."
		return m, nil

	case applyTemplateMsg:
		m.state.Status = m.applyTemplate(msg.id)
		return m, nil

	case templatesReloadedMsg:
		m.state.Status = fmt.Sprintf("Templates reloaded (%d available).", len(m.state.App.Templates.List()))
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	// If active view captures input (a form), forward directly.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		return m.quit()

	case msg.Type == tea.KeyEsc:
		// Pop view stack (go back)
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case msg.String() == "n", msg.String() == "t", msg.String() == "?":
		return m.navigate(msg.String())
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// navigate runs a navigation bar action.
func (m appModel) navigate(key string) (tea.Model, tea.Cmd) {
	if v := m.activeView(); v != nil && v.ID() != ViewCanvas {
		if key == "?" && v.ID() == ViewHelp {
			return m, popView()
		}
		return m, nil
	}

	switch key {
	case "n":
		if len(m.state.Session.Cards()) == 0 {
			return m, func() tea.Msg { return newJourneyMsg{} }
		}
		confirmed := true
		return m, startWizardCmd(m.state, "New Journey", wizardConfirmNewJourney(&confirmed), func() tea.Cmd {
			if !confirmed {
				return setStatus("Kept the current journey.")
			}
			return func() tea.Msg { return newJourneyMsg{} }
		})

	case "t":
		var choice string
		form := wizardSelectTemplate(m.state.App.Templates, &choice)
		if form == nil {
			return m, setStatus("No templates available.")
		}
		return m, startWizardCmd(m.state, "Templates", form, func() tea.Cmd {
			return func() tea.Msg { return applyTemplateMsg{id: choice} }
		})

	case "?":
		return m, pushView(newHelpView(m.state))
	}
	return m, nil
}

func (m appModel) applyTemplate(id string) string {
	tpl, err := m.state.App.Templates.Get(id)
	if errors.Is(err, template.ErrNotFound) {
		return fmt.Sprintf("Template %q is gone.", id)
	}
	if err != nil {
		return err.Error()
	}
	if m.state.Session.Grid() == nil {
		m.state.Pending = tpl
		return fmt.Sprintf("Loading %s.", tpl.Name)
	}
	n := m.state.Session.ApplyTemplate(tpl)
	return fmt.Sprintf("Applied %s (%d cards).", tpl.Name, n)
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.state.Session.Dispose()
	return m, tea.Quit
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	content := ""
	if v := m.activeView(); v != nil {
		content = v.View()
	}
	if h := m.state.ContentHeight(); h > 0 {
		content = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(content)
	}
	sections = append(sections, content)
	sections = append(sections, m.renderStatusBar())

	return strings.Join(sections, "\n")
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	var b strings.Builder
	b.WriteString(formatter.StylePurple.Bold(true).Render(" " + appTitle))
	b.WriteString("   ")
	for i, it := range navItems {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(formatter.Dim("["+it.key+"]") + " " + formatter.StyleFg.Render(it.label))
	}

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		b.WriteString("   " + formatter.Dim(strings.Join(crumbs, " › ")))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return b.String() + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	bar := strings.Join(hints, "  ")
	if m.state.Status != "" {
		bar = formatter.StyleGreen.Render(m.state.Status) + "  " + bar
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the active view should receive all key
// events, bypassing global keybindings like q and Esc.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewForm
}
