package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func newTestModel(t *testing.T) appModel {
	t.Helper()
	app, _ := testApp(t)
	return newAppModel(app, nil)
}

func TestNewAppModelStartsAtCanvas(t *testing.T) {
	m := newTestModel(t)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewCanvas, m.activeView().ID())
	assert.NotNil(t, m.canvas())
	assert.Nil(t, m.state.Session.Grid(), "mounted on the first window size")
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newTestModel(t)
	v2 := newStubView(ViewHelp, "Help", "help view")

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewCanvas, m.activeView().ID())

	model, _ = m.Update(popViewMsg{})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1, "the canvas is never popped")
}

func TestAppModel_WindowResizeReachesEveryView(t *testing.T) {
	m := newTestModel(t)
	v := newStubView(ViewHelp, "Help", "help")
	m.viewStack = append(m.viewStack, v)

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	require.Len(t, v.updateSeen, 1)
	assert.Equal(t, tea.WindowSizeMsg{Width: 100, Height: 30}, v.updateSeen[0])
	require.NotNil(t, m.state.Session.Grid(), "canvas below the top view mounted too")
	assert.Equal(t, 77.0, m.state.Session.Grid().Width())
}

func TestAppModel_KeyHandling_GlobalAndCaptured(t *testing.T) {
	m := newTestModel(t)
	form := newStubView(ViewForm, "Form", "form")
	m.viewStack = append(m.viewStack, form)

	// A form swallows q and esc.
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(appModel)
	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 2)
	assert.Len(t, form.updateSeen, 2)

	// Ctrl+C always quits.
	model, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = model.(appModel)
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestAppModel_EscPopsNonFormView(t *testing.T) {
	m := newTestModel(t)
	m.viewStack = append(m.viewStack, newStubView(ViewHelp, "Help", "help"))

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Nil(t, cmd)
	assert.Len(t, m.viewStack, 1)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_WizardComplete(t *testing.T) {
	m := newTestModel(t)
	m.viewStack = append(m.viewStack, newStubView(ViewForm, "Form", "form"))

	next := setStatus("done")
	model, cmd := m.Update(wizardCompleteMsg{nextCmd: next})
	m = model.(appModel)

	assert.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)
	assert.Equal(t, statusMsg{text: "done"}, cmd())

	model, _ = m.Update(cmd())
	m = model.(appModel)
	assert.Equal(t, "done", m.state.Status)
	assert.Contains(t, stripANSI(m.View()), "done")
}

func TestAppModel_ApplyTemplateBeforeMountIsPending(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.Update(applyTemplateMsg{id: "ecommerce"})
	m = model.(appModel)
	require.NotNil(t, m.state.Pending)
	assert.Equal(t, "ecommerce", m.state.Pending.ID)
	assert.Equal(t, "Loading E-commerce Journey.", m.state.Status)

	model, _ = m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	m = model.(appModel)
	assert.Nil(t, m.state.Pending)
	assert.Len(t, m.state.Session.Cards(), 6)
}

func TestAppModel_ApplyUnknownTemplate(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.Update(applyTemplateMsg{id: "gone"})
	m = model.(appModel)
	assert.Equal(t, `Template "gone" is gone.`, m.state.Status)
}

func TestAppModel_KeepTickingWhileAnimating(t *testing.T) {
	app, clock := testApp(t)
	m := newAppModel(app, nil)
	model, cmd := m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	m = model.(appModel)
	assert.False(t, m.state.Ticking)
	assert.Nil(t, cmd)

	// Placing a card starts its enter transition.
	model, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	m = model.(appModel)
	assert.True(t, m.state.Ticking)
	assert.NotNil(t, cmd)

	// A second event while a tick is pending schedules nothing new.
	model, cmd = m.Update(statusMsg{text: "x"})
	m = model.(appModel)
	assert.Nil(t, cmd)

	model, cmd = m.Update(frameMsg(clock.advance(time.Second)))
	m = model.(appModel)
	assert.False(t, m.state.Ticking)
	assert.Nil(t, cmd, "ticks stop once the scene is still")
	assert.False(t, m.state.Session.Animating())
}

func TestAppModel_QuitDisposesSession(t *testing.T) {
	m := newTestModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	m = model.(appModel)
	require.Equal(t, 1, m.state.Bus.Len())

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(appModel)

	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.True(t, m.state.Session.Disposed())
	assert.Zero(t, m.state.Bus.Len())
}

func TestAppModel_HeaderBreadcrumbAndHints(t *testing.T) {
	m := newTestModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	m = model.(appModel)
	m.viewStack = append(m.viewStack, &stubView{
		id:        ViewHelp,
		title:     "Help",
		viewText:  "help body",
		shortHelp: []key.Binding{key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "do thing"))},
	})

	view := stripANSI(m.View())
	assert.Contains(t, view, "journeyviz")
	assert.Contains(t, view, "[?] Help")
	assert.Contains(t, view, "help body")
	assert.Contains(t, view, "x: do thing")
	assert.Contains(t, view, "esc: back")
	assert.Contains(t, view, "q: quit")
}

func TestNavLayoutMatchesHeader(t *testing.T) {
	m := newTestModel(t)
	first := []rune(strings.SplitN(stripANSI(m.renderHeader()), "\n", 2)[0])
	for _, s := range navLayout() {
		var want string
		for _, it := range navItems {
			if it.key == s.key {
				want = navItemText(it)
			}
		}
		require.LessOrEqual(t, s.end, len(first))
		assert.Equal(t, want, string(first[s.start:s.end]))
	}
}

func TestViewCapturesInput(t *testing.T) {
	assert.False(t, viewCapturesInput(nil))
	assert.False(t, viewCapturesInput(newStubView(ViewCanvas, "", "")))
	assert.False(t, viewCapturesInput(newStubView(ViewHelp, "Help", "")))
	assert.True(t, viewCapturesInput(newStubView(ViewForm, "Form", "")))
}
