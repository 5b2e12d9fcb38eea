package cli

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# journeyviz

Map a customer journey by placing touchpoint cards on the stage columns.

## Mouse

- Drag a touchpoint out of the palette and release it over a stage to place a card.
- Drag a card to move it. It snaps to the stage under its center and settles on the nearest stage when released.
- Click the **×** on a card's top edge to delete it.

## Keys

| Key | Action |
| --- | --- |
| ↑ ↓ | choose a touchpoint |
| 1-9 | place the chosen touchpoint in that stage |
| d | delete the card under the pointer |
| n | start a new journey |
| t | start from a template |
| ? | toggle this help |
| q | quit |

## Templates

Templates are YAML files with an ` + "`id`" + `, a ` + "`name`" + ` and a list of cards,
each naming a ` + "`stage`" + `, a ` + "`touchpoint`" + ` and an optional ` + "`row`" + `.
Files in the directory named by ` + "`JOURNEYVIZ_TEMPLATES`" + ` are picked up while the editor runs.
`

// Glamour renderers are cached by width.
var helpRenderers sync.Map // map[int]*glamour.TermRenderer

func helpRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := helpRenderers.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	helpRenderers.Store(width, r)
	return r, nil
}

// renderHelp renders the help text as markdown, falling back to the raw
// source if glamour fails.
func renderHelp(width int) string {
	r, err := helpRenderer(max(width, 20))
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}

// helpView shows the rendered help in a scrollable viewport.
type helpView struct {
	state *SharedState
	vp    viewport.Model
	width int
}

func newHelpView(state *SharedState) *helpView {
	v := &helpView{state: state, vp: viewport.New(0, 0)}
	v.vp.MouseWheelEnabled = true
	v.fit()
	return v
}

// fit sizes the viewport to the content area and re-renders on width
// changes.
func (v *helpView) fit() {
	w := max(v.state.Width, 20)
	v.vp.Width = w
	v.vp.Height = v.state.ContentHeight()
	if w != v.width {
		v.width = w
		v.vp.SetContent(renderHelp(w - 2))
	}
}

func (v *helpView) Init() tea.Cmd { return nil }

func (v *helpView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		v.fit()
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *helpView) View() string { return v.vp.View() }

func (v *helpView) ID() ViewID    { return ViewHelp }
func (v *helpView) Title() string { return "Help" }
func (v *helpView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "close")),
	}
}
