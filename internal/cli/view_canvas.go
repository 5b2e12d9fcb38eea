package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/journeyviz/internal/cli/formatter"
	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// paletteDrag is a touchpoint being dragged out of the palette.
type paletteDrag struct {
	label string
	x, y  int
}

// canvasView is the home view: touchpoint palette on the left, the stage
// canvas on the right. Pointer events over the canvas go to the session's
// dispatcher; drags that start on the palette end in a drop.
type canvasView struct {
	state *SharedState
	drag  *paletteDrag
}

func newCanvasView(state *SharedState) *canvasView {
	return &canvasView{state: state}
}

func (v *canvasView) Init() tea.Cmd { return nil }

func (v *canvasView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
	case tea.MouseMsg:
		v.handleMouse(msg)
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

// resize mounts the session on the first size and publishes later ones.
func (v *canvasView) resize() {
	st := v.state
	w, h := st.CanvasSize()
	if st.Session.Grid() == nil {
		if !st.Session.Mount(st.Bus, float64(w), float64(h)) {
			return
		}
		if st.Pending != nil {
			n := st.Session.ApplyTemplate(st.Pending)
			st.Status = fmt.Sprintf("Applied %s (%d cards).", st.Pending.Name, n)
			st.Pending = nil
		}
		return
	}
	st.Bus.Publish(float64(w), float64(h))
}

func (v *canvasView) handleMouse(msg tea.MouseMsg) {
	st := v.state
	cx, cy, inside := st.ToCanvas(msg.X, msg.Y)
	d := st.Session.Dispatcher()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if tp, i, ok := st.paletteItemAt(msg.X, msg.Y); ok {
			st.Selected = i
			v.drag = &paletteDrag{label: tp.Label, x: msg.X, y: msg.Y}
			return
		}
		if inside {
			d.PointerDown(cx, cy)
		}

	case tea.MouseActionMotion:
		if v.drag != nil {
			v.drag.x, v.drag.y = msg.X, msg.Y
			return
		}
		if _, dragging := d.Dragging(); inside || dragging {
			d.PointerMove(cx, cy)
			return
		}
		d.PointerLeave()

	case tea.MouseActionRelease:
		if v.drag != nil {
			label := v.drag.label
			v.drag = nil
			if inside {
				v.drop(label, cx, cy)
			}
			return
		}
		d.PointerUp(cx, cy)
	}
}

func (v *canvasView) handleKey(msg tea.KeyMsg) tea.Cmd {
	st := v.state
	switch msg.String() {
	case "up", "k":
		st.Selected = (st.Selected + len(domain.Touchpoints()) - 1) % len(domain.Touchpoints())
	case "down", "j":
		st.Selected = (st.Selected + 1) % len(domain.Touchpoints())
	case "d", "delete", "backspace":
		id := st.Session.Dispatcher().Hovered()
		if id == "" {
			return setStatus("Point at a card to delete it.")
		}
		st.Session.Delete(id)
		return setStatus("Deleted card.")
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			v.dropIntoStage(int(s[0] - '1'))
		}
	}
	return nil
}

// dropIntoStage places the selected touchpoint below the cards already in
// stage i.
func (v *canvasView) dropIntoStage(i int) {
	st := v.state
	g := st.Session.Grid()
	if g == nil {
		return
	}
	c, ok := g.Column(i)
	if !ok {
		st.Status = fmt.Sprintf("There is no stage %d.", i+1)
		return
	}
	m := st.Session.Config().Metrics
	stacked := 0
	for _, card := range st.Session.Cards() {
		if col, ok := st.Session.ColumnOf(card.ID); ok && col == i {
			stacked++
		}
	}
	lo, _ := g.Band()
	top := lo + float64(stacked)*(m.CardHeight+m.Padding)
	v.drop(st.selectedTouchpoint().Label, c.Center, top+m.CardHeight/2)
}

func (v *canvasView) drop(label string, x, y float64) {
	st := v.state
	card, ok := st.Session.Drop(label, x, y)
	if !ok {
		return
	}
	stage := ""
	if col, ok := st.Session.ColumnOf(card.ID); ok {
		stage = st.Session.Stages()[col].Label
	}
	st.Status = fmt.Sprintf("Placed %s in %s.", card.Type, stage)
}

func (v *canvasView) View() string {
	st := v.state
	w, h := st.CanvasSize()
	if h <= 0 {
		return ""
	}

	var g *ghost
	dragging := ""
	if v.drag != nil {
		dragging = v.drag.label
		if cx, cy, inside := st.ToCanvas(v.drag.x, v.drag.y); inside {
			g = &ghost{label: v.drag.label, x: int(cx), y: int(cy)}
		}
	}

	sep := formatter.Dim(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderSidebar(st, dragging),
		sep,
		renderScene(st.Session.Scene(), w, h, g),
	)
}

func (v *canvasView) ID() ViewID    { return ViewCanvas }
func (v *canvasView) Title() string { return "" }
func (v *canvasView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "touchpoint")),
		key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-9", "place")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete hovered")),
	}
}
