package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartsOnCanvasWithGrid(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	assert.Equal(t, ViewCanvas, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	g := d.Session().Grid()
	require.NotNil(t, g)
	assert.Equal(t, 90.0, g.Width())
	assert.Equal(t, 36.0, g.Height())
	assert.Equal(t, 1, d.State().Bus.Len())

	view := d.PlainView()
	assert.Contains(t, view, "journeyviz")
	assert.Contains(t, view, "[n] New Journey")
	assert.Contains(t, view, "[t] Templates")
	assert.Contains(t, view, "Awareness")
	assert.Contains(t, view, "Consideration")
	assert.Contains(t, view, "TOUCHPOINTS")
	assert.Contains(t, view, "✉ Email")
}

func TestTUI_DragFromPaletteDropsCard(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	x, y := d.Canvas(50, 15)
	d.Press(5, d.PaletteRow(1))
	d.Move(x, y)
	assert.Contains(t, d.PlainView(), "[✉ Email]", "ghost follows the pointer")
	d.Release(x, y)

	cards := d.Session().Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "Email", cards[0].Type)
	assert.Equal(t, 45.0, cards[0].CenterX(14), "centered in the middle stage")
	assert.Equal(t, 14.0, cards[0].Y)
	assert.Equal(t, "Placed Email in Consideration.", d.Status())

	d.Settle()
	view := d.PlainView()
	assert.Contains(t, view, "✉ Email")
	assert.Contains(t, view, "×")
	assert.NotContains(t, view, "[✉ Email]")
}

func TestTUI_PaletteDropOutsideCanvasIgnored(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.Press(5, d.PaletteRow(0))
	d.Move(6, d.PaletteRow(3))
	d.Release(6, d.PaletteRow(3))

	assert.Empty(t, d.Session().Cards())
}

func TestTUI_DragCardSnapsToStage(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	x, y := d.Canvas(50, 15)
	d.Press(5, d.PaletteRow(0))
	d.Release(x, y)
	d.Settle()
	card := d.Session().Cards()[0]
	require.Equal(t, 38.0, card.X)

	// Grab the body and pull the card's center over the third stage.
	fromX, fromY := d.Canvas(40, 15)
	toX, toY := d.Canvas(70, 15)
	d.Press(fromX, fromY)
	d.Send(tea.MouseMsg{X: toX, Y: toY, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	id, dragging := d.Session().Dispatcher().Dragging()
	require.True(t, dragging)
	assert.Equal(t, card.ID, id)
	col, ok := d.Session().Scene().HighlightedColumn()
	require.True(t, ok)
	assert.Equal(t, 2, col)

	d.Release(toX, toY)
	moved := d.Session().Cards()[0]
	assert.Equal(t, 75.0, moved.CenterX(14))
	_, ok = d.Session().Scene().HighlightedColumn()
	assert.False(t, ok)
}

func TestTUI_ClickDeleteGlyph(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.PressKey('1')
	d.PressKey('1')
	d.Settle()
	require.Len(t, d.Session().Cards(), 2)

	// First card: left 8, top 3, so the glyph sits at column 8+14-2.
	x, y := d.Canvas(20, 3)
	d.Click(x, y)
	assert.Len(t, d.Session().Cards(), 1)
	assert.Equal(t, 2, d.Session().Scene().CardCount(), "exit transition still playing")

	d.Settle()
	assert.Equal(t, 1, d.Session().Scene().CardCount())
}

func TestTUI_HoverAndDeleteKey(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.PressKey('3')
	d.Settle()
	card := d.Session().Cards()[0]

	d.PressKey('d')
	assert.Equal(t, "Point at a card to delete it.", d.Status())

	x, y := d.Canvas(72, 4)
	d.Move(x, y)
	assert.Equal(t, card.ID, d.Session().Dispatcher().Hovered())

	d.PressKey('d')
	assert.Empty(t, d.Session().Cards())
	assert.Equal(t, "Deleted card.", d.Status())
}

func TestTUI_KeyboardPlacementStacks(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.PressDown()
	assert.Equal(t, 1, d.State().Selected)
	d.PressKey('2')
	d.PressKey('2')

	cards := d.Session().Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "Email", cards[0].Type)
	assert.Equal(t, 45.0, cards[0].CenterX(14))
	assert.Equal(t, 3.0, cards[0].Y)
	assert.Equal(t, 7.0, cards[1].Y, "second card sits one card plus padding lower")

	d.PressKey('9')
	assert.Len(t, d.Session().Cards(), 2)
	assert.Equal(t, "There is no stage 9.", d.Status())

	d.PressUp()
	d.PressUp()
	assert.Equal(t, 3, d.State().Selected, "selection wraps")
}

func TestTUI_ResizeRedrawsAndResnaps(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.PressKey('2')
	d.Send(tea.WindowSizeMsg{Width: 143, Height: 30})

	g := d.Session().Grid()
	require.NotNil(t, g)
	assert.Equal(t, 120.0, g.Width())
	assert.Equal(t, 26.0, g.Height())
	assert.Equal(t, 60.0, d.Session().Cards()[0].CenterX(14))
}

func TestTUI_NewJourneyConfirm(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.PressKey('n')
	assert.Equal(t, ViewCanvas, d.ActiveViewID(), "empty canvas clears without asking")
	assert.Equal(t, "Started a new journey.", d.Status())

	d.PressKey('1')
	d.PressKey('n')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.PlainView(), "Discard the current journey?")

	d.PressEnter()
	assert.Equal(t, ViewCanvas, d.ActiveViewID())
	assert.Empty(t, d.Session().Cards())
}

func TestTUI_NewJourneyCancel(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.PressKey('1')
	d.PressKey('n')
	require.Equal(t, ViewForm, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewCanvas, d.ActiveViewID())
	assert.Len(t, d.Session().Cards(), 1)
	assert.Equal(t, "Cancelled.", d.Status())
}

func TestTUI_TemplatePicker(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.PressKey('t')
	require.Equal(t, ViewForm, d.ActiveViewID())
	view := d.PlainView()
	assert.Contains(t, view, "E-commerce Journey (6 cards)")
	assert.Contains(t, view, "Templates")

	d.PressDown()
	d.PressEnter()

	assert.Equal(t, ViewCanvas, d.ActiveViewID())
	assert.Len(t, d.Session().Cards(), 5)
	assert.Equal(t, "Applied SaaS Onboarding (5 cards).", d.Status())
}

func TestTUI_NavBarClick(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	spans := navLayout()
	require.Len(t, spans, 3)
	d.Click(spans[1].start+1, 0)
	assert.Equal(t, ViewForm, d.ActiveViewID())

	d.PressEsc()
	d.Click(spans[2].start, 0)
	assert.Equal(t, ViewHelp, d.ActiveViewID())
}

func TestTUI_HelpToggle(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.PressKey('?')
	require.Equal(t, ViewHelp, d.ActiveViewID())
	view := d.PlainView()
	assert.Contains(t, view, "Mouse")
	assert.Contains(t, view, "Help")

	d.PressKey('n')
	assert.Equal(t, ViewHelp, d.ActiveViewID(), "nav actions wait for the canvas")

	d.PressKey('?')
	assert.Equal(t, ViewCanvas, d.ActiveViewID())

	d.PressKey('?')
	d.PressEsc()
	assert.Equal(t, ViewCanvas, d.ActiveViewID())
}

func TestTUI_QuitDisposesSession(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)
	bus := d.State().Bus

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
	assert.True(t, d.Session().Disposed())
	assert.Zero(t, bus.Len())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
	assert.True(t, d.Session().Disposed())
}

func TestTUI_InitialTemplateAppliedOnMount(t *testing.T) {
	app, _ := testApp(t)
	tpl, err := app.Templates.Get("service-blueprint")
	require.NoError(t, err)

	m := newAppModel(app, tpl)
	model, _ := m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	m = model.(appModel)

	assert.Len(t, m.state.Session.Cards(), 5)
	assert.Nil(t, m.state.Pending)
	assert.Equal(t, "Applied Service Blueprint (5 cards).", m.state.Status)
}

func TestTUI_TemplatesReloadedStatus(t *testing.T) {
	app, clock := testApp(t)
	d := NewTestDriver(t, app, clock)

	d.Send(templatesReloadedMsg{})
	assert.Equal(t, "Templates reloaded (3 available).", d.Status())
}
