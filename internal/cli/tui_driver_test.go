package cli

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/journeyviz/internal/config"
	"github.com/alexanderramin/journeyviz/internal/editor"
	"github.com/alexanderramin/journeyviz/internal/teatest"
	"github.com/alexanderramin/journeyviz/internal/template"
	"github.com/stretchr/testify/require"
)

// Terminal size used by TUI tests. With the default 22-cell sidebar the
// canvas is 90×36 cells: three 30-cell stage columns centered at 15, 45
// and 75, and a card top band of [3, 32].
const (
	testWidth  = 113
	testHeight = 40
)

// testClock is a hand-advanced clock shared by the session and the tests.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

// testApp wires an App with built-in templates and a fake clock.
func testApp(t *testing.T) (*App, *testClock) {
	t.Helper()
	reg, err := template.NewRegistry("")
	require.NoError(t, err)
	clock := &testClock{t: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)}
	return &App{
		Config:    config.Default(),
		Templates: reg,
		Clock:     clock.now,
	}, clock
}

// TestDriver wraps teatest.Driver with editor-specific inspection methods.
type TestDriver struct {
	*teatest.Driver
	Clock *testClock
}

// NewTestDriver constructs the appModel, sets the terminal size (which
// mounts the session) and drains Init().
func NewTestDriver(t *testing.T, app *App, clock *testClock) *TestDriver {
	t.Helper()

	m := newAppModel(app, nil)
	d := teatest.New(t, m, teatest.WithSize(testWidth, testHeight))
	d.DrainInit()

	return &TestDriver{Driver: d, Clock: clock}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Canvas converts canvas cell coordinates to screen coordinates.
func (d *TestDriver) Canvas(x, y int) (int, int) {
	ox, oy := d.State().CanvasOrigin()
	return x + ox, y + oy
}

// PaletteRow returns the screen row of palette entry i.
func (d *TestDriver) PaletteRow(i int) int {
	return headerRows + paletteTop(len(d.Session().Stages())) + i
}

// Settle advances the clock past every running transition and delivers a
// frame.
func (d *TestDriver) Settle() {
	d.T.Helper()
	d.Send(frameMsg(d.Clock.advance(time.Second)))
}

// PlainView returns the rendered view with ANSI sequences removed.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}

// ── Editor-specific inspection ───────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Session returns the editor session.
func (d *TestDriver) Session() *editor.Session {
	return d.State().Session
}

// Status returns the status bar message.
func (d *TestDriver) Status() string {
	return d.State().Status
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
