// Package editor implements the journey canvas editor: dropping touchpoint
// cards onto stage columns, dragging them with column snapping, hover
// feedback and animated deletion. It is independent of any terminal or
// rendering library; hosts feed it pointer events and draw its scene.
package editor

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/alexanderramin/journeyviz/internal/layout"
	"github.com/alexanderramin/journeyviz/internal/scene"
	"github.com/alexanderramin/journeyviz/internal/template"
)

// Config holds the geometry and timing a session is created with.
type Config struct {
	Stages        []domain.Stage
	Metrics       layout.Metrics
	Scene         scene.Options
	EnterDuration time.Duration
	ExitDuration  time.Duration
}

// DefaultConfig returns terminal-cell geometry with 200ms transitions.
func DefaultConfig() Config {
	return Config{
		Stages:        domain.DefaultStages(),
		Metrics:       layout.Metrics{HeaderHeight: 2, Padding: 1, CardWidth: 14, CardHeight: 3},
		Scene:         scene.DefaultOptions(),
		EnterDuration: 200 * time.Millisecond,
		ExitDuration:  200 * time.Millisecond,
	}
}

// Option configures a Session.
type Option func(*Session)

// WithConfig replaces the session configuration.
func WithConfig(cfg Config) Option {
	return func(s *Session) { s.cfg = cfg }
}

// WithObserver sets the event observer.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithClock sets the time source used to start transitions.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithOnChange sets a callback run after any change that needs a redraw.
func WithOnChange(fn func()) Option {
	return func(s *Session) { s.onChange = fn }
}

// Session owns one canvas: its scene, grid, dispatcher and subscriptions.
// All methods must be called from the host's event loop. After Dispose every
// method is a no-op.
type Session struct {
	cfg        Config
	scene      *scene.Scene
	grid       *layout.Grid
	dispatcher *Dispatcher
	observer   Observer
	now        func() time.Time
	onChange   func()

	releases []func()
	mounted  bool
	disposed bool
}

// NewSession creates an unmounted session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		cfg:      DefaultConfig(),
		observer: NoopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.scene = scene.New(s.cfg.Scene)
	s.dispatcher = NewDispatcher(s.scene)
	return s
}

// Mount draws the grid at the initial size and subscribes to src for later
// size changes. src may be nil when the host calls Resize directly. Mounting
// twice, or after Dispose, returns false.
func (s *Session) Mount(src ResizeSource, width, height float64) bool {
	if s.disposed || s.mounted {
		return false
	}
	s.mounted = true
	s.layout(width, height)
	if src != nil {
		s.releases = append(s.releases, src.Subscribe(s.Resize))
	}
	return true
}

// Resize clears and redraws the grid at the new size. Existing cards keep
// their stage and are re-snapped to its new center. Before Mount, or after
// Dispose, it does nothing.
func (s *Session) Resize(width, height float64) {
	if s.disposed || s.grid == nil {
		return
	}
	s.layout(width, height)
}

func (s *Session) layout(width, height float64) {
	prev := s.grid
	columns := make(map[string]int)
	if prev != nil {
		for _, n := range s.scene.Cards() {
			if col, ok := prev.Nearest(n.Card.CenterX(n.Width)); ok {
				columns[n.Card.ID] = col
			}
		}
	}

	s.grid = layout.NewGrid(width, height, len(s.cfg.Stages), s.cfg.Metrics)
	s.scene.DrawGrid(s.grid, s.cfg.Stages)

	for _, n := range s.scene.Cards() {
		col, ok := columns[n.Card.ID]
		if !ok || s.grid.ColumnCount() == 0 {
			continue
		}
		if col >= s.grid.ColumnCount() {
			col = s.grid.ColumnCount() - 1
		}
		n.MoveTo(s.grid.SnapLeft(col), s.grid.ClampTop(n.Card.Y))
	}

	s.observe(Event{Name: EventGridDrawn, Fields: map[string]any{
		"width":   width,
		"height":  height,
		"columns": s.grid.ColumnCount(),
	}})
	s.changed()
}

// Dispose releases every subscription taken by Mount and empties the scene.
// It is safe to call more than once.
func (s *Session) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
	s.dispatcher.Reset()
	s.scene.Clear()
	s.grid = nil
	s.observe(Event{Name: EventSessionDisposed})
}

// Disposed reports whether Dispose has run.
func (s *Session) Disposed() bool { return s.disposed }

// Scene returns the scene for drawing.
func (s *Session) Scene() *scene.Scene { return s.scene }

// Grid returns the current grid, or nil before Mount and after Dispose.
func (s *Session) Grid() *layout.Grid { return s.grid }

// Dispatcher returns the pointer event dispatcher.
func (s *Session) Dispatcher() *Dispatcher { return s.dispatcher }

// Stages returns the session's stages.
func (s *Session) Stages() []domain.Stage {
	return append([]domain.Stage(nil), s.cfg.Stages...)
}

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Cards returns a snapshot of the cards bottom to top, exiting ones excluded.
func (s *Session) Cards() []domain.Card {
	var out []domain.Card
	for _, n := range s.scene.Cards() {
		if n.Exiting() {
			continue
		}
		out = append(out, *n.Card)
	}
	return out
}

// ColumnOf returns the column a card currently sits in, derived from its
// center.
func (s *Session) ColumnOf(cardID string) (int, bool) {
	if s.grid == nil {
		return -1, false
	}
	n, ok := s.scene.Card(cardID)
	if !ok {
		return -1, false
	}
	return s.grid.ColumnAt(n.Card.CenterX(n.Width))
}

// Drop creates a card for a dropped touchpoint label at canvas point (x, y).
// The card is centered in the column under x (the nearest column when x is
// off the canvas) and vertically clamped into the drawable band. An empty
// label, or a session without a grid, is ignored.
func (s *Session) Drop(label string, x, y float64) (*domain.Card, bool) {
	if s.disposed || s.grid == nil {
		return nil, false
	}
	label = strings.TrimSpace(label)
	if label == "" {
		s.observe(Event{Name: EventDropIgnored, Fields: map[string]any{"reason": "empty payload"}})
		return nil, false
	}
	col, ok := s.grid.ColumnAt(x)
	if !ok {
		col, ok = s.grid.Nearest(x)
	}
	if !ok {
		s.observe(Event{Name: EventDropIgnored, Fields: map[string]any{"reason": "no columns"}})
		return nil, false
	}

	m := s.cfg.Metrics
	c := s.spawn(label, s.grid.SnapLeft(col), s.grid.ClampTop(y-m.CardHeight/2))
	s.observe(Event{Name: EventCardSpawned, CardID: c.ID, Fields: map[string]any{
		"touchpoint": label,
		"column":     col,
	}})
	s.changed()
	return c, true
}

func (s *Session) spawn(label string, x, y float64) *domain.Card {
	m := s.cfg.Metrics
	c := domain.NewCard(label)
	c.X, c.Y = x, y
	s.scene.AddCard(c, m.CardWidth, m.CardHeight, s.now(), s.cfg.EnterDuration)
	s.dispatcher.Register(c.ID, &cardController{session: s, id: c.ID})
	return c
}

// Delete starts a card's exit transition and detaches it from input at
// once. The card leaves the scene when Advance passes the transition end.
func (s *Session) Delete(cardID string) bool {
	if s.disposed {
		return false
	}
	if !s.scene.BeginExit(cardID, s.now(), s.cfg.ExitDuration) {
		return false
	}
	if n, ok := s.scene.Card(cardID); ok {
		n.Card.Dragging = false
	}
	s.dispatcher.Unregister(cardID)
	s.observe(Event{Name: EventCardDeleted, CardID: cardID})
	s.changed()
	return true
}

// Advance steps running transitions to now. It reports whether anything
// changed, including cards removed after their exit transition.
func (s *Session) Advance(now time.Time) bool {
	if s.disposed {
		return false
	}
	animating := s.scene.Animating()
	removed := s.scene.Advance(now)
	for _, id := range removed {
		s.observe(Event{Name: EventCardRemoved, CardID: id})
	}
	if animating {
		s.changed()
	}
	return animating
}

// Animating reports whether a transition is running.
func (s *Session) Animating() bool {
	return !s.disposed && s.scene.Animating()
}

// NewJourney removes every card immediately.
func (s *Session) NewJourney() {
	if s.disposed {
		return
	}
	count := s.scene.CardCount()
	s.dispatcher.Reset()
	s.scene.ClearCards()
	s.scene.ClearHighlights()
	s.observe(Event{Name: EventJourneyCleared, Fields: map[string]any{"cards": count}})
	s.changed()
}

// ApplyTemplate replaces the journey with a template's cards. Cards naming
// an unknown stage are skipped. It returns the number of cards placed.
func (s *Session) ApplyTemplate(t *template.Template) int {
	if s.disposed || s.grid == nil || t == nil {
		return 0
	}
	s.NewJourney()

	m := s.cfg.Metrics
	lo, _ := s.grid.Band()
	placed := 0
	for _, spec := range t.Cards {
		col := domain.StageIndex(s.cfg.Stages, spec.Stage)
		if col < 0 || col >= s.grid.ColumnCount() {
			continue
		}
		top := s.grid.ClampTop(lo + float64(spec.Row)*(m.CardHeight+m.Padding))
		s.spawn(spec.Touchpoint, s.grid.SnapLeft(col), top)
		placed++
	}
	s.observe(Event{Name: EventTemplateApplied, Fields: map[string]any{
		"template": t.ID,
		"cards":    placed,
	}})
	s.changed()
	return placed
}

func (s *Session) observe(e Event) {
	s.observer.ObserveEditor(context.Background(), e)
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
