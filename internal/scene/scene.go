// Package scene is the in-memory retained scene graph the journey canvas is
// drawn from: grid separators, stage labels, column highlights and cards,
// plus the tweens that animate cards in and out.
package scene

import (
	"time"

	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/alexanderramin/journeyviz/internal/layout"
)

// HighlightOpacity is the fill opacity of the column under a dragged card.
const HighlightOpacity = 0.08

// Options sizes the delete glyph hit area of every card.
type Options struct {
	DeleteWidth  float64
	DeleteHeight float64
}

// DefaultOptions fits a one-cell glyph drawn on a card's top border.
func DefaultOptions() Options {
	return Options{DeleteWidth: 3, DeleteHeight: 1}
}

// Scene holds every drawable object. It is not safe for concurrent use; the
// editor drives it from a single event loop.
type Scene struct {
	opts       Options
	lines      []*GridLine
	labels     []*HeaderLabel
	highlights []*ColumnHighlight
	cards      []*CardNode
}

// New creates an empty scene.
func New(opts Options) *Scene {
	return &Scene{opts: opts}
}

// DrawGrid discards the previous grid and draws a fresh one for g: a
// vertical separator before every column except the first, a horizontal
// separator under the header band, a label per column and a hidden
// highlight per column. Cards are untouched.
func (s *Scene) DrawGrid(g *layout.Grid, stages []domain.Stage) {
	s.lines = s.lines[:0]
	s.labels = s.labels[:0]
	s.highlights = s.highlights[:0]

	m := g.Metrics()
	for _, c := range g.Columns() {
		if c.Index > 0 {
			s.lines = append(s.lines, &GridLine{X1: c.Start, Y1: 0, X2: c.Start, Y2: g.Height()})
		}
		if c.Index < len(stages) {
			s.labels = append(s.labels, &HeaderLabel{
				Column: c.Index,
				Text:   stages[c.Index].Label,
				X:      c.Center,
				Y:      m.HeaderHeight / 2,
			})
		}
		s.highlights = append(s.highlights, &ColumnHighlight{
			Column: c.Index,
			Rect:   layout.Rect{X: c.Start, Y: m.HeaderHeight, W: c.Width(), H: max(g.Height()-m.HeaderHeight, 0)},
		})
	}
	s.lines = append(s.lines, &GridLine{X1: 0, Y1: m.HeaderHeight, X2: g.Width(), Y2: m.HeaderHeight})
}

// Lines returns the grid separators.
func (s *Scene) Lines() []*GridLine { return append([]*GridLine(nil), s.lines...) }

// Labels returns the stage header labels.
func (s *Scene) Labels() []*HeaderLabel { return append([]*HeaderLabel(nil), s.labels...) }

// Highlights returns the per-column highlights.
func (s *Scene) Highlights() []*ColumnHighlight {
	return append([]*ColumnHighlight(nil), s.highlights...)
}

// HighlightColumn shows column i's highlight and hides all others.
func (s *Scene) HighlightColumn(i int) {
	for _, h := range s.highlights {
		if h.Column == i {
			h.Opacity = HighlightOpacity
		} else {
			h.Opacity = 0
		}
	}
}

// ClearHighlights hides every column highlight.
func (s *Scene) ClearHighlights() {
	for _, h := range s.highlights {
		h.Opacity = 0
	}
}

// HighlightedColumn returns the visible highlight's column, if any.
func (s *Scene) HighlightedColumn() (int, bool) {
	for _, h := range s.highlights {
		if h.Visible() {
			return h.Column, true
		}
	}
	return -1, false
}

// AddCard places c on top of the z-order. With a positive enter duration the
// card scales in from zero; otherwise it appears at full size.
func (s *Scene) AddCard(c *domain.Card, width, height float64, now time.Time, enter time.Duration) *CardNode {
	n := &CardNode{
		Card:       c,
		Width:      width,
		Height:     height,
		Scale:      1,
		Opacity:    1,
		Shadow:     BaseShadow,
		DeleteTint: DeleteTintBase,
		deleteW:    s.opts.DeleteWidth,
		deleteH:    s.opts.DeleteHeight,
	}
	if enter > 0 {
		n.Scale = 0
		n.scale = &Tween{From: 0, To: 1, Start: now, Duration: enter, Ease: EaseOutCubic}
	}
	s.cards = append(s.cards, n)
	return n
}

// Card looks up a card node by card ID.
func (s *Scene) Card(id string) (*CardNode, bool) {
	for _, n := range s.cards {
		if n.Card.ID == id {
			return n, true
		}
	}
	return nil, false
}

// Cards returns card nodes bottom to top.
func (s *Scene) Cards() []*CardNode { return append([]*CardNode(nil), s.cards...) }

// CardCount returns the number of cards in the scene, exiting ones included.
func (s *Scene) CardCount() int { return len(s.cards) }

// BeginExit starts the shrink-and-fade transition for a card. The card stays
// in the scene until Advance passes the end of the transition. Returns false
// if the card is unknown or already exiting.
func (s *Scene) BeginExit(id string, now time.Time, d time.Duration) bool {
	n, ok := s.Card(id)
	if !ok || n.exiting {
		return false
	}
	n.exiting = true
	n.scale = &Tween{From: n.Scale, To: 0, Start: now, Duration: d, Ease: EaseOutCubic}
	n.opacity = &Tween{From: n.Opacity, To: 0, Start: now, Duration: d, Ease: EaseOutCubic}
	return true
}

// RemoveCard drops a card immediately.
func (s *Scene) RemoveCard(id string) bool {
	for i, n := range s.cards {
		if n.Card.ID == id {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return true
		}
	}
	return false
}

// ClearCards removes every card.
func (s *Scene) ClearCards() {
	s.cards = nil
}

// Clear empties the whole scene.
func (s *Scene) Clear() {
	s.lines = nil
	s.labels = nil
	s.highlights = nil
	s.cards = nil
}

// Hit is the result of a hit test.
type Hit struct {
	Node *CardNode
	Part Part
}

// HitTest returns the topmost interactive card under (x, y). Cards playing
// their exit transition are skipped.
func (s *Scene) HitTest(x, y float64) (Hit, bool) {
	for i := len(s.cards) - 1; i >= 0; i-- {
		n := s.cards[i]
		if n.exiting || !n.Bounds().Contains(x, y) {
			continue
		}
		if n.DeleteRect().Contains(x, y) {
			return Hit{Node: n, Part: PartDelete}, true
		}
		return Hit{Node: n, Part: PartBody}, true
	}
	return Hit{}, false
}

// Advance steps every tween to now and removes cards whose exit finished.
// It returns the IDs of the removed cards.
func (s *Scene) Advance(now time.Time) []string {
	var removed []string
	kept := s.cards[:0]
	for _, n := range s.cards {
		scaleDone, opacityDone := true, true
		if n.scale != nil {
			n.Scale, scaleDone = n.scale.At(now)
			if scaleDone {
				n.scale = nil
			}
		}
		if n.opacity != nil {
			n.Opacity, opacityDone = n.opacity.At(now)
			if opacityDone {
				n.opacity = nil
			}
		}
		if n.exiting && scaleDone && opacityDone {
			removed = append(removed, n.Card.ID)
			continue
		}
		kept = append(kept, n)
	}
	for i := len(kept); i < len(s.cards); i++ {
		s.cards[i] = nil
	}
	s.cards = kept
	return removed
}

// Animating reports whether any card has a running tween.
func (s *Scene) Animating() bool {
	for _, n := range s.cards {
		if n.Animating() {
			return true
		}
	}
	return false
}

// Objects returns every object in draw order: highlights, grid lines,
// labels, then cards bottom to top.
func (s *Scene) Objects() []Object {
	objs := make([]Object, 0, len(s.highlights)+len(s.lines)+len(s.labels)+len(s.cards))
	for _, h := range s.highlights {
		objs = append(objs, h)
	}
	for _, l := range s.lines {
		objs = append(objs, l)
	}
	for _, l := range s.labels {
		objs = append(objs, l)
	}
	for _, n := range s.cards {
		objs = append(objs, n)
	}
	return objs
}
