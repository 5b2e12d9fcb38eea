package editor

import "github.com/alexanderramin/journeyviz/internal/scene"

// cardController is the CardHandler for one card. It applies the snapping
// and clamping rules against the session's current grid.
type cardController struct {
	session *Session
	id      string
}

func (c *cardController) node() (*scene.CardNode, bool) {
	if c.session.grid == nil {
		return nil, false
	}
	return c.session.scene.Card(c.id)
}

func (c *cardController) OnHoverChange(hovered bool) {
	n, ok := c.node()
	if !ok {
		return
	}
	n.SetHover(hovered)
	c.session.changed()
}

// OnDragMove snaps the card to the column under its center and clamps it
// vertically. With the center off the canvas the horizontal position
// follows the pointer and no column is highlighted.
func (c *cardController) OnDragMove(left, top float64) {
	n, ok := c.node()
	if !ok {
		return
	}
	g := c.session.grid
	sc := c.session.scene

	n.Card.Dragging = true
	if col, ok := g.ColumnAt(left + n.Width/2); ok {
		left = g.SnapLeft(col)
		sc.HighlightColumn(col)
	} else {
		sc.ClearHighlights()
	}
	n.MoveTo(left, g.ClampTop(top))
	c.session.changed()
}

// OnDragEnd leaves the card on the nearest column center so no resting
// card straddles two columns.
func (c *cardController) OnDragEnd() {
	n, ok := c.node()
	if !ok {
		return
	}
	g := c.session.grid
	c.session.scene.ClearHighlights()
	n.Card.Dragging = false

	col, ok := g.Nearest(n.Card.CenterX(n.Width))
	if ok {
		n.MoveTo(g.SnapLeft(col), g.ClampTop(n.Card.Y))
	}
	c.session.observe(Event{Name: EventCardMoved, CardID: c.id, Fields: map[string]any{
		"column": col,
		"top":    n.Card.Y,
	}})
	c.session.changed()
}

func (c *cardController) OnDelete() {
	c.session.Delete(c.id)
}
