package domain

import "github.com/google/uuid"

// Card is a touchpoint placed on the canvas. X and Y are the top-left corner
// in canvas-local units. Hovered and Dragging are transient interaction flags.
type Card struct {
	ID       string
	Type     string
	X        float64
	Y        float64
	Hovered  bool
	Dragging bool
}

// NewCard creates an unplaced card for a touchpoint label.
func NewCard(label string) *Card {
	return &Card{
		ID:   uuid.New().String(),
		Type: label,
	}
}

// CenterX returns the horizontal center of the card for the given width.
func (c *Card) CenterX(width float64) float64 {
	return c.X + width/2
}

// ShortID returns the first 8 characters of the ID for display.
func (c *Card) ShortID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
