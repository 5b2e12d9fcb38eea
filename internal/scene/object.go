package scene

import (
	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/alexanderramin/journeyviz/internal/layout"
)

// Kind tags the variant of a scene Object.
type Kind int

const (
	KindGridLine Kind = iota
	KindHeaderLabel
	KindColumnHighlight
	KindCard
)

func (k Kind) String() string {
	switch k {
	case KindGridLine:
		return "grid_line"
	case KindHeaderLabel:
		return "header_label"
	case KindColumnHighlight:
		return "column_highlight"
	case KindCard:
		return "card"
	default:
		return "unknown"
	}
}

// Object is the closed set of things a Scene holds. The unexported method
// keeps the variant list to the four types in this file.
type Object interface {
	Kind() Kind
	Bounds() layout.Rect
	sceneObject()
}

// GridLine is a separator segment. Vertical lines divide columns; the one
// horizontal line sits under the header band.
type GridLine struct {
	X1, Y1, X2, Y2 float64
}

func (l *GridLine) Kind() Kind { return KindGridLine }

func (l *GridLine) Bounds() layout.Rect {
	return layout.Rect{X: min(l.X1, l.X2), Y: min(l.Y1, l.Y2), W: abs(l.X2 - l.X1), H: abs(l.Y2 - l.Y1)}
}

// Vertical reports whether the line runs top to bottom.
func (l *GridLine) Vertical() bool { return l.X1 == l.X2 }

func (*GridLine) sceneObject() {}

// HeaderLabel is a stage name centered at (X, Y) inside the header band.
type HeaderLabel struct {
	Column int
	Text   string
	X, Y   float64
}

func (h *HeaderLabel) Kind() Kind { return KindHeaderLabel }

func (h *HeaderLabel) Bounds() layout.Rect {
	return layout.Rect{X: h.X, Y: h.Y}
}

func (*HeaderLabel) sceneObject() {}

// ColumnHighlight is the faint fill shown behind a column while a card is
// dragged over it. Opacity 0 means hidden.
type ColumnHighlight struct {
	Column  int
	Rect    layout.Rect
	Opacity float64
}

func (c *ColumnHighlight) Kind() Kind { return KindColumnHighlight }

func (c *ColumnHighlight) Bounds() layout.Rect { return c.Rect }

// Visible reports whether the highlight is drawn.
func (c *ColumnHighlight) Visible() bool { return c.Opacity > 0 }

func (*ColumnHighlight) sceneObject() {}

// Shadow is the drop shadow under a card panel.
type Shadow struct {
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// Presentation values for card hover feedback.
var (
	BaseShadow      = Shadow{Blur: 5, OffsetX: 2, OffsetY: 2}
	HoverShadow     = Shadow{Blur: 10, OffsetX: 4, OffsetY: 4}
	DeleteTintBase  = "#a89984"
	DeleteTintHover = "#9d0006"
)

// Part identifies which region of a card a hit landed on.
type Part int

const (
	PartBody Part = iota
	PartDelete
)

// CardNode is the composite visual for a placed card: panel, label and
// delete glyph moving as one unit.
type CardNode struct {
	Card       *domain.Card
	Width      float64
	Height     float64
	Scale      float64
	Opacity    float64
	Shadow     Shadow
	DeleteTint string

	deleteW float64
	deleteH float64
	exiting bool
	scale   *Tween
	opacity *Tween
}

func (n *CardNode) Kind() Kind { return KindCard }

// Bounds returns the unscaled rectangle of the card at its current position.
func (n *CardNode) Bounds() layout.Rect {
	return layout.Rect{X: n.Card.X, Y: n.Card.Y, W: n.Width, H: n.Height}
}

// ScaledBounds returns the rectangle as drawn, scaled about the card center.
func (n *CardNode) ScaledBounds() layout.Rect {
	b := n.Bounds()
	w, h := b.W*n.Scale, b.H*n.Scale
	return layout.Rect{X: b.X + (b.W-w)/2, Y: b.Y + (b.H-h)/2, W: w, H: h}
}

// DeleteRect returns the delete glyph hit area in the top-right corner.
func (n *CardNode) DeleteRect() layout.Rect {
	return layout.Rect{X: n.Card.X + n.Width - n.deleteW, Y: n.Card.Y, W: n.deleteW, H: n.deleteH}
}

// MoveTo sets the card's top-left corner.
func (n *CardNode) MoveTo(x, y float64) {
	n.Card.X = x
	n.Card.Y = y
}

// SetHover applies or reverts the hover presentation.
func (n *CardNode) SetHover(hovered bool) {
	n.Card.Hovered = hovered
	if hovered {
		n.Shadow = HoverShadow
		n.DeleteTint = DeleteTintHover
		return
	}
	n.Shadow = BaseShadow
	n.DeleteTint = DeleteTintBase
}

// Exiting reports whether the card is playing its exit transition.
func (n *CardNode) Exiting() bool { return n.exiting }

// Animating reports whether any tween is still attached.
func (n *CardNode) Animating() bool { return n.scale != nil || n.opacity != nil }

func (*CardNode) sceneObject() {}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
