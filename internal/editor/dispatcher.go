package editor

import "github.com/alexanderramin/journeyviz/internal/scene"

// CardHandler is the per-card interaction contract. The Dispatcher decides
// which card an event belongs to and calls exactly one of these.
type CardHandler interface {
	OnHoverChange(hovered bool)
	// OnDragMove proposes a new top-left corner while the card is dragged.
	OnDragMove(left, top float64)
	OnDragEnd()
	OnDelete()
}

type press struct {
	cardID   string
	grabX    float64
	grabY    float64
	startX   float64
	startY   float64
	dragging bool
}

// Dispatcher owns hit-testing and routes pointer events to card handlers.
// Each card is Idle until a pointer-down on its body is followed by a move,
// Dragging until the pointer is released, then Idle again.
type Dispatcher struct {
	scene    *scene.Scene
	handlers map[string]CardHandler
	hovered  string
	press    *press
}

// NewDispatcher creates a dispatcher that hit-tests against sc.
func NewDispatcher(sc *scene.Scene) *Dispatcher {
	return &Dispatcher{scene: sc, handlers: make(map[string]CardHandler)}
}

// Register attaches h to card id, replacing any previous handler.
func (d *Dispatcher) Register(id string, h CardHandler) {
	d.handlers[id] = h
}

// Unregister detaches card id and forgets any hover or press on it. A drag
// of that card ends here, so its column highlight is cleared too.
func (d *Dispatcher) Unregister(id string) {
	delete(d.handlers, id)
	if d.hovered == id {
		d.hovered = ""
	}
	if d.press != nil && d.press.cardID == id {
		if d.press.dragging {
			d.scene.ClearHighlights()
		}
		d.press = nil
	}
}

// Reset detaches every handler.
func (d *Dispatcher) Reset() {
	d.handlers = make(map[string]CardHandler)
	d.hovered = ""
	d.press = nil
}

// Handlers returns the number of registered cards.
func (d *Dispatcher) Handlers() int { return len(d.handlers) }

// Hovered returns the ID of the hovered card, or "".
func (d *Dispatcher) Hovered() string { return d.hovered }

// Dragging returns the ID of the card being dragged.
func (d *Dispatcher) Dragging() (string, bool) {
	if d.press == nil || !d.press.dragging {
		return "", false
	}
	return d.press.cardID, true
}

// PointerDown handles a button press at canvas coordinates. A press on a
// delete glyph deletes that card and does not arm a drag. It reports whether
// a card consumed the event.
func (d *Dispatcher) PointerDown(x, y float64) bool {
	hit, ok := d.scene.HitTest(x, y)
	if !ok {
		return false
	}
	id := hit.Node.Card.ID
	h, ok := d.handlers[id]
	if !ok {
		return false
	}

	if hit.Part == scene.PartDelete {
		d.press = nil
		if d.hovered == id {
			d.hovered = ""
		}
		h.OnDelete()
		return true
	}

	d.press = &press{
		cardID: id,
		grabX:  x - hit.Node.Card.X,
		grabY:  y - hit.Node.Card.Y,
		startX: x,
		startY: y,
	}
	return true
}

// PointerMove handles pointer motion. With a card pressed it drives the
// drag; otherwise it tracks hover. It reports whether any handler ran.
func (d *Dispatcher) PointerMove(x, y float64) bool {
	if d.press != nil {
		h, ok := d.handlers[d.press.cardID]
		if !ok {
			d.press = nil
			return false
		}
		if !d.press.dragging {
			if x == d.press.startX && y == d.press.startY {
				return false
			}
			d.press.dragging = true
		}
		h.OnDragMove(x-d.press.grabX, y-d.press.grabY)
		return true
	}
	return d.updateHover(x, y)
}

// PointerUp ends a press. A drag in progress is finished with OnDragEnd and
// hover is re-evaluated at the release point.
func (d *Dispatcher) PointerUp(x, y float64) bool {
	p := d.press
	d.press = nil
	changed := false
	if p != nil && p.dragging {
		if h, ok := d.handlers[p.cardID]; ok {
			h.OnDragEnd()
			changed = true
		}
	}
	if d.updateHover(x, y) {
		changed = true
	}
	return changed
}

// PointerLeave clears hover when the pointer exits the canvas. An active
// drag keeps going.
func (d *Dispatcher) PointerLeave() bool {
	if d.press != nil && d.press.dragging {
		return false
	}
	return d.setHover("")
}

func (d *Dispatcher) updateHover(x, y float64) bool {
	target := ""
	if hit, ok := d.scene.HitTest(x, y); ok {
		if _, registered := d.handlers[hit.Node.Card.ID]; registered {
			target = hit.Node.Card.ID
		}
	}
	return d.setHover(target)
}

func (d *Dispatcher) setHover(target string) bool {
	if target == d.hovered {
		return false
	}
	if h, ok := d.handlers[d.hovered]; ok {
		h.OnHoverChange(false)
	}
	d.hovered = target
	if h, ok := d.handlers[target]; ok {
		h.OnHoverChange(true)
	}
	return true
}
