package domain

import "strings"

// TouchpointType is a palette entry: a labeled interaction kind that can be
// placed on the canvas as a card.
type TouchpointType struct {
	Label string
	Icon  string
}

// FallbackIcon is drawn for card labels that are not in the catalog.
const FallbackIcon = "◆"

var touchpoints = []TouchpointType{
	{Label: "Web", Icon: "◎"},
	{Label: "Email", Icon: "✉"},
	{Label: "Phone", Icon: "☎"},
	{Label: "In-person", Icon: "☺"},
}

// Touchpoints returns a copy of the read-only touchpoint catalog in palette order.
func Touchpoints() []TouchpointType {
	out := make([]TouchpointType, len(touchpoints))
	copy(out, touchpoints)
	return out
}

// LookupTouchpoint finds a catalog entry by label (case-insensitive).
func LookupTouchpoint(label string) (TouchpointType, bool) {
	label = strings.TrimSpace(label)
	for _, t := range touchpoints {
		if strings.EqualFold(t.Label, label) {
			return t, true
		}
	}
	return TouchpointType{}, false
}

// IconFor returns the catalog icon for label, or FallbackIcon.
func IconFor(label string) string {
	if t, ok := LookupTouchpoint(label); ok {
		return t.Icon
	}
	return FallbackIcon
}
