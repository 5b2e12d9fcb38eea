package cli

import (
	"github.com/alexanderramin/journeyviz/internal/editor"
	"github.com/alexanderramin/journeyviz/internal/template"
)

// Screen rows taken by the navigation bar and the status bar.
const (
	headerRows = 2
	footerRows = 2
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	Session *editor.Session
	Bus     *editor.ResizeBus

	// Pending is applied once the session is mounted.
	Pending *template.Template

	// Terminal dimensions
	Width  int
	Height int

	// Selected is the highlighted palette entry.
	Selected int

	// Ticking is set while a frame tick is scheduled.
	Ticking bool

	// Status is the latest one-line message for the status bar.
	Status string
}

// ContentHeight returns the rows between the navigation and status bars.
func (s *SharedState) ContentHeight() int {
	return max(s.Height-headerRows-footerRows, 0)
}

// SidebarWidth returns the palette column width, leaving the canvas at
// least one cell.
func (s *SharedState) SidebarWidth() int {
	return max(min(s.App.Config.SidebarWidth, s.Width-2), 0)
}

// CanvasOrigin returns the screen cell of canvas coordinate (0, 0).
func (s *SharedState) CanvasOrigin() (x, y int) {
	return s.SidebarWidth() + 1, headerRows
}

// CanvasSize returns the canvas dimensions in cells.
func (s *SharedState) CanvasSize() (w, h int) {
	return max(s.Width-s.SidebarWidth()-1, 0), s.ContentHeight()
}

// ToCanvas converts a screen cell to canvas coordinates at the cell center
// and reports whether the cell lies on the canvas.
func (s *SharedState) ToCanvas(x, y int) (cx, cy float64, inside bool) {
	ox, oy := s.CanvasOrigin()
	w, h := s.CanvasSize()
	lx, ly := x-ox, y-oy
	inside = lx >= 0 && ly >= 0 && lx < w && ly < h
	return float64(lx) + 0.5, float64(ly) + 0.5, inside
}
