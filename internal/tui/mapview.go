package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fjordhomes/listing-composer/internal/geocode"
)

// MapPane is the terminal stand-in for the web map. It tracks the current
// center, zoom and marker and renders them as a small info panel. The
// geocode resolver updates it from background goroutines, so access is
// mutex-guarded.
type MapPane struct {
	mu        sync.Mutex
	center    geocode.Coords
	zoom      int
	marker    geocode.Coords
	popup     string
	hasMarker bool
}

// NewMapPane creates a map pane centered on the default country.
func NewMapPane() *MapPane {
	return &MapPane{
		center: geocode.DefaultCenter,
		zoom:   geocode.ZoomCountry,
	}
}

// SetCenter implements geocode.MapView.
func (m *MapPane) SetCenter(c geocode.Coords, zoom int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.center = c
	m.zoom = zoom
}

// SetMarker implements geocode.MapView.
func (m *MapPane) SetMarker(c geocode.Coords, popup string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marker = c
	m.popup = popup
	m.hasMarker = true
}

// ClearMarker removes the marker from the pane.
func (m *MapPane) ClearMarker() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hasMarker = false
	m.popup = ""
}

// Center returns the pane's current center.
func (m *MapPane) Center() geocode.Coords {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.center
}

// Marker returns the marker position, if one is set.
func (m *MapPane) Marker() (geocode.Coords, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.marker, m.hasMarker
}

// View renders the pane.
func (m *MapPane) View() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var b strings.Builder
	b.WriteString(styleLabel.Render("Map"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("center %s, %s (zoom %d)\n",
		m.center.LatString(), m.center.LonString(), m.zoom))
	if m.hasMarker {
		b.WriteString(styleChecked.Render("📍 " + m.popup))
		b.WriteString("\n")
		b.WriteString(styleDim.Render(geocode.ViewerLink(m.marker)))
	} else {
		b.WriteString(styleDim.Render("no pin yet; type an address or paste a map link"))
	}
	return b.String()
}
