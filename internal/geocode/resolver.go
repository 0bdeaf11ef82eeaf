package geocode

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// MapView is the narrow port onto the map rendering collaborator: given
// coordinates, show a marker. Click events flow the other way, into
// Resolver.ClickPin.
type MapView interface {
	SetCenter(c Coords, zoom int)
	SetMarker(c Coords, popup string)
}

// Resolver keeps the map view and the draft's location synchronized with
// user input. Free-text input is debounced and geocoded; pasted coordinate
// links and direct map clicks apply immediately.
//
// Every input event bumps a generation counter, and a result is applied only
// if its generation is still current. A stale geocode response arriving
// after a newer event can therefore never overwrite fresher coordinates,
// regardless of completion order.
type Resolver struct {
	client *Client
	view   MapView
	apply  func(Coords)

	debounce  time.Duration
	minLength int

	mu     sync.Mutex
	timer  *time.Timer
	latest int64
}

// NewResolver creates a resolver that writes resolved coordinates through
// apply, typically into the draft's location record.
func NewResolver(client *Client, view MapView, apply func(Coords)) *Resolver {
	return &Resolver{
		client:    client,
		view:      view,
		apply:     apply,
		debounce:  500 * time.Millisecond,
		minLength: 3,
	}
}

// LocationInput handles a keystroke's worth of location text. Input with
// embedded coordinates is applied immediately; anything else is geocoded
// after a quiet period, and only once it reaches the minimum length, to
// avoid flooding the geocoding service.
func (r *Resolver) LocationInput(ctx context.Context, text, countryCode string) {
	gen := r.bump()

	if coords, ok := ParseCoords(text); ok {
		r.applyAt(gen, coords, ZoomStreet)
		return
	}

	if len(strings.TrimSpace(text)) < r.minLength {
		return
	}

	r.mu.Lock()
	r.timer = time.AfterFunc(r.debounce, func() {
		coords, err := r.client.Resolve(ctx, text, countryCode)
		if err != nil {
			// Non-fatal: the draft's location keeps its last known value.
			slog.Debug("geocode lookup failed", "query", text, "error", err)
			return
		}
		r.applyAt(gen, coords, ZoomStreet)
	})
	r.mu.Unlock()
}

// ClickPin applies a direct map click. A click always wins over any
// in-flight debounced geocode.
func (r *Resolver) ClickPin(c Coords) {
	gen := r.bump()
	r.applyAt(gen, c, ZoomStreet)
}

// SetCountry recenters the map to the country's registered centroid without
// touching entered street/city text. When no address text exists yet, the
// country name alone is geocoded so the draft gets coordinates too.
func (r *Resolver) SetCountry(ctx context.Context, code string, hasAddress bool) {
	info, ok := CountryInfo(code)
	if !ok {
		slog.Debug("unknown country code", "code", code)
		return
	}
	r.view.SetCenter(info.Center, info.Zoom)

	if hasAddress {
		return
	}

	gen := r.bump()
	go func() {
		coords, err := r.client.Resolve(ctx, info.Name, code)
		if err != nil {
			slog.Debug("country geocode failed", "country", info.Name, "error", err)
			return
		}
		r.applyAt(gen, coords, info.Zoom)
	}()
}

// bump records a new input event: cancel any pending debounce and return the
// new current generation.
func (r *Resolver) bump() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.latest++
	return r.latest
}

// applyAt writes coordinates to the draft and map if gen is still current.
func (r *Resolver) applyAt(gen int64, c Coords, zoom int) {
	r.mu.Lock()
	if gen != r.latest {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	r.apply(c)
	r.view.SetCenter(c, zoom)
	r.view.SetMarker(c, Popup(c))
}

// Popup renders the human-readable marker popup, including a link to an
// external map viewer.
func Popup(c Coords) string {
	return fmt.Sprintf("%.4f, %.4f (%s)", c.Lat, c.Lon, ViewerLink(c))
}

// ViewerLink derives an external map viewer URL for a coordinate pair.
func ViewerLink(c Coords) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%s&mlon=%s#map=%d/%s/%s",
		c.LatString(), c.LonString(), ZoomStreet, c.LatString(), c.LonString())
}
