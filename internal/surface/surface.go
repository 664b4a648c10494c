// Package surface is an in-memory map widget: it places markers, binds their
// popups and keeps the attached ones in an R-Tree for viewport queries.
package surface

import (
	"fmt"
	"slices"
	"sync"

	"placemap-api/internal/models"
	"placemap-api/internal/popup"

	"github.com/dhconnelly/rtreego"
)

const (
	tolerance   = 1e-6
	minChildren = 2
	maxChildren = 8
	dimensions  = 2
)

// Marker is the on-map representation of a place.
type Marker struct {
	ID           int
	Lat          float64
	Lng          float64
	Icon         popup.IconSpec
	Popup        string
	PopupOptions popup.Options
	rect         *rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (m *Marker) Bounds() *rtreego.Rect {
	return m.rect
}

// Layer is a thread-safe rendering surface.
type Layer struct {
	mu       sync.RWMutex
	tree     *rtreego.Rtree
	attached map[*Marker]struct{}
	nextID   int
}

// NewLayer creates an empty surface.
func NewLayer() *Layer {
	return &Layer{
		tree:     rtreego.NewTree(dimensions, minChildren, maxChildren),
		attached: make(map[*Marker]struct{}),
	}
}

// Place creates a detached marker at the given position.
func (l *Layer) Place(lat, lng float64, icon popup.IconSpec) *Marker {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	return &Marker{
		ID:   l.nextID,
		Lat:  lat,
		Lng:  lng,
		Icon: icon,
		rect: rtreego.Point{lat, lng}.ToRect(tolerance),
	}
}

// BindPopup sets the popup content shown when the marker is opened.
func (l *Layer) BindPopup(m *Marker, content string, opts popup.Options) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m.Popup = content
	m.PopupOptions = opts
}

// Attach renders the marker. Attaching an attached marker does nothing.
func (l *Layer) Attach(m *Marker) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.attached[m]; ok {
		return
	}
	l.attached[m] = struct{}{}
	l.tree.Insert(m)
}

// Detach removes the marker from the surface. Detaching an absent marker does nothing.
func (l *Layer) Detach(m *Marker) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.attached[m]; !ok {
		return
	}
	delete(l.attached, m)
	l.tree.Delete(m)
}

// IsAttached reports whether the marker is currently rendered.
func (l *Layer) IsAttached(m *Marker) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.attached[m]
	return ok
}

// Attached returns the number of rendered markers.
func (l *Layer) Attached() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.attached)
}

// InView returns the rendered markers inside box, ordered by marker ID.
func (l *Layer) InView(box models.BoundingBox) ([]*Marker, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bounds, err := rtreego.NewRect(
		rtreego.Point{box.MinLat, box.MinLng},
		[]float64{
			max(box.MaxLat-box.MinLat, tolerance),
			max(box.MaxLng-box.MinLng, tolerance),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("surface: invalid bounding box: %w", err)
	}

	results := l.tree.SearchIntersect(bounds)

	markers := make([]*Marker, 0, len(results))
	for _, result := range results {
		m, ok := result.(*Marker)
		if !ok || !box.Contains(m.Lat, m.Lng) {
			continue
		}
		markers = append(markers, m)
	}

	slices.SortFunc(markers, func(a, b *Marker) int {
		return a.ID - b.ID
	})
	return markers, nil
}
