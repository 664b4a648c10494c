// Package markers owns the marker entries of a map session and their on-map visibility.
package markers

import (
	"errors"
	"fmt"

	"placemap-api/internal/models"
	"placemap-api/internal/popup"
	"placemap-api/internal/surface"

	"github.com/samber/lo"
)

var (
	// ErrCategoryUnknown marks a place whose category is not in the dataset.
	ErrCategoryUnknown = errors.New("markers: category unknown")
	// ErrInvalidCoordinates marks a place outside the valid geographic range.
	ErrInvalidCoordinates = errors.New("markers: invalid coordinates")
	// ErrUnknownHandle is returned for a handle the store never issued.
	ErrUnknownHandle = errors.New("markers: unknown marker handle")
)

// Surface is the map widget markers are rendered on.
type Surface interface {
	Place(lat, lng float64, icon popup.IconSpec) *surface.Marker
	BindPopup(m *surface.Marker, content string, opts popup.Options)
	Attach(m *surface.Marker)
	Detach(m *surface.Marker)
}

// Handle identifies a marker entry. Handles are issued in insertion order starting at 0.
type Handle int

// Entry is the marker of one ingested place.
type Entry struct {
	Handle   Handle          `json:"id"`
	Marker   *surface.Marker `json:"-"`
	Category string          `json:"category"`
	Place    models.Place    `json:"place"`
	Visible  bool            `json:"visible"`
}

// Skip records a place that was not ingested.
type Skip struct {
	Index    int    `json:"index"`
	Place    string `json:"place"`
	Category string `json:"category"`
	Reason   error  `json:"-"`
}

// Report summarizes a bulk ingestion.
type Report struct {
	Added   []Handle
	Skipped []Skip
}

// Store holds one marker entry per valid place.
type Store struct {
	surface    Surface
	categories models.Categories
	entries    []*Entry
}

// NewStore creates an empty store rendering onto s.
func NewStore(s Surface, categories models.Categories) *Store {
	return &Store{surface: s, categories: categories}
}

// AddPlace creates the marker of a place and returns its handle. The marker starts
// detached. Places with an unknown category or invalid coordinates are rejected
// without touching the store or the surface.
func (s *Store) AddPlace(place models.Place) (Handle, error) {
	category, ok := s.categories.Lookup(place.Category)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCategoryUnknown, place.Category)
	}
	if !place.HasValidCoordinates() {
		return 0, fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinates, place.Latitude, place.Longitude)
	}

	content, err := popup.Render(place, category)
	if err != nil {
		return 0, fmt.Errorf("markers: %w", err)
	}

	marker := s.surface.Place(place.Latitude, place.Longitude, popup.Icon(category))
	s.surface.BindPopup(marker, content, popup.DefaultOptions)

	entry := &Entry{
		Handle:   Handle(len(s.entries)),
		Marker:   marker,
		Category: place.Category,
		Place:    place,
	}
	s.entries = append(s.entries, entry)
	return entry.Handle, nil
}

// AddAll ingests places in order. A rejected place is recorded in the report and
// never stops the rest of the batch.
func (s *Store) AddAll(places []models.Place) Report {
	var report Report
	for i, place := range places {
		handle, err := s.AddPlace(place)
		if err != nil {
			report.Skipped = append(report.Skipped, Skip{
				Index:    i,
				Place:    place.Name,
				Category: place.Category,
				Reason:   err,
			})
			continue
		}
		report.Added = append(report.Added, handle)
	}
	return report
}

// SetVisibilityAll attaches every marker whose category satisfies match and
// detaches the others. Calling it again with the same predicate changes nothing.
func (s *Store) SetVisibilityAll(match func(category string) bool) {
	for _, entry := range s.entries {
		s.setVisible(entry, match(entry.Category))
	}
}

// SetVisibilityIf attaches a single marker when its category satisfies match
// and detaches it otherwise, with the same predicate SetVisibilityAll takes.
func (s *Store) SetVisibilityIf(h Handle, match func(category string) bool) error {
	entry, err := s.lookup(h)
	if err != nil {
		return err
	}
	s.setVisible(entry, match(entry.Category))
	return nil
}

func (s *Store) setVisible(entry *Entry, visible bool) {
	if visible {
		s.surface.Attach(entry.Marker)
	} else {
		s.surface.Detach(entry.Marker)
	}
	entry.Visible = visible
}

func (s *Store) lookup(h Handle) (*Entry, error) {
	if h < 0 || int(h) >= len(s.entries) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return s.entries[h], nil
}

// Entry returns a copy of the entry behind h.
func (s *Store) Entry(h Handle) (Entry, error) {
	entry, err := s.lookup(h)
	if err != nil {
		return Entry{}, err
	}
	return *entry, nil
}

// Entries returns copies of all entries in insertion order.
func (s *Store) Entries() []Entry {
	return lo.Map(s.entries, func(e *Entry, _ int) Entry {
		return *e
	})
}

// Visible returns copies of the attached entries in insertion order.
func (s *Store) Visible() []Entry {
	return lo.FilterMap(s.entries, func(e *Entry, _ int) (Entry, bool) {
		return *e, e.Visible
	})
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}
