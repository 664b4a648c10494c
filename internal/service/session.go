package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"placemap-api/internal/config"
	"placemap-api/internal/filter"
	"placemap-api/internal/markers"
	"placemap-api/internal/models"
	"placemap-api/internal/registry"
	"placemap-api/internal/surface"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

var (
	ErrNotInitialized     = errors.New("service: map session not initialized")
	ErrAlreadyInitialized = errors.New("service: map session already initialized")
	ErrInitFailed         = errors.New("service: map session failed to initialize")
	ErrNoImage            = errors.New("service: place has no image")
)

// DatasetRepository interface for dependency injection
type DatasetRepository interface {
	LoadDataset(ctx context.Context) (*models.Dataset, error)
}

// FilterSink receives filter selections from the presentation layer.
type FilterSink interface {
	OnFilterSelected(category string) error
}

// ImageSink receives clicks on a marker's popup image.
type ImageSink interface {
	OnMarkerImageClicked(h markers.Handle) (Lightbox, error)
}

// FilterControl is one button of the filter bar.
type FilterControl struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Active   bool   `json:"active"`
}

// Lightbox is the full-screen image viewer. Page scrolling is locked while it is open.
type Lightbox struct {
	Open         bool   `json:"open"`
	Image        string `json:"image,omitempty"`
	Caption      string `json:"caption,omitempty"`
	ScrollLocked bool   `json:"scrollLocked"`
}

type sessionState int

const (
	statePending sessionState = iota
	stateReady
	stateFailed
)

// MapSession owns the dataset, the markers and the filter of one map.
// Every operation is serialized; callers see a single sequential event stream.
type MapSession struct {
	mu     sync.Mutex
	repo   DatasetRepository
	sorter *registry.Sorter
	layer  *surface.Layer
	view   config.MapConfig
	logger zerolog.Logger

	state    sessionState
	dataset  *models.Dataset
	store    *markers.Store
	filter   *filter.Controller
	lightbox Lightbox
}

var (
	_ FilterSink = (*MapSession)(nil)
	_ ImageSink  = (*MapSession)(nil)
)

// NewMapSession creates a session that has not loaded its dataset yet
func NewMapSession(repo DatasetRepository, sorter *registry.Sorter, view config.MapConfig, logger zerolog.Logger) *MapSession {
	return &MapSession{
		repo:   repo,
		sorter: sorter,
		layer:  surface.NewLayer(),
		view:   view,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// Init loads the dataset, builds one marker per valid place and shows them all.
// A load failure leaves the session empty and is final: later calls return ErrInitFailed.
func (s *MapSession) Init(ctx context.Context) (markers.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateReady:
		return markers.Report{}, ErrAlreadyInitialized
	case stateFailed:
		return markers.Report{}, ErrInitFailed
	}

	dataset, err := s.repo.LoadDataset(ctx)
	if err != nil {
		s.state = stateFailed
		s.logger.Error().Err(err).Msg("failed to load dataset")
		return markers.Report{}, fmt.Errorf("service: failed to load dataset: %w", err)
	}

	store := markers.NewStore(s.layer, dataset.Categories)
	report := store.AddAll(dataset.Places)
	for _, skip := range report.Skipped {
		s.logSkip(skip)
	}

	controller := filter.NewController(store)
	controller.Apply(filter.All)

	s.dataset = dataset
	s.store = store
	s.filter = controller
	s.state = stateReady

	s.logger.Info().
		Int("places", len(dataset.Places)).
		Int("markers", store.Len()).
		Int("skipped", len(report.Skipped)).
		Msg("map session initialized")
	return report, nil
}

func (s *MapSession) logSkip(skip markers.Skip) {
	s.logger.Warn().
		Err(skip.Reason).
		Int("index", skip.Index).
		Str("place", skip.Place).
		Str("category", skip.Category).
		Msg("place skipped")
}

func (s *MapSession) ready() error {
	if s.state != stateReady {
		return ErrNotInitialized
	}
	return nil
}

// categoryIDs derives the category list from the places that got a marker,
// so a skipped record never contributes a legend item or filter control.
func (s *MapSession) categoryIDs() []string {
	places := lo.Map(s.store.Entries(), func(e markers.Entry, _ int) models.Place {
		return e.Place
	})
	return s.sorter.DeriveCategories(places, s.dataset.Categories)
}

// Ready reports whether the session finished initializing.
func (s *MapSession) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateReady
}

// View returns the initial map view.
func (s *MapSession) View() config.MapConfig {
	return s.view
}

// Categories returns the used category identifiers in display order.
func (s *MapSession) Categories() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.categoryIDs(), nil
}

// Legend returns the used categories with their glyph and color, in display order.
func (s *MapSession) Legend() ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	ids := s.categoryIDs()
	return s.sorter.Legend(ids, s.dataset.Categories), nil
}

// FilterControls returns the "all" control followed by one control per used category.
// Exactly the control matching the current filter is active; none is when the filter is unknown.
func (s *MapSession) FilterControls() ([]FilterControl, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}

	current := s.filter.Current()
	ids := s.categoryIDs()
	controls := []FilterControl{{Category: filter.All, Name: "All", Active: current == filter.All}}
	for _, cat := range s.sorter.Legend(ids, s.dataset.Categories) {
		controls = append(controls, FilterControl{
			Category: cat.ID,
			Name:     cat.Name,
			Icon:     cat.Icon,
			Active:   current == cat.ID,
		})
	}
	return controls, nil
}

// CurrentFilter returns the active selection.
func (s *MapSession) CurrentFilter() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return "", err
	}
	return s.filter.Current(), nil
}

// ApplyFilter replaces the current filter and returns the markers left visible.
func (s *MapSession) ApplyFilter(selected string) ([]markers.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}

	s.filter.Apply(selected)
	visible := s.store.Visible()
	s.logger.Debug().Str("filter", selected).Int("visible", len(visible)).Msg("filter applied")
	return visible, nil
}

// OnFilterSelected implements FilterSink.
func (s *MapSession) OnFilterSelected(category string) error {
	_, err := s.ApplyFilter(category)
	return err
}

// VisibleMarkers returns the attached markers in insertion order.
func (s *MapSession) VisibleMarkers() ([]markers.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.store.Visible(), nil
}

// MarkersInView returns the attached markers inside box, in insertion order.
func (s *MapSession) MarkersInView(box models.BoundingBox) ([]markers.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}

	inView, err := s.layer.InView(box)
	if err != nil {
		return nil, fmt.Errorf("service: failed to query viewport: %w", err)
	}
	rendered := lo.SliceToMap(inView, func(m *surface.Marker) (*surface.Marker, struct{}) {
		return m, struct{}{}
	})

	return lo.Filter(s.store.Visible(), func(e markers.Entry, _ int) bool {
		_, ok := rendered[e.Marker]
		return ok
	}), nil
}

// Marker returns a single entry.
func (s *MapSession) Marker(h markers.Handle) (markers.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return markers.Entry{}, err
	}
	return s.store.Entry(h)
}

// AddPlace appends a place to the dataset and creates its marker, attached only
// when it matches the current filter. A rejected place stays in the dataset
// but gets no marker.
func (s *MapSession) AddPlace(place models.Place) (markers.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return markers.Entry{}, err
	}

	s.dataset.Places = append(s.dataset.Places, place)

	handle, err := s.store.AddPlace(place)
	if err != nil {
		s.logSkip(markers.Skip{
			Index:    len(s.dataset.Places) - 1,
			Place:    place.Name,
			Category: place.Category,
			Reason:   err,
		})
		return markers.Entry{}, err
	}

	if err := s.store.SetVisibilityIf(handle, s.filter.Matches); err != nil {
		return markers.Entry{}, err
	}

	s.logger.Info().Str("place", place.Name).Str("category", place.Category).Msg("place added")
	return s.store.Entry(handle)
}

// Popup returns the popup HTML bound to a marker.
func (s *MapSession) Popup(h markers.Handle) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return "", err
	}
	entry, err := s.store.Entry(h)
	if err != nil {
		return "", err
	}
	return entry.Marker.Popup, nil
}

// OnMarkerImageClicked opens the lightbox on the image of a marker's place.
func (s *MapSession) OnMarkerImageClicked(h markers.Handle) (Lightbox, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return Lightbox{}, err
	}
	entry, err := s.store.Entry(h)
	if err != nil {
		return Lightbox{}, err
	}
	if entry.Place.Image == "" {
		return Lightbox{}, ErrNoImage
	}

	s.lightbox = Lightbox{
		Open:         true,
		Image:        entry.Place.Image,
		Caption:      entry.Place.Name,
		ScrollLocked: true,
	}
	return s.lightbox, nil
}

// Lightbox returns the lightbox state.
func (s *MapSession) Lightbox() Lightbox {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lightbox
}

// CloseLightbox closes the lightbox and unlocks scrolling. Closing a closed lightbox does nothing.
func (s *MapSession) CloseLightbox() Lightbox {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lightbox = Lightbox{}
	return s.lightbox
}
