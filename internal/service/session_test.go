package service

import (
	"context"
	"testing"

	"placemap-api/internal/config"
	"placemap-api/internal/filter"
	"placemap-api/internal/markers"
	"placemap-api/internal/models"
	"placemap-api/internal/registry"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDatasetRepository is a mock implementation of the DatasetRepository interface
type MockDatasetRepository struct {
	mock.Mock
}

// LoadDataset implements DatasetRepository.
func (m *MockDatasetRepository) LoadDataset(ctx context.Context) (*models.Dataset, error) {
	args := m.Called(ctx)
	dataset, _ := args.Get(0).(*models.Dataset)
	return dataset, args.Error(1)
}

func testDataset() *models.Dataset {
	return &models.Dataset{
		Categories: models.Categories{
			"food": {ID: "food", Name: "Food", Icon: "🍴", Color: "#e76f51"},
			"art":  {ID: "art", Name: "Art", Icon: "🎨", Color: "#2a9d8f"},
			"park": {ID: "park", Name: "Parks", Icon: "🌳", Color: "#8ab17d"},
		},
		Places: []models.Place{
			{Name: "Cafe", Latitude: 43.2941, Longitude: 5.3845, Image: "img/cafe.jpg", Category: "food"},
			{Name: "Mural", Latitude: 43.2936, Longitude: 5.3838, Image: "img/mural.jpg", Category: "art"},
			{Name: "Ghost", Latitude: 43.2930, Longitude: 5.3830, Category: "unknown"},
		},
	}
}

func newSession(t *testing.T, dataset *models.Dataset, err error) (*MapSession, *MockDatasetRepository) {
	t.Helper()
	repo := new(MockDatasetRepository)
	repo.On("LoadDataset", mock.Anything).Return(dataset, err)
	session := NewMapSession(repo, registry.NewSorter("fr"), config.MapConfig{Zoom: 16}, zerolog.Nop())
	return session, repo
}

func readySession(t *testing.T) *MapSession {
	t.Helper()
	session, _ := newSession(t, testDataset(), nil)
	_, err := session.Init(context.Background())
	require.NoError(t, err)
	return session
}

func entryNames(entries []markers.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Place.Name)
	}
	return out
}

func TestMapSession_Init(t *testing.T) {
	session, repo := newSession(t, testDataset(), nil)

	report, err := session.Init(context.Background())
	require.NoError(t, err)
	repo.AssertExpectations(t)

	assert.True(t, session.Ready())
	assert.Equal(t, []markers.Handle{0, 1}, report.Added)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "Ghost", report.Skipped[0].Place)

	categories, err := session.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"art", "food"}, categories)

	visible, err := session.VisibleMarkers()
	require.NoError(t, err)
	assert.Equal(t, []string{"Cafe", "Mural"}, entryNames(visible))

	current, err := session.CurrentFilter()
	require.NoError(t, err)
	assert.Equal(t, filter.All, current)
}

func TestMapSession_Init_Twice(t *testing.T) {
	session := readySession(t)

	_, err := session.Init(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestMapSession_Init_Failure(t *testing.T) {
	session, repo := newSession(t, nil, assert.AnError)

	_, err := session.Init(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, session.Ready())

	_, err = session.VisibleMarkers()
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = session.FilterControls()
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = session.ApplyFilter("food")
	assert.ErrorIs(t, err, ErrNotInitialized)

	// no retry
	_, err = session.Init(context.Background())
	assert.ErrorIs(t, err, ErrInitFailed)
	repo.AssertNumberOfCalls(t, "LoadDataset", 1)
}

func TestMapSession_NotInitialized(t *testing.T) {
	session, _ := newSession(t, testDataset(), nil)

	_, err := session.Categories()
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = session.Legend()
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = session.AddPlace(models.Place{Name: "Cafe", Category: "food"})
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = session.Popup(0)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, session.OnFilterSelected("food"), ErrNotInitialized)
}

func TestMapSession_ApplyFilter(t *testing.T) {
	session := readySession(t)

	tests := []struct {
		name     string
		selected string
		expected []string
	}{
		{"food", "food", []string{"Cafe"}},
		{"unused category", "park", []string{}},
		{"unknown value", "museum", []string{}},
		{"all restores", filter.All, []string{"Cafe", "Mural"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, err := session.ApplyFilter(tt.selected)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, entryNames(visible))
		})
	}
}

func TestMapSession_FilterControls(t *testing.T) {
	session := readySession(t)

	controls, err := session.FilterControls()
	require.NoError(t, err)
	assert.Equal(t, []FilterControl{
		{Category: "all", Name: "All", Active: true},
		{Category: "art", Name: "Art", Icon: "🎨"},
		{Category: "food", Name: "Food", Icon: "🍴"},
	}, controls)

	require.NoError(t, session.OnFilterSelected("food"))
	controls, err = session.FilterControls()
	require.NoError(t, err)
	assert.False(t, controls[0].Active)
	assert.False(t, controls[1].Active)
	assert.True(t, controls[2].Active)

	require.NoError(t, session.OnFilterSelected("museum"))
	controls, err = session.FilterControls()
	require.NoError(t, err)
	for _, c := range controls {
		assert.False(t, c.Active, c.Category)
	}
}

func TestMapSession_Legend(t *testing.T) {
	session := readySession(t)

	legend, err := session.Legend()
	require.NoError(t, err)
	assert.Equal(t, []models.Category{
		{ID: "art", Name: "Art", Icon: "🎨", Color: "#2a9d8f"},
		{ID: "food", Name: "Food", Icon: "🍴", Color: "#e76f51"},
	}, legend)
}

func TestMapSession_AddPlace(t *testing.T) {
	session := readySession(t)

	_, err := session.ApplyFilter("food")
	require.NoError(t, err)

	park, err := session.AddPlace(models.Place{Name: "Jardin", Latitude: 43.2960, Longitude: 5.3870, Category: "park"})
	require.NoError(t, err)
	assert.False(t, park.Visible)

	bistro, err := session.AddPlace(models.Place{Name: "Bistro", Latitude: 43.2950, Longitude: 5.3850, Category: "food"})
	require.NoError(t, err)
	assert.True(t, bistro.Visible)
	assert.Equal(t, markers.Handle(3), bistro.Handle)

	visible, err := session.VisibleMarkers()
	require.NoError(t, err)
	assert.Equal(t, []string{"Cafe", "Bistro"}, entryNames(visible))

	// the new category now shows up in the filter bar
	categories, err := session.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"art", "food", "park"}, categories)

	visible, err = session.ApplyFilter(filter.All)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cafe", "Mural", "Jardin", "Bistro"}, entryNames(visible))
}

func TestMapSession_AddPlace_UnknownCategory(t *testing.T) {
	session := readySession(t)

	_, err := session.AddPlace(models.Place{Name: "Ghost 2", Latitude: 43.29, Longitude: 5.38, Category: "haunted"})
	assert.ErrorIs(t, err, markers.ErrCategoryUnknown)

	visible, err := session.VisibleMarkers()
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	categories, err := session.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"art", "food"}, categories)
}

func TestMapSession_Init_InvalidCoordinatesExcludedFromCategories(t *testing.T) {
	dataset := testDataset()
	dataset.Places = append(dataset.Places, models.Place{Name: "Far", Latitude: 43.29, Longitude: 500, Category: "park"})
	session, _ := newSession(t, dataset, nil)

	report, err := session.Init(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Skipped, 2)
	assert.ErrorIs(t, report.Skipped[1].Reason, markers.ErrInvalidCoordinates)

	categories, err := session.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"art", "food"}, categories)

	legend, err := session.Legend()
	require.NoError(t, err)
	assert.Len(t, legend, 2)

	controls, err := session.FilterControls()
	require.NoError(t, err)
	for _, control := range controls {
		assert.NotEqual(t, "park", control.Category)
	}
}

func TestMapSession_AddPlace_InvalidCoordinates(t *testing.T) {
	session := readySession(t)

	_, err := session.AddPlace(models.Place{Name: "Far", Latitude: 91, Longitude: 5.38, Category: "park"})
	assert.ErrorIs(t, err, markers.ErrInvalidCoordinates)

	categories, err := session.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"art", "food"}, categories)

	visible, err := session.ApplyFilter("park")
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestMapSession_MarkersInView(t *testing.T) {
	session := readySession(t)

	box := models.BoundingBox{MinLat: 43.2938, MinLng: 5.3840, MaxLat: 43.2945, MaxLng: 5.3850}
	inView, err := session.MarkersInView(box)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cafe"}, entryNames(inView))

	_, err = session.ApplyFilter("art")
	require.NoError(t, err)
	inView, err = session.MarkersInView(box)
	require.NoError(t, err)
	assert.Empty(t, inView)
}

func TestMapSession_PopupAndLightbox(t *testing.T) {
	session := readySession(t)

	html, err := session.Popup(0)
	require.NoError(t, err)
	assert.Contains(t, html, "Cafe")

	_, err = session.Popup(42)
	assert.ErrorIs(t, err, markers.ErrUnknownHandle)

	assert.Equal(t, Lightbox{}, session.Lightbox())

	lightbox, err := session.OnMarkerImageClicked(1)
	require.NoError(t, err)
	assert.Equal(t, Lightbox{Open: true, Image: "img/mural.jpg", Caption: "Mural", ScrollLocked: true}, lightbox)
	assert.Equal(t, lightbox, session.Lightbox())

	assert.Equal(t, Lightbox{}, session.CloseLightbox())
	assert.Equal(t, Lightbox{}, session.CloseLightbox())
}

func TestMapSession_OnMarkerImageClicked_NoImage(t *testing.T) {
	session := readySession(t)

	entry, err := session.AddPlace(models.Place{Name: "Bare", Latitude: 43.29, Longitude: 5.38, Category: "art"})
	require.NoError(t, err)

	_, err = session.OnMarkerImageClicked(entry.Handle)
	assert.ErrorIs(t, err, ErrNoImage)
	assert.False(t, session.Lightbox().Open)
}

func TestMapSession_View(t *testing.T) {
	session, _ := newSession(t, testDataset(), nil)
	assert.Equal(t, 16, session.View().Zoom)
}
