package surface

import (
	"testing"

	"placemap-api/internal/models"
	"placemap-api/internal/popup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayer_PlaceAssignsIDs(t *testing.T) {
	layer := NewLayer()

	first := layer.Place(43.29, 5.38, popup.IconSpec{ClassName: "custom-marker"})
	second := layer.Place(43.30, 5.39, popup.IconSpec{})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "custom-marker", first.Icon.ClassName)
	assert.False(t, layer.IsAttached(first))
	assert.Equal(t, 0, layer.Attached())
}

func TestLayer_AttachDetachIdempotent(t *testing.T) {
	layer := NewLayer()
	m := layer.Place(43.29, 5.38, popup.IconSpec{})

	layer.Detach(m)
	assert.False(t, layer.IsAttached(m))

	layer.Attach(m)
	layer.Attach(m)
	assert.True(t, layer.IsAttached(m))
	assert.Equal(t, 1, layer.Attached())

	layer.Detach(m)
	layer.Detach(m)
	assert.False(t, layer.IsAttached(m))
	assert.Equal(t, 0, layer.Attached())

	layer.Attach(m)
	assert.True(t, layer.IsAttached(m))

	all, err := layer.InView(models.BoundingBox{MinLat: -90, MinLng: -180, MaxLat: 90, MaxLng: 180})
	require.NoError(t, err)
	assert.Equal(t, []*Marker{m}, all)
}

func TestLayer_BindPopup(t *testing.T) {
	layer := NewLayer()
	m := layer.Place(43.29, 5.38, popup.IconSpec{})

	layer.BindPopup(m, "<p>hello</p>", popup.DefaultOptions)

	assert.Equal(t, "<p>hello</p>", m.Popup)
	assert.Equal(t, 300, m.PopupOptions.MaxWidth)
}

func TestLayer_InView(t *testing.T) {
	layer := NewLayer()

	vieuxPort := layer.Place(43.2951, 5.3740, popup.IconSpec{})
	cours := layer.Place(43.2940, 5.3843, popup.IconSpec{})
	paris := layer.Place(48.8566, 2.3522, popup.IconSpec{})
	hidden := layer.Place(43.2945, 5.3800, popup.IconSpec{})

	for _, m := range []*Marker{paris, cours, vieuxPort} {
		layer.Attach(m)
	}

	tests := []struct {
		name     string
		box      models.BoundingBox
		expected []*Marker
	}{
		{
			name:     "marseille centre excludes paris and detached",
			box:      models.BoundingBox{MinLat: 43.28, MinLng: 5.36, MaxLat: 43.31, MaxLng: 5.40},
			expected: []*Marker{vieuxPort, cours},
		},
		{
			name:     "tight box",
			box:      models.BoundingBox{MinLat: 43.2939, MinLng: 5.3842, MaxLat: 43.2941, MaxLng: 5.3844},
			expected: []*Marker{cours},
		},
		{
			name:     "degenerate box on a marker",
			box:      models.BoundingBox{MinLat: 48.8566, MinLng: 2.3522, MaxLat: 48.8566, MaxLng: 2.3522},
			expected: []*Marker{paris},
		},
		{
			name:     "empty ocean",
			box:      models.BoundingBox{MinLat: -10, MinLng: -30, MaxLat: 0, MaxLng: -20},
			expected: []*Marker{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := layer.InView(tt.box)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.NotContains(t, result, hidden)
		})
	}
}
