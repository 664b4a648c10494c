package models

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidBoundingBox is returned when a bounding box cannot be parsed or is inverted.
var ErrInvalidBoundingBox = errors.New("invalid bounding box")

// BoundingBox represents a rectangular viewport defined by its south-west and north-east corners.
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

// ParseBoundingBox parses "minLat,minLng,maxLat,maxLng".
func ParseBoundingBox(s string) (BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, ErrInvalidBoundingBox
	}

	var values [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BoundingBox{}, ErrInvalidBoundingBox
		}
		values[i] = v
	}

	box := BoundingBox{MinLat: values[0], MinLng: values[1], MaxLat: values[2], MaxLng: values[3]}
	if box.MinLat > box.MaxLat || box.MinLng > box.MaxLng {
		return BoundingBox{}, ErrInvalidBoundingBox
	}
	return box, nil
}

// Contains reports whether the given coordinates fall inside the box, edges included.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}
