package models

import (
	"encoding/json"
	"math"
)

// Place represents a single point of interest with its location, description and category.
type Place struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Instagram   string  `json:"instagram,omitempty"`
}

// UnmarshalJSON accepts the French field names used by older dataset files.
func (p *Place) UnmarshalJSON(data []byte) error {
	type alias Place
	var wire struct {
		alias
		Nom       string `json:"nom"`
		Categorie string `json:"categorie"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*p = Place(wire.alias)
	if p.Name == "" {
		p.Name = wire.Nom
	}
	if p.Category == "" {
		p.Category = wire.Categorie
	}
	return nil
}

// HasValidCoordinates reports whether the place sits at a finite, in-range geographic position.
func (p Place) HasValidCoordinates() bool {
	if math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) ||
		math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}
