package models

import "encoding/json"

// Dataset is the static document the map is built from.
type Dataset struct {
	Categories Categories `json:"categories"`
	Places     []Place    `json:"places"`
}

// UnmarshalJSON decodes a dataset, filling each category's ID from its key
// and accepting "lieux" as an alias for "places".
func (d *Dataset) UnmarshalJSON(data []byte) error {
	var wire struct {
		Categories Categories `json:"categories"`
		Places     []Place    `json:"places"`
		Lieux      []Place    `json:"lieux"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	d.Categories = make(Categories, len(wire.Categories))
	for id, cat := range wire.Categories {
		cat.ID = id
		d.Categories[id] = cat
	}

	d.Places = wire.Places
	if d.Places == nil {
		d.Places = wire.Lieux
	}
	return nil
}
