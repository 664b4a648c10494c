package models

import "encoding/json"

// Category represents a named grouping of places, rendered on the map with its own glyph and color.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// UnmarshalJSON accepts the French field names used by older dataset files.
func (c *Category) UnmarshalJSON(data []byte) error {
	type alias Category
	var wire struct {
		alias
		Nom     string `json:"nom"`
		Couleur string `json:"couleur"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*c = Category(wire.alias)
	if c.Name == "" {
		c.Name = wire.Nom
	}
	if c.Color == "" {
		c.Color = wire.Couleur
	}
	return nil
}

// Categories maps category identifiers to their definitions.
type Categories map[string]Category

// Lookup returns the category registered under id and whether it exists.
// The returned category always carries id as its ID.
func (c Categories) Lookup(id string) (Category, bool) {
	cat, ok := c[id]
	if !ok {
		return Category{}, false
	}
	cat.ID = id
	return cat, true
}

// Has reports whether id is a registered category.
func (c Categories) Has(id string) bool {
	_, ok := c[id]
	return ok
}
