// Package filter holds the current category selection of a map session.
package filter

// All is the selection that shows every marker.
const All = "all"

// VisibilitySetter applies a category predicate to every marker.
type VisibilitySetter interface {
	SetVisibilityAll(match func(category string) bool)
}

// Controller is a memoryless state machine over {All} and the category identifiers.
type Controller struct {
	markers VisibilitySetter
	current string
}

// NewController creates a controller in the All state. It does not touch the markers
// until Apply is called.
func NewController(markers VisibilitySetter) *Controller {
	return &Controller{markers: markers, current: All}
}

// Apply replaces the current selection and recomputes the visibility of every marker.
// A selection matching no category leaves the map empty.
func (c *Controller) Apply(selected string) {
	c.current = selected
	c.markers.SetVisibilityAll(c.Matches)
}

// Current returns the active selection.
func (c *Controller) Current() string {
	return c.current
}

// Matches reports whether a marker of the given category is visible under the current selection.
func (c *Controller) Matches(category string) bool {
	return c.current == All || c.current == category
}
