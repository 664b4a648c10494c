// Package popup renders the marker icon and popup content shown for a place.
package popup

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"placemap-api/internal/models"
)

// IconSpec describes the custom HTML marker icon of a category.
type IconSpec struct {
	ClassName   string `json:"className"`
	HTML        string `json:"html"`
	Size        [2]int `json:"iconSize"`
	Anchor      [2]int `json:"iconAnchor"`
	PopupAnchor [2]int `json:"popupAnchor"`
}

// Options are the display options a popup is bound with.
type Options struct {
	MaxWidth  int    `json:"maxWidth"`
	ClassName string `json:"className"`
}

// DefaultOptions matches the stylesheet shipped with the front-end.
var DefaultOptions = Options{MaxWidth: 300, ClassName: "custom-popup"}

const iconSize = 40

// colorPattern matches hex colors, named colors and the rgb/hsl functional notations.
var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|(rgb|rgba|hsl|hsla)\(\s*[0-9.%,/\s-]+\))$`)

// Swatch returns a category color ready for a style attribute. Colors matching
// colorPattern are passed through verbatim. Anything else is left to the
// template's CSS filter, which replaces unsafe values with ZgotmplZ.
func Swatch(color string) any {
	color = strings.TrimSpace(color)
	if colorPattern.MatchString(color) {
		return template.CSS(color)
	}
	return color
}

var iconTemplate = template.Must(template.New("icon").Parse(
	`<div style="background-color: {{.Color}};">{{.Icon}}</div>`))

var popupTemplate = template.Must(template.New("popup").Parse(`<div class="popup-content">
	<img src="{{.Place.Image}}" alt="{{.Place.Name}}" class="popup-image" data-lightbox-src="{{.Place.Image}}" data-lightbox-caption="{{.Place.Name}}">
	<div class="popup-body">
		<h3 class="popup-title">{{.Place.Name}}</h3>
		<span class="popup-category" style="background-color: {{.Color}};">{{.Category.Icon}} {{.Category.Name}}</span>
		<p class="popup-description">{{.Place.Description}}</p>
		{{- if .Instagram}}
		<a href="{{.Instagram}}" target="_blank" rel="noopener noreferrer" class="popup-instagram">📸 {{.Place.Instagram}}</a>
		{{- end}}
	</div>
</div>`))

// Icon builds the marker icon for a category.
func Icon(category models.Category) IconSpec {
	var sb strings.Builder
	// The template only fails on write errors, which strings.Builder never returns.
	_ = iconTemplate.Execute(&sb, struct {
		Color any
		Icon  string
	}{Swatch(category.Color), category.Icon})

	return IconSpec{
		ClassName:   "custom-marker",
		HTML:        sb.String(),
		Size:        [2]int{iconSize, iconSize},
		Anchor:      [2]int{iconSize / 2, iconSize / 2},
		PopupAnchor: [2]int{0, -iconSize / 2},
	}
}

// InstagramURL returns the profile URL of a handle, or "" when handle is empty.
func InstagramURL(handle string) string {
	if handle == "" {
		return ""
	}
	return "https://instagram.com/" + strings.Replace(handle, "@", "", 1)
}

// Render produces the HTML popup of a place. All values are escaped.
func Render(place models.Place, category models.Category) (string, error) {
	var sb strings.Builder
	err := popupTemplate.Execute(&sb, struct {
		Place     models.Place
		Category  models.Category
		Color     any
		Instagram string
	}{place, category, Swatch(category.Color), InstagramURL(place.Instagram)})
	if err != nil {
		return "", fmt.Errorf("popup: failed to render %q: %w", place.Name, err)
	}
	return sb.String(), nil
}
