// Package registry derives the ordered set of categories actually used by a dataset.
package registry

import (
	"slices"
	"strings"

	"placemap-api/internal/models"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter orders category identifiers by display name using the collation rules of a locale.
type Sorter struct {
	tag language.Tag
}

// NewSorter creates a sorter for the given BCP 47 locale. Unparseable locales fall back to the root collation.
func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Sorter{tag: tag}
}

// Locale returns the collation locale in use
func (s *Sorter) Locale() string {
	return s.tag.String()
}

// DeriveCategories returns the distinct category identifiers referenced by places,
// restricted to those present in categories, sorted by display name then identifier.
// Places with invalid coordinates never get a marker and are ignored.
// It never caches: every call recomputes from its inputs.
func (s *Sorter) DeriveCategories(places []models.Place, categories models.Categories) []string {
	ids := lo.Uniq(lo.FilterMap(places, func(p models.Place, _ int) (string, bool) {
		return p.Category, p.HasValidCoordinates()
	}))
	ids = lo.Filter(ids, func(id string, _ int) bool {
		return categories.Has(id)
	})

	// collate.Collator keeps internal buffers and must not be shared across goroutines.
	col := collate.New(s.tag)
	slices.SortFunc(ids, func(a, b string) int {
		if c := col.CompareString(categories[a].Name, categories[b].Name); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return ids
}

// Legend resolves ordered identifiers to their category definitions, dropping unknown ones.
func (s *Sorter) Legend(ids []string, categories models.Categories) []models.Category {
	return lo.FilterMap(ids, func(id string, _ int) (models.Category, bool) {
		return categories.Lookup(id)
	})
}

var root = NewSorter("und")

// DeriveCategories orders categories with the root collation.
func DeriveCategories(places []models.Place, categories models.Categories) []string {
	return root.DeriveCategories(places, categories)
}
