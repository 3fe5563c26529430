package gallery

import (
	"sort"

	"github.com/Kyz7/gallery/internal/models"
)

// All is the sentinel meaning "no restriction" on a filter dimension.
const All = "ALL"

// FilterState is the three independent gallery selectors. Values are either
// a concrete dimension value or All.
type FilterState struct {
	Category string `json:"category"`
	Complex  string `json:"complex"`
	Type     string `json:"type"`
}

func DefaultFilter() FilterState {
	return FilterState{Category: All, Complex: All, Type: All}
}

// WithCategory switches the category and resets Type to All in the same step,
// since type options are scoped to the active category.
func (f FilterState) WithCategory(category string) FilterState {
	f.Category = orAll(category)
	f.Type = All
	return f
}

func (f FilterState) WithComplex(complex string) FilterState {
	f.Complex = orAll(complex)
	return f
}

func (f FilterState) WithType(typ string) FilterState {
	f.Type = orAll(typ)
	return f
}

// Matches reports whether e passes all three selectors.
func (f FilterState) Matches(e models.MediaEntry) bool {
	return matches(f.Category, string(e.Category)) &&
		matches(f.Complex, e.Complex) &&
		matches(f.Type, e.Type)
}

func matches(want, got string) bool {
	return want == All || want == got
}

func orAll(v string) string {
	if v == "" {
		return All
	}
	return v
}

// ComplexOptions returns the distinct non-empty complex values of the whole
// catalog, sorted. It does not depend on the active category.
func ComplexOptions(entries []models.MediaEntry) []string {
	return distinct(entries, func(e models.MediaEntry) (string, bool) {
		return e.Complex, true
	})
}

// TypeOptions returns the distinct non-empty type values among entries of the
// given category, or of the whole catalog when category is All.
func TypeOptions(entries []models.MediaEntry, category string) []string {
	return distinct(entries, func(e models.MediaEntry) (string, bool) {
		return e.Type, matches(orAll(category), string(e.Category))
	})
}

func distinct(entries []models.MediaEntry, pick func(models.MediaEntry) (string, bool)) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range entries {
		v, ok := pick(e)
		if !ok || v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// VisibleSet returns the entries passing f, newest first. Entries with equal
// CreatedAt keep their catalog order.
func VisibleSet(entries []models.MediaEntry, f FilterState) []models.MediaEntry {
	out := []models.MediaEntry{}
	for _, e := range entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}
