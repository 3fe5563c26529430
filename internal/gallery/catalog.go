// Package gallery holds the selection-and-filtering state of the property
// media gallery: the catalog, the filter engine, the two-item selection and
// the comparison pair handed to the slider.
package gallery

import "github.com/Kyz7/gallery/internal/models"

// Catalog is the ordered collection of media entries. Newest additions sit at
// the front, which is also the tie-break order for equal timestamps.
type Catalog struct {
	entries []models.MediaEntry
}

func NewCatalog(entries []models.MediaEntry) *Catalog {
	c := &Catalog{entries: make([]models.MediaEntry, len(entries))}
	copy(c.entries, entries)
	return c
}

// Add prepends entry. The caller supplies a unique ID and CreatedAt.
func (c *Catalog) Add(entry models.MediaEntry) {
	c.entries = append([]models.MediaEntry{entry}, c.entries...)
}

// Update replaces the member with entry.ID in place. It reports false and
// leaves the catalog untouched when no member matches.
func (c *Catalog) Update(entry models.MediaEntry) bool {
	i := c.index(entry.ID)
	if i < 0 {
		return false
	}
	c.entries[i] = entry
	return true
}

// Remove deletes the member with the given id, reporting whether one existed.
func (c *Catalog) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return true
}

func (c *Catalog) Get(id string) (models.MediaEntry, bool) {
	i := c.index(id)
	if i < 0 {
		return models.MediaEntry{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy of the catalog in catalog order.
func (c *Catalog) Entries() []models.MediaEntry {
	out := make([]models.MediaEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) index(id string) int {
	for i := range c.entries {
		if c.entries[i].ID == id {
			return i
		}
	}
	return -1
}
