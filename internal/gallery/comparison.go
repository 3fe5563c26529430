package gallery

import (
	"errors"
	"fmt"

	"github.com/Kyz7/gallery/internal/models"
)

// ErrNotComparable is matched by every PreconditionError.
var ErrNotComparable = errors.New("selection is not comparable")

// PreconditionError is returned when a comparison is opened without exactly
// two selected entries that exist in the catalog.
type PreconditionError struct {
	Selected int
	Missing  string
}

func (e *PreconditionError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("comparison needs existing entries: %q is not in the catalog", e.Missing)
	}
	return fmt.Sprintf("comparison needs exactly %d selected entries, have %d", MaxSelected, e.Selected)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrNotComparable
}

// Pair is the ordered pair shown by the comparison slider. A is the earlier
// selection.
type Pair struct {
	A models.MediaEntry `json:"a"`
	B models.MediaEntry `json:"b"`
}

// OpenComparison resolves ids against the catalog. The returned entries are
// copies.
func OpenComparison(c *Catalog, ids []string) (Pair, error) {
	if len(ids) != MaxSelected {
		return Pair{}, &PreconditionError{Selected: len(ids)}
	}
	a, ok := c.Get(ids[0])
	if !ok {
		return Pair{}, &PreconditionError{Selected: len(ids), Missing: ids[0]}
	}
	b, ok := c.Get(ids[1])
	if !ok {
		return Pair{}, &PreconditionError{Selected: len(ids), Missing: ids[1]}
	}
	return Pair{A: a, B: b}, nil
}
