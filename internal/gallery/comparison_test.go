package gallery_test

import (
	"errors"
	"testing"

	"github.com/Kyz7/gallery/internal/gallery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenComparison(t *testing.T) {
	c := gallery.NewCatalog(fixture())

	t.Run("Fewer than two is a precondition error", func(t *testing.T) {
		for _, sel := range [][]string{nil, {"1"}} {
			_, err := gallery.OpenComparison(c, sel)
			var pe *gallery.PreconditionError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, len(sel), pe.Selected)
			assert.ErrorIs(t, err, gallery.ErrNotComparable)
		}
	})

	t.Run("Pair follows selection order", func(t *testing.T) {
		pair, err := gallery.OpenComparison(c, []string{"3", "1"})
		require.NoError(t, err)
		assert.Equal(t, "3", pair.A.ID)
		assert.Equal(t, "1", pair.B.ID)
	})

	t.Run("Missing entry", func(t *testing.T) {
		_, err := gallery.OpenComparison(c, []string{"1", "ghost"})
		var pe *gallery.PreconditionError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "ghost", pe.Missing)
	})

	t.Run("Pair is a copy", func(t *testing.T) {
		pair, err := gallery.OpenComparison(c, []string{"1", "2"})
		require.NoError(t, err)
		pair.A.Complex = "mutated"
		got, _ := c.Get("1")
		assert.Equal(t, "X", got.Complex)
	})
}
