package selection_test

import (
	"context"
	"testing"

	"github.com/Kyz7/gallery/internal/models"
	"github.com/Kyz7/gallery/internal/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type selectionStatus struct {
	Selected []string `json:"selected"`
	Count    int      `json:"count"`
	Ready    bool     `json:"ready"`
}

func toggle(t *testing.T, app *fiber.App, id string) selectionStatus {
	t.Helper()
	resp, err := testutils.MakeRequest(app, "POST", "/selection/"+id+"/toggle", nil, "")
	require.NoError(t, err)
	require.Equal(t, 200, resp.Code)

	var status selectionStatus
	testutils.ParseData(t, resp, &status)
	return status
}

func TestToggleHandler(t *testing.T) {
	ta := testutils.SetupTestApp(t, testutils.SampleCatalog())

	t.Run("Success - Fill, evict, deselect", func(t *testing.T) {
		assert.Equal(t, []string{"1"}, toggle(t, ta.App, "1").Selected)

		status := toggle(t, ta.App, "2")
		assert.Equal(t, []string{"1", "2"}, status.Selected)
		assert.True(t, status.Ready)

		status = toggle(t, ta.App, "3")
		assert.Equal(t, []string{"2", "3"}, status.Selected)
		assert.Equal(t, 2, status.Count)

		status = toggle(t, ta.App, "2")
		assert.Equal(t, []string{"3"}, status.Selected)
		assert.False(t, status.Ready)
	})

	t.Run("Success - Clear", func(t *testing.T) {
		resp, err := testutils.MakeRequest(ta.App, "DELETE", "/selection", nil, "")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		resp, _ = testutils.MakeRequest(ta.App, "GET", "/selection", nil, "")
		var status selectionStatus
		testutils.ParseData(t, resp, &status)
		assert.Empty(t, status.Selected)
		assert.Equal(t, 0, status.Count)
	})
}

func TestCompareHandler(t *testing.T) {
	ta := testutils.SetupTestApp(t, testutils.SampleCatalog())

	t.Run("Error - Nothing selected", func(t *testing.T) {
		resp, err := testutils.MakeRequest(ta.App, "GET", "/selection/compare", nil, "")
		require.NoError(t, err)
		assert.Equal(t, 409, resp.Code)
		testutils.AssertError(t, resp, "PRECONDITION_FAILED")
	})

	t.Run("Error - One selected", func(t *testing.T) {
		toggle(t, ta.App, "1")
		resp, err := testutils.MakeRequest(ta.App, "GET", "/selection/compare", nil, "")
		require.NoError(t, err)
		assert.Equal(t, 409, resp.Code)

		result := testutils.ParseData(t, resp, nil)
		require.NotNil(t, result.Error)
		assert.Equal(t, float64(1), result.Error.Details["selected"])
	})

	t.Run("Success - Pair in selection order", func(t *testing.T) {
		toggle(t, ta.App, "4")
		resp, err := testutils.MakeRequest(ta.App, "GET", "/selection/compare", nil, "")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var pair struct {
			A models.MediaEntry `json:"a"`
			B models.MediaEntry `json:"b"`
		}
		testutils.ParseData(t, resp, &pair)
		assert.Equal(t, "1", pair.A.ID)
		assert.Equal(t, "4", pair.B.ID)
		assert.Equal(t, models.MediaYouTube, pair.B.MediaType)
	})

	t.Run("Success - Deleting a selected entry drops it", func(t *testing.T) {
		assert.True(t, ta.Session.Remove(context.Background(), "1"))

		resp, _ := testutils.MakeRequest(ta.App, "GET", "/selection", nil, "")
		var status selectionStatus
		testutils.ParseData(t, resp, &status)
		assert.Equal(t, []string{"4"}, status.Selected)
		assert.False(t, status.Ready)

		resp, _ = testutils.MakeRequest(ta.App, "GET", "/selection/compare", nil, "")
		assert.Equal(t, 409, resp.Code)
	})
}
