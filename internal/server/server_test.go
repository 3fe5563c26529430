package server_test

import (
	"testing"

	"github.com/Kyz7/gallery/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ta := testutils.SetupTestApp(t, testutils.SampleCatalog())

	resp, err := testutils.MakeRequest(ta.App, "GET", "/health", nil, "")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"ok"`)
}

// Scenario: filter to Interior, select across the filter, compare, evict,
// then delete a selected entry.
func TestGalleryWalkthrough(t *testing.T) {
	ta := testutils.SetupTestApp(t, testutils.SampleCatalog())
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeRequest(ta.App, "PUT", "/gallery/filter", map[string]string{"category": "Interior"}, "")
	require.NoError(t, err)
	require.Equal(t, 200, resp.Code)

	for _, id := range []string{"1", "2"} {
		resp, err = testutils.MakeRequest(ta.App, "POST", "/selection/"+id+"/toggle", nil, "")
		require.NoError(t, err)
		require.Equal(t, 200, resp.Code)
	}

	resp, err = testutils.MakeRequest(ta.App, "GET", "/selection/compare", nil, "")
	require.NoError(t, err)
	require.Equal(t, 200, resp.Code)

	var pair struct {
		A struct{ ID string } `json:"a"`
		B struct{ ID string } `json:"b"`
	}
	testutils.ParseData(t, resp, &pair)
	assert.Equal(t, "1", pair.A.ID)
	assert.Equal(t, "2", pair.B.ID)

	resp, _ = testutils.MakeRequest(ta.App, "POST", "/selection/3/toggle", nil, "")
	require.Equal(t, 200, resp.Code)
	assert.Equal(t, []string{"2", "3"}, ta.Session.Selected())

	resp, err = testutils.MakeRequest(ta.App, "DELETE", "/admin/entries/2", nil, token)
	require.NoError(t, err)
	require.Equal(t, 204, resp.Code)

	assert.Equal(t, []string{"3"}, ta.Session.Selected())
	assert.False(t, ta.Session.ReadyToCompare())
}
