package media_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/Kyz7/gallery/internal/models"
	"github.com/Kyz7/gallery/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() map[string]interface{} {
	return map[string]interface{}{
		"category":    "Interior",
		"complex":     "사화지구",
		"type":        "102B",
		"space":       "주방",
		"orientation": "남향",
		"mediaType":   "image",
		"imageUrl":    "https://example.com/kitchen.jpg",
	}
}

func TestCreateEntryHandler(t *testing.T) {
	ta := testutils.SetupTestApp(t, testutils.SampleCatalog())
	token := testutils.GetAdminToken(t)

	t.Run("Success - Entry is prepended and persisted", func(t *testing.T) {
		resp, err := testutils.MakeRequest(ta.App, "POST", "/admin/entries", validForm(), token)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var created models.MediaEntry
		result := testutils.ParseData(t, resp, &created)
		assert.Equal(t, "Entry created successfully", result.Message)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "p1", created.PropertyID)
		assert.NotZero(t, created.CreatedAt)

		entries := ta.Session.Entries()
		assert.Equal(t, created.ID, entries[0].ID)
		assert.Equal(t, created.ID, ta.Session.Visible()[0].ID)

		stored, err := ta.Store.LoadCatalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, created.ID, stored[0].ID)
		assert.Len(t, stored, 5)
	})

	t.Run("Success - Free text is sanitised", func(t *testing.T) {
		form := validForm()
		form["complex"] = "<script>alert(1)</script>용지호수"
		form["type"] = "<b>84C</b>"

		resp, err := testutils.MakeRequest(ta.App, "POST", "/admin/entries", form, token)
		require.NoError(t, err)
		require.Equal(t, 201, resp.Code)

		var created models.MediaEntry
		testutils.ParseData(t, resp, &created)
		assert.Equal(t, "용지호수", created.Complex)
		assert.Equal(t, "84C", created.Type)
	})

	t.Run("Success - YouTube entry drops other payloads", func(t *testing.T) {
		form := validForm()
		form["category"] = "Video"
		form["mediaType"] = "youtube"
		form["youtubeUrl"] = "https://www.youtube.com/embed/xyz"
		form["mediaUrl"] = "https://example.com/stale.mp4"

		resp, err := testutils.MakeRequest(ta.App, "POST", "/admin/entries", form, token)
		require.NoError(t, err)
		require.Equal(t, 201, resp.Code)

		var created models.MediaEntry
		testutils.ParseData(t, resp, &created)
		assert.Equal(t, models.MediaYouTube, created.MediaType)
		assert.Empty(t, created.MediaURL)
		assert.Equal(t, "https://www.youtube.com/embed/xyz", created.Payload())
	})

	t.Run("Error - Required fields", func(t *testing.T) {
		resp, err := testutils.MakeRequest(ta.App, "POST", "/admin/entries", map[string]interface{}{
			"category":  "Interior",
			"mediaType": "video",
		}, token)
		require.NoError(t, err)
		assert.Equal(t, 422, resp.Code)

		result := testutils.ParseData(t, resp, nil)
		require.NotNil(t, result.Error)
		assert.Equal(t, "VALIDATION_ERROR", result.Error.Code)
		assert.Contains(t, result.Error.Details, "complex")
		assert.Contains(t, result.Error.Details, "type")
		assert.Contains(t, result.Error.Details, "mediaUrl")
	})

	t.Run("Error - Unknown category", func(t *testing.T) {
		form := validForm()
		form["category"] = "Rooftop"
		resp, err := testutils.MakeRequest(ta.App, "POST", "/admin/entries", form, token)
		require.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
	})
}

func TestUpdateEntryHandler(t *testing.T) {
	token := testutils.GetAdminToken(t)

	t.Run("Success - Edit refreshes createdAt", func(t *testing.T) {
		ta := testutils.SetupTestApp(t, testutils.SampleCatalog())
		form := validForm()
		form["complex"] = "X"
		form["type"] = "84A-R"

		resp, err := testutils.MakeRequest(ta.App, "PUT", "/admin/entries/1", form, token)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var updated models.MediaEntry
		testutils.ParseData(t, resp, &updated)
		assert.Equal(t, "1", updated.ID)
		assert.Greater(t, updated.CreatedAt, int64(300))
		assert.Equal(t, "1", ta.Session.Visible()[0].ID)
		// catalog position is unchanged
		assert.Equal(t, "1", ta.Session.Entries()[0].ID)
		assert.Equal(t, "84A-R", ta.Session.Entries()[0].Type)
	})

	t.Run("Success - Edit can preserve createdAt", func(t *testing.T) {
		cfg := testutils.TestConfig()
		cfg.PreserveCreatedAt = true
		ta := testutils.SetupTestAppWithConfig(t, cfg, testutils.SampleCatalog())

		resp, err := testutils.MakeRequest(ta.App, "PUT", "/admin/entries/1", validForm(), token)
		require.NoError(t, err)
		require.Equal(t, 200, resp.Code)

		var updated models.MediaEntry
		testutils.ParseData(t, resp, &updated)
		assert.Equal(t, int64(100), updated.CreatedAt)
	})

	t.Run("Error - Unknown id", func(t *testing.T) {
		ta := testutils.SetupTestApp(t, testutils.SampleCatalog())
		resp, err := testutils.MakeRequest(ta.App, "PUT", "/admin/entries/nope", validForm(), token)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
		testutils.AssertError(t, resp, "NOT_FOUND")
	})
}

func TestDeleteEntryHandler(t *testing.T) {
	ta := testutils.SetupTestApp(t, testutils.SampleCatalog())
	token := testutils.GetAdminToken(t)

	ta.Session.Toggle("2")
	ta.Session.Toggle("3")

	resp, err := testutils.MakeRequest(ta.App, "DELETE", "/admin/entries/2", nil, token)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.Code)

	assert.Equal(t, []string{"3"}, ta.Session.Selected())
	_, ok := ta.Session.Entry("2")
	assert.False(t, ok)

	stored, err := ta.Store.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	resp, err = testutils.MakeRequest(ta.App, "DELETE", "/admin/entries/2", nil, token)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.Code)
}

func pngBytes(t *testing.T, w, h int) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestUploadMediaHandler(t *testing.T) {
	ta := testutils.SetupTestApp(t, testutils.SampleCatalog())
	token := testutils.GetAdminToken(t)

	t.Run("Success - Image upload reports dimensions", func(t *testing.T) {
		resp, err := testutils.MakeUploadRequest(ta.App, "/admin/upload", "living.png", "image/png", pngBytes(t, 12, 8), token)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var data struct {
			URL    string `json:"url"`
			Kind   string `json:"kind"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		}
		testutils.ParseData(t, resp, &data)
		assert.Equal(t, "image", data.Kind)
		assert.Equal(t, 12, data.Width)
		assert.Equal(t, 8, data.Height)
		require.True(t, strings.HasPrefix(data.URL, "/uploads/photos/"))

		_, statErr := os.Stat(strings.TrimPrefix(data.URL, "/"))
		assert.NoError(t, statErr)

		form := validForm()
		form["imageUrl"] = data.URL
		resp, err = testutils.MakeRequest(ta.App, "POST", "/admin/entries", form, token)
		require.NoError(t, err)
		require.Equal(t, 201, resp.Code)

		var created models.MediaEntry
		testutils.ParseData(t, resp, &created)

		resp, err = testutils.MakeRequest(ta.App, "DELETE", "/admin/entries/"+created.ID, nil, token)
		require.NoError(t, err)
		assert.Equal(t, 204, resp.Code)

		_, statErr = os.Stat(strings.TrimPrefix(data.URL, "/"))
		assert.True(t, os.IsNotExist(statErr), "uploaded file should be removed with its entry")
	})

	t.Run("Success - Video upload", func(t *testing.T) {
		resp, err := testutils.MakeUploadRequest(ta.App, "/admin/upload", "tour.mp4", "video/mp4", []byte("fake video content"), token)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var data struct {
			URL string `json:"url"`
		}
		testutils.ParseData(t, resp, &data)
		assert.True(t, strings.HasPrefix(data.URL, "/uploads/videos/"))
		os.Remove(strings.TrimPrefix(data.URL, "/"))
	})

	t.Run("Error - Unsupported type", func(t *testing.T) {
		resp, err := testutils.MakeUploadRequest(ta.App, "/admin/upload", "brochure.pdf", "application/pdf", []byte("%PDF"), token)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.Code)
		testutils.AssertError(t, resp, "BAD_REQUEST")
	})

	t.Run("Error - Image too large", func(t *testing.T) {
		resp, err := testutils.MakeUploadRequest(ta.App, "/admin/upload", "huge.jpg", "image/jpeg", make([]byte, 11*1024*1024), token)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		result := testutils.ParseData(t, resp, nil)
		require.NotNil(t, result.Error)
		assert.Contains(t, result.Error.Message, "too large")
	})

	t.Run("Error - Not authenticated", func(t *testing.T) {
		resp, err := testutils.MakeUploadRequest(ta.App, "/admin/upload", "living.png", "image/png", pngBytes(t, 2, 2), "")
		require.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
	})
}
