package testutils

import "github.com/Kyz7/gallery/internal/models"

func Entry(id string, cat models.Category, complex, typ string, createdAt int64) models.MediaEntry {
	return models.MediaEntry{
		ID:         id,
		PropertyID: "p1",
		Category:   cat,
		Complex:    complex,
		Type:       typ,
		Space:      "거실",
		ImageURL:   "https://example.com/" + id + ".jpg",
		MediaType:  models.MediaImage,
		CreatedAt:  createdAt,
	}
}

// SampleCatalog is a small mixed catalog: two interiors, one exterior and one
// YouTube entry.
func SampleCatalog() []models.MediaEntry {
	video := Entry("4", models.CategoryVideo, "Z", "Promo", 50)
	video.MediaType = models.MediaYouTube
	video.YouTubeURL = "https://www.youtube.com/embed/abc"

	return []models.MediaEntry{
		Entry("1", models.CategoryInterior, "X", "84A", 100),
		Entry("2", models.CategoryExterior, "Y", "Garden", 200),
		Entry("3", models.CategoryInterior, "Y", "84B", 300),
		video,
	}
}
