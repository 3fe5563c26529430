package gallery

import (
	"time"

	"github.com/Kyz7/gallery/internal/models"
)

// SeedCatalog is the default gallery used when no usable snapshot exists.
// Timestamps are spaced one second apart below now so the order is fixed.
func SeedCatalog(now time.Time, propertyID string) []models.MediaEntry {
	ms := now.UnixMilli()
	return []models.MediaEntry{
		{
			ID:          "img1",
			PropertyID:  propertyID,
			Category:    models.CategoryInterior,
			Complex:     "추천단지A",
			Type:        "84A",
			Space:       "거실",
			Orientation: "남동향",
			FloorLevel:  "고층",
			ImageURL:    "https://picsum.photos/id/10/1200/800",
			MediaType:   models.MediaImage,
			CreatedAt:   ms,
		},
		{
			ID:          "img2",
			PropertyID:  propertyID,
			Category:    models.CategoryInterior,
			Complex:     "추천단지A",
			Type:        "84B",
			Space:       "거실",
			Orientation: "남동향",
			FloorLevel:  "고층",
			ImageURL:    "https://picsum.photos/id/20/1200/800",
			MediaType:   models.MediaImage,
			CreatedAt:   ms - 1000,
		},
		{
			ID:         "img3",
			PropertyID: propertyID,
			Category:   models.CategoryExterior,
			Complex:    "추천단지B",
			Type:       "단지경관",
			Space:      "정원",
			ImageURL:   "https://picsum.photos/id/30/1200/800",
			MediaType:  models.MediaImage,
			CreatedAt:  ms - 2000,
		},
		{
			ID:         "img5",
			PropertyID: propertyID,
			Category:   models.CategoryVideo,
			Complex:    "단지안내",
			Type:       "홍보영상",
			Space:      "전체",
			ImageURL:   "https://picsum.photos/id/60/1200/800",
			YouTubeURL: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			MediaType:  models.MediaYouTube,
			CreatedAt:  ms - 4000,
		},
	}
}
