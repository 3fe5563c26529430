package models

import "encoding/json"

type Category string

const (
	CategoryInterior  Category = "Interior"
	CategoryExterior  Category = "Exterior"
	CategoryView      Category = "View"
	CategoryCommunity Category = "Community"
	CategoryPhotoZone Category = "Photo-Zone"
	CategoryVideo     Category = "Video"
)

// Categories lists the closed category set in display order.
var Categories = []Category{
	CategoryInterior,
	CategoryExterior,
	CategoryView,
	CategoryCommunity,
	CategoryPhotoZone,
	CategoryVideo,
}

var categoryLabels = map[Category]string{
	CategoryInterior:  "내부",
	CategoryExterior:  "외부",
	CategoryView:      "조망",
	CategoryCommunity: "커뮤니티",
	CategoryPhotoZone: "포토존",
	CategoryVideo:     "동영상",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the Korean display label shown next to the English name.
func (c Category) Label() string {
	return categoryLabels[c]
}

// ParseCategory accepts either the category name or its Korean label, which
// older snapshots stored in place of the name.
func ParseCategory(v string) Category {
	for c, label := range categoryLabels {
		if v == label {
			return c
		}
	}
	return Category(v)
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = ParseCategory(v)
	return nil
}

type MediaType string

const (
	MediaImage   MediaType = "image"
	MediaVideo   MediaType = "video"
	MediaYouTube MediaType = "youtube"
)

func (m MediaType) Valid() bool {
	switch m {
	case MediaImage, MediaVideo, MediaYouTube:
		return true
	}
	return false
}

// MediaEntry is one property asset. The json tags are the persisted snapshot
// format and must not change.
type MediaEntry struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	Category    Category  `json:"category"`
	Complex     string    `json:"complex"`
	Type        string    `json:"type"`
	Space       string    `json:"space"`
	Orientation string    `json:"orientation,omitempty"`
	FloorLevel  string    `json:"floorLevel,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	MediaURL    string    `json:"mediaUrl,omitempty"`
	YouTubeURL  string    `json:"youtubeUrl,omitempty"`
	MediaType   MediaType `json:"mediaType"`
	CreatedAt   int64     `json:"createdAt"`
}

// Payload returns the URL that carries the entry's media for its MediaType.
func (e MediaEntry) Payload() string {
	switch e.MediaType {
	case MediaVideo:
		return e.MediaURL
	case MediaYouTube:
		return e.YouTubeURL
	default:
		return e.ImageURL
	}
}
