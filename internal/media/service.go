package media

import (
	"context"
	"strings"
	"time"

	"github.com/Kyz7/gallery/internal/gallery"
	"github.com/Kyz7/gallery/internal/models"
	"github.com/Kyz7/gallery/internal/utils"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

var policy = bluemonday.StrictPolicy()

func sanitizeInput(input string) string {
	return strings.TrimSpace(policy.Sanitize(input))
}

// EntryForm is the admin form payload. Field names follow MediaEntry.
type EntryForm struct {
	PropertyID  string `json:"propertyId"`
	Category    string `json:"category"`
	Complex     string `json:"complex"`
	Type        string `json:"type"`
	Space       string `json:"space"`
	Orientation string `json:"orientation"`
	FloorLevel  string `json:"floorLevel"`
	ImageURL    string `json:"imageUrl"`
	MediaURL    string `json:"mediaUrl"`
	YouTubeURL  string `json:"youtubeUrl"`
	MediaType   string `json:"mediaType"`
}

// Service validates admin input and applies it to the gallery session.
type Service struct {
	session           *gallery.Session
	propertyID        string
	preserveCreatedAt bool
	now               func() time.Time
	log               *zap.Logger
}

func NewService(session *gallery.Session, propertyID string, preserveCreatedAt bool, log *zap.Logger) *Service {
	return &Service{
		session:           session,
		propertyID:        propertyID,
		preserveCreatedAt: preserveCreatedAt,
		now:               time.Now,
		log:               log,
	}
}

// Build validates form and turns it into an entry without ID or CreatedAt.
// The returned map is keyed by field name and is empty on success.
func (s *Service) Build(form EntryForm) (models.MediaEntry, map[string]string) {
	errs := map[string]string{}

	e := models.MediaEntry{
		PropertyID:  sanitizeInput(form.PropertyID),
		Category:    models.ParseCategory(strings.TrimSpace(form.Category)),
		Complex:     sanitizeInput(form.Complex),
		Type:        sanitizeInput(form.Type),
		Space:       sanitizeInput(form.Space),
		Orientation: sanitizeInput(form.Orientation),
		FloorLevel:  sanitizeInput(form.FloorLevel),
		MediaType:   models.MediaType(strings.TrimSpace(form.MediaType)),
		ImageURL:    strings.TrimSpace(form.ImageURL),
	}
	if e.PropertyID == "" {
		e.PropertyID = s.propertyID
	}
	if e.MediaType == "" {
		e.MediaType = models.MediaImage
	}

	if !e.Category.Valid() {
		errs["category"] = "category must be one of Interior, Exterior, View, Community, Photo-Zone, Video"
	}
	if e.Complex == "" {
		errs["complex"] = "complex is required"
	}
	if e.Type == "" {
		errs["type"] = "type is required"
	}
	if e.ImageURL != "" && !validMediaURL(e.ImageURL) {
		errs["imageUrl"] = "imageUrl must be an http(s), upload or data URL"
	}

	switch e.MediaType {
	case models.MediaImage:
		if e.ImageURL == "" {
			errs["imageUrl"] = "imageUrl is required for images"
		}
	case models.MediaVideo:
		e.MediaURL = strings.TrimSpace(form.MediaURL)
		if e.MediaURL == "" {
			errs["mediaUrl"] = "mediaUrl is required for videos"
		} else if !validMediaURL(e.MediaURL) {
			errs["mediaUrl"] = "mediaUrl must be an http(s), upload or data URL"
		}
	case models.MediaYouTube:
		e.YouTubeURL = strings.TrimSpace(form.YouTubeURL)
		if e.YouTubeURL == "" {
			errs["youtubeUrl"] = "youtubeUrl is required for YouTube entries"
		} else if !strings.HasPrefix(e.YouTubeURL, "https://") {
			errs["youtubeUrl"] = "youtubeUrl must be an https embed link"
		}
	default:
		errs["mediaType"] = "mediaType must be image, video or youtube"
	}

	return e, errs
}

func validMediaURL(u string) bool {
	for _, prefix := range []string{"https://", "http://", "/uploads/", "data:image/", "data:video/"} {
		if strings.HasPrefix(u, prefix) {
			return true
		}
	}
	return false
}

func (s *Service) Create(ctx context.Context, form EntryForm) (models.MediaEntry, map[string]string) {
	e, errs := s.Build(form)
	if len(errs) > 0 {
		return e, errs
	}
	e.ID = uuid.New().String()
	e.CreatedAt = s.now().UnixMilli()
	s.session.Add(ctx, e)
	s.log.Info("media entry added", zap.String("id", e.ID), zap.String("category", string(e.Category)))
	return e, nil
}

// Update replaces entry id. CreatedAt is refreshed to now, moving the entry
// to the front of the gallery, unless preserveCreatedAt is set.
func (s *Service) Update(ctx context.Context, id string, form EntryForm) (models.MediaEntry, bool, map[string]string) {
	current, ok := s.session.Entry(id)
	if !ok {
		return models.MediaEntry{}, false, nil
	}
	e, errs := s.Build(form)
	if len(errs) > 0 {
		return e, true, errs
	}
	e.ID = id
	e.CreatedAt = s.now().UnixMilli()
	if s.preserveCreatedAt {
		e.CreatedAt = current.CreatedAt
	}
	if !s.session.Update(ctx, e) {
		return models.MediaEntry{}, false, nil
	}
	s.log.Info("media entry updated", zap.String("id", id))
	return e, true, nil
}

// Delete removes the entry and, best effort, the uploaded files it owned.
func (s *Service) Delete(ctx context.Context, id string) (models.MediaEntry, bool) {
	e, ok := s.session.Entry(id)
	if !ok || !s.session.Remove(ctx, id) {
		return models.MediaEntry{}, false
	}
	for _, u := range []string{e.ImageURL, e.MediaURL} {
		if u == "" || !utils.OwnsFile(u) {
			continue
		}
		if err := utils.DeleteFile(u); err != nil {
			s.log.Warn("uploaded file not removed", zap.String("url", u), zap.Error(err))
		}
	}
	s.log.Info("media entry deleted", zap.String("id", id))
	return e, true
}
