package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gallery/internal/models"
	"gallery/internal/repositories"
	"gallery/pkg/rabbitmq"
)

// ImageUploader sends raw image bytes to external image storage and returns
// the hosted URL.
type ImageUploader interface {
	Upload(filename string, data []byte) (string, error)
}

// ArtworkService handles business logic related to artworks.
type ArtworkService struct {
	artworkRepo repositories.ArtworkRepository
	uploader    ImageUploader
	mqClient    *rabbitmq.Client
}

// NewArtworkService creates a new ArtworkService. Both uploader and mqClient
// may be nil: without an uploader multipart creation is rejected, without an
// mq client event publication is skipped.
func NewArtworkService(artworkRepo repositories.ArtworkRepository, uploader ImageUploader, mqClient *rabbitmq.Client) *ArtworkService {
	return &ArtworkService{
		artworkRepo: artworkRepo,
		uploader:    uploader,
		mqClient:    mqClient,
	}
}

// CreateArtworkRequest carries the fields accepted when creating an artwork.
// Either ImageURL or ImageData must be set; when ImageData is present the
// image is uploaded to external storage and the hosted URL takes over.
type CreateArtworkRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Medium      string `json:"medium"`
	Dimensions  string `json:"dimensions"`
	Year        *int   `json:"year"`
	Location    string `json:"location"`

	ImageData     []byte `json:"-"`
	ImageFilename string `json:"-"`
}

// UpdateArtworkRequest carries a partial update. Nil fields are left
// unchanged; present fields overwrite, including with empty values.
type UpdateArtworkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Category    *string `json:"category"`
	Medium      *string `json:"medium"`
	Dimensions  *string `json:"dimensions"`
	Year        *int    `json:"year"`
	Location    *string `json:"location"`
}

// GetAllArtworks retrieves artworks matching the filter, newest first.
func (s *ArtworkService) GetAllArtworks(filter repositories.ArtworkFilter) ([]models.Artwork, error) {
	return s.artworkRepo.GetAll(filter)
}

// GetArtworkByID retrieves a single artwork by its ID.
func (s *ArtworkService) GetArtworkByID(id string) (*models.Artwork, error) {
	artwork, err := s.artworkRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("artwork not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return artwork, nil
}

// CreateArtwork creates an artwork owned by artistID. Ownership is always
// the caller's, never client-supplied. When the request carries raw image
// bytes they are uploaded to the external image host first and the returned
// URL replaces image_url.
func (s *ArtworkService) CreateArtwork(artistID string, req CreateArtworkRequest) (*models.Artwork, error) {
	imageURL := req.ImageURL
	if len(req.ImageData) > 0 {
		if s.uploader == nil {
			return nil, fmt.Errorf("image uploads are not configured")
		}
		hostedURL, err := s.uploader.Upload(req.ImageFilename, req.ImageData)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = hostedURL
	}

	artwork := &models.Artwork{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    imageURL,
		ArtistID:    artistID,
		Category:    req.Category,
		Medium:      req.Medium,
		Dimensions:  req.Dimensions,
		Year:        req.Year,
		Location:    req.Location,
	}
	if err := s.artworkRepo.Create(artwork); err != nil {
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}

	s.publishEvent("artwork.created", map[string]interface{}{
		"artwork_id": artwork.ID,
		"artist_id":  artwork.ArtistID,
		"title":      artwork.Title,
	})

	// Reload with the artist preloaded so the response carries artist_name.
	return s.GetArtworkByID(artwork.ID)
}

// UpdateArtwork applies a partial update to an artwork the caller owns.
// Returns ErrNotFound for a missing artwork and ErrForbidden when the caller
// is not its artist.
func (s *ArtworkService) UpdateArtwork(callerID, artworkID string, req UpdateArtworkRequest) (*models.Artwork, error) {
	artwork, err := s.GetArtworkByID(artworkID)
	if err != nil {
		return nil, err
	}
	if artwork.ArtistID != callerID {
		return nil, fmt.Errorf("you can only update your own artworks: %w", ErrForbidden)
	}

	if req.Title != nil {
		artwork.Title = *req.Title
	}
	if req.Description != nil {
		artwork.Description = *req.Description
	}
	if req.ImageURL != nil {
		artwork.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		artwork.Category = *req.Category
	}
	if req.Medium != nil {
		artwork.Medium = *req.Medium
	}
	if req.Dimensions != nil {
		artwork.Dimensions = *req.Dimensions
	}
	if req.Year != nil {
		artwork.Year = req.Year
	}
	if req.Location != nil {
		artwork.Location = *req.Location
	}

	if err := s.artworkRepo.Update(artwork); err != nil {
		return nil, fmt.Errorf("failed to update artwork: %w", err)
	}
	return artwork, nil
}

// DeleteArtwork removes an artwork the caller owns; its favorites go with it
// in the same transaction.
func (s *ArtworkService) DeleteArtwork(callerID, artworkID string) error {
	artwork, err := s.GetArtworkByID(artworkID)
	if err != nil {
		return err
	}
	if artwork.ArtistID != callerID {
		return fmt.Errorf("you can only delete your own artworks: %w", ErrForbidden)
	}

	if err := s.artworkRepo.Delete(artworkID); err != nil {
		return fmt.Errorf("failed to delete artwork: %w", err)
	}

	s.publishEvent("artwork.deleted", map[string]interface{}{
		"artwork_id": artworkID,
		"artist_id":  callerID,
	})
	return nil
}

// LikeArtwork unconditionally increments the artwork's like counter and
// returns the updated record. There is no dedup and no undo.
func (s *ArtworkService) LikeArtwork(artworkID string) (*models.Artwork, error) {
	if err := s.artworkRepo.IncrementLikes(artworkID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("artwork not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return s.GetArtworkByID(artworkID)
}

// DislikeArtwork unconditionally increments the artwork's dislike counter
// and returns the updated record.
func (s *ArtworkService) DislikeArtwork(artworkID string) (*models.Artwork, error) {
	if err := s.artworkRepo.IncrementDislikes(artworkID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("artwork not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return s.GetArtworkByID(artworkID)
}

// publishEvent sends a gallery event to the message queue. Publication is
// best effort: a missing client or a publish failure never fails the mutation
// that triggered it.
func (s *ArtworkService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
