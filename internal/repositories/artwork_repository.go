package repositories

import "gallery/internal/models"

// ArtworkFilter narrows an artwork listing. Zero values mean "no filter".
type ArtworkFilter struct {
	Category string
	ArtistID string
}

// ArtworkRepository defines the interface for artwork data access.
// Listings and single-record reads come back with the Artist association
// populated so responses can denormalize the artist's name.
type ArtworkRepository interface {
	GetAll(filter ArtworkFilter) ([]models.Artwork, error)
	GetByID(id string) (*models.Artwork, error)
	Create(artwork *models.Artwork) error
	Update(artwork *models.Artwork) error
	// Delete removes the artwork and its favorites in one transaction.
	Delete(id string) error
	IncrementLikes(id string) error
	IncrementDislikes(id string) error
}
