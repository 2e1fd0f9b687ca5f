package repositories

import "gallery/internal/models"

// FavoriteRepository defines the interface for favorite data access.
type FavoriteRepository interface {
	GetByUser(userID string) ([]models.Favorite, error)
	GetByUserAndArtwork(userID, artworkID string) (*models.Favorite, error)
	// Create inserts the favorite, returning ErrDuplicate when the
	// (user, artwork) pair already exists.
	Create(favorite *models.Favorite) error
	Delete(userID, artworkID string) error
}
