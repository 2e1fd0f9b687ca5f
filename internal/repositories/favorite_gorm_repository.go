package repositories

import (
	"errors"
	"fmt"

	"gallery/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// GetByUser retrieves all favorites placed by a user.
func (r *GORMFavoriteRepository) GetByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.Find(&favorites, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get favorites for user %s: %w", userID, err)
	}
	return favorites, nil
}

// GetByUserAndArtwork retrieves the favorite for a (user, artwork) pair.
func (r *GORMFavoriteRepository) GetByUserAndArtwork(userID, artworkID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.First(&favorite, "user_id = ? AND artwork_id = ?", userID, artworkID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("favorite for user %s and artwork %s: %w", userID, artworkID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get favorite for user %s and artwork %s: %w", userID, artworkID, err)
	}
	return &favorite, nil
}

// Create inserts a new favorite. A uniqueness violation on the
// (user_id, artwork_id) index surfaces as ErrDuplicate so the caller can
// treat a racing insert the same as a pre-checked duplicate.
func (r *GORMFavoriteRepository) Create(favorite *models.Favorite) error {
	if favorite.ID == "" {
		favorite.ID = uuid.New().String()
	}
	if err := r.db.Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("favorite for user %s and artwork %s: %w", favorite.UserID, favorite.ArtworkID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// Delete removes the favorite for a (user, artwork) pair.
func (r *GORMFavoriteRepository) Delete(userID, artworkID string) error {
	res := r.db.Delete(&models.Favorite{}, "user_id = ? AND artwork_id = ?", userID, artworkID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete favorite for user %s and artwork %s: %w", userID, artworkID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite for user %s and artwork %s: %w", userID, artworkID, ErrNotFound)
	}
	return nil
}
