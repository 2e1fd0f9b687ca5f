package repositories

import (
	"errors"
	"fmt"

	"gallery/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMArtworkRepository is a GORM implementation of ArtworkRepository.
type GORMArtworkRepository struct {
	db *gorm.DB
}

// NewGORMArtworkRepository creates a new instance of GORMArtworkRepository.
func NewGORMArtworkRepository(db *gorm.DB) *GORMArtworkRepository {
	return &GORMArtworkRepository{
		db: db,
	}
}

// GetAll retrieves artworks matching the filter, newest first.
func (r *GORMArtworkRepository) GetAll(filter ArtworkFilter) ([]models.Artwork, error) {
	query := r.db.Preload("Artist")
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ArtistID != "" {
		query = query.Where("artist_id = ?", filter.ArtistID)
	}

	var artworks []models.Artwork
	if err := query.Order("created_at DESC").Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to get artworks: %w", err)
	}
	return artworks, nil
}

// GetByID retrieves a single artwork by its ID, with the artist preloaded.
func (r *GORMArtworkRepository) GetByID(id string) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := r.db.Preload("Artist").First(&artwork, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("artwork with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get artwork by ID %s: %w", id, err)
	}
	return &artwork, nil
}

// Create creates a new artwork in the database.
func (r *GORMArtworkRepository) Create(artwork *models.Artwork) error {
	if artwork.ID == "" {
		artwork.ID = uuid.New().String()
	}
	if err := r.db.Create(artwork).Error; err != nil {
		return fmt.Errorf("failed to create artwork: %w", err)
	}
	return nil
}

// Update saves changes to an existing artwork.
func (r *GORMArtworkRepository) Update(artwork *models.Artwork) error {
	// Save writes all fields; partial-update semantics are the service's
	// job, it hands us the already-merged record.
	res := r.db.Omit("Artist").Save(artwork)
	if res.Error != nil {
		return fmt.Errorf("failed to update artwork: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artwork with ID %s: %w", artwork.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an artwork and its favorites in one transaction.
func (r *GORMArtworkRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Favorite{}, "artwork_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete favorites of artwork %s: %w", id, err)
		}
		res := tx.Delete(&models.Artwork{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete artwork %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("artwork with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

// IncrementLikes adds one to the artwork's like counter. The increment
// happens in SQL so concurrent likes never lose updates.
func (r *GORMArtworkRepository) IncrementLikes(id string) error {
	return r.incrementCounter(id, "likes")
}

// IncrementDislikes adds one to the artwork's dislike counter.
func (r *GORMArtworkRepository) IncrementDislikes(id string) error {
	return r.incrementCounter(id, "dislikes")
}

func (r *GORMArtworkRepository) incrementCounter(id, column string) error {
	res := r.db.Model(&models.Artwork{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return fmt.Errorf("failed to increment %s for artwork %s: %w", column, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artwork with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
