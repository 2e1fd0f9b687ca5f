package repositories

import "gallery/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	// Delete removes the user together with their favorites, the favorites
	// of their artworks, and their artworks, all in one transaction.
	Delete(id string) error
}
