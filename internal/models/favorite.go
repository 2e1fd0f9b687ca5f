package models

import "time"

// Favorite marks an artwork as favorited by a user. The (UserID, ArtworkID)
// pair is unique: a user cannot favorite the same artwork twice, and racing
// inserts are resolved by the store's uniqueness constraint.
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_favorites_user_artwork;type:varchar(36)"`
	ArtworkID string    `json:"artwork_id" gorm:"uniqueIndex:idx_favorites_user_artwork;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteResponse is the canonical external representation of a Favorite.
type FavoriteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ArtworkID string    `json:"artwork_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a Favorite to its external representation.
func (f *Favorite) ToResponse() FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		ArtworkID: f.ArtworkID,
		CreatedAt: f.CreatedAt,
	}
}
