package models

import "time"

// Artwork represents a piece of art in the gallery. The image itself lives
// on an external image host; ImageURL points at it.
type Artwork struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string    `json:"title" gorm:"type:varchar(100)" validate:"required,max=100"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(255)" validate:"required"`
	ArtistID    string    `json:"artist_id" gorm:"index;type:varchar(36)"`
	Artist      *User     `json:"-" gorm:"foreignKey:ArtistID"`
	Category    string    `json:"category" gorm:"type:varchar(50)"`
	Medium      string    `json:"medium" gorm:"type:varchar(50)"`
	Dimensions  string    `json:"dimensions" gorm:"type:varchar(50)"`
	Year        *int      `json:"year"`
	Location    string    `json:"location" gorm:"type:varchar(100)"`
	Likes       int       `json:"likes" gorm:"default:0"`
	Dislikes    int       `json:"dislikes" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArtworkResponse is the canonical external representation of an Artwork.
// It denormalizes the owning artist's display name, and carries the
// favorite record id when served from a favorites listing.
type ArtworkResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	ArtistID    string    `json:"artist_id"`
	ArtistName  string    `json:"artist_name"`
	Category    string    `json:"category"`
	Medium      string    `json:"medium"`
	Dimensions  string    `json:"dimensions"`
	Year        *int      `json:"year"`
	Location    string    `json:"location"`
	Likes       int       `json:"likes"`
	Dislikes    int       `json:"dislikes"`
	CreatedAt   time.Time `json:"created_at"`
	FavoriteID  string    `json:"favorite_id,omitempty"`
}

// ToResponse converts an Artwork to its external representation. ArtistName
// is filled from the preloaded Artist association when present.
func (a *Artwork) ToResponse() ArtworkResponse {
	resp := ArtworkResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		ArtistID:    a.ArtistID,
		Category:    a.Category,
		Medium:      a.Medium,
		Dimensions:  a.Dimensions,
		Year:        a.Year,
		Location:    a.Location,
		Likes:       a.Likes,
		Dislikes:    a.Dislikes,
		CreatedAt:   a.CreatedAt,
	}
	if a.Artist != nil {
		resp.ArtistName = a.Artist.Username
	}
	return resp
}
