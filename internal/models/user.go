package models

import "time"

// User represents a registered user of the gallery. Artists are regular
// users with the IsArtist flag set; the flag gates artwork creation.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // Always a bcrypt hash, never plaintext
	IsArtist  bool      `json:"is_artist"`
	CreatedAt time.Time `json:"created_at"`
}

// UserResponse is the canonical external representation of a User.
// The password hash is never part of it.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsArtist  bool      `json:"is_artist"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a User to its external representation.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsArtist:  u.IsArtist,
		CreatedAt: u.CreatedAt,
	}
}
