package services

import (
	"errors"
	"fmt"
	"log"

	"gallery/internal/models"
	"gallery/internal/repositories"
)

// FavoriteService handles business logic related to per-user favorites.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	artworkRepo  repositories.ArtworkRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, artworkRepo repositories.ArtworkRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		artworkRepo:  artworkRepo,
	}
}

// GetUserFavorites returns the artworks the user has favorited, each
// carrying the id of its favorite record. A favorite whose artwork has gone
// missing is skipped rather than failing the whole listing.
func (s *FavoriteService) GetUserFavorites(userID string) ([]models.ArtworkResponse, error) {
	favorites, err := s.favoriteRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	artworks := make([]models.ArtworkResponse, 0, len(favorites))
	for _, favorite := range favorites {
		artwork, err := s.artworkRepo.GetByID(favorite.ArtworkID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				// Dangling artwork_id, tolerate and move on.
				log.Printf("Skipping favorite %s: artwork %s no longer exists", favorite.ID, favorite.ArtworkID)
				continue
			}
			return nil, err
		}
		resp := artwork.ToResponse()
		resp.FavoriteID = favorite.ID
		artworks = append(artworks, resp)
	}
	return artworks, nil
}

// AddFavorite favorites an artwork for the user. Returns ErrNotFound if the
// artwork does not exist and ErrConflict if the user already favorited it,
// whether caught by the pre-check or by the store's uniqueness constraint.
func (s *FavoriteService) AddFavorite(userID, artworkID string) (*models.Favorite, error) {
	if _, err := s.artworkRepo.GetByID(artworkID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("artwork not found: %w", ErrNotFound)
		}
		return nil, err
	}

	if existing, err := s.favoriteRepo.GetByUserAndArtwork(userID, artworkID); err == nil && existing != nil {
		return nil, fmt.Errorf("artwork already in favorites: %w", ErrConflict)
	}

	favorite := &models.Favorite{
		UserID:    userID,
		ArtworkID: artworkID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		// A concurrent add can pass the pre-check and lose the insert race;
		// the constraint violation reports the same conflict.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("artwork already in favorites: %w", ErrConflict)
		}
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	return favorite, nil
}

// RemoveFavorite unfavorites an artwork for the user. Returns ErrNotFound if
// no such favorite exists.
func (s *FavoriteService) RemoveFavorite(userID, artworkID string) error {
	if err := s.favoriteRepo.Delete(userID, artworkID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("artwork not in favorites: %w", ErrNotFound)
		}
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether the user has favorited the artwork. A missing
// favorite is false, never an error.
func (s *FavoriteService) IsFavorite(userID, artworkID string) (bool, error) {
	_, err := s.favoriteRepo.GetByUserAndArtwork(userID, artworkID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
