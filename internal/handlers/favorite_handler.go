package handlers

import (
	"log"

	"gallery/internal/middleware"
	"gallery/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles HTTP requests for per-user favorites.
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// RegisterRoutes registers the favorite routes with the Fiber router. The
// :id parameter on /favorites routes is the artwork id.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/favorites", authRequired, h.HandleGetFavorites)
	router.Post("/favorites/:id", authRequired, h.HandleAddFavorite)
	router.Delete("/favorites/:id", authRequired, h.HandleRemoveFavorite)
	router.Get("/artworks/:id/is_favorite", authRequired, h.HandleIsFavorite)
}

// HandleGetFavorites lists the caller's favorited artworks.
func (h *FavoriteHandler) HandleGetFavorites(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	favorites, err := h.favoriteService.GetUserFavorites(user.ID)
	if err != nil {
		log.Printf("Error listing favorites for user %s: %v", user.ID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"favorites": favorites,
		"count":     len(favorites),
	})
}

// HandleAddFavorite favorites an artwork for the caller.
func (h *FavoriteHandler) HandleAddFavorite(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	favorite, err := h.favoriteService.AddFavorite(user.ID, c.Params("id"))
	if err != nil {
		log.Printf("Error adding favorite for user %s: %v", user.ID, err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Artwork added to favorites",
		"favorite": favorite.ToResponse(),
	})
}

// HandleRemoveFavorite unfavorites an artwork for the caller.
func (h *FavoriteHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if err := h.favoriteService.RemoveFavorite(user.ID, c.Params("id")); err != nil {
		log.Printf("Error removing favorite for user %s: %v", user.ID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Artwork removed from favorites",
	})
}

// HandleIsFavorite reports whether the caller has favorited the artwork.
func (h *FavoriteHandler) HandleIsFavorite(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	isFavorite, err := h.favoriteService.IsFavorite(user.ID, c.Params("id"))
	if err != nil {
		log.Printf("Error checking favorite for user %s: %v", user.ID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"is_favorite": isFavorite,
	})
}
