package handlers

import (
	"io"
	"log"
	"strconv"
	"strings"

	"gallery/internal/middleware"
	"gallery/internal/models"
	"gallery/internal/repositories"
	"gallery/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ArtworkHandler handles HTTP requests for artworks.
type ArtworkHandler struct {
	artworkService *services.ArtworkService
}

// NewArtworkHandler creates a new ArtworkHandler.
func NewArtworkHandler(artworkService *services.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{
		artworkService: artworkService,
	}
}

// RegisterRoutes registers the artwork routes with the Fiber router.
// Listing and retrieval are public; everything mutating requires a token,
// and creation additionally requires the artist role.
func (h *ArtworkHandler) RegisterRoutes(router fiber.Router, authRequired, artistRequired fiber.Handler) {
	router.Get("/artworks", h.HandleGetArtworks)
	router.Get("/artworks/:id", h.HandleGetArtwork)
	router.Post("/artworks", authRequired, artistRequired, h.HandleCreateArtwork)
	router.Put("/artworks/:id", authRequired, h.HandleUpdateArtwork)
	router.Delete("/artworks/:id", authRequired, h.HandleDeleteArtwork)
	router.Post("/artworks/:id/like", authRequired, h.HandleLikeArtwork)
	router.Post("/artworks/:id/dislike", authRequired, h.HandleDislikeArtwork)
}

// HandleGetArtworks lists artworks, optionally filtered by category and
// artist id, newest first.
func (h *ArtworkHandler) HandleGetArtworks(c *fiber.Ctx) error {
	filter := repositories.ArtworkFilter{
		Category: c.Query("category"),
		ArtistID: c.Query("artist_id"),
	}

	artworks, err := h.artworkService.GetAllArtworks(filter)
	if err != nil {
		log.Printf("Error listing artworks: %v", err)
		return respondError(c, err)
	}

	responses := make([]models.ArtworkResponse, 0, len(artworks))
	for i := range artworks {
		responses = append(responses, artworks[i].ToResponse())
	}
	return c.JSON(fiber.Map{
		"artworks": responses,
		"count":    len(responses),
	})
}

// HandleGetArtwork retrieves a single artwork by its ID.
func (h *ArtworkHandler) HandleGetArtwork(c *fiber.Ctx) error {
	artwork, err := h.artworkService.GetArtworkByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"artwork": artwork.ToResponse(),
	})
}

// HandleCreateArtwork creates an artwork for the authenticated artist. The
// body is either JSON with an image_url, or a multipart form carrying an
// image file that gets uploaded to external image storage first.
func (h *ArtworkHandler) HandleCreateArtwork(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req services.CreateArtworkRequest
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := h.parseMultipartArtwork(c, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing artwork request body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required field: title",
		})
	}
	if req.ImageURL == "" && len(req.ImageData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required field: image_url",
		})
	}

	artwork, err := h.artworkService.CreateArtwork(user.ID, req)
	if err != nil {
		log.Printf("Error creating artwork for user %s: %v", user.ID, err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Artwork created successfully",
		"artwork": artwork.ToResponse(),
	})
}

// parseMultipartArtwork fills the create request from a multipart form. The
// image arrives as a file field named "image"; an image_url form value is
// accepted as an alternative.
func (h *ArtworkHandler) parseMultipartArtwork(c *fiber.Ctx, req *services.CreateArtworkRequest) error {
	req.Title = c.FormValue("title")
	req.Description = c.FormValue("description")
	req.ImageURL = c.FormValue("image_url")
	req.Category = c.FormValue("category")
	req.Medium = c.FormValue("medium")
	req.Dimensions = c.FormValue("dimensions")
	req.Location = c.FormValue("location")
	if yearValue := c.FormValue("year"); yearValue != "" {
		year, err := strconv.Atoi(yearValue)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid year value")
		}
		req.Year = &year
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No file attached; image_url may still carry the image source.
		return nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded image")
	}
	req.ImageData = data
	req.ImageFilename = fileHeader.Filename
	return nil
}

// HandleUpdateArtwork applies a partial update to the caller's artwork.
// Fields absent from the body are left unchanged.
func (h *ArtworkHandler) HandleUpdateArtwork(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req services.UpdateArtworkRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing artwork update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	artwork, err := h.artworkService.UpdateArtwork(user.ID, c.Params("id"), req)
	if err != nil {
		log.Printf("Error updating artwork %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Artwork updated successfully",
		"artwork": artwork.ToResponse(),
	})
}

// HandleDeleteArtwork deletes the caller's artwork, cascading its favorites.
func (h *ArtworkHandler) HandleDeleteArtwork(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if err := h.artworkService.DeleteArtwork(user.ID, c.Params("id")); err != nil {
		log.Printf("Error deleting artwork %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Artwork deleted successfully",
	})
}

// HandleLikeArtwork increments the artwork's like counter.
func (h *ArtworkHandler) HandleLikeArtwork(c *fiber.Ctx) error {
	artwork, err := h.artworkService.LikeArtwork(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Artwork liked successfully",
		"artwork": artwork.ToResponse(),
	})
}

// HandleDislikeArtwork increments the artwork's dislike counter.
func (h *ArtworkHandler) HandleDislikeArtwork(c *fiber.Ctx) error {
	artwork, err := h.artworkService.DislikeArtwork(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Artwork disliked successfully",
		"artwork": artwork.ToResponse(),
	})
}
