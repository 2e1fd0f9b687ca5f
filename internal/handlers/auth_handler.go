package handlers

import (
	"fmt"
	"log"

	"gallery/internal/middleware"
	"gallery/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration, login, and account
// state.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber router.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/register", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
	router.Get("/user", authRequired, h.HandleGetUser)
	router.Put("/update-artist-status", authRequired, h.HandleUpdateArtistStatus)
	router.Delete("/user", authRequired, h.HandleDeleteUser)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req services.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Missing or invalid field: %s", validationErrors[0].Field()),
		})
	}

	user, err := h.authService.RegisterUser(req)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user.ToResponse(),
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	token, user, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		log.Printf("Login failed for %s: %v", req.Email, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user.ToResponse(),
	})
}

// HandleGetUser returns the authenticated caller's record.
func (h *AuthHandler) HandleGetUser(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{
		"user": user.ToResponse(),
	})
}

// UpdateArtistStatusRequest represents the request body for the artist flag
// update.
type UpdateArtistStatusRequest struct {
	IsArtist bool `json:"is_artist"`
}

// HandleUpdateArtistStatus updates the caller's artist flag and returns a
// re-issued token carrying the new role.
func (h *AuthHandler) HandleUpdateArtistStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req UpdateArtistStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing artist status request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, token, err := h.authService.UpdateArtistStatus(user.ID, req.IsArtist)
	if err != nil {
		log.Printf("Error updating artist status for user %s: %v", user.ID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Artist status updated successfully",
		"token":   token,
		"user":    updated.ToResponse(),
	})
}

// HandleDeleteUser deletes the caller's account, cascading their artworks
// and favorites.
func (h *AuthHandler) HandleDeleteUser(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if err := h.authService.DeleteUser(user.ID); err != nil {
		log.Printf("Error deleting user %s: %v", user.ID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Account deleted successfully",
	})
}
