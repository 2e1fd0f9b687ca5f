package middleware

import (
	"errors"
	"log"
	"strings"

	"gallery/internal/models"
	"gallery/internal/services"

	"github.com/gofiber/fiber/v2"
)

// currentUserKey is the Locals key under which AuthRequired stores the
// resolved *models.User.
const currentUserKey = "currentUser"

// AuthRequired is a Fiber middleware that checks for a valid bearer token
// and resolves its subject to a live user. The resolved user is stored in
// the request context for downstream handlers. A missing or bad token is
// 401; a token whose subject no longer exists is 404.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is missing",
			})
		}

		// Expected format: "Bearer <token>"
		tokenString := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
			tokenString = parts[1]
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			if errors.Is(err, services.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Token has expired",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		userID, ok := claims["user_id"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		user, err := authService.GetUserByID(userID)
		if err != nil {
			// The token was valid but its subject is gone.
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// ArtistRequired gates a route to users with the artist flag. It composes
// after AuthRequired, which must already have resolved the user.
func ArtistRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		if !user.IsArtist {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Artist privileges required",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired, or nil when the
// route was not authenticated.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
