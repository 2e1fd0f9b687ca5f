package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gallery/internal/handlers"
	"gallery/internal/middleware"
	"gallery/internal/models"
	"gallery/internal/repositories"
	"gallery/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubUploader stands in for the external image host.
type stubUploader struct {
	url string
	err error
}

func (s *stubUploader) Upload(filename string, data []byte) (string, error) {
	return s.url, s.err
}

// setupApp builds the full Fiber app over a fresh in-memory SQLite database,
// wired exactly like main but with a stubbed image host and no broker.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	// A unique DSN per test keeps shared-cache databases isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Artwork{}, &models.Favorite{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	artworkRepo := repositories.NewGORMArtworkRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	artworkService := services.NewArtworkService(artworkRepo, &stubUploader{url: "https://cdn.example.com/hosted.png"}, nil)
	favoriteService := services.NewFavoriteService(favoriteRepo, artworkRepo)

	authHandler := handlers.NewAuthHandler(authService)
	artworkHandler := handlers.NewArtworkHandler(artworkService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)

	app := fiber.New()
	authRequired := middleware.AuthRequired(authService)
	artistRequired := middleware.ArtistRequired()

	api := app.Group("/api")
	authHandler.RegisterRoutes(api, authRequired)
	artworkHandler.RegisterRoutes(api, authRequired, artistRequired)
	favoriteHandler.RegisterRoutes(api, authRequired)

	return app, db
}

// doJSON performs a JSON request against the app, with an optional bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

// decodeBody decodes a JSON response body into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err)
	return body
}

// registerAndLogin registers a user and logs them in, returning the token
// and the user's id.
func registerAndLogin(t *testing.T, app *fiber.App, username, email string, isArtist bool) (string, string) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/register", "", map[string]interface{}{
		"username":  username,
		"email":     email,
		"password":  "password123",
		"is_artist": isArtist,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	registered := decodeBody(t, resp)
	userID := registered["user"].(map[string]interface{})["id"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	loggedIn := decodeBody(t, resp)
	return loggedIn["token"].(string), userID
}

// createArtwork creates an artwork over the API and returns its id.
func createArtwork(t *testing.T, app *fiber.App, token string, fields map[string]interface{}) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/artworks", token, fields)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	return body["artwork"].(map[string]interface{})["id"].(string)
}

func TestRegisterAndLogin(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/register", "", map[string]interface{}{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	// The hash never leaks into the response
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)

	// Same email, different username: conflict
	resp = doJSON(t, app, http.MethodPost, "/api/register", "", map[string]interface{}{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Same username, different email: conflict
	resp = doJSON(t, app, http.MethodPost, "/api/register", "", map[string]interface{}{
		"username": "alice",
		"email":    "alice2@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Missing required field
	resp = doJSON(t, app, http.MethodPost, "/api/register", "", map[string]interface{}{
		"username": "bob",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Wrong password and unknown email yield the same message
	resp = doJSON(t, app, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	wrongPassword := decodeBody(t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	unknownEmail := decodeBody(t, resp)
	assert.Equal(t, wrongPassword["error"], unknownEmail["error"])

	// Successful login returns a token and the user
	resp = doJSON(t, app, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "alice", body["user"].(map[string]interface{})["username"])
}

func TestUserEndpoint(t *testing.T) {
	app, _ := setupApp(t)
	token, userID := registerAndLogin(t, app, "carol", "carol@example.com", false)

	// Missing Authorization header
	resp := doJSON(t, app, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Garbage token
	resp = doJSON(t, app, http.MethodGet, "/api/user", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Valid token
	resp = doJSON(t, app, http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, userID, body["user"].(map[string]interface{})["id"])

	// A valid token whose subject no longer exists resolves to 404
	resp = doJSON(t, app, http.MethodDelete, "/api/user", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestArtistStatusGatesArtworkCreation(t *testing.T) {
	app, _ := setupApp(t)
	token, userID := registerAndLogin(t, app, "dave", "dave@example.com", false)

	artworkBody := map[string]interface{}{
		"title":     "First Piece",
		"image_url": "https://images.example.com/first.jpg",
		"artist_id": "someone-else", // must be ignored
	}

	// Not an artist yet
	resp := doJSON(t, app, http.MethodPost, "/api/artworks", token, artworkBody)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Become an artist; the re-issued token carries the new role
	resp = doJSON(t, app, http.MethodPut, "/api/update-artist-status", token, map[string]interface{}{
		"is_artist": true,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	newToken := body["token"].(string)
	assert.NotEmpty(t, newToken)
	assert.Equal(t, true, body["user"].(map[string]interface{})["is_artist"])

	// Creation succeeds and ownership is the caller's, never client-supplied
	resp = doJSON(t, app, http.MethodPost, "/api/artworks", newToken, artworkBody)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body = decodeBody(t, resp)
	artwork := body["artwork"].(map[string]interface{})
	assert.Equal(t, userID, artwork["artist_id"])
	assert.Equal(t, "dave", artwork["artist_name"])

	// Missing title and missing image source are both rejected
	resp = doJSON(t, app, http.MethodPost, "/api/artworks", newToken, map[string]interface{}{
		"image_url": "https://images.example.com/x.jpg",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/artworks", newToken, map[string]interface{}{
		"title": "No Image",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestArtworkMultipartCreation(t *testing.T) {
	app, _ := setupApp(t)
	token, _ := registerAndLogin(t, app, "eve", "eve@example.com", true)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	assert.NoError(t, writer.WriteField("title", "Uploaded Piece"))
	assert.NoError(t, writer.WriteField("category", "Abstract"))
	assert.NoError(t, writer.WriteField("year", "2024"))
	part, err := writer.CreateFormFile("image", "piece.png")
	assert.NoError(t, err)
	_, err = part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/artworks", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	artwork := body["artwork"].(map[string]interface{})
	// The stub host's URL replaced the uploaded file
	assert.Equal(t, "https://cdn.example.com/hosted.png", artwork["image_url"])
	assert.Equal(t, "Abstract", artwork["category"])
	assert.Equal(t, float64(2024), artwork["year"])
}

func TestArtworkListingFilters(t *testing.T) {
	app, db := setupApp(t)
	token, artistID := registerAndLogin(t, app, "frank", "frank@example.com", true)
	otherToken, otherID := registerAndLogin(t, app, "grace", "grace@example.com", true)

	oldID := createArtwork(t, app, token, map[string]interface{}{
		"title":     "Old Abstract",
		"image_url": "https://images.example.com/a.jpg",
		"category":  "Abstract",
		"year":      2021,
	})
	newID := createArtwork(t, app, token, map[string]interface{}{
		"title":     "New Abstract",
		"image_url": "https://images.example.com/b.jpg",
		"category":  "Abstract",
		"year":      2023,
	})
	landscapeID := createArtwork(t, app, otherToken, map[string]interface{}{
		"title":     "Landscape",
		"image_url": "https://images.example.com/c.jpg",
		"category":  "Landscape",
	})

	// Pin creation times so the ordering assertion cannot tie
	base := time.Now().Add(-time.Hour)
	assert.NoError(t, db.Model(&models.Artwork{}).Where("id = ?", oldID).Update("created_at", base).Error)
	assert.NoError(t, db.Model(&models.Artwork{}).Where("id = ?", newID).Update("created_at", base.Add(time.Minute)).Error)
	assert.NoError(t, db.Model(&models.Artwork{}).Where("id = ?", landscapeID).Update("created_at", base.Add(2*time.Minute)).Error)

	// Unfiltered listing is public and newest-first
	resp := doJSON(t, app, http.MethodGet, "/api/artworks", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(3), body["count"])
	artworks := body["artworks"].([]interface{})
	assert.Equal(t, landscapeID, artworks[0].(map[string]interface{})["id"])
	assert.Equal(t, newID, artworks[1].(map[string]interface{})["id"])
	assert.Equal(t, oldID, artworks[2].(map[string]interface{})["id"])

	// Category filter, still newest-first
	resp = doJSON(t, app, http.MethodGet, "/api/artworks?category=Abstract", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	artworks = body["artworks"].([]interface{})
	assert.Len(t, artworks, 2)
	assert.Equal(t, newID, artworks[0].(map[string]interface{})["id"])
	assert.Equal(t, oldID, artworks[1].(map[string]interface{})["id"])
	for _, a := range artworks {
		assert.Equal(t, "Abstract", a.(map[string]interface{})["category"])
	}

	// Artist filter
	resp = doJSON(t, app, http.MethodGet, "/api/artworks?artist_id="+otherID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	artworks = body["artworks"].([]interface{})
	assert.Len(t, artworks, 1)
	assert.Equal(t, landscapeID, artworks[0].(map[string]interface{})["id"])

	resp = doJSON(t, app, http.MethodGet, "/api/artworks?artist_id="+artistID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(2), body["count"])

	// Single retrieval is public; missing id is 404
	resp = doJSON(t, app, http.MethodGet, "/api/artworks/"+oldID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/artworks/"+uuid.New().String(), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestArtworkOwnership(t *testing.T) {
	app, _ := setupApp(t)
	ownerToken, _ := registerAndLogin(t, app, "henry", "henry@example.com", true)
	intruderToken, _ := registerAndLogin(t, app, "iris", "iris@example.com", true)

	artworkID := createArtwork(t, app, ownerToken, map[string]interface{}{
		"title":       "Guarded",
		"description": "original description",
		"image_url":   "https://images.example.com/guarded.jpg",
	})

	// A non-owner cannot update, and the artwork is unchanged
	resp := doJSON(t, app, http.MethodPut, "/api/artworks/"+artworkID, intruderToken, map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/artworks/"+artworkID, "", nil)
	body := decodeBody(t, resp)
	assert.Equal(t, "Guarded", body["artwork"].(map[string]interface{})["title"])

	// A non-owner cannot delete
	resp = doJSON(t, app, http.MethodDelete, "/api/artworks/"+artworkID, intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Partial update by the owner: omitted fields keep their values
	resp = doJSON(t, app, http.MethodPut, "/api/artworks/"+artworkID, ownerToken, map[string]interface{}{
		"title": "Renamed",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	artwork := body["artwork"].(map[string]interface{})
	assert.Equal(t, "Renamed", artwork["title"])
	assert.Equal(t, "original description", artwork["description"])

	// Deletion cascades favorites
	resp = doJSON(t, app, http.MethodPost, "/api/favorites/"+artworkID, intruderToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/artworks/"+artworkID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/artworks/"+artworkID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/favorites", intruderToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(0), body["count"])
}

func TestFavoritesFlow(t *testing.T) {
	app, db := setupApp(t)
	artistToken, _ := registerAndLogin(t, app, "july", "july@example.com", true)
	userToken, _ := registerAndLogin(t, app, "kate", "kate@example.com", false)

	artworkID := createArtwork(t, app, artistToken, map[string]interface{}{
		"title":     "Collectible",
		"image_url": "https://images.example.com/collectible.jpg",
	})

	// Favoriting a missing artwork
	resp := doJSON(t, app, http.MethodPost, "/api/favorites/"+uuid.New().String(), userToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// First add succeeds, second conflicts
	resp = doJSON(t, app, http.MethodPost, "/api/favorites/"+artworkID, userToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	favoriteID := body["favorite"].(map[string]interface{})["id"].(string)
	assert.NotEmpty(t, favoriteID)

	resp = doJSON(t, app, http.MethodPost, "/api/favorites/"+artworkID, userToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Status check
	resp = doJSON(t, app, http.MethodGet, "/api/artworks/"+artworkID+"/is_favorite", userToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, true, body["is_favorite"])

	// Listing carries the favorite record id and the artist's name
	resp = doJSON(t, app, http.MethodGet, "/api/favorites", userToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(1), body["count"])
	entry := body["favorites"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, favoriteID, entry["favorite_id"])
	assert.Equal(t, "july", entry["artist_name"])

	// Remove, remove again, re-add
	resp = doJSON(t, app, http.MethodDelete, "/api/favorites/"+artworkID, userToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/favorites/"+artworkID, userToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/artworks/"+artworkID+"/is_favorite", userToken, nil)
	body = decodeBody(t, resp)
	assert.Equal(t, false, body["is_favorite"])

	resp = doJSON(t, app, http.MethodPost, "/api/favorites/"+artworkID, userToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// A favorite whose artwork vanished without the cascade is skipped,
	// not an error
	assert.NoError(t, db.Delete(&models.Artwork{}, "id = ?", artworkID).Error)
	resp = doJSON(t, app, http.MethodGet, "/api/favorites", userToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(0), body["count"])
}

func TestLikeAndDislikeCounters(t *testing.T) {
	app, _ := setupApp(t)
	artistToken, _ := registerAndLogin(t, app, "liam", "liam@example.com", true)
	userToken, _ := registerAndLogin(t, app, "mona", "mona@example.com", false)

	artworkID := createArtwork(t, app, artistToken, map[string]interface{}{
		"title":     "Crowd Pleaser",
		"image_url": "https://images.example.com/pleaser.jpg",
	})

	// Likes require authentication
	resp := doJSON(t, app, http.MethodPost, "/api/artworks/"+artworkID+"/like", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Three likes from the same user count three times; the owner can like too
	var body map[string]interface{}
	for i := 0; i < 2; i++ {
		resp = doJSON(t, app, http.MethodPost, "/api/artworks/"+artworkID+"/like", userToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body = decodeBody(t, resp)
	}
	resp = doJSON(t, app, http.MethodPost, "/api/artworks/"+artworkID+"/like", artistToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	artwork := body["artwork"].(map[string]interface{})
	assert.Equal(t, float64(3), artwork["likes"])
	assert.Equal(t, float64(0), artwork["dislikes"])

	resp = doJSON(t, app, http.MethodPost, "/api/artworks/"+artworkID+"/dislike", userToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(1), body["artwork"].(map[string]interface{})["dislikes"])

	resp = doJSON(t, app, http.MethodPost, "/api/artworks/"+uuid.New().String()+"/like", userToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUserDeletionCascades(t *testing.T) {
	app, _ := setupApp(t)
	artistToken, artistID := registerAndLogin(t, app, "nina", "nina@example.com", true)
	fanToken, _ := registerAndLogin(t, app, "oscar", "oscar@example.com", false)

	artworkID := createArtwork(t, app, artistToken, map[string]interface{}{
		"title":     "Ephemeral",
		"image_url": "https://images.example.com/ephemeral.jpg",
	})

	resp := doJSON(t, app, http.MethodPost, "/api/favorites/"+artworkID, fanToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Deleting the artist removes their artworks and every favorite
	// pointing at them
	resp = doJSON(t, app, http.MethodDelete, "/api/user", artistToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/artworks?artist_id="+artistID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["count"])

	resp = doJSON(t, app, http.MethodGet, "/api/artworks/"+artworkID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/favorites", fanToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(0), body["count"])
}
