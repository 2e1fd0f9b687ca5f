package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gallery/internal/handlers"
	"gallery/internal/middleware"
	"gallery/internal/models"
	"gallery/internal/repositories"
	"gallery/internal/services"
	"gallery/pkg/imagehost"
	"gallery/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "host=localhost user=gallery password=gallery dbname=gallery port=5432 sslmode=disable")
	viper.SetDefault("JWT_SECRET", "dev_key_for_testing")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("IMAGE_HOST_URL", "https://api.imgbb.com/1/upload")
	viper.SetDefault("IMAGE_HOST_KEY", "")
	viper.SetDefault("SEED_DATABASE", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Database ---
	// TranslateError turns driver-specific uniqueness violations into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(postgres.Open(viper.GetString("DATABASE_URL")), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Artwork{}, &models.Favorite{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// The gallery works without a broker; events are simply not published.
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, continuing without events: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Image host ---
	uploader := imagehost.NewClient(imagehost.Config{
		Endpoint: viper.GetString("IMAGE_HOST_URL"),
		APIKey:   viper.GetString("IMAGE_HOST_KEY"),
	})

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	artworkRepo := repositories.NewGORMArtworkRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	artworkService := services.NewArtworkService(artworkRepo, uploader, mqClient)
	favoriteService := services.NewFavoriteService(favoriteRepo, artworkRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	artworkHandler := handlers.NewArtworkHandler(artworkService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)

	// --- Seed sample data ---
	if viper.GetBool("SEED_DATABASE") {
		seedGallery(userRepo, artworkRepo, authService)
	}

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	authRequired := middleware.AuthRequired(authService)
	artistRequired := middleware.ArtistRequired()

	api := app.Group("/api")
	authHandler.RegisterRoutes(api, authRequired)
	artworkHandler.RegisterRoutes(api, authRequired, artistRequired)
	favoriteHandler.RegisterRoutes(api, authRequired)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
		})
	})

	// --- Gallery event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for gallery events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received gallery event %s (tag %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeGalleryEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// seedGallery populates an empty database with a sample artist and artworks.
func seedGallery(userRepo repositories.UserRepository, artworkRepo repositories.ArtworkRepository, authService *services.AuthService) {
	if existing, err := artworkRepo.GetAll(repositories.ArtworkFilter{}); err == nil && len(existing) > 0 {
		log.Println("Database already has data, skipping seed.")
		return
	}

	artist, err := userRepo.GetByEmail("test@example.com")
	if err != nil {
		artist, err = authService.RegisterUser(services.RegisterRequest{
			Username: "testuser",
			Email:    "test@example.com",
			Password: "password123",
			IsArtist: true,
		})
		if err != nil {
			log.Printf("Error seeding test user: %v", err)
			return
		}
		log.Println("Created test user")
	}

	year2023 := 2023
	year2022 := 2022
	year2021 := 2021
	artworks := []models.Artwork{
		{
			Title:       "Ethereal Dreams",
			Description: "This mesmerizing abstract piece explores the fluid boundary between dreams and reality.",
			ImageURL:    "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&q=80",
			ArtistID:    artist.ID,
			Category:    "Abstract",
			Medium:      "Acrylic on Canvas",
			Dimensions:  "36 × 48 inches",
			Year:        &year2023,
			Location:    "New York, USA",
		},
		{
			Title:       "Urban Symphony",
			Description: "A vibrant depiction of city life with its energy and constant movement.",
			ImageURL:    "https://images.unsplash.com/photo-1561214115-f2f134cc4912?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			ArtistID:    artist.ID,
			Category:    "Urban",
			Medium:      "Mixed Media",
			Dimensions:  "24 × 36 inches",
			Year:        &year2022,
			Location:    "Chicago, USA",
		},
		{
			Title:       "Celestial Harmony",
			Description: "An exploration of cosmic themes with swirling galaxies and celestial bodies.",
			ImageURL:    "https://images.unsplash.com/photo-1549490349-8643362247b5?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			ArtistID:    artist.ID,
			Category:    "Abstract",
			Medium:      "Digital Art",
			Dimensions:  "30 × 40 inches",
			Year:        &year2023,
			Location:    "Online",
		},
		{
			Title:       "Whispers of Nature",
			Description: "A serene landscape capturing the tranquility of untouched wilderness.",
			ImageURL:    "https://images.unsplash.com/photo-1571115764595-644a1f56a55c?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			ArtistID:    artist.ID,
			Category:    "Landscape",
			Medium:      "Oil on Canvas",
			Dimensions:  "36 × 24 inches",
			Year:        &year2021,
			Location:    "Portland, USA",
		},
	}

	for i := range artworks {
		if err := artworkRepo.Create(&artworks[i]); err != nil {
			log.Printf("Error seeding artwork %s: %v", artworks[i].Title, err)
		} else {
			log.Printf("Seeded artwork: %s (ID: %s)", artworks[i].Title, artworks[i].ID)
		}
	}
}
