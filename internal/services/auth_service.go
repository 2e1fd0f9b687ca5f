package services

import (
	"errors"
	"fmt"
	"time"

	"gallery/internal/models"
	"gallery/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and account state:
// password hashing, token issuance and verification, registration, login,
// the artist flag, and account deletion.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which a token is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// RegisterRequest carries the fields accepted at registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	IsArtist bool   `json:"is_artist"`
}

// RegisterUser registers a new user, storing only the bcrypt hash of the
// password. Returns ErrConflict if the username or email is already taken.
func (s *AuthService) RegisterUser(req RegisterRequest) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email already registered: %w", ErrConflict)
	}
	if existing, err := s.userRepo.GetByUsername(req.Username); err == nil && existing != nil {
		return nil, fmt.Errorf("username already taken: %w", ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		IsArtist: req.IsArtist,
	}
	if err := s.userRepo.Create(user); err != nil {
		// A racing registration can slip past the pre-checks and hit the
		// unique index instead; both paths report the same conflict.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("username or email already registered: %w", ErrConflict)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// LoginUser authenticates by email and password and issues a token. Any
// mismatch returns ErrInvalidCredentials without revealing whether the email
// exists.
func (s *AuthService) LoginUser(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GenerateToken signs a claim set for the user: id, username, artist flag,
// expiration 24 hours out.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := jwt.TimeFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"username":  user.Username,
		"is_artist": user.IsArtist,
		"exp":       now.Add(s.tokenDurat).Unix(),
		"iat":       now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a token, returning its claims. Expired
// tokens yield ErrTokenExpired; anything else wrong with the token yields
// ErrTokenInvalid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// GetUserByID resolves a user by id, mapping a missing record to ErrNotFound.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// UpdateArtistStatus sets the caller's artist flag and re-issues a token so
// the is_artist claim stays consistent with the stored role.
func (s *AuthService) UpdateArtistStatus(userID string, isArtist bool) (*models.User, string, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, "", err
	}

	user.IsArtist = isArtist
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", fmt.Errorf("failed to update artist status: %w", err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// DeleteUser removes the user's account; the repository cascades the
// deletion to their artworks and favorites in one transaction.
func (s *AuthService) DeleteUser(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
