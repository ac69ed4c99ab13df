package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/boardvote/board-voting-api/internal/constants"
	"github.com/boardvote/board-voting-api/internal/models"
	"github.com/boardvote/board-voting-api/internal/repository"
	"github.com/boardvote/board-voting-api/internal/utils"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrEmailTaken           = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// AuthService handles registration, login and token issuance.
type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// RegisterInput represents the required information to create a new user.
// Any client-supplied admin flag is dropped before it reaches here: new
// profiles are always non-admin.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a user with a fresh profile and returns their token key.
func (s *AuthService) Register(input RegisterInput) (string, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return "", fmt.Errorf("username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return "", ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}
	profile := &models.UserProfile{
		IsAdmin: false,
	}

	if err := s.userRepo.CreateWithProfile(user, profile); err != nil {
		return "", ErrFailedToCreateUser
	}

	return s.issueToken(user.ID)
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the user's token key. Unknown
// email and wrong password produce the same error.
func (s *AuthService) Login(input LoginInput) (string, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(user.ID)
}

// issueToken returns the user's existing token or creates one.
func (s *AuthService) issueToken(userID uint64) (string, error) {
	token, err := s.tokenRepo.FindByUserID(userID)
	if err == nil {
		return token.Key, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to look up token: %w", err)
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return "", ErrFailedToIssueToken
	}

	token = &models.AuthToken{
		Key:    key,
		UserID: userID,
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return "", ErrFailedToIssueToken
	}

	return token.Key, nil
}
