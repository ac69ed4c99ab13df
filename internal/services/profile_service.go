package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/boardvote/board-voting-api/internal/media"
	"github.com/boardvote/board-voting-api/internal/models"
	"github.com/boardvote/board-voting-api/internal/repository"
)

var (
	// ErrProfileMissing means the user row exists without its profile.
	// The source treats this as an authentication failure, not a 404.
	ErrProfileMissing = errors.New("user profile does not exist")
)

// Profile bundles a user with their profile for API responses.
type Profile struct {
	User    *models.User
	Profile *models.UserProfile
	// PhotoURL is the absolute URL of the photo, empty when unset.
	PhotoURL string
}

// ProfileService reads and updates user profiles.
type ProfileService struct {
	userRepo repository.UserRepository
	store    *media.Store
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repository.UserRepository, store *media.Store) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		store:    store,
	}
}

// Get returns the profile of a user.
func (s *ProfileService) Get(userID uint64) (*Profile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	profile, err := s.userRepo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileMissing
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return s.toProfile(user, profile), nil
}

// UpdateInput is a partial profile update. The admin flag is deliberately
// absent: it is immutable through the public API.
type UpdateInput struct {
	Username  *string
	Email     *string
	PhotoName string
	PhotoData string
}

// Update applies a partial update to the user and their profile.
func (s *ProfileService) Update(userID uint64, input UpdateInput) (*Profile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	profile, err := s.userRepo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileMissing
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	if input.Username != nil {
		if other, err := s.userRepo.FindByUsername(*input.Username); err == nil && other.ID != userID {
			return nil, ErrUsernameTaken
		}
		user.Username = *input.Username
	}
	if input.Email != nil {
		if other, err := s.userRepo.FindByEmail(*input.Email); err == nil && other.ID != userID {
			return nil, ErrEmailTaken
		}
		user.Email = *input.Email
	}

	if input.PhotoData != "" {
		rel, err := s.store.SaveBase64(media.DirUserPhotos, input.PhotoName, input.PhotoData)
		if err != nil {
			return nil, err
		}
		profile.Photo = &rel
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a rename race after the pre-check passed; the unique
			// index is the backstop.
			if input.Username != nil {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if err := s.userRepo.UpdateProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.toProfile(user, profile), nil
}

func (s *ProfileService) toProfile(user *models.User, profile *models.UserProfile) *Profile {
	p := &Profile{User: user, Profile: profile}
	if profile.Photo != nil {
		p.PhotoURL = s.store.URL(*profile.Photo)
	}
	return p
}
