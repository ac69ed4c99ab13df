package repository

import (
	"github.com/boardvote/board-voting-api/internal/models"
)

// UserRepository defines the interface for user and profile data access
type UserRepository interface {
	// CreateWithProfile creates a user and their profile within a single
	// transaction.
	CreateWithProfile(user *models.User, profile *models.UserProfile) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindProfileByUserID finds the profile belonging to a user
	FindProfileByUserID(userID uint64) (*models.UserProfile, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// UpdateProfile persists changes to a profile
	UpdateProfile(profile *models.UserProfile) error
}

// TokenRepository defines the interface for auth token data access
type TokenRepository interface {
	// FindByKey finds a token by its key
	FindByKey(key string) (*models.AuthToken, error)

	// FindByUserID finds the token owned by a user
	FindByUserID(userID uint64) (*models.AuthToken, error)

	// Create stores a new token
	Create(token *models.AuthToken) error
}

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(meeting *models.Meeting) error

	// FindByID finds a meeting by ID
	FindByID(id uint64) (*models.Meeting, error)

	// ListByUserID lists meetings the user is linked to via user_meetings,
	// in join-row insertion order.
	ListByUserID(userID uint64) ([]models.Meeting, error)

	// AddUser links a user to a meeting. Returns gorm.ErrDuplicatedKey
	// when the link already exists.
	AddUser(userID, meetingID uint64) error
}

// AgendaRepository defines the interface for agenda item data access
type AgendaRepository interface {
	// Create creates a new agenda item
	Create(item *models.AgendaItem) error

	// FindByID finds an agenda item by ID
	FindByID(id uint64) (*models.AgendaItem, error)

	// ListByUserID lists agenda items of every meeting the user is
	// linked to.
	ListByUserID(userID uint64) ([]models.AgendaItem, error)
}

// VoteRepository defines the interface for vote data access
type VoteRepository interface {
	// Create stores a new vote. Returns gorm.ErrDuplicatedKey when the
	// (user, agenda item) pair already voted.
	Create(vote *models.Vote) error

	// FindByUserAndItem finds the vote a user cast on an agenda item
	FindByUserAndItem(userID, agendaItemID uint64) (*models.Vote, error)

	// Update persists changes to a vote
	Update(vote *models.Vote) error

	// ListByAgendaItem lists all votes on an agenda item in vote-table
	// order, with users preloaded.
	ListByAgendaItem(agendaItemID uint64) ([]models.Vote, error)
}
