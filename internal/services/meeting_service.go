package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/boardvote/board-voting-api/internal/models"
	"github.com/boardvote/board-voting-api/internal/repository"
	"github.com/boardvote/board-voting-api/internal/rooms"
)

var (
	ErrRoomProvisioning = errors.New("failed to provision meeting room")
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadyInvited   = errors.New("user is already linked to this meeting")
)

// MeetingService creates and lists meetings and manages participant links.
type MeetingService struct {
	meetingRepo repository.MeetingRepository
	userRepo    repository.UserRepository
	provisioner rooms.RoomProvisioner
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(meetingRepo repository.MeetingRepository, userRepo repository.UserRepository, provisioner rooms.RoomProvisioner) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		userRepo:    userRepo,
		provisioner: provisioner,
	}
}

// CreateInput holds the fields for a new meeting. PasswordRoom is only
// forwarded to the room service, never persisted.
type CreateInput struct {
	NameRoom     string
	PasswordRoom string
	Date         time.Time
}

// Create provisions a room and persists the meeting. When provisioning
// fails nothing is persisted.
func (s *MeetingService) Create(ctx context.Context, adminID uint64, input CreateInput) (*models.Meeting, error) {
	link, err := s.provisioner.Provision(ctx, input.NameRoom, input.PasswordRoom)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoomProvisioning, err)
	}

	meeting := &models.Meeting{
		RegistrationLink: link,
		NameRoom:         input.NameRoom,
		Date:             input.Date,
		AdminID:          adminID,
	}
	if err := s.meetingRepo.Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	return meeting, nil
}

// List returns the meetings the user is linked to. A user with no links
// gets an empty list.
func (s *MeetingService) List(userID uint64) ([]models.Meeting, error) {
	return s.meetingRepo.ListByUserID(userID)
}

// Invite links a user to a meeting, granting them visibility of the
// meeting and its agenda.
func (s *MeetingService) Invite(userID, meetingID uint64) error {
	if _, err := s.meetingRepo.FindByID(meetingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMeetingNotFound
		}
		return fmt.Errorf("failed to find meeting: %w", err)
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.meetingRepo.AddUser(userID, meetingID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyInvited
		}
		return fmt.Errorf("failed to link user to meeting: %w", err)
	}
	return nil
}
