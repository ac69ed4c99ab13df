package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/boardvote/board-voting-api/internal/models"
)

// GormMeetingRepository is a GORM implementation of MeetingRepository
type GormMeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &GormMeetingRepository{db: db}
}

// Create creates a new meeting
func (r *GormMeetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

// FindByID finds a meeting by ID
func (r *GormMeetingRepository) FindByID(id uint64) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.db.First(&meeting, id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListByUserID lists meetings the user is linked to via user_meetings.
func (r *GormMeetingRepository) ListByUserID(userID uint64) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.
		Joins("JOIN user_meetings ON user_meetings.meeting_id = meetings.id").
		Where("user_meetings.user_id = ?", userID).
		Order("user_meetings.created_at").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// AddUser links a user to a meeting.
func (r *GormMeetingRepository) AddUser(userID, meetingID uint64) error {
	link := models.UserMeeting{
		UserID:    userID,
		MeetingID: meetingID,
		CreatedAt: time.Now(),
	}
	return r.db.Create(&link).Error
}
