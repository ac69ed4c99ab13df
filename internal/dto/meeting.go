package dto

import (
	"time"

	"github.com/boardvote/board-voting-api/internal/models"
)

// MeetingDTO represents a meeting in list responses. "admin" is the
// creator's user id.
type MeetingDTO struct {
	ID               uint64    `json:"id"`
	RegistrationLink string    `json:"registration_link"`
	Date             time.Time `json:"date"`
	Admin            uint64    `json:"admin"`
}

// ToMeetingDTO converts a Meeting model to MeetingDTO
func ToMeetingDTO(m models.Meeting) MeetingDTO {
	return MeetingDTO{
		ID:               m.ID,
		RegistrationLink: m.RegistrationLink,
		Date:             m.Date,
		Admin:            m.AdminID,
	}
}

// ToMeetingDTOs converts a slice of meetings.
func ToMeetingDTOs(meetings []models.Meeting) []MeetingDTO {
	dtos := make([]MeetingDTO, len(meetings))
	for i, m := range meetings {
		dtos[i] = ToMeetingDTO(m)
	}
	return dtos
}
