package models

import "time"

// UserMeeting links a user to a meeting; the pair grants meeting visibility.
type UserMeeting struct {
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	MeetingID uint64    `gorm:"primarykey" json:"meeting_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Meeting Meeting `gorm:"foreignKey:MeetingID" json:"-"`
}
