package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Profile      UserProfile   `gorm:"foreignKey:UserID" json:"-"`
	Meetings     []Meeting     `gorm:"foreignKey:AdminID" json:"-"`
	MeetingLinks []UserMeeting `gorm:"foreignKey:UserID" json:"-"`
	Votes        []Vote        `gorm:"foreignKey:UserID" json:"-"`
}
