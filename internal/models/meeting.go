package models

import "time"

type Meeting struct {
	ID               uint64    `gorm:"primarykey" json:"id"`
	RegistrationLink string    `gorm:"type:varchar(255);not null" json:"registration_link"`
	NameRoom         string    `gorm:"type:varchar(255);not null" json:"name_room"`
	Date             time.Time `gorm:"not null" json:"date"`
	AdminID          uint64    `gorm:"not null" json:"admin_id"`
	CreatedAt        time.Time `json:"created_at"`

	// Relations
	Admin        User          `gorm:"foreignKey:AdminID" json:"-"`
	AgendaItems  []AgendaItem  `gorm:"foreignKey:MeetingID" json:"-"`
	Participants []UserMeeting `gorm:"foreignKey:MeetingID" json:"-"`
}
