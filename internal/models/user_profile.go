package models

// UserProfile is created alongside its User at registration. The admin flag
// is never settable through the public API.
type UserProfile struct {
	ID      uint64  `gorm:"primarykey" json:"id"`
	UserID  uint64  `gorm:"uniqueIndex;not null" json:"user_id"`
	IsAdmin bool    `gorm:"not null;default:false" json:"is_admin"`
	Photo   *string `gorm:"type:varchar(255)" json:"photo"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
