package models

import "time"

type MeetingType string

const (
	MeetingTypeVote   MeetingType = "vote"
	MeetingTypeOnline MeetingType = "online"
)

// Label returns the human-readable form used in protocol documents.
func (t MeetingType) Label() string {
	switch t {
	case MeetingTypeVote:
		return "Заочное голосование"
	case MeetingTypeOnline:
		return "Дистанционное участие"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the known meeting types.
func (t MeetingType) Valid() bool {
	return t == MeetingTypeVote || t == MeetingTypeOnline
}

type AgendaItem struct {
	ID          uint64      `gorm:"primarykey" json:"id"`
	MeetingID   uint64      `gorm:"not null" json:"meeting_id"`
	Title       string      `gorm:"type:varchar(255);not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Materials   *string     `gorm:"type:varchar(255)" json:"materials"`
	MeetingType MeetingType `gorm:"type:varchar(50);not null" json:"meeting_type"`
	// SummaryDatetime is the voting deadline.
	SummaryDatetime time.Time `gorm:"not null" json:"summary_datetime"`

	// Relations
	Meeting Meeting `gorm:"foreignKey:MeetingID" json:"-"`
	Votes   []Vote  `gorm:"foreignKey:AgendaItemID" json:"-"`
}
