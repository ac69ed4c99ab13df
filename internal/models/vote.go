package models

import "time"

type VoteChoice string

const (
	VoteYes     VoteChoice = "yes"
	VoteNo      VoteChoice = "no"
	VoteAbstain VoteChoice = "abstain"
)

// Valid reports whether c is one of the known vote choices.
func (c VoteChoice) Valid() bool {
	return c == VoteYes || c == VoteNo || c == VoteAbstain
}

// Vote records a single user's choice on an agenda item. The composite
// unique index enforces at most one vote per (user, agenda item) at the
// storage layer, closing the check-then-act race on concurrent casts.
type Vote struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	AgendaItemID uint64     `gorm:"not null;uniqueIndex:idx_votes_user_agenda" json:"agenda_item_id"`
	UserID       uint64     `gorm:"not null;uniqueIndex:idx_votes_user_agenda" json:"user_id"`
	Choice       VoteChoice `gorm:"type:varchar(10);not null" json:"choice"`
	Timestamp    time.Time  `gorm:"autoCreateTime" json:"timestamp"`
	SignedVote   *string    `gorm:"type:varchar(255)" json:"signed_vote"`

	// Relations
	AgendaItem AgendaItem `gorm:"foreignKey:AgendaItemID" json:"-"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
}
