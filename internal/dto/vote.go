package dto

import (
	"time"

	"github.com/boardvote/board-voting-api/internal/models"
)

// VoteDTO represents a vote in API responses. "agenda_item" and "user"
// are ids; the user is always the authenticated caller.
type VoteDTO struct {
	ID         uint64            `json:"id"`
	AgendaItem uint64            `json:"agenda_item"`
	User       uint64            `json:"user"`
	Vote       models.VoteChoice `json:"vote"`
	Timestamp  time.Time         `json:"timestamp"`
	SignedVote *string           `json:"signed_vote"`
}

// ToVoteDTO converts a Vote model to VoteDTO
func ToVoteDTO(v *models.Vote) VoteDTO {
	return VoteDTO{
		ID:         v.ID,
		AgendaItem: v.AgendaItemID,
		User:       v.UserID,
		Vote:       v.Choice,
		Timestamp:  v.Timestamp,
		SignedVote: v.SignedVote,
	}
}
