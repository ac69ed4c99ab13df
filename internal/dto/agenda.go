package dto

import (
	"time"

	"github.com/boardvote/board-voting-api/internal/models"
)

// AgendaItemDTO represents an agenda item in API responses. "meeting" is
// the owning meeting's id.
type AgendaItemDTO struct {
	ID              uint64             `json:"id"`
	Meeting         uint64             `json:"meeting"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Materials       *string            `json:"materials"`
	MeetingType     models.MeetingType `json:"meeting_type"`
	SummaryDatetime time.Time          `json:"summary_datetime"`
}

// ToAgendaItemDTO converts an AgendaItem model to AgendaItemDTO
func ToAgendaItemDTO(item models.AgendaItem) AgendaItemDTO {
	return AgendaItemDTO{
		ID:              item.ID,
		Meeting:         item.MeetingID,
		Title:           item.Title,
		Description:     item.Description,
		Materials:       item.Materials,
		MeetingType:     item.MeetingType,
		SummaryDatetime: item.SummaryDatetime,
	}
}

// ToAgendaItemDTOs converts a slice of agenda items.
func ToAgendaItemDTOs(items []models.AgendaItem) []AgendaItemDTO {
	dtos := make([]AgendaItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ToAgendaItemDTO(item)
	}
	return dtos
}
