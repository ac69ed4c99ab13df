package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/boardvote/board-voting-api/internal/media"
	"github.com/boardvote/board-voting-api/internal/models"
	"github.com/boardvote/board-voting-api/internal/repository"
)

var ErrInvalidMeetingType = errors.New("invalid meeting type")

// AgendaService creates and lists agenda items.
type AgendaService struct {
	agendaRepo repository.AgendaRepository
	store      *media.Store
}

// NewAgendaService creates a new AgendaService.
func NewAgendaService(agendaRepo repository.AgendaRepository, store *media.Store) *AgendaService {
	return &AgendaService{
		agendaRepo: agendaRepo,
		store:      store,
	}
}

// AgendaInput holds the fields for a new agenda item. Materials are an
// optional attachment.
type AgendaInput struct {
	MeetingID       uint64
	Title           string
	Description     string
	MeetingType     models.MeetingType
	SummaryDatetime time.Time
	MaterialsName   string
	MaterialsData   string
}

// Create persists a new agenda item. The deadline is taken as-is; the
// meeting reference is validated by the storage layer's foreign key.
func (s *AgendaService) Create(input AgendaInput) (*models.AgendaItem, error) {
	if !input.MeetingType.Valid() {
		return nil, ErrInvalidMeetingType
	}

	item := &models.AgendaItem{
		MeetingID:       input.MeetingID,
		Title:           input.Title,
		Description:     input.Description,
		MeetingType:     input.MeetingType,
		SummaryDatetime: input.SummaryDatetime,
	}

	if input.MaterialsData != "" {
		rel, err := s.store.SaveBase64(media.DirMaterials, input.MaterialsName, input.MaterialsData)
		if err != nil {
			return nil, err
		}
		item.Materials = &rel
	}

	if err := s.agendaRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create agenda item: %w", err)
	}
	return item, nil
}

// List returns every agenda item of every meeting the user is linked to.
func (s *AgendaService) List(userID uint64) ([]models.AgendaItem, error) {
	return s.agendaRepo.ListByUserID(userID)
}
