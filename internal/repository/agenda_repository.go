package repository

import (
	"gorm.io/gorm"

	"github.com/boardvote/board-voting-api/internal/models"
)

// GormAgendaRepository is a GORM implementation of AgendaRepository
type GormAgendaRepository struct {
	db *gorm.DB
}

// NewAgendaRepository creates a new AgendaRepository
func NewAgendaRepository(db *gorm.DB) AgendaRepository {
	return &GormAgendaRepository{db: db}
}

// Create creates a new agenda item
func (r *GormAgendaRepository) Create(item *models.AgendaItem) error {
	return r.db.Create(item).Error
}

// FindByID finds an agenda item by ID
func (r *GormAgendaRepository) FindByID(id uint64) (*models.AgendaItem, error) {
	var item models.AgendaItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByUserID lists agenda items of every meeting the user is linked to.
func (r *GormAgendaRepository) ListByUserID(userID uint64) ([]models.AgendaItem, error) {
	var items []models.AgendaItem
	err := r.db.
		Joins("JOIN user_meetings ON user_meetings.meeting_id = agenda_items.meeting_id").
		Where("user_meetings.user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
