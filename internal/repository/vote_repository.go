package repository

import (
	"gorm.io/gorm"

	"github.com/boardvote/board-voting-api/internal/models"
)

// GormVoteRepository is a GORM implementation of VoteRepository
type GormVoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &GormVoteRepository{db: db}
}

// Create stores a new vote. The unique index on (user_id, agenda_item_id)
// makes concurrent duplicate casts fail here with gorm.ErrDuplicatedKey.
func (r *GormVoteRepository) Create(vote *models.Vote) error {
	return r.db.Create(vote).Error
}

// FindByUserAndItem finds the vote a user cast on an agenda item
func (r *GormVoteRepository) FindByUserAndItem(userID, agendaItemID uint64) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.
		Where("user_id = ? AND agenda_item_id = ?", userID, agendaItemID).
		First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// Update persists changes to a vote
func (r *GormVoteRepository) Update(vote *models.Vote) error {
	return r.db.Save(vote).Error
}

// ListByAgendaItem lists all votes on an agenda item in vote-table order.
func (r *GormVoteRepository) ListByAgendaItem(agendaItemID uint64) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.
		Preload("User").
		Where("agenda_item_id = ?", agendaItemID).
		Order("id").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}
