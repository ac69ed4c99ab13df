package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/boardvote/board-voting-api/internal/media"
	"github.com/boardvote/board-voting-api/internal/models"
	"github.com/boardvote/board-voting-api/internal/repository"
)

var (
	ErrAgendaItemNotFound = errors.New("agenda item not found")
	ErrVoteNotFound       = errors.New("vote not found")
	ErrVotingClosed       = errors.New("voting has closed for this agenda item")
	ErrAlreadyVoted       = errors.New("you have already voted on this agenda item")
	ErrInvalidVoteChoice  = errors.New("invalid vote choice")
)

// VoteService casts and updates votes.
type VoteService struct {
	voteRepo   repository.VoteRepository
	agendaRepo repository.AgendaRepository
	store      *media.Store
	// now is swappable for deadline boundary tests.
	now func() time.Time
}

// NewVoteService creates a new VoteService.
func NewVoteService(voteRepo repository.VoteRepository, agendaRepo repository.AgendaRepository, store *media.Store) *VoteService {
	return &VoteService{
		voteRepo:   voteRepo,
		agendaRepo: agendaRepo,
		store:      store,
		now:        time.Now,
	}
}

// SetClock overrides the service clock. Intended for tests.
func (s *VoteService) SetClock(now func() time.Time) {
	s.now = now
}

// VoteInput holds a vote submission. The user is always taken from the
// authenticated request, never from the payload.
type VoteInput struct {
	AgendaItemID   uint64
	Choice         models.VoteChoice
	SignedVoteName string
	SignedVoteData string
}

// Cast records a user's vote. Voting is open through the deadline
// inclusive, and the unique index backstops the duplicate check under
// concurrent submissions.
func (s *VoteService) Cast(userID uint64, input VoteInput) (*models.Vote, error) {
	item, err := s.findItem(input.AgendaItemID)
	if err != nil {
		return nil, err
	}
	if s.now().After(item.SummaryDatetime) {
		return nil, ErrVotingClosed
	}
	if !input.Choice.Valid() {
		return nil, ErrInvalidVoteChoice
	}

	if _, err := s.voteRepo.FindByUserAndItem(userID, item.ID); err == nil {
		return nil, ErrAlreadyVoted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing vote: %w", err)
	}

	vote := &models.Vote{
		AgendaItemID: item.ID,
		UserID:       userID,
		Choice:       input.Choice,
		Timestamp:    s.now(),
	}

	if input.SignedVoteData != "" {
		rel, err := s.store.SaveBase64(media.DirSignedVotes, input.SignedVoteName, input.SignedVoteData)
		if err != nil {
			return nil, err
		}
		vote.SignedVote = &rel
	}

	if err := s.voteRepo.Create(vote); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyVoted
		}
		return nil, fmt.Errorf("failed to create vote: %w", err)
	}

	return vote, nil
}

// UpdateVoteInput is a partial vote update.
type UpdateVoteInput struct {
	AgendaItemID   uint64
	Choice         *models.VoteChoice
	SignedVoteName string
	SignedVoteData string
}

// Update changes a previously cast vote. Same deadline rule as Cast.
func (s *VoteService) Update(userID uint64, input UpdateVoteInput) (*models.Vote, error) {
	item, err := s.findItem(input.AgendaItemID)
	if err != nil {
		return nil, err
	}

	vote, err := s.voteRepo.FindByUserAndItem(userID, item.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to find vote: %w", err)
	}

	if s.now().After(item.SummaryDatetime) {
		return nil, ErrVotingClosed
	}

	if input.Choice != nil {
		if !input.Choice.Valid() {
			return nil, ErrInvalidVoteChoice
		}
		vote.Choice = *input.Choice
	}
	if input.SignedVoteData != "" {
		rel, err := s.store.SaveBase64(media.DirSignedVotes, input.SignedVoteName, input.SignedVoteData)
		if err != nil {
			return nil, err
		}
		vote.SignedVote = &rel
	}

	// User stays server-stamped regardless of payload.
	vote.UserID = userID

	if err := s.voteRepo.Update(vote); err != nil {
		return nil, fmt.Errorf("failed to update vote: %w", err)
	}

	return vote, nil
}

func (s *VoteService) findItem(id uint64) (*models.AgendaItem, error) {
	item, err := s.agendaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgendaItemNotFound
		}
		return nil, fmt.Errorf("failed to find agenda item: %w", err)
	}
	return item, nil
}
