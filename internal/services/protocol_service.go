package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/boardvote/board-voting-api/internal/models"
	"github.com/boardvote/board-voting-api/internal/protocol"
	"github.com/boardvote/board-voting-api/internal/repository"
)

// Decision sentences of the protocol form.
const (
	DecisionAccepted    = "Решение принято."
	DecisionNotAccepted = "Решение не принято."
)

// Tally counts votes per choice.
type Tally struct {
	Yes     int
	No      int
	Abstain int
}

// Decision is accepted only on a strict yes majority over no; ties and
// abstain majorities are not accepted.
func (t Tally) Decision() string {
	if t.Yes > t.No {
		return DecisionAccepted
	}
	return DecisionNotAccepted
}

// CountVotes tallies a vote list.
func CountVotes(votes []models.Vote) Tally {
	var t Tally
	for _, v := range votes {
		switch v.Choice {
		case models.VoteYes:
			t.Yes++
		case models.VoteNo:
			t.No++
		case models.VoteAbstain:
			t.Abstain++
		}
	}
	return t
}

// ProtocolService builds the PDF protocol for an agenda item.
type ProtocolService struct {
	agendaRepo repository.AgendaRepository
	voteRepo   repository.VoteRepository
	renderer   *protocol.Renderer
}

// NewProtocolService creates a new ProtocolService.
func NewProtocolService(agendaRepo repository.AgendaRepository, voteRepo repository.VoteRepository, renderer *protocol.Renderer) *ProtocolService {
	return &ProtocolService{
		agendaRepo: agendaRepo,
		voteRepo:   voteRepo,
		renderer:   renderer,
	}
}

// Generate renders the protocol for an agenda item. counter is the user
// who requested the document and appears as the vote counter.
func (s *ProtocolService) Generate(agendaItemID uint64, counter *models.User) ([]byte, error) {
	item, err := s.agendaRepo.FindByID(agendaItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgendaItemNotFound
		}
		return nil, fmt.Errorf("failed to find agenda item: %w", err)
	}

	votes, err := s.voteRepo.ListByAgendaItem(item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}

	participants := make([]string, len(votes))
	for i, v := range votes {
		participants[i] = v.User.Username
	}

	tally := CountVotes(votes)

	doc := protocol.Document{
		Number:           item.ID,
		Deadline:         item.SummaryDatetime,
		MeetingTypeLabel: item.MeetingType.Label(),
		Participants:     participants,
		CounterName:      counter.Username,
		Title:            item.Title,
		Description:      item.Description,
		YesCount:         tally.Yes,
		NoCount:          tally.No,
		AbstainCount:     tally.Abstain,
		Decision:         tally.Decision(),
	}

	return s.renderer.Render(doc)
}
