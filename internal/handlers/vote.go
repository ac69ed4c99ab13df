package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boardvote/board-voting-api/internal/dto"
	apierrors "github.com/boardvote/board-voting-api/internal/errors"
	"github.com/boardvote/board-voting-api/internal/middleware"
	"github.com/boardvote/board-voting-api/internal/models"
	"github.com/boardvote/board-voting-api/internal/services"
)

// VoteHandler serves vote casting and updating.
type VoteHandler struct {
	voteService *services.VoteService
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(voteService *services.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// Cast records the caller's vote on an agenda item. Any user field in the
// payload is ignored; the vote belongs to the authenticated caller.
func (h *VoteHandler) Cast(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CastRequest struct {
		AgendaItem     uint64 `json:"agenda_item" binding:"required"`
		Vote           string `json:"vote" binding:"required"`
		SignedVote     string `json:"signed_vote"`
		SignedVoteName string `json:"signed_vote_name"`
	}

	var req CastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	vote, err := h.voteService.Cast(userID, services.VoteInput{
		AgendaItemID:   req.AgendaItem,
		Choice:         models.VoteChoice(req.Vote),
		SignedVoteName: req.SignedVoteName,
		SignedVoteData: req.SignedVote,
	})
	if err != nil {
		respondVoteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoteDTO(vote))
}

// Update changes the caller's previously cast vote.
func (h *VoteHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateRequest struct {
		AgendaItem     uint64  `json:"agenda_item" binding:"required"`
		Vote           *string `json:"vote"`
		SignedVote     string  `json:"signed_vote"`
		SignedVoteName string  `json:"signed_vote_name"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateVoteInput{
		AgendaItemID:   req.AgendaItem,
		SignedVoteName: req.SignedVoteName,
		SignedVoteData: req.SignedVote,
	}
	if req.Vote != nil {
		choice := models.VoteChoice(*req.Vote)
		input.Choice = &choice
	}

	vote, err := h.voteService.Update(userID, input)
	if err != nil {
		respondVoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVoteDTO(vote))
}

func respondVoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAgendaItemNotFound),
		errors.Is(err, services.ErrVoteNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrVotingClosed):
		apierrors.BusinessRule(c, apierrors.ErrCodeVotingClosed, err.Error())
	case errors.Is(err, services.ErrAlreadyVoted):
		apierrors.BusinessRule(c, apierrors.ErrCodeAlreadyVoted, err.Error())
	case errors.Is(err, services.ErrInvalidVoteChoice):
		apierrors.BadRequestWithDetails(c, "Validation failed", gin.H{"vote": err.Error()})
	default:
		apierrors.InternalError(c, "")
	}
}
