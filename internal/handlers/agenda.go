package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boardvote/board-voting-api/internal/dto"
	apierrors "github.com/boardvote/board-voting-api/internal/errors"
	"github.com/boardvote/board-voting-api/internal/middleware"
	"github.com/boardvote/board-voting-api/internal/models"
	"github.com/boardvote/board-voting-api/internal/services"
)

// AgendaHandler serves agenda item creation and listing.
type AgendaHandler struct {
	agendaService *services.AgendaService
}

// NewAgendaHandler creates a new AgendaHandler.
func NewAgendaHandler(agendaService *services.AgendaService) *AgendaHandler {
	return &AgendaHandler{
		agendaService: agendaService,
	}
}

// Create adds an agenda item to a meeting. Admin only.
func (h *AgendaHandler) Create(c *gin.Context) {
	type CreateAgendaRequest struct {
		Meeting         uint64    `json:"meeting" binding:"required"`
		Title           string    `json:"title" binding:"required"`
		Description     string    `json:"description"`
		MeetingType     string    `json:"meeting_type" binding:"required"`
		SummaryDatetime time.Time `json:"summary_datetime" binding:"required"`
		Materials       string    `json:"materials"`
		MaterialsName   string    `json:"materials_name"`
	}

	var req CreateAgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.agendaService.Create(services.AgendaInput{
		MeetingID:       req.Meeting,
		Title:           req.Title,
		Description:     req.Description,
		MeetingType:     models.MeetingType(req.MeetingType),
		SummaryDatetime: req.SummaryDatetime,
		MaterialsName:   req.MaterialsName,
		MaterialsData:   req.Materials,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidMeetingType) {
			apierrors.BadRequestWithDetails(c, "Validation failed", gin.H{"meeting_type": err.Error()})
			return
		}
		apierrors.InternalError(c, "Failed to create agenda item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "AgendaItem created successfully"})
}

// List returns agenda items of every meeting the caller is linked to.
func (h *AgendaHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	items, err := h.agendaService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch agenda items")
		return
	}

	c.JSON(http.StatusOK, dto.ToAgendaItemDTOs(items))
}
