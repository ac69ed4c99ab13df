package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/boardvote/board-voting-api/internal/errors"
	"github.com/boardvote/board-voting-api/internal/middleware"
	"github.com/boardvote/board-voting-api/internal/repository"
	"github.com/boardvote/board-voting-api/internal/services"
	"github.com/boardvote/board-voting-api/pkg/logger"
)

// ProtocolHandler serves PDF protocol downloads.
type ProtocolHandler struct {
	protocolService *services.ProtocolService
	userRepo        repository.UserRepository
}

// NewProtocolHandler creates a new ProtocolHandler.
func NewProtocolHandler(protocolService *services.ProtocolService, userRepo repository.UserRepository) *ProtocolHandler {
	return &ProtocolHandler{
		protocolService: protocolService,
		userRepo:        userRepo,
	}
}

// Generate renders the protocol for an agenda item and returns it as a
// downloadable PDF. Admin only.
func (h *ProtocolHandler) Generate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("agenda_item_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid agenda item ID")
		return
	}

	// The requester appears on the document as the vote counter.
	counter, err := h.userRepo.FindByID(userID)
	if err != nil {
		apierrors.Unauthorized(c, "")
		return
	}

	pdf, err := h.protocolService.Generate(itemID, counter)
	if err != nil {
		if errors.Is(err, services.ErrAgendaItemNotFound) {
			apierrors.NotFound(c, "Agenda item not found")
			return
		}
		log := logger.Get()
		log.Error().Err(err).Uint64("agenda_item_id", itemID).Msg("protocol generation failed")
		apierrors.InternalError(c, "Failed to generate protocol")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="protocol_%d.pdf"`, itemID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
