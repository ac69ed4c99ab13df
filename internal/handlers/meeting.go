package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boardvote/board-voting-api/internal/dto"
	apierrors "github.com/boardvote/board-voting-api/internal/errors"
	"github.com/boardvote/board-voting-api/internal/middleware"
	"github.com/boardvote/board-voting-api/internal/services"
	"github.com/boardvote/board-voting-api/pkg/logger"
)

// MeetingHandler serves meeting creation, listing and invitations.
type MeetingHandler struct {
	meetingService *services.MeetingService
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(meetingService *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

// Create provisions a room and persists the meeting. Admin only; a failed
// room call leaves no meeting behind.
func (h *MeetingHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateMeetingRequest struct {
		NameRoom     string    `json:"name_room" binding:"required"`
		PasswordRoom string    `json:"password_room" binding:"required"`
		Date         time.Time `json:"date" binding:"required"`
	}

	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	meeting, err := h.meetingService.Create(c.Request.Context(), userID, services.CreateInput{
		NameRoom:     req.NameRoom,
		PasswordRoom: req.PasswordRoom,
		Date:         req.Date,
	})
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Str("name_room", req.NameRoom).Msg("meeting creation failed")
		if errors.Is(err, services.ErrRoomProvisioning) {
			// No upstream detail is surfaced to the client.
			apierrors.InternalError(c, "Server error")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":           "Meeting created successfully",
		"registration_link": meeting.RegistrationLink,
	})
}

// List returns the meetings the caller is linked to.
func (h *MeetingHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	meetings, err := h.meetingService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch meetings")
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingDTOs(meetings))
}

// Invite links a user to a meeting. Admin only.
func (h *MeetingHandler) Invite(c *gin.Context) {
	type InviteRequest struct {
		UserID    uint64 `json:"user_id" binding:"required"`
		MeetingID uint64 `json:"meeting_id" binding:"required"`
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.meetingService.Invite(req.UserID, req.MeetingID)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "User invited successfully"})
	case errors.Is(err, services.ErrMeetingNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyInvited):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
