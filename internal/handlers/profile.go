package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boardvote/board-voting-api/internal/dto"
	apierrors "github.com/boardvote/board-voting-api/internal/errors"
	"github.com/boardvote/board-voting-api/internal/middleware"
	"github.com/boardvote/board-voting-api/internal/services"
)

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Get returns the caller's profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	profile, err := h.profileService.Get(userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(profile))
}

// Update applies a partial update. is_admin in the payload is ignored;
// the flag cannot be changed through this path.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateRequest struct {
		Username  *string `json:"username" binding:"omitempty,min=3,max=150"`
		Email     *string `json:"email" binding:"omitempty,email"`
		IsAdmin   *bool   `json:"is_admin"` // ignored
		Photo     string  `json:"photo"`
		PhotoName string  `json:"photo_name"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.Update(userID, services.UpdateInput{
		Username:  req.Username,
		Email:     req.Email,
		PhotoName: req.PhotoName,
		PhotoData: req.Photo,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(profile))
}

func respondProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProfileMissing):
		// Users and profiles exist together; a missing profile is an
		// auth failure, not a 404.
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequestWithDetails(c, "Validation failed", gin.H{"detail": err.Error()})
	default:
		apierrors.InternalError(c, "")
	}
}
