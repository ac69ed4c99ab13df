package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/boardvote/board-voting-api/internal/middleware"
	"github.com/boardvote/board-voting-api/internal/repository"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Meeting  *MeetingHandler
	Agenda   *AgendaHandler
	Vote     *VoteHandler
	Protocol *ProtocolHandler
}

// RegisterRoutes wires all routes onto the engine. Admin gates run after
// token auth and before any handler-level validation.
func (h *Handlers) RegisterRoutes(r *gin.Engine, tokens repository.TokenRepository, users repository.UserRepository) {
	auth := middleware.RequireAuth(tokens)
	admin := middleware.RequireAdmin(users)

	// Public
	r.POST("/register/", h.Auth.Register)
	r.POST("/login/", h.Auth.Login)

	// Token-protected
	r.GET("/profile/", auth, h.Profile.Get)
	r.PUT("/profile/update", auth, h.Profile.Update)
	r.GET("/meeting_list/", auth, h.Meeting.List)
	r.GET("/agenda_get/", auth, h.Agenda.List)
	r.POST("/vote_create/", auth, h.Vote.Cast)
	r.PUT("/vote_update/", auth, h.Vote.Update)
	r.GET("/check_token/", auth, h.Auth.CheckToken)

	// Admin-only
	r.POST("/meeting_create/", auth, admin, h.Meeting.Create)
	r.POST("/meeting_invite/", auth, admin, h.Meeting.Invite)
	r.POST("/agenda_create/", auth, admin, h.Agenda.Create)
	r.GET("/generate-protocol/:agenda_item_id/", auth, admin, h.Protocol.Generate)
}
