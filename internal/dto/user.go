package dto

import "github.com/boardvote/board-voting-api/internal/services"

// ProfileDTO mirrors the profile responses: the photo is an absolute URL
// or null, and is_admin is informational only.
type ProfileDTO struct {
	ID       uint64  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	IsAdmin  bool    `json:"is_admin"`
	Photo    *string `json:"photo"`
}

// ToProfileDTO converts a service profile to its API representation.
func ToProfileDTO(p *services.Profile) ProfileDTO {
	dto := ProfileDTO{
		ID:       p.User.ID,
		Username: p.User.Username,
		Email:    p.User.Email,
		IsAdmin:  p.Profile.IsAdmin,
	}
	if p.PhotoURL != "" {
		url := p.PhotoURL
		dto.Photo = &url
	}
	return dto
}
