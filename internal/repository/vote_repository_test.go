package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/boardvote/board-voting-api/internal/models"
)

// Casting twice for the same (user, agenda item) pair must fail at the
// storage layer even when the service-level pre-check is bypassed.
func TestGormVoteRepository_CreateDuplicatePair(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewVoteRepository(db)

	user := models.User{Username: "director", Email: "director@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	other := models.User{Username: "deputy", Email: "deputy@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)

	meeting := models.Meeting{
		RegistrationLink: "https://rooms.example/join/abc",
		NameRoom:         "Совет директоров",
		Date:             time.Now().Add(24 * time.Hour),
		AdminID:          user.ID,
	}
	require.NoError(t, db.Create(&meeting).Error)

	item := models.AgendaItem{
		MeetingID:       meeting.ID,
		Title:           "Одобрение бюджета",
		MeetingType:     models.MeetingTypeVote,
		SummaryDatetime: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, repo.Create(&models.Vote{
		AgendaItemID: item.ID,
		UserID:       user.ID,
		Choice:       models.VoteYes,
	}))

	err := repo.Create(&models.Vote{
		AgendaItemID: item.ID,
		UserID:       user.ID,
		Choice:       models.VoteNo,
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// A different user voting on the same item is unaffected.
	require.NoError(t, repo.Create(&models.Vote{
		AgendaItemID: item.ID,
		UserID:       other.ID,
		Choice:       models.VoteNo,
	}))
}
