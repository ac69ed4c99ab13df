package handlers

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/boardvote/board-voting-api/internal/models"
)

func TestProtocolHandler_ForbiddenForNonAdmin(t *testing.T) {
	env := setupTestEnv(t)
	token := env.createUser(t, "pleb", "pleb@example.com")

	w := env.do(t, http.MethodGet, "/generate-protocol/1/", token, nil)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestProtocolHandler_UnknownAgendaItem(t *testing.T) {
	env := setupTestEnv(t)
	token := env.createAdmin(t, "chair", "chair@example.com")

	w := env.do(t, http.MethodGet, "/generate-protocol/9999/", token, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProtocolHandler_RequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/generate-protocol/1/", "", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// The download path needs real TTF fonts; run it only when they are
// available in testdata.
func TestProtocolHandler_Download(t *testing.T) {
	if _, err := os.Stat("testdata/DejaVuSans.ttf"); err != nil {
		t.Skip("DejaVuSans fonts not available in testdata")
	}

	env := setupTestEnv(t)
	token := env.createAdmin(t, "chair", "chair@example.com")
	env.createUser(t, "director", "director@example.com")

	meeting := env.createMeeting(t, env.userID(t, "chair"))
	item := env.createAgendaItem(t, meeting.ID, time.Now().Add(time.Hour))

	require.NoError(t, env.voteRepo.Create(&models.Vote{
		AgendaItemID: item.ID,
		UserID:       env.userID(t, "director"),
		Choice:       models.VoteYes,
		Timestamp:    time.Now(),
	}))

	w := env.do(t, http.MethodGet, fmt.Sprintf("/generate-protocol/%d/", item.ID), token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.Equal(t, fmt.Sprintf(`attachment; filename="protocol_%d.pdf"`, item.ID),
		w.Header().Get("Content-Disposition"))
	require.True(t, len(w.Body.Bytes()) > 4)
	require.Equal(t, "%PDF", string(w.Body.Bytes()[:4]))
}
