package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/boardvote/board-voting-api/internal/database"
	"github.com/boardvote/board-voting-api/internal/media"
	"github.com/boardvote/board-voting-api/internal/models"
	"github.com/boardvote/board-voting-api/internal/protocol"
	"github.com/boardvote/board-voting-api/internal/repository"
	"github.com/boardvote/board-voting-api/internal/services"
)

// stubProvisioner satisfies rooms.RoomProvisioner in tests.
type stubProvisioner struct {
	uri string
	err error
}

func (s *stubProvisioner) Provision(ctx context.Context, name, password string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.uri, nil
}

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	userRepo    repository.UserRepository
	tokenRepo   repository.TokenRepository
	meetingRepo repository.MeetingRepository
	agendaRepo  repository.AgendaRepository
	voteRepo    repository.VoteRepository
	authService *services.AuthService
	voteService *services.VoteService
	provisioner *stubProvisioner
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.AuthToken{},
		&models.Meeting{},
		&models.UserMeeting{},
		&models.AgendaItem{},
		&models.Vote{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	store, err := media.NewStore(t.TempDir(), "http://testserver/media")
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	agendaRepo := repository.NewAgendaRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	provisioner := &stubProvisioner{uri: "https://rooms.example/join/abc"}
	renderer := protocol.NewRenderer("testdata/DejaVuSans.ttf", "testdata/DejaVuSans-Bold.ttf")

	authService := services.NewAuthService(userRepo, tokenRepo)
	profileService := services.NewProfileService(userRepo, store)
	meetingService := services.NewMeetingService(meetingRepo, userRepo, provisioner)
	agendaService := services.NewAgendaService(agendaRepo, store)
	voteService := services.NewVoteService(voteRepo, agendaRepo, store)
	protocolService := services.NewProtocolService(agendaRepo, voteRepo, renderer)

	r := gin.New()
	h := &Handlers{
		Auth:     NewAuthHandler(authService),
		Profile:  NewProfileHandler(profileService),
		Meeting:  NewMeetingHandler(meetingService),
		Agenda:   NewAgendaHandler(agendaService),
		Vote:     NewVoteHandler(voteService),
		Protocol: NewProtocolHandler(protocolService, userRepo),
	}
	h.RegisterRoutes(r, tokenRepo, userRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:          db,
		router:      r,
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		meetingRepo: meetingRepo,
		agendaRepo:  agendaRepo,
		voteRepo:    voteRepo,
		authService: authService,
		voteService: voteService,
		provisioner: provisioner,
	}
}

// createUser registers a user through the service and returns their token.
func (env *testEnv) createUser(t *testing.T, username, email string) string {
	t.Helper()
	token, err := env.authService.Register(services.RegisterInput{
		Username: username,
		Email:    email,
		Password: "supersecret",
	})
	require.NoError(t, err)
	return token
}

// createAdmin registers a user and flips their admin flag directly,
// mirroring how the flag is granted outside the public API.
func (env *testEnv) createAdmin(t *testing.T, username, email string) string {
	t.Helper()
	token := env.createUser(t, username, email)
	env.makeAdmin(t, username)
	return token
}

func (env *testEnv) makeAdmin(t *testing.T, username string) {
	t.Helper()
	user, err := env.userRepo.FindByUsername(username)
	require.NoError(t, err)
	profile, err := env.userRepo.FindProfileByUserID(user.ID)
	require.NoError(t, err)
	profile.IsAdmin = true
	require.NoError(t, env.userRepo.UpdateProfile(profile))
}

func (env *testEnv) userID(t *testing.T, username string) uint64 {
	t.Helper()
	user, err := env.userRepo.FindByUsername(username)
	require.NoError(t, err)
	return user.ID
}

// do performs a JSON request against the test router.
func (env *testEnv) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// createAgendaItem inserts an agenda item directly with the given deadline.
func (env *testEnv) createAgendaItem(t *testing.T, meetingID uint64, deadline time.Time) *models.AgendaItem {
	t.Helper()
	item := &models.AgendaItem{
		MeetingID:       meetingID,
		Title:           "Одобрение бюджета",
		Description:     "Утвердить бюджет на следующий год",
		MeetingType:     models.MeetingTypeVote,
		SummaryDatetime: deadline,
	}
	require.NoError(t, env.agendaRepo.Create(item))
	return item
}

// createMeeting inserts a meeting directly.
func (env *testEnv) createMeeting(t *testing.T, adminID uint64) *models.Meeting {
	t.Helper()
	meeting := &models.Meeting{
		RegistrationLink: "https://rooms.example/join/xyz",
		NameRoom:         "Совет директоров",
		Date:             time.Now().Add(24 * time.Hour),
		AdminID:          adminID,
	}
	require.NoError(t, env.meetingRepo.Create(meeting))
	return meeting
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
