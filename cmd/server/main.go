package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/boardvote/board-voting-api/internal/config"
	"github.com/boardvote/board-voting-api/internal/database"
	"github.com/boardvote/board-voting-api/internal/handlers"
	"github.com/boardvote/board-voting-api/internal/media"
	"github.com/boardvote/board-voting-api/internal/protocol"
	"github.com/boardvote/board-voting-api/internal/repository"
	"github.com/boardvote/board-voting-api/internal/rooms"
	"github.com/boardvote/board-voting-api/internal/services"
	"github.com/boardvote/board-voting-api/pkg/logger"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.GinMode != "release",
	})

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	db := database.GetDB()

	store, err := media.NewStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise media store")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	agendaRepo := repository.NewAgendaRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	// Services
	provisioner := rooms.NewHTTPProvisioner(cfg.RoomServiceURL)
	renderer := protocol.NewRenderer(cfg.ProtocolFont, cfg.ProtocolFontBold)

	authService := services.NewAuthService(userRepo, tokenRepo)
	profileService := services.NewProfileService(userRepo, store)
	meetingService := services.NewMeetingService(meetingRepo, userRepo, provisioner)
	agendaService := services.NewAgendaService(agendaRepo, store)
	voteService := services.NewVoteService(voteRepo, agendaRepo, store)
	protocolService := services.NewProtocolService(agendaRepo, voteRepo, renderer)

	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Board Voting API is running",
		})
	})

	h := &handlers.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Profile:  handlers.NewProfileHandler(profileService),
		Meeting:  handlers.NewMeetingHandler(meetingService),
		Agenda:   handlers.NewAgendaHandler(agendaService),
		Vote:     handlers.NewVoteHandler(voteService),
		Protocol: handlers.NewProtocolHandler(protocolService, userRepo),
	}
	h.RegisterRoutes(r, tokenRepo, userRepo)

	// Media files are served by the app in debug mode only; production
	// puts a web server in front.
	if cfg.GinMode != "release" {
		r.Static("/media", cfg.MediaDir)
	}

	log.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
