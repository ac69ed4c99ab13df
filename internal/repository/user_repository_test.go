package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/boardvote/board-voting-api/internal/models"
)

func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func TestGormUserRepository_CreateWithProfile(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewUserRepository(db)

	user := &models.User{Username: "director", Email: "director@example.com", PasswordHash: "x"}
	profile := &models.UserProfile{IsAdmin: false}

	require.NoError(t, repo.CreateWithProfile(user, profile))
	require.Equal(t, user.ID, profile.UserID)

	// The relation loads back through the association.
	var loaded models.User
	require.NoError(t, db.Preload("Profile").First(&loaded, user.ID).Error)
	require.Equal(t, profile.ID, loaded.Profile.ID)
	require.False(t, loaded.Profile.IsAdmin)
}

func TestGormUserRepository_CreateWithProfileDuplicateRollsBack(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewUserRepository(db)

	first := &models.User{Username: "director", Email: "director@example.com", PasswordHash: "x"}
	require.NoError(t, repo.CreateWithProfile(first, &models.UserProfile{}))

	dup := &models.User{Username: "director", Email: "other@example.com", PasswordHash: "x"}
	err := repo.CreateWithProfile(dup, &models.UserProfile{})
	require.ErrorIs(t, err, ErrCreateUser)

	var profiles int64
	db.Model(&models.UserProfile{}).Count(&profiles)
	require.EqualValues(t, 1, profiles)
}
