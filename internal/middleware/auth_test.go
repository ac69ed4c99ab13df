package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/boardvote/board-voting-api/internal/models"
	"github.com/boardvote/board-voting-api/internal/repository"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.AuthToken{}))

	tokens := repository.NewTokenRepository(db)

	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return r, db
}

func seedToken(t *testing.T, db *gorm.DB) *models.AuthToken {
	t.Helper()
	user := models.User{Username: "director", Email: "director@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	token := models.AuthToken{Key: "0123456789abcdef0123456789abcdef01234567", UserID: user.ID}
	require.NoError(t, db.Create(&token).Error)
	return &token
}

func doProtected(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r, db := setupAuthRouter(t)
	token := seedToken(t, db)

	w := doProtected(r, "Token "+token.Key)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_SchemeIsCaseInsensitive(t *testing.T) {
	r, db := setupAuthRouter(t)
	token := seedToken(t, db)

	w := doProtected(r, "tOkEn "+token.Key)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := doProtected(r, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Authorization header is missing")
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	r, db := setupAuthRouter(t)
	token := seedToken(t, db)

	for _, header := range []string{
		"Token",
		"Token " + token.Key + " extra",
		token.Key,
	} {
		w := doProtected(r, header)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		require.Contains(t, w.Body.String(), "Invalid authorization header format")
	}
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	r, db := setupAuthRouter(t)
	token := seedToken(t, db)

	w := doProtected(r, "Bearer "+token.Key)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid authorization type")
}

func TestRequireAuth_UnknownToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := doProtected(r, "Token ffffffffffffffffffffffffffffffffffffffff")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid token")
}
