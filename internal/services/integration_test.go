//go:build integration
// +build integration

package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/config"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/dto"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB starts a throwaway PostgreSQL container and migrates the full
// schema into it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("gamehub_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Game{},
		&models.Review{},
		&models.Like{},
		&models.Report{},
		&models.FeaturedVideo{},
		&models.SystemLog{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "integration-test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func registerUser(t *testing.T, auth *services.AuthService, username, role string) *dto.AuthResponse {
	t.Helper()
	resp, err := auth.Register(&dto.RegisterRequest{
		Username: username,
		Password: "correct-horse-battery",
		Role:     role,
	})
	require.NoError(t, err)
	return resp
}

func createGame(t *testing.T, games *services.GameService, developerID uuid.UUID) *models.Game {
	t.Helper()
	game, err := games.Create(developerID, &dto.CreateGameRequest{
		Title:       "Orbital Drift",
		Description: "A physics puzzler about slingshot orbits.",
		Category:    "puzzle",
		Thumbnail:   "/uploads/thumb.png",
		Screenshots: []string{"/uploads/shot1.png", "/uploads/shot2.png"},
		ApkURL:      "/uploads/orbital-drift.apk",
	})
	require.NoError(t, err)
	return game
}

func TestRegister_DuplicateUsernameLeavesOneRow(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())

	registerUser(t, auth, "dev@studio.com", "")

	_, err := auth.Register(&dto.RegisterRequest{
		Username: "dev@studio.com",
		Password: "another-password",
	})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "dev@studio.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegister_ShortPasswordPersistsNothing(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())

	_, err := auth.Register(&dto.RegisterRequest{Username: "shorty", Password: "short"})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLogin_BannedAccountRejected(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())

	reg := registerUser(t, auth, "troll", "")
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", reg.User.ID).Update("banned", true).Error)

	_, err := auth.Login(&dto.LoginRequest{Username: "troll", Password: "correct-horse-battery"})
	assert.ErrorIs(t, err, services.ErrAccountBanned)

	// The refresh token issued before the ban is dead too.
	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	assert.ErrorIs(t, err, services.ErrAccountBanned)
}

func TestRefresh_RotatesToken(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())

	reg := registerUser(t, auth, "rotator", "")

	next, err := auth.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, next.RefreshToken)

	// The old token was revoked by the rotation.
	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestCreateGame_StampsOwnerFromSession(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())
	games := services.NewGameService(db, t.TempDir())

	reg := registerUser(t, auth, "maker@indie.dev", "")
	game := createGame(t, games, reg.User.ID)

	assert.Equal(t, reg.User.ID, game.DeveloperID)
	assert.Equal(t, "maker", game.Developer)
	assert.Equal(t, models.StatusPending, game.Status)
}

func TestUpdateGame_Permissions(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())
	games := services.NewGameService(db, t.TempDir())

	owner := registerUser(t, auth, "owner", "")
	stranger := registerUser(t, auth, "stranger", "")
	game := createGame(t, games, owner.User.ID)

	title := "Hijacked"
	_, err := games.Update(game.ID, stranger.User.ID, false, &dto.UpdateGameRequest{Title: &title})
	assert.ErrorIs(t, err, services.ErrNotOwner)

	unchanged, err := games.Get(game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Orbital Drift", unchanged.Title)

	// The owner cannot self-approve.
	approved := models.StatusApproved
	_, err = games.Update(game.ID, owner.User.ID, false, &dto.UpdateGameRequest{Status: &approved})
	assert.ErrorIs(t, err, services.ErrAdminOnlyField)

	still, err := games.Get(game.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, still.Status)

	// An admin can.
	updated, err := games.Update(game.ID, stranger.User.ID, true, &dto.UpdateGameRequest{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestReviews_RecomputeAggregateRating(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())
	games := services.NewGameService(db, t.TempDir())
	reviews := services.NewReviewService(db)

	owner := registerUser(t, auth, "dev", "")
	game := createGame(t, games, owner.User.ID)

	for i, rating := range []int{5, 3, 4} {
		reviewer := registerUser(t, auth, fmt.Sprintf("reviewer%d", i), "")
		_, err := reviews.Create(game.ID, reviewer.User.ID, &dto.CreateReviewRequest{
			Rating:  rating,
			Comment: "solid orbital mechanics",
		})
		require.NoError(t, err)
	}

	got, err := games.Get(game.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.Rating, 0.001)

	listed, err := reviews.ListByGame(game.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestReactions_UpsertAndIdempotentDelete(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())
	games := services.NewGameService(db, t.TempDir())
	reactions := services.NewReactionService(db)

	owner := registerUser(t, auth, "dev", "")
	fan := registerUser(t, auth, "fan", "")
	game := createGame(t, games, owner.User.ID)

	_, err := reactions.Set(game.ID, fan.User.ID, true)
	require.NoError(t, err)
	_, err = reactions.Set(game.ID, fan.User.ID, true)
	require.NoError(t, err)
	_, err = reactions.Set(game.ID, fan.User.ID, false)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).
		Where("game_id = ? AND user_id = ?", game.ID, fan.User.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "repeated sets must keep a single row")

	current, err := reactions.Get(game.ID, fan.User.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.False(t, current.IsLike)

	require.NoError(t, reactions.Delete(game.ID, fan.User.ID))
	require.NoError(t, reactions.Delete(game.ID, fan.User.ID))

	gone, err := reactions.Get(game.ID, fan.User.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteGame_CascadesToDependents(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())
	games := services.NewGameService(db, t.TempDir())
	reviews := services.NewReviewService(db)
	reactions := services.NewReactionService(db)
	reports := services.NewReportService(db)

	owner := registerUser(t, auth, "dev", "")
	fan := registerUser(t, auth, "fan", "")
	game := createGame(t, games, owner.User.ID)

	_, err := reviews.Create(game.ID, fan.User.ID, &dto.CreateReviewRequest{Rating: 5, Comment: "superb"})
	require.NoError(t, err)
	_, err = reactions.Set(game.ID, fan.User.ID, true)
	require.NoError(t, err)
	_, err = reports.Create(game.ID, fan.User.ID, &dto.CreateReportRequest{Reason: "broken apk"})
	require.NoError(t, err)

	require.NoError(t, games.Delete(game.ID))

	_, err = games.Get(game.ID)
	assert.ErrorIs(t, err, services.ErrGameNotFound)

	for _, model := range []interface{}{&models.Review{}, &models.Like{}, &models.Report{}} {
		var count int64
		require.NoError(t, db.Model(model).Where("game_id = ?", game.ID).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	}
}

func TestIncrementDownloads_MissingGame(t *testing.T) {
	db := setupTestDB(t)
	games := services.NewGameService(db, t.TempDir())

	err := games.IncrementDownloads(uuid.New())
	assert.ErrorIs(t, err, services.ErrGameNotFound)
}

func TestStats_Rollup(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())
	games := services.NewGameService(db, t.TempDir())
	admin := services.NewAdminService(db)

	owner := registerUser(t, auth, "dev", "")
	game := createGame(t, games, owner.User.ID)

	for i := 0; i < 7; i++ {
		require.NoError(t, games.IncrementDownloads(game.ID))
	}

	stats, err := admin.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.TotalGames)
	assert.EqualValues(t, 7, stats.TotalDownloads)
}

func TestFeaturedVideo_LatestWins(t *testing.T) {
	db := setupTestDB(t)
	videos := services.NewVideoService(db)

	none, err := videos.Latest()
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = videos.Set(&dto.SetFeaturedVideoRequest{YoutubeURL: "https://youtu.be/first", Title: "First"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = videos.Set(&dto.SetFeaturedVideoRequest{YoutubeURL: "https://youtu.be/second", Title: "Second"})
	require.NoError(t, err)

	latest, err := videos.Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "https://youtu.be/second", latest.YoutubeURL)
}

func TestAdminUpdateUser_BanAndRole(t *testing.T) {
	db := setupTestDB(t)
	auth := services.NewAuthService(db, testConfig())
	admin := services.NewAdminService(db)

	reg := registerUser(t, auth, "promote-me", "")

	banned := true
	role := models.RoleAdmin
	updated, err := admin.UpdateUser(reg.User.ID, &dto.UpdateUserRequest{Banned: &banned, Role: &role})
	require.NoError(t, err)
	assert.True(t, updated.Banned)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	badRole := "superuser"
	_, err = admin.UpdateUser(reg.User.ID, &dto.UpdateUserRequest{Role: &badRole})
	require.Error(t, err)
}
