package services

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/dto"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"gorm.io/gorm"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrNotOwner       = errors.New("only the owner or an admin may modify this game")
	ErrAdminOnlyField = errors.New("status and featured may only be changed by an admin")
)

// GameService owns the listing lifecycle: creation into the pending queue,
// whitelisted updates, admin cascade deletion, and the view/download counters.
type GameService struct {
	db        *gorm.DB
	uploadDir string
}

func NewGameService(db *gorm.DB, uploadDir string) *GameService {
	return &GameService{db: db, uploadDir: uploadDir}
}

func (s *GameService) List(status string, developerID string) ([]models.Game, error) {
	var games []models.Game
	query := s.db.Model(&models.Game{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if developerID != "" {
		query = query.Where("developer_id = ?", developerID)
	}
	if err := query.Order("upload_date DESC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *GameService) Get(id uuid.UUID) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, "id = ?", id).Error; err != nil {
		return nil, ErrGameNotFound
	}
	return &game, nil
}

func (s *GameService) Create(userID uuid.UUID, req *dto.CreateGameRequest) (*models.Game, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}
	if len(req.Description) < 10 {
		return nil, errors.New("description must be at least 10 characters")
	}
	if req.Category == "" {
		return nil, errors.New("category is required")
	}
	if req.Thumbnail == "" {
		return nil, errors.New("thumbnail is required")
	}
	if len(req.Screenshots) == 0 {
		return nil, errors.New("at least one screenshot is required")
	}
	for _, sc := range req.Screenshots {
		if sc == "" {
			return nil, errors.New("screenshot URLs cannot be empty")
		}
	}
	if req.ApkURL == "" {
		return nil, errors.New("apk URL is required")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	game := models.Game{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		DeveloperID:  user.ID,
		Developer:    user.DisplayName(),
		Thumbnail:    req.Thumbnail,
		ApkURL:       req.ApkURL,
		ExternalLink: req.ExternalLink,
		Status:       models.StatusPending,
	}
	if err := game.SetScreenshots(req.Screenshots); err != nil {
		return nil, fmt.Errorf("failed to encode screenshots: %w", err)
	}

	if err := s.db.Create(&game).Error; err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return &game, nil
}

// Update applies a whitelisted patch. Only the owner or an admin may update,
// and only admins may touch status or featured.
func (s *GameService) Update(id uuid.UUID, requesterID uuid.UUID, isAdmin bool, req *dto.UpdateGameRequest) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, "id = ?", id).Error; err != nil {
		return nil, ErrGameNotFound
	}

	if game.DeveloperID != requesterID && !isAdmin {
		return nil, ErrNotOwner
	}
	if req.WantsModeration() && !isAdmin {
		return nil, ErrAdminOnlyField
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, errors.New("title cannot be empty")
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		if len(*req.Description) < 10 {
			return nil, errors.New("description must be at least 10 characters")
		}
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, errors.New("category cannot be empty")
		}
		updates["category"] = *req.Category
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.Screenshots != nil {
		if len(*req.Screenshots) == 0 {
			return nil, errors.New("at least one screenshot is required")
		}
		var g models.Game
		if err := g.SetScreenshots(*req.Screenshots); err != nil {
			return nil, fmt.Errorf("failed to encode screenshots: %w", err)
		}
		updates["screenshots"] = g.Screenshots
	}
	if req.ApkURL != nil {
		if *req.ApkURL == "" {
			return nil, errors.New("apk URL cannot be empty")
		}
		updates["apk_url"] = *req.ApkURL
	}
	if req.ExternalLink != nil {
		updates["external_link"] = *req.ExternalLink
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, errors.New("status must be pending, approved, or rejected")
		}
		updates["status"] = *req.Status
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}

	if len(updates) > 0 {
		if err := s.db.Model(&game).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update game: %w", err)
		}
		// Map updates do not write back into the struct.
		if err := s.db.First(&game, "id = ?", id).Error; err != nil {
			return nil, err
		}
	}

	return &game, nil
}

// Delete removes a game and everything hanging off it. Image files are
// removed best-effort first; a file that cannot be deleted is logged and the
// row cascade proceeds so the API never references a half-deleted game.
func (s *GameService) Delete(id uuid.UUID) error {
	var game models.Game
	if err := s.db.First(&game, "id = ?", id).Error; err != nil {
		return ErrGameNotFound
	}

	s.removeUploadedFile(game.Thumbnail)
	for _, sc := range game.ScreenshotList() {
		s.removeUploadedFile(sc)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		return tx.Delete(&game).Error
	})
}

func (s *GameService) IncrementViews(id uuid.UUID) error {
	return s.db.Model(&models.Game{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

func (s *GameService) IncrementDownloads(id uuid.UUID) error {
	result := s.db.Model(&models.Game{}).Where("id = ?", id).
		Update("downloads", gorm.Expr("downloads + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

// removeUploadedFile deletes a locally uploaded image. URLs outside /uploads
// (external avatars and the like) are left alone.
func (s *GameService) removeUploadedFile(url string) {
	if !strings.HasPrefix(url, "/uploads/") {
		return
	}
	path := filepath.Join(s.uploadDir, filepath.Base(url))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not delete uploaded file", "path", path, "error", err)
	}
}
