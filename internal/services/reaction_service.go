package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"gorm.io/gorm"
)

type ReactionService struct {
	db *gorm.DB
}

func NewReactionService(db *gorm.DB) *ReactionService {
	return &ReactionService{db: db}
}

// Get returns the caller's own reaction, or nil when they have none. Other
// users' reactions are never exposed through this path.
func (s *ReactionService) Get(gameID, userID uuid.UUID) (*models.Like, error) {
	var like models.Like
	err := s.db.Where("game_id = ? AND user_id = ?", gameID, userID).First(&like).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// Set upserts the caller's reaction: an existing row gets its polarity
// overwritten, otherwise a new row is inserted. Repeated identical calls
// leave exactly one row.
func (s *ReactionService) Set(gameID, userID uuid.UUID, isLike bool) (*models.Like, error) {
	var game models.Game
	if err := s.db.First(&game, "id = ?", gameID).Error; err != nil {
		return nil, ErrGameNotFound
	}

	var existing models.Like
	err := s.db.Where("game_id = ? AND user_id = ?", gameID, userID).First(&existing).Error
	if err == nil {
		if err := s.db.Model(&existing).Update("is_like", isLike).Error; err != nil {
			return nil, fmt.Errorf("failed to update reaction: %w", err)
		}
		existing.IsLike = isLike
		return &existing, nil
	}

	like := models.Like{
		ID:     uuid.New(),
		GameID: gameID,
		UserID: userID,
		IsLike: isLike,
	}
	if err := s.db.Create(&like).Error; err != nil {
		return nil, fmt.Errorf("failed to create reaction: %w", err)
	}
	return &like, nil
}

// Delete removes the caller's reaction. Deleting a nonexistent reaction is
// not an error.
func (s *ReactionService) Delete(gameID, userID uuid.UUID) error {
	return s.db.Where("game_id = ? AND user_id = ?", gameID, userID).
		Delete(&models.Like{}).Error
}
