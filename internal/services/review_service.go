package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/dto"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) ListByGame(gameID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("game_id = ?", gameID).Order("date DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create inserts a review and recomputes the game's aggregate rating as the
// plain mean of all its review ratings. The recompute is not transactional
// with the insert; a crash in between leaves the rating stale until the next
// review, which is acceptable here.
func (s *ReviewService) Create(gameID, userID uuid.UUID, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	if req.Comment == "" {
		return nil, errors.New("comment is required")
	}

	var game models.Game
	if err := s.db.First(&game, "id = ?", gameID).Error; err != nil {
		return nil, ErrGameNotFound
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	review := models.Review{
		ID:       uuid.New(),
		GameID:   gameID,
		UserID:   userID,
		Username: user.DisplayName(),
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.recomputeRating(gameID); err != nil {
		return nil, err
	}

	return &review, nil
}

func (s *ReviewService) recomputeRating(gameID uuid.UUID) error {
	var avg float64
	row := s.db.Model(&models.Review{}).
		Where("game_id = ?", gameID).
		Select("COALESCE(AVG(rating), 0)").Row()
	if err := row.Scan(&avg); err != nil {
		return fmt.Errorf("failed to compute rating: %w", err)
	}

	return s.db.Model(&models.Game{}).Where("id = ?", gameID).
		Update("rating", avg).Error
}
