package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/dto"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"gorm.io/gorm"
)

type VideoService struct {
	db *gorm.DB
}

func NewVideoService(db *gorm.DB) *VideoService {
	return &VideoService{db: db}
}

// Set inserts a new featured-video row. Old rows are kept; Latest picks the
// newest, so the last write wins.
func (s *VideoService) Set(req *dto.SetFeaturedVideoRequest) (*models.FeaturedVideo, error) {
	if req.YoutubeURL == "" {
		return nil, errors.New("youtube URL is required")
	}

	video := models.FeaturedVideo{
		ID:         uuid.New(),
		YoutubeURL: req.YoutubeURL,
		Title:      req.Title,
	}
	if err := s.db.Create(&video).Error; err != nil {
		return nil, fmt.Errorf("failed to set featured video: %w", err)
	}
	return &video, nil
}

// Latest returns the current featured video, or nil when none was ever set.
func (s *VideoService) Latest() (*models.FeaturedVideo, error) {
	var video models.FeaturedVideo
	err := s.db.Order("uploaded_at DESC").First(&video).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}
