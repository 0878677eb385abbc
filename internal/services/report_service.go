package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/dto"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) Create(gameID, userID uuid.UUID, req *dto.CreateReportRequest) (*models.Report, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, errors.New("reason is required")
	}

	var game models.Game
	if err := s.db.First(&game, "id = ?", gameID).Error; err != nil {
		return nil, ErrGameNotFound
	}

	report := models.Report{
		ID:      uuid.New(),
		GameID:  gameID,
		UserID:  userID,
		Reason:  req.Reason,
		Message: req.Message,
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

func (s *ReportService) List() ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Order("date DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
