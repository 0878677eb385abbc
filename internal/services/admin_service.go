package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/dto"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"gorm.io/gorm"
)

// AdminService covers the moderation panel: account management and the
// on-demand stats rollup.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("joined_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser applies the admin account patch: profile fields, ban/feature
// flags, and role.
func (s *AdminService) UpdateUser(userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		if *req.Username == "" {
			return nil, errors.New("username cannot be empty")
		}
		if *req.Username != user.Username {
			var existing models.User
			if err := s.db.Where("username = ?", *req.Username).First(&existing).Error; err == nil {
				return nil, ErrUsernameTaken
			}
		}
		updates["username"] = *req.Username
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Banned != nil {
		updates["banned"] = *req.Banned
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Role != nil {
		if *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
			return nil, errors.New("role must be user or admin")
		}
		updates["role"] = *req.Role
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		// Map updates do not write back into the struct.
		if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
			return nil, err
		}
	}

	return &user, nil
}

// Stats computes the rollup on demand; nothing is cached.
func (s *AdminService) Stats() (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Game{}).Count(&stats.TotalGames).Error; err != nil {
		return nil, err
	}

	row := s.db.Model(&models.Game{}).
		Select("COALESCE(SUM(downloads), 0), COALESCE(AVG(rating), 0)").Row()
	if err := row.Scan(&stats.TotalDownloads, &stats.AvgRating); err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return stats, nil
}
