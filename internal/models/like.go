package models

import "github.com/google/uuid"

// Like records a like/dislike polarity. At most one row per (game, user),
// enforced by upsert semantics in the reaction service.
type Like struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GameID uuid.UUID `gorm:"type:uuid;not null;index:idx_likes_game_user" json:"game_id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_likes_game_user" json:"user_id"`
	IsLike bool      `gorm:"not null" json:"is_like"`
}
