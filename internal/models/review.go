package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating + comment on a game. Username is a display-name snapshot
// taken at creation. Reviews are never updated; they disappear only when the
// game is deleted. The same author may review a game more than once.
type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GameID   uuid.UUID `gorm:"type:uuid;not null;index" json:"game_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Username string    `gorm:"size:255;not null" json:"username"`
	Rating   int       `gorm:"not null" json:"rating"`
	Comment  string    `gorm:"type:text;not null" json:"comment"`
	Date     time.Time `gorm:"autoCreateTime" json:"date"`
}
