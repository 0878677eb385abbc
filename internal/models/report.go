package models

import (
	"time"

	"github.com/google/uuid"
)

// Report flags a game for admin attention. Reports carry no resolution state;
// acknowledgment happens in the admin UI only.
type Report struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GameID  uuid.UUID `gorm:"type:uuid;not null;index" json:"game_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Reason  string    `gorm:"not null;size:500" json:"reason"`
	Message string    `gorm:"type:text" json:"message,omitempty"`
	Date    time.Time `gorm:"autoCreateTime" json:"date"`
}
