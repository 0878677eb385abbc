package models

import (
	"time"

	"github.com/google/uuid"
)

// FeaturedVideo is the homepage hero video. Every admin update inserts a new
// row; the most recently uploaded row is the current one.
type FeaturedVideo struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	YoutubeURL string    `gorm:"not null;size:500" json:"youtube_url"`
	Thumbnail  string    `gorm:"size:500" json:"thumbnail,omitempty"`
	Title      string    `gorm:"size:255" json:"title,omitempty"`
	UploadedAt time.Time `gorm:"autoCreateTime;index" json:"uploaded_at"`
}
