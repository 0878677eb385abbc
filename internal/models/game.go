package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Game lifecycle states. New games start pending and stay off the public
// shelf until an admin approves them. No state is terminal; admins may move
// a game between any of the three.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Game is a published listing. DeveloperID/Developer are stamped from the
// session identity at creation and never taken from client input.
type Game struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string         `gorm:"not null;size:255" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Category     string         `gorm:"size:100;not null;index" json:"category"`
	DeveloperID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"developer_id"`
	Developer    string         `gorm:"size:255;not null" json:"developer"`
	Thumbnail    string         `gorm:"size:500;not null" json:"thumbnail"`
	Screenshots  datatypes.JSON `gorm:"type:jsonb;not null" json:"screenshots"`
	ApkURL       string         `gorm:"size:500;not null" json:"apk_url"`
	ExternalLink string         `gorm:"size:500" json:"external_link,omitempty"`
	Status       string         `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Featured     bool           `gorm:"default:false" json:"featured"`
	Rating       float64        `gorm:"default:0" json:"rating"`
	Downloads    int            `gorm:"default:0" json:"downloads"`
	Views        int            `gorm:"default:0" json:"views"`
	UploadDate   time.Time      `gorm:"autoCreateTime" json:"upload_date"`
}

// ScreenshotList decodes the jsonb screenshots column.
func (g *Game) ScreenshotList() []string {
	var urls []string
	if err := json.Unmarshal(g.Screenshots, &urls); err != nil {
		return nil
	}
	return urls
}

// SetScreenshots encodes urls into the jsonb screenshots column.
func (g *Game) SetScreenshots(urls []string) error {
	b, err := json.Marshal(urls)
	if err != nil {
		return err
	}
	g.Screenshots = datatypes.JSON(b)
	return nil
}
