package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a marketplace account. Accounts are never hard-deleted; moderation
// happens through the Banned flag.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username string    `gorm:"not null;size:255;uniqueIndex" json:"username"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'user'" json:"role"`
	Avatar   string    `gorm:"size:500" json:"avatar"`
	Bio      string    `gorm:"type:text" json:"bio"`
	Banned   bool      `gorm:"default:false" json:"banned"`
	Featured bool      `gorm:"default:false" json:"featured"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// DisplayName is the public name snapshotted onto games and reviews at
// creation time. Email-style usernames are cut at the '@'; the snapshot is
// intentionally stale if the account later renames.
func (u *User) DisplayName() string {
	for i := 0; i < len(u.Username); i++ {
		if u.Username[i] == '@' {
			return u.Username[:i]
		}
	}
	return u.Username
}
