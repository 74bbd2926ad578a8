package user

import (
	"time"

	"gorm.io/gorm"
)

// User is a coach account. Club-level roles (head coach, coach) live on club
// membership rows; the Roles relation here carries platform-wide roles only.
type User struct {
	gorm.Model
	Name          string `json:"name"`
	Username      string `gorm:"uniqueIndex" json:"username"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `json:"-"`
	Bio           string `json:"bio"`
	Qualification string `json:"qualification"` // coaching badge, e.g. "UEFA B"
	EmailVerified bool   `json:"email_verified" gorm:"default:false"`
	LastActive    time.Time `json:"last_active"`
	Roles         []Role    `gorm:"many2many:user_roles" json:"roles"`
}

type Role struct {
	gorm.Model
	Name string `gorm:"unique;not null" json:"name"`
}

// RefreshToken stores issued refresh tokens so they can be revoked on logout.
type RefreshToken struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}
