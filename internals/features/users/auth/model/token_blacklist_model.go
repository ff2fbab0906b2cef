package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklist — tokens invalidados por logout; el cron limpia los vencidos.
type TokenBlacklist struct {
	ID        uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Token     string    `json:"token" gorm:"column:token;uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"column:expires_at;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
