package model

import "time"

type RevokedToken struct {
	TokenID   string    `gorm:"primaryKey;size:36"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}
