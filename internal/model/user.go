package model

import "time"

// User — учётная запись владельца проектов.
type User struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Email    string `gorm:"not null;uniqueIndex" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt-хеш, наружу не отдаём
	Name     string `json:"name,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
