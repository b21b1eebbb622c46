package model

import "time"

// Category — организационная группа внутри проекта. Покемоны ссылаются на неё
// опционально; удаление категории записи не каскадирует.
type Category struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	ProjectID string `gorm:"not null;index;type:uuid" json:"projectId"`

	Project *Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name  string `gorm:"not null" json:"name"`
	Color string `json:"color,omitempty"` // "#rrggbb"; по умолчанию случайный

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
