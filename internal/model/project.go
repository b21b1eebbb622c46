package model

import "time"

// Project — корень дерева владения: всё остальное (категории, покемоны,
// файлы) прослеживается к ровно одному проекту, а проект — к одному пользователю.
type Project struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"not null;index;type:uuid" json:"userId"` // неизменяем после создания

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
