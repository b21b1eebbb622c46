package model

import "time"

// Типы вложенных файлов покемона.
const (
	FileTypeSkin  = "skin"
	FileTypePhoto = "photo"
	FileTypeModel = "model"
	FileTypeOther = "other"
)

// ValidFileType проверяет тип файла из запроса.
func ValidFileType(t string) bool {
	switch t {
	case FileTypeSkin, FileTypePhoto, FileTypeModel, FileTypeOther:
		return true
	}
	return false
}

// Pokemon — элемент каталога. Принадлежит ровно одному проекту, опционально
// ссылается на категорию. Несёт не более одного главного изображения и
// упорядоченный набор вложенных файлов на внешнем хостинге.
type Pokemon struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	ProjectID string `gorm:"not null;index;type:uuid" json:"projectId"`

	Project *Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// nil — категория не выставлена; отличаем от пустой строки на уровне DTO
	CategoryID *string   `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`

	Name  string `gorm:"not null" json:"name"`
	Notes string `json:"notes,omitempty"`

	// Главное изображение: либо оба поля заполнены, либо оба пусты
	MainImage *MainImage `gorm:"embedded;embeddedPrefix:main_image_" json:"mainImage,omitempty"`

	Files []PokemonFile `gorm:"constraint:OnDelete:CASCADE" json:"files"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// MainImage — пара ссылка + внешний идентификатор ассета.
type MainImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// PokemonFile — вложенный файл покемона. Принадлежит исключительно своему
// родителю; идентичность — серверный uuid, стабильный при вставках/удалениях соседей.
type PokemonFile struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	PokemonID string `gorm:"not null;index;type:uuid" json:"-"`

	Name   string `json:"name"`
	Type   string `gorm:"not null;default:other" json:"type"`
	Folder string `json:"folder,omitempty"`

	URL      string `gorm:"not null" json:"url"`
	PublicID string `gorm:"not null" json:"publicId"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploadedAt"`
}
