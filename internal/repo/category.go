package repo

import (
	"context"

	"PokeGallery/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository — контракт доступа к Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error

	ListByProject(ctx context.Context, projectID string) ([]model.Category, error)

	// GetByID возвращает gorm.ErrRecordNotFound, если категории нет.
	GetByID(ctx context.Context, id string) (*model.Category, error)

	Save(ctx context.Context, category *model.Category) error

	Delete(ctx context.Context, id string) error

	// DeleteByProject — зачистка при каскадном удалении проекта.
	DeleteByProject(ctx context.Context, projectID string) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт реализацию репозитория для Category.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) ListByProject(ctx context.Context, projectID string) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Save(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id).Error
}

func (r *categoryRepo) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, "project_id = ?", projectID).Error
}
