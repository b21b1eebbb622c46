package repo

import (
	"context"

	"PokeGallery/internal/model"

	"gorm.io/gorm"
)

// ProjectRepository — контракт доступа к Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error

	ListByUser(ctx context.Context, userID string) ([]model.Project, error)

	// GetByID возвращает gorm.ErrRecordNotFound, если проекта нет.
	// Проверка владельца — в сервисе: существование и доступ различаются.
	GetByID(ctx context.Context, id string) (*model.Project, error)

	Save(ctx context.Context, project *model.Project) error

	Delete(ctx context.Context, id string) error
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepository создаёт реализацию репозитория для Project.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepo) ListByUser(ctx context.Context, userID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) Save(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id).Error
}
