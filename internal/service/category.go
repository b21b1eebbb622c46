package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"PokeGallery/internal/model"
	"PokeGallery/internal/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService — категории проекта. Чисто организационная сущность:
// удаление категории НЕ каскадирует на покемонов, повисшая ссылка допустима.
type CategoryService struct {
	repo     repo.CategoryRepository
	projects *ProjectService
}

func NewCategoryService(r repo.CategoryRepository, projects *ProjectService) *CategoryService {
	return &CategoryService{repo: r, projects: projects}
}

// CategoryPatch — частичное обновление: nil-поле не трогаем.
type CategoryPatch struct {
	Name  *string
	Color *string
}

// randomColor — косметический цвет по умолчанию, "#rrggbb".
func randomColor() string {
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}

func (s *CategoryService) Create(ctx context.Context, projectID, userID, name, color string) (*model.Category, error) {
	if _, err := s.projects.GetOwned(ctx, projectID, userID); err != nil {
		return nil, err
	}

	if color == "" {
		color = randomColor()
	}
	category := &model.Category{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		Color:     color,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, projectID, userID string) ([]model.Category, error) {
	if _, err := s.projects.GetOwned(ctx, projectID, userID); err != nil {
		return nil, err
	}
	categories, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// getOwned перепроверяет владение через корневой проект при каждой мутации,
// а не доверяет предыдущему lookup в том же запросе.
func (s *CategoryService) getOwned(ctx context.Context, id, userID string) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	if _, err := s.projects.GetOwned(ctx, category.ProjectID, userID); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id, userID string, patch CategoryPatch) (*model.Category, error) {
	category, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Color != nil {
		category.Color = *patch.Color
	}

	if err := s.repo.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
