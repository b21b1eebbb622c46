package service

import (
	"context"
	"errors"
	"fmt"

	"PokeGallery/internal/model"
	"PokeGallery/internal/repo"
	"PokeGallery/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProjectService — реестр владения. Проект — корень дерева: категории и
// покемоны живут строго внутри него, и любой доступ к ним авторизуется
// через GetOwned этого сервиса.
type ProjectService struct {
	projects   repo.ProjectRepository
	categories repo.CategoryRepository
	pokemon    repo.PokemonRepository
	assets     storage.AssetStore
	logger     *zap.SugaredLogger
}

func NewProjectService(
	projects repo.ProjectRepository,
	categories repo.CategoryRepository,
	pokemon repo.PokemonRepository,
	assets storage.AssetStore,
	logger *zap.SugaredLogger,
) *ProjectService {
	return &ProjectService{
		projects:   projects,
		categories: categories,
		pokemon:    pokemon,
		assets:     assets,
		logger:     logger,
	}
}

// ProjectPatch — частичное обновление: nil-поле не трогаем.
type ProjectPatch struct {
	Name        *string
	Description *string
}

func (s *ProjectService) Create(ctx context.Context, userID, name, description string) (*model.Project, error) {
	project := &model.Project{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) ListForUser(ctx context.Context, userID string) ([]model.Project, error) {
	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetOwned — единственный шлюз авторизации: сначала существование (ErrNotFound),
// затем владелец (ErrForbidden). Остальные сервисы обязаны ходить через него
// и отдавать его ошибки без перевода.
func (s *ProjectService) GetOwned(ctx context.Context, projectID, userID string) (*model.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project.UserID != userID {
		return nil, ErrForbidden
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, projectID, userID string, patch ProjectPatch) (*model.Project, error) {
	project, err := s.GetOwned(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}

	if err := s.projects.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	return project, nil
}

// Delete — каскадное удаление проекта. Линейный протокол:
//  1. авторизация — до любых побочных эффектов;
//  2. перечисление покемонов проекта;
//  3. best-effort зачистка внешних ассетов: каждый Delete независим, сбой
//     логируется и не прерывает протокол (осиротевший ассет — принятая утечка);
//  4. массовое удаление записей: покемоны с файлами, категории, проект.
//
// Для вызывающего операция атомарна: Completed либо Aborted (отказ в п.1).
func (s *ProjectService) Delete(ctx context.Context, projectID, userID string) error {
	if _, err := s.GetOwned(ctx, projectID, userID); err != nil {
		return err
	}

	items, err := s.pokemon.ListByProject(ctx, projectID, "")
	if err != nil {
		return fmt.Errorf("list pokemon: %w", err)
	}

	for _, item := range items {
		s.deleteItemAssets(ctx, &item)
	}

	if err := s.pokemon.DeleteByProject(ctx, projectID); err != nil {
		return fmt.Errorf("delete pokemon records: %w", err)
	}
	if err := s.categories.DeleteByProject(ctx, projectID); err != nil {
		return fmt.Errorf("delete category records: %w", err)
	}
	if err := s.projects.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("delete project record: %w", err)
	}
	return nil
}

// deleteItemAssets удаляет внешние ассеты покемона в режиме fire-and-continue.
func (s *ProjectService) deleteItemAssets(ctx context.Context, item *model.Pokemon) {
	if item.MainImage != nil && item.MainImage.PublicID != "" {
		if err := s.assets.Delete(ctx, item.MainImage.PublicID); err != nil {
			s.logger.Errorw("ProjectDelete: failed to delete main image asset",
				"pokemon_id", item.ID, "public_id", item.MainImage.PublicID, "error", err)
		}
	}
	for _, f := range item.Files {
		if err := s.assets.Delete(ctx, f.PublicID); err != nil {
			s.logger.Errorw("ProjectDelete: failed to delete file asset",
				"pokemon_id", item.ID, "file_id", f.ID, "public_id", f.PublicID, "error", err)
		}
	}
}
