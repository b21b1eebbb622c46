package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"PokeGallery/internal/model"
	"PokeGallery/internal/repo"
	"PokeGallery/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PokemonService — записи каталога и жизненный цикл их внешних ассетов.
// Каждая мутация авторизуется через проект покемона (один лишний lookup —
// принятая цена: несанкционированный доступ отсекается на любой точке входа).
type PokemonService struct {
	repo     repo.PokemonRepository
	projects *ProjectService
	assets   storage.AssetStore
	logger   *zap.SugaredLogger
}

func NewPokemonService(r repo.PokemonRepository, projects *ProjectService, assets storage.AssetStore, logger *zap.SugaredLogger) *PokemonService {
	return &PokemonService{repo: r, projects: projects, assets: assets, logger: logger}
}

// CreatePokemonInput — входные данные создания.
type CreatePokemonInput struct {
	Name       string
	CategoryID string // пустая строка — без категории
	Notes      string
}

// PokemonPatch — частичное обновление. CategoryID трёхзначен:
// nil — не трогаем; указатель на пустую/пробельную строку — явная очистка;
// указатель на значение — установка (существование категории не проверяется).
type PokemonPatch struct {
	Name       *string
	Notes      *string
	CategoryID *string
}

// FilePatch — частичное обновление вложенного файла.
type FilePatch struct {
	Name   *string
	Folder *string
	Type   *string
}

// FileUpload — один загружаемый файл.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

func (s *PokemonService) Create(ctx context.Context, projectID, userID string, in CreatePokemonInput) (*model.Pokemon, error) {
	if _, err := s.projects.GetOwned(ctx, projectID, userID); err != nil {
		return nil, err
	}

	pokemon := &model.Pokemon{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      in.Name,
		Notes:     in.Notes,
	}
	if categoryID := strings.TrimSpace(in.CategoryID); categoryID != "" {
		pokemon.CategoryID = &categoryID
	}

	if err := s.repo.Create(ctx, pokemon); err != nil {
		return nil, fmt.Errorf("create pokemon: %w", err)
	}
	return pokemon, nil
}

func (s *PokemonService) FindAll(ctx context.Context, projectID, userID, categoryID string) ([]model.Pokemon, error) {
	if _, err := s.projects.GetOwned(ctx, projectID, userID); err != nil {
		return nil, err
	}
	pokemon, err := s.repo.ListByProject(ctx, projectID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	return pokemon, nil
}

// FindOne загружает запись и, если userID задан, перепроверяет владение
// через проект. Пустой userID — внутренний вызов без повторной авторизации.
func (s *PokemonService) FindOne(ctx context.Context, id, userID string) (*model.Pokemon, error) {
	pokemon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pokemon: %w", err)
	}
	if userID != "" {
		if _, err := s.projects.GetOwned(ctx, pokemon.ProjectID, userID); err != nil {
			return nil, err
		}
	}
	return pokemon, nil
}

func (s *PokemonService) Update(ctx context.Context, id, userID string, patch PokemonPatch) (*model.Pokemon, error) {
	if _, err := s.FindOne(ctx, id, userID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.CategoryID != nil {
		if categoryID := strings.TrimSpace(*patch.CategoryID); categoryID != "" {
			updates["category_id"] = categoryID
		} else {
			updates["category_id"] = nil
		}
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("update pokemon: %w", err)
		}
	}
	return s.FindOne(ctx, id, "")
}

// UploadMainImage заменяет главное изображение: сначала удаляется старый
// ассет (сбой поднимается), затем загружается новый. Инвариант «не более
// одного главного изображения» держится безусловной перезаписью пары.
func (s *PokemonService) UploadMainImage(ctx context.Context, id, userID string, upload FileUpload) (*model.Pokemon, error) {
	pokemon, err := s.FindOne(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if pokemon.MainImage != nil && pokemon.MainImage.PublicID != "" {
		if err := s.assets.Delete(ctx, pokemon.MainImage.PublicID); err != nil {
			return nil, fmt.Errorf("%w: delete old main image %q: %v", ErrAssetHost, pokemon.MainImage.PublicID, err)
		}
	}

	info, err := s.assets.Upload(ctx, s.assetFolder(pokemon), upload.Name, upload.Reader, upload.Size, upload.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: upload main image: %v", ErrAssetHost, err)
	}

	err = s.repo.Update(ctx, id, map[string]any{
		"main_image_url":       info.URL,
		"main_image_public_id": info.PublicID,
	})
	if err != nil {
		return nil, fmt.Errorf("save main image: %w", err)
	}
	return s.FindOne(ctx, id, "")
}

// UploadFiles грузит файлы последовательно — порядок загрузки определяет
// порядок отображения. Каждая успешная загрузка фиксируется сразу; сбой
// посреди списка оставляет ранее добавленные файлы и возвращает ошибку
// (частичный успех не скрывается от вызывающего).
func (s *PokemonService) UploadFiles(ctx context.Context, id, userID string, uploads []FileUpload, fileType, folder string) (*model.Pokemon, error) {
	pokemon, err := s.FindOne(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !model.ValidFileType(fileType) {
		fileType = model.FileTypeOther
	}

	for _, upload := range uploads {
		info, err := s.assets.Upload(ctx, s.assetFolder(pokemon), upload.Name, upload.Reader, upload.Size, upload.ContentType)
		if err != nil {
			return nil, fmt.Errorf("%w: upload %q: %v", ErrAssetHost, upload.Name, err)
		}

		file := &model.PokemonFile{
			ID:        uuid.NewString(),
			PokemonID: pokemon.ID,
			Name:      upload.Name,
			Type:      fileType,
			Folder:    folder,
			URL:       info.URL,
			PublicID:  info.PublicID,
		}
		if err := s.repo.AddFile(ctx, file); err != nil {
			return nil, fmt.Errorf("save file record: %w", err)
		}
	}

	return s.FindOne(ctx, id, "")
}

func (s *PokemonService) UpdateFile(ctx context.Context, pokemonID, fileID, userID string, patch FilePatch) (*model.Pokemon, error) {
	if _, err := s.FindOne(ctx, pokemonID, userID); err != nil {
		return nil, err
	}
	if _, err := s.getFile(ctx, pokemonID, fileID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Folder != nil {
		updates["folder"] = *patch.Folder
	}
	if patch.Type != nil && model.ValidFileType(*patch.Type) {
		updates["type"] = *patch.Type
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateFile(ctx, pokemonID, fileID, updates); err != nil {
			return nil, fmt.Errorf("update file: %w", err)
		}
	}
	return s.FindOne(ctx, pokemonID, "")
}

// DeleteFile — точечное удаление, fail-fast: сбой внешнего удаления
// поднимается к пользователю, запись файла остаётся на месте.
func (s *PokemonService) DeleteFile(ctx context.Context, pokemonID, fileID, userID string) (*model.Pokemon, error) {
	if _, err := s.FindOne(ctx, pokemonID, userID); err != nil {
		return nil, err
	}
	file, err := s.getFile(ctx, pokemonID, fileID)
	if err != nil {
		return nil, err
	}

	if err := s.assets.Delete(ctx, file.PublicID); err != nil {
		return nil, fmt.Errorf("%w: delete asset %q: %v", ErrAssetHost, file.PublicID, err)
	}

	if err := s.repo.DeleteFile(ctx, pokemonID, fileID); err != nil {
		return nil, fmt.Errorf("delete file record: %w", err)
	}
	return s.FindOne(ctx, pokemonID, "")
}

// Remove удаляет покемона. Зачистка ассетов — fire-and-continue, как в
// каскаде проекта: массовое разрушение обязано продвигаться вперёд,
// сбои только логируются.
func (s *PokemonService) Remove(ctx context.Context, id, userID string) error {
	pokemon, err := s.FindOne(ctx, id, userID)
	if err != nil {
		return err
	}

	if pokemon.MainImage != nil && pokemon.MainImage.PublicID != "" {
		if err := s.assets.Delete(ctx, pokemon.MainImage.PublicID); err != nil {
			s.logger.Errorw("PokemonRemove: failed to delete main image asset",
				"pokemon_id", pokemon.ID, "public_id", pokemon.MainImage.PublicID, "error", err)
		}
	}
	for _, f := range pokemon.Files {
		if err := s.assets.Delete(ctx, f.PublicID); err != nil {
			s.logger.Errorw("PokemonRemove: failed to delete file asset",
				"pokemon_id", pokemon.ID, "file_id", f.ID, "public_id", f.PublicID, "error", err)
		}
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete pokemon record: %w", err)
	}
	return nil
}

func (s *PokemonService) getFile(ctx context.Context, pokemonID, fileID string) (*model.PokemonFile, error) {
	file, err := s.repo.GetFile(ctx, pokemonID, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("get file: %w", err)
	}
	return file, nil
}

// assetFolder — путь в бакете: <projectId>/<pokemonId>.
func (s *PokemonService) assetFolder(pokemon *model.Pokemon) string {
	return pokemon.ProjectID + "/" + pokemon.ID
}
