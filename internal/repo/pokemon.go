package repo

import (
	"context"

	"PokeGallery/internal/model"

	"gorm.io/gorm"
)

// PokemonRepository — контракт доступа к Pokemon и его вложенным файлам.
// Файлы адресуются парой (pokemonID, fileID): файл принадлежит ровно одному покемону.
type PokemonRepository interface {
	Create(ctx context.Context, pokemon *model.Pokemon) error

	// ListByProject возвращает покемонов проекта; categoryID != "" — точный фильтр.
	// Категория и файлы каждого результата подгружены.
	ListByProject(ctx context.Context, projectID, categoryID string) ([]model.Pokemon, error)

	// GetByID возвращает gorm.ErrRecordNotFound, если записи нет.
	GetByID(ctx context.Context, id string) (*model.Pokemon, error)

	// Update применяет частичное обновление; nil-значение в map пишет NULL.
	Update(ctx context.Context, id string, updates map[string]any) error

	// DeleteByID удаляет покемона вместе с записями файлов.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByProject — массовое удаление при каскаде проекта.
	DeleteByProject(ctx context.Context, projectID string) error

	AddFile(ctx context.Context, file *model.PokemonFile) error

	// GetFile ищет файл в коллекции конкретного покемона.
	GetFile(ctx context.Context, pokemonID, fileID string) (*model.PokemonFile, error)

	UpdateFile(ctx context.Context, pokemonID, fileID string, updates map[string]any) error

	DeleteFile(ctx context.Context, pokemonID, fileID string) error
}

type pokemonRepo struct {
	db *gorm.DB
}

// NewPokemonRepository создаёт реализацию репозитория для Pokemon.
func NewPokemonRepository(db *gorm.DB) PokemonRepository {
	return &pokemonRepo{db: db}
}

// preloaded — общая база запросов с категорией и файлами в порядке загрузки.
func (r *pokemonRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("Files", func(db *gorm.DB) *gorm.DB {
			return db.Order("pokemon_files.uploaded_at")
		})
}

func (r *pokemonRepo) Create(ctx context.Context, pokemon *model.Pokemon) error {
	return r.db.WithContext(ctx).Create(pokemon).Error
}

func (r *pokemonRepo) ListByProject(ctx context.Context, projectID, categoryID string) ([]model.Pokemon, error) {
	q := r.preloaded(ctx).Where("project_id = ?", projectID)
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	var pokemon []model.Pokemon
	if err := q.Order("created_at").Find(&pokemon).Error; err != nil {
		return nil, err
	}
	for i := range pokemon {
		normalizeMainImage(&pokemon[i])
	}
	return pokemon, nil
}

func (r *pokemonRepo) GetByID(ctx context.Context, id string) (*model.Pokemon, error) {
	var p model.Pokemon
	if err := r.preloaded(ctx).First(&p, "pokemons.id = ?", id).Error; err != nil {
		return nil, err
	}
	normalizeMainImage(&p)
	return &p, nil
}

// normalizeMainImage держит инвариант «либо nil, либо оба поля заполнены»:
// скан пустых колонок может дать аллоцированную, но пустую структуру.
func normalizeMainImage(p *model.Pokemon) {
	if p.MainImage != nil && p.MainImage.PublicID == "" {
		p.MainImage = nil
	}
}

func (r *pokemonRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.Pokemon{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *pokemonRepo) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PokemonFile{}, "pokemon_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Pokemon{}, "id = ?", id).Error
	})
}

func (r *pokemonRepo) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&model.Pokemon{}).Select("id").Where("project_id = ?", projectID)
		if err := tx.Delete(&model.PokemonFile{}, "pokemon_id IN (?)", sub).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Pokemon{}, "project_id = ?", projectID).Error
	})
}

func (r *pokemonRepo) AddFile(ctx context.Context, file *model.PokemonFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *pokemonRepo) GetFile(ctx context.Context, pokemonID, fileID string) (*model.PokemonFile, error) {
	var f model.PokemonFile
	err := r.db.WithContext(ctx).
		Where("pokemon_id = ?", pokemonID).
		First(&f, "id = ?", fileID).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *pokemonRepo) UpdateFile(ctx context.Context, pokemonID, fileID string, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.PokemonFile{}).
		Where("pokemon_id = ? AND id = ?", pokemonID, fileID).
		Updates(updates).Error
}

func (r *pokemonRepo) DeleteFile(ctx context.Context, pokemonID, fileID string) error {
	return r.db.WithContext(ctx).
		Delete(&model.PokemonFile{}, "pokemon_id = ? AND id = ?", pokemonID, fileID).Error
}
