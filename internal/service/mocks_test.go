package service

import (
	"context"
	"io"

	"PokeGallery/internal/model"
	"PokeGallery/internal/repo"
	"PokeGallery/internal/storage"

	"github.com/stretchr/testify/mock"
)

// Моки репозиториев и хранилища ассетов для тестов сервисов.

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) SaveUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockProjectRepo struct{ mock.Mock }

func (m *mockProjectRepo) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepo) ListByUser(ctx context.Context, userID string) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Project); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*model.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepo) Save(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.ProjectRepository = (*mockProjectRepo)(nil)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) ListByProject(ctx context.Context, projectID string) ([]model.Category, error) {
	args := m.Called(ctx, projectID)
	if v, ok := args.Get(0).([]model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Save(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryRepo) DeleteByProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

type mockPokemonRepo struct{ mock.Mock }

func (m *mockPokemonRepo) Create(ctx context.Context, pokemon *model.Pokemon) error {
	args := m.Called(ctx, pokemon)
	return args.Error(0)
}

func (m *mockPokemonRepo) ListByProject(ctx context.Context, projectID, categoryID string) ([]model.Pokemon, error) {
	args := m.Called(ctx, projectID, categoryID)
	if v, ok := args.Get(0).([]model.Pokemon); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPokemonRepo) GetByID(ctx context.Context, id string) (*model.Pokemon, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*model.Pokemon); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPokemonRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *mockPokemonRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPokemonRepo) DeleteByProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *mockPokemonRepo) AddFile(ctx context.Context, file *model.PokemonFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *mockPokemonRepo) GetFile(ctx context.Context, pokemonID, fileID string) (*model.PokemonFile, error) {
	args := m.Called(ctx, pokemonID, fileID)
	if f, ok := args.Get(0).(*model.PokemonFile); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPokemonRepo) UpdateFile(ctx context.Context, pokemonID, fileID string, updates map[string]any) error {
	args := m.Called(ctx, pokemonID, fileID, updates)
	return args.Error(0)
}

func (m *mockPokemonRepo) DeleteFile(ctx context.Context, pokemonID, fileID string) error {
	args := m.Called(ctx, pokemonID, fileID)
	return args.Error(0)
}

var _ repo.PokemonRepository = (*mockPokemonRepo)(nil)

type mockAssetStore struct{ mock.Mock }

func (m *mockAssetStore) Upload(ctx context.Context, folder, name string, reader io.Reader, size int64, contentType string) (storage.AssetInfo, error) {
	args := m.Called(ctx, folder, name, reader, size, contentType)
	return args.Get(0).(storage.AssetInfo), args.Error(1)
}

func (m *mockAssetStore) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

var _ storage.AssetStore = (*mockAssetStore)(nil)
