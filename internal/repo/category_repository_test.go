package repo

import (
	"PokeGallery/internal/model"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedCategory(t *testing.T, db *gorm.DB, projectID, name string) *model.Category {
	t.Helper()
	c := &model.Category{ID: uuid.NewString(), ProjectID: projectID, Name: name, Color: "#00ff00"}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return c
}

func TestCategoryRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	r := NewCategoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@x.com")
	p := seedProject(t, db, owner.ID, "Gen1")
	p2 := seedProject(t, db, owner.ID, "Gen2")

	assert.NoError(t, r.Create(ctx, &model.Category{ID: uuid.NewString(), ProjectID: p.ID, Name: "Grass", Color: "#00aa00"}))
	assert.NoError(t, r.Create(ctx, &model.Category{ID: uuid.NewString(), ProjectID: p.ID, Name: "Fire", Color: "#aa0000"}))
	seedCategory(t, db, p2.ID, "Water")

	// список строго по проекту
	categories, err := r.ListByProject(ctx, p.ID)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)

	c := categories[0]
	c.Name = "Grass types"
	assert.NoError(t, r.Save(ctx, &c))

	got, err := r.GetByID(ctx, c.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Grass types", got.Name)

	assert.NoError(t, r.Delete(ctx, c.ID))
	_, err = r.GetByID(ctx, c.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestCategoryRepository_DeleteByProject(t *testing.T) {
	db := newTestDB(t)
	r := NewCategoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@x.com")
	p := seedProject(t, db, owner.ID, "Gen1")
	keep := seedProject(t, db, owner.ID, "Gen2")

	seedCategory(t, db, p.ID, "Grass")
	seedCategory(t, db, p.ID, "Fire")
	kept := seedCategory(t, db, keep.ID, "Water")

	assert.NoError(t, r.DeleteByProject(ctx, p.ID))

	gone, err := r.ListByProject(ctx, p.ID)
	assert.NoError(t, err)
	assert.Empty(t, gone)

	// соседний проект не задет
	_, err = r.GetByID(ctx, kept.ID)
	assert.NoError(t, err)
}
