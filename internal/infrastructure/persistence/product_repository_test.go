package persistence

import (
	"context"
	"testing"

	"github.com/bojietech/storefront/internal/domain/catalog"
	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func newStoredProduct(t *testing.T, repo *GormProductRepository, code string, mutate ...func(*catalog.Product)) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(code, "磁吸口红管 "+code, catalog.ProductTypeTube)
	require.NoError(t, err)
	for _, m := range mutate {
		m(p)
	}
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func TestGormProductRepository_CRUD(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))
	ctx := context.Background()

	p := newStoredProduct(t, repo, "LP-001", func(p *catalog.Product) {
		p.FunctionalDesigns = catalog.StringList{"磁吸", "带镜子"}
		p.Dimensions = catalog.Dimensions{
			Capacity:     &catalog.CapacityRange{Min: 3, Max: 5},
			Compartments: 2,
		}
	})

	t.Run("find by id round-trips json columns", func(t *testing.T) {
		found, err := repo.FindByID(ctx, p.ID)

		require.NoError(t, err)
		assert.Equal(t, "LP-001", found.Code)
		assert.Equal(t, catalog.StringList{"磁吸", "带镜子"}, found.FunctionalDesigns)
		require.NotNil(t, found.Dimensions.Capacity)
		assert.Equal(t, 5.0, found.Dimensions.Capacity.Max)
		assert.Equal(t, 2, found.Dimensions.Compartments)
	})

	t.Run("find by code is case-insensitive", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, "lp-001")
		require.NoError(t, err)
		assert.Equal(t, p.ID, found.ID)
	})

	t.Run("missing id maps to ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("update survives a save", func(t *testing.T) {
		require.NoError(t, p.Update("升级版磁吸口红管", "新模具"))
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "升级版磁吸口红管", found.Name)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, p.ID))

		_, err := repo.FindByID(ctx, p.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, p.ID), shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindPopularInStock(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))
	ctx := context.Background()

	newStoredProduct(t, repo, "A", func(p *catalog.Product) { p.SetAvailability(true, 10) })
	newStoredProduct(t, repo, "B", func(p *catalog.Product) { p.SetAvailability(true, 90) })
	newStoredProduct(t, repo, "C", func(p *catalog.Product) { p.SetAvailability(false, 100) })

	popular, err := repo.FindPopularInStock(ctx, 2)

	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, "B", popular[0].Code)
	assert.Equal(t, "A", popular[1].Code)
}

func TestGormProductRepository_DistinctVocabulary(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))
	ctx := context.Background()

	newStoredProduct(t, repo, "A", func(p *catalog.Product) {
		p.TubeType = "口红管/唇釉管"
		p.Material = "AS"
		p.FunctionalDesigns = catalog.StringList{"磁吸"}
		p.Dimensions = catalog.Dimensions{Capacity: &catalog.CapacityRange{Min: 3, Max: 5}, Compartments: 1}
	})
	newStoredProduct(t, repo, "B", func(p *catalog.Product) {
		p.TubeType = "口红管"
		p.Material = "PP"
		p.FunctionalDesigns = catalog.StringList{"卡扣"}
		p.Dimensions = catalog.Dimensions{Capacity: &catalog.CapacityRange{Min: 8, Max: 12}, Compartments: 4}
	})

	vocab, err := repo.DistinctVocabulary(ctx)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"口红管/唇釉管", "口红管"}, vocab.TubeTypes)
	assert.ElementsMatch(t, []string{"AS", "PP"}, vocab.Materials)
	assert.ElementsMatch(t, []string{"磁吸", "卡扣"}, vocab.FunctionalDesigns)
	require.NotNil(t, vocab.Capacity)
	assert.Equal(t, 3.0, vocab.Capacity.Min)
	assert.Equal(t, 12.0, vocab.Capacity.Max)
	require.NotNil(t, vocab.Compartments)
	assert.Equal(t, 1, vocab.Compartments.Min)
	assert.Equal(t, 4, vocab.Compartments.Max)
}

func TestGormProductRepository_Images(t *testing.T) {
	repo := NewGormProductRepository(newTestDB(t))
	ctx := context.Background()

	p := newStoredProduct(t, repo, "LP-001")

	first := &catalog.ProductImage{BaseEntity: shared.NewBaseEntity(), ProductID: p.ID, URL: "/uploads/1.jpg", Kind: catalog.ImageKindMain, SortOrder: 0}
	second := &catalog.ProductImage{BaseEntity: shared.NewBaseEntity(), ProductID: p.ID, URL: "/uploads/2.jpg", Kind: catalog.ImageKindGallery, SortOrder: 1}
	require.NoError(t, repo.SaveImage(ctx, first))
	require.NoError(t, repo.SaveImage(ctx, second))

	t.Run("images load in sort order", func(t *testing.T) {
		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, found.Images, 2)
		assert.Equal(t, "/uploads/1.jpg", found.Images[0].URL)
	})

	t.Run("reorder rewrites sort order", func(t *testing.T) {
		require.NoError(t, repo.ReorderImages(ctx, p.ID, []uuid.UUID{second.ID, first.ID}))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "/uploads/2.jpg", found.Images[0].URL)
	})

	t.Run("reorder with a foreign image id fails", func(t *testing.T) {
		err := repo.ReorderImages(ctx, p.ID, []uuid.UUID{uuid.New()})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete image", func(t *testing.T) {
		require.NoError(t, repo.DeleteImage(ctx, second.ID))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, found.Images, 1)
	})
}
