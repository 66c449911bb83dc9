package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appcatalog "github.com/bojietech/storefront/internal/application/catalog"
	"github.com/bojietech/storefront/internal/domain/catalog"
	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCatalogEngine(repo catalog.ProductRepository) *gin.Engine {
	engine := gin.New()
	h := NewCatalogHandler(appcatalog.NewBrowseService(repo, nil))
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func newProduct(t *testing.T, code, name string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(code, name, catalog.ProductTypeTube)
	require.NoError(t, err)
	return p
}

func TestCatalogHandler_Browse(t *testing.T) {
	t.Run("returns a page wrapped in the envelope", func(t *testing.T) {
		products := []catalog.Product{*newProduct(t, "LP-001", "口红管"), *newProduct(t, "LP-002", "唇釉管")}
		repo := new(MockProductRepository)
		repo.On("FindAll", mock.Anything).Return(products, nil)

		w := httptest.NewRecorder()
		newCatalogEngine(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products?page=1&page_size=12", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), "LP-001")
		assert.Contains(t, w.Body.String(), `"layout"`)
	})

	t.Run("rejects an unknown sort key", func(t *testing.T) {
		repo := new(MockProductRepository)

		w := httptest.NewRecorder()
		newCatalogEngine(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products?sort=cheapest", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "FindAll", mock.Anything)
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	t.Run("serves the detail view", func(t *testing.T) {
		product := newProduct(t, "LP-001", "口红管")
		repo := new(MockProductRepository)
		repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		w := httptest.NewRecorder()
		newCatalogEngine(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/"+product.ID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "口红管")
	})

	t.Run("unknown product is a 404 with the wire code", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockProductRepository)
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		newCatalogEngine(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})

	t.Run("malformed ID is a 400", func(t *testing.T) {
		repo := new(MockProductRepository)

		w := httptest.NewRecorder()
		newCatalogEngine(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler_FilterOptions(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("DistinctVocabulary", mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	newCatalogEngine(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/filter-options", nil))

	// Vocabulary failures fall back to the static panel, never an error
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
