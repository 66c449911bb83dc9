package i18n

import (
	"context"
	"errors"
	"testing"

	"github.com/bojietech/storefront/internal/domain/shared"
	infrai18n "github.com/bojietech/storefront/internal/infrastructure/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLanguageStore struct {
	mock.Mock
}

func (m *MockLanguageStore) Get(ctx context.Context, visitorID string) (string, error) {
	args := m.Called(ctx, visitorID)
	return args.String(0), args.Error(1)
}

func (m *MockLanguageStore) Set(ctx context.Context, visitorID, language string) error {
	args := m.Called(ctx, visitorID, language)
	return args.Error(0)
}

func newService(t *testing.T, store LanguageStore) *LanguageService {
	t.Helper()
	bundle, err := infrai18n.NewBundle("zh", []string{"zh", "en"}, nil)
	require.NoError(t, err)
	return NewLanguageService(bundle, store, nil)
}

func TestLanguageService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("stored choice wins over the header", func(t *testing.T) {
		store := new(MockLanguageStore)
		store.On("Get", ctx, "visitor-1").Return("en", nil)

		svc := newService(t, store)
		assert.Equal(t, "en", svc.Resolve(ctx, "visitor-1", "zh-CN,zh;q=0.9"))
	})

	t.Run("no stored choice falls back to the header", func(t *testing.T) {
		store := new(MockLanguageStore)
		store.On("Get", ctx, "visitor-1").Return("", nil)

		svc := newService(t, store)
		assert.Equal(t, "en", svc.Resolve(ctx, "visitor-1", "en-US,en;q=0.9"))
	})

	t.Run("store failure falls back to the header", func(t *testing.T) {
		store := new(MockLanguageStore)
		store.On("Get", ctx, "visitor-1").Return("", errors.New("connection refused"))

		svc := newService(t, store)
		assert.Equal(t, "en", svc.Resolve(ctx, "visitor-1", "en"))
	})

	t.Run("no visitor id skips the store", func(t *testing.T) {
		store := new(MockLanguageStore)
		svc := newService(t, store)

		assert.Equal(t, "zh", svc.Resolve(ctx, "", ""))
		store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("stale unsupported stored value is ignored", func(t *testing.T) {
		store := new(MockLanguageStore)
		store.On("Get", ctx, "visitor-1").Return("fr", nil)

		svc := newService(t, store)
		assert.Equal(t, "zh", svc.Resolve(ctx, "visitor-1", ""))
	})
}

func TestLanguageService_SetLanguage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a supported language and returns its catalog", func(t *testing.T) {
		store := new(MockLanguageStore)
		store.On("Set", ctx, "visitor-1", "en").Return(nil)

		svc := newService(t, store)
		resp, err := svc.SetLanguage(ctx, "visitor-1", SetLanguageRequest{Language: "en"})
		require.NoError(t, err)

		assert.Equal(t, "en", resp.Language)
		assert.Equal(t, "Shopping Cart", resp.Translations["shoppingCart"])
	})

	t.Run("rejects an unsupported language", func(t *testing.T) {
		store := new(MockLanguageStore)
		svc := newService(t, store)

		_, err := svc.SetLanguage(ctx, "visitor-1", SetLanguageRequest{Language: "fr"})
		assert.Error(t, err)
		store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		store := new(MockLanguageStore)
		store.On("Set", ctx, "visitor-1", "en").Return(errors.New("connection refused"))

		svc := newService(t, store)
		_, err := svc.SetLanguage(ctx, "visitor-1", SetLanguageRequest{Language: "en"})
		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
	})
}

func TestLanguageService_Catalog(t *testing.T) {
	ctx := context.Background()
	store := new(MockLanguageStore)
	store.On("Get", ctx, "visitor-1").Return("zh", nil)

	svc := newService(t, store)
	resp := svc.Catalog(ctx, "visitor-1", "")

	assert.Equal(t, "zh", resp.Language)
	assert.Equal(t, []string{"zh", "en"}, resp.Supported)
	assert.Equal(t, "购物车", resp.Translations["shoppingCart"])
}
