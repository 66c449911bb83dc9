package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := NewBundle("zh", []string{"zh", "en"}, nil)
	require.NoError(t, err)
	return b
}

func TestBundle_Translate(t *testing.T) {
	b := newTestBundle(t)

	t.Run("chinese catalog", func(t *testing.T) {
		assert.Equal(t, "购物车", b.Translate("zh", "shoppingCart"))
		assert.Equal(t, "货号", b.Translate("zh", "code"))
	})

	t.Run("english catalog", func(t *testing.T) {
		assert.Equal(t, "Shopping Cart", b.Translate("en", "shoppingCart"))
		assert.Equal(t, "Featured Products", b.Translate("en", "featuredProducts"))
	})

	t.Run("unknown key falls back to the key itself", func(t *testing.T) {
		assert.Equal(t, "noSuchKey", b.Translate("zh", "noSuchKey"))
	})

	t.Run("unsupported language uses the default catalog", func(t *testing.T) {
		assert.Equal(t, "购物车", b.Translate("fr", "shoppingCart"))
	})
}

func TestBundle_Match(t *testing.T) {
	b := newTestBundle(t)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header yields default", "", "zh"},
		{"exact english", "en", "en"},
		{"regional english", "en-US,en;q=0.9", "en"},
		{"regional chinese", "zh-CN,zh;q=0.9,en;q=0.8", "zh"},
		{"unsupported falls back to default", "fr-FR,fr;q=0.9", "zh"},
		{"garbage header yields default", ";;;", "zh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Match(tt.header))
		})
	}
}

func TestBundle_Catalog(t *testing.T) {
	b := newTestBundle(t)

	zh := b.Catalog("zh")
	assert.NotEmpty(t, zh)

	en := b.Catalog("en")
	assert.NotEmpty(t, en)

	for key := range zh {
		_, ok := en[key]
		assert.True(t, ok, "key %q missing from english catalog", key)
	}
}

func TestNewBundle_Validation(t *testing.T) {
	_, err := NewBundle("zh", nil, nil)
	assert.Error(t, err)

	_, err = NewBundle("zh", []string{"not a tag !"}, nil)
	assert.Error(t, err)
}
