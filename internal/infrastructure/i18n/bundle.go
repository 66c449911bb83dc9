// Package i18n loads the embedded translation bundles and matches
// visitor language preferences against the supported locales.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Bundle holds the translation catalogs for all supported languages.
// Catalogs are loaded lazily and cached for the process lifetime.
type Bundle struct {
	defaultLanguage string
	supported       []string
	matcher         language.Matcher
	logger          *zap.Logger

	mu       sync.RWMutex
	catalogs map[string]map[string]string
}

// NewBundle creates a bundle for the given languages. The first
// supported language tag drives golang.org/x/text matching for
// Accept-Language negotiation.
func NewBundle(defaultLanguage string, supported []string, logger *zap.Logger) (*Bundle, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(supported) == 0 {
		return nil, fmt.Errorf("at least one supported language is required")
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("unsupported language %q: %w", lang, err)
		}
		tags = append(tags, tag)
	}

	return &Bundle{
		defaultLanguage: defaultLanguage,
		supported:       supported,
		matcher:         language.NewMatcher(tags),
		logger:          logger,
		catalogs:        make(map[string]map[string]string),
	}, nil
}

// DefaultLanguage returns the fallback language
func (b *Bundle) DefaultLanguage() string {
	return b.defaultLanguage
}

// Supported returns the supported language codes
func (b *Bundle) Supported() []string {
	return b.supported
}

// IsSupported reports whether lang is one of the supported codes
func (b *Bundle) IsSupported(lang string) bool {
	for _, s := range b.supported {
		if s == lang {
			return true
		}
	}
	return false
}

// Match negotiates the best supported language for an Accept-Language
// header value. An empty or unparseable header yields the default.
func (b *Bundle) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return b.defaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.defaultLanguage
	}
	_, index, _ := b.matcher.Match(tags...)
	if index < 0 || index >= len(b.supported) {
		return b.defaultLanguage
	}
	return b.supported[index]
}

// Translate returns the catalog value for key in lang. Unknown keys
// come back unchanged so the caller can render something.
func (b *Bundle) Translate(lang, key string) string {
	catalog := b.catalog(lang)
	if value, ok := catalog[key]; ok {
		return value
	}
	return key
}

// Catalog returns the full translation map for lang. Callers must not
// mutate the returned map.
func (b *Bundle) Catalog(lang string) map[string]string {
	return b.catalog(lang)
}

func (b *Bundle) catalog(lang string) map[string]string {
	if !b.IsSupported(lang) {
		lang = b.defaultLanguage
	}

	b.mu.RLock()
	catalog, ok := b.catalogs[lang]
	b.mu.RUnlock()
	if ok {
		return catalog
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if catalog, ok := b.catalogs[lang]; ok {
		return catalog
	}

	catalog = b.loadCatalog(lang)
	b.catalogs[lang] = catalog
	return catalog
}

// loadCatalog reads an embedded bundle. A missing or malformed bundle
// degrades to an empty catalog so every lookup falls back to the key.
func (b *Bundle) loadCatalog(lang string) map[string]string {
	data, err := localeFS.ReadFile("locales/" + lang + ".json")
	if err != nil {
		b.logger.Warn("translation bundle missing",
			zap.String("language", lang),
			zap.Error(err),
		)
		return map[string]string{}
	}

	var catalog map[string]string
	if err := json.Unmarshal(data, &catalog); err != nil {
		b.logger.Error("translation bundle malformed",
			zap.String("language", lang),
			zap.Error(err),
		)
		return map[string]string{}
	}
	return catalog
}
