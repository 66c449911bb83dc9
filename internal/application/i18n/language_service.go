package i18n

import (
	"context"

	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/bojietech/storefront/internal/infrastructure/i18n"
	"go.uber.org/zap"
)

// LanguageStore persists each visitor's chosen language
type LanguageStore interface {
	Get(ctx context.Context, visitorID string) (string, error)
	Set(ctx context.Context, visitorID, language string) error
}

// SetLanguageRequest records a visitor's explicit language choice
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required,min=2,max=10"`
}

// LanguageResponse reports the resolved language and the catalog
type LanguageResponse struct {
	Language     string            `json:"language"`
	Supported    []string          `json:"supported"`
	Translations map[string]string `json:"translations"`
}

// LanguageService resolves which language a visitor sees and serves
// the matching translation catalog. Resolution order: explicit stored
// choice, then Accept-Language negotiation, then the default.
type LanguageService struct {
	bundle *i18n.Bundle
	store  LanguageStore
	logger *zap.Logger
}

// NewLanguageService creates a new LanguageService
func NewLanguageService(bundle *i18n.Bundle, store LanguageStore, logger *zap.Logger) *LanguageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LanguageService{bundle: bundle, store: store, logger: logger}
}

// Resolve picks the language for a request. A store failure falls
// through to header negotiation; language is never worth a 500.
func (s *LanguageService) Resolve(ctx context.Context, visitorID, acceptLanguage string) string {
	if visitorID != "" {
		stored, err := s.store.Get(ctx, visitorID)
		if err != nil {
			s.logger.Warn("language preference load failed", zap.String("visitor_id", visitorID), zap.Error(err))
		} else if stored != "" && s.bundle.IsSupported(stored) {
			return stored
		}
	}
	return s.bundle.Match(acceptLanguage)
}

// Catalog returns the resolved language and its full translation map
func (s *LanguageService) Catalog(ctx context.Context, visitorID, acceptLanguage string) LanguageResponse {
	lang := s.Resolve(ctx, visitorID, acceptLanguage)
	return LanguageResponse{
		Language:     lang,
		Supported:    s.bundle.Supported(),
		Translations: s.bundle.Catalog(lang),
	}
}

// SetLanguage stores an explicit language choice for the visitor
func (s *LanguageService) SetLanguage(ctx context.Context, visitorID string, req SetLanguageRequest) (*LanguageResponse, error) {
	if visitorID == "" {
		return nil, shared.NewDomainError("INVALID_VISITOR", "Visitor ID is required")
	}
	if !s.bundle.IsSupported(req.Language) {
		return nil, shared.NewDomainError("UNSUPPORTED_LANGUAGE", "Language is not supported")
	}
	if err := s.store.Set(ctx, visitorID, req.Language); err != nil {
		return nil, shared.ErrStoreUnavailable
	}

	return &LanguageResponse{
		Language:     req.Language,
		Supported:    s.bundle.Supported(),
		Translations: s.bundle.Catalog(req.Language),
	}, nil
}

// Translate resolves one key in the given language
func (s *LanguageService) Translate(lang, key string) string {
	return s.bundle.Translate(lang, key)
}
