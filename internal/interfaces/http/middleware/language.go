package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Language context keys and headers
const (
	LanguageKey     = "language"
	VisitorIDKey    = "visitor_id"
	VisitorIDHeader = "X-Visitor-ID"
	VisitorIDCookie = "visitor_id"
)

// LanguageResolver decides which language a request is served in.
// Implemented by the i18n application service.
type LanguageResolver interface {
	Resolve(ctx context.Context, visitorID, acceptLanguage string) string
}

// ResolveLanguage stores the visitor ID and resolved language in the
// gin context so handlers can localize without re-negotiating.
// Resolution order: the visitor's stored choice, then Accept-Language,
// then the default.
func ResolveLanguage(resolver LanguageResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID := VisitorID(c)
		lang := resolver.Resolve(c.Request.Context(), visitorID, c.GetHeader("Accept-Language"))

		c.Set(VisitorIDKey, visitorID)
		c.Set(LanguageKey, lang)
		c.Writer.Header().Set("Content-Language", lang)

		c.Next()
	}
}

// VisitorID extracts the visitor ID from the request, preferring the
// header over the cookie
func VisitorID(c *gin.Context) string {
	if id := c.GetHeader(VisitorIDHeader); id != "" {
		return id
	}
	if id, err := c.Cookie(VisitorIDCookie); err == nil && id != "" {
		return id
	}
	return ""
}

// GetLanguage retrieves the resolved language from gin.Context
func GetLanguage(c *gin.Context) string {
	if lang, exists := c.Get(LanguageKey); exists {
		if l, ok := lang.(string); ok {
			return l
		}
	}
	return ""
}
