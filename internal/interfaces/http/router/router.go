package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router wires the public storefront API and the guarded admin API
// onto one gin engine. Public registrars land under /api/<version>,
// admin registrars under /api/<version>/admin behind the admin
// middleware chain.
type Router struct {
	engine          *gin.Engine
	apiVersion      string
	public          []RouteRegistrar
	admin           []RouteRegistrar
	adminMiddleware []gin.HandlerFunc
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g. "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithAdminMiddleware sets the middleware chain guarding admin routes
func WithAdminMiddleware(mw ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.adminMiddleware = mw
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterPublic adds registrars for the unauthenticated storefront API
func (r *Router) RegisterPublic(registrars ...RouteRegistrar) *Router {
	r.public = append(r.public, registrars...)
	return r
}

// RegisterAdmin adds registrars for the guarded admin API
func (r *Router) RegisterAdmin(registrars ...RouteRegistrar) *Router {
	r.admin = append(r.admin, registrars...)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	admin := api.Group("/admin")
	if len(r.adminMiddleware) > 0 {
		admin.Use(r.adminMiddleware...)
	}
	for _, registrar := range r.admin {
		registrar.RegisterRoutes(admin)
	}
}
