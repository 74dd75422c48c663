package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
	"github.com/PadsterH2012/Idea-Incubator/pkg/cookiex"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
	"github.com/PadsterH2012/Idea-Incubator/pkg/slogx"

	_ "github.com/PadsterH2012/Idea-Incubator/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// LoginPath is where browser clients are redirected when a protected route
// rejects them.
const LoginPath = "/login"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	cookies      *cookiex.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	SessionService  *service.SessionService
	ProjectService  *service.ProjectService
	SettingsService *service.SettingsService
}

func NewRouter(
	cookies *cookiex.Codec,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		cookies:      cookies,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerSettings()
	r.registerProjects()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Idea Incubator API
//	@version		0.1.0
//	@description	Session-authenticated API for managing projects and AI agent settings.
//	@description
//	@description	Authentication uses an httponly session cookie issued by POST /v1/login.
//	@description	Sessions expire a fixed one hour after creation.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// guard returns the middleware chain for a protected route: session check
// first, then per-user rate limiting.
func (r *Router) guard(limit httpx.RateLimitConfig) []httpx.Middleware {
	return []httpx.Middleware{
		httpx.SessionMiddleware(r.cookies, r.AuthService, LoginPath),
		httpx.RateLimitByUser(limit),
	}
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{
		AuthService:    r.AuthService,
		SessionService: r.SessionService,
		Cookies:        r.cookies,
	}
	logoutHandler := &LogoutHandler{
		SessionService: r.SessionService,
		Cookies:        r.cookies,
	}

	// Credential endpoints carry strict limits; login is additionally keyed
	// by username to slow targeted guessing.
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	// Logout is idempotent and unguarded; an invalid cookie just clears.
	r.Mux.Handle("POST /v1/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{AuthService: r.AuthService}

	r.Mux.Handle("GET /v1/profile", httpx.Chain(http.HandlerFunc(h.HandleGet), r.guard(httpx.LenientLimit)...))
	r.Mux.Handle("PUT /v1/profile", httpx.Chain(http.HandlerFunc(h.HandleUpdate), r.guard(httpx.ModerateLimit)...))
}

func (r *Router) registerSettings() {
	appHandler := &AppSettingsHandler{SessionService: r.SessionService}
	providerHandler := &ProviderSettingsHandler{SettingsService: r.SettingsService}
	rolesHandler := &RoleSettingsHandler{SettingsService: r.SettingsService}

	r.Mux.Handle("GET /v1/settings/app", httpx.Chain(http.HandlerFunc(appHandler.HandleGet), r.guard(httpx.LenientLimit)...))
	r.Mux.Handle("PUT /v1/settings/app", httpx.Chain(http.HandlerFunc(appHandler.HandleUpdate), r.guard(httpx.ModerateLimit)...))

	r.Mux.Handle("GET /v1/settings/provider", httpx.Chain(http.HandlerFunc(providerHandler.HandleGet), r.guard(httpx.LenientLimit)...))
	r.Mux.Handle("PUT /v1/settings/provider", httpx.Chain(http.HandlerFunc(providerHandler.HandleUpdate), r.guard(httpx.ModerateLimit)...))

	r.Mux.Handle("GET /v1/settings/roles", httpx.Chain(http.HandlerFunc(rolesHandler.HandleList), r.guard(httpx.LenientLimit)...))
	r.Mux.Handle("PUT /v1/settings/roles/{role}", httpx.Chain(http.HandlerFunc(rolesHandler.HandleUpdate), r.guard(httpx.ModerateLimit)...))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: r.ProjectService}

	r.Mux.Handle("GET /v1/projects", httpx.Chain(http.HandlerFunc(h.HandleList), r.guard(httpx.LenientLimit)...))
	r.Mux.Handle("POST /v1/projects", httpx.Chain(http.HandlerFunc(h.HandleCreate), r.guard(httpx.ModerateLimit)...))
	r.Mux.Handle("GET /v1/projects/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), r.guard(httpx.LenientLimit)...))
	r.Mux.Handle("PUT /v1/projects/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), r.guard(httpx.ModerateLimit)...))
	r.Mux.Handle("DELETE /v1/projects/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), r.guard(httpx.ModerateLimit)...))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
