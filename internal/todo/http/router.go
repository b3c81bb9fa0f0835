package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"

	_ "github.com/aussiebroadwan/todo/api/todo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	TodoService *service.TodoService
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Logging wraps recovery so a panic is logged with the request id.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recoverer,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTodos()
	r.registerSystem()

	r.Mux.Handle("/swagger/",
		httpx.Chain(httpSwagger.Handler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.HandleFunc("/", notFoundHandler)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Todo API
//	@version					0.1.0
//	@description				Personal todo lists with email/password accounts.
//	@description
//	@description				Log in to obtain an HS256 bearer token, then send it on every /api/todos request.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/todo
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authenticated(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier, r.AuthService),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Register - strict per IP
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Login - strict per IP + email so one address can't lock out a whole NAT
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("GET /api/auth/me", r.authenticated(http.HandlerFunc(h.HandleMe), httpx.ModerateLimit))
}

func (r *Router) registerTodos() {
	h := &TodosHandler{TodoService: r.TodoService}

	r.Mux.Handle("POST /api/todos", r.authenticated(http.HandlerFunc(h.HandleCreate), httpx.LenientLimit))
	r.Mux.Handle("GET /api/todos", r.authenticated(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /api/todos/{id}", r.authenticated(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /api/todos/{id}", r.authenticated(http.HandlerFunc(h.HandleUpdate), httpx.LenientLimit))
	r.Mux.Handle("DELETE /api/todos/{id}", r.authenticated(http.HandlerFunc(h.HandleDelete), httpx.LenientLimit))
	r.Mux.Handle("PATCH /api/todos/{id}/toggle", r.authenticated(http.HandlerFunc(h.HandleToggle), httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	// Monitoring may poll often
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
