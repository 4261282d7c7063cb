package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-cms-auth/internal/config"
	"go-cms-auth/internal/handler"
	"go-cms-auth/internal/middleware"
)

// New wires the route table. The public/protected split is fixed here at
// construction time: everything under /api is reachable without a token,
// everything under /my sits behind the auth gate.
func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	userinfoHandler *handler.UserinfoHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/register", authHandler.Register)
		api.Post("/login", authHandler.Login)
	})

	r.Route("/my", func(my chi.Router) {
		my.Use(authMiddleware.RequireAuth)
		my.Get("/userinfo", userinfoHandler.Me)
	})

	return r
}
