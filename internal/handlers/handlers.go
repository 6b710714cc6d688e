package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/starsbot/docs"
	"github.com/GlebRadaev/starsbot/internal/config"
	adminhandlers "github.com/GlebRadaev/starsbot/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/starsbot/internal/handlers/auth"
	"github.com/GlebRadaev/starsbot/internal/service"
	"github.com/GlebRadaev/starsbot/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	PendingWithdrawals(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler  AuthHandler
	AdminHandler AdminHandler
	JWTService   auth.JWTServiceInterface
	Admins       auth.Admins
	// AdminAPI mounts /api/admin; it stays off until both a signing secret
	// and an admin password hash are configured.
	AdminAPI bool
}

func New(s *service.Services, cfg *config.Config, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:  authhandlers.New(s.AuthService),
		AdminHandler: adminhandlers.New(s.StatsService, s.WithdrawalService, s.UserService),
		JWTService:   jwtService,
		Admins:       cfg,
		AdminAPI:     cfg.JWTSecret != "" && cfg.AdminPasswordHash != "",
	}
}

// Health answers hosting probes that only check the port is bound.
//
//	@Summary	Health check
//	@Tags		Health
//	@Produce	plain
//	@Success	200	{string}	string	"Bot Alive"
//	@Router		/ [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("Bot Alive")); err != nil {
		zap.L().Warn("failed to write health response", zap.Error(err))
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/", Health)
	r.Head("/", Health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if !h.AdminAPI {
		zap.L().Warn("admin api disabled: JWT_SECRET or ADMIN_PASSWORD_HASH is not set")
		return r
	}
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.JWTService, h.Admins))
			r.Get("/stats", h.AdminHandler.Stats)
			r.Get("/withdrawals/pending", h.AdminHandler.PendingWithdrawals)
			r.Get("/users/{id}", h.AdminHandler.GetUser)
		})
	})

	return r
}
