package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/teamtrack/teamtrack-backend-go/internal/config"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/middleware"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Staff       StaffHandler
	Master      MasterHandler
	Activity    ActivityHandler
	Target      TargetHandler
	Leave       LeaveHandler
	Holiday     HolidayHandler
	WorkingDays WorkingDaysHandler
	Analytics   AnalyticsHandler
	Events      EventsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teamtrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter.Limit).Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/working-days", h.WorkingDays.Get)

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/run-rate", h.Analytics.RunRate)
				r.Get("/consistency", h.Analytics.Consistency)
				r.Get("/bagel-streak", h.Analytics.BagelStreak)
			})

			r.Route("/activities", func(r chi.Router) {
				r.Get("/", h.Activity.List)
				r.Post("/", h.Activity.Upsert)
				r.Get("/{id}", h.Activity.Get)
				r.Delete("/{id}", h.Activity.Delete)
			})

			r.Route("/targets", func(r chi.Router) {
				r.Get("/annual", h.Target.GetAnnual)
				r.Get("/monthly", h.Target.GetMonthly)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/annual", h.Target.SaveAnnual)
					r.Post("/monthly", h.Target.SaveMonthly)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)
				r.Get("/staff/{staffID}", h.Leave.ListByStaff)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Leave.Create)
					r.Put("/{id}", h.Leave.Update)
					r.Delete("/{id}", h.Leave.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)

				// Admin only
				r.With(middleware.AdminOnly).Post("/sync", h.Holiday.Sync)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.Staff.List)
				r.Get("/{id}", h.Staff.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Staff.Create)
					r.Put("/{id}", h.Staff.Update)
					r.Delete("/{id}", h.Staff.Delete)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/service-types", h.Master.ListServiceTypes)
				r.Get("/service-types/{id}", h.Master.GetServiceType)
				r.Get("/rules", h.Master.ListRules)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/service-types", h.Master.CreateServiceType)
					r.Put("/service-types/{id}", h.Master.UpdateServiceType)
					r.Delete("/service-types/{id}", h.Master.DeleteServiceType)
					r.Put("/rules", h.Master.ReplaceRules)
				})
			})

			r.Get("/events/stream", h.Events.Stream)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("teamtrack api\n"))
	})

	return r
}
