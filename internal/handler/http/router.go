package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/brightops/peoplehub-backend-go/internal/handler/http/middleware"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	analyticsHandler AnalyticsHandler,
	projectHandler ProjectHandler,
	mailHandler MailHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "peoplehub"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", employeeHandler.ListDepartments)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.CreateDepartment)
					r.Delete("/{id}", employeeHandler.DeleteDepartment)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListTypes)
					r.Get("/{id}", leaveHandler.GetType)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", leaveHandler.CreateType)
						r.Put("/{id}", leaveHandler.UpdateType)
						r.Delete("/{id}", leaveHandler.DisableType)
					})
				})

				r.Route("/applications", func(r chi.Router) {
					r.Post("/", leaveHandler.Apply)
					r.Get("/my", leaveHandler.GetMyApplications)
					r.Get("/{id}", leaveHandler.GetApplication)
					r.Post("/{id}/cancel", leaveHandler.Cancel)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/pending", leaveHandler.ListPending)
						r.Post("/{id}/approve", leaveHandler.Approve)
						r.Post("/{id}/reject", leaveHandler.Reject)
					})
				})

				r.Route("/balances", func(r chi.Router) {
					r.Get("/my", leaveHandler.GetMyBalances)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/initialize", leaveHandler.InitializeYear)
						r.Post("/adjust", leaveHandler.AdjustBalance)
					})
				})
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/annual", analyticsHandler.GetAnnual)
				r.Get("/employees", analyticsHandler.GetEmployeeStats)
				r.Get("/employees/export/csv", analyticsHandler.ExportCSV)
				r.Get("/employees/export/pdf", analyticsHandler.ExportPDF)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Get("/{id}", projectHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", projectHandler.Create)
					r.Put("/{id}", projectHandler.Update)
					r.Delete("/{id}", projectHandler.Delete)
				})
			})

			r.Route("/mail", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/templates", func(r chi.Router) {
					r.Get("/", mailHandler.ListTemplates)
					r.Post("/", mailHandler.CreateTemplate)
					r.Get("/{id}", mailHandler.GetTemplate)
					r.Put("/{id}", mailHandler.UpdateTemplate)
					r.Delete("/{id}", mailHandler.DeleteTemplate)
				})

				r.Route("/smtp", func(r chi.Router) {
					r.Get("/", mailHandler.GetSmtpSettings)
					r.Put("/", mailHandler.SaveSmtpSettings)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
