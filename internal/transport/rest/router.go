package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/tracko/internal/auth"
	"github.com/frahmantamala/tracko/internal/dashboard"
	"github.com/frahmantamala/tracko/internal/department"
	"github.com/frahmantamala/tracko/internal/designation"
	"github.com/frahmantamala/tracko/internal/project"
	"github.com/frahmantamala/tracko/internal/transport/middleware"
	"github.com/frahmantamala/tracko/internal/transport/swagger"
	"github.com/frahmantamala/tracko/internal/user"
	"github.com/frahmantamala/tracko/internal/usertask"
	"github.com/frahmantamala/tracko/internal/workstream"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/jmoiron/sqlx"
)

type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Department  *department.Handler
	Designation *designation.Handler
	Workstream  *workstream.Handler
	Project     *project.Handler
	UserTask    *usertask.Handler
	Dashboard   *dashboard.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sqlx.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	ownership := &auth.OwnershipPolicy{}

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/login", h.Auth.Login)
		r.Post("/signup", h.Auth.Signup)
		r.Post("/refresh", h.Auth.RefreshToken)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.Me)
			pr.Get("/dashboard/stats", h.Dashboard.Stats)
		})
	})

	// admin-prefixed routes still serve any authenticated caller for reads;
	// the services enforce the role gate on writes
	router.Route("/admin", func(r chi.Router) {
		r.Use(h.Auth.AuthMiddleware)

		r.Route("/users", func(ur chi.Router) {
			ur.Get("/", h.User.List)
			ur.Put("/{id}", h.User.Update)
			ur.Delete("/{id}", h.User.Delete)
		})

		r.Route("/departments", func(dr chi.Router) {
			dr.Get("/", h.Department.List)
			dr.Post("/", h.Department.Create)
			dr.Put("/{id}", h.Department.Update)
			dr.Delete("/{id}", h.Department.Delete)
		})

		r.Route("/designations", func(dr chi.Router) {
			dr.Get("/", h.Designation.List)
			dr.Post("/", h.Designation.Create)
			dr.Put("/{id}", h.Designation.Update)
			dr.Delete("/{id}", h.Designation.Delete)
		})

		r.Route("/workstreams", func(wr chi.Router) {
			wr.Get("/", h.Workstream.List)
			wr.Post("/", h.Workstream.Create)
			wr.Put("/{id}", h.Workstream.Update)
			wr.Delete("/{id}", h.Workstream.Delete)
		})

		r.Route("/projects", func(pr chi.Router) {
			pr.Get("/", h.Project.List)
			pr.Post("/", h.Project.Create)
			pr.Put("/{id}", h.Project.Update)
			pr.Delete("/{id}", h.Project.Delete)
		})

		r.Route("/userTasks", func(tr chi.Router) {
			tr.Get("/", h.UserTask.List)
			tr.Post("/", h.UserTask.Create)
			tr.Post("/finalSubmit", h.UserTask.FinalSubmit)

			tr.Group(func(vr chi.Router) {
				vr.Use(auth.RequireTaskAccess(db, ownership, (*auth.OwnershipPolicy).CanViewTask))
				vr.Get("/{id}", h.UserTask.Get)
			})

			tr.Group(func(mr chi.Router) {
				mr.Use(auth.RequireTaskAccess(db, ownership, (*auth.OwnershipPolicy).CanModifyTask))
				mr.Put("/{id}", h.UserTask.Update)
				mr.Delete("/{id}", h.UserTask.Delete)
			})
		})
	})
}
