package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/auth"
	authPostgres "github.com/frahmantamala/tracko/internal/auth/postgres"
	"github.com/frahmantamala/tracko/internal/core/events"
	"github.com/frahmantamala/tracko/internal/dashboard"
	dashboardPostgres "github.com/frahmantamala/tracko/internal/dashboard/postgres"
	"github.com/frahmantamala/tracko/internal/department"
	departmentPostgres "github.com/frahmantamala/tracko/internal/department/postgres"
	"github.com/frahmantamala/tracko/internal/designation"
	designationPostgres "github.com/frahmantamala/tracko/internal/designation/postgres"
	"github.com/frahmantamala/tracko/internal/project"
	projectPostgres "github.com/frahmantamala/tracko/internal/project/postgres"
	"github.com/frahmantamala/tracko/internal/transport/rest"
	"github.com/frahmantamala/tracko/internal/user"
	userPostgres "github.com/frahmantamala/tracko/internal/user/postgres"
	"github.com/frahmantamala/tracko/internal/usertask"
	usertaskPostgres "github.com/frahmantamala/tracko/internal/usertask/postgres"
	"github.com/frahmantamala/tracko/internal/workstream"
	workstreamPostgres "github.com/frahmantamala/tracko/internal/workstream/postgres"
	"github.com/frahmantamala/tracko/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config
	log := deps.Logger
	gdb := deps.GormDB

	eventBus := events.NewEventBus(log)
	eventBus.Subscribe(events.EventTypeTaskFinalSubmit, func(ctx context.Context, event events.Event) error {
		data, ok := events.TaskFinalSubmitFromEvent(event)
		if !ok {
			return nil
		}
		log.Info("audit: tasks final-submitted",
			"event_id", event.EventID(),
			"user_id", data.UserID,
			"locked_count", data.LockedCount,
			"start_date", data.StartDate,
			"end_date", data.EndDate)
		return nil
	})

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authPostgres.NewRepository(gdb), tokenGen, cfg.Security.BCryptCost)

	designationRepo := designationPostgres.NewDesignationRepository(gdb)
	usertaskRepo := usertaskPostgres.NewUserTaskRepository(gdb)

	handlers := rest.Handlers{
		Auth: auth.NewHandler(authService),
		User: user.NewHandler(user.NewService(
			userPostgres.NewUserRepository(gdb), log)),
		Department: department.NewHandler(department.NewService(
			departmentPostgres.NewDepartmentRepository(gdb), log)),
		Designation: designation.NewHandler(designation.NewService(
			designationRepo, designationRepo, log)),
		Workstream: workstream.NewHandler(workstream.NewService(
			workstreamPostgres.NewWorkstreamRepository(gdb), log)),
		Project: project.NewHandler(project.NewService(
			projectPostgres.NewProjectRepository(gdb), log)),
		UserTask: usertask.NewHandler(usertask.NewService(
			usertaskRepo, usertaskRepo, eventBus, log)),
		Dashboard: dashboard.NewHandler(dashboard.NewService(
			dashboardPostgres.NewDashboardRepository(gdb), log)),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB, handlers, log)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Format, config.Logging.Level)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gdb, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gdb,
		Router: chi.NewRouter(),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the existing pool so both share one set of
// connections. TranslateError lets the repositories map unique index
// violations to domain errors.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
