package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ims-dao/config"
	"ims-dao/internal/domain/accounttype"
	"ims-dao/internal/domain/user"
	"ims-dao/internal/infrastructure/db/postgres"
	pgaccounttype "ims-dao/internal/infrastructure/db/postgres/accounttype"
	"ims-dao/internal/infrastructure/db/postgres/migrations"
	pguser "ims-dao/internal/infrastructure/db/postgres/user"
	"ims-dao/internal/infrastructure/metrics"
	"ims-dao/internal/infrastructure/password"
	"ims-dao/internal/interface/api/rest"
	"ims-dao/internal/interface/api/rest/middleware"
)

type App struct {
	logger   *zap.Logger
	cfg      config.Config
	db       *pgxpool.Pool
	registry *prometheus.Registry
	mCounter *prometheus.CounterVec
	hasher   *password.Bcrypt

	users        user.Repository
	accountTypes accounttype.Repository
	tx           *postgres.TxRunner
}

func NewApp(ctx context.Context, logger *zap.Logger, cfg config.Config) (*App, error) {
	// metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mCounter := metrics.NewDAOCounter(registry)

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		return nil, fmt.Errorf("DB config error: %w", err)
	}
	if cfg.DB.MigrateOnStart {
		if err = Migrate(ctx, cfg, "up"); err != nil {
			return nil, err
		}
		logger.Info("migrations applied")
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn, cfg.DB)
	if err != nil {
		return nil, err
	}

	hasher := password.NewBcrypt(cfg.Password.BcryptCost)

	return &App{
		logger:       logger,
		cfg:          cfg,
		db:           dbPool,
		registry:     registry,
		mCounter:     mCounter,
		hasher:       hasher,
		users:        pguser.NewRepository(dbPool, hasher, logger, mCounter),
		accountTypes: pgaccounttype.NewRepository(dbPool, logger, mCounter),
		tx:           postgres.NewTxRunner(dbPool),
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *App) Users() user.Repository               { return a.users }
func (a *App) AccountTypes() accounttype.Repository { return a.accountTypes }
func (a *App) Logger() *zap.Logger                  { return a.logger }

// InTx runs fn with repositories bound to one transaction.
func (a *App) InTx(ctx context.Context, fn func(users user.Repository, accountTypes accounttype.Repository) error) error {
	return a.tx.Run(ctx, func(q postgres.Querier) error {
		return fn(
			pguser.NewRepository(q, a.hasher, a.logger, a.mCounter),
			pgaccounttype.NewRepository(q, a.logger, a.mCounter),
		)
	})
}

// Serve runs the ops HTTP server (health and metrics) until ctx is cancelled
// or the process receives SIGINT/SIGTERM.
func (a *App) Serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           a.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) router() *gin.Engine {
	switch a.cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(a.logger, metrics.NewRequestCounter(a.registry)))

	rest.NewOpsController(r, a.logger, a.db, a.registry)

	return r
}

// Migrate runs one goose command (up, down or status) on a short-lived database/sql handle.
func Migrate(ctx context.Context, cfg config.Config, command string) error {
	dsn, err := cfg.DBDSN()
	if err != nil {
		return fmt.Errorf("DB config error: %w", err)
	}
	db, err := migrations.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "up":
		return migrations.Up(ctx, db)
	case "down":
		return migrations.Down(ctx, db)
	case "status":
		return migrations.Status(ctx, db)
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
}
