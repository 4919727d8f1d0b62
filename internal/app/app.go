package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/zachsplat/tournament-backend-new/internal/config"
	"github.com/zachsplat/tournament-backend-new/internal/handler"
	"github.com/zachsplat/tournament-backend-new/internal/middleware"
	"github.com/zachsplat/tournament-backend-new/internal/payment"
	"github.com/zachsplat/tournament-backend-new/internal/repository"
	"github.com/zachsplat/tournament-backend-new/internal/router"
	"github.com/zachsplat/tournament-backend-new/internal/scheduler"
	"github.com/zachsplat/tournament-backend-new/internal/service"
	"github.com/zachsplat/tournament-backend-new/internal/token"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"tourney-gate",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	accountRepo := repository.NewAccountRepo(a.db)
	profileRepo := repository.NewProfileRepo(a.db)
	tournamentRepo := repository.NewTournamentRepo(a.db)
	ticketRepo := repository.NewTicketRepo(a.db)
	bracketRepo := repository.NewBracketRepo(a.db)
	orphanRepo := repository.NewOrphanRepo(a.db)

	codec := token.NewCodec(a.cfg.Checkin.QRSecret)
	payments := payment.NewStripeProvider(a.cfg.Stripe.SecretKey, a.log)

	authService := service.NewAuthService(accountRepo, a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL, a.log)
	accountService := service.NewAccountService(accountRepo)
	profileService := service.NewProfileService(profileRepo, ticketRepo)
	tournamentService := service.NewTournamentService(tournamentRepo, ticketRepo)
	ticketService := service.NewTicketService(
		ticketRepo, profileRepo, tournamentRepo, orphanRepo,
		payments, codec, a.log,
	)
	checkinService := service.NewCheckinService(ticketRepo, codec, a.log)
	bracketService := service.NewBracketService(bracketRepo, ticketRepo, tournamentRepo, a.log)

	a.scheduler = scheduler.New(
		ticketService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		authService,
		profileService,
		tournamentService,
		ticketService,
		checkinService,
		bracketService,
		accountService,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret),
		middleware.RequireAdmin(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
