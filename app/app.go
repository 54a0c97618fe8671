package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"jasit-store/config"
	"jasit-store/libs"
	"jasit-store/middleware"
	"jasit-store/repositories"
	"jasit-store/routes"
	"jasit-store/services"
	"jasit-store/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productCacheTTL = 5 * time.Minute
	sweepInterval   = 10 * time.Minute
)

// App holds the wired dependency graph of the storefront API.
type App struct {
	Router *gin.Engine

	cfg      *config.Config
	log      *zap.Logger
	db       *pgxpool.Pool
	rdb      *redis.Client
	sessions *services.SessionStore
	server   *http.Server
}

func NewApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.ConnectDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := config.RunMigrations(cfg, log); err != nil {
		db.Close()
		return nil, err
	}

	rdb := config.ConnectRedis(ctx, cfg, log)

	storage, err := newStorage(cfg, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	var mailer libs.Mailer
	if cfg.SMTPHost != "" {
		m, err := libs.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
		if err != nil {
			log.Warn("checkout mail disabled", zap.Error(err))
		} else {
			mailer = m
		}
	}

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	denylist := libs.NewTokenDenylist(rdb)
	sessions := services.NewSessionStore(cfg.SessionTTL, log)

	products := services.NewProductService(productRepo, libs.NewProductCache(rdb, productCacheTTL), storage, log)

	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	deps := routes.Dependencies{
		Auth:          services.NewAuthService(userRepo, tokens, denylist, log),
		Profiles:      services.NewProfileService(userRepo),
		Products:      products,
		Cart:          services.NewCartService(products),
		Checkout:      services.NewCheckoutService(userRepo, mailer, log),
		Sessions:      sessions,
		Authenticator: middleware.NewAuthenticator(tokens, denylist, log),
		MaxUploadSize: cfg.MaxUploadSize,
		SecureCookie:  cfg.SessionCookieSecure,
	}
	if _, ok := storage.(*libs.LocalStorage); ok {
		deps.UploadDir = cfg.UploadDir
	}
	routes.SetupRoutes(router, deps)

	return &App{
		Router:   router,
		cfg:      cfg,
		log:      log,
		db:       db,
		rdb:      rdb,
		sessions: sessions,
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

func newStorage(cfg *config.Config, log *zap.Logger) (libs.ImageStorage, error) {
	switch cfg.StorageDriver {
	case "cloudinary":
		storage, err := libs.NewCloudinaryStorage(cfg.CloudinaryURL, cfg.CloudinaryCloudName,
			cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, log)
		if err != nil {
			return nil, err
		}
		return storage, nil
	case "local", "":
		storage, err := libs.NewLocalStorage(cfg.UploadDir, "/uploads")
		if err != nil {
			return nil, err
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

// StartJanitor sweeps idle cart sessions in the background until ctx is
// cancelled.
func (a *App) StartJanitor(ctx context.Context) {
	go a.sessions.RunJanitor(ctx, sweepInterval)
}

// Run serves HTTP and sweeps idle sessions until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	a.StartJanitor(janitorCtx)

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server starting",
			zap.String("addr", a.server.Addr),
			zap.String("env", a.cfg.AppEnv),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", a.cfg.Port)),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case err := <-errCh:
		a.Close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.log.Error("http server shutdown failed", zap.Error(err))
	}
	a.Close()
	return nil
}

// Close releases the database pool and the redis client.
func (a *App) Close() {
	a.db.Close()
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Error("redis close failed", zap.Error(err))
		}
	}
	a.log.Info("application stopped")
}
