//	@title			ULP Panel API
//	@version		1.0
//	@description	Backend for the ULP listings admin panel: properties, media uploads and quotes.
//
//	@host		localhost:8080
//	@BasePath	/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ulp/panel/internal/auth"
	"github.com/ulp/panel/internal/config"
	"github.com/ulp/panel/internal/contact"
	"github.com/ulp/panel/internal/db"
	"github.com/ulp/panel/internal/development"
	"github.com/ulp/panel/internal/logging"
	appMiddleware "github.com/ulp/panel/internal/middleware"
	"github.com/ulp/panel/internal/property"
	"github.com/ulp/panel/internal/quote"
	"github.com/ulp/panel/internal/server"
	"github.com/ulp/panel/internal/storage"
	"github.com/ulp/panel/internal/upload"
	"github.com/ulp/panel/internal/user"

	_ "github.com/ulp/panel/docs/swagger"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.AppEnv, cfg.LogLevel)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	pool, err := db.Connect(startCtx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL, log); err != nil {
		log.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	// One store client for the life of the process, shared by every request.
	store, err := storage.Open(startCtx, storage.Options{
		Driver:       cfg.StorageDriver,
		Endpoint:     cfg.StorageEndpoint,
		Region:       cfg.StorageRegion,
		AccessKey:    cfg.StorageAccessKey,
		SecretKey:    cfg.StorageSecretKey,
		Bucket:       cfg.StorageBucket,
		PublicBase:   cfg.StoragePublicBase,
		PathStyle:    cfg.StoragePathStyle,
		EnsureBucket: cfg.StorageEnsureBucket,
	}, log)
	if err != nil {
		log.Error("object storage init failed", "error", err)
		os.Exit(1)
	}
	log.Info("object storage ready", "driver", cfg.StorageDriver, "bucket", cfg.StorageBucket)

	// Wire dependencies: repository → service → handler
	userSvc := user.NewService(user.NewRepository(pool))
	authSvc := auth.NewService(userSvc, cfg.JWTSecret, cfg.JWTTTL)

	loginLimiter := appMiddleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateBurst, log)
	defer loginLimiter.Stop()

	router := server.NewRouter(server.Handlers{
		Auth:        auth.NewHandler(authSvc, log),
		User:        user.NewHandler(userSvc, log),
		Property:    property.NewHandler(property.NewService(property.NewRepository(pool)), log),
		Development: development.NewHandler(development.NewService(development.NewRepository(pool)), log),
		Contact:     contact.NewHandler(contact.NewService(contact.NewRepository(pool)), log),
		Upload:      upload.NewHandler(upload.NewService(store, cfg.UploadAllowedContentTypes), log),
		Quote:       quote.NewHandler(quote.NewService(quote.DefaultCatalog())),
	}, server.Options{
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		LoginLimiter:   loginLimiter,
		Log:            log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server listening", "port", cfg.Port, "env", cfg.AppEnv)
		log.Info("swagger UI available", "url", "http://localhost:"+cfg.Port+"/swagger/")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	log.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
