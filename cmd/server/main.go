package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/appname-greeter/internal/config"
	"github.com/janisto/appname-greeter/internal/http/greeting"
	"github.com/janisto/appname-greeter/internal/http/routes"
	"github.com/janisto/appname-greeter/internal/platform/humaapi"
	applog "github.com/janisto/appname-greeter/internal/platform/logging"
	appmiddleware "github.com/janisto/appname-greeter/internal/platform/middleware"
	"github.com/janisto/appname-greeter/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func newRouter(cfg config.Config) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For. Only deploy behind a
		// trusted reverse proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	routes.Register(humaapi.New(router, Version), cfg)
	return router
}

func newServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// service names this process in log entries: APP_NAME when set, the API
// title otherwise.
func service(cfg config.Config) applog.Service {
	name := humaapi.Title
	if cfg.AppName != nil && *cfg.AppName != "" {
		name = *cfg.AppName
	}
	return applog.Service{Name: name, Version: Version}
}

func main() {
	ctx := context.Background()
	cfg, cfgErr := config.Load()
	applog.Init(service(cfg))
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(ctx, "logger sync error", err)
		}
	}()

	if cfgErr != nil {
		applog.LogFatal(ctx, "config load failed", cfgErr)
	}
	if cfg.AppName == nil {
		applog.LogWarn(ctx, "APP_NAME is not set", zap.String("placeholder", greeting.MissingName))
	}

	srv := newServer(cfg, newRouter(cfg))

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(ctx, "server listening", zap.String("addr", srv.Addr), zap.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(ctx, "listen failed", err, zap.String("addr", srv.Addr))
		_ = applog.Sync()
		os.Exit(1)
	case <-stop:
		applog.LogInfo(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(ctx, "server exited")
}
