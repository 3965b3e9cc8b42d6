package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dashboard/cmd"
	httpapi "dashboard/internal/adapters/in/http"
	"dashboard/internal/adapters/out/postgres"
	"dashboard/internal/adapters/out/session"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/sync/errgroup"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpg.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	e, err := newWebServer(app, configs)
	if err != nil {
		log.Fatalf("Error building web server: %v", err)
	}
	subscriber, err := app.CreateNotificationSubscriber()
	if err != nil {
		log.Fatalf("Error building notification subscriber: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	if subscriber != nil {
		// Notifications only trigger refreshes; losing them must not stop the API.
		g.Go(func() error {
			if err := subscriber.Run(ctx); err != nil {
				logger.Error("Notification subscriber exited", "error", err)
			}
			return nil
		})
	}

	err = g.Wait()
	jobManager.StopAll()
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func newWebServer(app cmd.CompositionRoot, configs cmd.Config) (*echo.Echo, error) {
	doc, err := httpapi.LoadSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := httpapi.RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpapi.HTTPErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(configs.MaxUploadSize))
	e.Use(httpapi.BearerToken(session.WithToken, session.FromBearer))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", httpapi.OpenAPIDocument())
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	httpapi.RegisterHandlers(e, app.CreateServer())
	return e, nil
}
