package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/cache"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/queue"
	mid "github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/storage"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/util"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/breach"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	jwksUrl := util.GetEnv("AUTH_URL") + "/jwks"
	k, err := keyfunc.NewDefault([]string{jwksUrl})
	if err != nil {
		logger.Fatal("Failed to load jwks keys", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := pgxpool.New(ctx, util.GetEnv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("Failed to connect to database", "err", err)
	}
	defer conn.Close()

	// Wait for the database before running migrations against it.
	err = util.RetryErrWithContext(ctx, 5, func(ctx context.Context) error {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn("Database not reachable, retrying", "err", err)
			time.Sleep(2 * time.Second)
			return err
		}
		return nil
	})
	if err != nil {
		logger.Fatal("Failed to reach database", "err", err)
	}

	if err := db.Migrate(util.GetEnv("DATABASE_URL")); err != nil {
		logger.Fatal("Failed to run migrations", "err", err)
	}

	que := queue.Init()
	defer que.Close()
	ch, err := que.Channel()
	if err != nil {
		logger.Fatal("Failed to open channel", "err", err)
	}

	if err := queue.SetupQueues(ch, queue.Queues); err != nil {
		logger.Fatal("Failed to set up queues", "err", err)
	}

	s3 := storage.NewS3Client(ctx)

	responseCache := cache.New(ctx, cache.NewCacheParams{
		Addr:     util.GetEnv("REDIS_ADDR"),
		Password: util.GetEnv("REDIS_PASSWORD"),
		DB:       int(util.GetEnvNumeric("REDIS_DB", 0)),
		TTL:      time.Duration(util.GetEnvNumeric("CACHE_TTL_SECONDS", 300)) * time.Second,
	})
	defer responseCache.Close()

	breachClient := breach.NewClient(breach.NewClientParams{
		APIKey: util.GetEnv("HIBP_API_KEY"),
	})

	app := &mid.App{
		DBConn:         conn,
		Queue:          ch,
		Key:            &k,
		S3:             s3,
		Cache:          responseCache,
		Breach:         breachClient,
		MasterAPIKey:   util.GetEnv("MASTER_API_KEY"),
		MasterUserID:   util.GetEnv("MASTER_USER_ID"),
		MasterUserRole: util.GetEnv("MASTER_USER_ROLE"),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("16M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
