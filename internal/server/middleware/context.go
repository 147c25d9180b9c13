package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/cache"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/breach"
)

type AppUser struct {
	UserID      string
	Role        string
	Permissions []string
}

// App carries the shared infrastructure handed to every request. DBConn is
// the db.DBTX interface rather than the concrete pool so handlers can run
// against a stub in tests.
type App struct {
	DBConn         db.DBTX
	Queue          *amqp091.Channel
	Key            *keyfunc.Keyfunc
	S3             *s3.Client
	Cache          *cache.Cache
	Breach         *breach.Client
	MasterAPIKey   string
	MasterUserID   string
	MasterUserRole string
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}
