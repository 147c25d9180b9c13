package routes

import (
	"errors"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func GetSessionHandler(c echo.Context) error {
	type getSessionParams struct {
		ID uuid.UUID `param:"id" validate:"required"`
	}

	params := new(getSessionParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid session id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid session id"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	session, err := q.GetSession(ctx, params.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, session)
}

func GetEntitySessionsHandler(c echo.Context) error {
	type getEntitySessionsParams struct {
		ID uuid.UUID `param:"id" validate:"required"`
	}

	params := new(getEntitySessionsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid entity id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid entity id"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	sessions, err := q.ListEntitySessions(ctx, params.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if sessions == nil {
		sessions = []db.SearchSession{}
	}

	return c.JSON(http.StatusOK, sessions)
}

func GetSessionResultsHandler(c echo.Context) error {
	type getSessionResultsParams struct {
		ID uuid.UUID `param:"id" validate:"required"`
	}

	params := new(getSessionResultsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid session id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid session id"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	if _, err := q.GetSession(ctx, params.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	results, err := q.ListSessionResults(ctx, params.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if results == nil {
		results = []db.SearchResult{}
	}

	return c.JSON(http.StatusOK, results)
}
