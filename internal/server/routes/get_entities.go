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

func GetEntitiesHandler(c echo.Context) error {
	type getEntitiesParams struct {
		Status       string `query:"status"`
		Priority     string `query:"priority"`
		EntityTypeID int64  `query:"entity_type"`
		Search       string `query:"search"`
	}

	params := new(getEntitiesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	entities, err := q.ListEntities(ctx, db.ListEntitiesParams{
		Status:       params.Status,
		Priority:     params.Priority,
		EntityTypeID: params.EntityTypeID,
		Search:       params.Search,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if entities == nil {
		entities = []db.Entity{}
	}

	return c.JSON(http.StatusOK, entities)
}

func GetEntityHandler(c echo.Context) error {
	type getEntityParams struct {
		ID uuid.UUID `param:"id" validate:"required"`
	}

	params := new(getEntityParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid entity id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid entity id"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	entity, err := q.GetEntity(ctx, params.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Entity not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, entity)
}

func GetEntityTypesHandler(c echo.Context) error {
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	types, err := q.ListEntityTypes(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if types == nil {
		types = []db.EntityType{}
	}

	return c.JSON(http.StatusOK, types)
}
