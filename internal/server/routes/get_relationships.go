package routes

import (
	"errors"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/cache"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type entityRelationshipsResponse struct {
	Outgoing []db.EntityRelationship `json:"outgoing"`
	Incoming []db.EntityRelationship `json:"incoming"`
}

// GetEntityRelationshipsHandler returns the outgoing and incoming
// relationships of an entity. Responses are cached per entity, the key
// carries the entity id so a cached payload can never leak across entities.
func GetEntityRelationshipsHandler(c echo.Context) error {
	type getRelationshipsParams struct {
		ID uuid.UUID `param:"id" validate:"required"`
	}

	params := new(getRelationshipsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid entity id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid entity id"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	cacheKey := cache.Key("relationships", params.ID.String(), nil)
	var cached entityRelationshipsResponse
	found, err := app.Cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warn("Relationship cache read failed", "err", err)
	}
	if found {
		return c.JSON(http.StatusOK, cached)
	}

	q := db.New(app.DBConn)

	if _, err := q.GetEntity(ctx, params.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Entity not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	outgoing, err := q.ListOutgoingRelationships(ctx, params.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	incoming, err := q.ListIncomingRelationships(ctx, params.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	response := entityRelationshipsResponse{
		Outgoing: outgoing,
		Incoming: incoming,
	}
	if response.Outgoing == nil {
		response.Outgoing = []db.EntityRelationship{}
	}
	if response.Incoming == nil {
		response.Incoming = []db.EntityRelationship{}
	}

	if err := app.Cache.Set(ctx, cacheKey, response); err != nil {
		logger.Warn("Relationship cache write failed", "err", err)
	}

	return c.JSON(http.StatusOK, response)
}
