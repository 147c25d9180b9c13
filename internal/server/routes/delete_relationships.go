package routes

import (
	"errors"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func DeleteRelationshipHandler(c echo.Context) error {
	type deleteRelationshipParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteRelationshipParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid relationship id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid relationship id"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	current, err := q.GetRelationship(ctx, params.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Relationship not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	if err := q.DeleteRelationship(ctx, params.ID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Relationship not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	invalidateRelationshipCaches(c, current.FromEntity, current.ToEntity)

	return c.JSON(http.StatusOK, map[string]string{"message": "Relationship deleted successfully"})
}
