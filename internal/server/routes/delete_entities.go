package routes

import (
	"errors"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func DeleteEntityHandler(c echo.Context) error {
	type deleteEntityParams struct {
		ID uuid.UUID `param:"id" validate:"required"`
	}

	params := new(deleteEntityParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid entity id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid entity id"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	// The delete cascades to the entity's relationships, so collect the
	// neighbor ids while the rows still exist.
	network := entityNetwork(ctx, q, params.ID)

	if err := q.DeleteEntity(ctx, params.ID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Entity not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	invalidateRelationshipCaches(c, network...)

	return c.JSON(http.StatusOK, map[string]string{"message": "Entity deleted successfully"})
}
