package routes

import (
	"errors"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func DeleteDorkHandler(c echo.Context) error {
	type deleteDorkParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteDorkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid dork id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid dork id"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	if err := q.DeleteDork(ctx, params.ID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Dork not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Dork deleted successfully"})
}
