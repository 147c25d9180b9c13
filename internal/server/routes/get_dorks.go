package routes

import (
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetDorksHandler(c echo.Context) error {
	type getDorksParams struct {
		CategoryID int64 `query:"category"`
	}

	params := new(getDorksParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	dorks, err := q.ListDorks(ctx, params.CategoryID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if dorks == nil {
		dorks = []db.GoogleDork{}
	}

	return c.JSON(http.StatusOK, dorks)
}

func GetDorkCategoriesHandler(c echo.Context) error {
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	categories, err := q.ListDorkCategories(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if categories == nil {
		categories = []db.DorkCategory{}
	}

	return c.JSON(http.StatusOK, categories)
}
