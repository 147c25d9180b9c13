package routes

import (
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// CreateDorkHandler adds a reusable dork query to the catalog
func CreateDorkHandler(c echo.Context) error {
	type createDorkBody struct {
		CategoryID  int64  `json:"category_id" validate:"required,numeric"`
		Title       string `json:"title" validate:"required"`
		Query       string `json:"query" validate:"required"`
		Description string `json:"description"`
		RiskLevel   string `json:"risk_level" validate:"omitempty,oneof=low medium high critical"`
	}

	type createDorkResponse struct {
		Message string         `json:"message"`
		Dork    *db.GoogleDork `json:"dork,omitempty"`
	}

	data := new(createDorkBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createDorkResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createDorkResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createDorkResponse{
			Message: "Unauthorized",
		})
	}

	if data.RiskLevel == "" {
		data.RiskLevel = "low"
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	id, err := q.CreateDork(ctx, db.CreateDorkParams{
		CategoryID:  data.CategoryID,
		Title:       data.Title,
		Query:       data.Query,
		Description: data.Description,
		RiskLevel:   data.RiskLevel,
		CreatedBy:   user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createDorkResponse{
			Message: "Internal server error",
		})
	}

	dork, err := q.GetDork(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createDorkResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createDorkResponse{
		Message: "Dork created successfully",
		Dork:    &dork,
	})
}
