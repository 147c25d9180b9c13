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

func EditDorkHandler(c echo.Context) error {
	type editDorkData struct {
		ID          int64   `param:"id" validate:"required,numeric"`
		CategoryID  *int64  `json:"category_id"`
		Title       *string `json:"title"`
		Query       *string `json:"query"`
		Description *string `json:"description"`
		RiskLevel   *string `json:"risk_level" validate:"omitempty,oneof=low medium high critical"`
		IsActive    *bool   `json:"is_active"`
	}

	type editDorkResponse struct {
		Message string         `json:"message"`
		Dork    *db.GoogleDork `json:"dork,omitempty"`
	}

	data := new(editDorkData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editDorkResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editDorkResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	current, err := q.GetDork(ctx, data.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, editDorkResponse{
				Message: "Dork not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, editDorkResponse{
			Message: "Internal server error",
		})
	}

	update := db.UpdateDorkParams{
		ID:          current.ID,
		CategoryID:  current.CategoryID,
		Title:       current.Title,
		Query:       current.Query,
		Description: current.Description,
		RiskLevel:   current.RiskLevel,
		IsActive:    current.IsActive,
	}
	if data.CategoryID != nil {
		update.CategoryID = *data.CategoryID
	}
	if data.Title != nil {
		update.Title = *data.Title
	}
	if data.Query != nil {
		update.Query = *data.Query
	}
	if data.Description != nil {
		update.Description = *data.Description
	}
	if data.RiskLevel != nil {
		update.RiskLevel = *data.RiskLevel
	}
	if data.IsActive != nil {
		update.IsActive = *data.IsActive
	}

	if err := q.UpdateDork(ctx, update); err != nil {
		return c.JSON(http.StatusInternalServerError, editDorkResponse{
			Message: "Internal server error",
		})
	}

	dork, err := q.GetDork(ctx, data.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, editDorkResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, editDorkResponse{
		Message: "Dork updated successfully",
		Dork:    &dork,
	})
}
