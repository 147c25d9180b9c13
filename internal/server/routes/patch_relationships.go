package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func EditRelationshipHandler(c echo.Context) error {
	type editRelationshipData struct {
		ID               int64      `param:"id" validate:"required,numeric"`
		RelationshipType *string    `json:"relationship_type" validate:"omitempty,oneof=parent_company subsidiary partner competitor supplier customer employee founder investor acquired_by acquired related"`
		Description      *string    `json:"description"`
		Confidence       *float64   `json:"confidence" validate:"omitempty,gte=0,lte=1"`
		Strength         *int       `json:"strength" validate:"omitempty,gte=0,lte=10"`
		Source           *string    `json:"source"`
		StartDate        *time.Time `json:"start_date"`
		EndDate          *time.Time `json:"end_date"`
		IsActive         *bool      `json:"is_active"`
	}

	type editRelationshipResponse struct {
		Message      string                 `json:"message"`
		Relationship *db.EntityRelationship `json:"relationship,omitempty"`
	}

	data := new(editRelationshipData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editRelationshipResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editRelationshipResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	current, err := q.GetRelationship(ctx, data.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, editRelationshipResponse{
				Message: "Relationship not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, editRelationshipResponse{
			Message: "Internal server error",
		})
	}

	update := db.UpdateRelationshipParams{
		ID:               current.ID,
		RelationshipType: current.RelationshipType,
		Description:      current.Description,
		Confidence:       current.Confidence,
		Strength:         current.Strength,
		Source:           current.Source,
		StartDate:        current.StartDate,
		EndDate:          current.EndDate,
		IsActive:         current.IsActive,
	}
	if data.RelationshipType != nil {
		update.RelationshipType = *data.RelationshipType
	}
	if data.Description != nil {
		update.Description = *data.Description
	}
	if data.Confidence != nil {
		update.Confidence = data.Confidence
	}
	if data.Strength != nil {
		update.Strength = data.Strength
	}
	if data.Source != nil {
		update.Source = *data.Source
	}
	if data.StartDate != nil {
		update.StartDate = data.StartDate
	}
	if data.EndDate != nil {
		update.EndDate = data.EndDate
	}
	if data.IsActive != nil {
		update.IsActive = *data.IsActive
	}

	if err := q.UpdateRelationship(ctx, update); err != nil {
		return c.JSON(http.StatusInternalServerError, editRelationshipResponse{
			Message: "Internal server error",
		})
	}

	invalidateRelationshipCaches(c, current.FromEntity, current.ToEntity)

	relationship, err := q.GetRelationship(ctx, data.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, editRelationshipResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, editRelationshipResponse{
		Message:      "Relationship updated successfully",
		Relationship: &relationship,
	})
}
