package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// EditEntityHandler replaces the mutable fields of an entity. Omitted fields
// fall back to their current values.
func EditEntityHandler(c echo.Context) error {
	type editEntityData struct {
		ID           uuid.UUID          `param:"id" validate:"required"`
		Name         *string            `json:"name"`
		EntityTypeID *int64             `json:"entity_type_id"`
		Aliases      *[]string          `json:"aliases"`
		Description  *string            `json:"description"`
		Industry     *string            `json:"industry"`
		Location     *string            `json:"location"`
		FoundedDate  *time.Time         `json:"founded_date"`
		Website      *string            `json:"website"`
		Domains      *[]string          `json:"domains"`
		SocialMedia  *map[string]string `json:"social_media"`
		Tags         *[]string          `json:"tags"`
		Priority     *string            `json:"priority" validate:"omitempty,oneof=low medium high critical"`
		Status       *string            `json:"status" validate:"omitempty,oneof=active inactive archived"`
	}

	type editEntityResponse struct {
		Message string     `json:"message"`
		Entity  *db.Entity `json:"entity,omitempty"`
	}

	data := new(editEntityData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editEntityResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editEntityResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	current, err := q.GetEntity(ctx, data.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, editEntityResponse{
				Message: "Entity not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, editEntityResponse{
			Message: "Internal server error",
		})
	}

	update := db.UpdateEntityParams{
		ID:           current.ID,
		Name:         current.Name,
		EntityTypeID: current.EntityTypeID,
		Aliases:      current.Aliases,
		Description:  current.Description,
		Industry:     current.Industry,
		Location:     current.Location,
		FoundedDate:  current.FoundedDate,
		Website:      current.Website,
		Domains:      current.Domains,
		SocialMedia:  current.SocialMedia,
		Tags:         current.Tags,
		Priority:     current.Priority,
		Status:       current.Status,
	}
	if data.Name != nil {
		update.Name = *data.Name
	}
	if data.EntityTypeID != nil {
		update.EntityTypeID = *data.EntityTypeID
	}
	if data.Aliases != nil {
		update.Aliases = *data.Aliases
	}
	if data.Description != nil {
		update.Description = *data.Description
	}
	if data.Industry != nil {
		update.Industry = *data.Industry
	}
	if data.Location != nil {
		update.Location = *data.Location
	}
	if data.FoundedDate != nil {
		update.FoundedDate = data.FoundedDate
	}
	if data.Website != nil {
		update.Website = *data.Website
	}
	if data.Domains != nil {
		update.Domains = *data.Domains
	}
	if data.SocialMedia != nil {
		update.SocialMedia = *data.SocialMedia
	}
	if data.Tags != nil {
		update.Tags = *data.Tags
	}
	if data.Priority != nil {
		update.Priority = *data.Priority
	}
	if data.Status != nil {
		update.Status = *data.Status
	}

	if err := q.UpdateEntity(ctx, update); err != nil {
		return c.JSON(http.StatusInternalServerError, editEntityResponse{
			Message: "Internal server error",
		})
	}

	invalidateRelationshipCaches(c, entityNetwork(ctx, q, data.ID)...)

	entity, err := q.GetEntity(ctx, data.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, editEntityResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, editEntityResponse{
		Message: "Entity updated successfully",
		Entity:  &entity,
	})
}
