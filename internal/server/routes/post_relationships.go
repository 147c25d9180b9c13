package routes

import (
	"net/http"
	"time"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateRelationshipHandler links two entities. A relationship from an entity
// to itself is rejected before it reaches the database.
func CreateRelationshipHandler(c echo.Context) error {
	type createRelationshipBody struct {
		FromEntity       uuid.UUID  `json:"from_entity" validate:"required"`
		ToEntity         uuid.UUID  `json:"to_entity" validate:"required"`
		RelationshipType string     `json:"relationship_type" validate:"required,oneof=parent_company subsidiary partner competitor supplier customer employee founder investor acquired_by acquired related"`
		Description      string     `json:"description"`
		Confidence       *float64   `json:"confidence" validate:"omitempty,gte=0,lte=1"`
		Strength         *int       `json:"strength" validate:"omitempty,gte=0,lte=10"`
		Source           string     `json:"source"`
		StartDate        *time.Time `json:"start_date"`
		EndDate          *time.Time `json:"end_date"`
	}

	type createRelationshipResponse struct {
		Message      string                 `json:"message"`
		Relationship *db.EntityRelationship `json:"relationship,omitempty"`
	}

	data := new(createRelationshipBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createRelationshipResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createRelationshipResponse{
			Message: "Invalid request body",
		})
	}

	if data.FromEntity == data.ToEntity {
		return c.JSON(http.StatusBadRequest, createRelationshipResponse{
			Message: "An entity cannot have a relationship with itself",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	id, err := q.CreateRelationship(ctx, db.CreateRelationshipParams{
		FromEntity:       data.FromEntity,
		ToEntity:         data.ToEntity,
		RelationshipType: data.RelationshipType,
		Description:      data.Description,
		Confidence:       data.Confidence,
		Strength:         data.Strength,
		Source:           data.Source,
		StartDate:        data.StartDate,
		EndDate:          data.EndDate,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createRelationshipResponse{
			Message: "Internal server error",
		})
	}

	invalidateRelationshipCaches(c, data.FromEntity, data.ToEntity)

	relationship, err := q.GetRelationship(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createRelationshipResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createRelationshipResponse{
		Message:      "Relationship created successfully",
		Relationship: &relationship,
	})
}

func invalidateRelationshipCaches(c echo.Context, entities ...uuid.UUID) {
	ctx := c.Request().Context()
	cache := c.(*middleware.AppContext).App.Cache
	for _, id := range entities {
		cache.Invalidate(ctx, "relationships", id.String())
		cache.Invalidate(ctx, "graph", id.String())
	}
}
