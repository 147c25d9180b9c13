package routes

import (
	"net/http"
	"time"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// CreateEntityHandler creates a new research entity
func CreateEntityHandler(c echo.Context) error {
	type createEntityBody struct {
		Name         string            `json:"name" validate:"required"`
		EntityTypeID int64             `json:"entity_type_id" validate:"required,numeric"`
		Aliases      []string          `json:"aliases"`
		Description  string            `json:"description"`
		Industry     string            `json:"industry"`
		Location     string            `json:"location"`
		FoundedDate  *time.Time        `json:"founded_date"`
		Website      string            `json:"website"`
		Domains      []string          `json:"domains"`
		SocialMedia  map[string]string `json:"social_media"`
		Tags         []string          `json:"tags"`
		Priority     string            `json:"priority" validate:"omitempty,oneof=low medium high critical"`
		Status       string            `json:"status" validate:"omitempty,oneof=active inactive archived"`
	}

	type createEntityResponse struct {
		Message string     `json:"message"`
		Entity  *db.Entity `json:"entity,omitempty"`
	}

	data := new(createEntityBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createEntityResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createEntityResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createEntityResponse{
			Message: "Unauthorized",
		})
	}

	if data.Priority == "" {
		data.Priority = "medium"
	}
	if data.Status == "" {
		data.Status = "active"
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	id, err := q.CreateEntity(ctx, db.CreateEntityParams{
		Name:         data.Name,
		EntityTypeID: data.EntityTypeID,
		Aliases:      data.Aliases,
		Description:  data.Description,
		Industry:     data.Industry,
		Location:     data.Location,
		FoundedDate:  data.FoundedDate,
		Website:      data.Website,
		Domains:      data.Domains,
		SocialMedia:  data.SocialMedia,
		Tags:         data.Tags,
		Priority:     data.Priority,
		Status:       data.Status,
		CreatedBy:    user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createEntityResponse{
			Message: "Internal server error",
		})
	}

	entity, err := q.GetEntity(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createEntityResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createEntityResponse{
		Message: "Entity created successfully",
		Entity:  &entity,
	})
}
