package routes

import (
	"errors"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/query"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func GetTemplatesHandler(c echo.Context) error {
	type getTemplatesParams struct {
		EntityTypeID int64 `query:"entity_type"`
	}

	params := new(getTemplatesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	templates, err := q.ListTemplates(ctx, params.EntityTypeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if templates == nil {
		templates = []db.SearchTemplate{}
	}

	return c.JSON(http.StatusOK, templates)
}

// GetTemplatePreviewHandler materializes a template against an entity without
// creating a session.
func GetTemplatePreviewHandler(c echo.Context) error {
	type previewParams struct {
		ID         uuid.UUID `param:"id" validate:"required"`
		TemplateID int64     `query:"template_id" validate:"required,numeric"`
	}

	type previewResponse struct {
		TemplateID    int64  `json:"template_id"`
		TemplateName  string `json:"template_name"`
		QueryTemplate string `json:"query_template"`
		Preview       string `json:"preview"`
		SearchURL     string `json:"search_url"`
	}

	params := new(previewParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	entity, err := q.GetEntity(ctx, params.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Entity not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	template, err := q.GetTemplate(ctx, params.TemplateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Template not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	preview := query.Materialize(template.QueryTemplate, entitySubject(entity))

	return c.JSON(http.StatusOK, previewResponse{
		TemplateID:    template.ID,
		TemplateName:  template.Name,
		QueryTemplate: template.QueryTemplate,
		Preview:       preview,
		SearchURL:     query.SearchURL(preview),
	})
}
