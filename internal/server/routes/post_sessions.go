package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/queue"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/util"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/query"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// CreateSessionHandler materializes the template against the entity, stores a
// pending session and hands it to the worker. Any write failure surfaces as a
// 500, nothing is retried here.
func CreateSessionHandler(c echo.Context) error {
	type createSessionBody struct {
		EntityID   uuid.UUID `json:"entity_id" validate:"required"`
		TemplateID int64     `json:"template_id" validate:"required,numeric"`
	}

	type createSessionResponse struct {
		Message string            `json:"message"`
		Session *db.SearchSession `json:"session,omitempty"`
	}

	data := new(createSessionBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSessionResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSessionResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createSessionResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	entity, err := q.GetEntity(ctx, data.EntityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, createSessionResponse{
				Message: "Entity not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, createSessionResponse{
			Message: "Internal server error",
		})
	}

	template, err := q.GetTemplate(ctx, data.TemplateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, createSessionResponse{
				Message: "Template not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, createSessionResponse{
			Message: "Internal server error",
		})
	}

	executedQuery := query.Materialize(template.QueryTemplate, entitySubject(entity))

	id, err := q.CreateSession(ctx, db.CreateSessionParams{
		EntityID:      entity.ID,
		TemplateID:    template.ID,
		Name:          util.NewSessionName(template.Name, entity.Name),
		ExecutedQuery: executedQuery,
		CreatedBy:     user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createSessionResponse{
			Message: "Failed to create session",
		})
	}

	msgBytes, err := json.Marshal(queue.SessionQueueMsg{SessionID: id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createSessionResponse{
			Message: "Internal server error",
		})
	}
	if err := queue.PublishFIFO(app.Queue, queue.SessionQueue, msgBytes); err != nil {
		logger.Error("Failed to publish session message", "session_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, createSessionResponse{
			Message: "Failed to queue session",
		})
	}

	session, err := q.GetSession(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createSessionResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createSessionResponse{
		Message: "Session created successfully",
		Session: &session,
	})
}
