package routes

import (
	"errors"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/storage"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// DeleteCrawlJobHandler cancels a job that has not finished yet, and deletes
// it once it has reached a terminal state.
func DeleteCrawlJobHandler(c echo.Context) error {
	type deleteCrawlJobParams struct {
		ID uuid.UUID `param:"id" validate:"required"`
	}

	params := new(deleteCrawlJobParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	job, err := q.GetCrawlJob(ctx, params.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Job not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	if job.Status == db.JobStatusPending || job.Status == db.JobStatusRunning {
		if err := q.CancelCrawlJob(ctx, params.ID); err != nil && !errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Crawl job cancelled"})
	}

	if err := q.DeleteCrawlJob(ctx, params.ID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Job not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	// The archived crawl payload goes with the job.
	app := c.(*middleware.AppContext).App
	if job.ArtifactKey != "" && app.S3 != nil {
		if err := storage.DeleteFile(ctx, app.S3, job.ArtifactKey); err != nil {
			logger.Warn("[Crawler] Failed to delete crawl archive", "job_id", job.ID, "err", err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Crawl job deleted"})
}
