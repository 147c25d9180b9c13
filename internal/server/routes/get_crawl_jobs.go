package routes

import (
	"errors"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func GetCrawlJobsHandler(c echo.Context) error {
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	jobs, err := q.ListCrawlJobs(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if jobs == nil {
		jobs = []db.CrawlJob{}
	}

	return c.JSON(http.StatusOK, jobs)
}

func GetCrawlJobHandler(c echo.Context) error {
	type getCrawlJobParams struct {
		ID uuid.UUID `param:"id" validate:"required"`
	}

	params := new(getCrawlJobParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	job, err := q.GetCrawlJob(ctx, params.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Job not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, job)
}

func GetJobProfilesHandler(c echo.Context) error {
	type getJobProfilesParams struct {
		ID uuid.UUID `param:"id" validate:"required"`
	}

	params := new(getJobProfilesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	if _, err := q.GetCrawlJob(ctx, params.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Job not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	profiles, err := q.ListJobProfiles(ctx, params.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if profiles == nil {
		profiles = []db.SocialProfile{}
	}

	return c.JSON(http.StatusOK, profiles)
}

func GetJobPostsHandler(c echo.Context) error {
	type getJobPostsParams struct {
		ID uuid.UUID `param:"id" validate:"required"`
	}

	params := new(getJobPostsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)
	ctx := c.Request().Context()

	if _, err := q.GetCrawlJob(ctx, params.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Job not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	posts, err := q.ListJobPosts(ctx, params.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if posts == nil {
		posts = []db.SocialPost{}
	}

	return c.JSON(http.StatusOK, posts)
}
