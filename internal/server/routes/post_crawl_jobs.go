package routes

import (
	"encoding/json"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/queue"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/crawler"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateCrawlJobHandler stores a pending crawl job and hands it to the worker.
func CreateCrawlJobHandler(c echo.Context) error {
	type createCrawlJobBody struct {
		EntityID       *uuid.UUID `json:"entity_id"`
		Platform       string     `json:"platform" validate:"required"`
		TargetUsername string     `json:"target_username" validate:"required"`
		CrawlPosts     bool       `json:"crawl_posts"`
		CrawlFollowers bool       `json:"crawl_followers"`
		MaxPosts       int        `json:"max_posts" validate:"omitempty,gte=1,lte=1000"`
		MaxFollowers   int        `json:"max_followers" validate:"omitempty,gte=1,lte=1000"`
	}

	type createCrawlJobResponse struct {
		Message string       `json:"message"`
		Job     *db.CrawlJob `json:"job,omitempty"`
	}

	data := new(createCrawlJobBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createCrawlJobResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createCrawlJobResponse{
			Message: "Invalid request body",
		})
	}

	if !crawler.ValidPlatform(data.Platform) {
		return c.JSON(http.StatusBadRequest, createCrawlJobResponse{
			Message: "Unsupported platform",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createCrawlJobResponse{
			Message: "Unauthorized",
		})
	}

	if data.MaxPosts == 0 {
		data.MaxPosts = 100
	}
	if data.MaxFollowers == 0 {
		data.MaxFollowers = 100
	}

	targetURL, err := crawler.ProfileURL(crawler.Platform(data.Platform), data.TargetUsername)
	if err != nil {
		return c.JSON(http.StatusBadRequest, createCrawlJobResponse{
			Message: "Unsupported platform",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	id, err := q.CreateCrawlJob(ctx, db.CreateCrawlJobParams{
		EntityID:       data.EntityID,
		Platform:       data.Platform,
		TargetUsername: data.TargetUsername,
		TargetURL:      targetURL,
		CrawlPosts:     data.CrawlPosts,
		CrawlFollowers: data.CrawlFollowers,
		MaxPosts:       data.MaxPosts,
		MaxFollowers:   data.MaxFollowers,
		CreatedBy:      user.UserID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createCrawlJobResponse{
			Message: "Failed to create crawl job",
		})
	}

	msgBytes, err := json.Marshal(queue.CrawlQueueMsg{JobID: id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createCrawlJobResponse{
			Message: "Internal server error",
		})
	}
	if err := queue.PublishFIFO(app.Queue, queue.CrawlQueue, msgBytes); err != nil {
		logger.Error("Failed to publish crawl message", "job_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, createCrawlJobResponse{
			Message: "Failed to queue crawl job",
		})
	}

	job, err := q.GetCrawlJob(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createCrawlJobResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createCrawlJobResponse{
		Message: "Crawl job created successfully",
		Job:     &job,
	})
}
