package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/cache"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/storage"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/util"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/graphview"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type graphStats struct {
	TotalRelationships int      `json:"total_relationships"`
	Outgoing           int      `json:"outgoing"`
	Incoming           int      `json:"incoming"`
	RelationshipTypes  []string `json:"relationship_types"`
}

type graphResponse struct {
	Nodes []graphview.Node `json:"nodes"`
	Edges []graphview.Edge `json:"edges"`
	Stats graphStats       `json:"stats"`
}

type getGraphParams struct {
	ID               uuid.UUID `param:"id" validate:"required"`
	Layout           string    `query:"layout"`
	RelationshipType string    `query:"relationship_type"`
	Labels           *bool     `query:"labels"`
}

// GetEntityGraphHandler renders the relationship graph view model around an
// entity. An entity without relationships short-circuits to an empty payload
// without running the layout engine.
func GetEntityGraphHandler(c echo.Context) error {
	params := new(getGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	showLabels := params.Labels == nil || *params.Labels
	cacheKey := cache.Key("graph", params.ID.String(), map[string]string{
		"layout": params.Layout,
		"type":   params.RelationshipType,
		"labels": boolFilter(showLabels),
	})

	var cached graphResponse
	found, err := app.Cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warn("Graph cache read failed", "err", err)
	}
	if found {
		return c.JSON(http.StatusOK, cached)
	}

	response, status, err := buildGraph(c, params, showLabels)
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	if err := app.Cache.Set(ctx, cacheKey, response); err != nil {
		logger.Warn("Graph cache write failed", "err", err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetGraphExportHandler renders the current graph to S3 and returns a
// presigned download link.
func GetGraphExportHandler(c echo.Context) error {
	params := new(getGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	showLabels := params.Labels == nil || *params.Labels
	response, status, err := buildGraph(c, params, showLabels)
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	key, err := util.NewArtifactKey()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	objectKey, err := storage.PutJSON(ctx, app.S3, "exports", key, payload)
	if err != nil {
		logger.Error("Graph export upload failed", "entity_id", params.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to export graph"})
	}

	link, err := storage.GenerateDownloadLink(ctx, app.S3, objectKey)
	if err != nil {
		logger.Error("Graph export link failed", "entity_id", params.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to export graph"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Graph exported successfully",
		"url":     link,
	})
}

func buildGraph(c echo.Context, params *getGraphParams, showLabels bool) (graphResponse, int, error) {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	entity, err := q.GetEntity(ctx, params.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return graphResponse{}, http.StatusNotFound, errors.New("Entity not found")
		}
		return graphResponse{}, http.StatusInternalServerError, errors.New("Internal server error")
	}

	outgoingRows, err := q.ListOutgoingRelationships(ctx, params.ID)
	if err != nil {
		return graphResponse{}, http.StatusInternalServerError, errors.New("Internal server error")
	}
	incomingRows, err := q.ListIncomingRelationships(ctx, params.ID)
	if err != nil {
		return graphResponse{}, http.StatusInternalServerError, errors.New("Internal server error")
	}

	outgoing := graphview.FilterByType(toGraphRelationships(outgoingRows), params.RelationshipType)
	incoming := graphview.FilterByType(toGraphRelationships(incomingRows), params.RelationshipType)

	response := graphResponse{
		Nodes: []graphview.Node{},
		Edges: []graphview.Edge{},
		Stats: graphStats{
			TotalRelationships: len(outgoing) + len(incoming),
			Outgoing:           len(outgoing),
			Incoming:           len(incoming),
			RelationshipTypes:  graphview.ObservedTypes(outgoing, incoming),
		},
	}

	if len(outgoing) == 0 && len(incoming) == 0 {
		return response, http.StatusOK, nil
	}

	center := graphview.CenterEntity{
		ID:       entity.ID,
		Name:     entity.Name,
		TypeName: entity.EntityTypeName,
		Icon:     entity.EntityTypeIcon,
	}
	kind := graphview.ParseLayoutKind(params.Layout)

	nodes, edges := graphview.ComputeLayout(center, outgoing, incoming, kind)
	if !showLabels {
		for i := range edges {
			edges[i].Label = ""
		}
	}

	response.Nodes = nodes
	response.Edges = edges
	return response, http.StatusOK, nil
}

func boolFilter(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
