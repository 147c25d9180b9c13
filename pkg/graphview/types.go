package graphview

import (
	"github.com/google/uuid"
)

// LayoutKind selects the node placement strategy for ComputeLayout.
type LayoutKind string

const (
	LayoutCircular     LayoutKind = "circular"
	LayoutGrid         LayoutKind = "grid"
	LayoutHierarchical LayoutKind = "hierarchical"
	LayoutForce        LayoutKind = "force"
)

// ParseLayoutKind maps a query parameter to a LayoutKind, falling back to
// circular for unknown or empty values.
func ParseLayoutKind(s string) LayoutKind {
	switch LayoutKind(s) {
	case LayoutGrid, LayoutHierarchical, LayoutForce:
		return LayoutKind(s)
	default:
		return LayoutCircular
	}
}

// Position is a 2-D canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData is the payload rendered inside a graph node.
type NodeData struct {
	Label             string    `json:"label"`
	EntityType        string    `json:"entity_type,omitempty"`
	EntityID          uuid.UUID `json:"entity_id"`
	Icon              string    `json:"icon,omitempty"`
	IsCurrent         bool      `json:"is_current"`
	RelationshipCount int       `json:"relationship_count,omitempty"`
}

// Node is a positioned view-model entity. Exactly one node in a computed
// layout has Data.IsCurrent set: the focal entity, always at the origin
// position.
type Node struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// EdgeStyle carries the visual encoding derived from relationship confidence.
type EdgeStyle struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Edge is a view-model edge between two node ids. Band is the confidence
// classification ("high", "medium", "low") that drives color and animation.
type Edge struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	Target   string    `json:"target"`
	Type     string    `json:"type"`
	Animated bool      `json:"animated"`
	Label    string    `json:"label,omitempty"`
	Band     string    `json:"band"`
	Style    EdgeStyle `json:"style"`
}

// Relationship is the canonical directed edge shape consumed by the layout
// engine. Confidence is nil when the backing row only carries the legacy
// 0-10 strength score.
type Relationship struct {
	ID             int64
	FromEntity     uuid.UUID
	ToEntity       uuid.UUID
	FromEntityName string
	ToEntityName   string
	Type           string
	Confidence     *float64
	Strength       int
}

// EdgeConfidence returns the 0.0-1.0 confidence for a relationship,
// deriving it from the legacy strength score when no confidence is set.
func (r Relationship) EdgeConfidence() float64 {
	if r.Confidence != nil {
		return *r.Confidence
	}
	return float64(r.Strength) / 10
}

// CenterEntity describes the focal entity of a layout pass.
type CenterEntity struct {
	ID       uuid.UUID
	Name     string
	TypeName string
	Icon     string
}
