package graphview

import (
	"fmt"
	"math"
	"strings"
)

// Confidence bands and their stroke colors. High-confidence edges animate.
const (
	BandHigh   = "high"
	BandMedium = "medium"
	BandLow    = "low"

	colorHigh   = "#ef4444"
	colorMedium = "#f59e0b"
	colorLow    = "#10b981"
)

// ClassifyConfidence maps a 0.0-1.0 confidence to its visual band.
func ClassifyConfidence(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return BandHigh
	case confidence >= 0.5:
		return BandMedium
	default:
		return BandLow
	}
}

func bandColor(band string) string {
	switch band {
	case BandHigh:
		return colorHigh
	case BandMedium:
		return colorMedium
	default:
		return colorLow
	}
}

func styledEdge(id, source, target string, rel Relationship) Edge {
	confidence := rel.EdgeConfidence()
	band := ClassifyConfidence(confidence)
	return Edge{
		ID:       id,
		Source:   source,
		Target:   target,
		Type:     "smoothstep",
		Animated: band == BandHigh,
		Label:    strings.ReplaceAll(rel.Type, "_", " "),
		Band:     band,
		Style: EdgeStyle{
			Stroke:      bandColor(band),
			StrokeWidth: math.Max(2, confidence*5),
		},
	}
}

// buildEdges produces one edge per relationship record: outgoing edges leave
// the focal node, incoming edges enter it. No deduplication happens here even
// when two records connect the same pair.
func buildEdges(center CenterEntity, outgoing, incoming []Relationship) []Edge {
	edges := make([]Edge, 0, len(outgoing)+len(incoming))
	for _, rel := range outgoing {
		edges = append(edges, styledEdge(
			fmt.Sprintf("edge-out-%d", rel.ID),
			nodeID(center.ID),
			nodeID(rel.ToEntity),
			rel,
		))
	}
	for _, rel := range incoming {
		edges = append(edges, styledEdge(
			fmt.Sprintf("edge-in-%d", rel.ID),
			nodeID(rel.FromEntity),
			nodeID(center.ID),
			rel,
		))
	}
	return edges
}

// FilterByType restricts a relationship list to one relationship type.
// The "all" filter (or empty string) keeps everything.
func FilterByType(rels []Relationship, relType string) []Relationship {
	if relType == "" || relType == "all" {
		return rels
	}
	filtered := make([]Relationship, 0, len(rels))
	for _, rel := range rels {
		if rel.Type == relType {
			filtered = append(filtered, rel)
		}
	}
	return filtered
}

// ObservedTypes returns the union of relationship types across both lists in
// first-seen order, outgoing before incoming. The selectable filter set is
// always derived from the currently fetched edges, never a global enum.
func ObservedTypes(outgoing, incoming []Relationship) []string {
	seen := make(map[string]bool)
	types := make([]string, 0)
	for _, rel := range outgoing {
		if !seen[rel.Type] {
			seen[rel.Type] = true
			types = append(types, rel.Type)
		}
	}
	for _, rel := range incoming {
		if !seen[rel.Type] {
			seen[rel.Type] = true
			types = append(types, rel.Type)
		}
	}
	return types
}
