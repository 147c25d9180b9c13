package graphview

import (
	"testing"
)

func floatPtr(f float64) *float64 { return &f }

func TestEdgeStylingByConfidence(t *testing.T) {
	tests := []struct {
		name         string
		confidence   *float64
		strength     int
		wantBand     string
		wantStroke   string
		wantAnimated bool
		wantWidth    float64
	}{
		{
			name:         "high confidence animates red",
			confidence:   floatPtr(0.9),
			wantBand:     BandHigh,
			wantStroke:   "#ef4444",
			wantAnimated: true,
			wantWidth:    4.5,
		},
		{
			name:       "medium confidence amber static",
			confidence: floatPtr(0.6),
			wantBand:   BandMedium,
			wantStroke: "#f59e0b",
			wantWidth:  3.0,
		},
		{
			name:       "low confidence green with width floor",
			confidence: floatPtr(0.2),
			wantBand:   BandLow,
			wantStroke: "#10b981",
			wantWidth:  2,
		},
		{
			name:         "boundary 0.8 is high",
			confidence:   floatPtr(0.8),
			wantBand:     BandHigh,
			wantStroke:   "#ef4444",
			wantAnimated: true,
			wantWidth:    4.0,
		},
		{
			name:       "boundary 0.5 is medium",
			confidence: floatPtr(0.5),
			wantBand:   BandMedium,
			wantStroke: "#f59e0b",
			wantWidth:  2.5,
		},
		{
			name:       "legacy strength derives confidence",
			confidence: nil,
			strength:   6,
			wantBand:   BandMedium,
			wantStroke: "#f59e0b",
			wantWidth:  3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outgoing := []Relationship{{
				ID:           7,
				FromEntity:   testUUID(1),
				ToEntity:     testUUID(2),
				ToEntityName: "Beta",
				Type:         "parent_company",
				Confidence:   tt.confidence,
				Strength:     tt.strength,
			}}

			edges := buildEdges(testCenter(), outgoing, nil)
			if len(edges) != 1 {
				t.Fatalf("expected 1 edge, got %d", len(edges))
			}

			edge := edges[0]
			if edge.Band != tt.wantBand {
				t.Errorf("band = %q, want %q", edge.Band, tt.wantBand)
			}
			if edge.Style.Stroke != tt.wantStroke {
				t.Errorf("stroke = %q, want %q", edge.Style.Stroke, tt.wantStroke)
			}
			if edge.Animated != tt.wantAnimated {
				t.Errorf("animated = %v, want %v", edge.Animated, tt.wantAnimated)
			}
			if edge.Style.StrokeWidth != tt.wantWidth {
				t.Errorf("stroke width = %v, want %v", edge.Style.StrokeWidth, tt.wantWidth)
			}
		})
	}
}

func TestEdgeIdentityAndLabels(t *testing.T) {
	outgoing := []Relationship{outgoingRel(11, testUUID(2), "Beta")}
	incoming := []Relationship{incomingRel(12, testUUID(3), "Gamma")}
	outgoing[0].Type = "parent_company"

	edges := buildEdges(testCenter(), outgoing, incoming)
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}

	out := edges[0]
	if out.ID != "edge-out-11" {
		t.Errorf("outgoing edge id = %q", out.ID)
	}
	if out.Source != nodeID(testUUID(1)) || out.Target != nodeID(testUUID(2)) {
		t.Errorf("outgoing edge endpoints = %q -> %q", out.Source, out.Target)
	}
	if out.Label != "parent company" {
		t.Errorf("label = %q, want underscores replaced", out.Label)
	}

	in := edges[1]
	if in.ID != "edge-in-12" {
		t.Errorf("incoming edge id = %q", in.ID)
	}
	if in.Source != nodeID(testUUID(3)) || in.Target != nodeID(testUUID(1)) {
		t.Errorf("incoming edge endpoints = %q -> %q", in.Source, in.Target)
	}
}

func TestFilterByType(t *testing.T) {
	rels := []Relationship{
		{ID: 1, Type: "partner"},
		{ID: 2, Type: "investor"},
		{ID: 3, Type: "partner"},
	}

	if got := FilterByType(rels, "all"); len(got) != 3 {
		t.Errorf(`filter "all" kept %d of 3`, len(got))
	}
	if got := FilterByType(rels, ""); len(got) != 3 {
		t.Errorf("empty filter kept %d of 3", len(got))
	}

	partners := FilterByType(rels, "partner")
	if len(partners) != 2 || partners[0].ID != 1 || partners[1].ID != 3 {
		t.Errorf("partner filter returned %+v", partners)
	}

	if got := FilterByType(rels, "supplier"); len(got) != 0 {
		t.Errorf("unmatched filter kept %d relationships", len(got))
	}
}

func TestObservedTypes(t *testing.T) {
	outgoing := []Relationship{
		{Type: "partner"},
		{Type: "supplier"},
		{Type: "partner"},
	}
	incoming := []Relationship{
		{Type: "investor"},
		{Type: "supplier"},
	}

	got := ObservedTypes(outgoing, incoming)
	want := []string{"partner", "supplier", "investor"}
	if len(got) != len(want) {
		t.Fatalf("observed types = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("observed types = %v, want %v", got, want)
		}
	}
}
