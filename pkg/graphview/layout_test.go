package graphview

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func testUUID(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n
	id[0] = n
	return id
}

func outgoingRel(id int64, to uuid.UUID, name string) Relationship {
	return Relationship{
		ID:           id,
		FromEntity:   testUUID(1),
		ToEntity:     to,
		ToEntityName: name,
		Type:         "partner",
		Strength:     5,
	}
}

func incomingRel(id int64, from uuid.UUID, name string) Relationship {
	return Relationship{
		ID:             id,
		FromEntity:     from,
		ToEntity:       testUUID(1),
		FromEntityName: name,
		Type:           "investor",
		Strength:       5,
	}
}

func testCenter() CenterEntity {
	return CenterEntity{
		ID:       testUUID(1),
		Name:     "Acme Corp",
		TypeName: "Company",
	}
}

func TestCircularLayoutPlacement(t *testing.T) {
	outgoing := []Relationship{
		outgoingRel(1, testUUID(2), "Beta"),
		outgoingRel(2, testUUID(3), "Gamma"),
	}
	incoming := []Relationship{
		incomingRel(3, testUUID(4), "Delta"),
	}

	nodes, _ := ComputeLayout(testCenter(), outgoing, incoming, LayoutCircular)

	if len(nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(nodes))
	}

	focal := nodes[0]
	if !focal.Data.IsCurrent {
		t.Fatalf("first node should be the focal entity")
	}
	if focal.Position.X != 500 || focal.Position.Y != 350 {
		t.Fatalf("focal node not at origin: %+v", focal.Position)
	}
	if focal.Data.RelationshipCount != 3 {
		t.Fatalf("expected relationship count 3, got %d", focal.Data.RelationshipCount)
	}

	angleStep := 2 * math.Pi / 3
	for i, node := range nodes[1:] {
		angle := float64(i) * angleStep
		wantX := 500 + 350*math.Cos(angle)
		wantY := 350 + 350*math.Sin(angle)
		if math.Abs(node.Position.X-wantX) > 1e-9 || math.Abs(node.Position.Y-wantY) > 1e-9 {
			t.Errorf("node %d at (%v, %v), want (%v, %v)", i, node.Position.X, node.Position.Y, wantX, wantY)
		}
		if node.Data.IsCurrent {
			t.Errorf("related node %d marked as current", i)
		}
	}
}

func TestGridLayoutPlacement(t *testing.T) {
	tests := []struct {
		name     string
		related  int
		wantCols int
	}{
		{name: "single node", related: 1, wantCols: 1},
		{name: "perfect square", related: 4, wantCols: 2},
		{name: "ragged grid", related: 5, wantCols: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outgoing := make([]Relationship, 0, tt.related)
			for i := 0; i < tt.related; i++ {
				outgoing = append(outgoing, outgoingRel(int64(i+1), testUUID(byte(i+2)), fmt.Sprintf("e%d", i)))
			}

			nodes, _ := ComputeLayout(testCenter(), outgoing, nil, LayoutGrid)
			if len(nodes) != tt.related+1 {
				t.Fatalf("expected %d nodes, got %d", tt.related+1, len(nodes))
			}

			positions := make(map[Position]bool)
			for i, node := range nodes[1:] {
				if positions[node.Position] {
					t.Fatalf("node %d shares a position: %+v", i, node.Position)
				}
				positions[node.Position] = true

				row := i / tt.wantCols
				col := i % tt.wantCols
				want := Position{X: 200 + float64(col)*250, Y: 100 + float64(row)*250}
				if node.Position != want {
					t.Errorf("node %d at %+v, want %+v", i, node.Position, want)
				}
			}
		})
	}
}

func TestHierarchicalLayoutDedupesSharedEntity(t *testing.T) {
	shared := testUUID(2)
	outgoing := []Relationship{
		outgoingRel(1, shared, "Beta"),
		outgoingRel(2, testUUID(3), "Gamma"),
	}
	incoming := []Relationship{
		incomingRel(3, shared, "Beta"),
		incomingRel(4, testUUID(4), "Delta"),
	}

	nodes, edges := ComputeLayout(testCenter(), outgoing, incoming, LayoutHierarchical)

	if len(nodes) != 4 {
		t.Fatalf("expected 4 nodes (focal + 3 distinct related), got %d", len(nodes))
	}

	var sharedNodes []Node
	for _, node := range nodes {
		if node.Data.EntityID == shared {
			sharedNodes = append(sharedNodes, node)
		}
	}
	if len(sharedNodes) != 1 {
		t.Fatalf("shared entity rendered %d times, want 1", len(sharedNodes))
	}
	if sharedNodes[0].Position.X != 800 {
		t.Fatalf("shared entity placed at x=%v, want the outgoing column at x=800", sharedNodes[0].Position.X)
	}

	// Edges survive untouched even with shared endpoints.
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(edges))
	}
}

func TestHierarchicalColumns(t *testing.T) {
	outgoing := []Relationship{
		outgoingRel(1, testUUID(2), "Beta"),
		outgoingRel(2, testUUID(3), "Gamma"),
	}
	incoming := []Relationship{
		incomingRel(3, testUUID(4), "Delta"),
	}

	nodes, _ := ComputeLayout(testCenter(), outgoing, incoming, LayoutHierarchical)

	byID := make(map[uuid.UUID]Node)
	for _, node := range nodes {
		byID[node.Data.EntityID] = node
	}

	if got := byID[testUUID(2)].Position; got != (Position{X: 800, Y: 150}) {
		t.Errorf("first outgoing target at %+v", got)
	}
	if got := byID[testUUID(3)].Position; got != (Position{X: 800, Y: 400}) {
		t.Errorf("second outgoing target at %+v", got)
	}
	if got := byID[testUUID(4)].Position; got != (Position{X: 200, Y: 150}) {
		t.Errorf("incoming source at %+v", got)
	}
}

func TestRelatedEntityDedupeLastSeenWins(t *testing.T) {
	shared := testUUID(2)
	outgoing := []Relationship{
		{ID: 1, FromEntity: testUUID(1), ToEntity: shared, ToEntityName: "Old Name", Type: "partner", Strength: 5},
	}
	incoming := []Relationship{
		{ID: 2, FromEntity: shared, ToEntity: testUUID(1), FromEntityName: "New Name", Type: "investor", Strength: 5},
	}

	nodes, _ := ComputeLayout(testCenter(), outgoing, incoming, LayoutCircular)

	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[1].Data.Label != "New Name" {
		t.Fatalf("expected last-seen metadata to win, got label %q", nodes[1].Data.Label)
	}
}

func TestEdgeCountPreservedRegardlessOfSharedEndpoints(t *testing.T) {
	shared := testUUID(2)
	outgoing := []Relationship{
		outgoingRel(1, shared, "Beta"),
		outgoingRel(2, shared, "Beta"),
	}
	incoming := []Relationship{
		incomingRel(3, shared, "Beta"),
	}

	for _, kind := range []LayoutKind{LayoutCircular, LayoutGrid, LayoutHierarchical, LayoutForce} {
		_, edges := ComputeLayout(testCenter(), outgoing, incoming, kind)
		if len(edges) != 3 {
			t.Errorf("%s: expected 3 edges, got %d", kind, len(edges))
		}
	}
}

func TestForceLayoutDeterministicAndPinsFocal(t *testing.T) {
	outgoing := []Relationship{
		outgoingRel(1, testUUID(2), "Beta"),
		outgoingRel(2, testUUID(3), "Gamma"),
		outgoingRel(3, testUUID(4), "Delta"),
	}
	incoming := []Relationship{
		incomingRel(4, testUUID(5), "Epsilon"),
	}

	first, _ := ComputeLayout(testCenter(), outgoing, incoming, LayoutForce)
	second, _ := ComputeLayout(testCenter(), outgoing, incoming, LayoutForce)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("force layout is not deterministic for identical input")
	}
	if first[0].Position != (Position{X: 500, Y: 350}) {
		t.Fatalf("focal node moved to %+v", first[0].Position)
	}

	positions := make(map[Position]bool)
	for _, node := range first {
		if positions[node.Position] {
			t.Fatalf("two nodes collapsed onto %+v", node.Position)
		}
		positions[node.Position] = true
	}
}

func TestParseLayoutKind(t *testing.T) {
	tests := []struct {
		in   string
		want LayoutKind
	}{
		{in: "circular", want: LayoutCircular},
		{in: "grid", want: LayoutGrid},
		{in: "hierarchical", want: LayoutHierarchical},
		{in: "force", want: LayoutForce},
		{in: "", want: LayoutCircular},
		{in: "spiral", want: LayoutCircular},
	}

	for _, tt := range tests {
		if got := ParseLayoutKind(tt.in); got != tt.want {
			t.Errorf("ParseLayoutKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
