package graphview

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

const (
	centerX = 500
	centerY = 350

	circularRadius = 350
	gridSpacing    = 250
	columnSpacing  = 250

	nodeType = "entity"
)

type relatedInfo struct {
	name     string
	typeName string
	icon     string
}

// relatedSet is an insertion-ordered, deduplicated collection of related
// entities. When an entity id is seen twice the later metadata wins but the
// insertion position is kept.
type relatedSet struct {
	order []uuid.UUID
	info  map[uuid.UUID]relatedInfo
}

func (s *relatedSet) add(id uuid.UUID, info relatedInfo) {
	if _, ok := s.info[id]; !ok {
		s.order = append(s.order, id)
	}
	s.info[id] = info
}

func collectRelated(outgoing, incoming []Relationship) *relatedSet {
	s := &relatedSet{info: make(map[uuid.UUID]relatedInfo)}
	for _, rel := range outgoing {
		s.add(rel.ToEntity, relatedInfo{name: rel.ToEntityName, typeName: "Connected Entity"})
	}
	for _, rel := range incoming {
		s.add(rel.FromEntity, relatedInfo{name: rel.FromEntityName, typeName: "Connected Entity"})
	}
	return s
}

func nodeID(entityID uuid.UUID) string {
	return fmt.Sprintf("entity-%s", entityID)
}

// ComputeLayout places the focal entity and all related entities under the
// given layout strategy and builds one styled edge per relationship record.
// It is a pure function of its inputs: node order follows insertion order of
// the deduplicated related set (outgoing first, then incoming), and edges are
// never deduplicated because each relationship row is a distinct fact.
//
// Callers must not invoke ComputeLayout with zero relationships; the empty
// case is an explicit empty-state upstream.
func ComputeLayout(center CenterEntity, outgoing, incoming []Relationship, kind LayoutKind) ([]Node, []Edge) {
	nodes := []Node{{
		ID:       nodeID(center.ID),
		Type:     nodeType,
		Position: Position{X: centerX, Y: centerY},
		Data: NodeData{
			Label:             center.Name,
			EntityType:        center.TypeName,
			EntityID:          center.ID,
			Icon:              center.Icon,
			IsCurrent:         true,
			RelationshipCount: len(outgoing) + len(incoming),
		},
	}}

	related := collectRelated(outgoing, incoming)

	switch kind {
	case LayoutGrid:
		nodes = append(nodes, gridLayout(related)...)
	case LayoutHierarchical:
		nodes = append(nodes, hierarchicalLayout(related, outgoing, incoming)...)
	case LayoutForce:
		nodes = append(nodes, forceLayout(center, related, outgoing, incoming)...)
	default:
		nodes = append(nodes, circularLayout(related)...)
	}

	return nodes, buildEdges(center, outgoing, incoming)
}

func relatedNode(id uuid.UUID, info relatedInfo, pos Position) Node {
	return Node{
		ID:       nodeID(id),
		Type:     nodeType,
		Position: pos,
		Data: NodeData{
			Label:      info.name,
			EntityType: info.typeName,
			EntityID:   id,
			Icon:       info.icon,
		},
	}
}

// circularLayout places related nodes evenly around a ring centered on the
// focal node.
func circularLayout(related *relatedSet) []Node {
	nodes := make([]Node, 0, len(related.order))
	angleStep := 2 * math.Pi / float64(len(related.order))
	for i, id := range related.order {
		angle := float64(i) * angleStep
		nodes = append(nodes, relatedNode(id, related.info[id], Position{
			X: centerX + circularRadius*math.Cos(angle),
			Y: centerY + circularRadius*math.Sin(angle),
		}))
	}
	return nodes
}

// gridLayout arranges related nodes in a square grid of ceil(sqrt(n)) columns.
func gridLayout(related *relatedSet) []Node {
	nodes := make([]Node, 0, len(related.order))
	cols := int(math.Ceil(math.Sqrt(float64(len(related.order)))))
	for i, id := range related.order {
		row := i / cols
		col := i % cols
		nodes = append(nodes, relatedNode(id, related.info[id], Position{
			X: 200 + float64(col)*gridSpacing,
			Y: 100 + float64(row)*gridSpacing,
		}))
	}
	return nodes
}

// hierarchicalLayout puts outgoing targets in a right-hand column and
// incoming sources in a left-hand column. An incoming source that already
// appears among the outgoing targets keeps its outgoing-column node.
func hierarchicalLayout(related *relatedSet, outgoing, incoming []Relationship) []Node {
	nodes := make([]Node, 0, len(related.order))
	placed := make(map[uuid.UUID]bool, len(related.order))

	for i, rel := range outgoing {
		if placed[rel.ToEntity] {
			continue
		}
		placed[rel.ToEntity] = true
		nodes = append(nodes, relatedNode(rel.ToEntity, related.info[rel.ToEntity], Position{
			X: 800,
			Y: 150 + float64(i)*columnSpacing,
		}))
	}
	for i, rel := range incoming {
		if placed[rel.FromEntity] {
			continue
		}
		placed[rel.FromEntity] = true
		nodes = append(nodes, relatedNode(rel.FromEntity, related.info[rel.FromEntity], Position{
			X: 200,
			Y: 150 + float64(i)*columnSpacing,
		}))
	}
	return nodes
}

// forceLayout runs a fixed number of spring-electrical iterations seeded from
// the circular placement, so the result is deterministic for a given input
// order. The focal node stays pinned at the center.
func forceLayout(center CenterEntity, related *relatedSet, outgoing, incoming []Relationship) []Node {
	const (
		iterations = 50
		springLen  = circularRadius
		repulsion  = 60000.0
		attraction = 0.02
		step       = 0.85
	)

	seed := circularLayout(related)
	if len(seed) < 2 {
		return seed
	}

	pos := make(map[uuid.UUID]Position, len(seed)+1)
	pos[center.ID] = Position{X: centerX, Y: centerY}
	for _, n := range seed {
		pos[n.Data.EntityID] = n.Position
	}

	ids := make([]uuid.UUID, 0, len(seed))
	for _, n := range seed {
		ids = append(ids, n.Data.EntityID)
	}

	neighbors := make(map[uuid.UUID][]uuid.UUID, len(ids))
	for _, rel := range outgoing {
		neighbors[rel.ToEntity] = append(neighbors[rel.ToEntity], center.ID)
	}
	for _, rel := range incoming {
		neighbors[rel.FromEntity] = append(neighbors[rel.FromEntity], center.ID)
	}

	for it := 0; it < iterations; it++ {
		disp := make(map[uuid.UUID]Position, len(ids))

		// Pairwise repulsion between related nodes and against the pinned center.
		for i, a := range ids {
			d := disp[a]
			for j, b := range ids {
				if i == j {
					continue
				}
				dx := pos[a].X - pos[b].X
				dy := pos[a].Y - pos[b].Y
				distSq := dx*dx + dy*dy
				if distSq < 1 {
					distSq = 1
				}
				d.X += dx / distSq * repulsion / math.Sqrt(distSq)
				d.Y += dy / distSq * repulsion / math.Sqrt(distSq)
			}
			dx := pos[a].X - centerX
			dy := pos[a].Y - centerY
			distSq := dx*dx + dy*dy
			if distSq < 1 {
				distSq = 1
			}
			d.X += dx / distSq * repulsion / math.Sqrt(distSq)
			d.Y += dy / distSq * repulsion / math.Sqrt(distSq)
			disp[a] = d
		}

		// Spring attraction along edges toward the ideal spring length.
		for _, a := range ids {
			d := disp[a]
			for _, b := range neighbors[a] {
				dx := pos[b].X - pos[a].X
				dy := pos[b].Y - pos[a].Y
				dist := math.Hypot(dx, dy)
				if dist < 1 {
					dist = 1
				}
				f := attraction * (dist - springLen)
				d.X += dx / dist * f * dist
				d.Y += dy / dist * f * dist
			}
			disp[a] = d
		}

		for _, a := range ids {
			pos[a] = Position{
				X: pos[a].X + disp[a].X*step,
				Y: pos[a].Y + disp[a].Y*step,
			}
		}
	}

	nodes := make([]Node, 0, len(seed))
	for _, n := range seed {
		n.Position = pos[n.Data.EntityID]
		nodes = append(nodes, n)
	}
	return nodes
}
