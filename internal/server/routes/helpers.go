package routes

import (
	"context"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/graphview"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/query"

	"github.com/google/uuid"
)

func entitySubject(e db.Entity) query.Subject {
	return query.Subject{
		Name:     e.Name,
		Website:  e.Website,
		Location: e.Location,
		Industry: e.Industry,
		Aliases:  e.Aliases,
		Domains:  e.Domains,
	}
}

func toGraphRelationships(rels []db.EntityRelationship) []graphview.Relationship {
	out := make([]graphview.Relationship, len(rels))
	for i, r := range rels {
		out[i] = graphview.Relationship{
			ID:             r.ID,
			FromEntity:     r.FromEntity,
			ToEntity:       r.ToEntity,
			FromEntityName: r.FromEntityName,
			ToEntityName:   r.ToEntityName,
			Type:           r.RelationshipType,
			Confidence:     r.Confidence,
			Strength:       strengthOrDefault(r.Strength),
		}
	}
	return out
}

// entityNetwork returns the distinct ids of every entity sharing an active
// relationship with the given entity, the entity itself included. Cached
// relationship lists and graphs embed the names of both endpoints, so a
// write to one entity stales its neighbors' caches too.
func entityNetwork(ctx context.Context, q *db.Queries, id uuid.UUID) []uuid.UUID {
	ids := []uuid.UUID{id}
	seen := map[uuid.UUID]bool{id: true}

	outgoing, err := q.ListOutgoingRelationships(ctx, id)
	if err != nil {
		return ids
	}
	incoming, err := q.ListIncomingRelationships(ctx, id)
	if err != nil {
		return ids
	}
	for _, r := range append(outgoing, incoming...) {
		for _, endpoint := range []uuid.UUID{r.FromEntity, r.ToEntity} {
			if !seen[endpoint] {
				seen[endpoint] = true
				ids = append(ids, endpoint)
			}
		}
	}
	return ids
}

// strengthOrDefault keeps rows without confidence or strength at the neutral
// 0.5 band once the edge falls back to strength/10.
func strengthOrDefault(s *int) int {
	if s == nil {
		return 5
	}
	return *s
}
