package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"

	"github.com/google/uuid"
)

func TestEditRelationshipHandlerBindsParamAndBody(t *testing.T) {
	from := uuid.New()
	to := uuid.New()
	stub := &stubDB{
		rows: [][]any{
			relationshipRowValues(3, from, to),
			relationshipRowValues(3, from, to),
		},
	}

	c, rec := newTestContext(http.MethodPatch, "/api/dorks/relationships/3",
		`{"relationship_type":"competitor","confidence":0.4}`, stub)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := EditRelationshipHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	var out struct {
		Message      string                 `json:"message"`
		Relationship *db.EntityRelationship `json:"relationship"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Relationship == nil {
		t.Fatal("expected relationship in response")
	}

	if len(stub.execArgs) != 1 {
		t.Fatalf("expected one update, got %d", len(stub.execArgs))
	}
	args := stub.execArgs[0]
	if args[0] != int64(3) {
		t.Errorf("expected update keyed by 3, got %v", args[0])
	}
	if args[1] != "competitor" {
		t.Errorf("expected patched type in update, got %v", args[1])
	}
	conf, ok := args[3].(*float64)
	if !ok || conf == nil || *conf != 0.4 {
		t.Errorf("expected patched confidence in update, got %v", args[3])
	}
}

func TestEditRelationshipHandlerRejectsOutOfRangeConfidence(t *testing.T) {
	stub := &stubDB{
		rows: [][]any{relationshipRowValues(3, uuid.New(), uuid.New())},
	}

	c, rec := newTestContext(http.MethodPatch, "/api/dorks/relationships/3",
		`{"confidence":1.5}`, stub)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := EditRelationshipHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if len(stub.execArgs) != 0 {
		t.Errorf("expected no update on invalid body, got %d", len(stub.execArgs))
	}
}
