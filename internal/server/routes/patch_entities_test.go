package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"

	"github.com/google/uuid"
)

func TestEditEntityHandlerBindsParamAndBody(t *testing.T) {
	id := uuid.New()
	stub := &stubDB{
		rows: [][]any{
			entityRowValues(id, "Acme Corp"),
			entityRowValues(id, "Renamed Corp"),
		},
	}

	c, rec := newTestContext(http.MethodPatch, "/api/dorks/entities/"+id.String(),
		`{"name":"Renamed Corp"}`, stub)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := EditEntityHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	var out struct {
		Message string     `json:"message"`
		Entity  *db.Entity `json:"entity"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "Entity updated successfully" {
		t.Errorf("unexpected message: %q", out.Message)
	}
	if out.Entity == nil || out.Entity.Name != "Renamed Corp" {
		t.Errorf("unexpected entity in response: %+v", out.Entity)
	}

	if len(stub.execArgs) != 1 {
		t.Fatalf("expected one update, got %d", len(stub.execArgs))
	}
	args := stub.execArgs[0]
	if args[0] != id {
		t.Errorf("expected update keyed by %s, got %v", id, args[0])
	}
	if args[1] != "Renamed Corp" {
		t.Errorf("expected patched name in update, got %v", args[1])
	}
	// Fields absent from the body keep their current values.
	if args[13] != "active" {
		t.Errorf("expected status carried over, got %v", args[13])
	}
}

func TestEditEntityHandlerRejectsInvalidPriority(t *testing.T) {
	id := uuid.New()
	stub := &stubDB{rows: [][]any{entityRowValues(id, "Acme Corp")}}

	c, rec := newTestContext(http.MethodPatch, "/api/dorks/entities/"+id.String(),
		`{"priority":"urgent"}`, stub)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := EditEntityHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if len(stub.execArgs) != 0 {
		t.Errorf("expected no update on invalid body, got %d", len(stub.execArgs))
	}
}

func TestEditEntityHandlerEntityNotFound(t *testing.T) {
	stub := &stubDB{}

	c, rec := newTestContext(http.MethodPatch, "/api/dorks/entities/x",
		`{"name":"Renamed Corp"}`, stub)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := EditEntityHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}
