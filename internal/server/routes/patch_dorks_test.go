package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
)

func TestEditDorkHandlerBindsParamAndBody(t *testing.T) {
	stub := &stubDB{
		rows: [][]any{
			dorkRowValues(7, "Exposed configs"),
			dorkRowValues(7, "Exposed configuration files"),
		},
	}

	c, rec := newTestContext(http.MethodPatch, "/api/dorks/7",
		`{"title":"Exposed configuration files","risk_level":"medium"}`, stub)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := EditDorkHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	var out struct {
		Message string         `json:"message"`
		Dork    *db.GoogleDork `json:"dork"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Dork == nil || out.Dork.Title != "Exposed configuration files" {
		t.Errorf("unexpected dork in response: %+v", out.Dork)
	}
	if len(stub.execArgs) != 1 {
		t.Fatalf("expected one update, got %d", len(stub.execArgs))
	}
}

func TestEditDorkHandlerRejectsInvalidRiskLevel(t *testing.T) {
	stub := &stubDB{rows: [][]any{dorkRowValues(7, "Exposed configs")}}

	c, rec := newTestContext(http.MethodPatch, "/api/dorks/7",
		`{"risk_level":"extreme"}`, stub)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := EditDorkHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if len(stub.execArgs) != 0 {
		t.Errorf("expected no update on invalid body, got %d", len(stub.execArgs))
	}
}
