package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHasPermission(t *testing.T) {
	user := &AppUser{
		UserID:      "u1",
		Role:        "user",
		Permissions: []string{"entity.view", "session.create"},
	}

	if !HasPermission(user, "entity.view") {
		t.Error("expected entity.view to be granted")
	}
	if HasPermission(user, "entity.delete") {
		t.Error("expected entity.delete to be denied")
	}
	if HasPermission(nil, "entity.view") {
		t.Error("nil user must never have permissions")
	}
}

func TestHasAnyPermission(t *testing.T) {
	user := &AppUser{
		UserID:      "u1",
		Role:        "user",
		Permissions: []string{"dork.view"},
	}

	if !HasAnyPermission(user, "dork.update", "dork.view") {
		t.Error("expected any-match to succeed")
	}
	if HasAnyPermission(user, "dork.update", "dork.delete") {
		t.Error("expected any-match to fail")
	}
	if HasAnyPermission(nil, "dork.view") {
		t.Error("nil user must never have permissions")
	}
}

func runPermissionMiddleware(t *testing.T, mw echo.MiddlewareFunc, user *AppUser) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := &AppContext{Context: e.NewContext(req, rec), App: &App{}, User: user}

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name string
		user *AppUser
		want int
	}{
		{"granted", &AppUser{Role: "user", Permissions: []string{"entity.view"}}, http.StatusOK},
		{"denied", &AppUser{Role: "user", Permissions: []string{"dork.view"}}, http.StatusForbidden},
		{"admin bypasses", &AppUser{Role: "admin"}, http.StatusOK},
		{"anonymous", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runPermissionMiddleware(t, RequirePermission("entity.view"), tt.user)
			if rec.Code != tt.want {
				t.Errorf("status=%d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireAnyPermission(t *testing.T) {
	mw := RequireAnyPermission("entity.view", "session.create")

	rec := runPermissionMiddleware(t, mw, &AppUser{Role: "user", Permissions: []string{"session.create"}})
	if rec.Code != http.StatusOK {
		t.Errorf("expected any-match to pass, status=%d", rec.Code)
	}
	rec = runPermissionMiddleware(t, mw, &AppUser{Role: "user", Permissions: []string{"dork.view"}})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected no-match to be forbidden, status=%d", rec.Code)
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(&AppUser{Role: "admin"}) {
		t.Error("admin role not recognized")
	}
	if IsAdmin(&AppUser{Role: "user"}) {
		t.Error("user role treated as admin")
	}
	if IsAdmin(nil) {
		t.Error("nil user treated as admin")
	}
}
