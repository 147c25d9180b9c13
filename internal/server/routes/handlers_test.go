package routes

import (
	"context"
	"io"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// stubDB satisfies db.DBTX. QueryRow pops from rows and Query pops from
// resultSets in call order; every Exec is recorded and reports one affected
// row.
type stubDB struct {
	rows       [][]any
	resultSets [][][]any
	execSQL    []string
	execArgs   [][]any
}

func (s *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.execSQL = append(s.execSQL, sql)
	s.execArgs = append(s.execArgs, args)
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (s *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if len(s.resultSets) == 0 {
		return &stubRows{}, nil
	}
	set := s.resultSets[0]
	s.resultSets = s.resultSets[1:]
	return &stubRows{rows: set}, nil
}

func (s *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if len(s.rows) == 0 {
		return stubRow{err: pgx.ErrNoRows}
	}
	vals := s.rows[0]
	s.rows = s.rows[1:]
	return stubRow{vals: vals}
}

type stubRow struct {
	vals []any
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(r.vals[i]))
	}
	return nil
}

type stubRows struct {
	rows [][]any
	idx  int
}

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Values() ([]any, error)                       { return nil, nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func (r *stubRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *stubRows) Scan(dest ...any) error {
	return stubRow{vals: r.rows[r.idx-1]}.Scan(dest...)
}

type testValidator struct {
	v *validator.Validate
}

func (t *testValidator) Validate(i any) error {
	return t.v.Struct(i)
}

func newTestContext(method, target, body string, stub *stubDB) (*middleware.AppContext, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return &middleware.AppContext{
		Context: c,
		App:     &middleware.App{DBConn: stub},
		User:    &middleware.AppUser{UserID: "tester", Role: "admin"},
	}, rec
}

// entityRowValues matches the column order of scanEntity.
func entityRowValues(id uuid.UUID, name string) []any {
	now := time.Now()
	return []any{
		id, name, int64(1), "company", "building",
		[]string{}, "", "", "", (*time.Time)(nil),
		"", []string{}, map[string]string{}, []string{},
		"medium", "active", "tester", now, now,
		(*time.Time)(nil), 0, 0,
	}
}

// relationshipRowValues matches the column order of scanRelationship.
func relationshipRowValues(id int64, from, to uuid.UUID) []any {
	now := time.Now()
	conf := 0.9
	return []any{
		id, from, to, "Acme Corp", "Globex",
		"partner", "", &conf, (*int)(nil), "",
		(*time.Time)(nil), (*time.Time)(nil), true, now, now,
	}
}

// dorkRowValues matches the column order of scanDork.
func dorkRowValues(id int64, title string) []any {
	now := time.Now()
	return []any{
		id, int64(1), title, "site:example.com", "", "low",
		true, 0, "tester", now, now,
	}
}

func TestEntityNetworkIncludesNeighbors(t *testing.T) {
	focal := uuid.New()
	neighbor := uuid.New()
	source := uuid.New()

	stub := &stubDB{
		resultSets: [][][]any{
			{relationshipRowValues(1, focal, neighbor)},
			{relationshipRowValues(2, source, focal)},
		},
	}

	ids := entityNetwork(context.Background(), db.New(stub), focal)
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d: %v", len(ids), ids)
	}
	if ids[0] != focal {
		t.Errorf("expected focal entity first, got %s", ids[0])
	}
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen[neighbor] || !seen[source] {
		t.Errorf("expected both endpoints in network, got %v", ids)
	}
}

func TestEntityNetworkWithoutRelationships(t *testing.T) {
	focal := uuid.New()
	stub := &stubDB{}

	ids := entityNetwork(context.Background(), db.New(stub), focal)
	if len(ids) != 1 || ids[0] != focal {
		t.Fatalf("expected only the focal entity, got %v", ids)
	}
}
