package directoryhandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"staffdir/internal/domain/auth"
	"staffdir/internal/domain/directory"
	"staffdir/internal/platform/seed"
	"staffdir/internal/transport/http/middleware"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newRouter(t *testing.T, currentUser string) http.Handler {
	t.Helper()
	snapshot, err := seed.Load("", currentUser)
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	store, err := directory.NewStore(snapshot)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	svc := directory.NewService(store)
	handler := NewHandler(svc, 10, 50)
	handler.Now = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC) }

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.CurrentUser(svc))
	handler.RegisterRoutes(r)
	return r
}

func doGet(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v", target, err)
		}
	}
	return rec, env
}

func decodeList(t *testing.T, env envelope) listResponse {
	t.Helper()
	var out listResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return out
}

func TestListDefaultPage(t *testing.T) {
	router := newRouter(t, "u2")
	rec, env := doGet(t, router, "/employees")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Total-Count") != "25" {
		t.Fatalf("expected X-Total-Count 25, got %q", rec.Header().Get("X-Total-Count"))
	}
	list := decodeList(t, env)
	if list.Total != 25 || list.TotalPages != 3 || len(list.Items) != 10 || list.Page != 1 {
		t.Fatalf("unexpected list: total=%d pages=%d items=%d page=%d", list.Total, list.TotalPages, len(list.Items), list.Page)
	}
	if !list.CanViewDetails {
		t.Fatal("expected HR viewer to be able to view details")
	}
}

func TestListLastPageAndPastEnd(t *testing.T) {
	router := newRouter(t, "u2")
	_, env := doGet(t, router, "/employees?page=3")
	if list := decodeList(t, env); len(list.Items) != 5 {
		t.Fatalf("expected 5 items on page 3, got %d", len(list.Items))
	}

	rec, env := doGet(t, router, "/employees?page=4")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 past the end, got %d", rec.Code)
	}
	list := decodeList(t, env)
	if list.Items == nil || len(list.Items) != 0 {
		t.Fatalf("expected empty item list, got %v", list.Items)
	}
}

func TestListSearchFilterSort(t *testing.T) {
	router := newRouter(t, "u2")

	_, env := doGet(t, router, "/employees?q=ENG")
	if list := decodeList(t, env); list.Total != 6 {
		t.Fatalf("expected 6 matches for eng, got %d", list.Total)
	}

	_, env = doGet(t, router, "/employees?department=Engineering&sort=fullName&order=asc")
	list := decodeList(t, env)
	if list.Total != 6 || list.Items[0].FullName != "Aisha Rahman" || list.Items[5].FullName != "Yuki Tanaka" {
		t.Fatalf("unexpected engineering listing: %+v", list.Items)
	}
	if list.ActiveFilters != 1 {
		t.Fatalf("expected one active filter, got %d", list.ActiveFilters)
	}

	_, env = doGet(t, router, "/employees?department=Engineering&sort=fullName&order=desc&pageSize=2")
	list = decodeList(t, env)
	if list.PageSize != 2 || list.TotalPages != 3 || list.Items[0].FullName != "Yuki Tanaka" {
		t.Fatalf("unexpected descending page: %+v", list)
	}
}

func TestListRejectsBadQuery(t *testing.T) {
	router := newRouter(t, "u2")
	for _, target := range []string{"/employees?sort=salary", "/employees?page=zero", "/employees?pageSize=-4"} {
		rec, env := doGet(t, router, target)
		if rec.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != "validation_error" {
			t.Fatalf("%s: expected 400 validation_error, got %d %+v", target, rec.Code, env.Error)
		}
	}
}

func TestListForEmployeeHidesDetailAffordance(t *testing.T) {
	router := newRouter(t, "u3")
	_, env := doGet(t, router, "/employees")
	if decodeList(t, env).CanViewDetails {
		t.Fatal("expected employee viewer not to see detail affordance")
	}
}

func TestFilters(t *testing.T) {
	_, env := doGet(t, newRouter(t, "u2"), "/employees/filters")
	var opts directory.FilterOptions
	if err := json.Unmarshal(env.Data, &opts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(opts.Department) != len(directory.Departments) {
		t.Fatalf("expected every department, got %v", opts.Department)
	}
	if len(opts.WorkArrangement) != 3 || opts.WorkArrangement[0] != "Hybrid" {
		t.Fatalf("unexpected arrangements: %v", opts.WorkArrangement)
	}
}

func TestGetRespectsRoleGate(t *testing.T) {
	tests := []struct {
		name   string
		user   string
		target string
		want   int
	}{
		{name: "hr sees detail", user: "u2", target: "/employees/1", want: http.StatusOK},
		{name: "admin sees detail", user: "u1", target: "/employees/1", want: http.StatusOK},
		{name: "employee forbidden", user: "u3", target: "/employees/1", want: http.StatusForbidden},
		{name: "missing record", user: "u2", target: "/employees/999", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := doGet(t, newRouter(t, tc.user), tc.target)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetReturnsDetail(t *testing.T) {
	_, env := doGet(t, newRouter(t, "u1"), "/employees/1")
	var detail directory.Detail
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.Initials != "SJ" || detail.Employee.FullName != "Sarah Johnson" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if !detail.HasEmergencyContact() || !detail.HasSkills() {
		t.Fatalf("expected optional sections, got %+v", detail)
	}
}

func TestMe(t *testing.T) {
	_, env := doGet(t, newRouter(t, "u3"), "/me")
	var me struct {
		User           auth.User `json:"user"`
		CanViewDetails bool      `json:"canViewDetails"`
	}
	if err := json.Unmarshal(env.Data, &me); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if me.User.Role != auth.RoleEmployee || me.CanViewDetails {
		t.Fatalf("unexpected me payload: %+v", me)
	}
}

func TestExportPDF(t *testing.T) {
	rec, _ := doGet(t, newRouter(t, "u3"), "/employees/export.pdf?department=Sales")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("expected a pdf document")
	}
}
