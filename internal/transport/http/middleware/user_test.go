package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"staffdir/internal/domain/auth"
)

type staticUser struct {
	user auth.User
	err  error
}

func (s staticUser) CurrentUser(context.Context) (auth.User, error) {
	return s.user, s.err
}

func TestCurrentUserSetsUser(t *testing.T) {
	handler := CurrentUser(staticUser{user: auth.User{ID: "u1", Role: auth.RoleHR}})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			t.Fatal("expected user in context")
		}
		if user.ID != "u1" || user.Role != auth.RoleHR {
			t.Fatalf("unexpected user: %+v", user)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCurrentUserSourceFailure(t *testing.T) {
	handler := CurrentUser(staticUser{err: errors.New("boom")})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestRequireDetailAccess(t *testing.T) {
	cases := []struct {
		name string
		role auth.Role
		want int
	}{
		{"admin", auth.RoleAdmin, http.StatusNoContent},
		{"hr", auth.RoleHR, http.StatusNoContent},
		{"employee", auth.RoleEmployee, http.StatusForbidden},
		{"unknown", auth.Role("Guest"), http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := CurrentUser(staticUser{user: auth.User{ID: "u", Role: tc.role}})(
				RequireDetailAccess(http.HandlerFunc(noContent)),
			)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/employees/1", nil))
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestRequireDetailAccessWithoutUser(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireDetailAccess(http.HandlerFunc(noContent)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
