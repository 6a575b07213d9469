package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	authzhandler "usip/internal/authz/handler"
	"usip/internal/authz/service"
	credentialrepo "usip/internal/credential/repository"
	"usip/internal/devdata"
	healthhandler "usip/internal/health/handler"
	membershiprepo "usip/internal/membership/repository"
	userrepo "usip/internal/user/repository"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	users := userrepo.NewMemoryRepository()
	creds := credentialrepo.NewMemoryRepository()
	memberships := membershiprepo.NewMemoryRepository()
	if err := devdata.Load(context.Background(), users, creds, memberships); err != nil {
		t.Fatalf("load dev data: %v", err)
	}

	svc := service.NewService(creds, users, memberships, nil)
	return NewRouter(Deps{
		Authz:  authzhandler.NewServer(svc, nil),
		Health: healthhandler.NewServer(nil),
	})
}

func TestRouter_Endpoints(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"health live", "/health/live", "", http.StatusOK},
		{"health ready", "/health/ready", "", http.StatusOK},
		{"metrics", "/metrics", "", http.StatusOK},
		{"credential", "/credential", "token:1", http.StatusOK},
		{"credential unauthenticated", "/credential", "", http.StatusUnauthorized},
		{"unknown path", "/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("x-authorization", tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.status {
				t.Errorf("GET %s status = %d, want %d", tt.path, rec.Code, tt.status)
			}
		})
	}
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	router := NewRouter(Deps{
		Authz:  authzhandler.NewServer(service.NewService(credentialrepo.NewMemoryRepository(), userrepo.NewMemoryRepository(), membershiprepo.NewMemoryRepository(), nil), nil),
		Health: healthhandler.NewServer(nil),
	})
	mux := router
	mux.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("handler panic")
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
