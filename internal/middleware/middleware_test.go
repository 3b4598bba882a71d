package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/work-suite-api/internal/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	rec := httptest.NewRecorder()
	RequestID(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	RequestID(okHandler()).ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
}

func TestRecoverer_ReturnsServerError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	Recoverer(logger)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	adminToken, _ := jwtManager.Issue(auth.Identity{ID: 1, Role: auth.RoleAdmin})
	employeeToken, _ := jwtManager.Issue(auth.Identity{ID: 2, Role: auth.RoleEmployee})

	protected := Authenticate(jwtManager)(RequireRole(auth.RoleAdmin, auth.RoleManager)(okHandler()))
	readOnly := Authenticate(jwtManager)(RequireAuth(okHandler()))

	tests := []struct {
		name    string
		handler http.Handler
		header  string
		cookie  string
		want    int
	}{
		{"no token", protected, "", "", http.StatusUnauthorized},
		{"invalid token", protected, "Bearer nope", "", http.StatusForbidden},
		{"employee on admin route", protected, "Bearer " + employeeToken, "", http.StatusForbidden},
		{"admin via header", protected, "Bearer " + adminToken, "", http.StatusOK},
		{"admin via cookie", protected, "", adminToken, http.StatusOK},
		{"employee on read route", readOnly, "", employeeToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tt.cookie})
			}

			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d (%s)", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}
