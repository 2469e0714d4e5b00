package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fragenspiel/internal/service"
)

func TestRequireAdmin(t *testing.T) {
	authSvc := service.NewAuthService("admin", "pass", "test-key")
	mw := NewAuthMiddleware(authSvc)

	var seenAdminID string
	protected := mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAdminID = GetAdminID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	login, err := authSvc.Login("admin", "pass")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + login.Token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seenAdminID = ""
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusOK && seenAdminID != login.AdminID {
				t.Errorf("admin id in context = %q, want %q", seenAdminID, login.AdminID)
			}
		})
	}
}
