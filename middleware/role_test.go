package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// setIdentity stands in for RequireAuth in these tests.
func setIdentity(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)
	}
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		identity   gin.HandlerFunc
		allowed    []string
		wantStatus int
	}{
		{
			name:       "role in set",
			identity:   setIdentity(1, "TEACHER"),
			allowed:    []string{"ADMIN", "TEACHER"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "role not in set",
			identity:   setIdentity(1, "STUDENT"),
			allowed:    []string{"ADMIN", "TEACHER"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin only",
			identity:   setIdentity(1, "ADMIN"),
			allowed:    []string{"ADMIN"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no identity attached",
			identity:   func(c *gin.Context) {},
			allowed:    []string{"ADMIN"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/gated", tt.identity, RequireRoles(tt.allowed...), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
