package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"schoolapi/utils"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		userID := c.MustGet(CtxUserID).(uint)
		role := c.MustGet(CtxRole).(string)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	return r
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := newAuthRouter()

	valid, err := utils.GenerateToken(5, "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	// Signed with the JWT_SECRET TestMain sets for this package.
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, utils.Claims{
		UserID: 5,
		Role:   "ADMIN",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"bearer without token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/protected", tt.authHeader)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	r := newAuthRouter()

	token, err := utils.GenerateToken(9, "TEACHER")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := get(r, "/protected", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if body != `{"role":"TEACHER","userId":9}` {
		t.Errorf("body = %s, want attached identity", body)
	}
}
