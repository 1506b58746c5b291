package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	database "schoolapi/config"
	"schoolapi/routes"
	"schoolapi/utils"

	models "schoolapi/model"
)

// setup builds a router over a fresh in-memory database. The single open
// connection keeps the shared :memory: store alive for the test's lifetime.
func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Student{},
		&models.Subject{},
		&models.Session{},
		&models.Attendance{},
	)
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	database.DB = db

	r := gin.New()
	routes.Register(r)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decoding response %s: %v", w.Body.String(), err)
		}
	}
	return w, env
}

// mustCreateUser inserts an account directly and returns it.
func mustCreateUser(t *testing.T, email, role string) models.User {
	t.Helper()
	hashed, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user := models.User{
		Firstname: "Test",
		Lastname:  "User",
		Email:     email,
		Password:  hashed,
		Role:      role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("creating user %s: %v", email, err)
	}
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return token
}

func adminToken(t *testing.T) string {
	return tokenFor(t, mustCreateUser(t, "admin@test.io", models.RoleAdmin))
}
