package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	database "schoolapi/config"

	models "schoolapi/model"
)

func TestGetAllUsersRoleFilter(t *testing.T) {
	r := setup(t)
	token := adminToken(t)
	mustCreateUser(t, "t1@test.io", models.RoleTeacher)
	mustCreateUser(t, "t2@test.io", models.RoleTeacher)
	mustCreateUser(t, "s1@test.io", models.RoleStudent)

	w, env := doRequest(t, r, http.MethodGet, "/api/users?role=TEACHER", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var users []models.User
	if err := json.Unmarshal(env.Data, &users); err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Errorf("users = %d, want 2 teachers", len(users))
	}
	for _, u := range users {
		if u.Role != models.RoleTeacher {
			t.Errorf("user %s has role %s, want TEACHER", u.Email, u.Role)
		}
	}
}

func TestUsersAdminOnly(t *testing.T) {
	r := setup(t)
	teacher := mustCreateUser(t, "teacher@test.io", models.RoleTeacher)

	w, _ := doRequest(t, r, http.MethodGet, "/api/users", nil, tokenFor(t, teacher))
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestGetUserByIDIncludesManagedClass(t *testing.T) {
	r := setup(t)
	token := adminToken(t)
	teacher := mustCreateUser(t, "teacher@test.io", models.RoleTeacher)
	class := models.Class{Name: "5A", ManagerID: teacher.ID}
	if err := database.DB.Create(&class).Error; err != nil {
		t.Fatal(err)
	}

	w, env := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", teacher.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var data struct {
		ManagedClass *struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"managedClass"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.ManagedClass == nil || data.ManagedClass.Name != "5A" {
		t.Errorf("managedClass = %+v, want nested 5A", data.ManagedClass)
	}
}

func TestDeleteUserManagingClassRefused(t *testing.T) {
	r := setup(t)
	token := adminToken(t)
	teacher := mustCreateUser(t, "teacher@test.io", models.RoleTeacher)
	class := models.Class{Name: "5A", ManagerID: teacher.ID}
	if err := database.DB.Create(&class).Error; err != nil {
		t.Fatal(err)
	}

	w, _ := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", teacher.ID), nil, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	var count int64
	database.DB.Model(&models.User{}).Where("id = ?", teacher.ID).Count(&count)
	if count != 1 {
		t.Error("managing user was deleted")
	}
}

func TestDeleteUser(t *testing.T) {
	r := setup(t)
	token := adminToken(t)
	user := mustCreateUser(t, "bye@test.io", models.RoleParent)

	w, _ := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	w, _ = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), nil, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", w.Code)
	}
}
