package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"schoolapi/middleware"
	models "schoolapi/model"
	"schoolapi/utils"
)

type RegisterBody struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type LoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleTeacher, models.RoleStudent, models.RoleParent:
		return true
	}
	return false
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"firstname": user.Firstname,
		"lastname":  user.Lastname,
		"email":     user.Email,
		"role":      user.Role,
	}
}

// Register creates a new account. Role is optional and defaults to STUDENT.
func Register(c *gin.Context) {
	var body RegisterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.Firstname == "" || body.Lastname == "" || body.Email == "" || body.Password == "" {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if body.Role == "" {
		body.Role = models.RoleStudent
	}
	if !validRole(body.Role) {
		fail(c, http.StatusBadRequest, "Unknown role")
		return
	}

	hashed, err := utils.HashPassword(body.Password)
	if err != nil {
		serverError(c, err)
		return
	}

	user := models.User{
		Firstname: body.Firstname,
		Lastname:  body.Lastname,
		Email:     body.Email,
		Password:  hashed,
		Role:      body.Role,
	}

	err = db(c).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", body.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errConflict("User already exists")
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, http.StatusConflict, "User already exists")
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"data":    userPayload(&user),
	})
}

// Login checks credentials and hands out a token. Unknown email and wrong
// password answer identically so accounts cannot be enumerated.
func Login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Email == "" || body.Password == "" {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	var user models.User
	err := db(c).Where("email = ?", body.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if !utils.CheckPassword(body.Password, user.Password) {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		serverError(c, err)
		return
	}

	data := userPayload(&user)
	data["token"] = token
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    data,
	})
}

// Me returns the account behind the presented token.
func Me(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var user models.User
	err := db(c).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    userPayload(&user),
	})
}
