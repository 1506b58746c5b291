package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	models "schoolapi/model"
)

// GetAllUsers lists accounts, optionally filtered by ?role=.
func GetAllUsers(c *gin.Context) {
	query := db(c).Preload("ManagedClass")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
	})
}

func GetUserByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var user models.User
	err := db(c).Preload("ManagedClass").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	if user.ManagedClass != nil {
		if err := fillClassCounts(db(c), user.ManagedClass); err != nil {
			serverError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// DeleteUser refuses to remove an account that still manages a class.
func DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := db(c).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("User not found")
			}
			return err
		}

		var managed int64
		err := tx.Model(&models.Class{}).
			Where("manager_id = ?", user.ID).
			Count(&managed).Error
		if err != nil {
			return err
		}
		if managed > 0 {
			return errBadRequest("Cannot delete a user who manages a class")
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
	})
}
