package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	models "schoolapi/model"
)

type CreateClassBody struct {
	Name      string `json:"name"`
	ManagerID uint   `json:"managerId"`
}

type UpdateClassBody struct {
	Name      string `json:"name"`
	ManagerID uint   `json:"managerId"`
}

func fillClassCounts(tx *gorm.DB, class *models.Class) error {
	err := tx.Model(&models.Student{}).
		Where("class_id = ?", class.ID).
		Count(&class.StudentsCount).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Session{}).
		Where("class_id = ?", class.ID).
		Count(&class.SessionsCount).Error
}

// checkManagerFree enforces the manager invariants: the user exists, holds
// a TEACHER or ADMIN role, and does not already manage another class.
func checkManagerFree(tx *gorm.DB, managerID, ignoreClassID uint) error {
	var manager models.User
	if err := tx.First(&manager, managerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Manager not found")
		}
		return err
	}
	if !manager.CanManageClass() {
		return errBadRequest("Manager must be a TEACHER or ADMIN")
	}

	var count int64
	err := tx.Model(&models.Class{}).
		Where("manager_id = ? AND id <> ?", managerID, ignoreClassID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return errConflict("This manager already manages a class")
	}
	return nil
}

func CreateClass(c *gin.Context) {
	var body CreateClassBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Name == "" || body.ManagerID == 0 {
		fail(c, http.StatusBadRequest, "Name and managerId are required")
		return
	}

	class := models.Class{Name: body.Name, ManagerID: body.ManagerID}
	err := db(c).Transaction(func(tx *gorm.DB) error {
		if err := checkManagerFree(tx, body.ManagerID, 0); err != nil {
			return err
		}
		return tx.Create(&class).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, http.StatusConflict, "This manager already manages a class")
			return
		}
		respondError(c, err)
		return
	}

	if err := db(c).Preload("Manager").First(&class, class.ID).Error; err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Class created successfully",
		"data":    class,
	})
}

func GetAllClasses(c *gin.Context) {
	var classes []models.Class
	err := db(c).Preload("Manager").Order("name asc").Find(&classes).Error
	if err != nil {
		serverError(c, err)
		return
	}
	for i := range classes {
		if err := fillClassCounts(db(c), &classes[i]); err != nil {
			serverError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    classes,
	})
}

func GetClassByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var class models.Class
	err := db(c).
		Preload("Manager").
		Preload("Students").
		Preload("Sessions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("date desc")
		}).
		Preload("Sessions.Subject").
		First(&class, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Class not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	if err := fillClassCounts(db(c), &class); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    class,
	})
}

func UpdateClass(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body UpdateClassBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := db(c).Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.First(&class, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("Class not found")
			}
			return err
		}

		updates := map[string]interface{}{}
		if body.Name != "" {
			updates["name"] = body.Name
		}
		if body.ManagerID != 0 && body.ManagerID != class.ManagerID {
			if err := checkManagerFree(tx, body.ManagerID, class.ID); err != nil {
				return err
			}
			updates["manager_id"] = body.ManagerID
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&class).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, http.StatusConflict, "This manager already manages another class")
			return
		}
		respondError(c, err)
		return
	}

	var class models.Class
	if err := db(c).Preload("Manager").First(&class, id).Error; err != nil {
		serverError(c, err)
		return
	}
	if err := fillClassCounts(db(c), &class); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Class updated successfully",
		"data":    class,
	})
}

// DeleteClass refuses to remove a class that still owns students or
// sessions (cascade safety).
func DeleteClass(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := db(c).Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.First(&class, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("Class not found")
			}
			return err
		}
		if err := fillClassCounts(tx, &class); err != nil {
			return err
		}
		if class.StudentsCount > 0 {
			return errBadRequest(fmt.Sprintf("Cannot delete a class with %d student(s)", class.StudentsCount))
		}
		if class.SessionsCount > 0 {
			return errBadRequest(fmt.Sprintf("Cannot delete a class with %d session(s)", class.SessionsCount))
		}
		return tx.Delete(&class).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Class deleted successfully",
	})
}
