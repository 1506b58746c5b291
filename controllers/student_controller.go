package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	models "schoolapi/model"
)

type CreateStudentBody struct {
	Firstname string `json:"firstname"`
	ClassID   uint   `json:"classId"`
}

type UpdateStudentBody struct {
	Firstname string `json:"firstname"`
	ClassID   uint   `json:"classId"`
}

func classExists(tx *gorm.DB, classID uint) error {
	var count int64
	if err := tx.Model(&models.Class{}).Where("id = ?", classID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errNotFound("Class not found")
	}
	return nil
}

func CreateStudent(c *gin.Context) {
	var body CreateStudentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Firstname == "" || body.ClassID == 0 {
		fail(c, http.StatusBadRequest, "Firstname and classId are required")
		return
	}

	student := models.Student{Firstname: body.Firstname, ClassID: body.ClassID}
	err := db(c).Transaction(func(tx *gorm.DB) error {
		if err := classExists(tx, body.ClassID); err != nil {
			return err
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Student created successfully",
		"data":    student,
	})
}

func GetAllStudents(c *gin.Context) {
	var students []models.Student
	err := db(c).Preload("Class").Preload("Class.Manager").Find(&students).Error
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    students,
	})
}

func GetStudentByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var student models.Student
	err := db(c).
		Preload("Class").
		Preload("Class.Manager").
		Preload("Attendances").
		Preload("Attendances.Session").
		Preload("Attendances.Session.Subject").
		First(&student, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Student not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    student,
	})
}

func GetStudentsByClass(c *gin.Context) {
	classID, ok := parseID(c, "classId")
	if !ok {
		return
	}

	var students []models.Student
	err := db(c).Where("class_id = ?", classID).Preload("Class").Find(&students).Error
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    students,
	})
}

func UpdateStudent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body UpdateStudentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var student models.Student
	err := db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&student, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("Student not found")
			}
			return err
		}

		updates := map[string]interface{}{}
		if body.Firstname != "" {
			updates["firstname"] = body.Firstname
		}
		if body.ClassID != 0 {
			if err := classExists(tx, body.ClassID); err != nil {
				return err
			}
			updates["class_id"] = body.ClassID
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&student).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&student, id).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Student updated successfully",
		"data":    student,
	})
}

func DeleteStudent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := db(c).Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("Student not found")
			}
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Student deleted successfully",
	})
}
