package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	models "schoolapi/model"
)

type CreateSubjectBody struct {
	Name string `json:"name"`
}

type UpdateSubjectBody struct {
	Name string `json:"name"`
}

func CreateSubject(c *gin.Context) {
	var body CreateSubjectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Name == "" {
		fail(c, http.StatusBadRequest, "Subject name is required")
		return
	}

	subject := models.Subject{Name: body.Name}
	if err := db(c).Create(&subject).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Subject created successfully",
		"data":    subject,
	})
}

func GetAllSubjects(c *gin.Context) {
	var subjects []models.Subject
	err := db(c).Preload("Sessions").Preload("Sessions.Class").Find(&subjects).Error
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    subjects,
	})
}

func GetSubjectByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var subject models.Subject
	err := db(c).
		Preload("Sessions").
		Preload("Sessions.Class").
		Preload("Sessions.Class.Manager").
		First(&subject, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Subject not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    subject,
	})
}

func UpdateSubject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body UpdateSubjectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var subject models.Subject
	err := db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&subject, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("Subject not found")
			}
			return err
		}
		if body.Name == "" {
			return nil
		}
		subject.Name = body.Name
		return tx.Save(&subject).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subject updated successfully",
		"data":    subject,
	})
}

func DeleteSubject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := db(c).Transaction(func(tx *gorm.DB) error {
		var subject models.Subject
		if err := tx.First(&subject, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("Subject not found")
			}
			return err
		}
		return tx.Delete(&subject).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subject deleted successfully",
	})
}
