package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	models "schoolapi/model"
)

type CreateAttendanceBody struct {
	StudentID uint  `json:"studentId"`
	SessionID uint  `json:"sessionId"`
	Present   *bool `json:"present"`
}

// CreateAttendance records a student's presence at a session. One record
// per (student, session) pair; the unique index backs the pre-check.
func CreateAttendance(c *gin.Context) {
	var body CreateAttendanceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.StudentID == 0 || body.SessionID == 0 {
		fail(c, http.StatusBadRequest, "StudentId and sessionId are required")
		return
	}

	present := true
	if body.Present != nil {
		present = *body.Present
	}

	attendance := models.Attendance{
		StudentID: body.StudentID,
		SessionID: body.SessionID,
		Present:   present,
	}
	err := db(c).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Student{}).Where("id = ?", body.StudentID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errNotFound("Student not found")
		}
		if err := tx.Model(&models.Session{}).Where("id = ?", body.SessionID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errNotFound("Session not found")
		}
		err := tx.Model(&models.Attendance{}).
			Where("student_id = ? AND session_id = ?", body.StudentID, body.SessionID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return errConflict("Attendance already recorded for this session")
		}
		return tx.Create(&attendance).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, http.StatusConflict, "Attendance already recorded for this session")
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Attendance recorded successfully",
		"data":    attendance,
	})
}

func DeleteAttendance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := db(c).Transaction(func(tx *gorm.DB) error {
		var attendance models.Attendance
		if err := tx.First(&attendance, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("Attendance not found")
			}
			return err
		}
		return tx.Delete(&attendance).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Attendance deleted successfully",
	})
}
