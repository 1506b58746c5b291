package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	models "schoolapi/model"
)

type CreateSessionBody struct {
	Date      string `json:"date"`
	ClassID   uint   `json:"classId"`
	SubjectID uint   `json:"subjectId"`
	TeacherID uint   `json:"teacherId"`
}

type UpdateSessionBody struct {
	Date      string `json:"date"`
	ClassID   uint   `json:"classId"`
	SubjectID uint   `json:"subjectId"`
	TeacherID uint   `json:"teacherId"`
}

func parseSessionDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func subjectExists(tx *gorm.DB, subjectID uint) error {
	var count int64
	if err := tx.Model(&models.Subject{}).Where("id = ?", subjectID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errNotFound("Subject not found")
	}
	return nil
}

func teacherExists(tx *gorm.DB, teacherID uint) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", teacherID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errNotFound("Teacher not found")
	}
	return nil
}

func CreateSession(c *gin.Context) {
	var body CreateSessionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Date == "" || body.ClassID == 0 || body.SubjectID == 0 || body.TeacherID == 0 {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	date, err := parseSessionDate(body.Date)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid date format")
		return
	}

	session := models.Session{
		Date:      date,
		ClassID:   body.ClassID,
		SubjectID: body.SubjectID,
		TeacherID: body.TeacherID,
	}
	err = db(c).Transaction(func(tx *gorm.DB) error {
		if err := classExists(tx, body.ClassID); err != nil {
			return err
		}
		if err := subjectExists(tx, body.SubjectID); err != nil {
			return err
		}
		if err := teacherExists(tx, body.TeacherID); err != nil {
			return err
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Session created successfully",
		"data":    session,
	})
}

func GetAllSessions(c *gin.Context) {
	var sessions []models.Session
	err := db(c).
		Preload("Class").
		Preload("Class.Manager").
		Preload("Subject").
		Preload("Attendances").
		Preload("Attendances.Student").
		Find(&sessions).Error
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessions,
	})
}

func GetSessionByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var session models.Session
	err := db(c).
		Preload("Class").
		Preload("Class.Manager").
		Preload("Subject").
		Preload("Attendances").
		Preload("Attendances.Student").
		First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    session,
	})
}

// UpdateSession validates each supplied reference before writing.
func UpdateSession(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body UpdateSessionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]interface{}{}
	if body.Date != "" {
		date, err := parseSessionDate(body.Date)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid date format")
			return
		}
		updates["date"] = date
	}

	var session models.Session
	err := db(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("Session not found")
			}
			return err
		}

		if body.ClassID != 0 {
			if err := classExists(tx, body.ClassID); err != nil {
				return err
			}
			updates["class_id"] = body.ClassID
		}
		if body.SubjectID != 0 {
			if err := subjectExists(tx, body.SubjectID); err != nil {
				return err
			}
			updates["subject_id"] = body.SubjectID
		}
		if body.TeacherID != 0 {
			if err := teacherExists(tx, body.TeacherID); err != nil {
				return err
			}
			updates["teacher_id"] = body.TeacherID
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&session).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&session, id).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session updated successfully",
		"data":    session,
	})
}

func DeleteSession(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := db(c).Transaction(func(tx *gorm.DB) error {
		var session models.Session
		if err := tx.First(&session, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("Session not found")
			}
			return err
		}
		return tx.Delete(&session).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session deleted successfully",
	})
}
