package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	database "schoolapi/config"
)

// apiError carries a user-facing failure out of a transaction so the
// surrounding handler can roll back and answer with the right status.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string { return e.Message }

func errNotFound(message string) *apiError {
	return &apiError{Status: http.StatusNotFound, Message: message}
}

func errBadRequest(message string) *apiError {
	return &apiError{Status: http.StatusBadRequest, Message: message}
}

func errConflict(message string) *apiError {
	return &apiError{Status: http.StatusConflict, Message: message}
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Server error",
		"error":   err.Error(),
	})
}

// respondError maps a transaction error onto the response: typed apiError
// as-is, duplicate-key from a lost race as 409, anything else as 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		fail(c, apiErr.Status, apiErr.Message)
		return
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		fail(c, http.StatusConflict, "Conflicting record already exists")
		return
	}
	serverError(c, err)
}

// db returns the shared handle bound to the request context, so a client
// disconnect cancels in-flight store calls.
func db(c *gin.Context) *gorm.DB {
	return database.DB.WithContext(c.Request.Context())
}

// parseID rejects non-numeric path ids; an id of 0 is left to the lookup,
// which answers 404 like any other absent row.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
