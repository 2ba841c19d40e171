package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"leadbox/internal/models"
	"leadbox/internal/utils"
)

type SubscribeController struct {
	DB *gorm.DB
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe records an email lead together with the caller's IP and
// user agent. Re-submitting a known address is a successful no-op, so the
// endpoint looks idempotent to the public form.
func (s *SubscribeController) Subscribe(c *gin.Context) {
	var req subscribeRequest
	_ = c.ShouldBindJSON(&req)

	email := strings.TrimSpace(req.Email)
	if !utils.IsValidEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email"})
		return
	}

	ip := c.ClientIP()
	userAgent := c.Request.UserAgent()
	if userAgent == "" {
		userAgent = "Unknown"
	}

	var existing models.Submission
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email already registered"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("subscribe: lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	sub := models.Submission{
		Email:     email,
		IP:        &ip,
		UserAgent: &userAgent,
		Timestamp: time.Now().UTC(),
	}
	if err := s.DB.Create(&sub).Error; err != nil {
		// The unique index can still fire between the lookup and the insert.
		if isDuplicateErr(err) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email already registered"})
			return
		}
		log.Printf("subscribe: insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email submitted successfully"})
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
