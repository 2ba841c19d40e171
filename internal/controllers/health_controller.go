package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"leadbox/internal/models"
)

type HealthController struct {
	DB *gorm.DB
}

func (h *HealthController) Health(c *gin.Context) {
	var count int64
	if err := h.DB.Model(&models.Submission{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "degraded", "timestamp": time.Now().UTC().Format(time.RFC3339)})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"submissions": count,
	})
}
