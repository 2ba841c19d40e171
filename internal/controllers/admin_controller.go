package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"leadbox/internal/models"
)

type AdminController struct {
	DB *gorm.DB
}

// ListSubmissions returns every captured lead, newest first.
func (a *AdminController) ListSubmissions(c *gin.Context) {
	var submissions []models.Submission
	if err := a.DB.Order("timestamp DESC, id DESC").Find(&submissions).Error; err != nil {
		log.Printf("admin: listing submissions failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// ExportSubmissions renders the full submissions table as a CSV attachment.
// encoding/csv handles quoting, so addresses containing commas or quotes
// survive a round trip through any spreadsheet tool.
func (a *AdminController) ExportSubmissions(c *gin.Context) {
	var submissions []models.Submission
	if err := a.DB.Order("timestamp DESC, id DESC").Find(&submissions).Error; err != nil {
		log.Printf("admin: export query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ID", "Email", "IP", "User Agent", "Timestamp"})
	for _, s := range submissions {
		ip, ua := "", ""
		if s.IP != nil {
			ip = *s.IP
		}
		if s.UserAgent != nil {
			ua = *s.UserAgent
		}
		_ = w.Write([]string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.Email,
			ip,
			ua,
			s.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("admin: export encoding failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	filename := fmt.Sprintf("submissions-%d.csv", time.Now().UnixMilli())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
