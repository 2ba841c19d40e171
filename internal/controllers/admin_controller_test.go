package controllers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"leadbox/internal/models"
)

func newAdminRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := &AdminController{DB: db}
	r.GET("/api/submissions", ctrl.ListSubmissions)
	r.GET("/api/export", ctrl.ExportSubmissions)
	return r
}

func insertSubmission(t *testing.T, db *gorm.DB, email, ip, ua string, ts time.Time) models.Submission {
	t.Helper()
	sub := models.Submission{Email: email, IP: &ip, UserAgent: &ua, Timestamp: ts}
	require.NoError(t, db.Create(&sub).Error)
	return sub
}

func TestListSubmissionsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	insertSubmission(t, db, "oldest@example.com", "10.0.0.1", "curl", base)
	insertSubmission(t, db, "newest@example.com", "10.0.0.2", "curl", base.Add(2*time.Hour))
	insertSubmission(t, db, "middle@example.com", "10.0.0.3", "curl", base.Add(time.Hour))

	r := newAdminRouter(db)
	w := getWithToken(r, "/api/submissions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "newest@example.com", got[0].Email)
	assert.Equal(t, "middle@example.com", got[1].Email)
	assert.Equal(t, "oldest@example.com", got[2].Email)
}

func TestExportRoundTripsThroughCSV(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	// Exercise quoting: comma and double quote inside the email field.
	tricky := insertSubmission(t, db, `a,b"c@example.com`, "10.0.0.1", `Mozilla/5.0 ("X11; Linux")`, base.Add(time.Hour))
	plain := insertSubmission(t, db, "plain@example.com", "10.0.0.2", "curl", base)

	r := newAdminRouter(db)
	w := getWithToken(r, "/api/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	disposition := w.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "submissions-")

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, []string{"ID", "Email", "IP", "User Agent", "Timestamp"}, records[0])

	// Newest first: tricky row, then plain.
	assert.Equal(t, strconv.FormatUint(uint64(tricky.ID), 10), records[1][0])
	assert.Equal(t, `a,b"c@example.com`, records[1][1])
	assert.Equal(t, `Mozilla/5.0 ("X11; Linux")`, records[1][3])
	assert.Equal(t, tricky.Timestamp.UTC().Format(time.RFC3339), records[1][4])

	assert.Equal(t, plain.Email, records[2][1])
	assert.Equal(t, "10.0.0.2", records[2][2])
}

func TestExportEmptyStoreHasOnlyHeader(t *testing.T) {
	db := newTestDB(t)
	r := newAdminRouter(db)

	w := getWithToken(r, "/api/export", "")
	require.Equal(t, http.StatusOK, w.Code)

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
