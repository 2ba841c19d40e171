package models

import "time"

// LegacyEmail mirrors the "emails" table of the first schema generation.
// It exists only so the startup migration can read it; it is never part of
// AutoMigrate.
type LegacyEmail struct {
	ID        uint `gorm:"primaryKey"`
	Email     string
	CreatedAt time.Time
}

func (LegacyEmail) TableName() string {
	return "emails"
}

// LegacyVisit mirrors the retired "visits" page-load log. The current
// generation records request metadata on the submission row instead, so the
// migration only drops this table.
type LegacyVisit struct {
	ID        uint `gorm:"primaryKey"`
	IP        string
	UserAgent string
	Referer   string
	VisitedAt time.Time
}

func (LegacyVisit) TableName() string {
	return "visits"
}
