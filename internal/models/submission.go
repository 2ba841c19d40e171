package models

import (
	"time"
)

// Submission is one captured email lead plus the request metadata that came
// with it. Rows are append-only; email is unique, so repeat submissions of
// the same address never add rows.
type Submission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	IP        *string   `json:"ip"`
	UserAgent *string   `json:"user_agent"`
	Timestamp time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
}

func (Submission) TableName() string {
	return "submissions"
}
