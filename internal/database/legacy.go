package database

import (
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"leadbox/internal/models"
	"leadbox/internal/utils"
)

// MigrateLegacy upgrades databases left over from earlier schema generations:
// rows from the retired "emails" table are copied into submissions (first
// occurrence of each address wins), and the retired "visits" page-load log is
// dropped. Absence of both tables makes this a no-op, so it is safe to run on
// every startup. Failures are logged, never fatal; startup proceeds with
// whatever subset migrated.
func MigrateLegacy(db *gorm.DB) {
	migrator := db.Migrator()

	if migrator.HasTable("emails") {
		var legacy []models.LegacyEmail
		if err := db.Order("id").Find(&legacy).Error; err != nil {
			log.Printf("legacy migration: reading emails table failed: %v", err)
		} else {
			copied, skipped := 0, 0
			for _, row := range legacy {
				if !utils.IsValidEmail(row.Email) {
					skipped++
					continue
				}
				ts := row.CreatedAt
				if ts.IsZero() {
					ts = time.Now().UTC()
				}
				sub := models.Submission{Email: row.Email, Timestamp: ts}
				if err := db.Create(&sub).Error; err != nil {
					if isDuplicate(err) {
						skipped++
						continue
					}
					log.Printf("legacy migration: email %q not copied: %v", row.Email, err)
					skipped++
					continue
				}
				copied++
			}
			log.Printf("legacy migration: copied %d emails into submissions, skipped %d", copied, skipped)
			if err := migrator.DropTable("emails"); err != nil {
				log.Printf("legacy migration: dropping emails table failed: %v", err)
			}
		}
	}

	if migrator.HasTable("visits") {
		if err := migrator.DropTable("visits"); err != nil {
			log.Printf("legacy migration: dropping visits table failed: %v", err)
		} else {
			log.Println("legacy migration: dropped retired visits table")
		}
	}
}

// isDuplicate reports whether err is a unique-constraint violation. GORM
// translates these to ErrDuplicatedKey for drivers that support it; the
// string check covers sqlite errors that arrive untranslated.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
