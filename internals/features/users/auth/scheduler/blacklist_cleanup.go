package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	m "practicas_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanup borra cada hora los tokens de blacklist ya vencidos:
// un token expirado falla solo en la validación de exp.
func StartBlacklistCleanup(db *gorm.DB) {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		res := db.Where("expires_at < NOW()").Delete(&m.TokenBlacklist{})
		if res.Error != nil {
			log.Printf("[CRON] blacklist cleanup err: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[CRON] tokens vencidos purgados: %d", res.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("[CRON] no se pudo registrar blacklist cleanup: %v", err)
		return
	}
	c.Start()
}
