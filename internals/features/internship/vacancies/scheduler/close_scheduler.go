package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	m "practicas_backend/internals/features/internship/vacancies/model"
)

// StartVacancyCloseScheduler cierra cada hora las vacantes cuya fecha de
// cierre ya pasó. El cierre es el mismo estado terminal del cierre manual.
func StartVacancyCloseScheduler(db *gorm.DB) {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		res := db.Model(&m.VacancyModel{}).
			Where("vacancy_closes_at IS NOT NULL AND vacancy_closes_at < NOW()").
			Where("vacancy_status <> ?", m.VacancyClosed).
			Updates(map[string]interface{}{"vacancy_status": m.VacancyClosed, "updated_at": time.Now()})
		if res.Error != nil {
			log.Printf("[CRON] vacancy close sweep err: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[CRON] vacantes cerradas por fecha: %d", res.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("[CRON] no se pudo registrar vacancy close sweep: %v", err)
		return
	}
	c.Start()
}
