package service

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"practicas_backend/internals/features/notifications/model"
)

// Eventos de ciclo de vida emitidos por el orquestador.
const (
	EventApplicationLinked   = "application.linked"
	EventApplicationRejected = "application.rejected"
	EventFollowUpGraded      = "followup.graded"
	EventDefenseScheduled    = "defense.scheduled"
	EventDefenseApproved     = "defense.approved"
	EventDefenseCancelled    = "defense.cancelled"
	EventPlacementFinalized  = "placement.finalized"
	EventPlacementCancelled  = "placement.cancelled"
	EventCompanyApproved     = "company.approved"
)

// Emit registra el evento en background, después del commit. Nunca devuelve
// error al caller: una falla de notificación no revierte la transición.
func Emit(db *gorm.DB, event string, payload map[string]interface{}) {
	go func() {
		n := model.NotificationModel{
			NotificationEvent:   event,
			NotificationPayload: datatypes.JSONMap(payload),
		}
		if err := db.Create(&n).Error; err != nil {
			log.Printf("[NOTIFY] drop event=%s err=%v", event, err)
		}
	}()
}
