package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel — evento de ciclo de vida para el sink de notificaciones.
// Se inserta después del commit de la transición; fallas se loguean y nunca
// revierten la transición (fire-and-forget).
type NotificationModel struct {
	NotificationID      uuid.UUID         `json:"notification_id" gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey"`
	NotificationEvent   string            `json:"notification_event" gorm:"column:notification_event;size:60;not null;index"`
	NotificationPayload datatypes.JSONMap `json:"notification_payload" gorm:"column:notification_payload;type:jsonb"`
	NotificationSentAt  *time.Time        `json:"notification_sent_at,omitempty" gorm:"column:notification_sent_at"`
	CreatedAt           time.Time         `json:"created_at" gorm:"column:created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
