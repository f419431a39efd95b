package models

import (
	"time"

	"gorm.io/datatypes"
)

type BillingEventLogStatus string

const (
	BillingEventLogStatusReceived     BillingEventLogStatus = "received"
	BillingEventLogStatusHandled      BillingEventLogStatus = "handled"
	BillingEventLogStatusHandleFailed BillingEventLogStatus = "handle_failed"
)

// BillingEventLog records every payment-provider event the service receives,
// with its raw payload and handling outcome.
type BillingEventLog struct {
	ID         string                `gorm:"column:id;type:uuid;primary_key" json:"id"`
	ProviderID string                `gorm:"column:provider_id;type:varchar(64);not null" json:"provider_id"`
	EventType  string                `gorm:"column:event_type;type:varchar(128)" json:"event_type"`
	UserID     *string               `gorm:"column:user_id;type:varchar(64)" json:"user_id"`
	TraceID    string                `gorm:"column:trace_id;type:varchar(128)" json:"trace_id"`
	Payload    datatypes.JSON        `gorm:"column:payload;type:jsonb" json:"payload"`
	Status     BillingEventLogStatus `gorm:"column:status;type:varchar(64);not null" json:"status"`
	Error      string                `gorm:"column:error;type:text" json:"error"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

func (BillingEventLog) TableName() string {
	return "billing_event_log"
}
