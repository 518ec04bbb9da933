package models

import (
	"time"

	"gorm.io/datatypes"
)

type PaymentCallbackLogStatus string

const (
	PaymentCallbackLogStatusReceived     PaymentCallbackLogStatus = "received"
	PaymentCallbackLogStatusHandled      PaymentCallbackLogStatus = "handled"
	PaymentCallbackLogStatusHandleFailed PaymentCallbackLogStatus = "handle_failed"
)

// PaymentCallbackLog is the audit trail of provider callbacks: one row when
// a callback arrives and one with the outcome. Writes are best-effort and
// never block verification.
type PaymentCallbackLog struct {
	ID                string                   `gorm:"column:id;type:varchar(36);primary_key" json:"id"`
	ProviderOrderID   string                   `gorm:"column:provider_order_id;type:varchar(64)" json:"provider_order_id"`
	ProviderPaymentID string                   `gorm:"column:provider_payment_id;type:varchar(64);index" json:"provider_payment_id"`
	TraceID           string                   `gorm:"column:trace_id;type:varchar(128)" json:"trace_id"`
	ReceivedAt        time.Time                `gorm:"column:received_at" json:"received_at"`
	Data              datatypes.JSON           `gorm:"column:data;type:json" json:"data"`
	Result            *datatypes.JSON          `gorm:"column:result;type:json" json:"result"`
	Status            PaymentCallbackLogStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func (PaymentCallbackLog) TableName() string { return "payment_callback_log" }
