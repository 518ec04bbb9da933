package models

import (
	"github.com/gauswarn/storefront/pkg/types"

	"gorm.io/datatypes"
)

// Payment lifecycle statuses mirror the provider's vocabulary.
const (
	PaymentStatusPending    = "pending"
	PaymentStatusCaptured   = "captured"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusFailed     = "failed"
)

// PendingPayment is one row per checkout attempt, from intent creation
// through terminal verification. The customer fields are a snapshot taken at
// order time; later profile edits never affect a placed order. The cart
// snapshot is the sole source of truth for line items at verification time.
type PendingPayment struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:user_name;type:varchar(128);not null" json:"user_name"`
	Mobile      string `gorm:"column:user_mobile_num;type:varchar(16);not null" json:"user_mobile_num"`
	Email       string `gorm:"column:user_email;type:varchar(128);not null" json:"user_email"`
	State       string `gorm:"column:user_state;type:varchar(64)" json:"user_state"`
	City        string `gorm:"column:user_city;type:varchar(64)" json:"user_city"`
	Country     string `gorm:"column:user_country;type:varchar(64)" json:"user_country"`
	HouseNumber string `gorm:"column:user_house_number;type:varchar(128)" json:"user_house_number"`
	Landmark    string `gorm:"column:user_landmark;type:varchar(128)" json:"user_landmark"`
	Pincode     string `gorm:"column:user_pincode;type:varchar(16)" json:"user_pincode"`

	TotalAmount     float64 `gorm:"column:user_total_amount;type:decimal(10,2);not null" json:"user_total_amount"`
	PurchasePrice   float64 `gorm:"column:purchase_price;type:decimal(10,2)" json:"purchase_price"`
	ProductQuantity int     `gorm:"column:product_quantity;not null" json:"product_quantity"`

	// Date and time are recorded separately at insert; the row carries no
	// update timestamp, its current state is always the last write.
	Date string `gorm:"column:date;type:varchar(10);not null" json:"date"`
	Time string `gorm:"column:time;type:varchar(8);not null" json:"time"`

	// External correlation, nullable until assigned at verification.
	ShippingOrderID   *string `gorm:"column:shopmozo_order_id;type:varchar(64)" json:"shopmozo_order_id"`
	ProviderPaymentID *string `gorm:"column:razorpay_payment_id;type:varchar(64);index" json:"razorpay_payment_id"`

	Status string `gorm:"column:status;type:varchar(32);not null" json:"status"`
	IsPaid bool   `gorm:"column:is_payment_paid;not null" json:"isPaymentPaid"`

	// PaymentSnapshot holds the last-known raw provider payment object.
	PaymentSnapshot datatypes.JSON                      `gorm:"column:payment_details;type:json" json:"payment_details"`
	CartSnapshot    datatypes.JSONType[[]types.CartItem] `gorm:"column:cart_data;type:json" json:"cart_data"`
}

func (PendingPayment) TableName() string { return "gauswarn_payment" }

// Customer rebuilds the consignee snapshot stored with the row.
func (p *PendingPayment) Customer() types.CustomerSnapshot {
	return types.CustomerSnapshot{
		Name:        p.Name,
		Mobile:      p.Mobile,
		Email:       p.Email,
		HouseNumber: p.HouseNumber,
		Landmark:    p.Landmark,
		Pincode:     p.Pincode,
		City:        p.City,
		State:       p.State,
		Country:     p.Country,
	}
}

// HasShippingOrder reports whether a shipping identifier was already
// assigned. Used as the replay guard: a verified row keeps its first
// shipping order and never triggers a second one.
func (p *PendingPayment) HasShippingOrder() bool {
	return p != nil && p.ShippingOrderID != nil && *p.ShippingOrderID != ""
}
