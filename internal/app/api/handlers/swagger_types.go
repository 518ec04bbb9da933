package handlers

import (
	"github.com/gauswarn/storefront/internal/app/service/auth"
	"github.com/gauswarn/storefront/internal/app/service/payment"
	"github.com/gauswarn/storefront/internal/app/service/statistics"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// RespID wraps a created row id in the standard envelope.
type RespID struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID int64 `json:"id"`
	} `json:"data"`
}

// RespLogin wraps a login result in the standard envelope.
type RespLogin struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    auth.LoginResult `json:"data"`
}

// RespPaymentStatus wraps a provider status lookup in the standard envelope.
type RespPaymentStatus struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    payment.StatusResult `json:"data"`
}

// RespListPayments wraps the admin payment listing in the standard envelope.
type RespListPayments struct {
	Success bool                            `json:"success"`
	Message string                          `json:"message"`
	Data    statistics.ScanPaymentsResponse `json:"data"`
}

// RespSalesStatistic wraps SalesStatisticResponse in the standard envelope.
type RespSalesStatistic struct {
	Success bool                              `json:"success"`
	Message string                            `json:"message"`
	Data    statistics.SalesStatisticResponse `json:"data"`
}
