package billing

import (
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
)

// ComputeBreakdown normalizes the entered amounts for the chosen
// method and derives the discount against the base charge. The clerk
// never edits the discount; every change to an upstream field feeds a
// fresh call.
//
// The final amount keeps the historical behavior of the intake desks:
// overpayment is recorded as-is (discount stays zero), and a partial
// payment yields totalPaid - (baseCharge - totalPaid), which can go
// negative for very small payments against a large charge.
func ComputeBreakdown(method string, cashAmount, onlineAmount, baseCharge float64) models.PaymentBreakdown {
	switch method {
	case constvars.PaymentMethodCash:
		onlineAmount = 0
	case constvars.PaymentMethodOnline:
		cashAmount = 0
	}

	totalPaid := cashAmount + onlineAmount

	discount := baseCharge - totalPaid
	if discount < 0 {
		discount = 0
	}

	return models.PaymentBreakdown{
		Method:       method,
		CashAmount:   cashAmount,
		OnlineAmount: onlineAmount,
		Discount:     discount,
		FinalAmount:  totalPaid - discount,
	}
}
