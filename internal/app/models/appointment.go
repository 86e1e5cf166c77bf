package models

import "time"

// PaymentBreakdown is derived by the payment allocator and persisted
// only inside an appointment entry. The invariant
// finalAmount = cashAmount + onlineAmount - discount holds for every
// persisted entry.
type PaymentBreakdown struct {
	Method       string  `bson:"method"`
	CashAmount   float64 `bson:"cashAmount"`
	OnlineAmount float64 `bson:"onlineAmount"`
	Discount     float64 `bson:"discount"`
	FinalAmount  float64 `bson:"finalAmount"`
}

// ChargeQuote is derived, never persisted.
type ChargeQuote struct {
	BaseCharge float64
}

// PatientSnapshot is a denormalized copy of the identity fields at
// booking time, so historical entries survive later identity edits.
type PatientSnapshot struct {
	UHID    string `bson:"uhid"`
	Name    string `bson:"name"`
	Phone   string `bson:"phone"`
	Age     int    `bson:"age,omitempty"`
	DOB     string `bson:"dob,omitempty"`
	Gender  string `bson:"gender"`
	Address string `bson:"address,omitempty"`
}

// AppointmentEntry is append-only. Edit and delete live in separate
// administrative screens outside this core.
type AppointmentEntry struct {
	ID        string          `bson:"_id"`
	PatientID string          `bson:"patientId"`
	Modality  string          `bson:"modality"`
	Patient   PatientSnapshot `bson:"patient"`

	ServiceName string `bson:"serviceName,omitempty"`

	DoctorID   string `bson:"doctorId,omitempty"`
	DoctorName string `bson:"doctorName,omitempty"`
	VisitType  string `bson:"visitType,omitempty"`

	Studies []string `bson:"studies,omitempty"`

	TriageCategory string `bson:"triageCategory,omitempty"`
	BroughtDead    bool   `bson:"broughtDead,omitempty"`

	Payment   PaymentBreakdown `bson:"payment"`
	CreatedAt time.Time        `bson:"createdAt"`
}
