package requests

// PaymentInput is the raw payment section of an intake form. Discount
// is never part of the input; it is always derived.
type PaymentInput struct {
	Method       string  `json:"method" validate:"required,payment_method"`
	CashAmount   float64 `json:"cash_amount" validate:"gte=0"`
	OnlineAmount float64 `json:"online_amount" validate:"gte=0"`
}

// CreateBooking is the submit payload shared by all intake screens.
// The modality comes from the URL; which optional sections apply
// depends on it (doctor/visit type for OPD, triage for casualty,
// studies and a catalog amount for pathology and x-ray style orders).
type CreateBooking struct {
	Patient RegisterPatient `json:"patient" validate:"required"`

	ServiceName string `json:"service_name,omitempty" validate:"omitempty,max=200"`

	DoctorID  string `json:"doctor_id,omitempty"`
	VisitType string `json:"visit_type,omitempty" validate:"omitempty,visit_type"`

	Studies    []string `json:"studies,omitempty" validate:"omitempty,dive,max=200"`
	BaseAmount float64  `json:"base_amount,omitempty" validate:"omitempty,gte=0"`

	TriageCategory string `json:"triage_category,omitempty" validate:"omitempty,triage"`
	BroughtDead    bool   `json:"brought_dead,omitempty"`

	Payment PaymentInput `json:"payment" validate:"required"`
}

// PaymentPreview recomputes the derived charge and breakdown while the
// clerk is still editing the form.
type PaymentPreview struct {
	Modality     string  `json:"modality" validate:"required,modality"`
	DoctorID     string  `json:"doctor_id,omitempty"`
	VisitType    string  `json:"visit_type,omitempty" validate:"omitempty,visit_type"`
	BaseAmount   float64 `json:"base_amount,omitempty" validate:"omitempty,gte=0"`
	Method       string  `json:"method" validate:"required,payment_method"`
	CashAmount   float64 `json:"cash_amount" validate:"gte=0"`
	OnlineAmount float64 `json:"online_amount" validate:"gte=0"`
}
