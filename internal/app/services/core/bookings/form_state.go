package bookings

import (
	"intake-service/internal/app/models"
	"intake-service/internal/app/services/core/billing"
	"intake-service/internal/pkg/constvars"
)

// FormState is the explicit dependency graph behind an intake screen.
// Every derived value (base charge, discount, final amount) is a pure
// function of the upstream fields, and editing an upstream field
// invalidates everything downstream of it: changing the modality
// clears doctor, visit type and studies; changing the doctor clears
// the visit type.
type FormState struct {
	Modality    string
	ServiceName string

	DoctorID  string
	VisitType string

	Studies []string

	TriageCategory string
	BroughtDead    bool

	Method       string
	CashAmount   float64
	OnlineAmount float64

	BaseCharge float64
	Breakdown  models.PaymentBreakdown
}

func NewFormState(modality string) FormState {
	state := FormState{}
	state.SetModality(modality)
	return state
}

func (s *FormState) SetModality(modality string) {
	s.Modality = modality
	s.DoctorID = ""
	s.VisitType = ""
	s.Studies = nil
	s.BaseCharge = 0
	s.recompute()
}

func (s *FormState) SetService(serviceName string) {
	s.ServiceName = serviceName
}

func (s *FormState) SetDoctor(doctorID string) {
	s.DoctorID = doctorID
	s.VisitType = ""
	s.BaseCharge = 0
	s.recompute()
}

func (s *FormState) SetVisitType(visitType string) {
	s.VisitType = visitType
}

func (s *FormState) SetStudies(studies []string) {
	s.Studies = studies
}

// SetBaseCharge feeds the operator-entered or catalog-selected amount
// used by the non-consultation modalities, or the resolved doctor
// quote for OPD.
func (s *FormState) SetBaseCharge(baseCharge float64) {
	s.BaseCharge = baseCharge
	s.recompute()
}

func (s *FormState) SetTriage(category string) {
	if s.BroughtDead {
		s.TriageCategory = constvars.TriageBlack
		return
	}
	s.TriageCategory = category
}

// SetBroughtDead forces the black triage category regardless of any
// prior selection.
func (s *FormState) SetBroughtDead(broughtDead bool) {
	s.BroughtDead = broughtDead
	if broughtDead {
		s.TriageCategory = constvars.TriageBlack
	}
}

func (s *FormState) SetPayment(method string, cashAmount, onlineAmount float64) {
	s.Method = method
	s.CashAmount = cashAmount
	s.OnlineAmount = onlineAmount
	s.recompute()
}

func (s *FormState) recompute() {
	if s.Method == "" {
		s.Breakdown = models.PaymentBreakdown{}
		return
	}
	s.Breakdown = billing.ComputeBreakdown(s.Method, s.CashAmount, s.OnlineAmount, s.BaseCharge)
}
