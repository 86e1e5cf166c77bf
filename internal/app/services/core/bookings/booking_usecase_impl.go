package bookings

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/app/services/core/billing"
	"intake-service/internal/app/services/core/doctors"
	"intake-service/internal/app/services/core/patients"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	Log            *zap.Logger
	PatientUsecase patients.PatientUsecase
	DoctorUsecase  doctors.DoctorUsecase
	Resolver       *billing.ChargeResolver
	Ledger         LedgerRepository
}

func NewBookingUsecase(
	log *zap.Logger,
	patientUsecase patients.PatientUsecase,
	doctorUsecase doctors.DoctorUsecase,
	resolver *billing.ChargeResolver,
	ledger LedgerRepository,
) BookingUsecase {
	return &bookingUsecase{
		Log:            log,
		PatientUsecase: patientUsecase,
		DoctorUsecase:  doctorUsecase,
		Resolver:       resolver,
		Ledger:         ledger,
	}
}

// Submit runs the whole intake flow for one modality: resolve the
// identity, persist it across both registries, derive the payment
// breakdown and append the ledger entry. The only write path is this
// final submit; abandoning the form touches nothing.
func (uc *bookingUsecase) Submit(ctx context.Context, modality string, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	state, err := uc.buildState(ctx, modality, request)
	if err != nil {
		return nil, err
	}

	registration, err := uc.PatientUsecase.Register(ctx, &request.Patient)
	if err != nil {
		return nil, err
	}

	doctorName := ""
	if state.DoctorID != "" {
		doctor, err := uc.DoctorUsecase.FindByID(ctx, state.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			doctorName = doctor.Name
		}
	}

	entry := &models.AppointmentEntry{
		ID:        utils.GenerateEntryKey(),
		PatientID: registration.UHID,
		Modality:  modality,
		Patient: models.PatientSnapshot{
			UHID:    registration.UHID,
			Name:    request.Patient.Name,
			Phone:   request.Patient.Phone,
			Age:     request.Patient.Age,
			DOB:     request.Patient.DOB,
			Gender:  request.Patient.Gender,
			Address: request.Patient.Address,
		},
		ServiceName:    state.ServiceName,
		DoctorID:       state.DoctorID,
		DoctorName:     doctorName,
		VisitType:      state.VisitType,
		Studies:        state.Studies,
		TriageCategory: state.TriageCategory,
		BroughtDead:    state.BroughtDead,
		Payment:        state.Breakdown,
		CreatedAt:      time.Now(),
	}

	entryID, err := uc.Ledger.Append(ctx, entry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("intake booking recorded",
		zap.String("entry_id", entryID),
		zap.String("uhid", registration.UHID),
		zap.String("modality", modality),
		zap.Bool("new_patient", registration.IsNew),
	)

	return &responses.CreateBooking{
		EntryID:   entryID,
		UHID:      registration.UHID,
		Modality:  modality,
		Breakdown: mapBreakdown(state.Breakdown),
	}, nil
}

// PreviewPayment recomputes the derived charge and breakdown for the
// current form values, without persisting anything.
func (uc *bookingUsecase) PreviewPayment(ctx context.Context, request *requests.PaymentPreview) (*responses.PaymentPreview, error) {
	state := NewFormState(request.Modality)
	if request.Modality == constvars.ModalityOPD {
		state.SetDoctor(request.DoctorID)
		state.SetVisitType(request.VisitType)
		quote, err := uc.Resolver.Quote(ctx, state.DoctorID, state.VisitType)
		if err != nil {
			return nil, err
		}
		state.SetBaseCharge(quote.BaseCharge)
	} else {
		state.SetBaseCharge(request.BaseAmount)
	}
	state.SetPayment(request.Method, request.CashAmount, request.OnlineAmount)

	return &responses.PaymentPreview{
		BaseCharge: state.BaseCharge,
		Breakdown:  mapBreakdown(state.Breakdown),
	}, nil
}

func (uc *bookingUsecase) buildState(ctx context.Context, modality string, request *requests.CreateBooking) (FormState, error) {
	state := NewFormState(modality)
	state.SetService(request.ServiceName)

	switch modality {
	case constvars.ModalityOPD:
		state.SetDoctor(request.DoctorID)
		state.SetVisitType(request.VisitType)
		quote, err := uc.Resolver.Quote(ctx, state.DoctorID, state.VisitType)
		if err != nil {
			return FormState{}, err
		}
		state.SetBaseCharge(quote.BaseCharge)
	case constvars.ModalityCasualty:
		state.SetTriage(request.TriageCategory)
		state.SetBroughtDead(request.BroughtDead)
		state.SetBaseCharge(request.BaseAmount)
	default:
		state.SetStudies(request.Studies)
		state.SetBaseCharge(request.BaseAmount)
	}

	state.SetPayment(request.Payment.Method, request.Payment.CashAmount, request.Payment.OnlineAmount)
	return state, nil
}

func mapBreakdown(breakdown models.PaymentBreakdown) responses.PaymentBreakdown {
	return responses.PaymentBreakdown{
		Method:       breakdown.Method,
		CashAmount:   breakdown.CashAmount,
		OnlineAmount: breakdown.OnlineAmount,
		Discount:     breakdown.Discount,
		FinalAmount:  breakdown.FinalAmount,
	}
}
