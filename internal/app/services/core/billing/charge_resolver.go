package billing

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
)

// DoctorDirectory is the already-loaded doctor lookup the resolver
// quotes against. A nil doctor with a nil error means not found.
type DoctorDirectory interface {
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
}

type ChargeResolver struct {
	doctors DoctorDirectory
}

func NewChargeResolver(doctors DoctorDirectory) *ChargeResolver {
	return &ChargeResolver{doctors: doctors}
}

// Quote returns the base amount owed for a doctor and visit type. A
// booking with no doctor-fee concept (lab-only orders, blank doctor)
// and an unresolved doctor both quote zero instead of failing the
// booking.
func (r *ChargeResolver) Quote(ctx context.Context, doctorID, visitType string) (models.ChargeQuote, error) {
	if doctorID == "" {
		return models.ChargeQuote{}, nil
	}

	doctor, err := r.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return models.ChargeQuote{}, err
	}
	if doctor == nil {
		return models.ChargeQuote{}, nil
	}

	if visitType == constvars.VisitTypeFirst {
		return models.ChargeQuote{BaseCharge: doctor.FirstVisitCharge}, nil
	}
	return models.ChargeQuote{BaseCharge: doctor.FollowUpCharge}, nil
}
