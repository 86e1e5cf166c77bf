package doctors

import (
	"context"
	"errors"
	"intake-service/internal/app/services/core/billing"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase DoctorUsecase
	Resolver      *billing.ChargeResolver
}

func NewDoctorController(logger *zap.Logger, doctorUsecase DoctorUsecase, resolver *billing.ChargeResolver) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
		Resolver:      resolver,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	specialist := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamSpecialist))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.List(ctx, specialist)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, result)
}

func (ctrl *DoctorController) GetChargeQuote(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(errors.New("missing doctor id"), constvars.URLParamDoctorID))
		return
	}

	visitType := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamVisitType)))
	if visitType != constvars.VisitTypeFirst && visitType != constvars.VisitTypeFollowUp {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(errors.New("invalid visit type"), constvars.URLQueryParamVisitType))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	quote, err := ctrl.Resolver.Quote(ctx, doctorID, visitType)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorQuoteSuccess, responses.ChargeQuote{
		DoctorID:   doctorID,
		VisitType:  visitType,
		BaseCharge: quote.BaseCharge,
	})
}
