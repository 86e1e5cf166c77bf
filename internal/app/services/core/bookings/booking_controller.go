package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	modality := strings.ToLower(strings.TrimSpace(chi.URLParam(r, constvars.URLParamModality)))
	if !isKnownModality(modality) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(
			errors.New("unknown modality: "+modality), constvars.URLParamModality))
		return
	}

	request := new(requests.CreateBooking)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateBookingRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.Submit(ctx, modality, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingCreatedSuccess, response)
}

func (ctrl *BookingController) PreviewPayment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PaymentPreview)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizePaymentPreviewRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.PreviewPayment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentPreviewSuccess, response)
}

func isKnownModality(modality string) bool {
	switch modality {
	case constvars.ModalityOPD, constvars.ModalityCasualty, constvars.ModalityPathology, constvars.ModalityIPD:
		return true
	}
	return false
}
