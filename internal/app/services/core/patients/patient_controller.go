package patients

import (
	"context"
	"encoding/json"
	"intake-service/internal/app/config"
	"intake-service/internal/app/services/core/directory"
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

type PatientController struct {
	Log              *zap.Logger
	PatientUsecase   PatientUsecase
	DirectoryUsecase directory.DirectoryUsecase
	InternalConfig   *config.InternalConfig
}

func NewPatientController(
	logger *zap.Logger,
	patientUsecase PatientUsecase,
	directoryUsecase directory.DirectoryUsecase,
	internalConfig *config.InternalConfig,
) *PatientController {
	return &PatientController{
		Log:              logger,
		PatientUsecase:   patientUsecase,
		DirectoryUsecase: directoryUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *PatientController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterPatient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if request.Photo != "" {
		data, ext, err := utils.DecodeBase64Image(request.Photo)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}

		err = utils.ValidateImageFormat(ext, constvars.ImageAllowedPatientPhotoFormats)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}

		err = utils.ValidateImageSize(data, int64(ctrl.InternalConfig.Minio.PhotoMaxUploadSizeInMB))
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}

		request.PhotoData = data
		request.PhotoExtension = ext
	}

	utils.SanitizeRegisterPatientRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.Register(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.PatientUpdatedSuccess
	code := constvars.StatusOK
	if response.IsNew {
		message = constvars.PatientRegisteredSuccess
		code = constvars.StatusCreated
	}
	utils.BuildSuccessResponse(w, code, message, response)
}

func (ctrl *PatientController) GetPatientByUHID(w http.ResponseWriter, r *http.Request) {
	uhid := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, constvars.URLParamUHID)))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetByUHID(ctx, uhid)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientGetSuccess, response)
}

func (ctrl *PatientController) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fragment := query.Get(constvars.URLQueryParamFragment)
	field := strings.ToLower(strings.TrimSpace(query.Get(constvars.URLQueryParamField)))
	confirmed := query.Get(constvars.URLQueryParamConfirmed)

	if field == "" {
		field = constvars.SearchFieldName
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DirectoryUsecase.Search(ctx, fragment, field, confirmed)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientSuggestionsSuccess, result)
}
