package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"intake-service/internal/app/services/core/bookings"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) Submit(ctx context.Context, modality string, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	args := m.Called(ctx, modality, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreateBooking), args.Error(1)
}

func (m *MockBookingUsecase) PreviewPayment(ctx context.Context, request *requests.PaymentPreview) (*responses.PaymentPreview, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PaymentPreview), args.Error(1)
}

func validBookingPayload() requests.CreateBooking {
	return requests.CreateBooking{
		Patient: requests.RegisterPatient{
			Name:   "Asha Rao",
			Phone:  "9876543210",
			Gender: "female",
		},
		DoctorID:  "doc-1",
		VisitType: "first",
		Payment: requests.PaymentInput{
			Method:     "cash",
			CashAmount: 300,
		},
	}
}

func TestBookingRouter_CreateBooking(t *testing.T) {
	logger := zap.NewNop()

	t.Run("valid OPD submit", func(t *testing.T) {
		mockUsecase := new(MockBookingUsecase)
		mockUsecase.On("Submit", mock.Anything, "opd", mock.AnythingOfType("*requests.CreateBooking")).Return(&responses.CreateBooking{
			EntryID:  "entry-1",
			UHID:     "AB12CD34EF",
			Modality: "opd",
		}, nil)

		controller := bookings.NewBookingController(logger, mockUsecase)
		router := chi.NewRouter()
		attachBookingRoutes(router, controller)

		jsonBody, _ := json.Marshal(validBookingPayload())
		req := httptest.NewRequest("POST", "/opd", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("unknown modality rejected", func(t *testing.T) {
		mockUsecase := new(MockBookingUsecase)
		controller := bookings.NewBookingController(logger, mockUsecase)
		router := chi.NewRouter()
		attachBookingRoutes(router, controller)

		jsonBody, _ := json.Marshal(validBookingPayload())
		req := httptest.NewRequest("POST", "/radiology", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "Submit")
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		mockUsecase := new(MockBookingUsecase)
		controller := bookings.NewBookingController(logger, mockUsecase)
		router := chi.NewRouter()
		attachBookingRoutes(router, controller)

		req := httptest.NewRequest("POST", "/opd", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "Submit")
	})

	t.Run("missing payment section rejected by validation", func(t *testing.T) {
		mockUsecase := new(MockBookingUsecase)
		controller := bookings.NewBookingController(logger, mockUsecase)
		router := chi.NewRouter()
		attachBookingRoutes(router, controller)

		payload := validBookingPayload()
		payload.Payment = requests.PaymentInput{}
		jsonBody, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/casualty", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "Submit")
	})
}

func TestBookingRouter_PreviewPayment(t *testing.T) {
	logger := zap.NewNop()

	mockUsecase := new(MockBookingUsecase)
	mockUsecase.On("PreviewPayment", mock.Anything, mock.AnythingOfType("*requests.PaymentPreview")).Return(&responses.PaymentPreview{
		BaseCharge: 500,
		Breakdown: responses.PaymentBreakdown{
			Method:      "cash",
			CashAmount:  300,
			Discount:    200,
			FinalAmount: 100,
		},
	}, nil)

	controller := bookings.NewBookingController(logger, mockUsecase)
	router := chi.NewRouter()
	attachPaymentRoutes(router, controller)

	payload := requests.PaymentPreview{
		Modality:   "opd",
		DoctorID:   "doc-1",
		VisitType:  "first",
		Method:     "cash",
		CashAmount: 300,
	}
	jsonBody, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/preview", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body responses.ResponseDTO
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.True(t, body.Success)
	mockUsecase.AssertExpectations(t)
}
