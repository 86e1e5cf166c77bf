package utils

import (
	"intake-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeRegisterPatientRequest(input *requests.RegisterPatient) {
	input.SelectedUHID = strings.ToUpper(strings.TrimSpace(input.SelectedUHID))
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.DOB = strings.TrimSpace(input.DOB)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	SanitizeRegisterPatientRequest(&input.Patient)
	input.ServiceName = strings.TrimSpace(input.ServiceName)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.VisitType = strings.ToLower(strings.TrimSpace(input.VisitType))
	input.Studies = cleanWhiteSpaceFromEachStringOfAnArray(input.Studies)
	input.TriageCategory = strings.ToLower(strings.TrimSpace(input.TriageCategory))
	input.Payment.Method = strings.ToLower(strings.TrimSpace(input.Payment.Method))
}

func SanitizePaymentPreviewRequest(input *requests.PaymentPreview) {
	input.Modality = strings.ToLower(strings.TrimSpace(input.Modality))
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.VisitType = strings.ToLower(strings.TrimSpace(input.VisitType))
	input.Method = strings.ToLower(strings.TrimSpace(input.Method))
}
