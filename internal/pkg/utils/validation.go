package utils

import (
	"intake-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	uhidRegex  = regexp.MustCompile(constvars.RegexUHID)
	phoneRegex = regexp.MustCompile(constvars.RegexPhoneNumberTenDigits)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("uhid", validateUHID)
	validate.RegisterValidation("visit_type", validateVisitType)
	validate.RegisterValidation("payment_method", validatePaymentMethod)
	validate.RegisterValidation("modality", validateModality)
	validate.RegisterValidation("triage", validateTriage)
	validate.RegisterValidation("gender", validateGender)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateUHID(fl validator.FieldLevel) bool {
	return uhidRegex.MatchString(fl.Field().String())
}

func validateVisitType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.VisitTypeFirst || value == constvars.VisitTypeFollowUp
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.PaymentMethodCash, constvars.PaymentMethodOnline, constvars.PaymentMethodMixed:
		return true
	}
	return false
}

func validateModality(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.ModalityOPD, constvars.ModalityCasualty, constvars.ModalityPathology, constvars.ModalityIPD:
		return true
	}
	return false
}

func validateTriage(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.TriageRed, constvars.TriageYellow, constvars.TriageGreen, constvars.TriageBlack:
		return true
	}
	return false
}

func validateGender(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.GenderMale, constvars.GenderFemale, constvars.GenderOther:
		return true
	}
	return false
}
