package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient-related messages
	PatientRegisteredSuccess  = "patient registered successfully"
	PatientUpdatedSuccess     = "patient updated successfully"
	PatientGetSuccess         = "get patient successfully"
	PatientSuggestionsSuccess = "get patient suggestions successfully"

	// Booking-related messages
	BookingCreatedSuccess = "booking created successfully"
	PaymentPreviewSuccess = "payment preview computed successfully"

	// Doctor-related messages
	DoctorListSuccess  = "get doctors successfully"
	DoctorQuoteSuccess = "get charge quote successfully"
)
