package constvars

const (
	URLParamUHID     = "uhid"
	URLParamDoctorID = "doctor_id"
	URLParamModality = "modality"
)

const (
	URLQueryParamFragment   = "fragment"
	URLQueryParamField      = "field"
	URLQueryParamConfirmed  = "confirmed"
	URLQueryParamVisitType  = "visit_type"
	URLQueryParamSpecialist = "specialist"
)
