package responses

type Doctor struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Specialist       []string `json:"specialist,omitempty"`
	FirstVisitCharge float64  `json:"first_visit_charge"`
	FollowUpCharge   float64  `json:"follow_up_charge"`
}

type ChargeQuote struct {
	DoctorID   string  `json:"doctor_id"`
	VisitType  string  `json:"visit_type"`
	BaseCharge float64 `json:"base_charge"`
}
