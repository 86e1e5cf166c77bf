package responses

type PaymentBreakdown struct {
	Method       string  `json:"method"`
	CashAmount   float64 `json:"cash_amount"`
	OnlineAmount float64 `json:"online_amount"`
	Discount     float64 `json:"discount"`
	FinalAmount  float64 `json:"final_amount"`
}

type CreateBooking struct {
	EntryID   string           `json:"entry_id"`
	UHID      string           `json:"uhid"`
	Modality  string           `json:"modality"`
	Breakdown PaymentBreakdown `json:"breakdown"`
}

type PaymentPreview struct {
	BaseCharge float64          `json:"base_charge"`
	Breakdown  PaymentBreakdown `json:"breakdown"`
}
