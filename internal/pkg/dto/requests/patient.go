package requests

// RegisterPatient carries the identity fields typed into the intake
// form. SelectedUHID is set only when the clerk confirmed a suggestion
// from the directory dropdown; in that case the identifier is reused
// verbatim and no new mirror record is created.
type RegisterPatient struct {
	SelectedUHID string `json:"selected_uhid,omitempty" validate:"omitempty,uhid"`
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"required,phone_number"`
	Age          int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	DOB          string `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender       string `json:"gender" validate:"required,gender"`
	Address      string `json:"address,omitempty" validate:"omitempty,max=500"`

	// Optional photo captured at the desk, as a base64 data URI.
	Photo string `json:"photo,omitempty"`

	PhotoData      []byte `json:"-"`
	PhotoExtension string `json:"-"`
}
