package responses

// Suggestion is one directory hit, tagged with the registry it came
// from. The same person present in both registries yields two entries.
type Suggestion struct {
	Source string `json:"source"`
	UHID   string `json:"uhid"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
}

type Patient struct {
	UHID      string `json:"uhid"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Age       int    `json:"age,omitempty"`
	DOB       string `json:"dob,omitempty"`
	Gender    string `json:"gender"`
	Address   string `json:"address,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type RegisterPatient struct {
	UHID  string `json:"uhid"`
	IsNew bool   `json:"is_new"`
}
