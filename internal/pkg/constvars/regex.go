package constvars

const (
	RegexUHID = `^[A-Z0-9]{10}$`
	// Front-desk phone entry is the raw local number, digits only.
	RegexPhoneNumberTenDigits = `^[0-9]{10}$`
)
