package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"alphanum":         "must contain only alphanumeric characters",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"numeric":          "must be a number",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"base64":           "must be a valid base64 string",
	"required_if":      "is required when %s is %s",
	"required_without": "is required when %s is not present",
	"phone_number":     "must be a 10 digit phone number",
	"visit_type":       "must be either 'first' or 'follow_up'",
	"payment_method":   "must be one of 'cash', 'online' or 'mixed'",
	"modality":         "must be one of 'opd', 'casualty', 'pathology' or 'ipd'",
	"triage":           "must be one of 'red', 'yellow', 'green' or 'black'",
	"gender":           "must be one of 'male', 'female' or 'other'",
	"uhid":             "must be a 10 character uppercase alphanumeric identifier",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"len":              true,
	"oneof":            true,
	"gt":               true,
	"gte":              true,
	"lt":               true,
	"lte":              true,
	"required_if":      true,
	"required_without": true,
}
