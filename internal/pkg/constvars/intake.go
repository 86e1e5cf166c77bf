package constvars

type ContextKey string

// Modalities double as the per-modality ledger collection names in the
// primary registry.
const (
	ModalityOPD       = "opd"
	ModalityCasualty  = "casualty"
	ModalityPathology = "pathology"
	ModalityIPD       = "ipd"
)

const (
	VisitTypeFirst    = "first"
	VisitTypeFollowUp = "follow_up"
)

const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"
	PaymentMethodMixed  = "mixed"
)

const (
	TriageRed    = "red"
	TriageYellow = "yellow"
	TriageGreen  = "green"
	TriageBlack  = "black"
)

const (
	SearchFieldName  = "name"
	SearchFieldPhone = "phone"

	// Fragments shorter than this return no suggestions for either field.
	SearchMinFragmentLength = 2

	SearchResultLimit = 20
)

const (
	RegistrySourcePrimary = "primary"
	RegistrySourceMirror  = "mirror"
)

const (
	UHIDLength  = 10
	UHIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Bounded attempts for the existence-check-then-generate loop.
	UHIDMaxGenerateAttempts = 3
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// mime.ExtensionsByType can hand back ".jpe" for image/jpeg.
var ImageAllowedPatientPhotoFormats = []string{".jpg", ".jpeg", ".jpe", ".png"}
