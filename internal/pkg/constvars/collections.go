package constvars

// Primary registry collections.
const (
	MongoCollectionPatients      = "patients"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionMirrorIntents = "mirror_intents"
)

// Mirror registry keeps a single reduced-field patients collection.
const (
	MongoCollectionMirrorPatients = "patients"
)

const (
	RedisKeyDoctorFormat   = "doctor:%s"
	RedisKeyReconcilerLock = "reconciler:sweep:lock"
)

const (
	MinioPatientPhotoPrefix = "patient_photo"
)
