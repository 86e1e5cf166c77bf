package models

import "time"

const (
	IntentStatusPending  = "pending"
	IntentStatusComplete = "complete"
)

// MirrorIntent is the outbox record for the primary/mirror dual write.
// It is written to the primary registry before either projection, and
// marked complete only after both succeed. The reconciler replays
// pending intents; the mirror write is an idempotent upsert keyed by
// UHID, so replays are safe.
type MirrorIntent struct {
	ID          string              `bson:"_id"`
	PatientID   string              `bson:"patientId"`
	Mirror      MirrorPatientRecord `bson:"mirror"`
	Status      string              `bson:"status"`
	Attempts    int                 `bson:"attempts"`
	CreatedAt   time.Time           `bson:"createdAt"`
	CompletedAt *time.Time          `bson:"completedAt,omitempty"`
}
