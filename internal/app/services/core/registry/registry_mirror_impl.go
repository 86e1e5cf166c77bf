package registry

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Mirror keeps a full record in the primary registry consistent with a
// reduced-field copy in the mirror registry, both addressed by the same
// UHID. The two stores are independently administered; there is no
// cross-store transaction, so the new-patient path records an intent in
// the primary store before touching the mirror and the reconciler
// replays whatever did not land.
type Mirror struct {
	Log          *zap.Logger
	Primary      PrimaryWriter
	MirrorStore  MirrorWriter
	Intents      IntentRepository
	Queue        IntentQueue
	HospitalName string
}

func NewRegistryMirror(
	log *zap.Logger,
	primary PrimaryWriter,
	mirrorStore MirrorWriter,
	intents IntentRepository,
	queue IntentQueue,
	hospitalName string,
) *Mirror {
	return &Mirror{
		Log:          log,
		Primary:      primary,
		MirrorStore:  mirrorStore,
		Intents:      intents,
		Queue:        queue,
		HospitalName: hospitalName,
	}
}

// Upsert persists the identity across both stores. A confirmed
// (existing) identity gets a partial merge into the primary record and
// never rewrites the mirror; a new identity gets the full primary
// record plus the reduced mirror projection.
func (m *Mirror) Upsert(ctx context.Context, uhid string, fields models.PatientFields, isNew bool) error {
	if !isNew {
		return m.Primary.MergeFields(ctx, uhid, fields)
	}

	now := time.Now()
	record := &models.PrimaryPatientRecord{
		ID:              uhid,
		UHID:            uhid,
		Name:            fields.Name,
		Phone:           fields.Phone,
		Age:             fields.Age,
		DOB:             fields.DOB,
		Gender:          fields.Gender,
		Address:         fields.Address,
		PhotoObjectName: fields.PhotoObjectName,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := m.Primary.Insert(ctx, record); err != nil {
		return err
	}

	mirrorRecord := models.MirrorPatientRecord{
		ID:           uhid,
		Name:         fields.Name,
		Contact:      fields.Phone,
		Gender:       fields.Gender,
		DOB:          fields.DOB,
		PatientID:    uhid,
		HospitalName: m.HospitalName,
	}

	intent := &models.MirrorIntent{
		ID:        utils.GenerateEntryKey(),
		PatientID: uhid,
		Mirror:    mirrorRecord,
		Status:    models.IntentStatusPending,
		CreatedAt: now,
	}
	if err := m.Intents.Create(ctx, intent); err != nil {
		// No outbox entry to replay from, fall back to the direct write.
		m.Log.Warn("registry mirror intent write failed, writing mirror directly",
			zap.String("uhid", uhid),
			zap.Error(err),
		)
		return m.MirrorStore.Upsert(ctx, &mirrorRecord)
	}

	if err := m.MirrorStore.Upsert(ctx, &mirrorRecord); err != nil {
		// Registration stands: the intent is durable in the primary
		// store and the worker will replay it.
		m.Log.Warn("mirror registry write failed, intent queued for reconciliation",
			zap.String("uhid", uhid),
			zap.String("intent_id", intent.ID),
			zap.Error(err),
		)
		if queueErr := m.Queue.PublishIntent(ctx, intent.ID); queueErr != nil {
			m.Log.Error("failed to publish reconciliation intent, sweep will pick it up",
				zap.String("intent_id", intent.ID),
				zap.Error(queueErr),
			)
		}
		return nil
	}

	if err := m.Intents.MarkComplete(ctx, intent.ID); err != nil {
		// Replay is an idempotent upsert keyed by UHID, a stale pending
		// intent is harmless.
		m.Log.Warn("failed to mark mirror intent complete",
			zap.String("intent_id", intent.ID),
			zap.Error(err),
		)
	}
	return nil
}
