package reconciler

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/app/models"
	"intake-service/internal/app/services/core/registry"
	"intake-service/internal/app/services/shared/locker"
	"intake-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// QueueService is the queue surface the worker drives. *Queue
// implements it over a live amqp channel.
type QueueService interface {
	FetchN(ctx context.Context, n int) ([]QueuedItem, error)
	Ack(deliveryTag uint64) error
	Reenqueue(ctx context.Context, msg IntentMessage) error
	EnqueueToDeadQueue(ctx context.Context, msg IntentMessage) error
}

// Worker replays pending mirror intents with at-least-once semantics.
// It drains the intent queue on every tick and additionally sweeps the
// outbox for intents that never made it onto the queue (process crash
// between the primary insert and the publish). The mirror write is an
// idempotent upsert keyed by UHID, so a double replay is harmless.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  locker.LockerService
	queue   QueueService
	intents registry.IntentRepository
	mirror  registry.MirrorWriter
	stop    chan struct{}
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc locker.LockerService,
	queue QueueService,
	intents registry.IntentRepository,
	mirror registry.MirrorWriter,
) *Worker {
	return &Worker{
		log:     log,
		cfg:     cfg,
		locker:  lockerSvc,
		queue:   queue,
		intents: intents,
		mirror:  mirror,
		stop:    make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt
// execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	interval := time.Duration(w.cfg.Reconciler.SweepIntervalInSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case now := <-ticker.C:
				w.runOnce(ctx, now, interval)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *Worker) runOnce(ctx context.Context, now time.Time, interval time.Duration) {
	ttl := interval - time.Second
	if ttl < time.Second {
		ttl = time.Second
	}
	acquired, lockVal, err := w.locker.TryLock(ctx, constvars.RedisKeyReconcilerLock, ttl)
	if err != nil {
		w.log.Info("reconciler lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyReconcilerLock, lockVal); err != nil {
			w.log.Error("reconciler unlock failed", zap.Error(err))
		}
	}()

	w.drainQueue(ctx)
	w.sweepOutbox(ctx, now)
}

// drainQueue processes intent ids pushed by the registration path when
// the synchronous mirror write failed.
func (w *Worker) drainQueue(ctx context.Context) {
	items, err := w.queue.FetchN(ctx, w.cfg.Reconciler.MaxBatch)
	if err != nil {
		w.log.Info("reconciler queue fetch failed", zap.Error(err))
		return
	}

	for _, item := range items {
		w.processItem(ctx, item)
	}
}

func (w *Worker) processItem(ctx context.Context, item QueuedItem) {
	msg := item.Message

	intent, err := w.intents.FindByID(ctx, msg.IntentID)
	if err != nil {
		w.log.Info("reconciler intent lookup failed",
			zap.String("intent_id", msg.IntentID),
			zap.Error(err))
		w.requeueOnError(ctx, item, msg)
		return
	}
	if intent == nil || intent.Status == models.IntentStatusComplete {
		// Already reconciled by the sweep or a previous delivery.
		if ackErr := w.queue.Ack(item.DeliveryTag); ackErr != nil {
			w.log.Info("reconciler ack failed", zap.Error(ackErr))
		}
		return
	}

	if err := w.replay(ctx, intent); err != nil {
		w.log.Info("reconciler replay failed",
			zap.String("intent_id", intent.ID),
			zap.String("uhid", intent.PatientID),
			zap.Error(err))
		w.requeueOnError(ctx, item, msg)
		return
	}

	if ackErr := w.queue.Ack(item.DeliveryTag); ackErr != nil {
		w.log.Info("reconciler ack failed after replay", zap.Error(ackErr))
	}
	w.log.Info("mirror intent reconciled via queue",
		zap.String("intent_id", intent.ID),
		zap.String("uhid", intent.PatientID))
}

// sweepOutbox catches intents that never reached the queue at all.
func (w *Worker) sweepOutbox(ctx context.Context, now time.Time) {
	age := time.Duration(w.cfg.Reconciler.PendingAgeInSeconds) * time.Second
	if age <= 0 {
		age = time.Minute
	}

	pending, err := w.intents.FindPending(ctx, now.Add(-age), int64(w.cfg.Reconciler.MaxBatch))
	if err != nil {
		w.log.Info("reconciler sweep query failed", zap.Error(err))
		return
	}

	for i := range pending {
		intent := pending[i]
		if intent.Attempts >= w.maxAttempts() {
			w.log.Warn("mirror intent exceeded retry budget, parking in dead-letter queue",
				zap.String("intent_id", intent.ID),
				zap.String("uhid", intent.PatientID),
				zap.Int("attempts", intent.Attempts))
			if err := w.queue.EnqueueToDeadQueue(ctx, IntentMessage{IntentID: intent.ID, FailedCount: intent.Attempts}); err != nil {
				w.log.Error("reconciler dead-letter publish failed", zap.Error(err))
			}
			continue
		}

		if err := w.replay(ctx, &intent); err != nil {
			w.log.Info("reconciler sweep replay failed",
				zap.String("intent_id", intent.ID),
				zap.String("uhid", intent.PatientID),
				zap.Error(err))
			if incErr := w.intents.IncrementAttempts(ctx, intent.ID); incErr != nil {
				w.log.Error("reconciler attempt counter update failed", zap.Error(incErr))
			}
			continue
		}

		w.log.Info("mirror intent reconciled via sweep",
			zap.String("intent_id", intent.ID),
			zap.String("uhid", intent.PatientID))
	}
}

func (w *Worker) replay(ctx context.Context, intent *models.MirrorIntent) error {
	if err := w.mirror.Upsert(ctx, &intent.Mirror); err != nil {
		return err
	}
	return w.intents.MarkComplete(ctx, intent.ID)
}

func (w *Worker) requeueOnError(ctx context.Context, item QueuedItem, msg IntentMessage) {
	msg.FailedCount++
	if msg.FailedCount >= w.maxAttempts() {
		if err := w.queue.EnqueueToDeadQueue(ctx, msg); err != nil {
			w.log.Info("reconciler dead-letter publish failed", zap.Error(err))
			return
		}
	} else {
		if err := w.queue.Reenqueue(ctx, msg); err != nil {
			w.log.Info("reconciler reenqueue failed", zap.Error(err))
			return
		}
	}
	if err := w.queue.Ack(item.DeliveryTag); err != nil {
		w.log.Info("reconciler ack failed after requeue", zap.Error(err))
	}
	if err := w.intents.IncrementAttempts(ctx, msg.IntentID); err != nil {
		w.log.Info("reconciler attempt counter update failed", zap.Error(err))
	}
}

func (w *Worker) maxAttempts() int {
	max := w.cfg.Reconciler.MaxAttempts
	if max <= 0 {
		max = 5
	}
	return max
}
