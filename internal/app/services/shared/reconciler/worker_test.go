package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/models"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockQueueService struct {
	mock.Mock
}

func (m *MockQueueService) FetchN(ctx context.Context, n int) ([]QueuedItem, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]QueuedItem), args.Error(1)
}

func (m *MockQueueService) Ack(deliveryTag uint64) error {
	args := m.Called(deliveryTag)
	return args.Error(0)
}

func (m *MockQueueService) Reenqueue(ctx context.Context, msg IntentMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockQueueService) EnqueueToDeadQueue(ctx context.Context, msg IntentMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockIntentRepository struct {
	mock.Mock
}

func (m *MockIntentRepository) Create(ctx context.Context, intent *models.MirrorIntent) error {
	args := m.Called(ctx, intent)
	return args.Error(0)
}

func (m *MockIntentRepository) FindByID(ctx context.Context, id string) (*models.MirrorIntent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MirrorIntent), args.Error(1)
}

func (m *MockIntentRepository) FindPending(ctx context.Context, olderThan time.Time, limit int64) ([]models.MirrorIntent, error) {
	args := m.Called(ctx, olderThan, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MirrorIntent), args.Error(1)
}

func (m *MockIntentRepository) MarkComplete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIntentRepository) IncrementAttempts(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMirrorWriter struct {
	mock.Mock
}

func (m *MockMirrorWriter) Upsert(ctx context.Context, record *models.MirrorPatientRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func workerConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.Reconciler.SweepIntervalInSeconds = 60
	cfg.Reconciler.MaxAttempts = 3
	cfg.Reconciler.MaxBatch = 10
	cfg.Reconciler.PendingAgeInSeconds = 30
	return cfg
}

func pendingIntent(id string) *models.MirrorIntent {
	return &models.MirrorIntent{
		ID:        id,
		PatientID: "AB12CD34EF",
		Mirror:    models.MirrorPatientRecord{ID: "AB12CD34EF", PatientID: "AB12CD34EF", Name: "Asha Rao"},
		Status:    models.IntentStatusPending,
		CreatedAt: time.Now().Add(-time.Minute),
	}
}

func grantLock(lockerSvc *MockLockerService) {
	lockerSvc.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(true, "lock-val", nil)
	lockerSvc.On("Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-val").Return(nil)
}

func TestWorker_RunOnce_LockNotAcquired(t *testing.T) {
	queue := new(MockQueueService)
	intents := new(MockIntentRepository)
	mirror := new(MockMirrorWriter)
	lockerSvc := new(MockLockerService)

	lockerSvc.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(false, "", nil)

	w := NewWorker(zap.NewNop(), workerConfig(), lockerSvc, queue, intents, mirror)
	w.runOnce(context.Background(), time.Now(), time.Minute)

	queue.AssertNotCalled(t, "FetchN")
	intents.AssertNotCalled(t, "FindPending")
}

func TestWorker_QueueReplay(t *testing.T) {
	t.Run("pending intent replayed and acked", func(t *testing.T) {
		queue := new(MockQueueService)
		intents := new(MockIntentRepository)
		mirror := new(MockMirrorWriter)
		lockerSvc := new(MockLockerService)
		grantLock(lockerSvc)

		item := QueuedItem{DeliveryTag: 7, Message: IntentMessage{IntentID: "intent-1"}}
		queue.On("FetchN", mock.Anything, 10).Return([]QueuedItem{item}, nil)
		intents.On("FindByID", mock.Anything, "intent-1").Return(pendingIntent("intent-1"), nil)
		mirror.On("Upsert", mock.Anything, mock.AnythingOfType("*models.MirrorPatientRecord")).Return(nil)
		intents.On("MarkComplete", mock.Anything, "intent-1").Return(nil)
		queue.On("Ack", uint64(7)).Return(nil)
		intents.On("FindPending", mock.Anything, mock.Anything, int64(10)).Return([]models.MirrorIntent{}, nil)

		w := NewWorker(zap.NewNop(), workerConfig(), lockerSvc, queue, intents, mirror)
		w.runOnce(context.Background(), time.Now(), time.Minute)

		mirror.AssertExpectations(t)
		intents.AssertExpectations(t)
		queue.AssertExpectations(t)
	})

	t.Run("already complete intent acked without replay", func(t *testing.T) {
		queue := new(MockQueueService)
		intents := new(MockIntentRepository)
		mirror := new(MockMirrorWriter)
		lockerSvc := new(MockLockerService)
		grantLock(lockerSvc)

		done := pendingIntent("intent-1")
		done.Status = models.IntentStatusComplete

		item := QueuedItem{DeliveryTag: 7, Message: IntentMessage{IntentID: "intent-1"}}
		queue.On("FetchN", mock.Anything, 10).Return([]QueuedItem{item}, nil)
		intents.On("FindByID", mock.Anything, "intent-1").Return(done, nil)
		queue.On("Ack", uint64(7)).Return(nil)
		intents.On("FindPending", mock.Anything, mock.Anything, int64(10)).Return([]models.MirrorIntent{}, nil)

		w := NewWorker(zap.NewNop(), workerConfig(), lockerSvc, queue, intents, mirror)
		w.runOnce(context.Background(), time.Now(), time.Minute)

		mirror.AssertNotCalled(t, "Upsert")
		queue.AssertExpectations(t)
	})

	t.Run("replay failure below the budget goes back to the tail", func(t *testing.T) {
		queue := new(MockQueueService)
		intents := new(MockIntentRepository)
		mirror := new(MockMirrorWriter)
		lockerSvc := new(MockLockerService)
		grantLock(lockerSvc)

		item := QueuedItem{DeliveryTag: 7, Message: IntentMessage{IntentID: "intent-1"}}
		queue.On("FetchN", mock.Anything, 10).Return([]QueuedItem{item}, nil)
		intents.On("FindByID", mock.Anything, "intent-1").Return(pendingIntent("intent-1"), nil)
		mirror.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("mirror unreachable"))
		queue.On("Reenqueue", mock.Anything, IntentMessage{IntentID: "intent-1", FailedCount: 1}).Return(nil)
		queue.On("Ack", uint64(7)).Return(nil)
		intents.On("IncrementAttempts", mock.Anything, "intent-1").Return(nil)
		intents.On("FindPending", mock.Anything, mock.Anything, int64(10)).Return([]models.MirrorIntent{}, nil)

		w := NewWorker(zap.NewNop(), workerConfig(), lockerSvc, queue, intents, mirror)
		w.runOnce(context.Background(), time.Now(), time.Minute)

		queue.AssertExpectations(t)
		intents.AssertExpectations(t)
		queue.AssertNotCalled(t, "EnqueueToDeadQueue")
	})

	t.Run("replay failure at the budget parks in the dead-letter queue", func(t *testing.T) {
		queue := new(MockQueueService)
		intents := new(MockIntentRepository)
		mirror := new(MockMirrorWriter)
		lockerSvc := new(MockLockerService)
		grantLock(lockerSvc)

		item := QueuedItem{DeliveryTag: 7, Message: IntentMessage{IntentID: "intent-1", FailedCount: 2}}
		queue.On("FetchN", mock.Anything, 10).Return([]QueuedItem{item}, nil)
		intents.On("FindByID", mock.Anything, "intent-1").Return(pendingIntent("intent-1"), nil)
		mirror.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("mirror unreachable"))
		queue.On("EnqueueToDeadQueue", mock.Anything, IntentMessage{IntentID: "intent-1", FailedCount: 3}).Return(nil)
		queue.On("Ack", uint64(7)).Return(nil)
		intents.On("IncrementAttempts", mock.Anything, "intent-1").Return(nil)
		intents.On("FindPending", mock.Anything, mock.Anything, int64(10)).Return([]models.MirrorIntent{}, nil)

		w := NewWorker(zap.NewNop(), workerConfig(), lockerSvc, queue, intents, mirror)
		w.runOnce(context.Background(), time.Now(), time.Minute)

		queue.AssertExpectations(t)
		queue.AssertNotCalled(t, "Reenqueue")
	})
}

func TestWorker_SweepOutbox(t *testing.T) {
	t.Run("aged pending intent replayed and completed", func(t *testing.T) {
		queue := new(MockQueueService)
		intents := new(MockIntentRepository)
		mirror := new(MockMirrorWriter)
		lockerSvc := new(MockLockerService)
		grantLock(lockerSvc)

		queue.On("FetchN", mock.Anything, 10).Return([]QueuedItem{}, nil)
		intents.On("FindPending", mock.Anything, mock.Anything, int64(10)).Return([]models.MirrorIntent{*pendingIntent("intent-1")}, nil)
		mirror.On("Upsert", mock.Anything, mock.AnythingOfType("*models.MirrorPatientRecord")).Return(nil)
		intents.On("MarkComplete", mock.Anything, "intent-1").Return(nil)

		w := NewWorker(zap.NewNop(), workerConfig(), lockerSvc, queue, intents, mirror)
		w.runOnce(context.Background(), time.Now(), time.Minute)

		mirror.AssertExpectations(t)
		intents.AssertExpectations(t)
	})

	t.Run("sweep replay failure increments the attempt counter", func(t *testing.T) {
		queue := new(MockQueueService)
		intents := new(MockIntentRepository)
		mirror := new(MockMirrorWriter)
		lockerSvc := new(MockLockerService)
		grantLock(lockerSvc)

		queue.On("FetchN", mock.Anything, 10).Return([]QueuedItem{}, nil)
		intents.On("FindPending", mock.Anything, mock.Anything, int64(10)).Return([]models.MirrorIntent{*pendingIntent("intent-1")}, nil)
		mirror.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("mirror unreachable"))
		intents.On("IncrementAttempts", mock.Anything, "intent-1").Return(nil)

		w := NewWorker(zap.NewNop(), workerConfig(), lockerSvc, queue, intents, mirror)
		w.runOnce(context.Background(), time.Now(), time.Minute)

		intents.AssertExpectations(t)
		intents.AssertNotCalled(t, "MarkComplete")
	})

	t.Run("exhausted intent parked without another replay", func(t *testing.T) {
		queue := new(MockQueueService)
		intents := new(MockIntentRepository)
		mirror := new(MockMirrorWriter)
		lockerSvc := new(MockLockerService)
		grantLock(lockerSvc)

		exhausted := *pendingIntent("intent-1")
		exhausted.Attempts = 3

		queue.On("FetchN", mock.Anything, 10).Return([]QueuedItem{}, nil)
		intents.On("FindPending", mock.Anything, mock.Anything, int64(10)).Return([]models.MirrorIntent{exhausted}, nil)
		queue.On("EnqueueToDeadQueue", mock.Anything, IntentMessage{IntentID: "intent-1", FailedCount: 3}).Return(nil)

		w := NewWorker(zap.NewNop(), workerConfig(), lockerSvc, queue, intents, mirror)
		w.runOnce(context.Background(), time.Now(), time.Minute)

		queue.AssertExpectations(t)
		mirror.AssertNotCalled(t, "Upsert")
	})
}
