package identity

import (
	"context"
	"regexp"
	"testing"

	"intake-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUHIDChecker struct {
	mock.Mock
}

func (m *MockUHIDChecker) Exists(ctx context.Context, uhid string) (bool, error) {
	args := m.Called(ctx, uhid)
	return args.Bool(0), args.Error(1)
}

func TestAllocator_Resolve(t *testing.T) {
	uhidPattern := regexp.MustCompile(constvars.RegexUHID)

	t.Run("confirmed suggestion reused verbatim", func(t *testing.T) {
		checker := new(MockUHIDChecker)

		allocator := NewAllocator(checker)
		resolution, err := allocator.Resolve(context.Background(), "AB12CD34EF")

		assert.NoError(t, err)
		assert.Equal(t, "AB12CD34EF", resolution.UHID)
		assert.False(t, resolution.IsNew)
		checker.AssertNotCalled(t, "Exists")
	})

	t.Run("fresh identifier matches the charset and length", func(t *testing.T) {
		checker := new(MockUHIDChecker)
		checker.On("Exists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

		allocator := NewAllocator(checker)
		resolution, err := allocator.Resolve(context.Background(), "")

		assert.NoError(t, err)
		assert.True(t, resolution.IsNew)
		assert.Regexp(t, uhidPattern, resolution.UHID)
	})

	t.Run("taken identifier triggers another attempt", func(t *testing.T) {
		checker := new(MockUHIDChecker)
		checker.On("Exists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil).Once()
		checker.On("Exists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()

		allocator := NewAllocator(checker)
		resolution, err := allocator.Resolve(context.Background(), "")

		assert.NoError(t, err)
		assert.True(t, resolution.IsNew)
		checker.AssertNumberOfCalls(t, "Exists", 2)
	})

	t.Run("exhausted attempts surface an error", func(t *testing.T) {
		checker := new(MockUHIDChecker)
		checker.On("Exists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)

		allocator := NewAllocator(checker)
		_, err := allocator.Resolve(context.Background(), "")

		assert.Error(t, err)
		checker.AssertNumberOfCalls(t, "Exists", constvars.UHIDMaxGenerateAttempts)
	})
}
