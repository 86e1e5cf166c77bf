package identity

import (
	"context"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
)

// UHIDChecker answers whether an identifier is already taken in the
// primary registry.
type UHIDChecker interface {
	Exists(ctx context.Context, uhid string) (bool, error)
}

// Allocator decides the canonical identifier for a submission. It is
// stateless between calls.
type Allocator struct {
	primary UHIDChecker
}

func NewAllocator(primary UHIDChecker) *Allocator {
	return &Allocator{primary: primary}
}

type Resolution struct {
	UHID  string
	IsNew bool
}

// Resolve reuses a confirmed suggestion's identifier verbatim, without
// re-deriving any fields. Otherwise it generates a fresh UHID, checking
// the primary registry before use with a bounded number of attempts.
func (a *Allocator) Resolve(ctx context.Context, selectedUHID string) (Resolution, error) {
	if selectedUHID != "" {
		return Resolution{UHID: selectedUHID, IsNew: false}, nil
	}

	for attempt := 0; attempt < constvars.UHIDMaxGenerateAttempts; attempt++ {
		uhid, err := utils.GenerateUHID()
		if err != nil {
			return Resolution{}, exceptions.ErrUHIDAttemptsExhausted(err)
		}

		taken, err := a.primary.Exists(ctx, uhid)
		if err != nil {
			return Resolution{}, err
		}
		if !taken {
			return Resolution{UHID: uhid, IsNew: true}, nil
		}
	}

	return Resolution{}, exceptions.ErrUHIDAttemptsExhausted(nil)
}
