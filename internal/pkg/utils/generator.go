package utils

import (
	"crypto/rand"
	"fmt"
	"intake-service/internal/pkg/constvars"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// GenerateUHID draws a 10 character identifier uniformly from [A-Z0-9].
// Callers are expected to verify the identifier is free before use.
func GenerateUHID() (string, error) {
	max := big.NewInt(int64(len(constvars.UHIDCharset)))

	id := make([]byte, constvars.UHIDLength)
	for i := range id {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		id[i] = constvars.UHIDCharset[num.Int64()]
	}

	return string(id), nil
}

// GenerateEntryKey returns a push-generated key for appending ledger
// entries without coordination.
func GenerateEntryKey() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return uuid.NewString()
}

func GeneratePhotoObjectName(uhid, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", constvars.MinioPatientPhotoPrefix, uhid, timestamp, fileExtension)
}
