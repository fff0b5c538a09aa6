package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const (
	// IdempotencyKeyPrefix marks keys this service generated
	IdempotencyKeyPrefix = "awei"
	// IdempotencyKeyLength is the length of the random part in bytes
	IdempotencyKeyLength = 24
)

// GenerateIdempotencyKey generates a unique key with format: awei_<random_base64>.
// The gateway deduplicates retried requests that carry the same key.
func GenerateIdempotencyKey() (string, error) {
	randomBytes := make([]byte, IdempotencyKeyLength)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	randomPart := base64.RawURLEncoding.EncodeToString(randomBytes)
	return fmt.Sprintf("%s_%s", IdempotencyKeyPrefix, randomPart), nil
}
