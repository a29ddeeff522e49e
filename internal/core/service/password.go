package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/itsyourradio/radio-api/internal/api/metrics"
)

const defaultMaxConcurrentHashes = 4

// dummyHash is a valid bcrypt digest of an arbitrary string. Login compares
// against it when no account matches the email, so the missing-account path
// costs the same as a real verification.
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOa5hnhtNGRjukDWO2xzg3sjQTL1dDQ2u")

// PasswordHasher wraps bcrypt behind a weighted semaphore so a burst of login
// attempts cannot saturate the scheduler with CPU-bound hashing.
type PasswordHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewPasswordHasher creates a hasher with the given bcrypt cost and
// concurrency limit. Zero or negative values select the defaults.
func NewPasswordHasher(cost, maxConcurrent int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentHashes
	}
	return &PasswordHasher{cost: cost, sem: semaphore.NewWeighted(int64(maxConcurrent))}
}

// Hash derives a salted digest of password. The salt is generated per call
// and embedded in the digest. Errors only on internal failure, never on the
// password content.
func (h *PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	start := time.Now()
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("acquire hash slot: %w", err)
	}
	defer h.sem.Release(1)
	defer func() { metrics.PasswordHashDuration.Observe(time.Since(start).Seconds()) }()

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. Malformed digests return
// false rather than a distinguishable error, so stored-data corruption cannot
// act as a verification oracle.
func (h *PasswordHasher) Verify(ctx context.Context, password, digest string) bool {
	start := time.Now()
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)
	defer func() { metrics.PasswordHashDuration.Observe(time.Since(start).Seconds()) }()

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// VerifyDummy burns one bcrypt comparison against a fixed digest. It always
// returns false.
func (h *PasswordHasher) VerifyDummy(ctx context.Context) bool {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)

	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte("equalize"))
	return false
}
