package service

import (
	"context"
	"sync"
	"testing"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(4, 2) // low cost to keep the test fast
	ctx := context.Background()

	digest, err := h.Hash(ctx, "s3cret-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret-password" {
		t.Fatalf("digest equals plaintext")
	}

	if !h.Verify(ctx, "s3cret-password", digest) {
		t.Fatalf("Verify rejected the correct password")
	}
	if h.Verify(ctx, "wrong-password", digest) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestPasswordHasher_UniqueSalts(t *testing.T) {
	h := NewPasswordHasher(4, 2)
	ctx := context.Background()

	a, err := h.Hash(ctx, "same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash(ctx, "same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical; salt not fresh per call")
	}
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher(4, 2)
	ctx := context.Background()

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$garbage"} {
		if h.Verify(ctx, "anything", digest) {
			t.Fatalf("Verify accepted malformed digest %q", digest)
		}
	}
}

func TestPasswordHasher_CancelledContext(t *testing.T) {
	h := NewPasswordHasher(4, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := h.Hash(ctx, "password"); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
	if h.Verify(ctx, "password", "$2a$04$abcdefghijklmnopqrstuv") {
		t.Fatalf("Verify must fail closed on cancelled context")
	}
}

func TestPasswordHasher_ConcurrentUse(t *testing.T) {
	h := NewPasswordHasher(4, 2)
	ctx := context.Background()

	digest, err := h.Hash(ctx, "shared")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !h.Verify(ctx, "shared", digest) {
				t.Errorf("concurrent Verify rejected the correct password")
			}
		}()
	}
	wg.Wait()
}
