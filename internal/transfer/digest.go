package transfer

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/zeebo/blake3"
)

// digestBytes is the raw digest width; hex-encoded this yields the fixed
// 32-character token callers treat as opaque.
const digestBytes = 16

// Digest computes a deterministic, order-sensitive content fingerprint of an
// entire file as a fixed-width lowercase hex token. The token identifies
// content for comparison and transfer verification; it is not a cryptographic
// commitment.
func (t *Handler) Digest(ctx context.Context, path string) (string, error) {
	file, err := t.OSOps.Open(path)
	if err != nil {
		return "", fmt.Errorf("(transfer) %w: %w", ErrSourceOpen, err)
	}
	defer file.Close()

	hasher := blake3.New()

	reader := &contextReader{ctx: ctx, reader: file}
	if _, err := io.Copy(hasher, reader); err != nil {
		return "", fmt.Errorf("(transfer) %w: %w", ErrRead, err)
	}

	sum := make([]byte, digestBytes)
	if _, err := io.ReadFull(hasher.Digest(), sum); err != nil {
		return "", fmt.Errorf("(transfer) %w: %w", ErrRead, err)
	}

	return hex.EncodeToString(sum), nil
}

// Verify recomputes the digest of a file and checks it against an expected
// token, case-insensitively. A mismatch reports [ErrFilesDiffer]; read
// failures propagate.
func (t *Handler) Verify(ctx context.Context, path string, expected string) error {
	actual, err := t.Digest(ctx, path)
	if err != nil {
		return err
	}

	if !strings.EqualFold(actual, strings.TrimSpace(expected)) {
		return fmt.Errorf("(transfer) %w: digest mismatch", ErrFilesDiffer)
	}

	return nil
}
