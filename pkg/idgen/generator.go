// Package idgen allocates short, pronounceable public identifiers.
package idgen

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"socialrobot-be/pkg/proquint"
)

// DefaultMaxAttempts bounds the generate-and-verify loop in Allocate.
const DefaultMaxAttempts = 10

// ErrExhausted is returned when every attempt collided with an existing id.
var ErrExhausted = errors.New("idgen: unique id allocation exhausted")

// ExistsFunc reports whether id is already taken in the backing store.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// Generator produces candidate ids. The zero value is ready to use.
type Generator struct {
	// Now and Random are overridable for tests.
	Now    func() time.Time
	Random func() uint32
}

// Generate mixes 32 random bits with the current unix time (wrapping at
// 2^32) and encodes the result as a proquint such as "lusab-babad".
func (g Generator) Generate() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	random := randomUint32
	if g.Random != nil {
		random = g.Random
	}

	combined := random() + uint32(now().Unix())
	return proquint.EncodeUint32(combined)
}

// Allocate calls Generate until exists reports a free id, giving up with
// ErrExhausted after maxAttempts collisions. A lookup error aborts at once.
func (g Generator) Allocate(ctx context.Context, exists ExistsFunc, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		id := g.Generate()
		taken, err := exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("idgen: checking id %q (attempt %d): %w", id, attempt, err)
		}
		if !taken {
			return id, nil
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrExhausted, maxAttempts)
}

// Generate is shorthand for Generator{}.Generate().
func Generate() string {
	return Generator{}.Generate()
}

func randomUint32() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand only fails when the OS entropy source is unavailable
		return uint32(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint32(b[:])
}
