package shared

import (
	"context"
	"time"
)

// IdempotencyState is the state of a claimed idempotency key
type IdempotencyState string

const (
	IdempotencyInFlight  IdempotencyState = "in_flight"
	IdempotencyCompleted IdempotencyState = "completed"
)

// IdempotencyRecord is what a store remembers about a key
type IdempotencyRecord struct {
	State IdempotencyState `json:"state"`
	// ResourceID identifies the resource created by the completed request
	ResourceID string `json:"resource_id,omitempty"`
}

// IdempotencyStore guards client-supplied idempotency keys on creation requests.
type IdempotencyStore interface {
	// Reserve claims key for ttl. It returns (nil, nil) when the key was
	// free, or the existing record when another request already claimed it.
	Reserve(ctx context.Context, key string, ttl time.Duration) (*IdempotencyRecord, error)

	// Complete marks a reserved key as completed with the created resource id
	Complete(ctx context.Context, key, resourceID string, ttl time.Duration) error

	// Release drops a reservation so the request can be retried
	Release(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}

// IdempotencyConfig holds configuration for idempotency handling
type IdempotencyConfig struct {
	// TTL is how long a key is remembered. Default: 24 hours
	TTL time.Duration

	// Enabled determines whether Idempotency-Key headers are honoured
	Enabled bool
}

// DefaultIdempotencyConfig returns the default idempotency configuration
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     24 * time.Hour,
		Enabled: true,
	}
}
