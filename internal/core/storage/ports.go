package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by Store.Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

// Store is the persisted client state: a flat key to JSON-string mapping.
// This is a port; RedisAdapter is the production implementation.
type Store interface {
	// Get returns the raw value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Ping checks if the backing service is reachable.
	Ping(ctx context.Context) error

	// Close releases the connection.
	Close() error
}

// ParseError reports a stored value that could not be decoded.
// Callers treat it as "absent" and never surface it as a page failure.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed value under %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Key joins a namespace with a session id, e.g. "elitestore-cart:abc".
func Key(namespace, sessionID string) string {
	return namespace + ":" + sessionID
}
