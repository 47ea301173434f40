package cache

import (
	"errors"
)

// Sentinel errors for caching operations.
var (
	// ErrCacheMiss is returned by helpers that treat a miss as an error.
	ErrCacheMiss = errors.New("cache miss")

	// ErrUnavailable is returned when a backend cannot be reached.
	ErrUnavailable = errors.New("cache backend unavailable")
)
