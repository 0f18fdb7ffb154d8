package repository

import "time"

// CacheRepository caches computed results keyed on their full input
// tuple. A ttl of 0 means no expiry.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
