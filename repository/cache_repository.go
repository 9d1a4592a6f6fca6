package repository

import "context"

// CacheRepository memoizes serialized analysis results by key. A miss is not
// an error; implementations report only transport failures.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}
