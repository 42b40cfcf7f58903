// Package store provides caches for results of idempotent tool calls,
// keyed by tool name and raw arguments. The in-memory cache suits a
// single process; the Redis cache shares results across replicas and
// bounds their lifetime with a TTL.
package store

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ResultCache caches tool call results. Implementations satisfy
// tools.ResultCache and plug into a registry via WithResultCache.
type ResultCache interface {
	Get(ctx context.Context, tool, args string) (string, bool)
	Set(ctx context.Context, tool, args, result string) error
}

// Key derives a stable cache key from the tool name and its raw
// serialized arguments.
func Key(tool, args string) string {
	return tool + "/" + strconv.FormatUint(xxhash.Sum64String(args), 16)
}
