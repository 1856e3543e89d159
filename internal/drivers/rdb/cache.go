package rdb

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// GetCachedData returns the value cached under the key,
// or calls the callable on a miss and caches its result.
// Redis failures are logged and never returned, only callable errors are.
// The value type needs to implement encoding.BinaryMarshaler
// and encoding.BinaryUnmarshaler on its pointer if it's not a basic type.
func GetCachedData[T any](
	ctx context.Context,
	rdb *Service,
	cacheKey string,
	ttl time.Duration,
	callable func() (T, error), // Function to call if cache miss
) (T, error) {

	var zero, data T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	// Caching disabled
	if rdb == nil || ttl <= 0 {
		return callable()
	}

	log := rdb.logger.WithField("key", cacheKey)

	err := rdb.Client.Get(ctx, cacheKey).Scan(&data)
	if err == nil {
		log.Debug("Cache hit")
		return data, nil
	}

	if !errors.Is(err, redis.Nil) {
		log.WithError(err).Warn("Error getting data from Redis")
	}

	data, err = callable()
	if err != nil {
		return zero, err
	}

	if err = rdb.Client.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
		log.WithFields(logrus.Fields{"ttl": ttl}).WithError(err).Warn("Error setting cache in Redis")
	}

	return data, nil
}
