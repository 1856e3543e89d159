package containers

import (
	"context"
	"errors"
	"fmt"
	"log"

	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/vlatan/transcript-api/internal/config"
)

const redisImage = "redis:8.0.3"

type redisContainer struct {
	container *tcredis.RedisContainer
}

// Terminate stops and removes the container
func (rc *redisContainer) Terminate(ctx context.Context) {
	if err := rc.container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %v", err)
	}
}

// SetupTestRedis starts a Redis container and points
// the supplied config's Redis host and port at it
func SetupTestRedis(ctx context.Context, cfg *config.Config) (Container, error) {

	container, err := tcredis.Run(ctx, redisImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start redis container: %w", err)
	}

	// Terminates the container and keeps both errors
	fail := func(msg string, err error) (Container, error) {
		if cErr := container.Terminate(ctx); cErr != nil {
			err = errors.Join(err, cErr)
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return fail("failed to get container host", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return fail("failed to get container port", err)
	}

	cfg.RedisHost = host
	cfg.RedisPort = port.Int()
	cfg.RedisUsername = ""
	cfg.RedisPassword = ""

	return &redisContainer{container}, nil
}
