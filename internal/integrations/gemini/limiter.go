package gemini

import (
	"context"
	"fmt"
	"time"

	_ "time/tzdata" // embed the timezone database into the binary

	"github.com/vlatan/transcript-api/internal/config"
	"github.com/vlatan/transcript-api/internal/drivers/rdb"
	"github.com/vlatan/transcript-api/internal/transcripts"
)

const (
	rpd = "gemini:rpd:"
	rpm = "gemini:rpm:"
)

// GeminiLimiter keeps the Gemini request quota in Redis,
// per minute and per day in the quota's timezone
type GeminiLimiter struct {
	cfg *config.Config
	rdb *rdb.Service
	loc *time.Location
	now func() time.Time
}

// NewLimiter creates new Gemini limiter
func NewLimiter(cfg *config.Config, rdb *rdb.Service) (*GeminiLimiter, error) {
	loc, err := time.LoadLocation(cfg.GeminiTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid gemini timezone: %w", err)
	}

	return &GeminiLimiter{cfg: cfg, rdb: rdb, loc: loc, now: time.Now}, nil
}

// AcquireQuota attempts to consume 1 request from the daily and minute buckets.
// The error wraps transcripts.ErrQuotaFull if any of the quotas are full.
func (gl *GeminiLimiter) AcquireQuota(ctx context.Context) error {
	now := gl.now().In(gl.loc)

	// Calculate TTL for the Daily Reset (RPD)
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, gl.loc)
	ttlDaily := nextMidnight.Sub(now)

	dailyKey := rpd + now.Format("2006-01-02")
	minuteKey := rpm + now.Format("2006-01-02-15-04")

	// Atomic check using a Pipeline
	pipe := gl.rdb.Client.TxPipeline()
	dailyIncr := pipe.Incr(ctx, dailyKey)
	pipe.Expire(ctx, dailyKey, ttlDaily)

	minuteIncr := pipe.Incr(ctx, minuteKey)
	pipe.Expire(ctx, minuteKey, 65*time.Second) // slightly over a minute

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis failure: %w", err)
	}

	if dailyIncr.Val() > gl.cfg.GeminiRPD {
		return fmt.Errorf(
			"%w: gemini daily limit (%d RPD) reached",
			transcripts.ErrQuotaFull, gl.cfg.GeminiRPD,
		)
	}

	if minuteIncr.Val() > gl.cfg.GeminiRPM {
		return fmt.Errorf(
			"%w: gemini minute limit (%d RPM) reached",
			transcripts.ErrQuotaFull, gl.cfg.GeminiRPM,
		)
	}

	return nil
}

// Exhausted returns true if the daily limit has already been hit.
func (gl *GeminiLimiter) Exhausted(ctx context.Context) bool {
	now := gl.now().In(gl.loc)
	dailyKey := rpd + now.Format("2006-01-02")
	val, err := gl.rdb.Client.Get(ctx, dailyKey).Int64()
	if err != nil {
		return false
	}

	return val >= gl.cfg.GeminiRPD
}
