package captcha

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const replayKeyTTL = 10 * time.Minute

// TokenConsumer marks a verified captcha token as used. Consume reports
// whether the caller was the first to present the token.
type TokenConsumer interface {
	Consume(ctx context.Context, token string) bool
}

// ReplayGuard is the production TokenConsumer: a verified token cannot be
// replayed across registrations. Backed by Redis SETNX; degrades open
// when Redis is unreachable.
type ReplayGuard struct {
	client *redis.Client
	logger *zap.Logger
}

// NewReplayGuard builds a guard. A nil client disables the guard.
func NewReplayGuard(client *redis.Client, logger *zap.Logger) *ReplayGuard {
	return &ReplayGuard{client: client, logger: logger}
}

// Consume marks the token used and reports whether this caller was first.
// Tokens are stored hashed; the raw captcha token never reaches Redis.
func (g *ReplayGuard) Consume(ctx context.Context, token string) bool {
	if g == nil || g.client == nil {
		return true
	}

	sum := sha256.Sum256([]byte(token))
	key := "captcha:used:" + hex.EncodeToString(sum[:])

	first, err := g.client.SetNX(ctx, key, 1, replayKeyTTL).Result()
	if err != nil {
		g.logger.Warn("captcha replay guard unavailable", zap.Error(err))
		return true
	}
	return first
}
