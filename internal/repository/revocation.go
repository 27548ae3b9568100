package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"fixando/internal/cache"
	"fixando/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevocationRepository is the token-revocation ledger. The database is the
// ledger of record; Redis holds a best-effort fast-path marker with a TTL
// matching the token's own expiry. With Redis down the gate still consults
// the database, so a revoked token is never accepted.
type RevocationRepository interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	PruneExpired(ctx context.Context) (int64, error)
}

type revocationRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewRevocationRepository creates a new RevocationRepository. redisClient
// may be nil.
func NewRevocationRepository(db *gorm.DB, redisClient *redis.Client) RevocationRepository {
	return &revocationRepository{db: db, redis: redisClient}
}

func (r *revocationRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	if r.redis != nil {
		exists, err := r.redis.Exists(ctx, cache.RevokedKey(tokenDigest(token))).Result()
		if err == nil && exists > 0 {
			return true, nil
		}
		// Redis miss or error falls through to the ledger of record.
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RevokedToken{}).
		Where("token = ?", token).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Revoke is idempotent: revoking an already-revoked token succeeds.
func (r *revocationRepository) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	entry := &models.RevokedToken{Token: token, ExpiresAt: expiresAt}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoNothing: true,
		}).
		Create(entry).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	if r.redis != nil {
		ttl := time.Until(expiresAt)
		if ttl > 0 {
			// Best effort; the database row already guarantees rejection.
			r.redis.Set(ctx, cache.RevokedKey(tokenDigest(token)), "1", ttl)
		}
	}
	return nil
}

// PruneExpired removes ledger entries whose tokens have expired on their
// own. Run from the maintenance command, never from request handling.
func (r *revocationRepository) PruneExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.RevokedToken{})
	return result.RowsAffected, result.Error
}

// tokenDigest keys the Redis fast path without storing raw tokens in Redis.
func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
