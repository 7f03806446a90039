package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/internhub/internship-service/internal/domain"
)

const (
	internshipListPrefix = "internships:all:"
	internshipGenKey     = "internships:gen"
	internshipKeyPrefix  = "internships:"
)

// cachedInternshipRepository serves catalog reads from Redis and falls back to
// the wrapped repository on a miss or any Redis failure.
type cachedInternshipRepository struct {
	next   InternshipRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedInternshipRepository wraps next with a read-through cache.
// A nil client returns next unchanged.
func NewCachedInternshipRepository(next InternshipRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) InternshipRepository {
	if client == nil {
		return next
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cachedInternshipRepository{next: next, client: client, ttl: ttl, logger: logger}
}

func (r *cachedInternshipRepository) Create(ctx context.Context, internship *domain.Internship) error {
	if err := r.next.Create(ctx, internship); err != nil {
		return err
	}
	// Bumping the generation orphans every list snapshot taken before the insert,
	// including one a concurrent List is about to write.
	if err := r.client.Incr(ctx, internshipGenKey).Err(); err != nil {
		r.logger.Warn("internship cache invalidate failed", zap.Error(err))
	}
	return nil
}

func (r *cachedInternshipRepository) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	key := internshipKeyPrefix + strconv.FormatInt(id, 10)

	var cached domain.Internship
	if r.load(ctx, key, &cached) {
		return &cached, nil
	}

	internship, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, internship)
	return internship, nil
}

func (r *cachedInternshipRepository) List(ctx context.Context) ([]domain.Internship, error) {
	gen, err := r.client.Get(ctx, internshipGenKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.logger.Warn("internship cache read failed", zap.String("key", internshipGenKey), zap.Error(err))
		return r.next.List(ctx)
	}
	key := internshipListPrefix + strconv.FormatInt(gen, 10)

	var cached []domain.Internship
	if r.load(ctx, key, &cached) {
		return cached, nil
	}

	items, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, items)
	return items, nil
}

func (r *cachedInternshipRepository) load(ctx context.Context, key string, dest any) bool {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("internship cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		r.logger.Warn("internship cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *cachedInternshipRepository) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("internship cache write failed", zap.String("key", key), zap.Error(err))
	}
}
