package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/gaienhofen/user-onboarding/internal/domain/entity"
	"github.com/gaienhofen/user-onboarding/internal/domain/repository"
	"github.com/gaienhofen/user-onboarding/pkg/helpers"
)

// UserRepository is a read-through Redis cache in front of another repository.
// Redis errors never fail a call; the inner repository stays authoritative.
type UserRepository struct {
	inner  repository.UserRepository
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *logrus.Logger
}

func NewUserRepository(inner repository.UserRepository, rdb redis.Cmdable, ttl time.Duration, logger *logrus.Logger) *UserRepository {
	return &UserRepository{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func userKey(email string) string {
	return "user:email:" + email
}

// Save writes through to the inner repository, then primes the cache.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	if err := r.inner.Save(ctx, u); err != nil {
		return err
	}
	r.put(ctx, u)
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var cached entity.User
	hit, err := helpers.RedisGetJSON(ctx, r.rdb, userKey(email), &cached)
	if err != nil {
		r.warn(err, "redis get failed", email)
	}
	if hit {
		return &cached, nil
	}

	u, err := r.inner.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return u, err
	}
	r.put(ctx, u)
	return u, nil
}

func (r *UserRepository) put(ctx context.Context, u *entity.User) {
	if err := helpers.RedisSetJSON(ctx, r.rdb, userKey(u.Email), u, r.ttl); err != nil {
		r.warn(err, "redis set failed", u.Email)
	}
}

func (r *UserRepository) warn(err error, msg, email string) {
	if r.logger != nil {
		r.logger.WithError(err).WithField("key", userKey(email)).Warn(msg)
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
