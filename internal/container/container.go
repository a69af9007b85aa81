package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/gaienhofen/user-onboarding/config"
	"github.com/gaienhofen/user-onboarding/internal/application"
	"github.com/gaienhofen/user-onboarding/internal/domain/repository"
	"github.com/gaienhofen/user-onboarding/internal/infrastructure/cache"
	"github.com/gaienhofen/user-onboarding/internal/infrastructure/memory"
	pginfra "github.com/gaienhofen/user-onboarding/internal/infrastructure/postgres"
	"github.com/gaienhofen/user-onboarding/internal/infrastructure/search"
	"github.com/gaienhofen/user-onboarding/pkg/helpers"
)

// Container holds the infrastructure built in main and hands it to modules.
// Any client may be nil when its backend is not configured.
type Container struct {
	Config    *config.Config
	Logger    *logrus.Logger
	PGPool    *pgxpool.Pool
	Redis     *redis.Client
	RabbitPub *helpers.RabbitPublisher
	ES        *elasticsearch.Client
}

// UserRepository picks Postgres when a pool is present, memory otherwise,
// and puts the Redis cache in front when Redis is configured.
func (c *Container) UserRepository() repository.UserRepository {
	var r repository.UserRepository
	if c.PGPool != nil {
		r = pginfra.NewUserRepository(c.PGPool)
	} else {
		r = memory.NewUserRepository()
	}
	if c.Redis != nil {
		r = cache.NewUserRepository(r, c.Redis, c.Config.UserCacheTTL, c.Logger)
	}
	return r
}

// UserService builds the onboarding service with whichever side channels are configured.
func (c *Container) UserService() (*application.Service, error) {
	enc, err := helpers.ParseDigestEncoding(c.Config.PasswordEncoding)
	if err != nil {
		return nil, err
	}
	var events application.EventPublisher
	if c.RabbitPub != nil {
		events = c.RabbitPub
	}
	var index application.UserIndexer
	if c.ES != nil && c.Config.ESUsersIndex != "" {
		index = search.NewUserIndex(c.ES, c.Config.ESUsersIndex)
	}
	svc := application.NewService(c.UserRepository(), c.Logger, enc, events, index)
	svc.StrictHash = c.Config.PasswordHashStrict
	return svc, nil
}
