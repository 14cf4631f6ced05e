package container

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/midwaymobile/storage-site/cmd/site/mediastore"
	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/repository"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/cmd/site/store"
	"github.com/midwaymobile/storage-site/common/bootstrap"
	"github.com/midwaymobile/storage-site/common/ratelimit"
	rediscommon "github.com/midwaymobile/storage-site/common/redis"
)

// Container holds all initialized services (singleton pattern)
type Container struct {
	// Components
	Components *bootstrap.Components
	Redis      *rediscommon.Client // nil when Redis is unreachable
	Limiter    *ratelimit.Limiter  // nil when Redis is unreachable

	// Services
	AuthService        *service.AuthService
	MediaService       *service.MediaService
	QuoteService       *service.QuoteService
	MessageService     *service.MessageService
	InventoryService   *service.InventoryService
	ApplicationService *service.ApplicationService
	OrderService       *service.OrderService
}

// NewContainer initializes all services once
func NewContainer(components *bootstrap.Components) (*Container, error) {
	cfg := components.Config
	log := components.Logger

	// Redis is optional: without it the rate limiter is off and admin
	// sessions live in process memory
	redisClient := connectRedis(components)

	var tokens service.TokenStore
	var limiter *ratelimit.Limiter
	if redisClient != nil {
		tokens = service.NewRedisTokenStore(redisClient)
		limiter = ratelimit.NewLimiter(redisClient.GetUnderlying(), log)
	} else {
		tokens = service.NewMemoryTokenStore()
	}

	authService, err := service.NewAuthService(cfg.Auth, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	// Media: file-backed tag store plus the upload gateway in front of it
	mediaStore := mediastore.New(cfg.Uploads.MetadataFile, log)
	mediaService, err := service.NewMediaService(mediaStore, cfg.Uploads.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media service: %w", err)
	}

	// Business records: Postgres-backed when connected, in-memory
	// fallback either way
	quotes := newRecordStore[*models.Quote](components, func() store.Store[*models.Quote] {
		return repository.NewQuoteRepository(components.DB)
	})
	messages := newRecordStore[*models.Message](components, func() store.Store[*models.Message] {
		return repository.NewMessageRepository(components.DB)
	})
	inventory := newRecordStore[*models.InventoryItem](components, func() store.Store[*models.InventoryItem] {
		return repository.NewInventoryRepository(components.DB)
	})
	applications := newRecordStore[*models.Application](components, func() store.Store[*models.Application] {
		return repository.NewApplicationRepository(components.DB)
	})
	orders := newRecordStore[*models.Order](components, func() store.Store[*models.Order] {
		return repository.NewOrderRepository(components.DB)
	})

	inventoryService := service.NewInventoryService(inventory, log)

	return &Container{
		Components:         components,
		Redis:              redisClient,
		Limiter:            limiter,
		AuthService:        authService,
		MediaService:       mediaService,
		QuoteService:       service.NewQuoteService(quotes, log),
		MessageService:     service.NewMessageService(messages, log),
		InventoryService:   inventoryService,
		ApplicationService: service.NewApplicationService(applications, log),
		OrderService:       service.NewOrderService(orders, inventoryService, log),
	}, nil
}

// newRecordStore wires the fallback combination for one resource:
// nil primary when the database is down, repository-backed otherwise
func newRecordStore[T store.Record](components *bootstrap.Components, newRepo func() store.Store[T]) store.Store[T] {
	var primary store.Store[T]
	if components.DB != nil {
		primary = newRepo()
	}
	return store.NewFallback(primary, store.NewMemory[T](), components.Logger)
}

// connectRedis dials Redis from config; unreachable Redis downgrades
// the features that need it instead of failing boot
func connectRedis(components *bootstrap.Components) *rediscommon.Client {
	cfg := components.Config

	raw := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := raw.Ping(ctx).Err(); err != nil {
		components.Logger.Warn("redis unavailable, rate limiting disabled and sessions kept in memory", "error", err)
		raw.Close()
		return nil
	}

	components.Logger.Info("redis connected", "addr", cfg.RedisAddr())
	return rediscommon.NewClient(raw, components.Logger)
}
