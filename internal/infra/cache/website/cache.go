package website

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

const keyPrefix = "website:token:"

var (
	// ErrCacheMiss возвращается, когда токена нет в кэше
	ErrCacheMiss = errors.New("website.cache: cache miss")

	// ErrCache возвращается при ошибках Redis или сериализации
	ErrCache = errors.New("website.cache: redis error")
)

// Cache кэш сайтов по токену доступа в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

type cachedWebsite struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	Timezone    *string   `json:"timezone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Get возвращает сайт по токену или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, token string) (*domain.Website, error) {
	data, err := c.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrCache, err)
	}

	var cw cachedWebsite
	if err := json.Unmarshal(data, &cw); err != nil {
		return nil, fmt.Errorf("%w: Get - decode: %v", ErrCache, err)
	}

	return &domain.Website{
		ID:          cw.ID,
		Name:        cw.Name,
		Email:       cw.Email,
		AccessToken: cw.AccessToken,
		Timezone:    cw.Timezone,
		CreatedAt:   cw.CreatedAt,
		UpdatedAt:   cw.UpdatedAt,
	}, nil
}

// Set кладет сайт в кэш на ttl
func (c *Cache) Set(ctx context.Context, website *domain.Website) error {
	data, err := json.Marshal(cachedWebsite{
		ID:          website.ID,
		Name:        website.Name,
		Email:       website.Email,
		AccessToken: website.AccessToken,
		Timezone:    website.Timezone,
		CreatedAt:   website.CreatedAt,
		UpdatedAt:   website.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, keyPrefix+website.AccessToken, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCache, err)
	}
	return nil
}
