package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tripvault/tripvault/internal/core/domain"
)

const (
	flightsKey = "catalog:flights"
	hotelsKey  = "catalog:hotels"
)

// CatalogCache caches the mock flight and hotel catalogs in Redis. The
// catalogs are static reference data, so a miss simply falls through to
// Postgres. A nil *CatalogCache is valid and behaves as always-miss.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(addr, password string, db int, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl:    ttl,
	}
}

// Ping verifies connectivity so startup can decide whether to keep the cache.
func (c *CatalogCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// GetFlights returns the cached flight catalog, or nil on a miss.
func (c *CatalogCache) GetFlights(ctx context.Context) ([]domain.MockFlight, error) {
	if c == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, flightsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.MockFlight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// SetFlights stores the flight catalog with the configured TTL.
func (c *CatalogCache) SetFlights(ctx context.Context, flights []domain.MockFlight) error {
	if c == nil {
		return nil
	}
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey, payload, c.ttl).Err()
}

// GetHotels returns the cached hotel catalog, or nil on a miss.
func (c *CatalogCache) GetHotels(ctx context.Context) ([]domain.MockHotel, error) {
	if c == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, hotelsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var hotels []domain.MockHotel
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// SetHotels stores the hotel catalog with the configured TTL.
func (c *CatalogCache) SetHotels(ctx context.Context, hotels []domain.MockHotel) error {
	if c == nil {
		return nil
	}
	payload, err := json.Marshal(hotels)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, hotelsKey, payload, c.ttl).Err()
}

func (c *CatalogCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
