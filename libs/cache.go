package libs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jasit-store/models"

	"github.com/redis/go-redis/v9"
)

const (
	productListPrefix = "products:list:"
	revokedPrefix     = "auth:revoked:"
)

// ProductCache holds product listings in redis. A nil client turns every
// call into a miss or a no-op.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

func listKey(category string) string {
	if category == "" {
		return productListPrefix + "all"
	}
	return productListPrefix + "category:" + category
}

func (c *ProductCache) GetList(ctx context.Context, category string) ([]models.Product, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, listKey(category)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get products: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false, fmt.Errorf("unmarshal products: %w", err)
	}
	return products, true, nil
}

func (c *ProductCache) SetList(ctx context.Context, category string, products []models.Product) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}
	if err := c.client.Set(ctx, listKey(category), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set products: %w", err)
	}
	return nil
}

func (c *ProductCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, productListPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis del %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// TokenDenylist remembers signed-out token ids until the token would have
// expired anyway.
type TokenDenylist struct {
	client *redis.Client
	now    func() time.Time
}

func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client, now: time.Now}
}

func (d *TokenDenylist) Enabled() bool {
	return d != nil && d.client != nil
}

func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, expires time.Time) error {
	if !d.Enabled() || tokenID == "" {
		return nil
	}
	ttl := expires.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, revokedPrefix+tokenID, "1", ttl).Err()
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if !d.Enabled() || tokenID == "" {
		return false, nil
	}
	n, err := d.client.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
