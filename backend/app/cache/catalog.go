package cache

import (
	"context"
	"encoding/json"
	"time"

	"stocklist/backend/app/models"

	"github.com/redis/go-redis/v9"
)

const listKey = "stocklist:products"

// Commands is the subset of redis operations the cache needs. *redis.Client
// satisfies it; tests substitute an in-memory fake.
type Commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Catalog is a read-through cache for the full product list. A nil *Catalog
// (or one built over a nil client) is a no-op, so the service layer never
// has to care whether redis is configured.
type Catalog struct {
	rdb Commands
	ttl time.Duration
}

func NewCatalog(rdb Commands) *Catalog {
	return &Catalog{rdb: rdb, ttl: 30 * time.Second}
}

func (c *Catalog) enabled() bool { return c != nil && c.rdb != nil }

func (c *Catalog) GetList(ctx context.Context) ([]models.Product, bool) {
	if !c.enabled() {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, listKey).Bytes()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *Catalog) SetList(ctx context.Context, products []models.Product) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, listKey, raw, c.ttl).Err()
}

// Invalidate drops the cached list; called after every catalog write.
func (c *Catalog) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	_ = c.rdb.Del(ctx, listKey).Err()
}
