package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type ProductCacheError error

var (
	// ErrCacheMiss 快取內沒有該商品
	ErrCacheMiss ProductCacheError = errors.New("product cache miss")
)

// IProductCacheRepository 定義 Redis 商品快取的介面
type IProductCacheRepository interface {
	// GetProduct 取得快取商品，不存在回傳ErrCacheMiss
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)

	// SetProduct 寫入快取商品，帶TTL
	SetProduct(ctx context.Context, product *model.Product) error

	// DeleteProduct 移除快取商品，商品更新/刪除時呼叫
	DeleteProduct(ctx context.Context, productID uint) error
}

/*
redis 只當商品讀取快取，db為唯一真相來源
結構: product:{id}:detail -> 商品JSON，帶TTL
*/
type ProductRedisRepo struct {
	productCache *redis.Client
	ttl          time.Duration
}

func NewProductRedisRepo(productCache *redis.Client, ttl time.Duration) *ProductRedisRepo {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ProductRedisRepo{productCache: productCache, ttl: ttl}
}

func generateProductDetailKey(productID uint) string {
	return fmt.Sprintf("product:%d:detail", productID)
}

func (s *ProductRedisRepo) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	redisKey := generateProductDetailKey(productID)
	raw, err := s.productCache.Get(ctx, redisKey).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached product: %w", err)
	}

	var product model.Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		return nil, fmt.Errorf("invalid cached product %d: %w", productID, err)
	}
	return &product, nil
}

func (s *ProductRedisRepo) SetProduct(ctx context.Context, product *model.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %d: %w", product.ProductID, err)
	}

	redisKey := generateProductDetailKey(product.ProductID)
	err = s.productCache.Set(ctx, redisKey, raw, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache product: %w", err)
	}
	return nil
}

func (s *ProductRedisRepo) DeleteProduct(ctx context.Context, productID uint) error {
	redisKey := generateProductDetailKey(productID)
	err := s.productCache.Del(ctx, redisKey).Err()
	if err != nil {
		return fmt.Errorf("failed to evict cached product: %w", err)
	}
	return nil
}

var _ IProductCacheRepository = (*ProductRedisRepo)(nil)
