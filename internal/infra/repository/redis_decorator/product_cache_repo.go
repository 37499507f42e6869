package redis_decorator

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
)

/*
cache aside: 單筆商品讀取先走redis，miss才讀db並回填
寫入操作先寫db，成功後讓快取失效
快取錯誤只記log不影響主流程
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	redis redis_repo.IProductCacheRepository
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, redis redis_repo.IProductCacheRepository) db.IProductRepository {
	return &CacheAsideProductRepo{IProductRepository: dbRepo, redis: redis}
}

func (p *CacheAsideProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	cached, err := p.redis.GetProduct(ctx, productID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis_repo.ErrCacheMiss) {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache read failed")
	}

	product, err := p.IProductRepository.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := p.redis.SetProduct(ctx, product); err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache fill failed")
	}
	return product, nil
}

func (p *CacheAsideProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := p.IProductRepository.UpdateProduct(ctx, product); err != nil {
		return err
	}
	if err := p.redis.DeleteProduct(ctx, product.ProductID); err != nil {
		log.Warn().Err(err).Uint("product_id", product.ProductID).Msg("product cache evict failed")
	}
	return nil
}

func (p *CacheAsideProductRepo) DeleteProduct(ctx context.Context, productID uint) error {
	if err := p.IProductRepository.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	if err := p.redis.DeleteProduct(ctx, productID); err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache evict failed")
	}
	return nil
}

func (p *CacheAsideProductRepo) HardDeleteProduct(ctx context.Context, productID uint) error {
	if err := p.IProductRepository.HardDeleteProduct(ctx, productID); err != nil {
		return err
	}
	if err := p.redis.DeleteProduct(ctx, productID); err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache evict failed")
	}
	return nil
}
