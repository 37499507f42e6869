package appcontext

import (
	"context"
	"fmt"
	"log"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_decorator"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf          *config.Config
	DbConn      *gorm.DB
	Store       db.UnifiedDB
	RedisClient *redis.Client
	ProductRepo db.IProductRepository

	EventProducer producer.IOrderEventProducer

	ProductService  service.IProductService
	CartService     service.ICartService
	CouponService   service.ICouponService
	CheckoutService service.ICheckoutService
	OrderService    service.IOrderService
	WishlistService service.IWishlistService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpDbConn()
	if err != nil {
		return err
	}
	err = app.setUpStore()
	if err != nil {
		return err
	}
	err = app.setUpRedis()
	if err != nil {
		return err
	}
	err = app.setUpProducer()
	if err != nil {
		return err
	}
	err = app.setUpServices()
	if err != nil {
		return err
	}
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.OpenConn(db.ConnConfig{
		DBName:   app.Cf.DbName,
		Host:     app.Cf.DbHost,
		Port:     app.Cf.DbPort,
		User:     app.Cf.DbUser,
		Password: app.Cf.DbPas,
	})
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpStore() error {
	log.Printf("Start setup database store")
	app.Store = db.NewUnifiedDB(app.DbConn)
	if err := app.Store.InitMigrate(); err != nil {
		return err
	}
	log.Printf("Finish setup database store")
	return nil
}

// Redis掛了不擋啟動，商品讀取直接走DB
func (app *ApplicationContext) setUpRedis() error {
	log.Printf("Start setup redis")

	productDBRepo := db.NewProductDBRepo(db.NewDbDao(app.DbConn))
	app.ProductRepo = productDBRepo

	if app.Cf.RedisAddr == "" {
		log.Printf("redis addr not set, product cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
		DB:       app.Cf.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis ping failed, product cache disabled: %v", err)
		return nil
	}

	app.RedisClient = client
	app.ProductRepo = redis_decorator.NewCacheAsideProductRepo(
		productDBRepo,
		redis_repo.NewProductRedisRepo(client, 0),
	)
	log.Printf("Finish setup redis")
	return nil
}

// Kafka未設置時事件發佈為no-op，服務照常運作
func (app *ApplicationContext) setUpProducer() error {
	log.Printf("Start setup order event producer")
	brokers := app.Cf.Brokers()
	if len(brokers) == 0 {
		log.Printf("kafka brokers not set, order events disabled")
		return nil
	}
	app.EventProducer = producer.NewOrderEventProducer(brokers, app.Cf.KafkaTopic)
	log.Printf("Finish setup order event producer")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	log.Printf("Start setup services")

	app.ProductService = service.NewProductService(app.ProductRepo)
	app.CartService = service.NewCartService(app.Store, app.ProductRepo)
	app.CouponService = service.NewCouponService(app.Store)
	app.CheckoutService = service.NewCheckoutService(
		app.Store,
		app.CouponService,
		app.EventProducer,
		app.Cf.TaxRate(),
		app.Cf.Shipping(),
	)
	app.OrderService = service.NewOrderService(app.Store, app.EventProducer)
	app.WishlistService = service.NewWishlistService(app.Store, app.ProductRepo)

	log.Printf("Finish setup services")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.EventProducer != nil {
			log.Printf("Closing order event producer...")
			if err := app.EventProducer.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("producer close error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis close error: %v", err)
			}
		}

		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
