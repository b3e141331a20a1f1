package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	applog "github.com/desuper666/Site-shop/logger"
	"github.com/desuper666/Site-shop/models"
	"github.com/desuper666/Site-shop/routes"
	"github.com/desuper666/Site-shop/seed"
	"github.com/desuper666/Site-shop/services"
	"github.com/desuper666/Site-shop/session"
	"github.com/desuper666/Site-shop/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	zapLog, err := applog.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLog.Sync()

	// Init DB
	db := initDatabase(zapLog)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.PromoCode{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		zapLog.Fatal("AutoMigrate failed", zap.Error(err))
	}

	st := store.NewGormStore(db)

	// Redis holds per-user pending-promo session state
	redisClient := initRedis(zapLog)
	promoSession := session.NewRedisPromoSession(redisClient, 24*time.Hour)

	// Services
	svcs := routes.Services{
		Store:    st,
		Auth:     services.NewAuthService(st, []byte(os.Getenv("JWT_SECRET")), zapLog),
		Cart:     services.NewCartService(st, promoSession, zapLog),
		Promo:    services.NewPromoService(st, promoSession, zapLog),
		Checkout: services.NewCheckoutService(st, promoSession, zapLog),
	}

	// Seed the catalog and default promo codes on first run
	if err := seed.Run(context.Background(), st, zapLog); err != nil {
		zapLog.Fatal("seeding failed", zap.Error(err))
	}

	// Gin setup
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(applog.RequestLogger(zapLog))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, svcs)

	// Restock sweep: every 10 seconds, replenish products whose restock
	// cooldown has elapsed
	restocker := services.NewRestocker(st, zapLog)
	scheduler := cron.New()
	if err := scheduler.AddFunc("@every 10s", func() {
		restocker.Sweep(context.Background())
	}); err != nil {
		zapLog.Fatal("failed to schedule restock sweep", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	zapLog.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		zapLog.Fatal("failed to start server", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(zapLog *zap.Logger) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			zapLog.Fatal("DB connection failed", zap.Error(err))
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("DB connection failed", zap.Error(err))
	}
	return db
}

// initRedis connects the session store client
func initRedis(zapLog *zap.Logger) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		zapLog.Fatal("failed to connect to Redis", zap.Error(err))
	}
	return client
}
