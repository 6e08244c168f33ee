package main

import (
	"context"
	"time"

	bookApp "github.com/davicafu/bookcourier/internal/book/application"
	bookHttp "github.com/davicafu/bookcourier/internal/book/infra/inbound/http"
	bookRepo "github.com/davicafu/bookcourier/internal/book/infra/outbound/db/mongodb"
	config "github.com/davicafu/bookcourier/internal/config"
	identityDomain "github.com/davicafu/bookcourier/internal/identity/domain"
	identityHttp "github.com/davicafu/bookcourier/internal/identity/infra/inbound/http"
	"github.com/davicafu/bookcourier/internal/identity/infra/outbound/httpverifier"
	"github.com/davicafu/bookcourier/internal/identity/infra/outbound/staticverifier"
	orderApp "github.com/davicafu/bookcourier/internal/order/application"
	orderHttp "github.com/davicafu/bookcourier/internal/order/infra/inbound/http"
	orderRepo "github.com/davicafu/bookcourier/internal/order/infra/outbound/db/mongodb"
	paymentApp "github.com/davicafu/bookcourier/internal/payment/application"
	paymentDomain "github.com/davicafu/bookcourier/internal/payment/domain"
	paymentHttp "github.com/davicafu/bookcourier/internal/payment/infra/inbound/http"
	paymentRepo "github.com/davicafu/bookcourier/internal/payment/infra/outbound/db/mongodb"
	paymentFake "github.com/davicafu/bookcourier/internal/payment/infra/outbound/provider/fake"
	"github.com/davicafu/bookcourier/internal/payment/infra/outbound/provider/httpcheckout"
	infraEvents "github.com/davicafu/bookcourier/internal/shared/infra/events"
	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
	sharedCache "github.com/davicafu/bookcourier/internal/shared/platform/cache"
	trackingApp "github.com/davicafu/bookcourier/internal/tracking/application"
	trackingHttp "github.com/davicafu/bookcourier/internal/tracking/infra/inbound/http"
	trackingRepo "github.com/davicafu/bookcourier/internal/tracking/infra/outbound/db/mongodb"
	userApp "github.com/davicafu/bookcourier/internal/user/application"
	userHttp "github.com/davicafu/bookcourier/internal/user/infra/inbound/http"
	userCache "github.com/davicafu/bookcourier/internal/user/infra/outbound/cache"
	userRepo "github.com/davicafu/bookcourier/internal/user/infra/outbound/db/mongodb"
	wishlistApp "github.com/davicafu/bookcourier/internal/wishlist/application"
	wishlistHttp "github.com/davicafu/bookcourier/internal/wishlist/infra/inbound/http"
	wishlistRepo "github.com/davicafu/bookcourier/internal/wishlist/infra/outbound/db/mongodb"

	"github.com/davicafu/bookcourier/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const eventsTopic = "bookcourier-events"

// ---------------- Main ----------------
func main() {
	logger.Init()          // inicializa zap
	log := logger.Logger() // obtiene logger estructurado
	defer log.Sync()       // flush buffers al salir

	ctx := context.Background()
	cfg := config.LoadConfig()

	// ---------------- DB ----------------
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	db := client.Database(cfg.MongoDB)

	userRepoMongo := userRepo.NewUserRepoMongoDB(db)
	bookRepoMongo := bookRepo.NewBookRepoMongoDB(client, db)
	orderRepoMongo := orderRepo.NewOrderRepoMongoDB(db)
	wishlistRepoMongo := wishlistRepo.NewWishlistRepoMongoDB(db)
	paymentRepoMongo := paymentRepo.NewPaymentRepoMongoDB(client, db)
	ledgerRepoMongo := trackingRepo.NewLedgerRepoMongoDB(db)

	// ---------------- Cache ----------------
	var cacheInstance sharedCache.Cache
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("⚠️ Redis no disponible, cache en memoria:", zap.Error(err))
		cacheInstance = userCache.NewInMemoryCache(cfg.CacheTTL, 3*cfg.CacheTTL)
	} else {
		cacheInstance = userCache.NewRedisCache(rdb, cfg.CacheTTL)
		log.Info("✅ Redis conectado, cache habilitado")
	}

	// ---------------- Events ---------------
	var eventPublisher sharedBus.EventPublisher

	if cfg.UseKafka {
		log.Info("🚀 Usando Kafka como bus de eventos")

		writer := kafka.NewWriter(kafka.WriterConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   eventsTopic,
		})
		defer writer.Close()

		eventPublisher = infraEvents.NewKafkaPublisher(writer, log)
	} else {
		log.Info("⚡️Usando bus de eventos en memoria (canales de Go)")
		eventPublisher = infraEvents.NewInMemoryEventBus(eventsTopic)
	}

	// ------------- Proveedores externos -------------
	var verifier identityDomain.TokenVerifier
	if cfg.IdentityVerifyURL != "" {
		verifier = httpverifier.New(cfg.IdentityVerifyURL)
	} else {
		log.Warn("⚠️ IDENTITY_VERIFY_URL no configurada, verificador estático (solo desarrollo)")
		verifier = staticverifier.New(cfg.IdentityStaticTok)
	}

	var provider paymentDomain.CheckoutProvider
	if cfg.PaymentProviderURL != "" {
		provider = httpcheckout.New(cfg.PaymentProviderURL, cfg.PaymentProviderKey)
	} else {
		log.Warn("⚠️ PAYMENT_PROVIDER_URL no configurada, checkout simulado (solo desarrollo)")
		provider = paymentFake.New()
	}

	// --------------- Servicios --------------
	ledgerService := trackingApp.NewLedgerService(ledgerRepoMongo, eventPublisher, log)
	userService := userApp.NewUserService(userRepoMongo, cacheInstance, log)
	bookService := bookApp.NewBookService(bookRepoMongo, ledgerService, eventPublisher, log)
	orderService := orderApp.NewOrderService(orderRepoMongo, bookService, ledgerService, eventPublisher, log)
	wishlistService := wishlistApp.NewWishlistService(wishlistRepoMongo, bookService, log)
	paymentService := paymentApp.NewPaymentService(
		paymentRepoMongo, provider, orderService, ledgerService, eventPublisher,
		cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL, log,
	)

	// ---------------- HTTP ----------------
	guard := identityHttp.NewGuard(verifier, userService, log)

	userHandler := userHttp.NewUserHandler(userService)
	bookHandler := bookHttp.NewBookHandler(bookService)
	orderHandler := orderHttp.NewOrderHandler(orderService)
	wishlistHandler := wishlistHttp.NewWishlistHandler(wishlistService)
	paymentHandler := paymentHttp.NewPaymentHandler(paymentService)
	trackingHandler := trackingHttp.NewTrackingHandler(ledgerService)

	router := gin.Default()
	userHttp.RegisterUserRoutes(router, userHandler, guard)
	bookHttp.RegisterBookRoutes(router, bookHandler, guard)
	orderHttp.RegisterOrderRoutes(router, orderHandler, guard)
	wishlistHttp.RegisterWishlistRoutes(router, wishlistHandler, guard)
	paymentHttp.RegisterPaymentRoutes(router, paymentHandler, guard)
	trackingHttp.RegisterTrackingRoutes(router, trackingHandler, guard)

	router.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Info("🚀 Server running",
		zap.String("url", "http://localhost:"+cfg.HTTPPort),
	)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
