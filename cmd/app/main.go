package main

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/nattakornv/storefront-backend/internal/address"
	"github.com/nattakornv/storefront-backend/internal/cart"
	"github.com/nattakornv/storefront-backend/internal/catalog"
	"github.com/nattakornv/storefront-backend/internal/config"
	"github.com/nattakornv/storefront-backend/internal/coupon"
	"github.com/nattakornv/storefront-backend/internal/order"
	"github.com/nattakornv/storefront-backend/internal/related"
	"github.com/nattakornv/storefront-backend/internal/review"
	"github.com/nattakornv/storefront-backend/internal/store"
	"github.com/nattakornv/storefront-backend/internal/user"
	"github.com/nattakornv/storefront-backend/internal/wishlist"
	"github.com/nattakornv/storefront-backend/pkg/logx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logx.Init(cfg.Environment)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	if err := store.EnsureSchema(db); err != nil {
		logx.Fatal().Err(err).Msg("schema migration failed")
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService)

	catalogService := catalog.NewService(catalog.NewPostgresRepository(db))
	catalogHandler := catalog.NewHandler(catalogService)

	cartService := cart.NewService(cart.NewPostgresRepository(db), catalogService)
	cartHandler := cart.NewHandler(cartService)

	couponService := coupon.NewService(coupon.NewPostgresRepository(db))
	couponHandler := coupon.NewHandler(couponService)

	addressService := address.NewService(address.NewPostgresRepository(db))
	addressHandler := address.NewHandler(addressService)

	orderService := order.NewService(order.NewPostgresRepository(db))
	orderHandler := order.NewHandler(orderService, cartService, addressService, couponService)

	wishlistHandler := wishlist.NewHandler(wishlist.NewService(wishlist.NewPostgresRepository(db), catalogService))
	reviewHandler := review.NewHandler(review.NewService(review.NewPostgresRepository(db), catalogService))
	relatedHandler := related.NewHandler(related.NewService(related.NewPostgresRepository(db), catalogService))

	// public surface: auth, catalog browsing, related shelf, review reads
	userHandler.RegisterPublicRoutes(app)
	relatedHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)

	// everything registered after this point requires a valid token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	couponHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)
	catalogHandler.RegisterProtectedRoutes(app)

	logx.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	logx.Debug().
		Str("method", c.Method()).
		Str("path", c.OriginalURL()).
		Int("status", c.Response().StatusCode()).
		Dur("latency", time.Since(start)).
		Msg("request")
	return err
}
