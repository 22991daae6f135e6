package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/accounts"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/catalog"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/config"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/handlers"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/routes"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/session"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	logWriter := config.SetupLogger(cfg)

	var (
		catalogStore catalog.Store
		userStore    accounts.Store
	)
	if cfg.CatalogBackend == "mongo" {
		db, err := config.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to mongodb: %v", err)
		}
		mongoCatalog := catalog.NewMongoStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := mongoCatalog.EnsureSeeded(ctx); err != nil {
			cancel()
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		cancel()
		catalogStore = mongoCatalog
		userStore = accounts.NewMongoStore(db)
		log.Println("Catalog backend: mongo")
	} else {
		catalogStore = catalog.NewSeededStore()
		userStore = accounts.NewMemoryStore()
		log.Println("Catalog backend: memory (static bundled dataset)")
	}

	var (
		redisClient  *redis.Client
		sessionStore session.Store
	)
	if cfg.RedisAddr != "" {
		redisClient = utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		sessionStore = session.NewRedisStore(redisClient, time.Duration(cfg.SessionTTLMin)*time.Minute)
		log.Println("Session backend: redis")
	} else {
		sessionStore = session.NewMemoryStore()
		log.Println("Session backend: memory")
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{Output: logWriter}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	routes.RegisterRoutes(e, routes.Controllers{
		Catalog:   handlers.NewCatalogController(catalogStore),
		Property:  handlers.NewPropertyController(catalogStore, redisClient),
		Project:   handlers.NewProjectController(catalogStore),
		Developer: handlers.NewDeveloperController(catalogStore),
		User:      handlers.NewUserController(userStore, catalogStore),
		Session:   handlers.NewSessionController(sessionStore, catalogStore),
		Export:    handlers.NewExportController(catalogStore),
		Ingest:    handlers.NewIngestController(catalogStore),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
