package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fragenspiel/internal/cache"
	"fragenspiel/internal/config"
	"fragenspiel/internal/demo"
	"fragenspiel/internal/importer"
	"fragenspiel/internal/repository"
	"fragenspiel/internal/service"
	"fragenspiel/internal/transport/rest"
	"fragenspiel/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	if cfg.DemoOnly {
		log.Println("Starting in demo-only mode (no database connections)")
	}

	// Demo session store: in-memory by default, Redis when configured
	var store demo.Store
	if cfg.DemoStore == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Println("Connected to Redis, demo sessions stored there")

		store = cache.NewSessionCache(rdb, cfg.DemoIdleTimeout)
	} else {
		store = demo.NewMemoryStore(cfg.DemoIdleTimeout, cfg.DemoSweepInterval)
	}
	defer store.Close()

	// WebSocket hub for live demo status feeds
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	demoSvc := service.NewDemoService(store)
	demoSvc.SetBroadcaster(wsHub)

	container := &rest.Container{
		DemoService:        demoSvc,
		WSHub:              wsHub,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}

	if !cfg.DemoOnly {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB:", err)
		}
		log.Println("Connected to MongoDB")

		db := mongoClient.Database(cfg.MongoDatabase)

		characterRepo := repository.NewCharacterRepo(db)
		questionRepo := repository.NewQuestionRepo(db)
		answerRepo := repository.NewAnswerRepo(db)
		if err := answerRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal("Failed to create answer indexes:", err)
		}

		container.AuthService = service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
		container.GameService = service.NewGameService(characterRepo, questionRepo, answerRepo)
		container.CharacterService = service.NewCharacterService(characterRepo)
		container.QuestionService = service.NewQuestionService(questionRepo)
		container.AdminService = service.NewAdminService(db, characterRepo, questionRepo, answerRepo, importer.NewClient())
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
