package main

import (
	"complymeter/internal/cache"
	"complymeter/internal/config"
	"complymeter/internal/repository"
	"complymeter/internal/service"
	"complymeter/internal/transport/rest"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	// Log AI settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Model:    %s", aiConfig.Model)
	log.Printf("  Base URL: %s", aiConfig.BaseURL)
	if aiConfig.IsEnabled() {
		log.Printf("  API Keys: %d configured", len(aiConfig.APIKeys))
	} else {
		log.Println("  API Keys: NOT SET (using template reports)")
	}

	// MongoDB connection
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

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	questionnaireRepo := repository.NewQuestionnaireRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// Initialize caches
	responseCache := cache.NewResponseCache(rdb)
	reportCache := cache.NewReportCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	questionnaireSvc := service.NewQuestionnaireService(questionnaireRepo)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, questionnaireSvc, responseCache)
	narrativeSvc := service.NewNarrativeService(reportRepo, reportCache)

	// Create router with container
	container := &rest.Container{
		AuthService:          authSvc,
		QuestionnaireService: questionnaireSvc,
		AssessmentService:    assessmentSvc,
		NarrativeService:     narrativeSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/questionnaires")
		log.Println("  POST /v1/assessments")
		log.Println("  PUT  /v1/assessments/{id}/responses")
		log.Println("  POST /v1/assessments/{id}/complete")
		log.Println("  GET  /v1/assessments/{id}/result")
		log.Println("  GET  /v1/assessments/{id}/recommendations")
		log.Println("  GET/POST /v1/assessments/{id}/report")

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
