package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardinghouse-backend/config"
	"boardinghouse-backend/controllers"
	"boardinghouse-backend/repositories"
	"boardinghouse-backend/routes"
	"boardinghouse-backend/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied")

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	ruleRepo := repositories.NewRuleRepository(db)
	publicRepo := repositories.NewPublicRepository(db)

	// Services
	imageStore := services.NewImageStore(cfg.UploadsDir)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	propertyService := services.NewPropertyService(propertyRepo, ruleRepo, imageStore, cfg.CascadeRulesOnDelete)
	ruleService := services.NewRuleService(propertyRepo, ruleRepo)
	publicService := services.NewPublicPropertyService(publicRepo)

	// Controllers
	authController := controllers.NewAuthController(authService)
	propertyController := controllers.NewPropertyController(propertyService, imageStore)
	ruleController := controllers.NewPropertyRuleController(ruleService)
	publicController := controllers.NewPublicPropertyController(publicService)

	router := routes.SetupRouter(
		authController,
		propertyController,
		ruleController,
		publicController,
		cfg.JWTSecret,
		cfg.UploadsDir,
	)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
