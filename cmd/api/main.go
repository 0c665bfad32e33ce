package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Shoaibzaak/docscreen/internal/application"
	appadvice "github.com/Shoaibzaak/docscreen/internal/application/advice"
	appdocs "github.com/Shoaibzaak/docscreen/internal/application/documents"
	"github.com/Shoaibzaak/docscreen/internal/config"
	domain "github.com/Shoaibzaak/docscreen/internal/domain/documents"
	aiopenai "github.com/Shoaibzaak/docscreen/internal/infra/ai/openai"
	"github.com/Shoaibzaak/docscreen/internal/infra/httpserver"
	"github.com/Shoaibzaak/docscreen/internal/infra/imaging"
	minioStore "github.com/Shoaibzaak/docscreen/internal/infra/storage"
	"github.com/Shoaibzaak/docscreen/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	tuning := cfg.Tuning()
	registry := domain.NewRegistry(cfg.Analysis.DocumentTypes)

	// AI client is optional; without a key the pipeline degrades to the
	// deterministic analyzers and says so in the result.
	var aiClient *aiopenai.Client
	if cfg.AI.APIKey != "" {
		aiClient = aiopenai.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	} else {
		log.Println("no AI credential configured; running metadata+visual analysis only")
	}

	// evidence archive is optional too
	var archive *minioStore.Store
	checkers := map[string]middleware.HealthChecker{}
	if cfg.Minio.Endpoint != "" {
		archive, err = minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		checkers["archive"] = middleware.CheckerFunc(archive.Check)
	}

	// init services
	docsSvc := &appdocs.Service{
		Normalizer:  imaging.NewNormalizer(),
		Metadata:    imaging.NewMetadataAnalyzer(tuning),
		Visual:      imaging.NewVisualDetector(tuning),
		Types:       registry,
		Tuning:      tuning,
		Clock:       application.SystemClock{},
		CallTimeout: cfg.CallTimeout(),
	}
	adviceSvc := &appadvice.Service{}
	if aiClient != nil {
		docsSvc.AI = aiClient
		adviceSvc.Client = aiClient
	}

	// init router
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(cfg.Limits.RateCapacity, cfg.Limits.RateRefillPerSec))
	if len(cfg.Auth.APIKeys) > 0 {
		mux.Use(middleware.APIKeyAuth(cfg.Auth.APIKeys))
	}

	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)
	mux.Get("/health", middleware.HealthHandler(checkers))

	var archivePort domain.ArchiveStore
	if archive != nil {
		archivePort = archive
	}
	mux.Mount("/", httpserver.NewRouter(docsSvc, adviceSvc, archivePort, registry, cfg.Limits.MaxUploadBytes))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // AI calls can take a while
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
