package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fakeguard/backend/config"
	httpDelivery "github.com/fakeguard/backend/internal/delivery/http"
	"github.com/fakeguard/backend/internal/domain"
	"github.com/fakeguard/backend/internal/infrastructure/cache"
	"github.com/fakeguard/backend/internal/infrastructure/embedding"
	"github.com/fakeguard/backend/internal/infrastructure/pineconeindex"
	"github.com/fakeguard/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting FakeGuard Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Embedding model: %s", cfg.Embedding.Model)

	// Embedding client with a deterministic-text vector cache in front
	embedClient := embedding.NewClient(cfg.Embedding.APIKey, cfg.Embedding.BaseURL, cfg.Embedding.Model)
	if cfg.Server.Environment == "development" {
		embedClient.SetDebug(true)
		log.Printf("Embedding client debug mode enabled")
	}

	vectorCache := cache.NewMemoryCache()
	embedder := embedding.NewCached(embedClient, vectorCache, cfg.Cache.TTL)
	log.Printf("Embedding cache TTL: %s", cfg.Cache.TTL)

	// One reference index per product category; connections are dialed
	// lazily on first use.
	pineconeClient, err := pineconeindex.NewClient(cfg.Pinecone.APIKey)
	if err != nil {
		log.Fatalf("Failed to create Pinecone client: %v", err)
	}

	indexes := map[domain.Category]domain.VectorIndex{
		domain.CategoryDrug:        pineconeindex.NewIndex(pineconeClient, cfg.Pinecone.DrugIndexHost, cfg.Pinecone.Namespace),
		domain.CategoryBabyProduct: pineconeindex.NewIndex(pineconeClient, cfg.Pinecone.BabyIndexHost, cfg.Pinecone.Namespace),
	}
	log.Printf("Reference indexes: drug=%s baby-product=%s", cfg.Pinecone.DrugIndexHost, cfg.Pinecone.BabyIndexHost)

	// Initialize usecase layer
	classifier := usecase.NewClassifierService(embedder, indexes, usecase.ClassifierConfig{
		SimilarityThreshold: cfg.Classifier.SimilarityThreshold,
		TopK:                cfg.Classifier.TopK,
		EnableDebugLogging:  cfg.Classifier.EnableDebugLogging,
	})

	log.Printf("Classifier: threshold=%.2f, top_k=%d, debug=%v",
		cfg.Classifier.SimilarityThreshold,
		cfg.Classifier.TopK,
		cfg.Classifier.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(classifier)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
