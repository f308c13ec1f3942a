package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Embedding  EmbeddingConfig
	Pinecone   PineconeConfig
	Classifier ClassifierConfig
	Cache      CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmbeddingConfig selects the external embedding model endpoint
type EmbeddingConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// PineconeConfig identifies the per-category reference indexes
type PineconeConfig struct {
	APIKey        string `mapstructure:"api_key"`
	DrugIndexHost string `mapstructure:"drug_index_host"`
	BabyIndexHost string `mapstructure:"baby_index_host"`
	Namespace     string `mapstructure:"namespace"`
}

// ClassifierConfig holds the decision-policy tunables
type ClassifierConfig struct {
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	TopK                int     `mapstructure:"top_k"`
	EnableDebugLogging  bool    `mapstructure:"enable_debug_logging"`
}

// CacheConfig holds embedding-cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/fakeguard/")

	v.SetEnvPrefix("FAKEGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough to run.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Embedding defaults
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.base_url", "https://api.openai.com/v1")
	v.SetDefault("embedding.model", "text-embedding-3-small")

	// Pinecone keys have no usable defaults, but registering them lets
	// AutomaticEnv pick them up during Unmarshal.
	v.SetDefault("pinecone.api_key", "")
	v.SetDefault("pinecone.drug_index_host", "")
	v.SetDefault("pinecone.baby_index_host", "")
	v.SetDefault("pinecone.namespace", "")

	// Classifier defaults
	v.SetDefault("classifier.similarity_threshold", 0.80)
	v.SetDefault("classifier.top_k", 5)
	v.SetDefault("classifier.enable_debug_logging", false)

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Embedding.APIKey == "" {
		return fmt.Errorf("embedding API key is required (set FAKEGUARD_EMBEDDING_API_KEY)")
	}

	if config.Pinecone.APIKey == "" {
		return fmt.Errorf("Pinecone API key is required (set FAKEGUARD_PINECONE_API_KEY)")
	}

	if config.Pinecone.DrugIndexHost == "" || config.Pinecone.BabyIndexHost == "" {
		return fmt.Errorf("both reference index hosts are required (set FAKEGUARD_PINECONE_DRUG_INDEX_HOST and FAKEGUARD_PINECONE_BABY_INDEX_HOST)")
	}

	if config.Classifier.SimilarityThreshold <= 0 || config.Classifier.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold must be in (0, 1], got: %v", config.Classifier.SimilarityThreshold)
	}

	return nil
}
