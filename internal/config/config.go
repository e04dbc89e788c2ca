package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// APIToken is the shared secret clients must present in the
	// X-Api-Token header. Requests without it are rejected with 401.
	APIToken string `env:"API_TOKEN,required"`

	// StorageBackend selects where generated commands are persisted:
	// "file" (local JSON document store) or "github" (contents API).
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`
	StoragePath    string `env:"STORAGE_PATH" envDefault:"commands.json"`

	GitHubToken  string `env:"GITHUB_TOKEN"`
	GitHubOwner  string `env:"GITHUB_OWNER"`
	GitHubRepo   string `env:"GITHUB_REPO"`
	GitHubPath   string `env:"GITHUB_PATH" envDefault:"commands"`
	GitHubBranch string `env:"GITHUB_BRANCH" envDefault:"main"`
}

func New() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.StorageBackend == "github" {
		if cfg.GitHubToken == "" || cfg.GitHubOwner == "" || cfg.GitHubRepo == "" {
			return nil, fmt.Errorf("github storage backend requires GITHUB_TOKEN, GITHUB_OWNER and GITHUB_REPO")
		}
	}

	return &cfg, nil
}
