package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"resume-studio/pkg/ai"
)

type Config struct {
	Addr            string        `yaml:"addr"`
	LogLevel        string        `yaml:"log_level"`
	DatabaseURL     string        `yaml:"database_url"`
	ChromePath      string        `yaml:"chrome_path"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Ollama          ai.Config     `yaml:"ollama"`
}

// Load builds the config from defaults, then an optional YAML file, then
// environment overrides (env wins).
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:            ":3000",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		Ollama: ai.Config{
			BaseURL: "http://localhost:11434",
			Model:   "llama3.2",
			Timeout: 60 * time.Second,
		},
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		cfg.ChromePath = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		cfg.Ollama.BaseURL = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.Ollama.Model = v
	}

	return cfg, nil
}
