package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// getEnv returns the environment variable or a default when unset/empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the environment variable parsed as int, or the default.
// A set-but-unparseable value logs a warning and falls back.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

// getEnvFloat returns the environment variable parsed as float64, or the default.
func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("Invalid float in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

// getEnvSeconds reads an integer number of seconds into a Duration.
func getEnvSeconds(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("Invalid seconds value in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return time.Duration(n) * time.Second
}

// getEnvMinutes reads an integer number of minutes into a Duration.
func getEnvMinutes(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("Invalid minutes value in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return time.Duration(n) * time.Minute
}

// getEnvHours reads an integer number of hours into a Duration.
func getEnvHours(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("Invalid hours value in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return time.Duration(n) * time.Hour
}

// loadFromEnv builds the environment-driven portion of the configuration.
// YAML never overrides these; infrastructure endpoints and credentials live
// in the environment only.
func loadFromEnv() *Config {
	cfg := &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		APIKey:   os.Getenv("API_KEY"),

		LLM: LLMConfig{
			APIKey:      os.Getenv("LLM_API_KEY"),
			Model:       getEnv("LLM_MODEL", "gpt-4o"),
			BaseURL:     os.Getenv("LLM_BASE_URL"),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0.1),
			CallTimeout: getEnvSeconds("LLM_TIMEOUT_SECONDS", 45*time.Second),
			MaxRetries:  getEnvInt("LLM_MAX_RETRIES", 2),
		},
		Embedding: EmbeddingConfig{
			Model:       getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			Dimensions:  getEnvInt("EMBEDDING_DIMENSIONS", 1536),
			CallTimeout: getEnvSeconds("EMBEDDING_TIMEOUT_SECONDS", 30*time.Second),
			MaxRetries:  getEnvInt("EMBEDDING_MAX_RETRIES", 3),
		},
		Cache: CacheConfig{
			URL: os.Getenv("CACHE_URL"),
			TTL: getEnvSeconds("CACHE_TTL_SECONDS", 300*time.Second),
		},
		KB: KBConfig{
			ProviderBaseURL:     os.Getenv("DOCS_PROVIDER_BASE_URL"),
			ProviderToken:       os.Getenv("DOCS_PROVIDER_TOKEN"),
			RootFolderID:        os.Getenv("KB_ROOT_FOLDER_ID"),
			ContextFolderName:   getEnv("KB_CONTEXT_FOLDER_NAME", "Context"),
			ChunkSize:           getEnvInt("KB_CHUNK_SIZE", 500),
			ChunkOverlap:        getEnvInt("KB_CHUNK_OVERLAP", 50),
			SimilarityThreshold: getEnvFloat("KB_SIMILARITY_THRESHOLD", 0.3),
			SyncInterval:        getEnvMinutes("KB_SYNC_INTERVAL_MINUTES", 0),
		},
		Telemetry: TelemetryConfig{
			SolArk: VendorConfig{
				BaseURL:          os.Getenv("SOLARK_BASE_URL"),
				Token:            os.Getenv("SOLARK_TOKEN"),
				PlantID:          os.Getenv("SOLARK_PLANT_ID"),
				PollInterval:     getEnvSeconds("POLL_INTERVAL_SOLARK", 60*time.Second),
				RateLimitPerHour: getEnvInt("RATE_LIMIT_SOLARK_PER_HOUR", 60),
			},
			Victron: VendorConfig{
				BaseURL:          os.Getenv("VICTRON_BASE_URL"),
				Token:            os.Getenv("VICTRON_TOKEN"),
				PlantID:          os.Getenv("VICTRON_SITE_ID"),
				PollInterval:     getEnvSeconds("POLL_INTERVAL_VICTRON", 300*time.Second),
				RateLimitPerHour: getEnvInt("RATE_LIMIT_VICTRON_PER_HOUR", 30),
			},
			StaleWindow:            getEnvSeconds("TELEMETRY_STALE_SECONDS", 600*time.Second),
			MaxConsecutiveFailures: getEnvInt("TELEMETRY_MAX_FAILURES", 3),
		},
		Query: QueryConfig{
			Deadline:                getEnvSeconds("QUERY_DEADLINE_SECONDS", 60*time.Second),
			ManagerMaxIterations:    getEnvInt("MANAGER_MAX_ITERATIONS", 3),
			SpecialistMaxIterations: getEnvInt("SPECIALIST_MAX_ITERATIONS", 5),
			PoolExhaustedAfter:      getEnvSeconds("POOL_EXHAUSTED_SECONDS", 5*time.Second),
		},
		WebSearch: WebSearchConfig{
			BaseURL:     os.Getenv("WEB_SEARCH_BASE_URL"),
			APIKey:      os.Getenv("WEB_SEARCH_API_KEY"),
			CallTimeout: getEnvSeconds("WEB_SEARCH_TIMEOUT_SECONDS", 20*time.Second),
		},
		Retention: RetentionConfig{
			ConversationIdle: getEnvHours("CONVERSATION_RETENTION_HOURS", 72*time.Hour),
			SweepInterval:    getEnvMinutes("RETENTION_SWEEP_MINUTES", 60*time.Minute),
		},
	}

	return cfg
}

// applyBudgetEnvOverrides lets operators resize per-type token budgets
// without touching YAML. Only the total changes; doc and turn counts stay
// at their configured values.
func applyBudgetEnvOverrides(budgets map[QueryType]Budget) {
	for qt, key := range map[QueryType]string{
		QueryTypeSystem:   "TOKEN_BUDGET_SYSTEM",
		QueryTypeResearch: "TOKEN_BUDGET_RESEARCH",
		QueryTypePlanning: "TOKEN_BUDGET_PLANNING",
		QueryTypeGeneral:  "TOKEN_BUDGET_GENERAL",
	} {
		if v := getEnvInt(key, 0); v > 0 {
			b := budgets[qt]
			b.TotalTokens = v
			budgets[qt] = b
		}
	}
}
