// Package config loads and validates CommandCenter configuration:
// environment-driven infrastructure knobs plus the data-shaped
// commandcenter.yaml (classifier keyword tables, token budgets, agent
// backstories), so classifier tuning does not require a rebuild.
package config

import "time"

// QueryType classifies an operator query. It selects the token budget and
// biases manager routing.
type QueryType string

// Query type constants. Tie-break order for classification is
// SYSTEM > PLANNING > RESEARCH > GENERAL.
const (
	QueryTypeSystem   QueryType = "SYSTEM"
	QueryTypeResearch QueryType = "RESEARCH"
	QueryTypePlanning QueryType = "PLANNING"
	QueryTypeGeneral  QueryType = "GENERAL"
)

// TieBreakOrder is the deterministic tie-break order for equal classifier
// scores.
var TieBreakOrder = []QueryType{QueryTypeSystem, QueryTypePlanning, QueryTypeResearch, QueryTypeGeneral}

// Budget bounds the context bundle for one query type.
type Budget struct {
	TotalTokens int `yaml:"total_tokens"`
	KBDocs      int `yaml:"kb_docs"`
	ConvTurns   int `yaml:"conv_turns"`
}

// Config is the fully-loaded, validated configuration.
type Config struct {
	HTTPPort string
	APIKey   string // Optional; when set, non-health endpoints require it

	LLM       LLMConfig
	Embedding EmbeddingConfig
	Cache     CacheConfig
	KB        KBConfig
	Telemetry TelemetryConfig
	Query     QueryConfig
	WebSearch WebSearchConfig
	Retention RetentionConfig

	Classifier      ClassifierConfig
	Budgets         map[QueryType]Budget
	Agents          map[string]AgentConfig
	UserPreferences string // Optional operator preferences text for bundles
}

// LLMConfig configures the LLM provider.
type LLMConfig struct {
	APIKey      string
	Model       string
	BaseURL     string // Optional override for OpenAI-compatible endpoints
	Temperature float64
	CallTimeout time.Duration
	MaxRetries  int
}

// EmbeddingConfig configures the embedding provider.
type EmbeddingConfig struct {
	Model       string
	Dimensions  int
	CallTimeout time.Duration
	MaxRetries  int
}

// CacheConfig configures the optional bundle cache.
type CacheConfig struct {
	URL string // Empty = uncached operation
	TTL time.Duration
}

// KBConfig configures the knowledge base.
type KBConfig struct {
	ProviderBaseURL     string
	ProviderToken       string
	RootFolderID        string
	ContextFolderName   string
	ChunkSize           int
	ChunkOverlap        int
	SimilarityThreshold float64
	SyncInterval        time.Duration // 0 = manual sync only
}

// VendorConfig configures one telemetry vendor.
type VendorConfig struct {
	BaseURL          string
	Token            string
	PlantID          string
	PollInterval     time.Duration
	RateLimitPerHour int
}

// TelemetryConfig configures both pollers.
type TelemetryConfig struct {
	SolArk  VendorConfig
	Victron VendorConfig
	// StaleWindow bounds how old the last success may be before a poller
	// reports unhealthy.
	StaleWindow time.Duration
	// MaxConsecutiveFailures before a poller reports unhealthy.
	MaxConsecutiveFailures int
}

// QueryConfig bounds per-query execution.
type QueryConfig struct {
	Deadline                time.Duration
	ManagerMaxIterations    int
	SpecialistMaxIterations int
	// PoolExhaustedAfter is how long the orchestrator waits on a saturated
	// connection pool before refusing new work with 503.
	PoolExhaustedAfter time.Duration
}

// WebSearchConfig configures the web-search provider.
type WebSearchConfig struct {
	BaseURL     string
	APIKey      string
	CallTimeout time.Duration
}

// RetentionConfig controls the conversation retention sweep.
type RetentionConfig struct {
	// ConversationIdle closes conversations idle past this window.
	// 0 disables the sweep.
	ConversationIdle time.Duration
	SweepInterval    time.Duration
}

// AgentConfig holds per-agent prompt configuration from YAML.
type AgentConfig struct {
	Backstory string `yaml:"backstory"`
}

// ClassifierConfig holds the keyword scoring tables, loaded as data.
type ClassifierConfig struct {
	Classes   []ClassKeywords `yaml:"classes"`
	Overrides []OverrideRule  `yaml:"overrides"`
	// KBFastPath lists substrings that send a query straight to KB search,
	// bypassing LLM routing.
	KBFastPath []string `yaml:"kb_fast_path"`
	// OffTopic lists substrings the manager answers directly without tools.
	OffTopic []string `yaml:"off_topic"`
}

// ClassKeywords is the weighted keyword set for one query type.
type ClassKeywords struct {
	Type     QueryType         `yaml:"type"`
	Keywords []WeightedKeyword `yaml:"keywords"`
}

// WeightedKeyword scores a phrase match. Multi-word phrases should carry
// higher weights than single tokens.
type WeightedKeyword struct {
	Phrase string  `yaml:"phrase"`
	Weight float64 `yaml:"weight"`
}

// OverrideRule short-circuits scoring: a query matching a prefix (or
// containing a fragment) is assigned Type directly.
type OverrideRule struct {
	Prefixes []string  `yaml:"prefixes"`
	Contains []string  `yaml:"contains"`
	Type     QueryType `yaml:"type"`
}
