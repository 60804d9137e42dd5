package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// CommandCenterYAML represents the complete commandcenter.yaml file
// structure. Everything in it is data tuning, not infrastructure:
// endpoints and credentials come from the environment only.
type CommandCenterYAML struct {
	Classifier *ClassifierConfig      `yaml:"classifier"`
	Budgets    map[string]Budget      `yaml:"budgets"`
	Agents     map[string]AgentConfig `yaml:"agents"`
	Context    *ContextYAMLConfig     `yaml:"context"`
}

// ContextYAMLConfig groups bundle-assembly settings from YAML.
type ContextYAMLConfig struct {
	UserPreferences string `yaml:"user_preferences"`
}

// Initialize loads, merges, and validates the full configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read environment-driven settings
//  2. Load commandcenter.yaml from configDir (optional)
//  3. Expand {{.VAR}} environment templates in the YAML
//  4. Merge built-in classifier/budgets/agents with YAML overrides
//  5. Apply TOKEN_BUDGET_* environment overrides
//  6. Validate everything
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := loadFromEnv()

	yamlCfg, err := loadCommandCenterYAML(configDir)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			log.Info("No commandcenter.yaml found, using built-in tuning")
			yamlCfg = &CommandCenterYAML{}
		} else {
			return nil, NewLoadError("commandcenter.yaml", err)
		}
	}

	cfg.Classifier = resolveClassifier(yamlCfg.Classifier)
	cfg.Budgets, err = resolveBudgets(yamlCfg.Budgets)
	if err != nil {
		return nil, err
	}
	applyBudgetEnvOverrides(cfg.Budgets)

	cfg.Agents, err = resolveAgents(yamlCfg.Agents)
	if err != nil {
		return nil, err
	}

	if yamlCfg.Context != nil {
		cfg.UserPreferences = yamlCfg.Context.UserPreferences
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"agents", len(cfg.Agents),
		"classifier_classes", len(cfg.Classifier.Classes),
		"cache_enabled", cfg.Cache.URL != "",
		"kb_sync_interval", cfg.KB.SyncInterval)

	return cfg, nil
}

func loadCommandCenterYAML(configDir string) (*CommandCenterYAML, error) {
	path := filepath.Join(configDir, "commandcenter.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax before
	// parsing; ExpandEnv passes data through untouched on template errors so
	// the YAML parser can produce the clearer message.
	data = ExpandEnv(data)

	var config CommandCenterYAML
	config.Budgets = make(map[string]Budget)
	config.Agents = make(map[string]AgentConfig)

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &config, nil
}

// resolveClassifier overlays YAML classifier sections on the built-in
// tables. Each section replaces its built-in counterpart wholesale when
// present; partial keyword edits are expressed by restating the class.
func resolveClassifier(user *ClassifierConfig) ClassifierConfig {
	cfg := BuiltinClassifier()
	if user == nil {
		return cfg
	}

	if len(user.Classes) > 0 {
		byType := make(map[QueryType]ClassKeywords, len(cfg.Classes))
		for _, c := range cfg.Classes {
			byType[c.Type] = c
		}
		for _, c := range user.Classes {
			byType[c.Type] = c
		}
		merged := make([]ClassKeywords, 0, len(byType))
		for _, qt := range TieBreakOrder {
			if c, ok := byType[qt]; ok {
				merged = append(merged, c)
			}
		}
		cfg.Classes = merged
	}
	if len(user.Overrides) > 0 {
		cfg.Overrides = user.Overrides
	}
	if len(user.KBFastPath) > 0 {
		cfg.KBFastPath = user.KBFastPath
	}
	if len(user.OffTopic) > 0 {
		cfg.OffTopic = user.OffTopic
	}

	return cfg
}

// resolveBudgets merges user budget entries over the built-ins. Non-zero
// fields override; unset fields keep their defaults.
func resolveBudgets(user map[string]Budget) (map[QueryType]Budget, error) {
	budgets := BuiltinBudgets()

	for name, b := range user {
		qt := QueryType(name)
		base, ok := budgets[qt]
		if !ok {
			return nil, NewValidationError("budget", name, ErrInvalidValue)
		}
		if err := mergo.Merge(&base, b, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge budget %s: %w", name, err)
		}
		budgets[qt] = base
	}

	return budgets, nil
}

// resolveAgents merges user agent entries over the built-in roster. Unknown
// agent names are allowed so operators can add specialists via YAML.
func resolveAgents(user map[string]AgentConfig) (map[string]AgentConfig, error) {
	agents := BuiltinAgents()

	for name, a := range user {
		base := agents[name]
		if err := mergo.Merge(&base, a, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge agent %s: %w", name, err)
		}
		agents[name] = base
	}

	return agents, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}
