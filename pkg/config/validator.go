package config

import (
	"errors"
	"fmt"
)

// Validator checks a loaded Config for missing or inconsistent settings.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation pass and returns the combined errors.
func (v *Validator) ValidateAll() error {
	var errs []error

	errs = append(errs, v.validateLLM()...)
	errs = append(errs, v.validateKB()...)
	errs = append(errs, v.validateQuery()...)
	errs = append(errs, v.validateBudgets()...)
	errs = append(errs, v.validateClassifier()...)
	errs = append(errs, v.validateAgents()...)
	errs = append(errs, v.validateTelemetry()...)

	return errors.Join(errs...)
}

func (v *Validator) validateLLM() []error {
	var errs []error
	if v.cfg.LLM.APIKey == "" {
		errs = append(errs, NewValidationError("llm", "LLM_API_KEY", ErrMissingRequiredField))
	}
	if v.cfg.LLM.Model == "" {
		errs = append(errs, NewValidationError("llm", "LLM_MODEL", ErrMissingRequiredField))
	}
	if v.cfg.LLM.Temperature < 0 || v.cfg.LLM.Temperature > 2 {
		errs = append(errs, NewValidationError("llm", "LLM_TEMPERATURE", ErrInvalidValue))
	}
	return errs
}

func (v *Validator) validateKB() []error {
	var errs []error
	kb := v.cfg.KB
	if kb.ChunkSize <= 0 {
		errs = append(errs, NewValidationError("kb", "KB_CHUNK_SIZE", ErrInvalidValue))
	}
	if kb.ChunkOverlap < 0 || (kb.ChunkSize > 0 && kb.ChunkOverlap >= kb.ChunkSize) {
		errs = append(errs, NewValidationError("kb", "KB_CHUNK_OVERLAP",
			fmt.Errorf("%w: overlap must be smaller than chunk size", ErrInvalidValue)))
	}
	if kb.SimilarityThreshold < 0 || kb.SimilarityThreshold > 1 {
		errs = append(errs, NewValidationError("kb", "KB_SIMILARITY_THRESHOLD", ErrInvalidValue))
	}
	if v.cfg.Embedding.Dimensions <= 0 {
		errs = append(errs, NewValidationError("kb", "EMBEDDING_DIMENSIONS", ErrInvalidValue))
	}
	return errs
}

func (v *Validator) validateQuery() []error {
	var errs []error
	q := v.cfg.Query
	if q.Deadline <= 0 {
		errs = append(errs, NewValidationError("query", "QUERY_DEADLINE_SECONDS", ErrInvalidValue))
	}
	if q.ManagerMaxIterations <= 0 {
		errs = append(errs, NewValidationError("query", "MANAGER_MAX_ITERATIONS", ErrInvalidValue))
	}
	if q.SpecialistMaxIterations <= 0 {
		errs = append(errs, NewValidationError("query", "SPECIALIST_MAX_ITERATIONS", ErrInvalidValue))
	}
	return errs
}

func (v *Validator) validateBudgets() []error {
	var errs []error
	for _, qt := range TieBreakOrder {
		b, ok := v.cfg.Budgets[qt]
		if !ok {
			errs = append(errs, NewValidationError("budget", string(qt), ErrMissingRequiredField))
			continue
		}
		if b.TotalTokens <= 0 {
			errs = append(errs, NewValidationError("budget", string(qt),
				fmt.Errorf("%w: total_tokens must be positive", ErrInvalidValue)))
		}
		if b.KBDocs < 0 || b.ConvTurns < 0 {
			errs = append(errs, NewValidationError("budget", string(qt), ErrInvalidValue))
		}
	}
	return errs
}

func (v *Validator) validateClassifier() []error {
	var errs []error
	seen := make(map[QueryType]bool)
	for _, c := range v.cfg.Classifier.Classes {
		if !validQueryType(c.Type) {
			errs = append(errs, NewValidationError("classifier", string(c.Type),
				fmt.Errorf("%w: unknown query type", ErrInvalidValue)))
			continue
		}
		if seen[c.Type] {
			errs = append(errs, NewValidationError("classifier", string(c.Type),
				fmt.Errorf("%w: duplicate class", ErrInvalidValue)))
		}
		seen[c.Type] = true
		for _, kw := range c.Keywords {
			if kw.Phrase == "" || kw.Weight <= 0 {
				errs = append(errs, NewValidationError("classifier", string(c.Type),
					fmt.Errorf("%w: keyword %q weight %v", ErrInvalidValue, kw.Phrase, kw.Weight)))
			}
		}
	}
	for _, o := range v.cfg.Classifier.Overrides {
		if !validQueryType(o.Type) {
			errs = append(errs, NewValidationError("classifier", "overrides",
				fmt.Errorf("%w: unknown query type %q", ErrInvalidValue, o.Type)))
		}
		if len(o.Prefixes) == 0 && len(o.Contains) == 0 {
			errs = append(errs, NewValidationError("classifier", "overrides",
				fmt.Errorf("%w: rule matches nothing", ErrInvalidValue)))
		}
	}
	return errs
}

func (v *Validator) validateAgents() []error {
	var errs []error
	for _, required := range []string{"manager", "status_specialist", "research_specialist", "planner_specialist"} {
		a, ok := v.cfg.Agents[required]
		if !ok || a.Backstory == "" {
			errs = append(errs, NewValidationError("agent", required, ErrMissingRequiredField))
		}
	}
	return errs
}

func (v *Validator) validateTelemetry() []error {
	var errs []error
	for name, vendor := range map[string]VendorConfig{
		"solark":  v.cfg.Telemetry.SolArk,
		"victron": v.cfg.Telemetry.Victron,
	} {
		if vendor.PollInterval <= 0 {
			errs = append(errs, NewValidationError("telemetry", name+".poll_interval", ErrInvalidValue))
		}
		if vendor.RateLimitPerHour <= 0 {
			errs = append(errs, NewValidationError("telemetry", name+".rate_limit_per_hour", ErrInvalidValue))
		}
	}
	if v.cfg.Telemetry.MaxConsecutiveFailures <= 0 {
		errs = append(errs, NewValidationError("telemetry", "TELEMETRY_MAX_FAILURES", ErrInvalidValue))
	}
	return errs
}

func validQueryType(qt QueryType) bool {
	switch qt {
	case QueryTypeSystem, QueryTypeResearch, QueryTypePlanning, QueryTypeGeneral:
		return true
	}
	return false
}
