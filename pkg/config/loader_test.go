package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commandcenter.yaml"), []byte(content), 0o644))
}

func TestInitializeWithBuiltinsOnly(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 2000, cfg.Budgets[QueryTypeSystem].TotalTokens)
	assert.Equal(t, 5, cfg.Budgets[QueryTypeResearch].KBDocs)
	assert.Equal(t, 2, cfg.Budgets[QueryTypeGeneral].ConvTurns)
	assert.Equal(t, 500, cfg.KB.ChunkSize)
	assert.Equal(t, 50, cfg.KB.ChunkOverlap)
	assert.Equal(t, 60*time.Second, cfg.Telemetry.SolArk.PollInterval)
	assert.Equal(t, 300*time.Second, cfg.Telemetry.Victron.PollInterval)
	assert.Equal(t, 60*time.Second, cfg.Query.Deadline)
	assert.Equal(t, 3, cfg.Query.ManagerMaxIterations)
	assert.Equal(t, 5, cfg.Query.SpecialistMaxIterations)
	assert.Len(t, cfg.Classifier.Classes, 4)
	assert.Contains(t, cfg.Agents, "manager")
	assert.Contains(t, cfg.Agents, "planner_specialist")
}

func TestInitializeMissingLLMKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")

	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestInitializeYAMLOverrides(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
budgets:
  RESEARCH:
    total_tokens: 6000
agents:
  manager:
    backstory: "Custom manager backstory."
  weather_specialist:
    backstory: "Forecast interpreter."
classifier:
  kb_fast_path:
    - "check the binder"
context:
  user_preferences: "Prefers metric units. Battery floor is 40% SoC."
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Overridden fields change, untouched fields keep defaults.
	assert.Equal(t, 6000, cfg.Budgets[QueryTypeResearch].TotalTokens)
	assert.Equal(t, 5, cfg.Budgets[QueryTypeResearch].KBDocs)
	assert.Equal(t, 2000, cfg.Budgets[QueryTypeSystem].TotalTokens)

	assert.Equal(t, "Custom manager backstory.", cfg.Agents["manager"].Backstory)
	assert.Equal(t, "Forecast interpreter.", cfg.Agents["weather_specialist"].Backstory)
	assert.NotEmpty(t, cfg.Agents["status_specialist"].Backstory)

	assert.Equal(t, []string{"check the binder"}, cfg.Classifier.KBFastPath)
	assert.NotEmpty(t, cfg.Classifier.Classes)

	assert.Contains(t, cfg.UserPreferences, "metric units")
}

func TestInitializeBudgetEnvOverride(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("TOKEN_BUDGET_PLANNING", "5000")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Budgets[QueryTypePlanning].TotalTokens)
	assert.Equal(t, 4, cfg.Budgets[QueryTypePlanning].KBDocs)
}

func TestInitializeUnknownBudgetName(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
budgets:
  URGENT:
    total_tokens: 100
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestInitializeYAMLEnvExpansion(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("CC_TEST_PREFS", "No generator runs after 22:00.")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
context:
  user_preferences: "{{.CC_TEST_PREFS}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "No generator runs after 22:00.", cfg.UserPreferences)
}

func TestInitializeInvalidYAML(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	dir := t.TempDir()
	writeConfigFile(t, dir, "budgets: [not, a, map")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidatorChunkOverlap(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("KB_CHUNK_SIZE", "100")
	t.Setenv("KB_CHUNK_OVERLAP", "100")

	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap must be smaller than chunk size")
}

func TestValidatorClassifierRules(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
classifier:
  overrides:
    - type: NONSENSE
      prefixes: ["x"]
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown query type")
}
