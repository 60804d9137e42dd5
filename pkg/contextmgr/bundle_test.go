package contextmgr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offgrid-ops/commandcenter/pkg/cache"
	"github.com/offgrid-ops/commandcenter/pkg/config"
)

type fakeKB struct {
	chunks    []ScoredChunk
	docs      []ContextDocument
	version   uint64
	searchErr error
	docsErr   error
}

func (f *fakeKB) SearchChunks(_ context.Context, _ string, topK int, _ float64) ([]ScoredChunk, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if len(f.chunks) > topK {
		return f.chunks[:topK], nil
	}
	return f.chunks, nil
}

func (f *fakeKB) ContextDocuments(context.Context) ([]ContextDocument, error) {
	if f.docsErr != nil {
		return nil, f.docsErr
	}
	return f.docs, nil
}

func (f *fakeKB) Version() uint64 { return f.version }

type fakeHistory struct {
	turns []Turn
	err   error
}

func (f *fakeHistory) RecentTurns(_ context.Context, _ string, turns int) ([]Turn, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.turns) > 2*turns {
		return f.turns[len(f.turns)-2*turns:], nil
	}
	return f.turns, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Classifier:      config.BuiltinClassifier(),
		Budgets:         config.BuiltinBudgets(),
		UserPreferences: "Battery floor is 40% SoC.",
		KB:              config.KBConfig{SimilarityThreshold: 0.3},
	}
}

func newTestManager(t *testing.T, kb *fakeKB, history *fakeHistory, c cache.Cache) *Manager {
	t.Helper()
	if c == nil {
		c = cache.NewNoopCache()
	}
	return NewManager(testConfig(t), c, kb, history)
}

func TestBundleWithinBudget(t *testing.T) {
	kb := &fakeKB{
		docs: []ContextDocument{
			{Title: "Site Overview", Text: strings.Repeat("site ", 50), TokenCount: 60},
		},
		chunks: []ScoredChunk{
			{Title: "SOC Policy", Folder: "/Policies", ChunkText: strings.Repeat("policy ", 40), Similarity: 0.92},
			{Title: "Wiring", Folder: "/Manuals", ChunkText: strings.Repeat("wiring ", 40), Similarity: 0.71},
		},
	}
	history := &fakeHistory{turns: []Turn{
		{Role: "user", Content: "what happened overnight?"},
		{Role: "assistant", Content: "Battery held at 61% SoC."},
	}}

	m := newTestManager(t, kb, history, nil)

	bundle, err := m.Bundle(context.Background(), "what is my battery level?", "session-1", "")
	require.NoError(t, err)

	assert.Equal(t, config.QueryTypeSystem, bundle.QueryType)
	assert.False(t, bundle.CacheHit)
	assert.NotEmpty(t, bundle.System)
	assert.NotEmpty(t, bundle.User)
	assert.NotEmpty(t, bundle.Conversation)
	assert.NotEmpty(t, bundle.KB)
	assert.LessOrEqual(t, bundle.TotalTokens, m.Budget(bundle.QueryType).TotalTokens)
}

func TestBundleGeneralSkipsKB(t *testing.T) {
	kb := &fakeKB{chunks: []ScoredChunk{{Title: "Doc", ChunkText: "text", Similarity: 0.9}}}
	m := newTestManager(t, kb, &fakeHistory{}, nil)

	bundle, err := m.Bundle(context.Background(), "hello, thanks!", "", "")
	require.NoError(t, err)

	assert.Equal(t, config.QueryTypeGeneral, bundle.QueryType)
	assert.Empty(t, bundle.KB)
	assert.LessOrEqual(t, bundle.TotalTokens, m.Budget(config.QueryTypeGeneral).TotalTokens)
}

func TestBundleSourceFailuresDegrade(t *testing.T) {
	kb := &fakeKB{
		searchErr: errors.New("embedding provider down"),
		docsErr:   errors.New("db down"),
	}
	history := &fakeHistory{err: errors.New("db down")}
	m := newTestManager(t, kb, history, nil)

	bundle, err := m.Bundle(context.Background(), "what is my battery level?", "session-1", "")
	require.NoError(t, err)

	assert.Empty(t, bundle.System)
	assert.Empty(t, bundle.Conversation)
	assert.Empty(t, bundle.KB)
	assert.NotEmpty(t, bundle.User)
}

func TestBundleCacheHitRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisCache(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	kb := &fakeKB{version: 3, chunks: []ScoredChunk{
		{Title: "SOC Policy", Folder: "/Policies", ChunkText: "Keep SoC above 40%.", Similarity: 0.9},
	}}
	m := newTestManager(t, kb, &fakeHistory{}, c)

	first, err := m.Bundle(context.Background(), "what is my battery level?", "s1", "u1")
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := m.Bundle(context.Background(), "What  is my battery level?", "s1", "u1")
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.QueryType, second.QueryType)
	assert.Equal(t, first.KB, second.KB)
}

func TestBundleSyncInvalidatesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisCache(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	kb := &fakeKB{version: 1}
	m := newTestManager(t, kb, &fakeHistory{}, c)

	_, err = m.Bundle(context.Background(), "what is my battery level?", "s1", "")
	require.NoError(t, err)

	kb.version = 2

	bundle, err := m.Bundle(context.Background(), "what is my battery level?", "s1", "")
	require.NoError(t, err)
	assert.False(t, bundle.CacheHit)
}

func TestBundleConversationDropsOldestTurns(t *testing.T) {
	long := strings.Repeat("word ", 800) // ~1000 tokens per message
	history := &fakeHistory{turns: []Turn{
		{Role: "user", Content: long},
		{Role: "assistant", Content: long},
		{Role: "user", Content: "short question"},
		{Role: "assistant", Content: "short answer"},
	}}
	m := newTestManager(t, &fakeKB{}, history, nil)

	bundle, err := m.Bundle(context.Background(), "what is my battery level?", "s1", "")
	require.NoError(t, err)

	assert.Contains(t, bundle.Conversation, "short answer")
	assert.NotContains(t, bundle.Conversation, strings.TrimSpace(long))
	assert.LessOrEqual(t, bundle.TotalTokens, m.Budget(bundle.QueryType).TotalTokens)
}

func TestCacheKeyNormalization(t *testing.T) {
	k1 := CacheKey(config.QueryTypeSystem, "What IS   my battery?", "s", "u", 1)
	k2 := CacheKey(config.QueryTypeSystem, "what is my battery?", "s", "u", 1)
	k3 := CacheKey(config.QueryTypeSystem, "what is my battery?", "s", "u", 2)

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k2, k3)
	assert.True(t, strings.HasPrefix(k1, "bundle:"))
}

func TestFormatOmitsEmptySections(t *testing.T) {
	out := Format(&ContextBundle{
		System: "site details",
		KB:     "chunk text",
	})

	assert.Contains(t, out, "## Site Context")
	assert.Contains(t, out, "## Knowledge Base")
	assert.NotContains(t, out, "## Operator Preferences")
	assert.NotContains(t, out, "## Conversation History")
}
