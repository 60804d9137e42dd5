package database

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offgrid-ops/commandcenter/pkg/config"
	"github.com/offgrid-ops/commandcenter/pkg/kb"
)

// hashEmbedder produces deterministic unit vectors seeded by the text, so
// identical text embeds identically and unrelated texts are near-orthogonal.
type hashEmbedder struct{ dims int }

func (e *hashEmbedder) Dimensions() int { return e.dims }

func (e *hashEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		h := fnv.New64a()
		_, _ = h.Write([]byte(text))
		rng := rand.New(rand.NewSource(int64(h.Sum64())))

		vec := make([]float32, e.dims)
		var norm float64
		for d := range vec {
			vec[d] = float32(rng.NormFloat64())
			norm += float64(vec[d]) * float64(vec[d])
		}
		norm = math.Sqrt(norm)
		for d := range vec {
			vec[d] = float32(float64(vec[d]) / norm)
		}
		out[i] = vec
	}
	return out, nil
}

// fakeProvider serves documents from memory.
type fakeProvider struct {
	docs  []kb.ProviderDocument
	texts map[string]string
}

func (p *fakeProvider) List(context.Context, string) ([]kb.ProviderDocument, error) {
	return p.docs, nil
}

func (p *fakeProvider) FetchText(_ context.Context, externalID string) (string, error) {
	text, ok := p.texts[externalID]
	if !ok {
		return "", kb.ErrDocumentGone
	}
	return text, nil
}

func kbFixture(t *testing.T) (*kb.Service, *fakeProvider) {
	t.Helper()
	client := NewTestClient(t)

	provider := &fakeProvider{
		docs: []kb.ProviderDocument{
			{ExternalID: "doc-battery", Title: "Battery Manual", FolderPath: "Manuals", MimeKind: "doc", ModifiedAt: time.Now()},
			{ExternalID: "doc-context", Title: "Site Overview", FolderPath: "Context", MimeKind: "doc", ModifiedAt: time.Now()},
			{ExternalID: "doc-ghost", Title: "Ghost", FolderPath: "Manuals", MimeKind: "doc", ModifiedAt: time.Now()},
		},
		texts: map[string]string{
			"doc-battery": "The minimum battery state of charge is twenty percent in winter.",
			"doc-context": "Off-grid site with a 15 kWh battery bank and 8 kW of PV.",
		},
	}

	svc, err := kb.NewService(context.Background(), client, provider, &hashEmbedder{dims: 1536}, config.KBConfig{
		RootFolderID:        "root",
		ContextFolderName:   "Context",
		ChunkSize:           100,
		ChunkOverlap:        10,
		SimilarityThreshold: 0.3,
	})
	require.NoError(t, err)
	return svc, provider
}

func drainSync(t *testing.T, svc *kb.Service, mode kb.SyncMode) *kb.Summary {
	t.Helper()
	var final kb.ProgressEvent
	for event := range svc.Sync(context.Background(), mode, false) {
		final = event
	}
	require.True(t, final.Done, "stream must end with a done event")
	require.NotNil(t, final.Summary)
	return final.Summary
}

func TestSyncPartialSuccess(t *testing.T) {
	svc, _ := kbFixture(t)

	require.Equal(t, uint64(0), svc.Version())
	summary := drainSync(t, svc, kb.SyncModeSmart)

	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Deleted)
	assert.Equal(t, summary.Processed, summary.Updated+summary.Unchanged+summary.Failed)

	// Partial success still bumps the version.
	assert.Equal(t, uint64(1), svc.Version())
}

func TestSmartSyncSkipsUnchanged(t *testing.T) {
	svc, _ := kbFixture(t)
	drainSync(t, svc, kb.SyncModeSmart)

	summary := drainSync(t, svc, kb.SyncModeSmart)
	assert.Equal(t, 2, summary.Unchanged)
	assert.Equal(t, 0, summary.Updated)
	// The ghost document never synced, so it is retried and fails again.
	assert.Equal(t, 1, summary.Failed)
}

func TestFullSyncReprocessesEverything(t *testing.T) {
	svc, _ := kbFixture(t)
	drainSync(t, svc, kb.SyncModeSmart)

	summary := drainSync(t, svc, kb.SyncModeFull)
	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 0, summary.Unchanged)
}

func TestSyncDeletesAbsentDocuments(t *testing.T) {
	svc, provider := kbFixture(t)
	drainSync(t, svc, kb.SyncModeSmart)

	provider.docs = provider.docs[1:2] // keep only the context file
	summary := drainSync(t, svc, kb.SyncModeSmart)

	assert.Equal(t, 1, summary.Deleted)

	docs, err := svc.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Site Overview", docs[0].Title)
}

func TestSearchChunks(t *testing.T) {
	svc, provider := kbFixture(t)
	drainSync(t, svc, kb.SyncModeSmart)
	ctx := context.Background()

	// The exact chunk text embeds to the same vector, similarity ~1.
	query := provider.texts["doc-battery"]
	results, err := svc.SearchChunks(ctx, query, 5, -1)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Battery Manual", results[0].Title)
	assert.Equal(t, "Manuals", results[0].Folder)
	assert.Greater(t, results[0].Similarity, 0.99)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Similarity, 0.3)
	}

	// An unrelated query embeds near-orthogonally and falls below threshold.
	empty, err := svc.SearchChunks(ctx, "completely unrelated gibberish zzz", 5, -1)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestContextDocumentsAndStats(t *testing.T) {
	svc, _ := kbFixture(t)
	drainSync(t, svc, kb.SyncModeSmart)
	ctx := context.Background()

	contextDocs, err := svc.ContextDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, contextDocs, 1)
	assert.Equal(t, "Site Overview", contextDocs[0].Title)
	assert.NotEmpty(t, contextDocs[0].Text)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Documents)
	assert.Equal(t, 1, stats.ContextFiles)
	assert.Greater(t, stats.Chunks, 0)
	assert.Greater(t, stats.TotalTokens, 0)
	assert.Equal(t, 1, stats.SuccessfulSyncs)
	assert.NotNil(t, stats.LastSyncTime)
}
