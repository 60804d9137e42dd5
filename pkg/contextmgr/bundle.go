package contextmgr

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/offgrid-ops/commandcenter/pkg/cache"
	"github.com/offgrid-ops/commandcenter/pkg/config"
)

const (
	// shellReserve is always held back for the prompt shell around the
	// bundle.
	shellReserve = 200

	// contextFileShare caps always-on context files at this fraction of the
	// total budget.
	contextFileShare = 0.4

	// userPrefsMaxTokens caps the operator preferences section.
	userPrefsMaxTokens = 200
)

// ContextBundle is the assembled prompt input for one query.
type ContextBundle struct {
	System       string           `json:"system"`
	User         string           `json:"user"`
	Conversation string           `json:"conversation"`
	KB           string           `json:"kb"`
	TotalTokens  int              `json:"total_tokens"`
	CacheHit     bool             `json:"cache_hit"`
	QueryType    config.QueryType `json:"query_type"`
	Confidence   float64          `json:"classification_confidence"`
}

// ScoredChunk is one knowledge-base search hit.
type ScoredChunk struct {
	Title      string  `json:"title"`
	Folder     string  `json:"folder"`
	ChunkText  string  `json:"chunk_text"`
	Similarity float64 `json:"similarity"`
}

// ContextDocument is one always-on context file.
type ContextDocument struct {
	Title      string
	Text       string
	TokenCount int
}

// Turn is one conversation message, flattened for bundle assembly.
type Turn struct {
	Role    string
	Content string
}

// KnowledgeSource is the knowledge-base surface the bundle assembler needs.
type KnowledgeSource interface {
	SearchChunks(ctx context.Context, query string, topK int, threshold float64) ([]ScoredChunk, error)
	ContextDocuments(ctx context.Context) ([]ContextDocument, error)
	// Version is the monotone counter bumped by each successful sync.
	Version() uint64
}

// HistorySource provides recent conversation turns, oldest first.
type HistorySource interface {
	RecentTurns(ctx context.Context, sessionID string, turns int) ([]Turn, error)
}

// Manager assembles context bundles within per-type token budgets.
type Manager struct {
	classifier *Classifier
	budgets    map[config.QueryType]config.Budget
	threshold  float64
	userPrefs  string

	cache    cache.Cache
	cacheTTL time.Duration

	kb      KnowledgeSource
	history HistorySource

	logger *slog.Logger
}

// NewManager wires a context manager from configuration and sources.
func NewManager(cfg *config.Config, c cache.Cache, kb KnowledgeSource, history HistorySource) *Manager {
	return &Manager{
		classifier: NewClassifier(cfg.Classifier),
		budgets:    cfg.Budgets,
		threshold:  cfg.KB.SimilarityThreshold,
		userPrefs:  cfg.UserPreferences,
		cache:      c,
		cacheTTL:   cfg.Cache.TTL,
		kb:         kb,
		history:    history,
		logger:     slog.With("component", "contextmgr"),
	}
}

// Classifier exposes the classifier for routing decisions.
func (m *Manager) Classifier() *Classifier {
	return m.classifier
}

// Classify assigns the query type and confidence.
func (m *Manager) Classify(query string) (config.QueryType, float64) {
	return m.classifier.Classify(query)
}

// Budget returns the budget for a query type.
func (m *Manager) Budget(qt config.QueryType) config.Budget {
	return m.budgets[qt]
}

// Bundle produces the context bundle for a query, consulting the cache
// first. Sub-source failures degrade to empty sections; Bundle itself only
// fails on internal invariant violations, which currently cannot happen.
func (m *Manager) Bundle(ctx context.Context, query, sessionID, userID string) (*ContextBundle, error) {
	qt, confidence := m.classifier.Classify(query)

	key := CacheKey(qt, query, sessionID, userID, m.kb.Version())
	if raw, ok := m.cache.Get(ctx, key); ok {
		var cached ContextBundle
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			cached.CacheHit = true
			return &cached, nil
		}
		m.logger.Warn("Discarding undecodable cached bundle", "key", key)
	}

	bundle := m.compose(ctx, query, sessionID, qt, confidence)

	if raw, err := json.Marshal(bundle); err == nil {
		m.cache.Set(ctx, key, string(raw), m.cacheTTL)
	}

	return bundle, nil
}

// compose builds a fresh bundle. Assembly order and the final drop order
// (kb, conversation, user, system) are fixed so budgets degrade
// predictably.
func (m *Manager) compose(ctx context.Context, query, sessionID string, qt config.QueryType, confidence float64) *ContextBundle {
	budget := m.budgets[qt]
	remaining := budget.TotalTokens - shellReserve

	bundle := &ContextBundle{
		QueryType:  qt,
		Confidence: confidence,
	}

	bundle.System = m.composeSystem(ctx, budget, &remaining)
	bundle.User = m.composeUserPrefs(&remaining)
	bundle.Conversation = m.composeConversation(ctx, sessionID, budget, &remaining)
	if qt != config.QueryTypeGeneral {
		bundle.KB = m.composeKB(ctx, query, budget, &remaining)
	}

	m.enforceBudget(bundle, budget)

	return bundle
}

// composeSystem loads always-on context files as whole-document units up to
// contextFileShare of the total budget.
func (m *Manager) composeSystem(ctx context.Context, budget config.Budget, remaining *int) string {
	docs, err := m.kb.ContextDocuments(ctx)
	if err != nil {
		m.logger.Warn("Context files unavailable, skipping section", "error", err)
		return ""
	}
	if len(docs) == 0 {
		return ""
	}

	limit := int(float64(budget.TotalTokens) * contextFileShare)
	if limit > *remaining {
		limit = *remaining
	}

	var sb strings.Builder
	used := 0
	for _, doc := range docs {
		tokens := doc.TokenCount
		if tokens == 0 {
			tokens = EstimateTokens(doc.Text)
		}
		if used+tokens > limit {
			continue
		}
		fmt.Fprintf(&sb, "### %s\n%s\n\n", doc.Title, doc.Text)
		used += tokens
	}

	*remaining -= used
	return strings.TrimSpace(sb.String())
}

func (m *Manager) composeUserPrefs(remaining *int) string {
	if m.userPrefs == "" {
		return ""
	}

	prefs := m.userPrefs
	if EstimateTokens(prefs) > userPrefsMaxTokens {
		prefs = prefs[:userPrefsMaxTokens*charsPerToken]
	}

	tokens := EstimateTokens(prefs)
	if tokens > *remaining {
		return ""
	}

	*remaining -= tokens
	return prefs
}

// composeConversation renders the last N turns oldest-to-newest, dropping
// the oldest turns that do not fit.
func (m *Manager) composeConversation(ctx context.Context, sessionID string, budget config.Budget, remaining *int) string {
	if sessionID == "" || budget.ConvTurns <= 0 {
		return ""
	}

	turns, err := m.history.RecentTurns(ctx, sessionID, budget.ConvTurns)
	if err != nil {
		m.logger.Warn("Conversation history unavailable, skipping section", "error", err)
		return ""
	}
	if len(turns) == 0 {
		return ""
	}

	rendered := make([]string, len(turns))
	for i, t := range turns {
		rendered[i] = fmt.Sprintf("%s: %s", capitalizeRole(t.Role), t.Content)
	}

	for len(rendered) > 0 {
		section := strings.Join(rendered, "\n")
		if tokens := EstimateTokens(section); tokens <= *remaining {
			*remaining -= tokens
			return section
		}
		rendered = rendered[1:]
	}

	return ""
}

// composeKB searches with top_k = 2× the budgeted doc count and greedily
// takes the highest-similarity chunks until the remaining budget fills.
func (m *Manager) composeKB(ctx context.Context, query string, budget config.Budget, remaining *int) string {
	if budget.KBDocs <= 0 || *remaining <= 0 {
		return ""
	}

	chunks, err := m.kb.SearchChunks(ctx, query, 2*budget.KBDocs, m.threshold)
	if err != nil {
		m.logger.Warn("KB search unavailable, skipping section", "error", err)
		return ""
	}

	var sb strings.Builder
	used := 0
	for _, chunk := range chunks {
		entry := fmt.Sprintf("[%s — %s]\n%s\n\n", chunk.Title, chunk.Folder, chunk.ChunkText)
		tokens := EstimateTokens(entry)
		if used+tokens > *remaining {
			break
		}
		sb.WriteString(entry)
		used += tokens
	}

	*remaining -= used
	return strings.TrimSpace(sb.String())
}

func capitalizeRole(role string) string {
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + role[1:]
}

// enforceBudget recomputes the total and drops sections lowest-priority
// first until the bundle fits.
func (m *Manager) enforceBudget(bundle *ContextBundle, budget config.Budget) {
	total := func() int {
		return shellReserve +
			EstimateTokens(bundle.System) +
			EstimateTokens(bundle.User) +
			EstimateTokens(bundle.Conversation) +
			EstimateTokens(bundle.KB)
	}

	drops := []*string{&bundle.KB, &bundle.Conversation, &bundle.User, &bundle.System}
	for _, section := range drops {
		if total() <= budget.TotalTokens {
			break
		}
		*section = ""
	}

	bundle.TotalTokens = total()
}

// Format renders a bundle as a single prompt-ready string. Empty sections
// are omitted.
func Format(bundle *ContextBundle) string {
	var sb strings.Builder

	write := func(header, body string) {
		if body == "" {
			return
		}
		fmt.Fprintf(&sb, "## %s\n%s\n\n", header, body)
	}

	write("Site Context", bundle.System)
	write("Operator Preferences", bundle.User)
	write("Conversation History", bundle.Conversation)
	write("Knowledge Base", bundle.KB)

	return strings.TrimSpace(sb.String())
}
