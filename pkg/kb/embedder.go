package kb

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/offgrid-ops/commandcenter/pkg/config"
)

// Embedder computes embedding vectors for text. Implementations must
// return one vector per input, in order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
}

// OpenAIEmbedder backs Embedder with the OpenAI embeddings API. Transient
// failures retry with jittered exponential backoff up to the configured
// attempt count.
type OpenAIEmbedder struct {
	client     openai.Client
	model      string
	dimensions int
	timeout    time.Duration
	maxRetries int
}

// NewOpenAIEmbedder creates an embedder from configuration.
func NewOpenAIEmbedder(llm config.LLMConfig, emb config.EmbeddingConfig) *OpenAIEmbedder {
	opts := []option.RequestOption{option.WithAPIKey(llm.APIKey)}
	if llm.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(llm.BaseURL))
	}

	return &OpenAIEmbedder{
		client:     openai.NewClient(opts...),
		model:      emb.Model,
		dimensions: emb.Dimensions,
		timeout:    emb.CallTimeout,
		maxRetries: emb.MaxRetries,
	}
}

func (e *OpenAIEmbedder) Dimensions() int {
	return e.dimensions
}

// Embed computes vectors for a batch of texts.
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var vectors [][]float32
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		resp, err := e.client.Embeddings.New(callCtx, openai.EmbeddingNewParams{
			Model:      openai.EmbeddingModel(e.model),
			Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
			Dimensions: openai.Int(int64(e.dimensions)),
		})
		if err != nil {
			return err
		}
		if len(resp.Data) != len(texts) {
			return backoff.Permanent(fmt.Errorf("embedding count mismatch: sent %d, got %d", len(texts), len(resp.Data)))
		}

		vectors = make([][]float32, len(resp.Data))
		for _, d := range resp.Data {
			vec := make([]float32, len(d.Embedding))
			for i, f := range d.Embedding {
				vec[i] = float32(f)
			}
			vectors[int(d.Index)] = vec
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(e.maxRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("embedding failed after retries: %w", err)
	}

	return vectors, nil
}
