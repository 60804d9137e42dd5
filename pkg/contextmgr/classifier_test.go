package contextmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/offgrid-ops/commandcenter/pkg/config"
)

func testClassifier() *Classifier {
	return NewClassifier(config.BuiltinClassifier())
}

func TestClassifyQueryTypes(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		name     string
		query    string
		expected config.QueryType
	}{
		{"battery status", "what's the battery state of charge right now?", config.QueryTypeSystem},
		{"telemetry", "show me the inverter telemetry", config.QueryTypeSystem},
		{"research", "look up the datasheet for the EG4 charge controller", config.QueryTypeResearch},
		{"how-to", "how do i equalize flooded batteries", config.QueryTypeResearch},
		{"planning", "when should I schedule the miners tomorrow", config.QueryTypePlanning},
		{"greeting", "hello there, thanks for the help", config.QueryTypeGeneral},
		{"no keywords", "the quick brown fox", config.QueryTypeGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qt, _ := c.Classify(tt.query)
			assert.Equal(t, tt.expected, qt)
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := testClassifier()

	q := "plan tomorrow's battery charging schedule"
	qt1, conf1 := c.Classify(q)
	qt2, conf2 := c.Classify(q)

	assert.Equal(t, qt1, qt2)
	assert.Equal(t, conf1, conf2)
}

func TestClassifyEmptyAndPunctuation(t *testing.T) {
	c := testClassifier()

	for _, q := range []string{"", "   ", "?!...", "---"} {
		qt, conf := c.Classify(q)
		assert.Equal(t, config.QueryTypeGeneral, qt, "query %q", q)
		assert.Zero(t, conf, "query %q", q)
	}
}

func TestClassifyOverrideRules(t *testing.T) {
	c := testClassifier()

	qt, conf := c.Classify("What's the battery doing?")
	assert.Equal(t, config.QueryTypeSystem, qt)
	assert.Equal(t, 1.0, conf)

	qt, _ = c.Classify("give me a charging plan for the weekend")
	assert.Equal(t, config.QueryTypePlanning, qt)
}

func TestClassifyConfidenceRange(t *testing.T) {
	c := testClassifier()

	queries := []string{
		"what is my battery level?",
		"research the best solar panels",
		"should i run the miner tonight",
		"hello",
	}
	for _, q := range queries {
		_, conf := c.Classify(q)
		assert.GreaterOrEqual(t, conf, 0.0, "query %q", q)
		assert.LessOrEqual(t, conf, 1.0, "query %q", q)
	}
}

func TestClassifySingleTokenNeedsWordBoundary(t *testing.T) {
	c := testClassifier()

	// "soc" must not match inside unrelated words.
	qt, conf := c.Classify("the society meeting notes")
	assert.Equal(t, config.QueryTypeGeneral, qt)
	assert.Zero(t, conf)
}

func TestKBFastPathAndOffTopic(t *testing.T) {
	c := testClassifier()

	assert.True(t, c.IsKBFastPath("What do the docs say about generator maintenance?"))
	assert.True(t, c.IsKBFastPath("what is the minimum SOC threshold policy?"))
	assert.True(t, c.IsKBFastPath("how do I restart the inverter?"))
	assert.True(t, c.IsKBFastPath("what is the generator shutdown procedure"))
	assert.False(t, c.IsKBFastPath("what is my battery level?"))

	assert.True(t, c.IsOffTopic("Who are you exactly?"))
	assert.False(t, c.IsOffTopic("what is the soc"))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
	assert.Equal(t, 25, EstimateTokens(string(make([]byte, 100))))
}
