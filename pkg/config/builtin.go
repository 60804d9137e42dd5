package config

// Built-in configuration: the classifier tables, token budgets, and agent
// roster the service runs with when commandcenter.yaml is absent. YAML
// entries override built-ins key by key.

// BuiltinBudgets returns the default per-type context budgets.
func BuiltinBudgets() map[QueryType]Budget {
	return map[QueryType]Budget{
		QueryTypeSystem:   {TotalTokens: 2000, KBDocs: 2, ConvTurns: 3},
		QueryTypeResearch: {TotalTokens: 4000, KBDocs: 5, ConvTurns: 4},
		QueryTypePlanning: {TotalTokens: 3500, KBDocs: 4, ConvTurns: 4},
		QueryTypeGeneral:  {TotalTokens: 1000, KBDocs: 0, ConvTurns: 2},
	}
}

// BuiltinAgents returns the default agent roster with backstories.
func BuiltinAgents() map[string]AgentConfig {
	return map[string]AgentConfig{
		"manager": {
			Backstory: "You are the operations manager for an off-grid solar installation. " +
				"You route operator questions to the right specialist, answer simple " +
				"questions about your own capabilities directly, and relay specialist " +
				"answers back to the operator word for word.",
		},
		"status_specialist": {
			Backstory: "You monitor an off-grid solar installation: a SolArk inverter and " +
				"a Victron battery bank. You answer questions about live and recent " +
				"telemetry using the status and stats tools, and you report numbers " +
				"exactly as the tools return them.",
		},
		"research_specialist": {
			Backstory: "You research equipment, practices, and technical questions for an " +
				"off-grid solar operator. You consult the installation's knowledge base " +
				"first and the web second, and you cite what you used.",
		},
		"planner_specialist": {
			Backstory: "You plan operations for an off-grid solar installation: load " +
				"scheduling, battery charge planning, and miner duty cycles. You ground " +
				"every plan in current telemetry and recent history from your tools.",
		},
	}
}

// BuiltinClassifier returns the default keyword scoring tables. Multi-word
// phrases carry higher weights than single tokens so that specific intent
// beats incidental vocabulary overlap.
func BuiltinClassifier() ClassifierConfig {
	return ClassifierConfig{
		Classes: []ClassKeywords{
			{
				Type: QueryTypeSystem,
				Keywords: []WeightedKeyword{
					{Phrase: "state of charge", Weight: 3.0},
					{Phrase: "right now", Weight: 2.5},
					{Phrase: "at the moment", Weight: 2.5},
					{Phrase: "battery", Weight: 1.5},
					{Phrase: "soc", Weight: 2.0},
					{Phrase: "inverter", Weight: 1.5},
					{Phrase: "voltage", Weight: 1.5},
					{Phrase: "current", Weight: 1.0},
					{Phrase: "charging", Weight: 1.5},
					{Phrase: "discharging", Weight: 1.5},
					{Phrase: "producing", Weight: 1.5},
					{Phrase: "solar", Weight: 1.0},
					{Phrase: "pv", Weight: 1.5},
					{Phrase: "load", Weight: 1.0},
					{Phrase: "power", Weight: 1.0},
					{Phrase: "watts", Weight: 1.5},
					{Phrase: "status", Weight: 1.5},
					{Phrase: "telemetry", Weight: 2.0},
				},
			},
			{
				Type: QueryTypeResearch,
				Keywords: []WeightedKeyword{
					{Phrase: "how do i", Weight: 2.5},
					{Phrase: "how does", Weight: 2.0},
					{Phrase: "what is a", Weight: 2.0},
					{Phrase: "look up", Weight: 2.5},
					{Phrase: "find out", Weight: 2.0},
					{Phrase: "research", Weight: 2.5},
					{Phrase: "compare", Weight: 2.0},
					{Phrase: "datasheet", Weight: 2.5},
					{Phrase: "manual", Weight: 1.5},
					{Phrase: "spec", Weight: 1.5},
					{Phrase: "recommend", Weight: 1.5},
					{Phrase: "best", Weight: 1.0},
					{Phrase: "documentation", Weight: 1.5},
					{Phrase: "docs", Weight: 1.5},
				},
			},
			{
				Type: QueryTypePlanning,
				Keywords: []WeightedKeyword{
					{Phrase: "should i", Weight: 2.5},
					{Phrase: "when should", Weight: 3.0},
					{Phrase: "plan", Weight: 2.0},
					{Phrase: "schedule", Weight: 2.0},
					{Phrase: "tomorrow", Weight: 1.5},
					{Phrase: "tonight", Weight: 1.5},
					{Phrase: "forecast", Weight: 2.0},
					{Phrase: "miner", Weight: 1.5},
					{Phrase: "mining", Weight: 1.5},
					{Phrase: "run the", Weight: 1.0},
					{Phrase: "optimize", Weight: 2.0},
					{Phrase: "strategy", Weight: 1.5},
					{Phrase: "budget", Weight: 1.5},
				},
			},
			{
				Type: QueryTypeGeneral,
				Keywords: []WeightedKeyword{
					{Phrase: "hello", Weight: 2.0},
					{Phrase: "hi", Weight: 1.5},
					{Phrase: "thanks", Weight: 2.0},
					{Phrase: "thank you", Weight: 2.5},
					{Phrase: "who are you", Weight: 3.0},
					{Phrase: "what can you do", Weight: 3.0},
					{Phrase: "help", Weight: 1.0},
				},
			},
		},
		Overrides: []OverrideRule{
			{
				// Direct questions about the installation's current state skip
				// scoring entirely.
				Prefixes: []string{
					"what's the battery",
					"what is the battery",
					"what's the soc",
					"what is the soc",
					"how much power",
					"how much solar",
					"is the battery",
					"are we charging",
				},
				Type: QueryTypeSystem,
			},
			{
				Contains: []string{"energy plan for", "charging plan"},
				Type:     QueryTypePlanning,
			},
		},
		KBFastPath: []string{
			"according to the docs",
			"in the knowledge base",
			"search the kb",
			"what do the docs say",
			"what do my notes say",
			"threshold",
			"policy",
			"specification",
			"procedure",
			"how do i",
		},
		OffTopic: []string{
			"who are you",
			"what can you do",
			"what are you",
			"how do you work",
		},
	}
}
