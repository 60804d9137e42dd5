// Package contextmgr classifies queries and assembles token-budgeted
// context bundles for the orchestrator.
package contextmgr

// charsPerToken is the fixed estimation ratio. Budget decisions and the
// tokens_in reported on executions must both come from EstimateTokens so
// the numbers agree.
const charsPerToken = 4

// EstimateTokens estimates the token count of a string. Pure and
// deterministic; rounds up.
func EstimateTokens(s string) int {
	if s == "" {
		return 0
	}
	return (len(s) + charsPerToken - 1) / charsPerToken
}
