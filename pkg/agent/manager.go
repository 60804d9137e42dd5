package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/offgrid-ops/commandcenter/pkg/config"
	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
	"github.com/offgrid-ops/commandcenter/pkg/llm"
	"github.com/offgrid-ops/commandcenter/pkg/services"
)

// Reported agent roles. These are part of the API response contract.
const (
	RoleManager            = "Manager"
	RoleStatusSpecialist   = "StatusSpecialist"
	RolePlannerSpecialist  = "PlannerSpecialist"
	RoleResearchSpecialist = "ResearchSpecialist"
)

const fallbackAnswer = "I could not confidently answer this question. Please rephrase or ask something more specific about the installation."

const offTopicReply = "I'm the operations assistant for this solar installation. I can report live and historical telemetry, plan battery and load usage, and search the site's knowledge base. Ask me about the system."

// RouteResult is a routed answer plus the role that produced it.
type RouteResult struct {
	Response  string
	AgentRole string
}

// Manager routes a query to a specialist or answers directly. Three
// deterministic overrides run before any LLM call: the KB fast path,
// the off-topic reply, and the query-type routing hint.
type Manager struct {
	agent       *Agent
	classifier  *contextmgr.Classifier
	specialists map[string]*Agent
	kb          KBSearcher
	kbThreshold float64
	logger      *slog.Logger
}

// routeToolFor maps route tool names to specialist roster keys.
var routeToolFor = map[string]string{
	"route_to_status_specialist":   RoleStatusSpecialist,
	"route_to_planner_specialist":  RolePlannerSpecialist,
	"route_to_research_specialist": RoleResearchSpecialist,
}

// routingHint biases the router prompt toward the classified type's
// specialist.
var routingHint = map[config.QueryType]string{
	config.QueryTypeSystem:   "This query was classified as a SYSTEM status question; prefer route_to_status_specialist.",
	config.QueryTypePlanning: "This query was classified as a PLANNING question; prefer route_to_planner_specialist.",
	config.QueryTypeResearch: "This query was classified as a RESEARCH question; prefer route_to_research_specialist.",
	config.QueryTypeGeneral:  "This query was classified as GENERAL; answer directly if you can, otherwise route to the closest specialist.",
}

// NewManager wires the manager over a specialist roster.
func NewManager(cfg *config.Config, client llm.Client, deps *Deps, classifier *contextmgr.Classifier) *Manager {
	searchKB := SearchKBTool(deps)

	statusTools := append(StatusTools(deps), searchKB)
	plannerTools := append(PlannerTools(deps), statusLatestOnly(deps), searchKB)
	researchTools := append(ResearchTools(deps), searchKB)

	specialists := map[string]*Agent{
		RoleStatusSpecialist: New(RoleStatusSpecialist,
			cfg.Agents["status_specialist"].Backstory,
			NewRegistry(statusTools...),
			cfg.Query.SpecialistMaxIterations, client),
		RolePlannerSpecialist: New(RolePlannerSpecialist,
			cfg.Agents["planner_specialist"].Backstory,
			NewRegistry(plannerTools...),
			cfg.Query.SpecialistMaxIterations, client),
		RoleResearchSpecialist: New(RoleResearchSpecialist,
			cfg.Agents["research_specialist"].Backstory,
			NewRegistry(researchTools...),
			cfg.Query.SpecialistMaxIterations, client),
	}

	managerTools := []Tool{
		routeTool("route_to_status_specialist", "Route to the status specialist for live or historical telemetry questions."),
		routeTool("route_to_planner_specialist", "Route to the planner specialist for battery, load or miner scheduling questions."),
		routeTool("route_to_research_specialist", "Route to the research specialist for questions needing web or documentation research."),
		searchKB,
	}

	return &Manager{
		agent: New(RoleManager,
			cfg.Agents["manager"].Backstory,
			NewRegistry(managerTools...),
			cfg.Query.ManagerMaxIterations, client),
		classifier:  classifier,
		specialists: specialists,
		kb:          deps.KB,
		kbThreshold: deps.KBThreshold,
		logger:      slog.With("component", "manager"),
	}
}

// statusLatestOnly gives the planner the latest_sample tool without the
// rest of the status toolset.
func statusLatestOnly(deps *Deps) Tool {
	for _, t := range StatusTools(deps) {
		if t.Name == "latest_sample" {
			return t
		}
	}
	panic("latest_sample tool missing")
}

// routeTool declares a routing tool. Routing short-circuits in Route;
// the handler exists only so the registry stays uniform.
func routeTool(name, description string) Tool {
	return Tool{
		Name:        name,
		Description: description,
		Parameters:  objectSchema(map[string]any{}),
		Handler: func(context.Context, *ExecutionContext, json.RawMessage) (string, error) {
			return "", fmt.Errorf("routing tools are dispatched by the manager")
		},
	}
}

// Route answers a query: deterministic overrides first, then the LLM
// router, then a routed specialist. A specialist's answer passes through
// verbatim with only the agent role appended to the metadata.
func (m *Manager) Route(ctx context.Context, execCtx *ExecutionContext) (*RouteResult, error) {
	if m.classifier.IsOffTopic(execCtx.Query) {
		return &RouteResult{Response: offTopicReply, AgentRole: RoleManager}, nil
	}

	if m.classifier.IsKBFastPath(execCtx.Query) {
		if result := m.kbFastPath(ctx, execCtx); result != nil {
			return result, nil
		}
		// No KB hit; fall through to the router.
	}

	return m.routeWithLLM(ctx, execCtx)
}

// kbFastPath answers informational queries straight from the top-ranked
// chunk, skipping the LLM router entirely. Returns nil on miss.
func (m *Manager) kbFastPath(ctx context.Context, execCtx *ExecutionContext) *RouteResult {
	chunks, err := m.kb.SearchChunks(ctx, execCtx.Query, 3, m.kbThreshold)
	if err != nil {
		m.logger.Warn("KB fast path search failed", "error", err)
		return nil
	}
	if len(chunks) == 0 {
		return nil
	}

	execCtx.RecordTool("search_kb")
	top := chunks[0]
	return &RouteResult{
		Response:  fmt.Sprintf("From %q (%s):\n\n%s", top.Title, top.Folder, top.ChunkText),
		AgentRole: RoleManager,
	}
}

func (m *Manager) routeWithLLM(ctx context.Context, execCtx *ExecutionContext) (*RouteResult, error) {
	messages := m.routerMessages(execCtx)
	tools := m.agent.Tools.Specs()

	for iteration := 1; iteration <= m.agent.MaxIterations; iteration++ {
		if execCtx.DeadlineExceeded() {
			return nil, services.ErrDeadline
		}

		text, toolCalls, err := m.agent.generate(ctx, messages, tools)
		if err != nil {
			return nil, err
		}

		if len(toolCalls) == 0 {
			if strings.TrimSpace(text) == "" {
				continue
			}
			return &RouteResult{Response: text, AgentRole: RoleManager}, nil
		}

		// The router must pick exactly one action; extra calls are dropped.
		call := toolCalls[0]
		if role, ok := routeToolFor[call.Name]; ok {
			execCtx.RecordTool(call.Name)
			return m.delegate(ctx, execCtx, role)
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   text,
			ToolCalls: []llm.ToolCall{call},
		})
		messages = append(messages, llm.Message{
			Role:       llm.RoleTool,
			Content:    m.agent.Tools.Execute(ctx, execCtx, call),
			ToolCallID: call.ID,
		})
	}

	return &RouteResult{Response: fallbackAnswer, AgentRole: RoleManager}, ErrMaxIterations
}

// delegate runs the chosen specialist and passes its answer through
// unchanged.
func (m *Manager) delegate(ctx context.Context, execCtx *ExecutionContext, role string) (*RouteResult, error) {
	specialist, ok := m.specialists[role]
	if !ok {
		return nil, fmt.Errorf("unknown specialist %q", role)
	}

	m.logger.Info("Routing query", "specialist", role, "query_type", execCtx.QueryType)
	answer, err := specialist.Run(ctx, execCtx)
	if err != nil {
		return nil, err
	}
	return &RouteResult{Response: answer, AgentRole: role}, nil
}

func (m *Manager) routerMessages(execCtx *ExecutionContext) []llm.Message {
	var system strings.Builder
	system.WriteString(m.agent.Backstory)
	system.WriteString("\n\nDecide how to handle the operator's query: call exactly one routing tool, call search_kb if the knowledge base alone can answer, or reply directly for simple questions.")
	if hint, ok := routingHint[execCtx.QueryType]; ok {
		system.WriteString("\n")
		system.WriteString(hint)
	}
	if execCtx.BundleText != "" {
		system.WriteString("\n\n")
		system.WriteString(execCtx.BundleText)
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system.String()},
		{Role: llm.RoleUser, Content: execCtx.Query},
	}
}
