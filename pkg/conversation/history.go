package conversation

import (
	"context"

	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
)

// RecentTurns adapts Recent to the context manager's history source.
func (s *Service) RecentTurns(ctx context.Context, sessionID string, turns int) ([]contextmgr.Turn, error) {
	msgs, err := s.Recent(ctx, sessionID, turns)
	if err != nil {
		return nil, err
	}

	out := make([]contextmgr.Turn, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, contextmgr.Turn{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out, nil
}
