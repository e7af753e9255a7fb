package master

import (
	"context"
	"fmt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/rule"
)

type RuleServiceImpl struct {
	repo rule.Repository
}

func NewRuleService(repo rule.Repository) rule.Service {
	return &RuleServiceImpl{repo: repo}
}

// List implements rule.Service.
func (s *RuleServiceImpl) List(ctx context.Context) ([]rule.RuleResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list distribution rules: %w", err)
	}
	return toRuleResponses(rows), nil
}

// Replace implements rule.Service.
func (s *RuleServiceImpl) Replace(ctx context.Context, req rule.ReplaceRulesRequest) ([]rule.RuleResponse, error) {
	rules := req.ToEntities()
	if err := rule.ValidateSet(rules); err != nil {
		return nil, fmt.Errorf("%w: %v", rule.ErrInvalidRuleSet, err)
	}

	if err := s.repo.ReplaceAll(ctx, rules); err != nil {
		return nil, fmt.Errorf("replace distribution rules: %w", err)
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list distribution rules: %w", err)
	}
	return toRuleResponses(rows), nil
}

func toRuleResponses(rows []rule.DistributionRule) []rule.RuleResponse {
	out := make([]rule.RuleResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, rule.ToResponse(row))
	}
	return out
}
