package rule

import "context"

type Service interface {
	List(ctx context.Context) ([]RuleResponse, error)
	// Replace swaps the whole rule set after validating the
	// cover-all-months and sum-to-100 invariants.
	Replace(ctx context.Context, req ReplaceRulesRequest) ([]RuleResponse, error)
}
