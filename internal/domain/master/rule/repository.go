package rule

import "context"

type Repository interface {
	// List returns the full rule set ordered by position.
	List(ctx context.Context) ([]DistributionRule, error)
	// ReplaceAll swaps the entire rule set atomically.
	ReplaceAll(ctx context.Context, rules []DistributionRule) error
}
