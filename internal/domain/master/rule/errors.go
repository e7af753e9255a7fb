package rule

import "errors"

var (
	ErrRuleNotFound   = errors.New("Distribution rule not found")
	ErrInvalidRuleSet = errors.New("Distribution rules must cover months 1-12 exactly once and sum to 100%")
)
