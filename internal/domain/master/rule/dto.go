package rule

import "time"

type RuleItem struct {
	PeriodName string  `json:"period_name"`
	Months     []int   `json:"months"`
	Percentage float64 `json:"percentage"`
}

type ReplaceRulesRequest struct {
	Rules []RuleItem `json:"rules"`
}

type RuleResponse struct {
	ID         string  `json:"id"`
	PeriodName string  `json:"period_name"`
	Months     []int   `json:"months"`
	Percentage float64 `json:"percentage"`
	Position   int     `json:"position"`
}

func ToResponse(r DistributionRule) RuleResponse {
	months := make([]int, 0, len(r.Months))
	for _, m := range r.Months {
		months = append(months, int(m))
	}
	return RuleResponse{
		ID:         r.ID,
		PeriodName: r.PeriodName,
		Months:     months,
		Percentage: r.Percentage,
		Position:   r.Position,
	}
}

func (i RuleItem) toEntity(position int) DistributionRule {
	months := make([]time.Month, 0, len(i.Months))
	for _, m := range i.Months {
		months = append(months, time.Month(m))
	}
	return DistributionRule{
		PeriodName: i.PeriodName,
		Months:     months,
		Percentage: i.Percentage,
		Position:   position,
	}
}

// ToEntities converts the request in declared order, assigning
// positions from 1.
func (r ReplaceRulesRequest) ToEntities() []DistributionRule {
	out := make([]DistributionRule, 0, len(r.Rules))
	for idx, item := range r.Rules {
		out = append(out, item.toEntity(idx+1))
	}
	return out
}
