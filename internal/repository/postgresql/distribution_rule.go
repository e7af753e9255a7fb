package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/rule"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

type ruleRepositoryImpl struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) rule.Repository {
	return &ruleRepositoryImpl{db: db}
}

// List implements rule.Repository.
func (r *ruleRepositoryImpl) List(ctx context.Context) ([]rule.DistributionRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_name, months, percentage, position, created_at, updated_at
		FROM distribution_rules
		ORDER BY position
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list distribution rules: %w", err)
	}
	defer rows.Close()

	var out []rule.DistributionRule
	for rows.Next() {
		var (
			row    rule.DistributionRule
			months []int32
		)
		if err := rows.Scan(
			&row.ID,
			&row.PeriodName,
			&months,
			&row.Percentage,
			&row.Position,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan distribution rule: %w", err)
		}
		row.Months = make([]time.Month, 0, len(months))
		for _, m := range months {
			row.Months = append(row.Months, time.Month(m))
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ReplaceAll implements rule.Repository. Runs in its own transaction so
// the rule set is never observed half-replaced.
func (r *ruleRepositoryImpl) ReplaceAll(ctx context.Context, rules []rule.DistributionRule) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM distribution_rules`); err != nil {
			return fmt.Errorf("failed to clear distribution rules: %w", err)
		}

		query := `
			INSERT INTO distribution_rules (id, period_name, months, percentage, position)
			VALUES ($1, $2, $3, $4, $5)
		`
		for _, row := range rules {
			id := row.ID
			if id == "" {
				id = uuid.Must(uuid.NewV7()).String()
			}
			months := make([]int32, 0, len(row.Months))
			for _, m := range row.Months {
				months = append(months, int32(m))
			}
			if _, err := tx.Exec(ctx, query, id, row.PeriodName, months, row.Percentage, row.Position); err != nil {
				return fmt.Errorf("failed to insert distribution rule %q: %w", row.PeriodName, err)
			}
		}
		return nil
	})
}
